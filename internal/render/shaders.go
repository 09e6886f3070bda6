package render

// Attribute locations bound before linking.
const (
	AttribPosition uint32 = 0
	AttribTexCoord uint32 = 1
)

// Uniform names shared by the sources below and BuildProgram.
const (
	uniformMVP     = "uMVP"
	uniformTexture = "uTexture"
	uniformTapFlag = "uTapFlag"
)

// Vertex stage: transform the quad, pass texture coordinates through.
const QuadVertexSrc = glslHeader + `
in vec4 vPosition;
in vec2 vTexCoord;

uniform mat4 uMVP;

out vec2 outTexCoord;

void main() {
    gl_Position = uMVP * vPosition;
    outTexCoord = vTexCoord;
}
`

// Fragment stage: flat white until the first tap, texture afterwards.
const QuadFragmentSrc = glslHeader + `
precision highp float;

in vec2 outTexCoord;

uniform highp sampler2D uTexture;
uniform int uTapFlag;

out vec4 FragColor;

void main() {
    if (uTapFlag == 0) {
        FragColor = vec4(1.0, 1.0, 1.0, 1.0);
    } else {
        FragColor = texture(uTexture, outTexCoord);
    }
}
`
