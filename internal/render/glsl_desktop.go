//go:build !android

package render

const glslHeader = "#version 410 core\n"
