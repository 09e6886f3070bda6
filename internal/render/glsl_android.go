//go:build android

package render

const glslHeader = "#version 300 es\n"
