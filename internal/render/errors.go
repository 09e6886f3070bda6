package render

import (
	"fmt"

	"tapquad/internal/gles"
)

// CompileError reports a shader stage that failed to compile.
type CompileError struct {
	Stage string // "vertex" or "fragment"
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compile %s shader: %s", e.Stage, e.Log)
}

// LinkError reports a program that failed to link.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("link program: %s", e.Log)
}

// ResourceError reports a GPU object that could not be created or filled.
type ResourceError struct {
	What string
	Code gles.Enum // GL error code, NO_ERROR when the failure was detected by us
}

func (e *ResourceError) Error() string {
	if e.Code == gles.NO_ERROR {
		return fmt.Sprintf("create %s", e.What)
	}
	return fmt.Sprintf("create %s: gl error %v", e.What, e.Code)
}
