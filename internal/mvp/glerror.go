package mvp

import (
	"errors"
	"fmt"
)

// GLError is a code returned by glGetError.
type GLError uint32

var glErrorNames = map[GLError]string{
	0x500: `GL_INVALID_ENUM`,
	0x501: `GL_INVALID_VALUE`,
	0x502: `GL_INVALID_OPERATION`,
	0x503: `GL_STACK_OVERFLOW`,
	0x504: `GL_STACK_UNDERFLOW`,
	0x505: `GL_OUT_OF_MEMORY`,
	0x506: `GL_INVALID_FRAMEBUFFER_OPERATION`,
	0x507: `GL_CONTEXT_LOST`,
}

func (e GLError) Error() string {
	if name, ok := glErrorNames[e]; ok {
		return "GL_ERROR: " + name
	}
	return fmt.Sprintf("GL_ERROR UNKNOWN: 0x%x", uint32(e))
}

// maxGLErrors bounds the drain loop; a lost context may report forever.
const maxGLErrors = 16

// DrainGLErrors calls getError until it reports no error (0) and joins
// everything it saw. Pass gl.GetError.
func DrainGLErrors(getError func() uint32) error {
	var errs []error
	for i := 0; i < maxGLErrors; i++ {
		code := getError()
		if code == 0 {
			break
		}
		errs = append(errs, GLError(code))
	}
	return errors.Join(errs...)
}
