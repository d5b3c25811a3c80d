// SPDX-License-Identifier: Unlicense OR MIT

package gl

import (
	"fmt"
	"strings"
)

// ErrorString names a GetError code. Unknown codes render as hex.
func ErrorString(e Enum) string {
	switch e {
	case NO_ERROR:
		return "NO_ERROR"
	case INVALID_ENUM:
		return "INVALID_ENUM"
	case INVALID_VALUE:
		return "INVALID_VALUE"
	case INVALID_OPERATION:
		return "INVALID_OPERATION"
	case INVALID_FRAMEBUFFER_OPERATION:
		return "INVALID_FRAMEBUFFER_OPERATION"
	case OUT_OF_MEMORY:
		return "OUT_OF_MEMORY"
	case STACK_OVERFLOW:
		return "STACK_OVERFLOW"
	case STACK_UNDERFLOW:
		return "STACK_UNDERFLOW"
	case CONTEXT_LOST:
		return "CONTEXT_LOST"
	default:
		return fmt.Sprintf("error 0x%x", uint(e))
	}
}

// CheckError drains the error queue and reports every pending code as a
// single error naming op, or nil when the queue is clean.
func (f *Functions) CheckError(op string) error {
	var errs []string
	for {
		e := f.GetError()
		if e == NO_ERROR {
			break
		}
		errs = append(errs, ErrorString(e))
		// A lost context reports CONTEXT_LOST from every GetError.
		// Stop instead of spinning.
		if e == CONTEXT_LOST {
			break
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("gl: %s failed: %s", op, strings.Join(errs, ", "))
}
