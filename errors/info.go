package errors

import "fmt"

const (
	// SuccessCode is returned for a call that did not fail.
	SuccessCode uint32 = 0

	// All unclassified errors that do not provide a code are clubbed
	// under an internal error code and a generic message instead of
	// detailed error string.
	internalCode uint32 = 1
	internalLog         = "internal error"
)

// Info returns the code and the log message that can be exposed to the
// caller of a failed operation. Errors that do not carry a registered code
// are internal; outside of debug mode their message is replaced with a
// generic one.
func Info(err error, debug bool) (uint32, string) {
	if isNilErr(err) {
		return SuccessCode, ""
	}

	if c := code(err); c != internalCode {
		if debug {
			return c, fmt.Sprintf("%+v", err)
		}
		if ErrPanic.Is(err) {
			return c, ErrPanic.desc
		}
		return c, err.Error()
	}

	if debug {
		return internalCode, fmt.Sprintf("%+v", err)
	}
	return internalCode, internalLog
}

type coder interface {
	Code() uint32
}

// code unwraps given error until a coder is found.
func code(err error) uint32 {
	if isNilErr(err) {
		return SuccessCode
	}
	for {
		if c, ok := err.(coder); ok {
			return c.Code()
		}
		if c, ok := err.(causer); ok {
			err = c.Cause()
		} else {
			return internalCode
		}
	}
}

// Redact replaces the details of panics and internal errors with a generic
// message so that nothing about the host leaks to the caller.
func Redact(err error) error {
	if isNilErr(err) {
		return nil
	}
	if ErrPanic.Is(err) {
		return ErrPanic
	}
	if code(err) == internalCode {
		return fmt.Errorf(internalLog)
	}
	return err
}
