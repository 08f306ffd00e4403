package errors

import (
	"fmt"
	"strings"
)

// Append clubs together all provided errors. Nil values are ignored.
//
// If all errors are nil, nil is returned. If only one error is not nil, it is
// returned unchanged. Appending to a multi error extends it.
func Append(errs ...error) error {
	var res multiErr
	for _, e := range errs {
		if isNilErr(e) {
			continue
		}
		if m, ok := e.(multiErr); ok {
			res = append(res, m...)
		} else {
			res = append(res, e)
		}
	}
	switch len(res) {
	case 0:
		return nil
	case 1:
		return res[0]
	default:
		return res
	}
}

// multiErr is an error that represents a collection of errors, usually
// validation failures of several fields at once.
type multiErr []error

func (m multiErr) Error() string {
	msgs := make([]string, len(m))
	for i, e := range m {
		msgs[i] = e.Error()
	}
	return fmt.Sprintf("%d errors occurred:\n\t* %s", len(m), strings.Join(msgs, "\n\t* "))
}

// Unpack returns all collected errors.
func (m multiErr) Unpack() []error {
	return m
}

// Code returns the code of the first collected error that carries one.
func (m multiErr) Code() uint32 {
	for _, e := range m {
		if c := code(e); c != internalCode {
			return c
		}
	}
	return internalCode
}

type unpacker interface {
	Unpack() []error
}
