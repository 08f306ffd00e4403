// Package assert holds the few assertions shared by the lpstake tests.
// Every helper stops the test on the first mismatch.
package assert

import (
	"reflect"
	"strings"

	"github.com/lpstake/lpstake/errors"
)

// Tester is the part of testing.TB the assertions use.
type Tester interface {
	Helper()
	Fatalf(string, ...interface{})
}

// Nil fails unless value is nil or a nil pointer, slice, map, channel,
// function or interface.
func Nil(t Tester, value interface{}) {
	t.Helper()
	if value == nil {
		return
	}
	switch v := reflect.ValueOf(value); v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Ptr, reflect.Slice:
		if v.IsNil() {
			return
		}
	}
	// %+v prints the stack trace of lpstake errors.
	t.Fatalf("want nil, got %+v", value)
}

// Equal compares want and got with reflect.DeepEqual.
func Equal(t Tester, want, got interface{}) {
	t.Helper()
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("not equal\nwant %T %v\n got %T %v", want, want, got, got)
	}
}

// Panics fails unless fn panics.
func Panics(t Tester, fn func()) {
	t.Helper()
	if !panics(fn) {
		t.Fatalf("want panic")
	}
}

func panics(fn func()) (panicked bool) {
	defer func() { panicked = recover() != nil }()
	fn()
	return false
}

// IsErr fails unless got is of the want kind. A nil want expects no error.
func IsErr(t Tester, want, got error) {
	t.Helper()
	if want == got {
		return
	}
	if kind, ok := want.(interface{ Is(error) bool }); ok && kind.Is(got) {
		return
	}
	t.Fatalf("want %q, got %+v", want, got)
}

// FieldError fails unless err holds exactly one error for field and that
// error is of the want kind. A nil want expects no error for field.
func FieldError(t Tester, err error, field string, want *errors.Error) {
	t.Helper()
	found := errors.FieldErrors(err, field)
	switch {
	case want == nil && len(found) == 0:
		return
	case want == nil:
		t.Fatalf("field %q: want no error, got %s", field, joinErrs(found))
	case len(found) == 0:
		t.Fatalf("field %q: want %q, got nothing", field, want)
	case len(found) > 1:
		t.Fatalf("field %q: want a single error, got %s", field, joinErrs(found))
	case !want.Is(found[0]):
		t.Fatalf("field %q: want %q, got %q", field, want, found[0])
	}
}

func joinErrs(errs []error) string {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return "[" + strings.Join(msgs, "; ") + "]"
}
