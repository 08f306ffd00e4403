/*
Package errors implements the error values used across lpstake.

Reuse the root errors declared in this package whenever possible and
register an extension specific error only when it is really needed. Use
Register(code, description) to declare one; codes must be unique.

Create error instances with Wrap, Wrapf or Errxxx.New at the point where
the problem is detected so that a stack trace is attached. Only the inner
most wrap records the stack.

Formatting an error:
	%s is just the error message
	%+v is the full stack trace
	%v appends a compressed [filename:line] where the error was created
*/
package errors
