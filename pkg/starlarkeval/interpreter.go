package starlarkeval

import (
	"errors"
	"io"

	"go.starlark.net/starlark"
)

// Interpreter executes starlark configuration files against a set of
// predeclared builtins.
type Interpreter struct {
	// Builtins visible to every file
	predeclared starlark.StringDict
	// Global state
	globals starlark.StringDict
	// Thread context
	thread *starlark.Thread
	// Last eval error
	evalErr *starlark.EvalError
	// reporter
	reporter Reporter
}

// Reporter is implemented by *testing.T.
type Reporter func(format string, args ...interface{})

// NewInterpreter constructs an interpreter.  Messages printed by the script
// are forwarded to the reporter.
func NewInterpreter(reporter Reporter) *Interpreter {
	interpreter := &Interpreter{
		reporter:    reporter,
		predeclared: make(starlark.StringDict),
		globals:     make(starlark.StringDict),
	}
	interpreter.thread = &starlark.Thread{
		Name: "starlarkeval",
		Print: func(_ *starlark.Thread, msg string) {
			interpreter.reporter("%s", msg)
		},
	}
	return interpreter
}

// Define makes a builtin function available to executed files.
func (i *Interpreter) Define(name string, fn func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error)) {
	i.predeclared[name] = starlark.NewBuiltin(name, fn)
}

// GetGlobal returns a global defined by the last executed file.
func (i *Interpreter) GetGlobal(name string) starlark.Value {
	return i.globals[name]
}

// EvalError returns the evaluation error of the last executed file, if any.
func (i *Interpreter) EvalError() *starlark.EvalError {
	return i.evalErr
}

// Exec executes a file.
func (i *Interpreter) Exec(filename string, src io.Reader) error {
	data, err := io.ReadAll(src)
	if err != nil {
		return err
	}
	i.evalErr = nil
	state, err := starlark.ExecFile(i.thread, filename, data, i.predeclared)
	if err != nil {
		var evalErr *starlark.EvalError
		if errors.As(err, &evalErr) {
			i.reporter("%s", evalErr.Backtrace())
			i.evalErr = evalErr
		}
		return err
	}
	i.globals = state
	return nil
}
