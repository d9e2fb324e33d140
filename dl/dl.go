// Package dl loads shared libraries and exposes their symbols as ffclosure
// function pointers, the import side of a foreign callback boundary.
package dl

import (
	"log/slog"

	"github.com/tinyrange/ffclosure"
)

// Error records a failed library operation.
type Error struct {
	Op     string
	Path   string
	Symbol string
	Err    error
}

func (e *Error) Error() string {
	msg := e.Op
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Symbol != "" {
		msg += " " + e.Symbol
	}
	return msg + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Library is an open shared library.
type Library struct {
	path   string
	handle uintptr
}

// Open loads the shared library at path.
func Open(path string) (*Library, error) {
	h, err := open(path)
	if err != nil {
		return nil, &Error{Op: "open", Path: path, Err: err}
	}
	slog.Debug("dl: opened library", "path", path)
	return &Library{path: path, handle: h}, nil
}

// Path returns the path the library was opened with.
func (l *Library) Path() string {
	return l.path
}

// Addr returns the raw address of name.
func (l *Library) Addr(name string) (uintptr, error) {
	addr, err := lookup(l.handle, name)
	if err != nil {
		return 0, &Error{Op: "lookup", Path: l.path, Symbol: name, Err: err}
	}
	return addr, nil
}

// Lookup returns name as a foreign function pointer. Nothing checks that the
// symbol is a function or what its signature is.
func (l *Library) Lookup(name string) (ffclosure.Code, error) {
	addr, err := l.Addr(name)
	if err != nil {
		return ffclosure.Code{}, err
	}
	return ffclosure.ForeignCode(addr), nil
}

// LookupDestructor returns name as a destructor of shape (ctx) -> ().
func (l *Library) LookupDestructor(name string) (ffclosure.Destructor, error) {
	addr, err := l.Addr(name)
	if err != nil {
		return ffclosure.Destructor{}, err
	}
	return ffclosure.ForeignDestructor(addr), nil
}

// Close unloads the library. Code obtained from it must no longer be called.
func (l *Library) Close() error {
	if l.handle == 0 {
		return nil
	}
	h := l.handle
	l.handle = 0
	if err := closeLib(h); err != nil {
		return &Error{Op: "close", Path: l.path, Err: err}
	}
	return nil
}
