package graphio

import "github.com/timtadh/data-structures/errors"

type Kind int

const (
	InputNotFound Kind = iota
	InputMalformed
)

func (k Kind) String() string {
	switch k {
	case InputNotFound:
		return "InputNotFound"
	case InputMalformed:
		return "InputMalformed"
	default:
		return "Unknown"
	}
}

type LoadError struct {
	Kind Kind
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return errors.Errorf("%v: %v: %v", e.Kind, e.Path, e.Err).Error()
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func notFound(path string, cause error) error {
	return &LoadError{Kind: InputNotFound, Path: path, Err: cause}
}

func malformed(path string, cause error) error {
	return &LoadError{Kind: InputMalformed, Path: path, Err: cause}
}
