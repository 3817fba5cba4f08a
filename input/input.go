package input

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Stdin is the argument that selects standard input.
const Stdin = "-"

var (
	// ErrNoInput is returned when no input argument was given.
	ErrNoInput = errors.New(`input: expected input file path or "-"`)

	// ErrNotFound is returned when the argument resolves to no existing file.
	ErrNotFound = errors.New("input: file not found")
)

// Option configures Read and Resolve.
type Option func(*options)

type options struct {
	stdin      io.Reader
	searchDirs []string
}

func defaultOptions() options {
	return options{stdin: os.Stdin, searchDirs: []string{"inputs"}}
}

// WithStdin replaces the reader used for the "-" argument.
func WithStdin(r io.Reader) Option {
	return func(o *options) {
		if r != nil {
			o.stdin = r
		}
	}
}

// WithSearchDirs replaces the fallback directories searched for relative
// paths. Relative directories are taken from the working directory.
func WithSearchDirs(dirs ...string) Option {
	return func(o *options) { o.searchDirs = dirs }
}

// Read returns the whole puzzle input selected by arg.
func Read(arg string, opts ...Option) (string, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if arg == "" {
		return "", ErrNoInput
	}
	if arg == Stdin {
		b, err := io.ReadAll(o.stdin)
		if err != nil {
			return "", fmt.Errorf("input: reading stdin: %w", err)
		}

		return string(b), nil
	}

	path, err := resolve(arg, o)
	if err != nil {
		return "", err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("input: %w", err)
	}

	return string(b), nil
}

// Resolve returns the path Read would open for arg, without reading it.
func Resolve(arg string, opts ...Option) (string, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if arg == "" || arg == Stdin {
		return "", ErrNoInput
	}

	return resolve(arg, o)
}

func resolve(arg string, o options) (string, error) {
	if filepath.IsAbs(arg) {
		if isFile(arg) {
			return arg, nil
		}

		return "", fmt.Errorf("%w: %s", ErrNotFound, arg)
	}
	if isFile(arg) {
		return arg, nil
	}
	for _, dir := range o.searchDirs {
		candidate := filepath.Join(dir, arg)
		if isFile(candidate) {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrNotFound, arg)
}

func isFile(path string) bool {
	fi, err := os.Stat(path)

	return err == nil && !fi.IsDir()
}
