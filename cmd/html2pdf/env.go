package main

import (
	"context"
	"io"
	"os"
	"os/exec"

	html2pdf "github.com/alnah/go-html2pdf"
)

// Converter is the part of *html2pdf.Converter the CLI uses.
type Converter interface {
	Convert(ctx context.Context, input html2pdf.Input) (*html2pdf.Result, error)
	Styles() []string
	Close() error
}

// Compile-time interface implementation check.
var _ Converter = (*html2pdf.Converter)(nil)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Stdin        io.Reader
	Stdout       io.Writer
	Stderr       io.Writer
	NewConverter func(opts ...html2pdf.Option) (Converter, error)
	LookPath     func(file string) (string, error)
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		NewConverter: func(opts ...html2pdf.Option) (Converter, error) {
			conv, err := html2pdf.NewConverter(opts...)
			if err != nil {
				return nil, err
			}
			return conv, nil
		},
		LookPath: exec.LookPath,
	}
}
