package main

import (
	"context"
	"io"
	"errors"
	"log/slog"

	"github.com/fwojciec/chatexport"
	"github.com/fwojciec/chatexport/export"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Catalog  chatexport.Catalog
	Exporter *export.Exporter
}

// ExportCmd handles exporting one or more chat pages.
type ExportCmd struct {
	Files       []string
	Output      string
	Concurrency int
}

// reportedError wraps an error whose localized diagnostic has already been
// printed to stdout.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

// ErrorReported reports whether err was already shown to the user, in which
// case it must not be printed again.
func ErrorReported(err error) bool {
	var r *reportedError
	return errors.As(err, &r)
}
