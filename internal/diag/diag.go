// Package diag is a minimal file logger for tracing grammar construction:
// how many kernels the LR(0) phase interned, and how many rounds and edges
// the follow-propagation fixed point took to converge. It is off
// by default; cmd/lrgen enables it with --log.
package diag

import (
	"fmt"
	"io"
	"os"
)

type logger struct {
	out io.WriteCloser
}

var l *logger

// Init opens outputPath for writing, truncating it, and enables Log/Enabled
// until Close is called.
func Init(outputPath string) error {
	f, err := os.OpenFile(outputPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
	if err != nil {
		return err
	}

	l = &logger{
		out: f,
	}

	return nil
}

// Close closes the underlying file. It is a no-op if Init was never called.
func Close() error {
	if l == nil {
		return nil
	}

	err := l.out.Close()
	l = nil
	return err
}

// Enabled reports whether Init has been called and Close has not.
func Enabled() bool {
	return l != nil
}

// Log writes a formatted line, a no-op if Init was never called.
func Log(format string, opts ...interface{}) {
	if l == nil {
		return
	}
	fmt.Fprintf(l.out, format+"\n", opts...)
}
