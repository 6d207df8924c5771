// Package statement renders a printable account statement: a short header
// followed by the account's journal lines in insertion order.
package statement

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
)

const DefaultFileMode fs.FileMode = 0o644

var separator = strings.Repeat("-", 28)

type Statement struct {
	HolderName string
	CardNumber uint64
	PIN        uint64
	Lines      []string
}

// WriteTo writes the statement with every line newline-terminated.
func (s Statement) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64

	write := func(format string, args ...any) error {
		c, err := fmt.Fprintf(bw, format, args...)
		n += int64(c)
		return err
	}

	if err := write("Name: %s\n", s.HolderName); err != nil {
		return n, fmt.Errorf("WriteTo: %w", err)
	}
	if err := write("Card Number: %d\n", s.CardNumber); err != nil {
		return n, fmt.Errorf("WriteTo: %w", err)
	}
	if err := write("PIN: %d\n", s.PIN); err != nil {
		return n, fmt.Errorf("WriteTo: %w", err)
	}
	if err := write("%s\n", separator); err != nil {
		return n, fmt.Errorf("WriteTo: %w", err)
	}
	for _, line := range s.Lines {
		if err := write("%s\n", line); err != nil {
			return n, fmt.Errorf("WriteTo: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return n, fmt.Errorf("WriteTo: flush: %w", err)
	}
	return n, nil
}

type Writer struct {
	mode fs.FileMode
}

func NewWriter(mode fs.FileMode) *Writer {
	if mode == 0 {
		mode = DefaultFileMode
	}
	return &Writer{mode: mode}
}

// WriteFile writes s to path, truncating any existing file. The file is
// closed before returning, including on failure.
func (w *Writer) WriteFile(path string, s Statement) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, w.mode)
	if err != nil {
		return fmt.Errorf("WriteFile: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("WriteFile: close: %w", cerr)
		}
	}()

	if _, err := s.WriteTo(f); err != nil {
		return fmt.Errorf("WriteFile: %w", err)
	}
	return nil
}
