package waybar

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"os"

	"github.com/harrisonrobin/taskbar/pkg/errors"
	"github.com/harrisonrobin/taskbar/pkg/logging"
)

// Encode writes out as a single JSON line. HTML characters are written as-is
// since Waybar is not a browser.
func Encode(w io.Writer, out Output) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(out)
}

// EncodeIndent is Encode with two-space indentation, for debugging.
func EncodeIndent(w io.Writer, out Output) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// WriteFile creates or truncates path and writes out to it as one JSON line.
func WriteFile(path string, out Output, log *logging.Logger) error {
	var buf bytes.Buffer
	if err := Encode(&buf, out); err != nil {
		return &errors.IOError{Op: "encode", Path: path, Err: err}
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return &errors.IOError{Op: "open", Path: path, Err: err}
	}
	log.Info("opened summary file", "path", path)

	w := bufio.NewWriter(f)
	if _, err := w.Write(buf.Bytes()); err != nil {
		f.Close()
		return &errors.IOError{Op: "write", Path: path, Err: err}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return &errors.IOError{Op: "write", Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &errors.IOError{Op: "close", Path: path, Err: err}
	}

	log.Info("summary written", "path", path, "bytes", buf.Len())
	return nil
}
