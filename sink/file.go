package sink

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/google/uuid"
)

// FileSink writes one line per tuple: space-separated columns followed by
// the tag name, e.g. "0 1 3 MATCHED". It buffers writes and must be closed
// to flush and release its underlying writer.
type FileSink struct {
	mu     sync.Mutex
	w      *bufio.Writer
	closer io.Closer // nil when w does not own its writer (e.g. os.Stdout)
	closed bool
}

// NewFileSink wraps w, buffering writes. The caller remains responsible for
// closing w; Close only flushes the buffer.
func NewFileSink(w io.Writer) *FileSink {
	return &FileSink{w: bufio.NewWriter(w)}
}

// CreateFileSink creates (or truncates) the file at path and returns a
// FileSink that owns it: Close both flushes and closes the file.
func CreateFileSink(path string) (*FileSink, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	return &FileSink{w: bufio.NewWriter(f), closer: f}, nil
}

// WriteHeader writes a comment line stamping the output with storeID, the
// GraphStore run it was produced against. Purely diagnostic; readers that
// do not care about provenance can ignore lines starting with "#".
func (f *FileSink) WriteHeader(storeID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ErrSinkClosed
	}
	_, err := fmt.Fprintf(f.w, "# store %s\n", storeID)

	return err
}

// Append writes t as one line and returns any write error.
func (f *FileSink) Append(t Tuple) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return ErrSinkClosed
	}

	for _, col := range t.Columns {
		if _, err := fmt.Fprintf(f.w, "%v ", col.Raw()); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(f.w, t.Tag)

	return err
}

// Close flushes buffered output and, if FileSink owns its writer (created
// via CreateFileSink), closes it. Idempotent.
func (f *FileSink) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.closed {
		return nil
	}
	f.closed = true

	if err := f.w.Flush(); err != nil {
		return err
	}
	if f.closer != nil {
		return f.closer.Close()
	}

	return nil
}
