package readstream

import (
	"io"

	"github.com/iotaledger/hive.go/ierrors"
)

// Seek always fails, a Reader can only move forward by reading.
func (r *Reader) Seek(_ int64, _ int) (int64, error) {
	return 0, r.unsupported()
}

// Write always fails and never touches the inner source.
func (r *Reader) Write(_ []byte) (int, error) {
	return 0, r.unsupported()
}

// Truncate always fails, the length of the inner source cannot be changed through a Reader.
func (r *Reader) Truncate(_ int64) error {
	return r.unsupported()
}

// Position always fails, a Reader has no notion of a position.
func (r *Reader) Position() (int64, error) {
	return 0, r.unsupported()
}

// SetPosition always fails.
func (r *Reader) SetPosition(_ int64) error {
	return r.unsupported()
}

// Length always fails, a Reader has no notion of a length.
func (r *Reader) Length() (int64, error) {
	return 0, r.unsupported()
}

// Flush does nothing, there is nothing buffered that could be flushed.
func (r *Reader) Flush() error {
	return nil
}

// CanRead reports whether reading is supported by attempting a zero-length read.
// A closed Reader still reports true.
func (r *Reader) CanRead() bool {
	_, err := r.Read(nil)

	return !ierrors.Is(err, ErrUnsupported)
}

// CanSeek reports whether seeking is supported by attempting a seek to the start.
// Unlike CanRead, a closed Reader reports false.
func (r *Reader) CanSeek() bool {
	_, err := r.Seek(0, io.SeekStart)

	return !ierrors.Is(err, ErrUnsupported) && !ierrors.Is(err, ErrClosed)
}

// CanWrite reports whether writing is supported by attempting a zero-length write.
// Unlike CanRead, a closed Reader reports false.
func (r *Reader) CanWrite() bool {
	_, err := r.Write(nil)

	return !ierrors.Is(err, ErrUnsupported) && !ierrors.Is(err, ErrClosed)
}

func (r *Reader) unsupported() error {
	if r.closed {
		return ErrClosed
	}

	return ErrUnsupported
}
