// Package readstream provides Reader, a read-only and forward-only decorator for an io.Reader that counts the
// bytes passing through it and owns the lifetime of the wrapped source.
package readstream

import (
	"io"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/log"
	"github.com/iotaledger/hive.go/runtime/options"
)

// ReadSupporter is implemented by sources that can report whether they allow reading.
type ReadSupporter interface {
	CanRead() bool
}

// Reader forwards reads to an inner source and keeps track of the number of bytes it yielded.
//
// Writing, seeking, truncating and position or length queries are part of its method set but always fail. Closing
// the Reader closes the inner source unless it was created with leaveInnerOpen set.
//
// A Reader is not safe for concurrent use.
type Reader struct {
	// Events contains the events that are triggered by the Reader.
	Events *Events

	inner          io.Reader
	leaveInnerOpen bool
	bytesRead      int64
	closed         bool
	logger         log.Logger
}

var (
	_ io.ReadCloser = (*Reader)(nil)
	_ io.Seeker     = (*Reader)(nil)
	_ io.Writer     = (*Reader)(nil)
	_ ReadSupporter = (*Reader)(nil)
)

// New creates a Reader on top of inner.
// If leaveInnerOpen is true, closing the Reader leaves inner open and the caller remains responsible for it.
func New(inner io.Reader, leaveInnerOpen bool, opts ...options.Option[Reader]) (*Reader, error) {
	if inner == nil {
		return nil, ierrors.Wrap(ErrInvalidArgument, "inner source must not be nil")
	}

	if supporter, ok := inner.(ReadSupporter); ok && !supporter.CanRead() {
		return nil, ierrors.Wrapf(ErrInvalidArgument, "inner source %T does not support reading", inner)
	}

	return options.Apply(&Reader{
		inner:          inner,
		leaveInnerOpen: leaveInnerOpen,
		logger:         log.EmptyLogger,
	}, opts, func(r *Reader) {
		if r.Events == nil {
			r.Events = NewEvents()
		}

		if r.logger == nil {
			r.logger = log.EmptyLogger
		}
	}), nil
}

// Read reads up to len(p) bytes from the inner source into p.
// Errors of the inner source, including io.EOF, are returned unchanged.
func (r *Reader) Read(p []byte) (int, error) {
	if r.closed {
		return 0, ErrClosed
	}

	n, err := r.inner.Read(p)
	r.bytesRead += int64(n)

	if n > 0 {
		r.logger.LogTrace("read", "bytes", n, "bytesRead", r.bytesRead)
		r.Events.Read.Trigger(n)
	}

	return n, err
}

// ReadInto reads up to count bytes into buffer, starting at offset. Bytes of buffer outside that range are not
// touched.
func (r *Reader) ReadInto(buffer []byte, offset int, count int) (int, error) {
	if r.closed {
		return 0, ErrClosed
	}

	if offset < 0 || count < 0 || offset > len(buffer)-count {
		return 0, ierrors.Wrapf(ErrInvalidArgument, "offset %d and count %d exceed buffer of length %d", offset, count, len(buffer))
	}

	return r.Read(buffer[offset : offset+count])
}

// BytesRead returns the number of bytes read so far. It is reset to 0 when the Reader is closed.
func (r *Reader) BytesRead() int64 {
	return r.bytesRead
}

// IsOpen returns true until the Reader is closed.
func (r *Reader) IsOpen() bool {
	return !r.closed
}

// LeavesInnerOpen returns true if closing the Reader leaves the inner source open.
func (r *Reader) LeavesInnerOpen() bool {
	return r.leaveInnerOpen
}

// Close releases the inner source, closing it first if the Reader owns it.
// Only the first call has an effect, later calls return nil.
func (r *Reader) Close() (err error) {
	if r.closed {
		return nil
	}

	var innerClosed bool
	if closer, ok := r.inner.(io.Closer); ok && !r.leaveInnerOpen {
		err = closer.Close()
		innerClosed = true
	}

	bytesRead := r.bytesRead

	r.inner = nil
	r.bytesRead = 0
	r.closed = true

	r.logger.LogDebug("closed", "bytesRead", bytesRead, "innerClosed", innerClosed, "err", err)
	r.Events.Closed.Trigger(bytesRead)

	return err
}
