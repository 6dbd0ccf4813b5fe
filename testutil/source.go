package testutil

import (
	"bytes"

	"github.com/iotaledger/hive.go/ierrors"
)

var (
	// ErrSourceClosed is returned by an ObservableSource that is read after it was closed.
	ErrSourceClosed = ierrors.New("source closed")
	// ErrSourceUnreadable is returned by every read of an UnreadableSource.
	ErrSourceUnreadable = ierrors.New("source does not support reading")
)

// ObservableSource is an in-memory source whose Close calls can be observed.
type ObservableSource struct {
	reader     *bytes.Reader
	closeCount int
	closeErr   error
}

// NewObservableSource creates an ObservableSource that yields the given data.
func NewObservableSource(data []byte) *ObservableSource {
	return &ObservableSource{
		reader: bytes.NewReader(data),
	}
}

// WithCloseError makes Close return the given error.
func (o *ObservableSource) WithCloseError(err error) *ObservableSource {
	o.closeErr = err

	return o
}

// Read reads from the underlying data.
func (o *ObservableSource) Read(p []byte) (int, error) {
	if o.closeCount > 0 {
		return 0, ErrSourceClosed
	}

	return o.reader.Read(p)
}

// CanRead returns true until the source was closed.
func (o *ObservableSource) CanRead() bool {
	return o.closeCount == 0
}

// Close records the call.
func (o *ObservableSource) Close() error {
	o.closeCount++

	return o.closeErr
}

// CloseCalled returns true if Close was called at least once.
func (o *ObservableSource) CloseCalled() bool {
	return o.closeCount > 0
}

// CloseCount returns how often Close was called.
func (o *ObservableSource) CloseCount() int {
	return o.closeCount
}

// Remaining returns the number of bytes that were not read yet.
func (o *ObservableSource) Remaining() int {
	return o.reader.Len()
}

// UnreadableSource is a source that reports that it does not support reading.
type UnreadableSource struct{}

// Read always fails.
func (UnreadableSource) Read([]byte) (int, error) {
	return 0, ErrSourceUnreadable
}

// CanRead returns false.
func (UnreadableSource) CanRead() bool {
	return false
}
