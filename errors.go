package readstream

import (
	"errors"

	"github.com/iotaledger/hive.go/ierrors"
)

var (
	// ErrInvalidArgument gets returned when a Reader is constructed from an unusable source or when a read range
	// does not fit the destination buffer.
	ErrInvalidArgument = ierrors.New("invalid argument")
	// ErrClosed gets returned by every operation (except Flush and Close) on a Reader that was already closed.
	ErrClosed = ierrors.New("read stream already closed")
	// ErrUnsupported gets returned for operations a forward-only Reader can never perform (seek, write, truncate,
	// position and length access). It matches errors.ErrUnsupported as well.
	ErrUnsupported = ierrors.WithMessage(errors.ErrUnsupported, "read stream is read-only and forward-only")
)
