package readstream

import (
	"io"
	"os"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/runtime/ioutils"
	"github.com/iotaledger/hive.go/runtime/options"
)

// With creates a Reader on top of inner, passes it to consume and closes it afterwards, also if consume fails or
// panics. Errors of consume and Close are joined.
func With(inner io.Reader, leaveInnerOpen bool, consume func(reader *Reader) error, opts ...options.Option[Reader]) (err error) {
	reader, err := New(inner, leaveInnerOpen, opts...)
	if err != nil {
		return err
	}

	defer func() {
		if closeErr := reader.Close(); closeErr != nil {
			err = ierrors.Join(err, ierrors.Wrap(closeErr, "failed to close read stream"))
		}
	}()

	return consume(reader)
}

// Open opens the file at the given path and returns a Reader that owns it.
func Open(path string, opts ...options.Option[Reader]) (*Reader, error) {
	exists, isDirectory, err := ioutils.PathExists(path)
	if err != nil {
		return nil, ierrors.Wrapf(err, "failed to stat %s", path)
	}
	if exists && isDirectory {
		return nil, ierrors.Wrapf(ErrInvalidArgument, "%s is a directory", path)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, ierrors.Wrapf(err, "failed to open %s", path)
	}

	reader, err := New(file, false, opts...)
	if err != nil {
		_ = file.Close()

		return nil, err
	}

	return reader, nil
}
