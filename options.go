package readstream

import (
	"github.com/iotaledger/hive.go/log"
	"github.com/iotaledger/hive.go/runtime/options"
)

// WithLogger is an option that sets the logger the Reader reports reads and its closing to.
func WithLogger(logger log.Logger) options.Option[Reader] {
	return func(r *Reader) {
		r.logger = logger
	}
}

// WithEvents is an option that makes the Reader trigger the given Events instead of creating its own.
func WithEvents(events *Events) options.Option[Reader] {
	return func(r *Reader) {
		r.Events = events
	}
}
