package readstream

import (
	"github.com/iotaledger/hive.go/runtime/event"
)

// Events contains the events of a Reader.
type Events struct {
	// Read is triggered with the number of bytes of every read that yielded data.
	Read *event.Event1[int]

	// Closed is triggered once, with the number of bytes read before the counter was reset.
	Closed *event.Event1[int64]

	event.Group[Events, *Events]
}

// NewEvents creates a new Events group, optionally linked to the given target.
var NewEvents = event.CreateGroupConstructor(func() *Events {
	return &Events{
		Read:   event.New1[int](),
		Closed: event.New1[int64](),
	}
})
