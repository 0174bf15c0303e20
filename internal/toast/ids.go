package toast

import (
	"strconv"

	"github.com/google/uuid"
)

// IDGenerator produces identifiers for toasts enqueued without one. The queue
// calls it while holding its lock, so implementations need no synchronisation
// of their own.
type IDGenerator func() string

// CounterIDs returns a generator yielding "1", "2", ... for the lifetime of
// the generator.
func CounterIDs() IDGenerator {
	var n uint64
	return func() string {
		n++
		return strconv.FormatUint(n, 10)
	}
}

// UUIDs returns a generator yielding random version 4 UUIDs.
func UUIDs() IDGenerator {
	return uuid.NewString
}
