package toast

import (
	"fmt"
	"math/rand/v2"
	"sync/atomic"
	"time"
)

// ID uniquely identifies a toast within the process.
type ID string

var idSeq atomic.Uint64

// NewID produces an identifier from the creation timestamp plus a random
// suffix. The sequence component keeps two toasts created within the same
// millisecond from ever colliding.
func NewID() ID {
	return ID(fmt.Sprintf("%d-%05d-%d", time.Now().UnixMilli(), rand.IntN(100000), idSeq.Add(1)))
}
