package console

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"pkt.systems/toterm/schema"
)

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

// NewSessionID returns a sortable unique session identifier.
func NewSessionID() schema.SessionID {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return schema.SessionID(ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String())
}
