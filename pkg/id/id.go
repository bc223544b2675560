package id

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// Source hands out ULIDs for journal records. Entropy is monotonic so two
// ids minted in the same millisecond still sort in creation order.
type Source struct {
	mu      sync.Mutex
	entropy io.Reader
	now     func() time.Time
}

// NewSource returns a Source seeded from crypto/rand. A nil clock means
// time.Now.
func NewSource(now func() time.Time) *Source {
	var seed int64
	_ = binary.Read(cryptoRand.Reader, binary.LittleEndian, &seed)
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if now == nil {
		now = time.Now
	}
	return &Source{
		entropy: ulid.Monotonic(rand.New(rand.NewSource(seed)), 0),
		now:     now,
	}
}

// New returns the next ULID string.
func (s *Source) New() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := ulid.New(ulid.Timestamp(s.now().UTC()), s.entropy)
	if err != nil {
		// Monotonic entropy only fails on overflow within one millisecond
		// or when the clock runs backwards past the previous id.
		panic(err)
	}
	return id.String()
}

var std = NewSource(nil)

// New returns a ULID from the package-level source.
func New() string {
	return std.New()
}
