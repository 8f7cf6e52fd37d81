// Package requestid generates sortable identifiers for connections and
// requests: a UUIDv7 rendered as 26 characters of Crockford base32.
package requestid

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	rand "math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/coder/quartz"
)

// Length is the number of characters in an ID
const Length = 26

const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Generator creates IDs stamped with its clock's time
type Generator struct {
	clock quartz.Clock

	mu  sync.Mutex
	rng *rand.Rand
}

// NewGenerator creates a generator. A nil rng draws the random bits from
// crypto/rand.
func NewGenerator(clock quartz.Clock, rng *rand.Rand) *Generator {
	return &Generator{clock: clock, rng: rng}
}

// Next returns a new ID
func (g *Generator) Next() string {
	return encode(g.uuid())
}

func (g *Generator) uuid() [16]byte {
	var id [16]byte

	// 48-bit millisecond timestamp
	ms := uint64(g.clock.Now().UnixMilli())
	binary.BigEndian.PutUint16(id[0:2], uint16(ms>>32))
	binary.BigEndian.PutUint32(id[2:6], uint32(ms))

	if g.rng != nil {
		g.mu.Lock()
		binary.BigEndian.PutUint16(id[6:8], uint16(g.rng.Uint32()))
		binary.BigEndian.PutUint64(id[8:16], g.rng.Uint64())
		g.mu.Unlock()
	} else if _, err := crand.Read(id[6:]); err != nil {
		panic("failed to generate random bytes: " + err.Error())
	}

	id[6] = (id[6] & 0x0f) | 0x70 // version 7
	id[8] = (id[8] & 0x3f) | 0x80 // variant 10
	return id
}

// encode renders 128 bits as 26 base32 characters, most significant first.
// The first character carries only three bits so is always 0-7.
func encode(id [16]byte) string {
	hi := binary.BigEndian.Uint64(id[:8])
	lo := binary.BigEndian.Uint64(id[8:])

	out := make([]byte, Length)
	for i := Length - 1; i >= 0; i-- {
		out[i] = alphabet[lo&0x1f]
		lo = lo>>5 | hi<<59
		hi >>= 5
	}
	return string(out)
}

func decode(s string) ([16]byte, error) {
	var id [16]byte
	if len(s) != Length {
		return id, fmt.Errorf("request ID must be exactly %d characters, got %d", Length, len(s))
	}
	if s[0] > '7' {
		return id, fmt.Errorf("request ID first character must be 0-7, got %c", s[0])
	}

	var hi, lo uint64
	for i := 0; i < Length; i++ {
		v := strings.IndexByte(alphabet, s[i])
		if v < 0 {
			return id, fmt.Errorf("invalid character %c at position %d", s[i], i)
		}
		hi = hi<<5 | lo>>59
		lo = lo<<5 | uint64(v)
	}
	binary.BigEndian.PutUint64(id[:8], hi)
	binary.BigEndian.PutUint64(id[8:], lo)
	return id, nil
}

// Validate checks s is a well formed ID
func Validate(s string) error {
	_, err := decode(s)
	return err
}

// Time returns the millisecond timestamp embedded in an ID
func Time(s string) (time.Time, error) {
	id, err := decode(s)
	if err != nil {
		return time.Time{}, err
	}
	ms := int64(binary.BigEndian.Uint16(id[0:2]))<<32 | int64(binary.BigEndian.Uint32(id[2:6]))
	return time.UnixMilli(ms), nil
}
