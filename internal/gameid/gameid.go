// Package gameid mints session identifiers: a UUIDv7 rendered as 26 characters of
// lowercase Crockford base32, so ids sort by creation time.
package gameid

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/coder/quartz"
)

const (
	alphabet = "0123456789abcdefghjkmnpqrstvwxyz"
	idLen    = 26
)

// Generator mints ids from a clock and an entropy source.
type Generator struct {
	clock   quartz.Clock
	entropy io.Reader
}

// NewGenerator returns a generator. A nil clock uses wall time and a nil entropy source
// uses crypto/rand.
func NewGenerator(clock quartz.Clock, entropy io.Reader) *Generator {
	if clock == nil {
		clock = quartz.NewReal()
	}
	if entropy == nil {
		entropy = rand.Reader
	}
	return &Generator{clock: clock, entropy: entropy}
}

// Generate returns a new id.
func (g *Generator) Generate() (string, error) {
	var id [16]byte
	binary.BigEndian.PutUint64(id[:8], uint64(g.clock.Now().UnixMilli())<<16)
	if _, err := io.ReadFull(g.entropy, id[6:]); err != nil {
		return "", fmt.Errorf("read entropy: %w", err)
	}
	id[6] = id[6]&0x0f | 0x70 // version 7
	id[8] = id[8]&0x3f | 0x80 // RFC 4122 variant
	return encode(id), nil
}

// Generate mints an id from wall time and crypto/rand.
func Generate() string {
	id, err := NewGenerator(nil, nil).Generate()
	if err != nil {
		panic("gameid: " + err.Error())
	}
	return id
}

// encode renders the 128 bits as 130 bits with two leading zeros, five bits per character.
func encode(id [16]byte) string {
	hi := binary.BigEndian.Uint64(id[:8])
	lo := binary.BigEndian.Uint64(id[8:])
	var out [idLen]byte
	for i := idLen - 1; i >= 0; i-- {
		out[i] = alphabet[lo&0x1f]
		lo = lo>>5 | hi<<59
		hi >>= 5
	}
	return string(out[:])
}

func decode(s string) ([16]byte, error) {
	var id [16]byte
	if err := Validate(s); err != nil {
		return id, err
	}
	var hi, lo uint64
	for i := range idLen {
		v := uint64(strings.IndexByte(alphabet, s[i]))
		hi = hi<<5 | lo>>59
		lo = lo<<5 | v
	}
	binary.BigEndian.PutUint64(id[:8], hi)
	binary.BigEndian.PutUint64(id[8:], lo)
	return id, nil
}

// Validate checks that id is a well-formed session id.
func Validate(id string) error {
	if len(id) != idLen {
		return fmt.Errorf("session id must be %d characters, got %d", idLen, len(id))
	}
	if id[0] > '7' {
		return fmt.Errorf("session id must start with 0-7, got %q", id[0])
	}
	for i := range len(id) {
		if strings.IndexByte(alphabet, id[i]) < 0 {
			return fmt.Errorf("invalid character %q at position %d", id[i], i)
		}
	}
	return nil
}

// Timestamp returns the creation time embedded in id, at millisecond precision.
func Timestamp(id string) (time.Time, error) {
	raw, err := decode(id)
	if err != nil {
		return time.Time{}, err
	}
	ms := binary.BigEndian.Uint64(raw[:8]) >> 16
	return time.UnixMilli(int64(ms)), nil
}
