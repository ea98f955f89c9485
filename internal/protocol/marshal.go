// Package protocol is the msgpack encoding of the persisted session blob.
package protocol

import (
	"errors"
	"fmt"

	"github.com/lox/wordpot/internal/game"
)

var (
	// ErrUnknownMessageType is returned for values this package cannot encode.
	ErrUnknownMessageType = errors.New("protocol: unknown message type")

	// ErrTrailingBytes is returned when a blob holds data after the encoded value.
	ErrTrailingBytes = errors.New("protocol: trailing bytes after message")

	// ErrUnsupportedVersion is returned for blobs written by an incompatible format.
	ErrUnsupportedVersion = errors.New("protocol: unsupported format version")
)

// Marshal serializes a message to msgpack format
func Marshal(v any) ([]byte, error) {
	switch msg := v.(type) {
	case *game.Session:
		if msg == nil {
			return nil, fmt.Errorf("%w: nil session", ErrUnknownMessageType)
		}
		return AppendSession(nil, msg), nil
	default:
		return nil, ErrUnknownMessageType
	}
}

// Unmarshal deserializes msgpack data into a message
func Unmarshal(data []byte, v any) error {
	switch msg := v.(type) {
	case *game.Session:
		s, rest, err := ReadSession(data)
		if err != nil {
			return err
		}
		if len(rest) > 0 {
			return fmt.Errorf("%w: %d bytes", ErrTrailingBytes, len(rest))
		}
		*msg = *s
		return nil
	default:
		return ErrUnknownMessageType
	}
}
