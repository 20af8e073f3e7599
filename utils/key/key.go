package key

import (
	"bytes"
	"strings"
)

// DefaultDelimiter represents the default delimiter used for the KV store keys when concatenating them together
const DefaultDelimiter = "_"

// Key provides a type safe way to interact with the store
type Key interface {
	Append(Key) Key
	Bytes(delimiter ...string) []byte
	String() string
}

type basicKey struct {
	particles [][]byte
}

func (k basicKey) Append(suffix Key) Key {
	var bz [][]byte
	switch suffix := suffix.(type) {
	case basicKey:
		bz = suffix.particles
	default:
		bz = [][]byte{suffix.Bytes()}
	}

	particles := make([][]byte, 0, len(k.particles)+len(bz))
	particles = append(particles, k.particles...)

	return basicKey{
		particles: append(particles, bz...),
	}
}

func (k basicKey) Bytes(delimiter ...string) []byte {
	del := DefaultDelimiter
	if len(delimiter) == 1 {
		del = delimiter[0]
	}
	return bytes.Join(k.particles, []byte(del))
}

func (k basicKey) String() string {
	return string(k.Bytes())
}

// FromBz creates a new Key from bytes. The bytes are used as-is.
func FromBz(key []byte) Key {
	return basicKey{particles: [][]byte{key}}
}

// FromStr creates a new Key from a string. The string is lower-cased, so only use it for static keys.
func FromStr(key string) Key {
	return FromBz([]byte(strings.ToLower(key)))
}

// FromRawStr creates a new Key from a string without any normalization
func FromRawStr(key string) Key {
	return FromBz([]byte(key))
}
