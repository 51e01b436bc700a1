// Package store defines the key-value contract the apps persist through
// and a typed get-all/put-all view over one key.
package store

import (
	"errors"
	"fmt"
	"strings"
)

// Store is a persistent key-value store. Values are opaque bytes; the apps
// keep a whole JSON-encoded collection under a single key.
type Store interface {
	// Read returns ok=false when the key was never written.
	Read(key string) (value []byte, ok bool, err error)
	Write(key string, value []byte) error
	Close() error
}

var ErrInvalidKey = errors.New("invalid store key")

// ValidateKey rejects keys that cannot double as a file name.
func ValidateKey(key string) error {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}
