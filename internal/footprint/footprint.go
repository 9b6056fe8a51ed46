// Package footprint derives deterministic binary encodings of
// parameter records, used as cache and store keys. The encoding is a
// msgpack pair (tag, record) with map keys sorted, so equal records
// always yield identical bytes across processes.
package footprint

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"

	"github.com/vmihailenco/msgpack/v5"
)

// Encode returns the stable byte encoding of the tagged value.
func Encode(tag string, v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetSortMapKeys(true)
	if err := enc.Encode(tag); err != nil {
		return nil, err
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Key returns the hex sha256 digest of the tagged value's encoding,
// suitable as a filesystem or map key.
func Key(tag string, v any) (string, error) {
	data, err := Encode(tag, v)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
