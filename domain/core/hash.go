package core

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash represents a cryptographic hash
type Hash string

// NewHash creates a new hash from data
func NewHash(data []byte) Hash {
	sum := sha256.Sum256(data)
	return Hash(hex.EncodeToString(sum[:]))
}

// String returns the string representation
func (h Hash) String() string {
	return string(h)
}

// IsEmpty checks if the hash is empty
func (h Hash) IsEmpty() bool {
	return h == ""
}

// HashMatrix computes a deterministic content hash of a cell matrix. Cells
// and rows are delimited with unit/record separators so shifting a cell
// across a row boundary always changes the hash.
func HashMatrix(matrix [][]string) Hash {
	h := sha256.New()
	for _, row := range matrix {
		for _, cell := range row {
			h.Write([]byte(cell))
			h.Write([]byte{0x1f})
		}
		h.Write([]byte{0x1e})
	}
	return Hash(hex.EncodeToString(h.Sum(nil)))
}
