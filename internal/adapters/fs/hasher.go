package fs

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/fred/internal/core/ports"
)

var _ ports.ContentHasher = (*Hasher)(nil)

// Hasher computes xxhash digests of file content.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Digest returns the 16 hex digit XXHash of content.
func (h *Hasher) Digest(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}
