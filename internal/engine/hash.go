package engine

import (
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"os"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/zeebo/blake3"
)

// Digest selects the content hash used for equivalence checks.
type Digest int

const (
	BLAKE3 Digest = iota
	XXHash
)

func (d Digest) String() string {
	switch d {
	case BLAKE3:
		return "blake3"
	case XXHash:
		return "xxhash"
	default:
		return "unknown"
	}
}

// ParseDigest parses a --digest value.
func ParseDigest(s string) (Digest, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "blake3":
		return BLAKE3, nil
	case "xxhash", "xxh64":
		return XXHash, nil
	default:
		return BLAKE3, fmt.Errorf("unknown digest %q (want blake3 or xxhash)", s)
	}
}

func (d Digest) newHash() hash.Hash {
	if d == XXHash {
		return xxhash.New()
	}
	return blake3.New()
}

// HashFile computes the digest of the file at path, returning it hex-encoded.
func HashFile(path string, d Digest) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	h := d.newHash()
	buf := make([]byte, 32*1024)
	if _, err := io.CopyBuffer(h, f, buf); err != nil {
		return "", fmt.Errorf("hash %s: %w", path, err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
