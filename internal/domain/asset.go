package domain

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"
)

// Asset represents a generated image and its provenance metadata.
type Asset struct {
	ID           string
	Prompt       string
	Category     string
	Style        string
	Dimensions   string
	Model        string
	StorageKey   string
	MIME         string
	Bytes        int64
	Width        int
	Height       int
	ColorPalette []string
	Country      string
	CreatedAt    time.Time
}

// NewAssetID derives a 12-hex identifier from the request content and the
// current timestamp. Uniqueness is probabilistic, not guaranteed; the
// persistence layer treats a collision as an insert conflict.
func NewAssetID(prompt, category, style string, now time.Time) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%s|%d", prompt, category, style, now.UnixNano())))
	return hex.EncodeToString(sum[:])[:12]
}
