package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Source kinds
const (
	KindCV    = "cv"
	KindOffer = "offer"
)

// Metadata describes an ingested CV or job offer
type Metadata struct {
	Kind      string `json:"kind"`
	Source    string `json:"source"` // file path or URL
	Format    string `json:"format,omitempty"`
	Platform  string `json:"platform,omitempty"` // job board of an offer URL
	Title     string `json:"title,omitempty"`
	Browser   bool   `json:"browser,omitempty"` // rendered with headless Chrome
	Timestamp string `json:"timestamp"`         // RFC3339
	Hash      string `json:"hash"`              // SHA256 of the cleaned text
	Chars     int    `json:"chars"`
}

// NewMetadata stamps content read from source
func NewMetadata(content string, source string) *Metadata {
	return &Metadata{
		Source:    source,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Hash:      computeHash(content),
		Chars:     len([]rune(content)),
	}
}

func computeHash(content string) string {
	sum := sha256.Sum256([]byte(content))
	return hex.EncodeToString(sum[:])
}

// ToJSON marshals m indented
func (m *Metadata) ToJSON() ([]byte, error) {
	b, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal metadata to JSON: %w", err)
	}
	return b, nil
}
