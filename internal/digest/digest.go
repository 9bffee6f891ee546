// Package digest computes normalized content digests for duplicate
// detection. Two files that differ only in line-ending style or trailing
// whitespace produce the same digest; binary content is hashed byte for
// byte. The digest is BLAKE3-256, deterministic across runs and platforms.
package digest

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/zeebo/blake3"

	"github.com/Soulfra/document-generator-mvp-sub009/pkg/models"
)

// Hash computes the content digest for the file at path. The returned bool
// is true when the content was hashed as normalized text, false when the
// raw-byte fallback was used. The only possible error is the file being
// unreadable; callers absorb that per entry.
func Hash(path string) (models.Digest, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false, fmt.Errorf("failed to read file: %w", err)
	}
	return HashBytes(data)
}

// HashBytes digests in-memory content using the same rules as Hash.
func HashBytes(data []byte) (models.Digest, bool, error) {
	if utf8.Valid(data) {
		return sum([]byte(Normalize(string(data)))), true, nil
	}
	// Binary fallback: hash raw bytes, no normalization
	return sum(data), false, nil
}

// Normalize canonicalizes text content: all line endings become "\n",
// trailing whitespace is stripped from every line, and the whole content
// is trimmed of leading and trailing whitespace.
func Normalize(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " \t")
	}

	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func sum(data []byte) models.Digest {
	h := blake3.Sum256(data)
	return models.Digest(hex.EncodeToString(h[:]))
}
