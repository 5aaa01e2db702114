package cssgen

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/alexisbeaulieu97/themekit/internal/theme"
)

// Fingerprint returns a stable hash of everything Generate reads. Deep-equal
// documents with equal options share a fingerprint.
func Fingerprint(doc *theme.Document, opts Options) (string, error) {
	payload := struct {
		Document *theme.Document `json:"document"`
		Options  Options         `json:"options"`
	}{doc, opts.withDefaults()}

	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("fingerprint theme: %w", err)
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}
