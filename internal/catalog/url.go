package catalog

import (
	"regexp"
	"strings"
)

var urlPattern = regexp.MustCompile(`(?i)https?://[^\s<>"']+`)

// shopHints mark a URL as a shopping page.
var shopHints = []string{"shop", "store", "boutique", "catalog", "collection", "product"}

// FindShopURL returns the first URL in text when it looks like a shopping
// page. Only the first URL is considered.
func FindShopURL(text string) (string, bool) {
	raw := urlPattern.FindString(text)
	if raw == "" {
		return "", false
	}
	u := strings.TrimRight(raw, ".,;:!?)]}")
	lower := strings.ToLower(u)
	for _, hint := range shopHints {
		if strings.Contains(lower, hint) {
			return u, true
		}
	}
	return "", false
}
