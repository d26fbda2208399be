package engine

import (
	"strings"

	"github.com/liliang-cn/datagenie/internal/domain"
)

// Keyword sets are checked in order; the first matching category wins, so
// retail takes priority over property and school.
var (
	retailKeywords   = []string{"repair", "store", "retail", "shop", "business", "mobile"}
	propertyKeywords = []string{"buy", "property", "apartment", "house", "near station", "investment"}
	schoolKeywords   = []string{"school", "kid", "child", "enrol", "education"}
)

// DetectIntent classifies a free-text problem description into an intent
// category. Case-insensitive, pure, deterministic. Empty or whitespace-only
// text classifies as generic.
func DetectIntent(text string) domain.Intent {
	lower := strings.ToLower(text)

	if containsAny(lower, retailKeywords) {
		return domain.IntentRetail
	}
	if containsAny(lower, propertyKeywords) {
		return domain.IntentProperty
	}
	if containsAny(lower, schoolKeywords) {
		return domain.IntentSchool
	}
	return domain.IntentGeneric
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
