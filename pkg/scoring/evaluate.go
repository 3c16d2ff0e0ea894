package scoring

import "strings"

// fieldCounts reports whether a one-time attribute value earns its rule's
// points. Nil never counts. Strings are trimmed and must be non-empty and, if
// the rule sets a minimum, at least that long. Any other present scalar
// counts.
func fieldCounts(value any, rule Rule) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		t := strings.TrimSpace(v)
		if t == "" {
			return false
		}
		if rule.MinLength > 0 && len(t) < rule.MinLength {
			return false
		}
		return true
	default:
		return true
	}
}

// collectionPoints awards points for a repeatable collection of n items:
// min(n, maxItems) * pointsPerItem, clamped to maxPoints. The two caps are
// independent so neither a huge list nor a mis-weighted per-item value can
// push a category past its ceiling.
func collectionPoints(n int, rule Rule) int {
	if n <= 0 {
		return 0
	}
	counted := n
	if counted > rule.MaxItems {
		counted = rule.MaxItems
	}
	raw := counted * rule.PointsPerItem
	if raw > rule.MaxPoints {
		return rule.MaxPoints
	}
	return raw
}
