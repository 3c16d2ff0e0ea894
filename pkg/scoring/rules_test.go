package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog_MaxPossiblePoints(t *testing.T) {
	cat := DefaultCatalog()

	assert.Equal(t, 127, cat.MaxPossiblePoints())

	// The constant must equal the sum of every rule's ceiling.
	sum := 0
	for _, r := range cat.Rules() {
		sum += r.MaxPoints
	}
	assert.Equal(t, cat.MaxPossiblePoints(), sum)
}

func TestDefaultCatalog_SectionMaxima(t *testing.T) {
	cat := DefaultCatalog()

	assert.Equal(t, 12, cat.SectionMax(SectionBasicInfo))
	assert.Equal(t, 11, cat.SectionMax(SectionSocialLinks))
	assert.Equal(t, 104, cat.SectionMax(SectionProfessionalInfo))
}

func TestDefaultCatalog_UniqueCategories(t *testing.T) {
	cat := DefaultCatalog()
	seen := map[string]bool{}
	for _, r := range cat.Rules() {
		assert.Falsef(t, seen[r.Category], "duplicate category %q", r.Category)
		seen[r.Category] = true
	}
}

func TestDefaultCatalog_RuleShapeConsistency(t *testing.T) {
	for _, r := range DefaultCatalog().Rules() {
		if r.Repeatable {
			require.Positivef(t, r.PointsPerItem, "%s: repeatable rule needs a per-item value", r.Category)
			require.Positivef(t, r.MaxItems, "%s: repeatable rule needs an item cap", r.Category)
			require.Positivef(t, r.MaxPoints, "%s: repeatable rule needs a point cap", r.Category)
			assert.Zerof(t, r.Points, "%s: repeatable rule must not carry a one-time value", r.Category)
		} else {
			require.Positivef(t, r.Points, "%s: one-time rule needs a point value", r.Category)
			assert.Equalf(t, r.Points, r.MaxPoints, "%s: one-time ceiling equals its value", r.Category)
		}
	}
}
