package severity_test

import (
	"testing"

	"github.com/arbiterhq/arbiter/internal/database/types/enum"
	"github.com/arbiterhq/arbiter/internal/moderation/severity"
	"github.com/stretchr/testify/assert"
)

func TestClassify_CoversEveryCategory(t *testing.T) {
	t.Parallel()

	for _, category := range enum.CategoryValues() {
		tier := severity.Classify(category)
		assert.True(t, tier.IsASeverity(), "category %s must map to a valid tier", category)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	t.Parallel()

	for _, category := range enum.CategoryValues() {
		first := severity.Classify(category)
		for range 10 {
			assert.Equal(t, first, severity.Classify(category))
		}
	}
}

func TestClassify_CriticalCategories(t *testing.T) {
	t.Parallel()

	critical := []enum.Category{
		enum.CategoryHateSpeech,
		enum.CategoryThreats,
		enum.CategoryDoxxing,
	}

	for _, category := range critical {
		assert.Equal(t, enum.SeverityCritical, severity.Classify(category),
			"%s must route at the critical tier", category)
	}
}

func TestClassify_UnknownFallsBackToLow(t *testing.T) {
	t.Parallel()

	assert.Equal(t, enum.SeverityLow, severity.Classify(enum.Category(999)))
}
