package steps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOrder_IsValid(t *testing.T) {
	assert.NoError(t, ValidateOrder(DefaultOrder()))
}

func TestDefaultOrder_CoversRegistry(t *testing.T) {
	order := DefaultOrder()
	require.Len(t, order, len(Registry))
	for _, name := range order {
		assert.Contains(t, Registry, name)
	}
}

func TestValidateOrder_RejectsUnknownStep(t *testing.T) {
	err := ValidateOrder([]string{"ingest_article", "render_video"})
	assert.ErrorContains(t, err, "unknown step")
}

func TestValidateOrder_RejectsMissingDependency(t *testing.T) {
	err := ValidateOrder([]string{"build_timeline"})
	assert.ErrorContains(t, err, "not scheduled")
}

func TestValidateOrder_RejectsInvertedDependency(t *testing.T) {
	err := ValidateOrder([]string{"split_sentences", "ingest_article"})
	assert.ErrorContains(t, err, "before its dependency")
}
