package orders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestNormalizer(t *testing.T) *Normalizer {
	t.Helper()
	return NewNormalizer("IN", zap.NewNop())
}

func TestNormalize_ConvergesOnCanonicalForm(t *testing.T) {
	n := newTestNormalizer(t)

	international, ok := n.Normalize("+91 98765 43210", "IN")
	require.True(t, ok)

	national, ok := n.Normalize("9876543210", "IN")
	require.True(t, ok)

	trunk, ok := n.Normalize("098765 43210", "IN")
	require.True(t, ok)

	assert.Equal(t, "+919876543210", international)
	assert.Equal(t, international, national)
	assert.Equal(t, international, trunk)
}

func TestNormalize_StripsPunctuation(t *testing.T) {
	n := newTestNormalizer(t)

	got, ok := n.Normalize("(0) 98-765 4321", "IN")
	require.True(t, ok)
	assert.Equal(t, "+91987654321", got)
	assert.NotContains(t, got[1:], "+")
}

func TestNormalize_RespectsOrderRegion(t *testing.T) {
	n := newTestNormalizer(t)

	got, ok := n.Normalize("07911 123456", "GB")
	require.True(t, ok)
	assert.Equal(t, "+447911123456", got)
}

func TestNormalize_UnknownRegionFallsBackToDefault(t *testing.T) {
	n := newTestNormalizer(t)

	got, ok := n.Normalize("9876543210", "ZZ")
	require.True(t, ok)
	assert.Equal(t, "+919876543210", got)
}

func TestNormalize_EmptyCandidates(t *testing.T) {
	n := newTestNormalizer(t)

	_, ok := n.Normalize("", "IN")
	assert.False(t, ok)

	_, ok = n.Normalize("call me", "IN")
	assert.False(t, ok)

	_, ok = n.Normalize("000", "IN")
	assert.False(t, ok)
}
