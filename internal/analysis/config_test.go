package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultSet(t *testing.T) {
	cfg := Default()

	assert.Equal(t, []int64{2, 4, 6, 8, 10, 12, 14, 16, 18, 20, 24, 30}, cfg.Gaps)
	assert.Equal(t, []int64{6, 12, 18, 24, 30}, cfg.Mod6Gaps)
	assert.Equal(t, int64(3), cfg.Modulus)

	// Every mod-6 gap is a multiple of 6 and part of the scanned gaps.
	scanned := make(map[int64]bool)
	for _, g := range cfg.Gaps {
		scanned[g] = true
	}
	for _, g := range cfg.Mod6Gaps {
		assert.Zero(t, g%6, "gap %d", g)
		assert.True(t, scanned[g], "gap %d", g)
	}
}

func TestSetName(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "Twin", cfg.Name(2))
	assert.Equal(t, "Cousin", cfg.Name(4))
	assert.Equal(t, "Sexy", cfg.Name(6))
	assert.Equal(t, "Gap-8", cfg.Name(8))
	assert.Equal(t, "Gap-30", cfg.Name(30))
}

func TestSetIsUniversal(t *testing.T) {
	cfg := Default()

	for _, g := range []int64{2, 4, 8, 10, 12, 18} {
		assert.True(t, cfg.IsUniversal(g), "gap %d", g)
	}
	for _, g := range []int64{6, 14, 16, 20, 24, 30} {
		assert.False(t, cfg.IsUniversal(g), "gap %d", g)
	}
}
