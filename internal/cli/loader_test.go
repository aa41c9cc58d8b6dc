package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/primepair/internal/analysis"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "profile.cue"), []byte(content), 0644))
	return dir
}

func TestLoadProfile(t *testing.T) {
	dir := writeProfile(t, `
package profile

profile: {
	maxPrime: 50000
	gaps: [2, 6, 12]
	mod6Gaps: [6, 12]
}
`)

	profile, err := LoadProfile(dir)
	require.NoError(t, err)
	assert.Equal(t, int64(50000), profile.MaxPrime)
	assert.Equal(t, []int64{2, 6, 12}, profile.Gaps)
	assert.Equal(t, []int64{6, 12}, profile.Mod6Gaps)
	assert.Zero(t, profile.Modulus, "unset fields stay zero")
}

func TestLoadProfileMultipleFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bounds.cue"), []byte(`
package profile

profile: maxPrime: 20000
`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "gaps.cue"), []byte(`
package profile

profile: gaps: [2, 4]
`), 0644))

	profile, err := LoadProfile(dir)
	require.NoError(t, err)
	assert.Equal(t, int64(20000), profile.MaxPrime)
	assert.Equal(t, []int64{2, 4}, profile.Gaps)
}

func TestLoadProfileMissingDir(t *testing.T) {
	_, err := LoadProfile(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, ErrCodeNotFound, loadErr.Code)
}

func TestLoadProfileNoCUEFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not cue"), 0644))

	_, err := LoadProfile(dir)
	require.Error(t, err)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, ErrCodeNoFiles, loadErr.Code)
}

func TestLoadProfileMissingStruct(t *testing.T) {
	dir := writeProfile(t, `
package profile

settings: maxPrime: 1000
`)

	_, err := LoadProfile(dir)
	require.Error(t, err)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, ErrCodeProfileMissing, loadErr.Code)
}

func TestLoadProfileValidation(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantCode string
	}{
		{
			name: "odd_gap",
			content: `
package profile

profile: gaps: [2, 3]
`,
			wantCode: ErrCodeBadGap,
		},
		{
			name: "gap_not_multiple_of_six",
			content: `
package profile

profile: mod6Gaps: [6, 8]
`,
			wantCode: ErrCodeBadMod6Gap,
		},
		{
			name: "negative_modulus",
			content: `
package profile

profile: modulus: -3
`,
			wantCode: ErrCodeBadModulus,
		},
		{
			name: "negative_bound",
			content: `
package profile

profile: maxPrime: -1
`,
			wantCode: ErrCodeBadBound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := writeProfile(t, tt.content)
			_, err := LoadProfile(dir)
			require.Error(t, err)

			var loadErr *LoadError
			require.ErrorAs(t, err, &loadErr)
			assert.Equal(t, tt.wantCode, loadErr.Code)
		})
	}
}

func TestProfileApply(t *testing.T) {
	defaults := analysis.Default()

	empty := &Profile{}
	assert.Equal(t, defaults, empty.Apply(defaults), "empty profile leaves defaults untouched")

	overlay := &Profile{Modulus: 7, Gaps: []int64{2}}
	cfg := overlay.Apply(defaults)
	assert.Equal(t, int64(7), cfg.Modulus)
	assert.Equal(t, []int64{2}, cfg.Gaps)
	assert.Equal(t, defaults.Mod6Gaps, cfg.Mod6Gaps, "unset fields keep defaults")
}

func TestResolveConfigPrecedence(t *testing.T) {
	dir := writeProfile(t, `
package profile

profile: {
	maxPrime: 5000
	gaps: [2]
}
`)

	// No flag: profile bound wins over the default.
	cfg, bound, err := resolveConfig(dir, DefaultMaxPrime, false)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), bound)
	assert.Equal(t, []int64{2}, cfg.Gaps)

	// Explicit flag beats the profile.
	_, bound, err = resolveConfig(dir, 777, true)
	require.NoError(t, err)
	assert.Equal(t, int64(777), bound)

	// No profile at all: flag value passes through.
	cfg, bound, err = resolveConfig("", 1234, true)
	require.NoError(t, err)
	assert.Equal(t, int64(1234), bound)
	assert.Equal(t, analysis.Default(), cfg)
}

func TestLoadShippedProfile(t *testing.T) {
	dir := filepath.Join("..", "..", "testdata", "profiles", "quick-scan")

	profile, err := LoadProfile(dir)
	require.NoError(t, err)
	assert.Equal(t, int64(100000), profile.MaxPrime)
	assert.NotEmpty(t, profile.Gaps)
}
