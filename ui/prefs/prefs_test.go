package prefs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", prefsFile)
	p, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, path, p.Path())
	assert.Equal(t, 800, p.IntWithFallback(KeyWindowWidth, 800))
	assert.Equal(t, 0.25, p.FloatWithFallback(KeyHueOffset, 0.25))
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg", prefsFile)
	p, err := LoadFrom(path)
	require.NoError(t, err)

	p.SetInt(KeyMaxIterations, 1200)
	p.SetFloat(KeyHueOffset, 0.5)
	require.NoError(t, p.Save())

	q, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, 1200, q.IntWithFallback(KeyMaxIterations, 500))
	assert.Equal(t, 0.5, q.FloatWithFallback(KeyHueOffset, 0))
}

func TestIntWithFallbackRejectsNonPositive(t *testing.T) {
	p, err := LoadFrom(filepath.Join(t.TempDir(), prefsFile))
	require.NoError(t, err)

	p.SetInt(KeyPaletteCycle, 0)
	assert.Equal(t, 256, p.IntWithFallback(KeyPaletteCycle, 256))
	p.SetFloat(KeyPaletteCycle, -3)
	assert.Equal(t, 256, p.IntWithFallback(KeyPaletteCycle, 256))
	p.values[KeyPaletteCycle] = "lots"
	assert.Equal(t, 256, p.IntWithFallback(KeyPaletteCycle, 256))
}

func TestLoadFromCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), prefsFile)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	p, err := LoadFrom(path)
	assert.Error(t, err)
	require.NotNil(t, p)
	assert.Equal(t, 42, p.IntWithFallback(KeyPollMillis, 42))
}

func TestSessionDefaultsAndRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), prefsFile)
	p, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultSession, p.Session())

	s := Session{
		WindowWidth:   640,
		WindowHeight:  480,
		MaxIterations: 2000,
		PaletteCycle:  64,
		HueOffset:     120,
		PollInterval:  100 * time.Millisecond,
	}
	p.SetSession(s)
	require.NoError(t, p.Save())

	q, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, s, q.Session())
}
