// Package prefs provides JSON-based application preferences.
package prefs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const prefsFile = "preferences.json"

// Preference keys.
const (
	KeyWindowWidth   = "window.width"
	KeyWindowHeight  = "window.height"
	KeyMaxIterations = "render.max_iterations"
	KeyPaletteCycle  = "render.palette_cycle"
	KeyHueOffset     = "render.hue_offset"
	KeyPollMillis    = "scan.poll_ms"
)

// Prefs stores application preferences as a key-value map.
type Prefs struct {
	mu     sync.RWMutex
	values map[string]interface{}
	path   string
}

// Load reads preferences from ~/.config/fractal-explorer/preferences.json.
// Returns a Prefs with defaults if the file doesn't exist or can't be parsed.
func Load() *Prefs {
	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	p, _ := LoadFrom(filepath.Join(configDir, "fractal-explorer", prefsFile))
	return p
}

// LoadFrom reads preferences from path. A missing file is not an error; the
// returned Prefs is empty and Save will create it. A file that exists but
// can't be read or parsed returns an empty Prefs along with the error.
func LoadFrom(path string) (*Prefs, error) {
	p := &Prefs{
		values: make(map[string]interface{}),
		path:   path,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return p, nil
		}
		return p, fmt.Errorf("read preferences: %w", err)
	}
	if err := json.Unmarshal(data, &p.values); err != nil {
		p.values = make(map[string]interface{})
		return p, fmt.Errorf("parse preferences %s: %w", path, err)
	}
	return p, nil
}

// Path returns the file the preferences are saved to.
func (p *Prefs) Path() string {
	return p.path
}

// Save writes preferences to disk.
func (p *Prefs) Save() error {
	p.mu.RLock()
	data, err := json.MarshalIndent(p.values, "", "  ")
	p.mu.RUnlock()
	if err != nil {
		return err
	}

	dir := filepath.Dir(p.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(p.path, data, 0o644)
}

func (p *Prefs) number(key string) (float64, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if v, ok := p.values[key]; ok {
		switch n := v.(type) {
		case float64:
			return n, true
		case int:
			return float64(n), true
		}
	}
	return 0, false
}

// FloatWithFallback returns a float64 preference, or fallback if not set.
func (p *Prefs) FloatWithFallback(key string, fallback float64) float64 {
	if n, ok := p.number(key); ok {
		return n
	}
	return fallback
}

// SetFloat stores a float64 preference.
func (p *Prefs) SetFloat(key string, val float64) {
	p.mu.Lock()
	p.values[key] = val
	p.mu.Unlock()
}

// IntWithFallback returns an int preference, or fallback if not set or not
// positive.
func (p *Prefs) IntWithFallback(key string, fallback int) int {
	if n, ok := p.number(key); ok && n >= 1 {
		return int(n)
	}
	return fallback
}

// SetInt stores an int preference.
func (p *Prefs) SetInt(key string, val int) {
	p.mu.Lock()
	p.values[key] = val
	p.mu.Unlock()
}

// Session holds the settings a session is started with.
type Session struct {
	WindowWidth   int
	WindowHeight  int
	MaxIterations int
	PaletteCycle  int
	HueOffset     float64
	PollInterval  time.Duration
}

// DefaultSession is used for any setting missing from the file.
var DefaultSession = Session{
	WindowWidth:   800,
	WindowHeight:  790,
	MaxIterations: 500,
	PaletteCycle:  256,
	HueOffset:     0,
	PollInterval:  250 * time.Millisecond,
}

// Session returns the stored session settings, using DefaultSession for
// anything missing or invalid.
func (p *Prefs) Session() Session {
	d := DefaultSession
	return Session{
		WindowWidth:   p.IntWithFallback(KeyWindowWidth, d.WindowWidth),
		WindowHeight:  p.IntWithFallback(KeyWindowHeight, d.WindowHeight),
		MaxIterations: p.IntWithFallback(KeyMaxIterations, d.MaxIterations),
		PaletteCycle:  p.IntWithFallback(KeyPaletteCycle, d.PaletteCycle),
		HueOffset:     p.FloatWithFallback(KeyHueOffset, d.HueOffset),
		PollInterval:  time.Duration(p.IntWithFallback(KeyPollMillis, int(d.PollInterval/time.Millisecond))) * time.Millisecond,
	}
}

// SetSession stores s so that the next Save writes every setting out.
func (p *Prefs) SetSession(s Session) {
	p.SetInt(KeyWindowWidth, s.WindowWidth)
	p.SetInt(KeyWindowHeight, s.WindowHeight)
	p.SetInt(KeyMaxIterations, s.MaxIterations)
	p.SetInt(KeyPaletteCycle, s.PaletteCycle)
	p.SetFloat(KeyHueOffset, s.HueOffset)
	p.SetInt(KeyPollMillis, int(s.PollInterval/time.Millisecond))
}
