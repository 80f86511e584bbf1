package theme

import (
	"log"
	"sync"
)

// Theme is a visual mode of the site.
type Theme string

const (
	Dark   Theme = "dark"
	Light  Theme = "light"
	System Theme = "system"
	Night  Theme = "night"
	Bright Theme = "bright"
)

// StorageKey is the fixed persistence key, matching the browser build.
const StorageKey = "theme-storage"

// cycleOrder is the toggle sequence. System is deliberately excluded:
// it is only reachable through an explicit Select(System).
var cycleOrder = []Theme{Dark, Light, Night, Bright}

func valid(t Theme) bool {
	switch t {
	case Dark, Light, System, Night, Bright:
		return true
	}
	return false
}

// Appearance describes the visual adjustments a theme maps to. Applying
// them is the frontend's job; the controller only hands them out.
type Appearance struct {
	Palette string `json:"palette"` // dark or light
	Filter  string `json:"filter,omitempty"`
}

var appearances = map[Theme]Appearance{
	Dark:   {Palette: "dark"},
	Light:  {Palette: "light"},
	Night:  {Palette: "dark", Filter: "hue-rotate(90deg) brightness(1.2) contrast(1.5)"},
	Bright: {Palette: "light", Filter: "brightness(1.1) contrast(1.1)"},
}

// SystemSignal reads the host environment's light/dark preference.
// Resolution is a point-in-time read; when the host preference changes,
// the caller re-selects System to pick the change up.
type SystemSignal interface {
	PrefersDark() bool
}

// SystemSignalFunc adapts a func to SystemSignal.
type SystemSignalFunc func() bool

func (f SystemSignalFunc) PrefersDark() bool { return f() }

// Controller holds the active theme, its derived isDark flag, and writes
// every transition through the injected store. One controller serves all
// requests, so state access goes through the mutex.
type Controller struct {
	mu     sync.Mutex
	store  Store
	signal SystemSignal
	theme  Theme
	isDark bool
}

// NewController loads the persisted theme (default dark) and re-applies
// it so a restart restores the previous look. Store read failures degrade
// to the in-memory default and are never fatal.
func NewController(store Store, signal SystemSignal) *Controller {
	c := &Controller{store: store, signal: signal}
	t := Dark
	if v, err := store.Get(StorageKey); err != nil {
		log.Printf("theme: load failed, defaulting to dark: %v", err)
	} else if v != "" && valid(Theme(v)) {
		t = Theme(v)
	}
	c.apply(t)
	return c
}

// Theme returns the active theme.
func (c *Controller) Theme() Theme {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.theme
}

// IsDark returns the resolved dark flag.
func (c *Controller) IsDark() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.isDark
}

// Appearance returns the visual descriptor for the resolved theme.
// For System the descriptor follows the resolved palette.
func (c *Controller) Appearance() Appearance {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.theme == System {
		if c.isDark {
			return appearances[Dark]
		}
		return appearances[Light]
	}
	return appearances[c.theme]
}

// Select jumps to a theme, resolves isDark, and persists the choice.
// Unknown themes are ignored (permissive toward malformed UI input).
func (c *Controller) Select(t Theme) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selectLocked(t)
}

func (c *Controller) selectLocked(t Theme) {
	if !valid(t) {
		return
	}
	c.apply(t)
	if err := c.store.Set(StorageKey, string(t)); err != nil {
		log.Printf("theme: persist failed: %v", err)
	}
}

// Cycle advances through dark → light → night → bright, wrapping.
// From system it restarts at dark. It never lands on system.
func (c *Controller) Cycle() Theme {
	c.mu.Lock()
	defer c.mu.Unlock()
	next := cycleOrder[0]
	for i, t := range cycleOrder {
		if t == c.theme {
			next = cycleOrder[(i+1)%len(cycleOrder)]
			break
		}
	}
	c.selectLocked(next)
	return c.theme
}

// Resync re-resolves the system preference. Call when the host signal
// changes while the active theme is system.
func (c *Controller) Resync() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.theme == System {
		c.selectLocked(System)
	}
}

// apply sets the theme and derives isDark. Caller holds the mutex
// (or owns the controller exclusively during construction).
func (c *Controller) apply(t Theme) {
	c.theme = t
	switch t {
	case Dark, Night:
		c.isDark = true
	case Light, Bright:
		c.isDark = false
	case System:
		c.isDark = c.signal != nil && c.signal.PrefersDark()
	}
}
