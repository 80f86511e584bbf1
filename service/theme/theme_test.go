package theme

import (
	"errors"
	"testing"
)

type failingStore struct{}

func (failingStore) Get(string) (string, error) { return "", errors.New("storage unavailable") }
func (failingStore) Set(string, string) error { return errors.New("storage unavailable") }

func prefersDark(v bool) SystemSignal {
	return SystemSignalFunc(func() bool { return v })
}

func TestNewController_DefaultsToDark(t *testing.T) {
	c := NewController(NewMemoryStore(), nil)
	if c.Theme() != Dark {
		t.Errorf("theme = %s, want dark", c.Theme())
	}
	if !c.IsDark() {
		t.Error("isDark = false, want true")
	}
}

func TestSelect_PersistsAndReloads(t *testing.T) {
	store := NewMemoryStore()
	c := NewController(store, nil)
	c.Select(Night)

	if v, _ := store.Get(StorageKey); v != "night" {
		t.Errorf("persisted = %q, want night", v)
	}

	reloaded := NewController(store, nil)
	if reloaded.Theme() != Night {
		t.Errorf("reloaded theme = %s, want night", reloaded.Theme())
	}
	if reloaded.IsDark() != c.IsDark() {
		t.Error("reloaded isDark differs")
	}
}

func TestResolveIsDark(t *testing.T) {
	cases := map[Theme]bool{Dark: true, Night: true, Light: false, Bright: false}
	c := NewController(NewMemoryStore(), nil)
	for th, want := range cases {
		c.Select(th)
		if c.IsDark() != want {
			t.Errorf("%s: isDark = %v, want %v", th, c.IsDark(), want)
		}
	}
}

func TestSystem_ReadsSignalAtSelectTime(t *testing.T) {
	dark := true
	c := NewController(NewMemoryStore(), SystemSignalFunc(func() bool { return dark }))
	c.Select(System)
	if !c.IsDark() {
		t.Error("system with dark preference: isDark = false")
	}

	// Point-in-time read: flipping the signal alone changes nothing.
	dark = false
	if !c.IsDark() {
		t.Error("isDark re-resolved without notification")
	}

	c.Resync()
	if c.IsDark() {
		t.Error("Resync did not re-read the signal")
	}
}

func TestResync_NoopOutsideSystem(t *testing.T) {
	c := NewController(NewMemoryStore(), prefersDark(false))
	c.Select(Night)
	c.Resync()
	if c.Theme() != Night {
		t.Errorf("Resync changed theme to %s", c.Theme())
	}
}

func TestCycle_OrderAndWrap(t *testing.T) {
	c := NewController(NewMemoryStore(), nil)
	want := []Theme{Light, Night, Bright, Dark, Light}
	for i, w := range want {
		if got := c.Cycle(); got != w {
			t.Fatalf("cycle %d = %s, want %s", i, got, w)
		}
	}
}

func TestCycle_NeverLandsOnSystem(t *testing.T) {
	c := NewController(NewMemoryStore(), prefersDark(true))
	c.Select(System)
	for i := 0; i < 10; i++ {
		if got := c.Cycle(); got == System {
			t.Fatal("cycle landed on system")
		}
	}
}

func TestSelect_UnknownThemeIgnored(t *testing.T) {
	c := NewController(NewMemoryStore(), nil)
	c.Select(Light)
	c.Select(Theme("neon"))
	if c.Theme() != Light {
		t.Errorf("unknown theme changed state to %s", c.Theme())
	}
}

func TestStorageFailure_NonFatal(t *testing.T) {
	c := NewController(failingStore{}, nil)
	if c.Theme() != Dark {
		t.Errorf("theme = %s, want dark default on storage failure", c.Theme())
	}
	c.Select(Bright) // persist fails, state still moves
	if c.Theme() != Bright {
		t.Errorf("theme = %s, want bright despite persist failure", c.Theme())
	}
}

func TestAppearance(t *testing.T) {
	c := NewController(NewMemoryStore(), prefersDark(false))
	c.Select(Night)
	a := c.Appearance()
	if a.Palette != "dark" || a.Filter == "" {
		t.Errorf("night appearance = %+v, want dark palette with filter", a)
	}
	c.Select(System)
	a = c.Appearance()
	if a.Palette != "light" || a.Filter != "" {
		t.Errorf("system(light) appearance = %+v, want plain light palette", a)
	}
}
