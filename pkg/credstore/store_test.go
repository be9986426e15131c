package credstore

import (
	"context"
	"testing"
)

type tempPathConfig struct {
	path string
}

func (c *tempPathConfig) BasePath() string { return c.path }

func stores(t *testing.T) map[string]Store {
	t.Helper()
	disk, err := Load(&tempPathConfig{path: t.TempDir()})
	if err != nil {
		t.Fatal(err)
	}
	return map[string]Store{
		"memory": NewMemory(),
		"diskv":  disk,
	}
}

func TestConfigComplete(t *testing.T) {
	full := &Config{
		Token: "tok",
		Databases: Databases{
			Moments:   "m",
			Projects:  "p",
			LifeAreas: "l",
		},
	}
	if !full.Complete() {
		t.Fatal("expected a full config to be complete")
	}

	var nilCfg *Config
	if nilCfg.Complete() {
		t.Fatal("nil config is never complete")
	}

	missing := *full
	missing.Databases.LifeAreas = "  "
	if missing.Complete() {
		t.Fatal("whitespace ids do not count")
	}
}

func TestGetWithoutRecordIsNilNil(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			cfg, err := s.Get(context.Background())
			if err != nil {
				t.Fatal(err)
			}
			if cfg != nil {
				t.Fatalf("expected no record, got %+v", cfg)
			}
		})
	}
}

func TestSetGetClearRoundTrip(t *testing.T) {
	want := &Config{
		Token: "secret",
		Databases: Databases{
			Moments:   "db-m",
			Projects:  "db-p",
			LifeAreas: "db-l",
		},
	}

	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			if err := s.Set(ctx, want); err != nil {
				t.Fatal(err)
			}

			got, err := s.Get(ctx)
			if err != nil {
				t.Fatal(err)
			}
			if got == nil || *got != *want {
				t.Fatalf("expected %+v, got %+v", want, got)
			}

			if err := s.Clear(ctx); err != nil {
				t.Fatal(err)
			}
			got, err = s.Get(ctx)
			if err != nil {
				t.Fatal(err)
			}
			if got != nil {
				t.Fatalf("expected the record gone, got %+v", got)
			}
			if err := s.Clear(ctx); err != nil {
				t.Fatal(err)
			}
		})
	}
}

func TestSetNilConfigFails(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			if err := s.Set(context.Background(), nil); err == nil {
				t.Fatal("expected an error for a nil config")
			}
		})
	}
}

func TestUnparsableRecordReadsAsAbsent(t *testing.T) {
	disk, err := Load(&tempPathConfig{path: t.TempDir()})
	if err != nil {
		t.Fatal(err)
	}
	ds := disk.(*diskStore)
	if err := ds.d.Write(keyConfig, []byte("{not json")); err != nil {
		t.Fatal(err)
	}

	cfg, err := disk.Get(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if cfg != nil {
		t.Fatalf("a corrupt record routes to setup, got %+v", cfg)
	}
}

func TestRawKeysRoundTrip(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			v, err := s.GetRaw(ctx, KeyTheme)
			if err != nil {
				t.Fatal(err)
			}
			if v != "" {
				t.Fatalf("expected empty value for a missing key, got %q", v)
			}

			if err := s.SetRaw(ctx, KeyTheme, "light"); err != nil {
				t.Fatal(err)
			}
			v, err = s.GetRaw(ctx, KeyTheme)
			if err != nil {
				t.Fatal(err)
			}
			if v != "light" {
				t.Fatalf("expected light, got %q", v)
			}

			if err := s.DeleteRaw(ctx, KeyTheme); err != nil {
				t.Fatal(err)
			}
			v, _ = s.GetRaw(ctx, KeyTheme)
			if v != "" {
				t.Fatalf("expected the key gone, got %q", v)
			}
			if err := s.DeleteRaw(ctx, KeyTheme); err != nil {
				t.Fatal(err)
			}
		})
	}
}
