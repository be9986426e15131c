package credstore

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
)

// Fixed keys for the records the store keeps. The credential record is the
// only structured one; the theme keys hold opaque strings for the UI.
const (
	keyConfig = "notion_config"

	KeyTheme           = "theme"
	KeyThemeSyncSystem = "theme_sync_system"
)

// Databases holds the three database identifiers the client works against.
type Databases struct {
	Moments   string `json:"moments"`
	Projects  string `json:"projects"`
	LifeAreas string `json:"lifeAreas"`
}

// Config is the single credential record: the integration token plus the
// three database ids. It is replaced wholesale, never partially mutated.
type Config struct {
	Token     string    `json:"token"`
	Databases Databases `json:"databases"`
}

// Complete reports whether every field a working session needs is present.
func (c *Config) Complete() bool {
	if c == nil {
		return false
	}
	return strings.TrimSpace(c.Token) != "" &&
		strings.TrimSpace(c.Databases.Moments) != "" &&
		strings.TrimSpace(c.Databases.Projects) != "" &&
		strings.TrimSpace(c.Databases.LifeAreas) != ""
}

// Store persists the credential record and a couple of sibling preference
// keys. Get returns (nil, nil) when no usable record exists: a missing or
// unparsable record means "setup required", never a crash.
type Store interface {
	Get(ctx context.Context) (*Config, error)
	Set(ctx context.Context, cfg *Config) error
	Clear(ctx context.Context) error

	GetRaw(ctx context.Context, key string) (string, error)
	SetRaw(ctx context.Context, key, value string) error
	DeleteRaw(ctx context.Context, key string) error
}

var errNilConfig = errors.New("credstore: nil config")

func marshalConfig(cfg *Config) ([]byte, error) {
	if cfg == nil {
		return nil, errNilConfig
	}
	return json.Marshal(cfg)
}

func unmarshalConfig(data []byte) *Config {
	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil
	}
	return cfg
}
