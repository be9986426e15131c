package credstore

import (
	"context"

	"github.com/peterbourgon/diskv/v3"
)

// Load creates a Store backed by diskv using the provided config.
func Load(cfg PathConfig) (Store, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadPathConfig()
		if err != nil {
			return nil, err
		}
	}

	return &diskStore{d: diskv.New(diskv.Options{
		BasePath:     cfg.BasePath(),
		CacheSizeMax: 64 * 1024,
	})}, nil
}

type diskStore struct {
	d *diskv.Diskv
}

func (s *diskStore) Get(_ context.Context) (*Config, error) {
	data, err := s.d.Read(keyConfig)
	if err != nil {
		// Unreadable record is indistinguishable from no record: the
		// caller routes to setup either way.
		return nil, nil
	}
	return unmarshalConfig(data), nil
}

func (s *diskStore) Set(_ context.Context, cfg *Config) error {
	data, err := marshalConfig(cfg)
	if err != nil {
		return err
	}
	return s.d.Write(keyConfig, data)
}

func (s *diskStore) Clear(_ context.Context) error {
	if !s.d.Has(keyConfig) {
		return nil
	}
	return s.d.Erase(keyConfig)
}

func (s *diskStore) GetRaw(_ context.Context, key string) (string, error) {
	data, err := s.d.Read(key)
	if err != nil {
		return "", nil
	}
	return string(data), nil
}

func (s *diskStore) SetRaw(_ context.Context, key, value string) error {
	return s.d.Write(key, []byte(value))
}

func (s *diskStore) DeleteRaw(_ context.Context, key string) error {
	if !s.d.Has(key) {
		return nil
	}
	return s.d.Erase(key)
}
