package credstore

import (
	"context"
	"sync"
)

// Memory is an in-process Store. It backs tests and ephemeral sessions
// where nothing should touch the disk.
type Memory struct {
	mu     sync.Mutex
	config []byte
	raw    map[string]string
}

func NewMemory() *Memory {
	return &Memory{raw: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context) (*Config, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.config == nil {
		return nil, nil
	}
	return unmarshalConfig(m.config), nil
}

func (m *Memory) Set(_ context.Context, cfg *Config) error {
	data, err := marshalConfig(cfg)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.config = data
	return nil
}

func (m *Memory) Clear(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.config = nil
	return nil
}

func (m *Memory) GetRaw(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.raw[key], nil
}

func (m *Memory) SetRaw(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.raw[key] = value
	return nil
}

func (m *Memory) DeleteRaw(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.raw, key)
	return nil
}
