// Package app wires the credential store, the Notion client, the polled
// collections and the draft manager into one service that CLIs and UIs
// share.
package app

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"

	"tableflip.dev/momentchen/pkg/cache"
	"tableflip.dev/momentchen/pkg/credstore"
	"tableflip.dev/momentchen/pkg/draft"
	"tableflip.dev/momentchen/pkg/moment"
	"tableflip.dev/momentchen/pkg/notion"
)

var (
	// ErrNeedsSetup is returned by operations that require a validated
	// credential while none is configured.
	ErrNeedsSetup = errors.New("app: setup required, run `momentchen setup`")

	// ErrSubmitPending rejects a second mutation while one is in flight.
	ErrSubmitPending = errors.New("app: a submit is already pending")

	// ErrIncompleteConfig marks a setup attempt with empty fields. No
	// network call is made in that case.
	ErrIncompleteConfig = errors.New("app: token and all three database ids are required")

	// ErrInvalidToken marks a token the remote side rejected.
	ErrInvalidToken = errors.New("app: the token is not valid")
)

// Service owns the client session and the three polled collections.
type Service struct {
	creds        credstore.Store
	clientOpts   []notion.Option
	now          func() time.Time
	pollInterval time.Duration

	mu           sync.Mutex
	cfg          *credstore.Config
	client       *notion.Client
	validated    bool
	setupMessage string

	Moments   *cache.Collection[moment.Moment]
	Projects  *cache.Collection[moment.Project]
	LifeAreas *cache.Collection[moment.LifeArea]
	group     *cache.Group

	Draft *draft.Manager

	// types memoizes select options per moments-database id; a changed id
	// is simply a new key.
	types *gocache.Cache

	submitMu sync.Mutex
}

// Option configures the Service.
type Option func(*Service)

// WithNow replaces the clock (tests).
func WithNow(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithClientOptions passes options through to every Notion client the
// service constructs (tests point the base URL at a fake server).
func WithClientOptions(opts ...notion.Option) Option {
	return func(s *Service) { s.clientOpts = opts }
}

// WithPollInterval overrides the collection polling interval.
func WithPollInterval(d time.Duration) Option {
	return func(s *Service) { s.pollInterval = d }
}

// New constructs a Service around a credential store.
func New(creds credstore.Store, opts ...Option) *Service {
	s := &Service{
		creds:        creds,
		now:          time.Now,
		group:        &cache.Group{},
		types:        gocache.New(gocache.NoExpiration, 0),
		pollInterval: cache.DefaultInterval,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Draft = draft.NewManager(draft.WithNow(s.now))

	s.Moments = cache.NewCollection(
		func(ctx context.Context) ([]moment.Moment, error) {
			return fetchMapped(ctx, s, s.momentsID, moment.TodayFilter(s.now()), moment.MapMoment)
		},
		cache.WithEnabled[moment.Moment](func() bool { return s.Ready() && s.momentsID() != "" }),
		cache.WithInterval[moment.Moment](s.pollInterval),
	)
	s.Projects = cache.NewCollection(
		func(ctx context.Context) ([]moment.Project, error) {
			return fetchMapped(ctx, s, s.projectsID, moment.ActiveProjectsFilter(), moment.MapProject)
		},
		cache.WithEnabled[moment.Project](func() bool { return s.Ready() && s.projectsID() != "" }),
		cache.WithInterval[moment.Project](s.pollInterval),
	)
	s.LifeAreas = cache.NewCollection(
		func(ctx context.Context) ([]moment.LifeArea, error) {
			return fetchMapped(ctx, s, s.lifeAreasID, moment.ActiveLifeAreasFilter(), moment.MapLifeArea)
		},
		cache.WithEnabled[moment.LifeArea](func() bool { return s.Ready() && s.lifeAreasID() != "" }),
		cache.WithInterval[moment.LifeArea](s.pollInterval),
	)
	s.group.Add(s.Moments, s.Projects, s.LifeAreas)
	return s
}

func fetchMapped[T any](ctx context.Context, s *Service, id func() string, filter *notion.Filter, mapFn func(notion.Page) T) ([]T, error) {
	client, err := s.Client()
	if err != nil {
		return nil, err
	}
	pages, err := client.Query(ctx, id(), filter)
	if err != nil {
		return nil, err
	}
	items := make([]T, 0, len(pages))
	for _, p := range pages {
		items = append(items, mapFn(p))
	}
	return items, nil
}

func (s *Service) momentsID() string   { return s.databases().Moments }
func (s *Service) projectsID() string  { return s.databases().Projects }
func (s *Service) lifeAreasID() string { return s.databases().LifeAreas }

func (s *Service) databases() credstore.Databases {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cfg == nil {
		return credstore.Databases{}
	}
	return s.cfg.Databases
}

// Databases returns the configured database ids.
func (s *Service) Databases() credstore.Databases {
	return s.databases()
}

// Ready reports whether a validated credential is loaded.
func (s *Service) Ready() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.validated && s.cfg != nil
}

// NeedsSetup reports whether the session has no usable credential.
func (s *Service) NeedsSetup() bool {
	return !s.Ready()
}

// SetupMessage returns the user-facing reason setup is required, if any.
func (s *Service) SetupMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setupMessage
}

// Client returns the live Notion client, or ErrNeedsSetup.
func (s *Service) Client() (*notion.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.validated || s.client == nil {
		return nil, ErrNeedsSetup
	}
	return s.client, nil
}

// Init loads the stored credential and validates it. A missing record
// routes to setup. A rejected token purges the record and routes to setup
// with a message. An unreachable service is an error and the record is
// kept, so a transient outage never destroys a working credential.
func (s *Service) Init(ctx context.Context) error {
	cfg, err := s.creds.Get(ctx)
	if err != nil {
		return fmt.Errorf("app: read credential: %w", err)
	}
	if cfg == nil || !cfg.Complete() {
		s.mu.Lock()
		s.validated = false
		s.mu.Unlock()
		return nil
	}

	client := notion.New(cfg.Token, s.clientOpts...)
	ok, err := client.ValidateToken(ctx)
	if err != nil {
		return fmt.Errorf("app: validate token: %w", err)
	}
	if !ok {
		if err := s.creds.Clear(ctx); err != nil {
			log.Warn().Err(err).Msg("clearing rejected credential")
		}
		s.mu.Lock()
		s.cfg = nil
		s.client = nil
		s.validated = false
		s.setupMessage = "The stored token is no longer valid."
		s.mu.Unlock()
		return nil
	}

	s.mu.Lock()
	s.cfg = cfg
	s.client = client
	s.validated = true
	s.setupMessage = ""
	s.mu.Unlock()
	return nil
}

// SaveConfig validates and persists a new credential record, replacing the
// previous one wholesale, and invalidates every cached collection.
func (s *Service) SaveConfig(ctx context.Context, cfg *credstore.Config) error {
	if !cfg.Complete() {
		return ErrIncompleteConfig
	}

	client := notion.New(cfg.Token, s.clientOpts...)
	ok, err := client.ValidateToken(ctx)
	if err != nil {
		return fmt.Errorf("app: validate token: %w", err)
	}
	if !ok {
		return ErrInvalidToken
	}

	if err := s.creds.Set(ctx, cfg); err != nil {
		return fmt.Errorf("app: persist credential: %w", err)
	}

	s.mu.Lock()
	s.cfg = cfg
	s.client = client
	s.validated = true
	s.setupMessage = ""
	s.mu.Unlock()

	if err := s.group.Invalidate(ctx); err != nil {
		log.Warn().Err(err).Msg("refreshing collections after setup")
	}
	return nil
}

// MomentTypes returns the enumerated Typ options of the moments database,
// fetched from the schema once per database id and fed to the draft
// manager for its default-type rule.
func (s *Service) MomentTypes(ctx context.Context) ([]notion.SelectOption, error) {
	id := s.momentsID()
	if id == "" {
		return nil, ErrNeedsSetup
	}
	if cached, ok := s.types.Get(id); ok {
		opts := cached.([]notion.SelectOption)
		s.Draft.SetTypes(opts)
		return opts, nil
	}
	client, err := s.Client()
	if err != nil {
		return nil, err
	}
	db, err := client.RetrieveDatabase(ctx, id)
	if err != nil {
		return nil, err
	}
	opts := db.SelectOptions(moment.TypeProperty)
	s.types.Set(id, opts, gocache.NoExpiration)
	s.Draft.SetTypes(opts)
	return opts, nil
}

// Start begins polling all three collections until ctx is done.
func (s *Service) Start(ctx context.Context) {
	s.Moments.Start(ctx)
	s.Projects.Start(ctx)
	s.LifeAreas.Start(ctx)
}

// RefreshAll fetches all three collections once, synchronously.
func (s *Service) RefreshAll(ctx context.Context) error {
	return s.group.Invalidate(ctx)
}

// ResolveRelation annotates a moment with its project or life area using
// the currently cached collections.
func (s *Service) ResolveRelation(m moment.Moment) *moment.Resolution {
	return moment.Resolve(m.RelationID(), s.Projects.Snapshot().Data, s.LifeAreas.Snapshot().Data)
}
