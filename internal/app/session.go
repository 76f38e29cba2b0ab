package app

import (
	"context"
	"fmt"
	"log"

	"menuvroom/internal/cache"
	"menuvroom/internal/config"
	"menuvroom/internal/discovery"
	"menuvroom/internal/domain"
	"menuvroom/internal/eventbus"
	"menuvroom/internal/search"
)

// session wires the collaborators needed by every command
type session struct {
	configSvc config.ConfigService
	cfg       *config.Config
	cacheDir  string
	bus       eventbus.EventBus
	report    *Report
	store     *cache.Store
	scanner   discovery.Scanner
	ranker    search.Ranker
	dirs      []string // set once resolved
}

func newSession(opts *Options) (*session, error) {
	configSvc := config.NewConfigService()
	if opts.ConfigPath != "" {
		configSvc = config.NewConfigServiceAt(opts.ConfigPath)
	}
	cfg, err := configSvc.Load()
	if err != nil {
		return nil, err
	}
	if opts.Mode != "" {
		cfg.Search.Mode = opts.Mode
	}

	cacheDir, err := cfg.ResolvedCacheDir()
	if err != nil {
		return nil, err
	}

	ranker, err := search.New(search.Options{
		Mode:       cfg.Search.Mode,
		Limit:      cfg.Search.MaxResults,
		IgnoreCase: cfg.Search.IgnoreCase,
	})
	if err != nil {
		return nil, err
	}

	bus := eventbus.New()
	return &session{
		configSvc: configSvc,
		cfg:       cfg,
		cacheDir:  cacheDir,
		bus:       bus,
		report:    NewReport(bus),
		store:     cache.NewStore(cacheDir, bus),
		scanner: discovery.NewScanner(discovery.Options{
			IncludeBinaries:     cfg.IncludeBinaries,
			IncludeDesktopFiles: cfg.IncludeDesktopFiles,
		}, bus),
		ranker: ranker,
	}, nil
}

// directories resolves the search path for this session
func (s *session) directories() ([]string, error) {
	dirs, err := discovery.ResolveFromEnv(s.cfg.ExtraDirectories, s.cfg.IgnoredDirectories)
	if err != nil {
		return nil, err
	}
	log.Printf("Searching %d directories", len(dirs))
	s.dirs = dirs
	return dirs, nil
}

// catalog loads the cached catalog, rebuilding it when stale or when forced
func (s *session) catalog(ctx context.Context, force bool) (domain.Catalog, error) {
	dirs, err := s.directories()
	if err != nil {
		return domain.Catalog{}, err
	}

	if force {
		return s.store.Rebuild(ctx, dirs, s.scanner)
	}
	catalog, _, err := s.store.LoadOrRebuild(ctx, dirs, s.scanner)
	if err != nil {
		return domain.Catalog{}, fmt.Errorf("failed to load catalog: %w", err)
	}
	return catalog, nil
}
