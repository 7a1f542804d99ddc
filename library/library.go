// Package library bootstraps a gallery session: it restores or fetches the records,
// hands them to the gallery and persists the session on close.
package library

import (
	"context"
	"errors"

	"github.com/spf13/viper"
	"github.com/vidshelf/vidshelf/gallery"
	"github.com/vidshelf/vidshelf/key"
	"github.com/vidshelf/vidshelf/loader"
	"github.com/vidshelf/vidshelf/log"
	"github.com/vidshelf/vidshelf/store"
	"github.com/vidshelf/vidshelf/video"
)

// Options control how a session is opened.
type Options struct {
	Sources      []string
	PageSize     int
	UseCache     bool
	RememberPage bool

	// Store and Loader default to store.Open and loader.New.
	Store  store.Store
	Loader *loader.Loader
}

// OptionsFromConfig builds Options from the active configuration.
func OptionsFromConfig() Options {
	return Options{
		Sources:      viper.GetStringSlice(key.SourcesPaths),
		PageSize:     viper.GetInt(key.GalleryPageSize),
		UseCache:     viper.GetBool(key.GalleryUseCache),
		RememberPage: viper.GetBool(key.GalleryRememberPage),
	}
}

// Session is an open gallery together with its backing store.
type Session struct {
	State *gallery.State

	// FromCache reports whether the records were restored from the store instead of fetched.
	FromCache bool

	store   store.Store
	loader  *loader.Loader
	options Options
}

// Open restores the record cache or fetches the sources, ingests the records and restores the saved page.
// A store that cannot be opened only disables persistence. The only error is a failed load,
// which wraps loader.ErrNoRecords when no source yielded any record.
func Open(ctx context.Context, options Options) (*Session, error) {
	s := &Session{
		State:   gallery.New(options.PageSize),
		store:   options.Store,
		loader:  options.Loader,
		options: options,
	}

	if s.loader == nil {
		s.loader = loader.New()
	}

	if s.store == nil && (options.UseCache || options.RememberPage) {
		opened, err := store.Open(ctx)
		if err != nil {
			log.WithError(err).Warn("store unavailable, continuing without persistence")
		} else {
			s.store = opened
		}
	}

	raws, fromCache := s.cached(ctx)
	if !fromCache {
		fetched, err := s.loader.Load(ctx, options.Sources)
		if err != nil {
			s.closeStore()
			return nil, err
		}
		raws = fetched
	}

	s.State.Ingest(raws)
	s.FromCache = fromCache

	if !fromCache {
		s.saveCache(ctx)
	}

	s.restorePage(ctx)
	return s, nil
}

func (s *Session) cached(ctx context.Context) ([]video.Raw, bool) {
	if !s.options.UseCache || s.store == nil {
		return nil, false
	}

	raws, ok := store.LoadRecords(ctx, s.store)
	if ok {
		log.With(log.Fields{"records": len(raws)}).Info("restored records from cache")
	}
	return raws, ok
}

func (s *Session) saveCache(ctx context.Context) {
	if !s.options.UseCache || s.store == nil {
		return
	}

	// failures are logged by the store
	_ = store.SaveRecords(ctx, s.store, s.State.Records())
}

func (s *Session) restorePage(ctx context.Context) {
	if !s.options.RememberPage || s.store == nil {
		return
	}

	page, ok := store.LoadPage(ctx, s.store)
	if !ok {
		return
	}

	if !s.State.RestorePage(page) {
		log.With(log.Fields{"page": page, "pages": s.State.TotalPages()}).Info("saved page out of range, starting at page 1")
	}
}

// Reload fetches the sources again, bypassing the cache, and replaces the gallery and the cache on success.
// The current gallery is kept when the fetch fails.
func (s *Session) Reload(ctx context.Context) error {
	raws, err := s.Fetch(ctx)
	if err != nil {
		return err
	}

	s.Apply(ctx, raws)
	return nil
}

// Fetch loads the sources without touching the gallery. It is safe to call off the event loop.
func (s *Session) Fetch(ctx context.Context) ([]video.Raw, error) {
	return s.loader.Load(ctx, s.options.Sources)
}

// Apply ingests freshly fetched records and refreshes the cache.
func (s *Session) Apply(ctx context.Context, raws []video.Raw) {
	s.State.Ingest(raws)
	s.FromCache = false
	s.saveCache(ctx)
}

// Close persists the current page and releases the store.
func (s *Session) Close(ctx context.Context) error {
	var errs []error

	if s.options.RememberPage && s.store != nil {
		errs = append(errs, store.SavePage(ctx, s.store, s.State.Page()))
	}

	errs = append(errs, s.closeStore())
	return errors.Join(errs...)
}

func (s *Session) closeStore() error {
	if s.store == nil {
		return nil
	}

	err := s.store.Close()
	s.store = nil
	return err
}
