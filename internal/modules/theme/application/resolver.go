package application

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/Nexora712/linkbio-backend/internal/modules/theme/assets"
	"github.com/Nexora712/linkbio-backend/internal/modules/theme/domain"
)

// Resolver maps theme identifiers to resolved bundles. Small themes sit in a
// synchronous table; decorative themes are behind loader functions invoked on
// first request and memoized per theme. Loaded bundles are never merged back
// into the synchronous table.
type Resolver struct {
	eager  map[string]domain.Bundle
	lazy   map[string]*lazyTheme
	logger *zap.Logger
}

type lazyTheme struct {
	once   sync.Once
	load   func() (domain.Bundle, error)
	bundle domain.Bundle
	err    error
}

// NewResolver builds a resolver over the built-in theme catalog.
func NewResolver(logger *zap.Logger) *Resolver {
	r := &Resolver{
		eager:  eagerThemes,
		lazy:   make(map[string]*lazyTheme),
		logger: logger,
	}
	for id := range lazyStyles {
		r.lazy[id] = &lazyTheme{load: embeddedLoader(id)}
	}
	return r
}

func embeddedLoader(id string) func() (domain.Bundle, error) {
	return func() (domain.Bundle, error) {
		css, err := assets.FS.ReadFile(id + ".css")
		if err != nil {
			return domain.Bundle{}, fmt.Errorf("load theme %q: %w", id, err)
		}
		return domain.Bundle{
			ID:     id,
			Name:   lazyNames[id],
			Styles: lazyStyles[id],
			CSS:    string(css),
		}, nil
	}
}

// Resolve returns the bundle for id, falling back to the default theme when
// the identifier is unknown or a lazy load fails. It never returns an error:
// stale identifiers are a normal state, not a fault.
func (r *Resolver) Resolve(ctx context.Context, id string) domain.Bundle {
	if b, ok := r.eager[id]; ok {
		return b
	}

	if lt, ok := r.lazy[id]; ok {
		lt.once.Do(func() {
			lt.bundle, lt.err = lt.load()
		})
		if lt.err == nil {
			return lt.bundle
		}
		r.logger.Warn("lazy theme load failed, using default",
			zap.String("theme_id", id), zap.Error(lt.err))
	}

	return r.eager[domain.DefaultThemeID]
}

// StylesFor returns the preview style tokens for id without touching the
// theme's CSS payload, so lazy themes stay unloaded. Unknown identifiers get
// the default theme's styles.
func (r *Resolver) StylesFor(id string) domain.Styles {
	if b, ok := r.eager[id]; ok {
		return b.Styles
	}
	if s, ok := lazyStyles[id]; ok {
		return s
	}
	return r.eager[domain.DefaultThemeID].Styles
}

// Catalog lists every selectable theme, eager first, each group sorted by id.
func (r *Resolver) Catalog() []domain.Info {
	eager := make([]domain.Info, 0, len(r.eager))
	for id, b := range r.eager {
		eager = append(eager, domain.Info{ID: id, Name: b.Name, Styles: b.Styles})
	}
	sort.Slice(eager, func(i, j int) bool { return eager[i].ID < eager[j].ID })

	lazy := make([]domain.Info, 0, len(r.lazy))
	for id := range r.lazy {
		lazy = append(lazy, domain.Info{ID: id, Name: lazyNames[id], Premium: true, Styles: lazyStyles[id]})
	}
	sort.Slice(lazy, func(i, j int) bool { return lazy[i].ID < lazy[j].ID })

	return append(eager, lazy...)
}
