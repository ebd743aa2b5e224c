// Package asset loads block textures behind a single readiness barrier.
package asset

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync"

	"github.com/kamstrup/intmap"
	"golang.org/x/sync/errgroup"

	"github.com/plus3/tetra/internal/log"
	"github.com/plus3/tetra/tetra"
)

// ErrUnknownTexture is returned for texture ids outside the catalog.
var ErrUnknownTexture = errors.New("asset: unknown texture")

// LoadFunc produces the image for one texture.
type LoadFunc func(ctx context.Context, id tetra.TextureID) (image.Image, error)

// Library caches loaded textures and implements tetra.AssetLoader.
type Library struct {
	load   LoadFunc
	logger *log.Logger

	mu     sync.RWMutex
	images *intmap.Map[uint32, image.Image]
}

var _ tetra.AssetLoader = (*Library)(nil)

func NewLibrary(load LoadFunc, logger *log.Logger) *Library {
	if logger == nil {
		logger = log.Discard()
	}
	return &Library{
		load:   load,
		logger: logger.With("asset"),
		images: intmap.New[uint32, image.Image](len(tetra.Textures)),
	}
}

// LoadAll loads every id concurrently. The returned channel receives one
// value after all loads finished: nil, or the first error. Textures that
// are already cached are not loaded again.
func (l *Library) LoadAll(ctx context.Context, ids []tetra.TextureID) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- l.loadAll(ctx, ids)
	}()
	return done
}

func (l *Library) loadAll(ctx context.Context, ids []tetra.TextureID) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, id := range ids {
		if _, ok := l.Image(id); ok {
			continue
		}
		g.Go(func() error {
			if int(id) >= len(tetra.Textures) {
				return fmt.Errorf("%w: %d", ErrUnknownTexture, id)
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			img, err := l.load(ctx, id)
			if err != nil {
				l.logger.Errorf("texture %s: %v", id, err)
				return fmt.Errorf("asset: load %s: %w", id, err)
			}
			l.mu.Lock()
			l.images.Put(uint32(id), img)
			l.mu.Unlock()
			l.logger.Debugf("texture %s loaded (%dx%d)", id, img.Bounds().Dx(), img.Bounds().Dy())
			return nil
		})
	}
	return g.Wait()
}

// Image returns a loaded texture.
func (l *Library) Image(id tetra.TextureID) (image.Image, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.images.Get(uint32(id))
}

// Len returns the number of loaded textures.
func (l *Library) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.images.Len()
}
