package repo

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/rogerio-castellano/storefront/internal/models"
)

// FileCatalogRepository serves the catalog from a products JSON file on
// disk, reloading it when the file changes. A reload that fails to parse
// keeps the last good snapshot.
type FileCatalogRepository struct {
	path   string
	logger *zap.Logger

	mu       sync.RWMutex
	products []models.Product

	watcher *fsnotify.Watcher
	done    chan struct{}
}

// NewFileCatalogRepository loads the catalog from path. The initial load
// must succeed; later reloads degrade softly.
func NewFileCatalogRepository(path string, logger *zap.Logger) (*FileCatalogRepository, error) {
	r := &FileCatalogRepository{path: path, logger: logger}
	if err := r.reload(); err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return r, nil
}

// Watch starts reloading the catalog on file changes. Call Close to stop.
func (r *FileCatalogRepository) Watch() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	// Watch the directory: editors and atomic writers replace the file,
	// which drops a watch placed on the file itself.
	if err := watcher.Add(filepath.Dir(r.path)); err != nil {
		watcher.Close()
		return err
	}

	r.watcher = watcher
	r.done = make(chan struct{})

	go func() {
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != filepath.Clean(r.path) {
					continue
				}
				if !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) && !ev.Op.Has(fsnotify.Rename) {
					continue
				}
				if err := r.reload(); err != nil {
					r.logger.Warn("catalog reload failed, keeping previous snapshot", zap.Error(err))
				} else {
					r.logger.Info("catalog reloaded", zap.String("path", r.path))
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				r.logger.Warn("catalog watcher error", zap.Error(err))
			case <-r.done:
				return
			}
		}
	}()

	return nil
}

// Close stops the file watcher.
func (r *FileCatalogRepository) Close() error {
	if r.watcher == nil {
		return nil
	}
	close(r.done)
	return r.watcher.Close()
}

func (r *FileCatalogRepository) reload() error {
	raw, err := os.ReadFile(r.path)
	if err != nil {
		return err
	}
	// The data file is either a bare array or the {"items": [...]} envelope
	// the static site ships with.
	var products []models.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		var envelope struct {
			Items []models.Product `json:"items"`
		}
		if envErr := json.Unmarshal(raw, &envelope); envErr != nil {
			return err
		}
		products = envelope.Items
	}

	r.mu.Lock()
	r.products = products
	r.mu.Unlock()
	return nil
}

func (r *FileCatalogRepository) GetAll() ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *FileCatalogRepository) GetByID(id string) (models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

func (r *FileCatalogRepository) Search(keyword string) ([]models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return filterByKeyword(r.products, keyword), nil
}
