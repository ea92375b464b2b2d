package dataset

import (
	"log"
	"sync"

	"github.com/parts-pile/car-sales/cache"
	"github.com/parts-pile/car-sales/metrics"
)

// rowCost is the estimated in-memory size of one Listing, used as cache cost.
const rowCost = 256

// Loader reads a source into a Dataset.
type Loader func(source string) (*Dataset, error)

// Store caches the Dataset of one source identifier. A Get for the same
// identifier returns the cached Dataset without reading the source again; a
// Get for a different identifier drops the cached Dataset and loads anew.
// Failed loads are not cached. The current Dataset is held by the Store
// itself; the ristretto cache mirrors it for the admin statistics, so cost
// admission never forces a reload.
type Store struct {
	mu      sync.Mutex
	cache   *cache.Cache[*Dataset]
	load    Loader
	source  string
	current *Dataset
	loads   int
}

// NewStore creates a Store reading sources with load. A nil load uses Load.
func NewStore(load Loader, maxCost int64) (*Store, error) {
	if load == nil {
		load = Load
	}
	c, err := cache.New[*Dataset](datasetCost, "Dataset Cache", maxCost)
	if err != nil {
		return nil, err
	}
	log.Printf("[dataset-cache] Cache initialized successfully")
	return &Store{cache: c, load: load}, nil
}

// Get returns the Dataset for source, reading it only on a cache miss.
func (s *Store) Get(source string) (*Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if source != s.source {
		if s.source != "" {
			log.Printf("[dataset-cache] source changed from %s to %s, invalidating", s.source, source)
		}
		s.cache.Clear()
		s.current = nil
		s.source = source
	}

	if ds, found := s.cache.Get(source); found {
		return ds, nil
	}
	if s.current != nil {
		return s.current, nil
	}

	s.loads++
	ds, err := s.load(source)
	if err != nil {
		metrics.ObserveLoad(false, 0)
		return nil, err
	}
	metrics.ObserveLoad(true, ds.Len())
	s.current = ds

	if !s.cache.Set(source, ds, 0) {
		log.Printf("[dataset-cache] dataset from %s was not admitted (cost %d)", source, datasetCost(ds))
	}
	s.cache.Wait()
	return ds, nil
}

// Current returns the cached Dataset of the last requested source, if any.
func (s *Store) Current() (*Dataset, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current, s.current != nil
}

// Invalidate drops the cached Dataset so the next Get reads the source again.
func (s *Store) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache.Clear()
	s.current = nil
	log.Printf("[dataset-cache] cleared")
}

// Source returns the identifier of the last requested source.
func (s *Store) Source() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.source
}

// Loads returns how many times a source has actually been read.
func (s *Store) Loads() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loads
}

// Stats returns cache statistics for the admin page.
func (s *Store) Stats() map[string]interface{} {
	stats := s.cache.Stats()
	stats["source"] = s.Source()
	stats["loads"] = s.Loads()
	return stats
}

// Close releases the underlying cache.
func (s *Store) Close() {
	s.cache.Close()
}

func datasetCost(ds *Dataset) int64 {
	if ds == nil || ds.Len() == 0 {
		return 1
	}
	return int64(ds.Len()) * rowCost
}
