package service

import (
	"context"
	"log/slog"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/graygoos/GoPaddiTakeHomeTest-sub000/internal/cache"
	"github.com/graygoos/GoPaddiTakeHomeTest-sub000/internal/directory"
	"github.com/graygoos/GoPaddiTakeHomeTest-sub000/internal/domain"
	"github.com/graygoos/GoPaddiTakeHomeTest-sub000/internal/observe"
)

const (
	// DefaultDebounce is how long input must be stable before a search runs.
	DefaultDebounce = 500 * time.Millisecond

	// minQueryLen is the shortest non-empty query that is searched.
	minQueryLen = 2
)

// SearchState is what the location picker renders.
type SearchState struct {
	// Query is the query that produced Results.
	Query   string
	Results []domain.Location
	Loading bool
	// Err is nil or a directory.Error.
	Err error
}

func cloneSearchState(s SearchState) SearchState {
	s.Results = directory.CloneLocations(s.Results)
	return s
}

// SearchOption configures a LocationSearch.
type SearchOption func(*LocationSearch)

// WithDebounce overrides DefaultDebounce.
func WithDebounce(d time.Duration) SearchOption {
	return func(s *LocationSearch) { s.debounce = d }
}

// WithSearchCache replaces the default in-memory cache.
func WithSearchCache(c cache.Cache) SearchOption {
	return func(s *LocationSearch) { s.cache = c }
}

// WithSearchLogger sets the logger used for absorbed cache failures.
func WithSearchLogger(l *slog.Logger) SearchOption {
	return func(s *LocationSearch) { s.log = l }
}

// LocationSearch is a debounced search over a Directory. At most one search is
// in flight: each call to Search supersedes the previous one, and a
// superseded search never publishes.
type LocationSearch struct {
	dir      directory.Directory
	cache    cache.Cache
	debounce time.Duration
	log      *slog.Logger
	state    *observe.Value[SearchState]

	// Owned by whoever holds the state writer lock.
	gen    uint64
	cancel context.CancelFunc

	ctx  context.Context
	stop context.CancelFunc
	wg   sync.WaitGroup
}

// NewLocationSearch returns an idle search over dir with an empty result list.
// Call Close to stop any pending search.
func NewLocationSearch(dir directory.Directory, opts ...SearchOption) *LocationSearch {
	s := &LocationSearch{
		dir:      dir,
		debounce: DefaultDebounce,
		log:      slog.Default(),
		state:    observe.NewValue(SearchState{Results: []domain.Location{}}, cloneSearchState),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.cache == nil {
		s.cache = cache.NewMemoryCache(cache.DefaultCapacity)
	}
	s.ctx, s.stop = context.WithCancel(context.Background())
	return s
}

// State returns a snapshot of the current search state.
func (s *LocationSearch) State() SearchState {
	return s.state.Get()
}

// Subscribe registers fn for every published change.
func (s *LocationSearch) Subscribe(fn func(SearchState)) (unsubscribe func()) {
	return s.state.Subscribe(fn)
}

// Search supersedes any pending search and then:
//   - an empty query publishes the whole directory immediately;
//   - a query shorter than two characters leaves the results as they are;
//   - a cached query publishes its cached results immediately;
//   - anything else is searched after the debounce interval.
//
// The error is cleared and loading reset in every case. After Close, Search
// does nothing.
func (s *LocationSearch) Search(query string) {
	s.state.Update(func(cur SearchState) (SearchState, bool) {
		if s.ctx.Err() != nil {
			return cur, false
		}
		s.supersede()
		next := cur
		next.Err = nil
		next.Loading = false

		if query == "" {
			next.Query = ""
			next.Results = s.dir.All()
			return next, true
		}
		if utf8.RuneCountInString(query) < minQueryLen {
			return next, true
		}
		if results, ok := s.cache.Get(s.ctx, query); ok {
			next.Query = query
			next.Results = results
			return next, true
		}

		ctx, cancel := context.WithCancel(s.ctx)
		s.cancel = cancel
		s.wg.Add(1)
		go s.run(ctx, s.gen, query)

		next.Loading = true
		return next, true
	})
}

// supersede invalidates the pending search, if any. Callers hold the writer lock.
func (s *LocationSearch) supersede() {
	s.gen++
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *LocationSearch) run(ctx context.Context, gen uint64, query string) {
	defer s.wg.Done()

	timer := time.NewTimer(s.debounce)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return
	case <-timer.C:
	}

	results, err := s.dir.Search(ctx, query)
	if ctx.Err() != nil {
		return
	}
	if err == nil {
		if cerr := s.cache.Set(ctx, query, results); cerr != nil {
			s.log.Warn("search cache write failed", "query", query, "error", cerr)
		}
	}

	s.state.Update(func(cur SearchState) (SearchState, bool) {
		if s.gen != gen {
			return cur, false
		}
		s.cancel()
		s.cancel = nil

		next := cur
		next.Loading = false
		if err != nil {
			next.Err = directory.Classify(err)
			return next, true
		}
		next.Query = query
		next.Results = results
		return next, true
	})
}

// ClearCache empties the result cache. Published results and any pending
// search are left alone.
func (s *LocationSearch) ClearCache(ctx context.Context) error {
	return s.cache.Clear(ctx)
}

// Close cancels any pending search and waits for it to exit. It is terminal:
// later calls to Search are ignored.
func (s *LocationSearch) Close() {
	s.state.Update(func(cur SearchState) (SearchState, bool) {
		s.supersede()
		s.stop()
		if !cur.Loading {
			return cur, false
		}
		cur.Loading = false
		return cur, true
	})
	s.wg.Wait()
}
