package catalog

import (
	"context"
	"net/url"
	"sync"

	"go-storefront/internal/pkg/apperror"
	"go-storefront/internal/product"
	"go-storefront/internal/toast"

	"go.uber.org/zap"
)

// Fetcher is the product-service call the model issues after a filter
// change. product.Client satisfies it.
type Fetcher interface {
	List(ctx context.Context, params url.Values) ([]product.Product, error)
}

// History is the URL bar collaborator. Replace rewrites the current entry
// (pure filter edits); Push adds one (destination changes).
type History interface {
	Replace(query string)
	Push(query string)
}

// MemoryHistory records what the address bar would show. It is the default
// History when the embedding view layer does not provide one.
type MemoryHistory struct {
	mu      sync.Mutex
	current string
}

func (h *MemoryHistory) Replace(query string) {
	h.mu.Lock()
	h.current = query
	h.mu.Unlock()
}

func (h *MemoryHistory) Push(query string) {
	h.Replace(query)
}

func (h *MemoryHistory) Current() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current
}

// Patch is a partial filter update; nil fields keep their current value.
type Patch struct {
	Category      *string
	MinPrice      *float64
	MaxPrice      *float64
	ClearMinPrice bool
	ClearMaxPrice bool
	Search        *string
	Sort          *SortKey
}

// Model holds the canonical catalog query and the last successfully fetched
// product list. Every mutation leaves the in-memory query and the URL string
// consistent before a fetch goes out, and a response is only applied if no
// newer fetch was issued meanwhile.
type Model struct {
	mu       sync.Mutex
	query    Query
	gen      uint64
	products []product.Product
	lastErr  error
	loading  bool

	fetcher Fetcher
	history History
	toasts  *toast.Channel
	logger  *zap.Logger
}

func NewModel(fetcher Fetcher, history History, toasts *toast.Channel, logger *zap.Logger) *Model {
	if history == nil {
		history = &MemoryHistory{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Model{
		query:   DefaultQuery(),
		fetcher: fetcher,
		history: history,
		toasts:  toasts,
		logger:  logger,
	}
}

// SetFilter merges a partial update, rewrites the URL, and refetches in the
// background. A category change is a destination change and pushes a new
// history entry; everything else replaces the current one.
func (m *Model) SetFilter(ctx context.Context, p Patch) {
	m.mu.Lock()
	categoryChanged := false
	if p.Category != nil && *p.Category != m.query.Category {
		m.query.Category = *p.Category
		categoryChanged = true
	}
	if p.MinPrice != nil {
		v := *p.MinPrice
		m.query.MinPrice = &v
	}
	if p.ClearMinPrice {
		m.query.MinPrice = nil
	}
	if p.MaxPrice != nil {
		v := *p.MaxPrice
		m.query.MaxPrice = &v
	}
	if p.ClearMaxPrice {
		m.query.MaxPrice = nil
	}
	if p.Search != nil {
		m.query.Search = *p.Search
	}
	if p.Sort != nil {
		m.query.Sort = *p.Sort
	}
	encoded := m.query.Encode()
	m.mu.Unlock()

	if categoryChanged {
		m.history.Push(encoded)
	} else {
		m.history.Replace(encoded)
	}

	go m.refresh(context.WithoutCancel(ctx))
}

// ApplyURL replaces the query from an incoming URL's query string, e.g. a
// navigation from the navbar search box. The URL is already what the user
// sees, so history is not touched.
func (m *Model) ApplyURL(rawQuery string) {
	vals, err := url.ParseQuery(rawQuery)
	if err != nil {
		m.logger.Warn("unparseable catalog URL, using defaults", zap.Error(err))
		vals = url.Values{}
	}

	m.mu.Lock()
	m.query = ParseQuery(vals)
	m.mu.Unlock()
}

// ClearFilters resets to defaults and rewrites the URL with no parameters.
func (m *Model) ClearFilters(ctx context.Context) {
	m.mu.Lock()
	m.query = DefaultQuery()
	m.mu.Unlock()

	m.history.Replace("")
	go m.refresh(context.WithoutCancel(ctx))
}

// Refresh fetches the product list for the current canonical query. Each
// call gets a generation number; a response is discarded if a newer call
// was issued before it resolved, so a stale response can never overwrite
// state derived from a more recent query.
func (m *Model) Refresh(ctx context.Context) ([]product.Product, error) {
	m.mu.Lock()
	m.gen++
	gen := m.gen
	params := m.query.RequestValues()
	m.loading = true
	m.mu.Unlock()

	list, err := m.fetcher.List(ctx, params)

	m.mu.Lock()
	if gen != m.gen {
		// superseded by a newer filter change
		m.mu.Unlock()
		return list, err
	}
	m.loading = false
	if err != nil {
		m.lastErr = apperror.Wrap(ErrFetchFailed, err)
		m.mu.Unlock()
		m.logger.Warn("product fetch failed", zap.Error(err))
		m.toasts.Push(toast.KindError, ErrFetchFailed.Message)
		return nil, err
	}
	m.products = list
	m.lastErr = nil
	m.mu.Unlock()
	return list, nil
}

func (m *Model) refresh(ctx context.Context) {
	_, _ = m.Refresh(ctx)
}

func (m *Model) Query() Query {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.query
}

// Products is the last successfully fetched list; a failed fetch leaves it
// untouched.
func (m *Model) Products() []product.Product {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]product.Product, len(m.products))
	copy(out, m.products)
	return out
}

// Err is the displayable error state, nil after the last successful fetch.
func (m *Model) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastErr
}

func (m *Model) Loading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}
