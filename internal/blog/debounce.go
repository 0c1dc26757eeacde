package blog

import (
	"context"
	"sync"
	"time"
)

// DebounceDelay is the quiet period after the last keystroke before a
// search request goes out.
const DebounceDelay = 300 * time.Millisecond

// SearchState reports where a debounced search currently stands. Pending and
// InFlight are both "loading" from the caller's perspective and must not be
// conflated with a settled empty result.
type SearchState int

const (
	SearchIdle SearchState = iota
	SearchPending
	SearchInFlight
	SearchSettled
)

// SearchFunc issues one search request for a snapshot of the inputs.
type SearchFunc func(ctx context.Context, query string, tags []string, page, perPage int) (*SearchResult, error)

// Debouncer drives filter-driven searches: text changes wait out the quiet
// period, tag toggles and page moves fire immediately, and any input change
// resets the page to 1 except an explicit page move. Every request carries a
// token; a response whose token has been superseded is discarded so a stale
// in-flight result never overwrites a fresher one.
type Debouncer struct {
	search SearchFunc
	delay  time.Duration
	ctx    context.Context

	mu      sync.Mutex
	timer   *time.Timer
	token   uint64
	state   SearchState
	query   string
	tags    []string
	page    int
	perPage int
	result  *SearchResult
	err     error
}

func NewDebouncer(ctx context.Context, search SearchFunc, delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DebounceDelay
	}

	return &Debouncer{
		search:  search,
		delay:   delay,
		ctx:     ctx,
		state:   SearchIdle,
		page:    1,
		perPage: DefaultPageSize,
	}
}

// SetQuery records a keystroke. The request fires only after the quiet
// period passes with no further changes; the page resets to 1.
func (d *Debouncer) SetQuery(query string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if query == d.query {
		return
	}

	d.query = query
	d.page = 1
	d.state = SearchPending
	// Invalidate any in-flight request right away: its response is already
	// known to be stale.
	d.token++

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.fire)
}

// SetTags applies a tag toggle immediately, resetting to page 1.
func (d *Debouncer) SetTags(tags []string) {
	d.mu.Lock()
	d.tags = tags
	d.page = 1
	d.state = SearchPending
	d.stopTimerLocked()
	d.mu.Unlock()

	go d.fire()
}

// SetPage moves to another page of the current result set immediately.
func (d *Debouncer) SetPage(page int) {
	if page < 1 {
		page = 1
	}

	d.mu.Lock()
	d.page = page
	d.state = SearchPending
	d.stopTimerLocked()
	d.mu.Unlock()

	go d.fire()
}

// State reports the current phase. Loading is Pending or InFlight.
func (d *Debouncer) State() SearchState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

func (d *Debouncer) Loading() bool {
	state := d.State()
	return state == SearchPending || state == SearchInFlight
}

// Result returns the latest settled result. ok is false until the first
// request settles.
func (d *Debouncer) Result() (result *SearchResult, err error, ok bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state != SearchSettled {
		return nil, nil, false
	}
	return d.result, d.err, true
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	d.token++
	token := d.token
	query, tags, page, perPage := d.query, d.tags, d.page, d.perPage
	d.state = SearchInFlight
	d.mu.Unlock()

	result, err := d.search(d.ctx, query, tags, page, perPage)

	d.mu.Lock()
	defer d.mu.Unlock()

	if token != d.token {
		// A newer request superseded this one while it was in flight.
		return
	}

	d.state = SearchSettled
	d.result = result
	d.err = err
}

func (d *Debouncer) stopTimerLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
