package store

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"sync"

	"github.com/google/uuid"
)

// InitAction is dispatched once when a store is constructed.
const InitAction = "@@init"

// ErrEmptyActionType is returned by Dispatch for actions without a type.
var ErrEmptyActionType = errors.New("store: action type is empty")

// Action describes a state change.
type Action struct {
	Type    string
	Payload any
}

// State is the application-wide state held by a Store.
type State map[string]any

// Reducer computes the next state from the current state and an action.
// Reducers must not mutate the state they receive.
type Reducer func(state State, action Action) State

// Dispatch sends an action through the middleware chain.
type Dispatch func(action Action) error

// Middleware wraps the dispatch chain. The API gives read access to the store.
type Middleware func(api API, next Dispatch) Dispatch

// API is the view of a store available to middleware.
type API interface {
	State() State
	ID() string
}

// Store is a redux-style state container.
// It is safe for concurrent use.
type Store struct {
	id      string
	logger  *slog.Logger
	reducer Reducer

	mu    sync.RWMutex
	state State

	subsMu sync.Mutex
	subs   map[uint64]func(State)
	nextID uint64

	dispatch Dispatch
}

// Option configures a Store.
type Option func(*options)

type options struct {
	reducer    Reducer
	initial    State
	middleware []Middleware
	logger     *slog.Logger
}

// WithReducer sets the root reducer.
func WithReducer(r Reducer) Option {
	return func(o *options) {
		o.reducer = r
	}
}

// WithInitialState sets the state before the init action runs.
func WithInitialState(s State) Option {
	return func(o *options) {
		o.initial = s
	}
}

// WithMiddleware appends middleware. The first middleware is outermost.
func WithMiddleware(mw ...Middleware) Option {
	return func(o *options) {
		o.middleware = append(o.middleware, mw...)
	}
}

// WithLogger sets the store logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Configure constructs a Store and dispatches InitAction.
//
// Example:
//
//	s, err := store.Configure(
//	    store.WithReducer(store.CombineReducers(map[string]store.Reducer{
//	        "counter": counterReducer,
//	    })),
//	    store.WithMiddleware(store.Logging(logger)),
//	)
func Configure(opts ...Option) (*Store, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.reducer == nil {
		o.reducer = identity
	}
	if o.logger == nil {
		o.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	s := &Store{
		id:      uuid.NewString(),
		logger:  o.logger,
		reducer: o.reducer,
		state:   maps.Clone(o.initial),
		subs:    make(map[uint64]func(State)),
	}
	if s.state == nil {
		s.state = State{}
	}

	var chain Dispatch = s.reduce
	for i := len(o.middleware) - 1; i >= 0; i-- {
		chain = o.middleware[i](s, chain)
	}
	s.dispatch = chain

	if err := s.Dispatch(Action{Type: InitAction}); err != nil {
		return nil, fmt.Errorf("store: init: %w", err)
	}
	s.logger.Debug("store configured", "store_id", s.id, "keys", len(s.state))
	return s, nil
}

// ID returns the unique identifier of this store instance.
func (s *Store) ID() string {
	return s.id
}

// State returns a shallow copy of the current state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.state)
}

// Get returns a single top-level state value.
func (s *Store) Get(key string) any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state[key]
}

// Dispatch sends an action through middleware to the reducer and
// notifies subscribers.
func (s *Store) Dispatch(action Action) error {
	if action.Type == "" {
		return ErrEmptyActionType
	}
	return s.dispatch(action)
}

// reduce is the innermost dispatch step.
func (s *Store) reduce(action Action) error {
	s.mu.Lock()
	next := s.reducer(s.state, action)
	if next == nil {
		next = State{}
	}
	s.state = next
	snapshot := maps.Clone(next)
	s.mu.Unlock()

	s.notify(snapshot)
	return nil
}

// Subscribe registers fn to be called after every dispatch.
// The returned function removes the subscription.
func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	s.subsMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.subsMu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.subsMu.Lock()
			delete(s.subs, id)
			s.subsMu.Unlock()
		})
	}
}

func (s *Store) notify(state State) {
	s.subsMu.Lock()
	fns := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subsMu.Unlock()

	for _, fn := range fns {
		fn(state)
	}
}

func identity(state State, _ Action) State {
	return state
}
