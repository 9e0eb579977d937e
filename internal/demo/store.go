package demo

import (
	"io"
	"log/slog"
	"maps"
	"net/http"

	"github.com/vango-dev/appshell"
	"github.com/vango-dev/appshell/pkg/router"
	"github.com/vango-dev/appshell/pkg/server"
	"github.com/vango-dev/appshell/pkg/store"
)

// Action types.
const (
	ActionVisit = "visits/record"
	ActionReset = "visits/reset"
)

// MaxTrackedPaths bounds the per-path counts. Visits to further paths only
// raise the total.
const MaxTrackedPaths = 256

// Visits is the visit log slice of the store.
type Visits struct {
	Total  int
	ByPath map[string]int
}

// NewStoreFactory returns the factory for the demo store. Dispatches are
// logged to logger.
func NewStoreFactory(logger *slog.Logger) appshell.StoreFactory {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return func() (*store.Store, error) {
		return store.Configure(
			store.WithReducer(store.CombineReducers(map[string]store.Reducer{
				"visits": visitsReducer,
			})),
			store.WithInitialState(store.State{"app": "appshell demo"}),
			store.WithMiddleware(store.Logging(logger)),
			store.WithLogger(logger),
		)
	}
}

// ConfigureStore builds the demo store without logging.
func ConfigureStore() (*store.Store, error) {
	return NewStoreFactory(nil)()
}

func visitsReducer(state store.State, action store.Action) store.State {
	if state == nil || action.Type == ActionReset {
		state = store.State{"total": 0, "byPath": map[string]int{}}
	}
	if action.Type != ActionVisit {
		return state
	}
	path, ok := action.Payload.(string)
	if !ok || path == "" {
		return state
	}

	total := state["total"].(int) + 1
	byPath := state["byPath"].(map[string]int)
	if _, seen := byPath[path]; seen || len(byPath) < MaxTrackedPaths {
		byPath = maps.Clone(byPath)
		byPath[path]++
	}
	return store.State{
		"total":  total,
		"byPath": byPath,
	}
}

// VisitsOf reads the visit log from s. A nil store has no visits.
func VisitsOf(s *store.Store) Visits {
	v := Visits{ByPath: map[string]int{}}
	if s == nil {
		return v
	}
	slice, ok := s.Get("visits").(store.State)
	if !ok {
		return v
	}
	v.Total, _ = slice["total"].(int)
	if byPath, ok := slice["byPath"].(map[string]int); ok {
		v.ByPath = byPath
	}
	return v
}

// TrackVisits returns a page hook that records GET requests for matched
// pages in s. Visits are keyed by the canonical escaped path, the same key
// pages read through Match.Path.
func TrackVisits(s *store.Store, logger *slog.Logger) server.PageHook {
	if logger == nil {
		logger = slog.Default()
	}
	return func(r *http.Request, m *router.Match) {
		if r.Method != http.MethodGet {
			return
		}
		if err := s.Dispatch(store.Action{Type: ActionVisit, Payload: m.Path}); err != nil {
			logger.Warn("visit not recorded", "path", m.Path, "error", err)
		}
	}
}
