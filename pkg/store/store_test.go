package store

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/vango-dev/appshell/pkg/vdom"
)

func counterReducer(state State, action Action) State {
	n, _ := state["n"].(int)
	switch action.Type {
	case "inc":
		n++
	case "add":
		n += action.Payload.(int)
	}
	return State{"n": n}
}

func TestConfigure_DefaultsAndInit(t *testing.T) {
	var seen []string
	s, err := Configure(WithReducer(func(state State, action Action) State {
		seen = append(seen, action.Type)
		return state
	}))
	if err != nil {
		t.Fatalf("Configure: %v", err)
	}
	if len(seen) != 1 || seen[0] != InitAction {
		t.Errorf("reducer saw %v, want [%s]", seen, InitAction)
	}
	if s.State() == nil {
		t.Error("State() should never be nil")
	}
	if s.ID() == "" {
		t.Error("ID() should be set")
	}
}

func TestConfigure_DistinctInstances(t *testing.T) {
	a, err := Configure()
	if err != nil {
		t.Fatal(err)
	}
	b, err := Configure()
	if err != nil {
		t.Fatal(err)
	}
	if a == b || a.ID() == b.ID() {
		t.Error("each Configure call must produce an independent store")
	}
}

func TestConfigure_InitialStateIsCopied(t *testing.T) {
	initial := State{"theme": "dark"}
	s, err := Configure(WithInitialState(initial))
	if err != nil {
		t.Fatal(err)
	}
	initial["theme"] = "light"
	if got := s.Get("theme"); got != "dark" {
		t.Errorf("Get(theme) = %v, want dark", got)
	}
}

func TestDispatch(t *testing.T) {
	s, err := Configure(WithReducer(counterReducer))
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 3; i++ {
		if err := s.Dispatch(Action{Type: "inc"}); err != nil {
			t.Fatalf("Dispatch: %v", err)
		}
	}
	if err := s.Dispatch(Action{Type: "add", Payload: 10}); err != nil {
		t.Fatal(err)
	}
	if got := s.Get("n"); got != 13 {
		t.Errorf("n = %v, want 13", got)
	}
}

func TestDispatch_EmptyType(t *testing.T) {
	s, _ := Configure()
	if err := s.Dispatch(Action{}); !errors.Is(err, ErrEmptyActionType) {
		t.Errorf("Dispatch(empty) = %v, want ErrEmptyActionType", err)
	}
}

func TestState_ReturnsCopy(t *testing.T) {
	s, _ := Configure(WithInitialState(State{"a": 1}))
	st := s.State()
	st["a"] = 2
	if s.Get("a") != 1 {
		t.Error("mutating State() result must not affect the store")
	}
}

func TestSubscribe(t *testing.T) {
	s, _ := Configure(WithReducer(counterReducer))

	var got []int
	unsubscribe := s.Subscribe(func(st State) {
		got = append(got, st["n"].(int))
	})

	s.Dispatch(Action{Type: "inc"})
	s.Dispatch(Action{Type: "inc"})
	unsubscribe()
	unsubscribe()
	s.Dispatch(Action{Type: "inc"})

	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("subscriber saw %v, want [1 2]", got)
	}
}

func TestSubscribe_CanDispatchFromListener(t *testing.T) {
	s, _ := Configure(WithReducer(counterReducer))

	nested := false
	s.Subscribe(func(State) {
		if nested {
			return
		}
		nested = true
		if err := s.Dispatch(Action{Type: "inc"}); err != nil {
			t.Errorf("nested Dispatch: %v", err)
		}
	})

	s.Dispatch(Action{Type: "inc"})
	if got := s.Get("n"); got != 2 {
		t.Errorf("n = %v, want 2", got)
	}
}

func TestMiddleware_Order(t *testing.T) {
	var order []string
	mw := func(name string) Middleware {
		return func(api API, next Dispatch) Dispatch {
			return func(a Action) error {
				order = append(order, name+">"+a.Type)
				return next(a)
			}
		}
	}

	s, err := Configure(WithMiddleware(mw("outer"), mw("inner")))
	if err != nil {
		t.Fatal(err)
	}
	order = nil
	s.Dispatch(Action{Type: "x"})

	want := []string{"outer>x", "inner>x"}
	if strings.Join(order, ",") != strings.Join(want, ",") {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestMiddleware_InitFailure(t *testing.T) {
	boom := errors.New("boom")
	_, err := Configure(WithMiddleware(func(api API, next Dispatch) Dispatch {
		return func(Action) error { return boom }
	}))
	if !errors.Is(err, boom) {
		t.Fatalf("Configure err = %v, want wrapped boom", err)
	}
}

func TestCombineReducers(t *testing.T) {
	root := CombineReducers(map[string]Reducer{
		"counter": counterReducer,
		"flags": func(state State, action Action) State {
			if state == nil {
				state = State{"ready": false}
			}
			if action.Type == "ready" {
				return State{"ready": true}
			}
			return state
		},
	})
	s, err := Configure(WithReducer(root), WithInitialState(State{"other": "kept"}))
	if err != nil {
		t.Fatal(err)
	}
	s.Dispatch(Action{Type: "inc"})
	s.Dispatch(Action{Type: "ready"})

	st := s.State()
	if st["counter"].(State)["n"] != 1 {
		t.Errorf("counter = %v", st["counter"])
	}
	if st["flags"].(State)["ready"] != true {
		t.Errorf("flags = %v", st["flags"])
	}
	if st["other"] != "kept" {
		t.Errorf("unowned keys should carry over, got %v", st["other"])
	}
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s, err := Configure(WithMiddleware(Logging(logger)))
	if err != nil {
		t.Fatal(err)
	}
	s.Dispatch(Action{Type: "visit"})

	out := buf.String()
	if !strings.Contains(out, "action=visit") {
		t.Errorf("log output missing action: %s", out)
	}
	if !strings.Contains(out, "store_id="+s.ID()) {
		t.Errorf("log output missing store id: %s", out)
	}
}

func TestProviderAndFromEnv(t *testing.T) {
	s, _ := Configure()
	child := vdom.Text("child")
	node := Provider(s, child)

	p, ok := ProviderOf(node)
	if !ok {
		t.Fatalf("ProviderOf(%+v) = false", node)
	}
	if p.Value() != s {
		t.Error("provider should bind the given store")
	}
	if len(p.Children()) != 1 || p.Children()[0] != child {
		t.Error("provider should keep the child node")
	}

	env := p.Provide(vdom.NewEnv())
	if FromEnv(env) != s {
		t.Error("FromEnv should find the provided store")
	}
	if FromEnv(vdom.NewEnv()) != nil {
		t.Error("FromEnv without provider should be nil")
	}
}

func TestProviderOf_RejectsOtherNodes(t *testing.T) {
	if _, ok := ProviderOf(vdom.Div()); ok {
		t.Error("element is not a store provider")
	}
	if _, ok := ProviderOf(nil); ok {
		t.Error("nil is not a store provider")
	}
}

func TestConcurrentDispatch(t *testing.T) {
	s, _ := Configure(WithReducer(counterReducer))

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.Dispatch(Action{Type: "inc"})
			_ = s.State()
		}()
	}
	wg.Wait()

	if got := s.Get("n"); got != 50 {
		t.Errorf("n = %v, want 50", got)
	}
}
