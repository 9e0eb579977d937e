package vdom

// Env is an immutable scope of values threaded down the render tree.
//
// Each With call returns a child that shadows its parent for one key.
// A nil *Env is a valid empty root.
//
//	env := vdom.NewEnv().With(themeKey{}, "dark")
//	theme, _ := env.Lookup(themeKey{})
type Env struct {
	parent *Env
	key    any
	value  any
	depth  int
}

// NewEnv returns an empty root environment.
func NewEnv() *Env {
	return nil
}

// With returns a child environment binding key to value.
func (e *Env) With(key, value any) *Env {
	child := &Env{
		parent: e,
		key:    key,
		value:  value,
	}
	if e != nil {
		child.depth = e.depth + 1
	}
	return child
}

// Lookup returns the value bound to key by the nearest scope.
func (e *Env) Lookup(key any) (any, bool) {
	for cur := e; cur != nil; cur = cur.parent {
		if cur.key == key {
			return cur.value, true
		}
	}
	return nil, false
}

// Value is Lookup without the presence flag.
func (e *Env) Value(key any) any {
	v, _ := e.Lookup(key)
	return v
}

// Depth returns the number of bindings in the chain.
func (e *Env) Depth() int {
	if e == nil {
		return 0
	}
	return e.depth + 1
}
