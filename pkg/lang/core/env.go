package core

import "sort"

// Env is a lexical scope.  It maps symbol names to values and links to an
// optional parent scope.
//
// The parent link does not own the parent.  Scopes may be shared by
// reference, so a binding made through one reference is visible through all
// of them.  The root scope, i.e. the one without a parent, is the global
// scope.
type Env struct {
	parent *Env
	vars   map[string]Value
}

// NewEnv returns an empty scope whose parent is parent.  Pass nil to create
// a global scope.
func NewEnv(parent *Env) *Env {
	return &Env{
		parent: parent,
		vars:   make(map[string]Value),
	}
}

// Parent scope, or nil if e is the global scope.
func (e *Env) Parent() *Env { return e.parent }

// Root returns the global scope reachable from e.
func (e *Env) Root() *Env {
	for e.parent != nil {
		e = e.parent
	}

	return e
}

// Get returns a copy of the value bound to name, searching parent scopes on
// a miss.  If the name is unbound in every scope, Get returns an
// UnboundSymbol error.
func (e *Env) Get(name string) Value {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.vars[name]; ok {
			return v.Copy()
		}
	}

	return Unbound(name)
}

// Put binds a copy of v to name in the local scope, replacing any previous
// local binding.
func (e *Env) Put(name string, v Value) {
	e.vars[name] = v.Copy()
}

// Def binds a copy of v to name in the global scope.
func (e *Env) Def(name string, v Value) {
	e.Root().Put(name, v)
}

// Copy returns a scope with the same parent and a deep copy of every local
// binding.
func (e *Env) Copy() *Env {
	env := &Env{
		parent: e.parent,
		vars:   make(map[string]Value, len(e.vars)),
	}

	for name, v := range e.vars {
		env.vars[name] = v.Copy()
	}

	return env
}

// Len returns the number of local bindings.
func (e *Env) Len() int { return len(e.vars) }

// Names returns the sorted names bound in the local scope.
func (e *Env) Names() []string {
	names := make([]string, 0, len(e.vars))
	for name := range e.vars {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

func (e *Env) link(parent *Env) { e.parent = parent }
