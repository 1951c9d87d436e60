package lisp

import log "github.com/sirupsen/logrus"

// Env is a symbol -> value binding frame with an optional lexical
// parent (§4.4). The root environment (outer == nil) is seeded with
// every builtin procedure and special form; child environments are
// created per lambda call and per let-family special form, extending
// the lexical parent (the closure's captured environment for a
// lambda call, the current environment for let).
type Env struct {
	dict  map[Symbol]Value
	outer *Env
}

func newEnv(outer *Env) *Env {
	return &Env{dict: map[Symbol]Value{}, outer: outer}
}

// Define binds or rebinds name in this frame only (§4.4's define).
func (e *Env) Define(name Symbol, v Value) {
	e.dict[name] = v
}

// Undefine removes name from this frame only, never touching outer
// frames (§4.4's undefine).
func (e *Env) Undefine(name Symbol) {
	delete(e.dict, name)
}

// Lookup walks e, then its parent chain, returning the first binding
// found.
func (e *Env) Lookup(name Symbol) (Value, bool) {
	for env := e; env != nil; env = env.outer {
		if v, ok := env.dict[name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Set walks the chain to the frame that already binds name and
// updates it there (§4.4's set); it never creates a new binding.
func (e *Env) Set(name Symbol, v Value) bool {
	for env := e; env != nil; env = env.outer {
		if _, ok := env.dict[name]; ok {
			env.dict[name] = v
			return true
		}
	}
	return false
}

// CreateChild builds a new environment whose parent is e, binding
// each names[i] to values[i] (§4.4's create_child). Used for both
// lambda application and the let family.
func (e *Env) CreateChild(names []Symbol, values []Value) *Env {
	child := newEnv(e)
	for i, name := range names {
		child.dict[name] = values[i]
	}
	log.WithFields(log.Fields{"names": names}).Debug("env: created child")
	return child
}
