package runtime

import (
	"fmt"
	"sort"
)

// ScopeID addresses one scope record inside an Environment.
type ScopeID int

const (
	// NoScope marks the missing parent of the global scope.
	NoScope ScopeID = -1
	// GlobalScope is created with the environment and never released.
	GlobalScope ScopeID = 0
)

type scope struct {
	values map[string]Value
	parent ScopeID
}

// Environment provides lexical scoping for Lox runtime values. Scopes live
// in an arena and refer to their parent by handle; since blocks nest
// strictly, releasing a scope also drops every scope pushed after it.
//
// An Environment is not safe for concurrent use.
type Environment struct {
	scopes []scope
}

// NewEnvironment creates an environment holding only the global scope.
func NewEnvironment() *Environment {
	return &Environment{
		scopes: []scope{{values: make(map[string]Value), parent: NoScope}},
	}
}

// Push opens a child scope nested under parent.
func (e *Environment) Push(parent ScopeID) ScopeID {
	e.mustScope(parent)
	e.scopes = append(e.scopes, scope{values: make(map[string]Value), parent: parent})
	return ScopeID(len(e.scopes) - 1)
}

// Release discards id and everything pushed after it.
func (e *Environment) Release(id ScopeID) {
	if id == GlobalScope {
		panic("runtime: global scope cannot be released")
	}
	e.mustScope(id)
	for i := int(id); i < len(e.scopes); i++ {
		e.scopes[i] = scope{}
	}
	e.scopes = e.scopes[:id]
}

// Len reports how many scopes are live, the global one included.
func (e *Environment) Len() int {
	return len(e.scopes)
}

// Parent exposes the lexical parent (NoScope when global).
func (e *Environment) Parent(id ScopeID) ScopeID {
	return e.mustScope(id).parent
}

// Define inserts or shadows a binding in the given scope.
func (e *Environment) Define(id ScopeID, name string, value Value) {
	e.mustScope(id).values[name] = value
}

// Get retrieves a binding, searching outward through the scope chain.
func (e *Environment) Get(id ScopeID, name Token) (Value, error) {
	for cur := id; cur != NoScope; {
		s := e.mustScope(cur)
		if v, ok := s.values[name.Lexeme]; ok {
			return v, nil
		}
		cur = s.parent
	}
	return nil, undefinedVariable(name)
}

// Assign updates an existing binding in the first scope where it appears.
// It never creates a binding.
func (e *Environment) Assign(id ScopeID, name Token, value Value) error {
	for cur := id; cur != NoScope; {
		s := e.mustScope(cur)
		if _, ok := s.values[name.Lexeme]; ok {
			s.values[name.Lexeme] = value
			return nil
		}
		cur = s.parent
	}
	return undefinedVariable(name)
}

// Has reports whether the binding exists anywhere in the scope chain.
func (e *Environment) Has(id ScopeID, name string) bool {
	for cur := id; cur != NoScope; {
		s := e.mustScope(cur)
		if _, ok := s.values[name]; ok {
			return true
		}
		cur = s.parent
	}
	return false
}

// HasInCurrentScope reports whether the binding exists in id itself.
func (e *Environment) HasInCurrentScope(id ScopeID, name string) bool {
	_, ok := e.mustScope(id).values[name]
	return ok
}

// Snapshot returns a copy of the bindings held directly by id.
func (e *Environment) Snapshot(id ScopeID) map[string]Value {
	values := e.mustScope(id).values
	out := make(map[string]Value, len(values))
	for k, v := range values {
		out[k] = v
	}
	return out
}

// Keys returns the names bound directly in id, sorted.
func (e *Environment) Keys(id ScopeID) []string {
	values := e.mustScope(id).values
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (e *Environment) mustScope(id ScopeID) *scope {
	if id < 0 || int(id) >= len(e.scopes) {
		panic(fmt.Sprintf("runtime: scope %d is not live (%d live scopes)", id, len(e.scopes)))
	}
	return &e.scopes[id]
}
