package calc

import (
	"fmt"
	"sort"
)

// Scopes hold the variables of an environment. Scopes link back to a parent
// scope, forming a tree; resolving a name starts at the innermost scope.

// --- Variables ---------------------------------------------------------

// Var is a named value.
type Var struct {
	name  string
	Value Result
}

// Name gets the variable's name.
func (v *Var) Name() string {
	return v.name
}

// String is a debug Stringer for variables.
func (v *Var) String() string {
	return fmt.Sprintf("<var '%s'=%s>", v.name, v.Value)
}

// --- Scopes ------------------------------------------------------------

// Scope is a named scope, which may contain variable definitions.
type Scope struct {
	Name   string
	Parent *Scope
	vars   map[string]*Var
}

// NewScope creates a new scope.
func NewScope(nm string, parent *Scope) *Scope {
	return &Scope{
		Name:   nm,
		Parent: parent,
		vars:   make(map[string]*Var),
	}
}

// Prettyfied Stringer.
func (s *Scope) String() string {
	return fmt.Sprintf("<scope %s>", s.Name)
}

// Define defines a variable in the scope, shadowing variables of the same
// name in outer scopes. Returns the new variable and the previously stored
// variable of this scope, if any.
func (s *Scope) Define(name string, value Result) (*Var, *Var) {
	if name == "" {
		return nil, nil
	}
	old := s.vars[name]
	v := &Var{name: name, Value: value}
	s.vars[name] = v
	return v, old
}

// Resolve finds a variable in the scope or in one of its outer scopes.
// Returns the variable and the scope it is defined in, or nil.
func (s *Scope) Resolve(name string) (*Var, *Scope) {
	for sc := s; sc != nil; sc = sc.Parent {
		if v, ok := sc.vars[name]; ok {
			return v, sc
		}
	}
	return nil, nil
}

// Size counts the variables defined in this scope, not including outer scopes.
func (s *Scope) Size() int {
	return len(s.vars)
}

// Visible returns the names of all variables visible in the scope, sorted.
func (s *Scope) Visible() []string {
	seen := make(map[string]bool)
	names := []string{}
	for sc := s; sc != nil; sc = sc.Parent {
		for name := range sc.vars {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	sort.Strings(names)
	return names
}
