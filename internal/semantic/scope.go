package semantic

import "github.com/lumalang/luma/internal/types"

// scope is one lexical level of the per-function variable environment.
type scope struct {
	vars   map[string]*types.Type
	parent *scope
}

func newScope(parent *scope) *scope {
	return &scope{vars: make(map[string]*types.Type), parent: parent}
}

func (s *scope) declare(name string, t *types.Type) {
	s.vars[name] = t
}

func (s *scope) lookup(name string) (*types.Type, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if t, ok := cur.vars[name]; ok {
			return t, true
		}
	}
	return nil, false
}
