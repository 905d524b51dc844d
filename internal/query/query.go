// Package query compiles where-expressions over shopping items, e.g.
//
//	checked
//	!checked && name contains "an"
//	lower(name) startsWith "b"
package query

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/idilsaglam/shopping/internal/model"
	"github.com/idilsaglam/shopping/internal/store"
)

// Query is a compiled boolean expression.
type Query struct {
	source  string
	program *vm.Program
}

func env(it model.Item) map[string]any {
	return map[string]any{
		"name":    it.Name,
		"checked": it.Checked,
	}
}

// Compile checks the expression against the item environment. It must
// evaluate to a bool.
func Compile(source string) (*Query, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, fmt.Errorf("query: expression must not be empty")
	}
	program, err := expr.Compile(source, expr.Env(env(model.Item{})), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("query %q: %w", source, err)
	}
	return &Query{source: source, program: program}, nil
}

func (q *Query) String() string { return q.source }

// Match evaluates the expression for one item.
func (q *Query) Match(it model.Item) (bool, error) {
	out, err := expr.Run(q.program, env(it))
	if err != nil {
		return false, fmt.Errorf("query %q: %w", q.source, err)
	}
	ok, _ := out.(bool)
	return ok, nil
}

// Select returns the matching store entries with their store indices.
// The first evaluation error aborts the selection.
func (q *Query) Select(st *store.Store) ([]model.Entry, error) {
	var firstErr error
	entries := st.Filter(func(it model.Item) bool {
		if firstErr != nil {
			return false
		}
		ok, err := q.Match(it)
		if err != nil {
			firstErr = err
			return false
		}
		return ok
	})
	if firstErr != nil {
		return nil, firstErr
	}
	return entries, nil
}
