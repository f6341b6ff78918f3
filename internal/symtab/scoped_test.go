package symtab

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tuplelang/tuplec/internal/langspec"
)

func TestTableLookupExactMatch(t *testing.T) {
	tbl := New()
	tbl.Enter("x", langspec.Int, 0, 1)

	assert.True(t, tbl.Lookup("x", langspec.Int, 0))
	assert.False(t, tbl.Lookup("x", langspec.Float, 0), "different type does not match")
	assert.False(t, tbl.Lookup("x", langspec.Int, 1), "different scope does not match")
	assert.False(t, tbl.Lookup("y", langspec.Int, 0), "different name does not match")
}

func TestTableCheckReturnTypeFallsBackToGlobalScope(t *testing.T) {
	tbl := New()
	tbl.Enter("g", langspec.Float, 0, 1)

	typ, ok := tbl.CheckReturnType("g", 2)
	assert.True(t, ok)
	assert.Equal(t, langspec.Float, typ)
}

func TestTableCheckReturnTypePrefersLocalScope(t *testing.T) {
	tbl := New()
	tbl.Enter("x", langspec.Int, 0, 1)
	tbl.Enter("x", langspec.Char, 1, 1)

	typ, ok := tbl.CheckReturnType("x", 1)
	assert.True(t, ok)
	assert.Equal(t, langspec.Char, typ)
}

func TestTableCheckReturnTypeUndeclared(t *testing.T) {
	tbl := New()
	_, ok := tbl.CheckReturnType("missing", 0)
	assert.False(t, ok)
}
