package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tuplelang/tuplec/internal/token"
)

func TestSetHasMatchesKindAndAttr(t *testing.T) {
	s := set{keyword("if"), punct("(")}

	assert.True(t, s.has(token.New(token.Keyword, "if", 1)))
	assert.False(t, s.has(token.New(token.Keyword, "for", 1)), "different attr, same kind")
	assert.True(t, s.has(token.New(token.Punctuator, "(", 1)))
	assert.False(t, s.has(token.New(token.Punctuator, ")", 1)))
}

func TestSetHasWildcardKind(t *testing.T) {
	s := set{anyOf(token.Identifier)}
	assert.True(t, s.has(token.New(token.Identifier, "1", 1)))
	assert.True(t, s.has(token.New(token.Identifier, "99", 1)), "empty attr matches any spelling")
	assert.False(t, s.has(token.New(token.Number, "1", 1)))
}

func TestFirstFSetCoversAllLiteralAlternatives(t *testing.T) {
	cases := []token.Token{
		token.New(token.Punctuator, "(", 1),
		token.New(token.Identifier, "1", 1),
		token.New(token.Number, "42", 1),
		token.New(token.Float, "3.14", 1),
		token.New(token.CharConstant, "a", 1),
		token.New(token.StringLiteral, "hi", 1),
		token.New(token.Keyword, "true", 1),
		token.New(token.Keyword, "false", 1),
	}
	for _, tok := range cases {
		assert.True(t, firstF.has(tok), "firstF should match %v", tok.String())
	}
}

func TestFirstStmtsPrimeUnionsAllFiveStarters(t *testing.T) {
	assert.True(t, firstStmtsPrime.has(token.New(token.DataType, "int", 1)))
	assert.True(t, firstStmtsPrime.has(token.New(token.Identifier, "1", 1)))
	assert.True(t, firstStmtsPrime.has(token.New(token.Keyword, "for", 1)))
	assert.True(t, firstStmtsPrime.has(token.New(token.Keyword, "if", 1)))
	assert.True(t, firstStmtsPrime.has(token.New(token.Keyword, "return", 1)))
	assert.False(t, firstStmtsPrime.has(token.New(token.Punctuator, "}", 1)))
}
