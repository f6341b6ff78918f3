package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringBracketForms(t *testing.T) {
	tests := []struct {
		name string
		tok  Token
		want string
	}{
		{"keyword", New(Keyword, "if", 1), "<keyword, if>"},
		{"data type", New(DataType, "int", 1), "<dt, int>"},
		{"identifier", New(Identifier, "3", 1), "<id, 3>"},
		{"number", New(Number, "42", 1), "<num, 42>"},
		{"float", New(Float, "3.14E5", 1), "<float, 3.14E5>"},
		{"string literal", New(StringLiteral, "hello", 1), "<literal, hello>"},
		{"char constant", New(CharConstant, "a", 1), "<char_constant, a>"},
		{"relational op", New(RelOp, "LE", 1), "<rel_op, LE>"},
		{"assignment", New(AssignOp, "=", 1), "<assign, =>"},
		{"arithmetic op", New(ArithOp, "+", 1), "<+>"},
		{"punctuator", New(Punctuator, ";", 1), "<punctuator, ;>"},
		{"blank", New(Blank, "", 1), "<blank>"},
		{"tab", New(Tab, "", 1), "<tab>"},
		{"newline", New(Newline, "", 1), "<newline>"},
		{"comment", New(Comment, "", 1), "<Comment>"},
		{"invalid comment", New(InvalidComment, "", 1), "<Invalid Comment>"},
		{"invalid identifier", New(InvalidIdentifier, "x.", 1), "<Invalid Identifier!>"},
		{"invalid float", New(InvalidFloat, "3.14E", 1), "<Invalid Float!>"},
		{"invalid char constant", New(InvalidChar, "ab", 1), "<Invalid char constant!, ab>"},
		{"unsupported digit", New(UnsupportedDigit, "3", 1), "<Unsupported character>"},
		{"unrecognized", New(Unrecognized, "", 1), "<Character not recognised!>"},
		{"eof", New(EOF, "", 1), "<$>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tok.String())
		})
	}
}

func TestIsInvalid(t *testing.T) {
	assert.True(t, New(InvalidIdentifier, "", 1).IsInvalid())
	assert.True(t, New(InvalidFloat, "", 1).IsInvalid())
	assert.True(t, New(InvalidChar, "", 1).IsInvalid())
	assert.True(t, New(InvalidComment, "", 1).IsInvalid())
	assert.False(t, New(UnsupportedDigit, "", 1).IsInvalid(), "UnsupportedDigit must reach the parser")
	assert.False(t, New(Unrecognized, "", 1).IsInvalid(), "Unrecognized must reach the parser")
	assert.False(t, New(Identifier, "1", 1).IsInvalid())
	assert.False(t, New(Number, "1", 1).IsInvalid())
}

func TestIndex(t *testing.T) {
	tok := New(Identifier, "7", 1)
	assert.Equal(t, 7, tok.Index())
}

func TestIndexPanicsOnNonIdentifier(t *testing.T) {
	tok := New(Number, "7", 1)
	assert.Panics(t, func() { tok.Index() })
}

func TestHasSingleAttrAgreesWithString(t *testing.T) {
	// Every kind whose String() form carries no comma must report
	// hasSingleAttr true, and vice versa; this keeps the classification
	// used by panic recovery in sync with the actual wire format.
	kinds := []Kind{
		Keyword, DataType, Identifier, Number, Float, CharConstant, StringLiteral,
		ArithOp, AssignOp, RelOp, Punctuator, Blank, Tab, Newline, Comment,
		InvalidIdentifier, InvalidFloat, InvalidChar, InvalidComment,
		UnsupportedDigit, Unrecognized, EOF,
	}
	for _, k := range kinds {
		tok := New(k, "x", 1)
		hasComma := false
		for _, c := range tok.String() {
			if c == ',' {
				hasComma = true
				break
			}
		}
		assert.Equal(t, !hasComma, k.hasSingleAttr(), "kind %v (%q)", k, tok.String())
	}
}
