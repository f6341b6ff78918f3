// Package token defines the tagged token type that flows from the lexer to
// the parser. Internally a Token carries a discriminated Kind plus a typed
// payload (see design notes in spec.md §9: "a sound re-architecture uses a
// discriminated union ... as the wire type internally and serializes to
// the bracket form only at the output boundary"); the bracket-delimited
// text form (e.g. "<id, 3>") is produced on demand by String, not carried
// as the primary representation the parser dispatches on.
package token

import (
	"fmt"
	"strconv"

	"github.com/alecthomas/participle/v2/lexer"
)

// Kind discriminates the token variants from spec.md §3.
type Kind int

const (
	Keyword Kind = iota
	DataType
	Identifier
	Number
	Float
	CharConstant
	StringLiteral
	ArithOp
	AssignOp
	RelOp
	Punctuator
	Blank
	Tab
	Newline
	Comment
	InvalidIdentifier
	InvalidFloat
	InvalidChar
	InvalidComment
	UnsupportedDigit
	Unrecognized
	EOF
)

var kindNames = map[Kind]string{
	Keyword:           "keyword",
	DataType:          "dt",
	Identifier:        "id",
	Number:            "num",
	Float:             "float",
	CharConstant:      "char_constant",
	StringLiteral:     "literal",
	ArithOp:           "arith_op",
	AssignOp:          "assign",
	RelOp:             "rel_op",
	Punctuator:        "punctuator",
	Blank:             "blank",
	Tab:               "tab",
	Newline:           "newline",
	Comment:           "Comment",
	InvalidIdentifier: "Invalid Identifier!",
	InvalidFloat:      "Invalid Float!",
	InvalidChar:       "Invalid char constant!",
	InvalidComment:    "Invalid Comment",
	UnsupportedDigit:  "Unsupported character",
	Unrecognized:      "Character not recognised!",
	EOF:               "EOF",
}

// String returns a human-readable name for k, used in trace and error text.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Token is a single lexical unit. Attr holds the raw payload (an
// identifier's symbol-table index as decimal text, a digit run, a single
// character, a symbolic rel-op name, ...); Pos records only the line the
// token was produced on, per the line-granularity position tracking this
// module carries (spec.md §1 Non-goals: no sub-line position tracking).
type Token struct {
	Kind Kind
	Attr string
	Pos  lexer.Position
}

// New builds a Token of the given kind and attribute, with Pos.Line set to
// line (1-indexed at the report boundary, but callers are free to track it
// 0-indexed internally; see internal/pipeline).
func New(kind Kind, attr string, line int) Token {
	return Token{Kind: kind, Attr: attr, Pos: lexer.Position{Line: line}}
}

// IsEOF reports whether t is the end-of-stream sentinel.
func (t Token) IsEOF() bool {
	return t.Kind == EOF
}

// IsInvalid reports whether t is one of the kinds whose textual form begins
// with "<Invalid" — the exact filtered set spec.md §4.2 defines alongside
// whitespace and comments. UnsupportedDigit ("<Unsupported character>") and
// Unrecognized ("<Character not recognised!>") are deliberately excluded:
// neither renders with an "<Invalid" prefix, and the original main.py's
// unwanted_tokens/prefix check lets both reach the parser, where they
// trigger panic-mode recovery like any other unexpected token. internal/
// pipeline filters exactly this set (alongside whitespace and comments)
// before handing the stream to the parser.
func (t Token) IsInvalid() bool {
	switch t.Kind {
	case InvalidIdentifier, InvalidFloat, InvalidChar, InvalidComment:
		return true
	default:
		return false
	}
}

// Index parses an Identifier token's Attr as its lexical symbol-table
// index. It panics if called on a non-Identifier token; callers must
// check Kind first.
func (t Token) Index() int {
	if t.Kind != Identifier {
		panic(fmt.Sprintf("token.Index called on non-identifier kind %v", t.Kind))
	}
	n, err := strconv.Atoi(t.Attr)
	if err != nil {
		panic(fmt.Sprintf("token.Index: identifier attr %q is not numeric: %v", t.Attr, err))
	}
	return n
}

// hasSingleAttr reports whether this kind's bracket form carries no
// comma-separated attribute at all — it's the whole text, e.g. "<+>" or
// "<blank>" — as opposed to "<dt, int>" or "<id, 3>". AssignOp and
// Punctuator both render with a comma (see String below), so panic
// recovery's "Expected X but found Y" / "<attr> cannot be parsed" choice
// in internal/parser reimplements this same split as hasBareForm rather
// than calling this method; kept here as the canonical single-attr
// classification for any other caller that needs it.
func (k Kind) hasSingleAttr() bool {
	switch k {
	case ArithOp, Blank, Tab, Newline, Comment,
		InvalidComment, InvalidIdentifier, InvalidFloat, UnsupportedDigit, Unrecognized, EOF:
		return true
	default:
		return false
	}
}

// String renders the token in the angle-bracketed wire form from spec.md
// §6. This is the only place that format is produced; every other package
// dispatches on Kind/Attr, never on substrings of this text.
func (t Token) String() string {
	switch t.Kind {
	case Keyword:
		return fmt.Sprintf("<keyword, %s>", t.Attr)
	case DataType:
		return fmt.Sprintf("<dt, %s>", t.Attr)
	case Identifier:
		return fmt.Sprintf("<id, %s>", t.Attr)
	case Number:
		return fmt.Sprintf("<num, %s>", t.Attr)
	case Float:
		return fmt.Sprintf("<float, %s>", t.Attr)
	case CharConstant:
		return fmt.Sprintf("<char_constant, %s>", t.Attr)
	case StringLiteral:
		return fmt.Sprintf("<literal, %s>", t.Attr)
	case RelOp:
		return fmt.Sprintf("<rel_op, %s>", t.Attr)
	case AssignOp:
		return fmt.Sprintf("<assign, %s>", t.Attr)
	case ArithOp:
		return fmt.Sprintf("<%s>", t.Attr)
	case Punctuator:
		return fmt.Sprintf("<punctuator, %s>", t.Attr)
	case Blank:
		return "<blank>"
	case Tab:
		return "<tab>"
	case Newline:
		return "<newline>"
	case Comment:
		return "<Comment>"
	case InvalidComment:
		return "<Invalid Comment>"
	case InvalidIdentifier:
		return "<Invalid Identifier!>"
	case InvalidFloat:
		return "<Invalid Float!>"
	case InvalidChar:
		return fmt.Sprintf("<Invalid char constant!, %s>", t.Attr)
	case UnsupportedDigit:
		return "<Unsupported character>"
	case Unrecognized:
		return "<Character not recognised!>"
	case EOF:
		return "<$>"
	default:
		return "<?>"
	}
}
