// Package lexer implements TUPLE's character scanner: a single Lexer value
// scans exactly one source line and is discarded, mirroring the original
// line-oriented design (lexer.py's Lexer is constructed fresh per line by
// the driver in main.py). Multi-line constructs do not exist in TUPLE's
// lexical grammar — comments, strings, and char constants must close on the
// line they open on.
package lexer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tuplelang/tuplec/internal/langspec"
	"github.com/tuplelang/tuplec/internal/symtab"
	"github.com/tuplelang/tuplec/internal/token"
)

// eof is the sentinel cur value once the scan has run past the line's
// trailing newline. It is not a valid TUPLE source byte.
const eof = 0

// Lexer scans one source line, character by character, dispatching to a
// sub-scanner per lexical class. It holds a pointer to the shared
// LexicalTable so identifiers intern across the whole program, not just the
// current line.
type Lexer struct {
	line   string
	pos    int
	cur    byte
	table  *symtab.LexicalTable
	lineNo int
}

// New returns a Lexer over line, ready to produce line's first token.
// lineNo is the 1-indexed source line, carried into every Token this Lexer
// produces for error reporting. A trailing newline is appended internally
// so every line ends with an explicit <newline> token, matching lexer.py's
// __init__ appending "\n" to its input.
func New(line string, table *symtab.LexicalTable, lineNo int) *Lexer {
	l := &Lexer{line: line + "\n", table: table, lineNo: lineNo, pos: -1}
	l.advance(1)
	return l
}

// Done reports whether the line has been fully consumed, including its
// trailing newline. Callers must stop calling Next once Done is true.
func (l *Lexer) Done() bool {
	return l.cur == eof
}

func (l *Lexer) advance(step int) {
	l.pos += step
	if l.pos >= len(l.line) {
		l.cur = eof
		return
	}
	l.cur = l.line[l.pos]
}

func (l *Lexer) peek() byte {
	if l.pos+1 >= len(l.line) {
		return eof
	}
	return l.line[l.pos+1]
}

func isWhitespaceByte(b byte) bool {
	_, ok := langspec.WhitespaceNames[b]
	return ok
}

// Next scans and returns the next token. The second return value is a
// non-empty diagnostic message when the token is one of the lexer's invalid
// variants; callers report it against the line the token carries.
func (l *Lexer) Next() (token.Token, string) {
	switch {
	case l.cur == '/':
		return l.commentOrDivision()
	case langspec.IsLetter(l.cur):
		return l.keywordOrIdentifier()
	case langspec.IsDigit(l.cur):
		return l.numberOrFloat()
	case l.cur == '+' || l.cur == '-' || l.cur == '*' || l.cur == '^':
		return l.arithOp()
	case l.cur == langspec.AssignChar:
		return l.assignOrEq()
	case l.cur == '<' || l.cur == '>':
		return l.relOp()
	case l.cur == '!':
		return l.bangRelOp()
	case l.cur == '"':
		return l.stringLiteral()
	case l.cur == '\'':
		return l.charConstant()
	case langspec.Punctuation[l.cur]:
		return l.punctuator()
	case isWhitespaceByte(l.cur):
		return l.whitespace()
	default:
		return token.New(token.Unrecognized, "", l.lineNo), "Character not recognised!"
	}
}

// commentOrDivision handles '/', which is both the division operator and
// the opening delimiter of a "/$ ... $/" block comment (lexer.py's
// __check_comment). A malformed comment that never finds its closing '$'
// before the line's sentinel newline is reported as unclosed rather than
// scanned forever, since a single Lexer never sees past its own line.
func (l *Lexer) commentOrDivision() (token.Token, string) {
	if l.peek() != '$' {
		tok := token.New(token.ArithOp, string(l.cur), l.lineNo)
		l.advance(1)
		return tok, ""
	}

	l.advance(2) // past "/$"
	for l.cur != '$' && l.cur != '\n' {
		l.advance(1)
	}
	if l.cur == '\n' {
		return token.New(token.InvalidComment, "", l.lineNo), "Comment not closed properly!"
	}
	// cur == '$'; look for the closing '/', allowing further '$' runs
	// in between (lexer.py scans past repeated '$' the same way).
	for l.peek() != '/' && l.peek() != '\n' {
		l.advance(1)
	}
	if l.peek() != '/' {
		return token.New(token.InvalidComment, "", l.lineNo), "Comment not closed properly!"
	}
	l.advance(2)
	return token.New(token.Comment, "", l.lineNo), ""
}

// keywordOrIdentifier scans a letter/digit/underscore run and classifies it
// as a keyword, a data-type name, or an identifier (interning it into the
// shared LexicalTable), per lexer.py's __check_key_dt_id.
func (l *Lexer) keywordOrIdentifier() (token.Token, string) {
	var b strings.Builder
	for langspec.IsLetter(l.cur) || langspec.IsDigit(l.cur) || l.cur == langspec.Underscore {
		b.WriteByte(l.cur)
		l.advance(1)
	}
	name := b.String()

	switch {
	case l.cur == '.':
		msg := fmt.Sprintf("%s%c (Invalid Identifier!)", name, l.cur)
		l.advance(1)
		return token.New(token.InvalidIdentifier, name, l.lineNo), msg
	case !isWhitespaceByte(l.cur) && !langspec.Punctuation[l.cur] && !langspec.ArithmeticOps[l.cur]:
		msg := fmt.Sprintf("%s (Invalid Identifier!)", name)
		return token.New(token.InvalidIdentifier, name, l.lineNo), msg
	case langspec.Keywords[name]:
		return token.New(token.Keyword, name, l.lineNo), ""
	case langspec.DataTypes[name]:
		return token.New(token.DataType, name, l.lineNo), ""
	default:
		idx := l.table.InsertOrLookup(name)
		return token.New(token.Identifier, strconv.Itoa(idx), l.lineNo), ""
	}
}

// numberOrFloat scans a digit run, handed off to floatSuffix if a '.'
// follows, per lexer.py's __check_digit. A single digit directly followed
// by a letter (e.g. "3x") is rejected as an unsupported character; unlike
// lexer.py, the offending digit is still consumed so the lexer always makes
// forward progress (lexer.py's equivalent branch never advances its
// cursor, which would loop forever on this input).
func (l *Lexer) numberOrFloat() (token.Token, string) {
	firstDigitBeforeLetter := langspec.IsLetter(l.peek())

	var b strings.Builder
	b.WriteByte(l.cur)
	l.advance(1)
	if firstDigitBeforeLetter {
		return token.New(token.UnsupportedDigit, b.String(), l.lineNo), "Unsupported character found with digit!"
	}

	for langspec.IsDigit(l.cur) {
		b.WriteByte(l.cur)
		l.advance(1)
	}
	intPart := b.String()
	if l.cur == '.' {
		return l.floatSuffix(intPart)
	}
	return token.New(token.Number, intPart, l.lineNo), ""
}

// floatSuffix scans the "." digits ("E" digits)? tail of a float literal,
// per the grammar spec.md §4.1 gives directly: "digits '.' digits ('E'
// digits)? with greedy matching and terminator lookahead". A fractional
// part with no digits, or an 'E' with no digits after it, fails to match
// that grammar and is reported invalid — consuming the rest of the line,
// since there is no sound resynchronization point inside a malformed
// literal.
func (l *Lexer) floatSuffix(intPart string) (token.Token, string) {
	var b strings.Builder
	b.WriteByte(l.cur) // '.'
	l.advance(1)

	if !langspec.IsDigit(l.cur) {
		return l.invalidFloat(intPart, &b)
	}
	for langspec.IsDigit(l.cur) {
		b.WriteByte(l.cur)
		l.advance(1)
	}

	if l.cur == 'E' {
		b.WriteByte(l.cur)
		l.advance(1)
		if !langspec.IsDigit(l.cur) {
			return l.invalidFloat(intPart, &b)
		}
		for langspec.IsDigit(l.cur) {
			b.WriteByte(l.cur)
			l.advance(1)
		}
	}

	if isFloatTerminator(l.cur) {
		return token.New(token.Float, intPart+b.String(), l.lineNo), ""
	}
	return l.invalidFloat(intPart, &b)
}

func (l *Lexer) invalidFloat(intPart string, b *strings.Builder) (token.Token, string) {
	for l.cur != '\n' {
		b.WriteByte(l.cur)
		l.advance(1)
	}
	text := intPart + b.String()
	msg := fmt.Sprintf("%s (Invalid Float!)", text)
	return token.New(token.InvalidFloat, text, l.lineNo), msg
}

func isFloatTerminator(b byte) bool {
	if b != '.' && langspec.Punctuation[b] {
		return true
	}
	return isWhitespaceByte(b)
}

// arithOp handles '+', '-', '*', '^'. A '-' immediately followed by a digit
// is folded into a signed number literal rather than emitted as a standalone
// operator, per lexer.py's __check_arith_op — TUPLE's grammar has no unary
// minus production, so negative literals are recognized lexically.
func (l *Lexer) arithOp() (token.Token, string) {
	if l.cur == '-' && langspec.IsDigit(l.peek()) {
		var b strings.Builder
		b.WriteByte(l.cur)
		l.advance(1)
		for langspec.IsDigit(l.cur) {
			b.WriteByte(l.cur)
			l.advance(1)
		}
		return token.New(token.Number, b.String(), l.lineNo), ""
	}
	tok := token.New(token.ArithOp, string(l.cur), l.lineNo)
	l.advance(1)
	return tok, ""
}

// assignOrEq handles '=', disambiguating plain assignment from "==".
func (l *Lexer) assignOrEq() (token.Token, string) {
	if l.peek() == '=' {
		l.advance(2)
		return token.New(token.RelOp, "EQ", l.lineNo), ""
	}
	tok := token.New(token.AssignOp, string(langspec.AssignChar), l.lineNo)
	l.advance(1)
	return tok, ""
}

// relOp handles '<' and '>', disambiguating from their "<=" / ">=" forms.
func (l *Lexer) relOp() (token.Token, string) {
	if l.peek() == '=' {
		sym := langspec.RelOpsDouble[string(l.cur)+"="]
		l.advance(2)
		return token.New(token.RelOp, sym, l.lineNo), ""
	}
	sym := langspec.RelOpsSingle[l.cur]
	l.advance(1)
	return token.New(token.RelOp, sym, l.lineNo), ""
}

// bangRelOp handles '!', which only has meaning as the first half of "!=".
// lexer.py's dispatch never routes '!' anywhere, so every "!=" in a TUPLE
// source file falls through to "Character not recognised!" even though
// "!=" (NE) is a fully specified relational operator (spec.md §3's operator
// table and rd_parser.py's relational-operator handling both assume it
// works). This lexer restores that dispatch rather than reproduce the gap.
func (l *Lexer) bangRelOp() (token.Token, string) {
	if l.peek() == '=' {
		l.advance(2)
		return token.New(token.RelOp, "NE", l.lineNo), ""
	}
	l.advance(1)
	return token.New(token.Unrecognized, "", l.lineNo), "Character not recognised!"
}

// stringLiteral scans a double-quoted run. An unterminated string (no
// closing quote before the line ends) still returns a best-effort literal
// token rather than looping past the sentinel newline forever.
func (l *Lexer) stringLiteral() (token.Token, string) {
	l.advance(1) // opening quote
	var b strings.Builder
	for l.cur != '"' && l.cur != eof {
		b.WriteByte(l.cur)
		l.advance(1)
	}
	text := b.String()
	if l.cur == '"' {
		l.advance(1)
	}
	return token.New(token.StringLiteral, text, l.lineNo), ""
}

// charConstant scans a single-quote-delimited run, per lexer.py's
// __check_char_const, but — unlike lexer.py — does not fold the opening
// quote into the accumulated text. lexer.py assigns cur_char (the opening
// quote itself) as the first character of save_string before advancing
// past it, so every syntactically valid one-character constant like 'a'
// accumulates as "'a" (length 2) and is misclassified as an invalid
// constant; main.py's token filter has to special-case the exact string
// "<Invalid char constant!, 'a>" to paper over it. spec.md §4.1 describes
// the clean behavior directly ("accumulate until ', newline, or
// punctuation; if length is exactly 1, emit char_constant"), which is what
// this scanner implements; the filtered literal is kept in the parser's
// exclusion list for fidelity even though this scanner can no longer
// produce it.
func (l *Lexer) charConstant() (token.Token, string) {
	l.advance(1) // opening quote
	var b strings.Builder
	for l.cur != '\'' && l.cur != '\n' && !langspec.Punctuation[l.cur] {
		b.WriteByte(l.cur)
		l.advance(1)
	}
	text := b.String()
	if l.peek() != eof {
		l.advance(1)
	}
	if len(text) == 1 {
		return token.New(token.CharConstant, text, l.lineNo), ""
	}
	msg := fmt.Sprintf("%s (Invalid char constant!)", text)
	return token.New(token.InvalidChar, text, l.lineNo), msg
}

func (l *Lexer) punctuator() (token.Token, string) {
	tok := token.New(token.Punctuator, string(l.cur), l.lineNo)
	l.advance(1)
	return tok, ""
}

func (l *Lexer) whitespace() (token.Token, string) {
	var kind token.Kind
	switch l.cur {
	case ' ':
		kind = token.Blank
	case '\t':
		kind = token.Tab
	default:
		kind = token.Newline
	}
	tok := token.New(kind, "", l.lineNo)
	l.advance(1)
	return tok, ""
}
