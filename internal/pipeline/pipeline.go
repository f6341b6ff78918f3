// Package pipeline wires the lexer and parser together over a whole TUPLE
// source file: scan every line, build the per-line token stream and lexical
// error stream main.py's tokenize/write_* helpers report, then filter the
// combined stream down to what the parser actually consumes and hand it off.
package pipeline

import (
	"github.com/tuplelang/tuplec/internal/lexer"
	"github.com/tuplelang/tuplec/internal/parser"
	"github.com/tuplelang/tuplec/internal/symtab"
	"github.com/tuplelang/tuplec/internal/token"
)

// LexResult is the output of lexing a whole source file: every token
// produced, grouped by line for the token-stream report, and every lexical
// diagnostic, also grouped by line.
type LexResult struct {
	Lines      [][]token.Token
	Errors     map[int][]string // 1-indexed source line -> messages
	LexicalTbl *symtab.LexicalTable
}

// Lex scans every line of src (already split, one entry per source line,
// no trailing newlines) and returns the full per-line token stream.
func Lex(src []string) LexResult {
	names := symtab.NewLexicalTable()
	result := LexResult{
		Lines:      make([][]token.Token, len(src)),
		Errors:     map[int][]string{},
		LexicalTbl: names,
	}

	for i, line := range src {
		lineNo := i + 1
		lx := lexer.New(line, names, lineNo)
		var toks []token.Token
		for !lx.Done() {
			tok, errMsg := lx.Next()
			toks = append(toks, tok)
			if errMsg != "" {
				result.Errors[lineNo] = append(result.Errors[lineNo], errMsg)
			}
		}
		result.Lines[i] = toks
	}
	return result
}

// excludedLiteral is the one specific invalid-char-constant text main.py's
// unwanted_tokens set names explicitly, alongside the generic "<Invalid"
// prefix rule. internal/lexer no longer produces it (see lexer.go's
// charConstant doc comment) since this scanner doesn't fold the opening
// quote into the accumulated text the way lexer.py does, but the exclusion
// is kept for fidelity to the filter list spec.md §4.2 defines.
const excludedLiteral = "<Invalid char constant!, 'a>"

// filterForParser drops whitespace, comments, and invalid tokens from the
// full per-line stream, returning the flat sequence the parser walks.
// Blank/tab/newline tokens carry no parsing information once every Token
// already records its own source line (internal/token.Token.Pos.Line) — the
// filtered stream can drop them outright instead of needing the parser to
// skip newlines itself the way rd_parser.py's __skipNewLine does.
func filterForParser(lines [][]token.Token) []token.Token {
	var out []token.Token
	for _, line := range lines {
		for _, tok := range line {
			switch tok.Kind {
			case token.Blank, token.Tab, token.Newline, token.Comment:
				continue
			}
			if tok.IsInvalid() {
				continue
			}
			if tok.String() == excludedLiteral {
				continue
			}
			out = append(out, tok)
		}
	}
	return out
}

// Compile runs the full pipeline over src: lex, filter, then parse. It
// returns the lexical results (for the token-stream/symbol-table/lexical
// error reports) and the parse result (for the trace/parsing-error/
// semantic-error reports).
func Compile(src []string) (LexResult, parser.Result) {
	lexed := Lex(src)
	filtered := filterForParser(lexed.Lines)
	p := parser.New(filtered, lexed.LexicalTbl)
	return lexed, p.Parse()
}
