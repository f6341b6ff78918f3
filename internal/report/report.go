// Package report renders the four artifacts spec.md §6 defines as TUPLE's
// external interface: the flattened token stream, the lexical symbol table,
// the categorized error stream, and the parser trace. Each is a thin
// textual projection over the data pipeline.Compile already computed —
// nothing here recomputes or reinterprets the compilation, it only formats.
package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/tuplelang/tuplec/internal/symtab"
	"github.com/tuplelang/tuplec/internal/token"
)

// WriteTokenStream writes one token per output line, in source order,
// flattened across every source line. spec.md §6 states the `.out` file is
// "one token per line"; original_source/main.py's write_token_stream
// instead concatenates every token scanned from a single source line into
// one output line and joins those with newlines (one output line per
// *input* line, not per token). Token.String() for a Blank/Tab/Newline
// token still ends up here, since those are part of the lexer's reported
// stream even though internal/pipeline strips them before the parser sees
// them.
func WriteTokenStream(w io.Writer, lines [][]token.Token) error {
	for _, line := range lines {
		for _, tok := range line {
			if _, err := fmt.Fprintln(w, tok.String()); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteSymbolTable writes the lexical symbol table: a fixed header row
// followed by one row per interned identifier in first-occurrence order,
// both columns left-aligned within 8- and 15-character fields (spec.md
// §6).
func WriteSymbolTable(w io.Writer, table *symtab.LexicalTable) error {
	if _, err := fmt.Fprintf(w, "%-8s %-15s\n", "Key", "Symbol"); err != nil {
		return err
	}
	for _, row := range table.Rows() {
		if _, err := fmt.Fprintf(w, "%-8d %-15s\n", row.Index, row.Entry); err != nil {
			return err
		}
	}
	return nil
}

// errorKind labels which of the three disjoint categories (spec.md §7) a
// batch of error-stream rows belongs to.
type errorKind string

const (
	lexicalKind  errorKind = "Lexical"
	parsingKind  errorKind = "Parsing"
	semanticKind errorKind = "Semantic"
)

// WriteErrorStream writes the combined, categorized error report: a header
// row, then every lexical error, then every parsing error, then every
// semantic error, each group ordered by ascending (1-indexed) source line
// and, within a line, by append order. original_source/main.py builds this
// file across three separate passes (write-mode for Lexical, append-mode
// for Parsing and Semantic) because each pass runs as its own method at a
// different point in the program; here the whole pipeline already ran
// eagerly by the time this is called, so the three passes collapse into
// one direct write that produces byte-identical ordering without needing
// three file opens.
func WriteErrorStream(w io.Writer, lexical, parsing, semantic map[int][]string) error {
	if _, err := fmt.Fprintf(w, "%-10s %-50s %-20s\n", "line#", "error_found", "error_type"); err != nil {
		return err
	}
	groups := []struct {
		kind     errorKind
		messages map[int][]string
	}{
		{lexicalKind, lexical},
		{parsingKind, parsing},
		{semanticKind, semantic},
	}
	for _, g := range groups {
		for _, line := range sortedLines(g.messages) {
			for _, msg := range g.messages[line] {
				if _, err := fmt.Fprintf(w, "%-10d %-50s %-20s\n", line, msg, string(g.kind)); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func sortedLines(m map[int][]string) []int {
	lines := make([]int, 0, len(m))
	for line := range m {
		lines = append(lines, line)
	}
	sort.Ints(lines)
	return lines
}

// WriteParserTrace writes one trace entry per output line, in the order
// the parser produced them (spec.md §6).
func WriteParserTrace(w io.Writer, trace []string) error {
	for _, entry := range trace {
		if _, err := fmt.Fprintln(w, entry); err != nil {
			return err
		}
	}
	return nil
}
