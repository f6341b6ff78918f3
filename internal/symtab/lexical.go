// Package symtab holds the two symbol tables TUPLE compilation threads
// through the pipeline: the lexer's flat LexicalTable (string interning for
// identifiers) and the parser's scoped Table (declarations, types, sizes).
package symtab

import (
	"fmt"

	"github.com/alecthomas/repr"
)

// LexicalTable interns identifier spellings seen by the lexer into dense,
// monotonically increasing indices starting at 1 (spec.md §3). It is
// insertion-ordered and never deletes an entry; uniqueness of the
// underlying name is enforced by a linear scan before insertion, mirroring
// the original lexer.py (`__find_symb_tbl_ix`) rather than reaching for a
// map, since the report format needs first-occurrence order preserved and
// the table is small enough that an O(n) scan per new identifier never
// matters in practice.
type LexicalTable struct {
	names []string // names[i] holds the name stored at index i+1
}

// NewLexicalTable returns an empty table ready for the first insertion at
// index 1.
func NewLexicalTable() *LexicalTable {
	return &LexicalTable{}
}

// Lookup returns the index of name if it has already been interned.
func (t *LexicalTable) Lookup(name string) (index int, ok bool) {
	for i, n := range t.names {
		if n == name {
			return i + 1, true
		}
	}
	return 0, false
}

// InsertOrLookup returns the existing index for name if already present,
// otherwise interns it at the next index and returns that. This is the
// single entry point the lexer uses when it scans an identifier: first
// occurrence inserts, every later occurrence resolves to the same index.
func (t *LexicalTable) InsertOrLookup(name string) int {
	if idx, ok := t.Lookup(name); ok {
		return idx
	}
	t.names = append(t.names, name)
	return len(t.names)
}

// Name returns the interned spelling at index, which is 1-based.
func (t *LexicalTable) Name(index int) (string, bool) {
	if index < 1 || index > len(t.names) {
		return "", false
	}
	return t.names[index-1], true
}

// Entry renders the stored record for index in the "<name>, id" form
// spec.md §3 defines for the lexical symbol table's values.
func (t *LexicalTable) Entry(index int) (string, bool) {
	name, ok := t.Name(index)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%s, id", name), true
}

// Len returns the number of interned names.
func (t *LexicalTable) Len() int {
	return len(t.names)
}

// Row is one (index, entry) pair in insertion order, for report rendering.
type Row struct {
	Index int
	Entry string
}

// Rows returns every entry in insertion (first-occurrence) order.
func (t *LexicalTable) Rows() []Row {
	rows := make([]Row, 0, len(t.names))
	for i, name := range t.names {
		rows = append(rows, Row{Index: i + 1, Entry: fmt.Sprintf("%s, id", name)})
	}
	return rows
}

// DebugPrint pretty-prints the table's contents to stdout via repr. It is
// a debugging aid only — the direct descendant of symbol_table.py's
// print_table(), which spec.md §4.3 explicitly marks as not part of the
// public contract.
func (t *LexicalTable) DebugPrint() {
	repr.Println(t.names)
}
