package symtab

import (
	"github.com/alecthomas/repr"

	"github.com/tuplelang/tuplec/internal/langspec"
)

// Record is one entry in the scoped (parsing-side) symbol table: a
// declared name, its type, the scope depth it was declared at, and its
// size discriminator (2 for functions, 1 for identifiers/parameters),
// per spec.md §3/§4.3.
type Record struct {
	Name  string
	Type  langspec.Type
	Scope int
	Size  int
}

// Table is the append-only scoped symbol table the parser builds while
// walking the program. Records are never removed; scope exit is tracked
// by the parser's own scope counter, not by pruning this table (a
// declaration that goes out of scope simply becomes unreachable to
// Lookup/CheckReturnType once the scope depth no longer matches).
type Table struct {
	records []Record
}

// New returns an empty scoped symbol table.
func New() *Table {
	return &Table{}
}

// Lookup reports whether an exact (name, type, scope) record exists,
// per spec.md §4.3. Callers use this for the redeclaration check before
// every declaration.
func (t *Table) Lookup(name string, typ langspec.Type, scope int) bool {
	for _, r := range t.records {
		if r.Name == name && r.Type == typ && r.Scope == scope {
			return true
		}
	}
	return false
}

// Enter appends a new record unconditionally. Callers must guard with
// Lookup first if they want redeclaration semantics (spec.md §4.3).
func (t *Table) Enter(name string, typ langspec.Type, scope int, size int) {
	t.records = append(t.records, Record{Name: name, Type: typ, Scope: scope, Size: size})
}

// CheckReturnType returns the type of the record matching (name, scope).
// If none is found at that exact scope, it falls back to the scope-0
// (global) record for name, matching rd_parser.py's check_return_type.
// ok is false only when no record exists at either scope.
func (t *Table) CheckReturnType(name string, scope int) (typ langspec.Type, ok bool) {
	for _, r := range t.records {
		if r.Name == name && r.Scope == scope {
			return r.Type, true
		}
	}
	if scope != 0 {
		for _, r := range t.records {
			if r.Name == name && r.Scope == 0 {
				return r.Type, true
			}
		}
	}
	return "", false
}

// DebugPrint pretty-prints the table's records via repr. A debugging aid
// only, mirroring symbol_table.py's print_table (spec.md §4.3: "not part
// of the public contract").
func (t *Table) DebugPrint() {
	repr.Println(t.records)
}
