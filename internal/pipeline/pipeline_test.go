package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenarioUndeclaredIdentifier(t *testing.T) {
	// spec.md §8 scenario 3.
	_, parsed := Compile([]string{
		"int main()",
		"{",
		"y = 3;",
		"}",
	})
	require.NotEmpty(t, parsed.SemanticErrors)
	assert.Contains(t, flatten(parsed.SemanticErrors), "Undeclared identifier y")
}

func TestScenarioRedeclarationInSameScope(t *testing.T) {
	// spec.md §8 scenario 4.
	_, parsed := Compile([]string{
		"int main()",
		"{",
		"int x = 3;",
		"int x = 4;",
		"}",
	})
	assert.Contains(t, flatten(parsed.SemanticErrors), "Identifier x already defined in scope 1")
}

func TestScenarioAssignmentTypeMismatch(t *testing.T) {
	// spec.md §8 scenario 7.
	_, parsed := Compile([]string{
		"int main()",
		"{",
		`int x;`,
		`x = "hi";`,
		"}",
	})
	assert.Contains(t, flatten(parsed.SemanticErrors), "ERROR: Type mismatch in assignment")
}

func TestScenarioDeclarationWithLiteralHasNoSemanticErrors(t *testing.T) {
	// spec.md §8 scenario 2.
	_, parsed := Compile([]string{
		"int main()",
		"{",
		"int x = 5;",
		"}",
	})
	assert.Empty(t, flatten(parsed.SemanticErrors))
	assert.Empty(t, flatten(parsed.ParseErrors))
}

func TestScopeBalanceReturnsToZeroAtEOF(t *testing.T) {
	_, parsed := Compile([]string{
		"int main()",
		"{",
		"int x = 5;",
		"if (x > 0) {",
		"x = 1;",
		"}",
		"}",
	})
	require.NotEmpty(t, parsed.Trace)
	assert.Equal(t, "Scope: 0", parsed.Trace[len(parsed.Trace)-2],
		"scope must return to 0 immediately before the trace's terminating EOF entry")
	assert.Equal(t, "EOF", parsed.Trace[len(parsed.Trace)-1])
}

func TestMultiVariableDeclarationRegistersEveryName(t *testing.T) {
	// Exercises the restored List-non-terminal Identifier match: every
	// comma-separated declarator must be registered, not just the first.
	lexed, parsed := Compile([]string{
		"int main()",
		"{",
		"int a, b;",
		"a = 1;",
		"b = 2;",
		"}",
	})
	assert.Empty(t, flatten(parsed.SemanticErrors))
	_, ok := lexed.LexicalTbl.Lookup("b")
	assert.True(t, ok)
}

func TestCommaSeparatedParametersAreDeclared(t *testing.T) {
	_, parsed := Compile([]string{
		"int add(int a, int b)",
		"{",
		"return a + b;",
		"}",
	})
	assert.Empty(t, flatten(parsed.SemanticErrors))
	assert.Empty(t, flatten(parsed.ParseErrors))
}

func TestForLoopParsesWithoutErrors(t *testing.T) {
	_, parsed := Compile([]string{
		"int main()",
		"{",
		"int total = 0;",
		"for (int i = 0; i < 10; i++)",
		"{",
		"total = i;",
		"}",
		"}",
	})
	assert.Empty(t, flatten(parsed.ParseErrors))
}

func TestLexicalSymbolTableInsertionOrderMatchesFirstOccurrence(t *testing.T) {
	lexed, _ := Compile([]string{
		"int main()",
		"{",
		"int b;",
		"int a;",
		"}",
	})
	rows := lexed.LexicalTbl.Rows()
	require.Len(t, rows, 3) // main, b, a
	assert.Equal(t, "main, id", rows[0].Entry)
	assert.Equal(t, "b, id", rows[1].Entry)
	assert.Equal(t, "a, id", rows[2].Entry)
}

func TestFilterForParserDropsWhitespaceAndComments(t *testing.T) {
	lexed := Lex([]string{"int x; /$ note $/"})
	filtered := filterForParser(lexed.Lines)
	for _, tok := range filtered {
		assert.NotContains(t, []string{"<blank>", "<tab>", "<newline>", "<Comment>"}, tok.String())
	}
}

func TestFilterForParserKeepsUnsupportedDigitAndUnrecognized(t *testing.T) {
	// spec.md §4.2's filtered set only covers tokens whose textual form
	// begins with "<Invalid"; UnsupportedDigit and Unrecognized must reach
	// the parser so malformed input mid-statement triggers panic-mode
	// recovery instead of being silently dropped.
	lexed := Lex([]string{"int x = 5 @ 3x;"})
	filtered := filterForParser(lexed.Lines)
	var kinds []string
	for _, tok := range filtered {
		kinds = append(kinds, tok.String())
	}
	assert.Contains(t, kinds, "<Unsupported character>")
	assert.Contains(t, kinds, "<Character not recognised!>")
}

func TestScenarioUnrecognizedCharacterTriggersParseRecovery(t *testing.T) {
	_, parsed := Compile([]string{
		"int main()",
		"{",
		"int x = 5 @ 3;",
		"}",
	})
	assert.NotEmpty(t, parsed.ParseErrors)
}

func flatten(errs map[int][]string) []string {
	var out []string
	for _, msgs := range errs {
		out = append(out, msgs...)
	}
	return out
}
