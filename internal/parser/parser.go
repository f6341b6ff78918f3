// Package parser implements TUPLE's recursive-descent parser: one method
// per grammar non-terminal, each driven by the FIRST/FOLLOW sets in
// sets.go, with panic-mode error recovery and an integrated semantic
// analyzer that builds a scoped symbol table as it walks declarations.
package parser

import (
	"fmt"

	"github.com/tuplelang/tuplec/internal/langspec"
	"github.com/tuplelang/tuplec/internal/symtab"
	"github.com/tuplelang/tuplec/internal/token"
)

// eosToken is returned by peek once the token stream is exhausted, mirroring
// rd_parser.py's "<$>" end-of-stream sentinel.
var eosToken = token.Token{Kind: token.EOF}

// Result is everything parsing produces: the human-readable trace, the
// parsing (syntax) errors and semantic errors keyed by source line, and the
// scoped symbol table built while walking declarations.
type Result struct {
	Trace          []string
	ParseErrors    map[int][]string
	SemanticErrors map[int][]string
	Symbols        *symtab.Table
}

// Parser walks a filtered token stream (whitespace, comments, and invalid
// lexer tokens already removed by internal/pipeline) and produces a Result.
type Parser struct {
	tokens []token.Token
	pos    int
	names  *symtab.LexicalTable

	scope           int
	currentFunction string
	lastReturnType  langspec.Type

	trace          []string
	parseErrors    map[int][]string
	semanticErrors map[int][]string
	symbols        *symtab.Table
	line           int
}

// New returns a Parser ready to walk tokens. names resolves an Identifier
// token's Attr (a symbol-table index) back to its spelling.
func New(tokens []token.Token, names *symtab.LexicalTable) *Parser {
	p := &Parser{
		tokens:         tokens,
		names:          names,
		parseErrors:    map[int][]string{},
		semanticErrors: map[int][]string{},
		symbols:        symtab.New(),
	}
	p.trace = append(p.trace, fmt.Sprintf("Scope: %d", p.scope))
	return p
}

// Parse runs the parser from the Program non-terminal and returns the
// accumulated trace, diagnostics, and symbol table.
func (p *Parser) Parse() Result {
	p.program()
	return Result{
		Trace:          p.trace,
		ParseErrors:    p.parseErrors,
		SemanticErrors: p.semanticErrors,
		Symbols:        p.symbols,
	}
}

// --- token stream -----------------------------------------------------

func (p *Parser) cur() token.Token {
	if p.pos >= len(p.tokens) {
		return eosToken
	}
	return p.tokens[p.pos]
}

func (p *Parser) peek() token.Token {
	if p.pos+1 >= len(p.tokens) {
		return eosToken
	}
	return p.tokens[p.pos+1]
}

func (p *Parser) advance() {
	p.pos++
	if tok := p.cur(); !tok.IsEOF() {
		p.line = tok.Pos.Line
	}
}

// --- trace helpers ------------------------------------------------------

// matchedKind records a typed-category match (dt/id/rel_op/...), logged
// with its full bracket form.
func (p *Parser) matchedKind(tok token.Token) {
	p.trace = append(p.trace, "matched "+tok.String())
}

// matchedValue records a fixed-terminal match (a keyword, punctuator, or
// operator spelling), logged compactly as just the symbol in brackets.
func (p *Parser) matchedValue(attr string) {
	p.trace = append(p.trace, "matched <"+attr+">")
}

func (p *Parser) enterScope(label string) {
	if label != "" {
		p.trace = append(p.trace, "In "+label+"()")
	}
	p.scope++
	p.trace = append(p.trace, fmt.Sprintf("Scope: %d", p.scope))
}

func (p *Parser) exitScope(label string) {
	if label != "" {
		p.trace = append(p.trace, "Exiting "+label+"()")
	}
	p.scope--
	p.trace = append(p.trace, fmt.Sprintf("Scope: %d", p.scope))
}

// --- diagnostics ---------------------------------------------------------

// recover implements panic-mode recovery: it records a syntax error against
// the offending token, then skips forward one token and returns, letting
// the caller re-enter the production. The message mirrors
// rd_parser.py's __recordingErrors: a token whose bracket form carries no
// comma-separated attribute ("<+>", "<blank>", ...) is reported as
// "Expected <offending token> but found <token after it>"; a typed token
// ("<dt, int>", ...) is reported by its attribute alone. The expected
// argument names the calling production and does not appear in the message.
func (p *Parser) recover(expected string) {
	tok := p.cur()
	var msg string
	if hasBareForm(tok.Kind) {
		msg = "Expected " + tok.String() + " but found " + p.peek().String()
	} else {
		msg = tok.Attr + " cannot be parsed"
	}
	_ = expected
	p.trace = append(p.trace, "Parsing Error!")
	p.parseErrors[p.line] = append(p.parseErrors[p.line], msg)
	p.advance()
}

// hasBareForm reports whether kind's bracket form carries no
// comma-separated attribute of its own (e.g. "<+>", "<blank>") as opposed to
// a typed one ("<dt, int>", "<id, 3>").
func hasBareForm(k token.Kind) bool {
	switch k {
	case token.ArithOp, token.Blank, token.Tab, token.Newline, token.Comment,
		token.InvalidComment, token.InvalidIdentifier, token.InvalidFloat,
		token.UnsupportedDigit, token.Unrecognized, token.EOF:
		return true
	default:
		return false
	}
}

func (p *Parser) incompatibility() {
	p.trace = append(p.trace, "Type Incompatibility Error!")
	p.semanticErrors[p.line] = append(p.semanticErrors[p.line], "Type Incompatibility")
}

func (p *Parser) redeclaration(name string, typ langspec.Type, kind string) {
	size := 1
	if kind == "Function" {
		size = 2
	}
	if p.symbols.Lookup(name, typ, p.scope) {
		p.trace = append(p.trace, "Re-declaration Error!")
		msg := fmt.Sprintf("%s %s already defined in scope %d", kind, name, p.scope)
		p.semanticErrors[p.line] = append(p.semanticErrors[p.line], msg)
		return
	}
	p.symbols.Enter(name, typ, p.scope, size)
}

func (p *Parser) undeclared(name string, typ langspec.Type, ok bool) {
	if !ok {
		p.trace = append(p.trace, "Undeclared Error!")
		p.semanticErrors[p.line] = append(p.semanticErrors[p.line], "Undeclared identifier "+name)
	}
}

// identName resolves an Identifier token's symbol-table index back to its
// spelling.
func (p *Parser) identName(tok token.Token) string {
	name, _ := p.names.Name(tok.Index())
	return name
}

// --- grammar --------------------------------------------------------------

// program is the start symbol: DataType? Identifier '(' ParamList ')' '{'
// Stmts '}'.
func (p *Parser) program() {
	tok := p.cur()

	if !firstProgram.has(tok) {
		if tok.IsEOF() {
			p.trace = append(p.trace, "EOF")
			return
		}
		p.recover("program")
		p.program()
		return
	}

	var returnType langspec.Type
	if tok.Kind == token.DataType {
		p.matchedKind(tok)
		returnType = langspec.Type(tok.Attr)
		p.advance()
		tok = p.cur()
	}

	if tok.Kind == token.Identifier {
		p.matchedKind(tok)
		p.currentFunction = p.identName(tok)
		p.redeclaration(p.currentFunction, returnType, "Function")
		p.advance()
		tok = p.cur()
	}

	if tok.Kind == token.Punctuator && tok.Attr == "(" {
		p.matchedValue("(")
		p.advance()
		tok = p.cur()
	}

	if firstParamList.has(tok) {
		p.paramList()
		tok = p.cur()
	}

	if tok.Kind == token.Punctuator && tok.Attr == ")" {
		p.matchedValue(")")
		p.advance()
		tok = p.cur()
	}

	if tok.Kind == token.Punctuator && tok.Attr == "{" {
		p.matchedValue("{")
		p.advance()
		p.enterScope(p.currentFunction)
		tok = p.cur()
	}

	if firstStmts.has(tok) {
		p.stmts()
		tok = p.cur()
	}

	if tok.Kind == token.Punctuator && tok.Attr == "}" {
		p.matchedValue("}")
		p.advance()
		p.exitScope(p.currentFunction)
		tok = p.cur()
	}

	if tok.IsEOF() {
		p.trace = append(p.trace, "EOF")
		return
	}

	p.recover("program")
	p.program()
}

// paramList is DataType Identifier PList | epsilon.
func (p *Parser) paramList() {
	tok := p.cur()
	if !firstParamList.has(tok) {
		if followParamList.has(tok) {
			return
		}
		p.recover("paramList")
		return
	}

	var paramType langspec.Type
	if tok.Kind == token.DataType {
		p.matchedKind(tok)
		paramType = langspec.Type(tok.Attr)
		p.advance()
		tok = p.cur()
	}
	if tok.Kind == token.Identifier {
		p.matchedKind(tok)
		name := p.identName(tok)
		p.redeclaration(name, paramType, "Identifier")
		p.advance()
		tok = p.cur()
	}
	if firstPList.has(tok) {
		p.pList()
	}
}

// pList is ',' DataType Identifier PList | epsilon.
func (p *Parser) pList() {
	tok := p.cur()
	if !firstPList.has(tok) {
		if followPList.has(tok) {
			return
		}
		p.recover("pList")
		return
	}

	p.matchedValue(",")
	p.advance()
	tok = p.cur()

	var paramType langspec.Type
	if tok.Kind == token.DataType {
		p.matchedKind(tok)
		paramType = langspec.Type(tok.Attr)
		p.advance()
		tok = p.cur()
	}
	if tok.Kind == token.Identifier {
		p.matchedKind(tok)
		name := p.identName(tok)
		p.redeclaration(name, paramType, "Identifier")
		p.advance()
		tok = p.cur()
	}
	if firstPList.has(tok) {
		p.pList()
	}
}

// stmts is StmtsPrime | epsilon, driven entirely by lookahead since the
// empty alternative is legal wherever FOLLOW(Stmts) appears.
func (p *Parser) stmts() {
	tok := p.cur()
	if firstStmtsPrime.has(tok) {
		p.stmtsPrime()
		return
	}
	if followStmts.has(tok) {
		return
	}
	p.recover("stmts")
	p.stmts()
}

// stmtsPrime is (DecStmt | AssignStmt | ForStmt | IfStmt | ReturnStmt)
// StmtsPrime | epsilon.
func (p *Parser) stmtsPrime() {
	tok := p.cur()

	switch {
	case firstDecStmt.has(tok):
		p.decStmt()
	case firstAssignStmt.has(tok):
		p.assignStmt()
	case firstForStmt.has(tok):
		p.forStmt()
	case firstIfStmt.has(tok):
		p.ifStmt()
	case firstReturnStmt.has(tok):
		p.lastReturnType = p.returnStmt()
	default:
		if followStmtsPrime.has(tok) {
			return
		}
		p.recover("stmtsPrime")
		p.stmtsPrime()
		return
	}

	tok = p.cur()
	if firstStmtsPrime.has(tok) {
		p.stmtsPrime()
	}
}

// decStmt is DataType Identifier OptionalAssign List ';'.
func (p *Parser) decStmt() {
	tok := p.cur()
	if !firstDecStmt.has(tok) {
		if followDecStmt.has(tok) {
			return
		}
		p.recover("decStmt")
		return
	}

	p.matchedKind(tok)
	declType := langspec.Type(tok.Attr)
	p.advance()
	tok = p.cur()

	if tok.Kind == token.Identifier {
		p.matchedKind(tok)
		name := p.identName(tok)
		p.redeclaration(name, declType, "Identifier")
		p.advance()
		tok = p.cur()
	}

	if tok.Kind == token.AssignOp {
		declExprType := p.optionalAssign()
		p.checkAssignable(declType, declExprType)
		tok = p.cur()
	}
	if firstList.has(tok) {
		p.list(declType)
		tok = p.cur()
	}
	if tok.Kind == token.Punctuator && tok.Attr == ";" {
		p.matchedValue(";")
		p.advance()
	}
}

// list is ',' DataType? Identifier OptionalAssign List | epsilon. declType
// carries the declaration's base type forward for comma-separated
// declarators that omit repeating the type name (e.g. "int a, b;").
//
// rd_parser.py's equivalent never consumes the Identifier in this
// production at all — every comma-separated name after the first in a
// declaration desyncs the parser. This port adds the missing Identifier
// match, since registering each declared name is the entire point of the
// production.
func (p *Parser) list(declType langspec.Type) {
	tok := p.cur()
	if !firstList.has(tok) {
		if followList.has(tok) {
			return
		}
		p.recover("list")
		return
	}

	p.matchedValue(",")
	p.advance()
	tok = p.cur()

	itemType := declType
	if tok.Kind == token.DataType {
		p.matchedKind(tok)
		itemType = langspec.Type(tok.Attr)
		p.advance()
		tok = p.cur()
	}
	if tok.Kind == token.Identifier {
		p.matchedKind(tok)
		name := p.identName(tok)
		p.redeclaration(name, itemType, "Identifier")
		p.advance()
		tok = p.cur()
	}
	if tok.Kind == token.AssignOp {
		exprType := p.optionalAssign()
		p.checkAssignable(itemType, exprType)
		tok = p.cur()
	}
	if firstList.has(tok) {
		p.list(declType)
	}
}

// optionalAssign is '=' Expr | epsilon. It returns the expression's static
// type (or Void if there was no assignment) so callers can check
// assignment compatibility.
func (p *Parser) optionalAssign() langspec.Type {
	tok := p.cur()
	if tok.Kind != token.AssignOp {
		return langspec.Void
	}
	p.matchedValue("=")
	p.advance()
	tok = p.cur()

	var exprType langspec.Type = langspec.Void
	if firstExpr.has(tok) {
		exprType = p.expr()
		tok = p.cur()
	}
	if tok.Kind == token.Punctuator && tok.Attr == ";" {
		p.matchedValue(";")
		p.advance()
	} else if !followOptAssign.has(tok) {
		p.recover("optionalAssign")
	}
	return exprType
}

func (p *Parser) checkAssignable(to, from langspec.Type) {
	if from == langspec.Void {
		return
	}
	if !langspec.AssignmentCompatible(to, from) {
		p.trace = append(p.trace, "ERROR: Type mismatch in assignment")
		p.semanticErrors[p.line] = append(p.semanticErrors[p.line], "ERROR: Type mismatch in assignment")
	}
}

// assignStmt is Identifier '=' Expr ';'.
func (p *Parser) assignStmt() {
	tok := p.cur()
	if !firstAssignStmt.has(tok) {
		if followAssignStmt.has(tok) {
			return
		}
		p.recover("assignStmt")
		return
	}

	p.matchedKind(tok)
	name := p.identName(tok)
	declaredType, ok := p.symbols.CheckReturnType(name, p.scope)
	p.undeclared(name, declaredType, ok)
	p.advance()
	tok = p.cur()

	if tok.Kind == token.AssignOp {
		p.matchedValue("=")
		p.advance()
		tok = p.cur()
	}

	var exprType langspec.Type
	if firstExpr.has(tok) {
		exprType = p.expr()
		p.checkAssignable(declaredType, exprType)
		tok = p.cur()
	}
	if tok.Kind == token.Punctuator && tok.Attr == ";" {
		p.matchedValue(";")
		p.advance()
	}
}

// expr is T EPrime.
func (p *Parser) expr() langspec.Type {
	tok := p.cur()
	if !firstExpr.has(tok) {
		if followExpr.has(tok) {
			return langspec.Void
		}
		p.recover("expr")
		return langspec.Void
	}
	leftType := p.t()
	return p.ePrime(leftType)
}

// ePrime is '+' T EPrime | epsilon.
func (p *Parser) ePrime(leftType langspec.Type) langspec.Type {
	tok := p.cur()
	if tok.Kind != token.ArithOp || tok.Attr != "+" {
		if followEPrime.has(tok) {
			return leftType
		}
		return leftType
	}
	p.matchedValue("+")
	p.advance()

	rightType := p.t()
	combined, ok := langspec.Combine(leftType, rightType, "+")
	if !ok {
		p.incompatibility()
	}
	return p.ePrime(combined)
}

// t is F TPrime.
func (p *Parser) t() langspec.Type {
	fType := p.f()
	return p.tPrime(fType)
}

// tPrime is '*' F TPrime | epsilon.
func (p *Parser) tPrime(leftType langspec.Type) langspec.Type {
	tok := p.cur()
	if tok.Kind != token.ArithOp || tok.Attr != "*" {
		return leftType
	}
	p.matchedValue("*")
	p.advance()

	rightType := p.f()
	combined, ok := langspec.Combine(leftType, rightType, "*")
	if !ok {
		p.incompatibility()
	}
	return p.tPrime(combined)
}

// f is '(' Expr ')' | Identifier | Number | Float | CharConstant |
// StringLiteral | 'true' | 'false'.
//
// rd_parser.py's __f only ever matches '(' Expr ')' or Identifier — a
// literal anywhere in an expression (the common case for any assignment
// like "int x = 3;") has no production to match it and would desync the
// parser. This port adds the literal alternatives, using the same
// type-lattice LiteralType lookup the declaration/assignment checks already
// depend on.
func (p *Parser) f() langspec.Type {
	tok := p.cur()

	switch {
	case tok.Kind == token.Punctuator && tok.Attr == "(":
		p.matchedValue("(")
		p.advance()
		innerType := p.expr()
		tok = p.cur()
		if tok.Kind == token.Punctuator && tok.Attr == ")" {
			p.matchedValue(")")
			p.advance()
		}
		return innerType

	case tok.Kind == token.Identifier:
		p.matchedKind(tok)
		name := p.identName(tok)
		declaredType, _ := p.symbols.CheckReturnType(name, p.scope)
		p.advance()
		return declaredType

	case tok.Kind == token.Number:
		p.matchedKind(tok)
		p.advance()
		return langspec.LiteralType(langspec.LiteralNumber)

	case tok.Kind == token.Float:
		p.matchedKind(tok)
		p.advance()
		return langspec.LiteralType(langspec.LiteralFloat)

	case tok.Kind == token.CharConstant:
		p.matchedKind(tok)
		p.advance()
		return langspec.LiteralType(langspec.LiteralChar)

	case tok.Kind == token.StringLiteral:
		p.matchedKind(tok)
		p.advance()
		return langspec.LiteralType(langspec.LiteralString)

	case tok.Kind == token.Keyword && (tok.Attr == "true" || tok.Attr == "false"):
		p.matchedKind(tok)
		p.advance()
		return langspec.LiteralType(langspec.LiteralBool)

	default:
		if followF.has(tok) {
			return langspec.Void
		}
		p.recover("f")
		return langspec.Void
	}
}

// forStmt is 'for' '(' Type Identifier '=' Expr ';' Expr RelOp Expr ';'
// Identifier '+' '+' ')' '{' Stmts '}'.
func (p *Parser) forStmt() {
	tok := p.cur()
	if !firstForStmt.has(tok) {
		if followForStmt.has(tok) {
			return
		}
		p.recover("forStmt")
		return
	}

	p.matchedValue("for")
	p.advance()
	tok = p.cur()

	if tok.Kind == token.Punctuator && tok.Attr == "(" {
		p.matchedValue("(")
		p.advance()
		tok = p.cur()
	}

	var loopVarType langspec.Type
	if firstType.has(tok) {
		loopVarType = p.typeNonTerminal()
		tok = p.cur()
	}
	if tok.Kind == token.Identifier {
		p.matchedKind(tok)
		name := p.identName(tok)
		p.redeclaration(name, loopVarType, "Identifier")
		p.advance()
		tok = p.cur()
	}
	if tok.Kind == token.AssignOp {
		p.matchedValue("=")
		p.advance()
		tok = p.cur()
	}
	if firstExpr.has(tok) {
		initType := p.expr()
		p.checkAssignable(loopVarType, initType)
		tok = p.cur()
	}
	if tok.Kind == token.Punctuator && tok.Attr == ";" {
		p.matchedValue(";")
		p.advance()
		tok = p.cur()
	}
	if firstExpr.has(tok) {
		p.expr()
		tok = p.cur()
	}
	if tok.Kind == token.RelOp {
		p.matchedKind(tok)
		p.advance()
		tok = p.cur()
	}
	if firstExpr.has(tok) {
		p.expr()
		tok = p.cur()
	}
	if tok.Kind == token.Punctuator && tok.Attr == ";" {
		p.matchedValue(";")
		p.advance()
		tok = p.cur()
	}
	if tok.Kind == token.Identifier {
		p.matchedKind(tok)
		p.advance()
		tok = p.cur()
	}
	if tok.Kind == token.ArithOp && tok.Attr == "+" && p.peek().Kind == token.ArithOp && p.peek().Attr == "+" {
		p.trace = append(p.trace, "matched <++>")
		p.advance()
		p.advance()
		tok = p.cur()
	}
	if tok.Kind == token.Punctuator && tok.Attr == ")" {
		p.matchedValue(")")
		p.advance()
		tok = p.cur()
	}
	if tok.Kind == token.Punctuator && tok.Attr == "{" {
		p.matchedValue("{")
		p.advance()
		p.enterScope("")
		tok = p.cur()
	}
	if firstStmts.has(tok) {
		p.stmts()
		tok = p.cur()
	}
	if tok.Kind == token.Punctuator && tok.Attr == "}" {
		p.matchedValue("}")
		p.advance()
		p.exitScope("")
	}
}

// typeNonTerminal is DataType | epsilon (named to avoid colliding with the
// langspec.Type Go type).
func (p *Parser) typeNonTerminal() langspec.Type {
	tok := p.cur()
	if tok.Kind != token.DataType {
		return ""
	}
	p.matchedKind(tok)
	typ := langspec.Type(tok.Attr)
	p.advance()
	return typ
}

// ifStmt is 'if' '(' Expr RelOp Expr ')' '{' Stmts '}' OptionalElse.
func (p *Parser) ifStmt() {
	tok := p.cur()
	if !firstIfStmt.has(tok) {
		if followIfStmt.has(tok) {
			return
		}
		p.recover("ifStmt")
		return
	}

	p.matchedValue("if")
	p.advance()
	tok = p.cur()

	if tok.Kind == token.Punctuator && tok.Attr == "(" {
		p.matchedValue("(")
		p.advance()
		tok = p.cur()
	}
	if firstExpr.has(tok) {
		p.expr()
		tok = p.cur()
	}
	if tok.Kind == token.RelOp {
		p.matchedKind(tok)
		p.advance()
		tok = p.cur()
	}
	if firstExpr.has(tok) {
		p.expr()
		tok = p.cur()
	}
	if tok.Kind == token.Punctuator && tok.Attr == ")" {
		p.matchedValue(")")
		p.advance()
		tok = p.cur()
	}
	if tok.Kind == token.Punctuator && tok.Attr == "{" {
		p.matchedValue("{")
		p.advance()
		p.enterScope("")
		tok = p.cur()
	}
	if firstStmts.has(tok) {
		p.stmts()
		tok = p.cur()
	}
	if tok.Kind == token.Punctuator && tok.Attr == "}" {
		p.matchedValue("}")
		p.advance()
		p.exitScope("")
		tok = p.cur()
	}
	if tok.Kind == token.Keyword && tok.Attr == "else" {
		p.optionalElse()
	}
}

// optionalElse is 'else' '{' Stmts '}' | epsilon.
func (p *Parser) optionalElse() {
	tok := p.cur()
	if tok.Kind != token.Keyword || tok.Attr != "else" {
		return
	}

	p.matchedValue("else")
	p.advance()
	p.enterScope("")
	tok = p.cur()

	if tok.Kind == token.Punctuator && tok.Attr == "{" {
		p.matchedValue("{")
		p.advance()
		tok = p.cur()
	}
	if firstStmts.has(tok) {
		p.stmts()
		tok = p.cur()
	}
	if tok.Kind == token.Punctuator && tok.Attr == "}" {
		p.matchedValue("}")
		p.advance()
		p.exitScope("")
	}
}

// returnStmt is 'return' Expr ';'.
func (p *Parser) returnStmt() langspec.Type {
	tok := p.cur()
	if !firstReturnStmt.has(tok) {
		if followReturnStmt.has(tok) {
			return langspec.Void
		}
		p.recover("returnStmt")
		return langspec.Void
	}

	p.matchedValue("return")
	p.advance()
	tok = p.cur()

	var exprType langspec.Type = langspec.Void
	if firstExpr.has(tok) {
		exprType = p.expr()
		tok = p.cur()
	}
	if tok.Kind == token.Punctuator && tok.Attr == ";" {
		p.matchedValue(";")
		p.advance()
	}
	return exprType
}
