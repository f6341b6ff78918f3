package parser

import "github.com/tuplelang/tuplec/internal/token"

// symbol names one grammar terminal: a token.Kind, optionally narrowed to a
// single Attr spelling. An empty Attr matches any token of that Kind (used
// for typed categories like DataType or Identifier); a non-empty Attr
// narrows to one fixed spelling (used for keywords, punctuators, and
// operators, which all share a handful of Kinds).
type symbol struct {
	kind token.Kind
	attr string
}

func anyOf(kind token.Kind) symbol           { return symbol{kind: kind} }
func keyword(attr string) symbol             { return symbol{kind: token.Keyword, attr: attr} }
func punct(attr string) symbol               { return symbol{kind: token.Punctuator, attr: attr} }
func arith(attr string) symbol               { return symbol{kind: token.ArithOp, attr: attr} }
func assign() symbol                         { return symbol{kind: token.AssignOp, attr: "="} }

// set is an unordered FIRST or FOLLOW set.
type set []symbol

func (s set) has(t token.Token) bool {
	for _, sym := range s {
		if t.Kind == sym.kind && (sym.attr == "" || t.Attr == sym.attr) {
			return true
		}
	}
	return false
}

// The FIRST and FOLLOW sets below are derived directly from the grammar
// TUPLE's recursive-descent parser walks:
//
//	Program     -> DataType? Identifier '(' ParamList ')' '{' Stmts '}'
//	ParamList   -> DataType Identifier PList | epsilon
//	PList       -> ',' DataType Identifier PList | epsilon
//	Stmts       -> StmtsPrime | epsilon
//	StmtsPrime  -> (DecStmt | AssignStmt | ForStmt | IfStmt | ReturnStmt) StmtsPrime | epsilon
//	DecStmt     -> DataType Identifier OptionalAssign List ';'
//	List        -> ',' DataType? Identifier OptionalAssign List | epsilon
//	OptionalAssign -> '=' Expr | epsilon
//	AssignStmt  -> Identifier '=' Expr ';'
//	Expr        -> T EPrime
//	EPrime      -> '+' T EPrime | epsilon
//	T           -> F TPrime
//	TPrime      -> '*' F TPrime | epsilon
//	F           -> '(' Expr ')' | Identifier | Number | Float | CharConstant
//	             | StringLiteral | 'true' | 'false'
//	ForStmt     -> 'for' '(' Type Identifier '=' Expr ';' Expr RelOp Expr ';'
//	               Identifier '+' '+' ')' '{' Stmts '}'
//	Type        -> DataType | epsilon
//	IfStmt      -> 'if' '(' Expr RelOp Expr ')' '{' Stmts '}' OptionalElse
//	OptionalElse -> 'else' '{' Stmts '}' | epsilon
//	ReturnStmt  -> 'return' Expr ';'
var (
	firstF = set{
		punct("("), anyOf(token.Identifier), anyOf(token.Number), anyOf(token.Float),
		anyOf(token.CharConstant), anyOf(token.StringLiteral), keyword("true"), keyword("false"),
	}
	firstT    = firstF
	firstExpr = firstF

	firstDecStmt    = set{anyOf(token.DataType)}
	firstAssignStmt = set{anyOf(token.Identifier)}
	firstForStmt    = set{keyword("for")}
	firstIfStmt     = set{keyword("if")}
	firstReturnStmt = set{keyword("return")}

	firstStmtsPrime = append(append(append(append(append(set{},
		firstDecStmt...), firstAssignStmt...), firstForStmt...), firstIfStmt...), firstReturnStmt...)
	firstStmts = firstStmtsPrime

	firstProgram   = set{anyOf(token.DataType), anyOf(token.Identifier)}
	firstParamList = set{anyOf(token.DataType)}
	firstPList     = set{punct(",")}
	firstList      = set{punct(",")}
	firstType      = set{anyOf(token.DataType)}

	followProgram    = set{}
	followParamList  = set{punct(")")}
	followPList      = set{punct(")")}
	followStmts      = set{punct("}")}
	followStmtsPrime = set{punct("}")}
	followDecStmt    = append(append(set{}, firstStmtsPrime...), punct("}"))
	followAssignStmt = followDecStmt
	followForStmt    = followDecStmt
	followIfStmt     = followDecStmt
	followReturnStmt = followDecStmt
	followList       = set{punct(";")}
	followOptAssign  = set{punct(","), punct(";")}
	followExpr       = set{punct(")"), punct(";"), anyOf(token.RelOp)}
	followEPrime     = followExpr
	followT          = append(set{arith("+")}, followExpr...)
	followTPrime     = followT
	followF          = append(set{arith("*")}, followT...)
	followType       = set{anyOf(token.Identifier)}
	followOptElse    = followIfStmt
)
