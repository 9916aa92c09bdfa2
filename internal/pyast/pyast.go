// Package pyast defines the closed set of syntax-tree nodes the structural
// rules consume. Only the constructs the checker inspects are modeled;
// everything else is an Other statement that may still carry a body.
package pyast

// Module is the root of a parsed source tree.
type Module struct {
	Body []Stmt
}

// Stmt is a statement node.
type Stmt interface {
	stmtNode()
}

// FuncDef is a routine definition.
type FuncDef struct {
	Line        int
	Name        string
	Params      []Param
	PosDefaults []Expr // defaults of positional parameters, in order
	KwDefaults  []Expr // defaults of keyword-only parameters, in order
	Body        []Stmt
}

// ClassDef is a type definition.
type ClassDef struct {
	Line int
	Name string
	Body []Stmt
}

// Assign is a simple assignment. Targets holds one entry per target group
// of a chained assignment; groups that are neither a plain name nor a
// tuple of names are omitted.
type Assign struct {
	Line    int
	Targets []Target
}

// AnnAssign is an annotated assignment with a single name target.
type AnnAssign struct {
	Line   int
	Target *NameTarget
}

// Other is any statement the checker does not inspect. It keeps its body
// so that nested definitions inside loops, conditionals and similar blocks
// stay reachable.
type Other struct {
	Line int
	Body []Stmt
}

func (*FuncDef) stmtNode()   {}
func (*ClassDef) stmtNode()  {}
func (*Assign) stmtNode()    {}
func (*AnnAssign) stmtNode() {}
func (*Other) stmtNode()     {}

// Param is a formal parameter of a routine.
type Param struct {
	Line int
	Name string
}

// Target is an assignment target.
type Target interface {
	targetNode()
}

// NameTarget is a single-name assignment target.
type NameTarget struct {
	Line int
	Name string
}

// TupleTarget is a tuple-unpacking target. Elts holds the direct elements
// that are plain names; starred, attribute and subscript elements are not
// represented.
type TupleTarget struct {
	Line int
	Elts []*NameTarget
}

func (*NameTarget) targetNode()  {}
func (*TupleTarget) targetNode() {}

// Expr is a default-argument expression. The checker only distinguishes
// the mutable literal constructions from everything else.
type Expr interface {
	exprNode()
}

// ListLit is a literal list construction.
type ListLit struct {
	Line int
}

// DictLit is a literal mapping construction.
type DictLit struct {
	Line int
}

// SetLit is a literal set construction.
type SetLit struct {
	Line int
}

// OtherExpr is any other default expression.
type OtherExpr struct {
	Line int
}

func (*ListLit) exprNode()   {}
func (*DictLit) exprNode()   {}
func (*SetLit) exprNode()    {}
func (*OtherExpr) exprNode() {}

// WalkFuncDefs visits every routine definition in document order,
// descending into class bodies, other block bodies, and the bodies of the
// routines themselves, so nested routines are visited too.
func WalkFuncDefs(m *Module, visit func(*FuncDef)) {
	walkStmts(m.Body, visit)
}

func walkStmts(body []Stmt, visit func(*FuncDef)) {
	for _, s := range body {
		switch s := s.(type) {
		case *FuncDef:
			visit(s)
			walkStmts(s.Body, visit)
		case *ClassDef:
			walkStmts(s.Body, visit)
		case *Other:
			walkStmts(s.Body, visit)
		}
	}
}
