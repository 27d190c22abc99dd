package ast

// Decl is the tagged sum of top-level declaration nodes the Global Symbol
// Builder walks.
type Decl interface {
	Node
	declNode()
}

// FieldDecl is one ordered field of a TypeDecl aggregate.
type FieldDecl struct {
	Pos_    Pos
	Name    string
	Type    TypeExpression
	Mutable bool
}

// TypeDecl declares a Named aggregate: `type Point { x int; var y int }`.
type TypeDecl struct {
	Pos_   Pos
	Name   string
	Fields []FieldDecl
}

func (d *TypeDecl) Position() Pos { return d.Pos_ }
func (*TypeDecl) declNode()       {}

// VarDecl declares a top-level (global) variable. External marks a
// declaration-only extern global with no initializer.
type VarDecl struct {
	Pos_     Pos
	Name     string
	Type     TypeExpression
	Value    Expr // nil for externals
	Mutable  bool
	External bool
}

func (d *VarDecl) Position() Pos { return d.Pos_ }
func (*VarDecl) declNode()       {}

// Param is one ordered (name, type) function parameter.
type Param struct {
	Name string
	Type TypeExpression
}

// FuncDecl declares a function or procedure. Body is nil for an external
// (declaration-only) function; the `=> expr` shorthand is lowered by the
// parser into an implicit single-statement Body.
type FuncDecl struct {
	Pos_       Pos
	Name       string
	Parameters []Param
	Return     TypeExpression // nil for `nothing`
	Body       *BlockStmt
	External   bool
}

func (d *FuncDecl) Position() Pos { return d.Pos_ }
func (*FuncDecl) declNode()       {}
