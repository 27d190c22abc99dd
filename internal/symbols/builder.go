package symbols

import (
	"fmt"

	"github.com/cwbudde/emberc/internal/ast"
	"github.com/cwbudde/emberc/internal/types"
)

// FunctionSymbol pairs a function declaration with its eagerly-computed
// signature; the body is lowered lazily, on first use, by the caller
// (the Expression/Scope engines), per §4.2.
type FunctionSymbol struct {
	Decl *ast.FuncDecl
	Type *types.FunctionType
}

// GlobalSymbol is a materialized global variable. External globals have a
// nil Value (declaration only).
type GlobalSymbol struct {
	Decl     *ast.VarDecl
	Type     types.Type
	Mutable  bool
	External bool
}

// Builder owns every top-level symbol materialized from one translation
// unit. It is insert-only: once a symbol is registered its Binding/pointer
// is stable for the Builder's lifetime (§5).
type Builder struct {
	Scope     *SymbolTable
	Types     map[string]*types.NamedType
	Functions map[string][]*FunctionSymbol
	Globals   map[string]*GlobalSymbol

	primitives map[string]*types.PrimitiveType
	errors     []error
}

// NewBuilder creates a Builder pre-seeded with the primitive type names.
func NewBuilder() *Builder {
	b := &Builder{
		Scope:     NewSymbolTable(),
		Types:     make(map[string]*types.NamedType),
		Functions: make(map[string][]*FunctionSymbol),
		Globals:   make(map[string]*GlobalSymbol),
		primitives: map[string]*types.PrimitiveType{
			"any": types.ANY, "null": types.NULL, "nothing": types.NOTHING,
			"bool": types.BOOL, "byte": types.BYTE, "short": types.SHORT,
			"int": types.INT, "long": types.LONG, "ubyte": types.UBYTE,
			"ushort": types.USHORT, "uint": types.UINT, "ulong": types.ULONG,
			"float": types.FLOAT, "double": types.DOUBLE,
		},
	}
	return b
}

// Errors returns every error accumulated while building symbols.
func (b *Builder) Errors() []error { return b.errors }

func (b *Builder) addError(format string, args ...any) {
	b.errors = append(b.errors, fmt.Errorf(format, args...))
}

// Build walks prog and registers every top-level type, global and function.
// Types are registered in two passes (struct shell, then fields) so
// self-referential aggregates terminate (§4.2).
func (b *Builder) Build(prog *ast.Program) error {
	for _, decl := range prog.Declarations {
		if td, ok := decl.(*ast.TypeDecl); ok {
			b.registerTypeShell(td)
		}
	}
	for _, decl := range prog.Declarations {
		if td, ok := decl.(*ast.TypeDecl); ok {
			b.fillTypeFields(td)
		}
	}
	for _, decl := range prog.Declarations {
		switch d := decl.(type) {
		case *ast.VarDecl:
			b.registerGlobal(d)
		case *ast.FuncDecl:
			b.registerFunction(d)
		}
	}

	if len(b.errors) > 0 {
		return fmt.Errorf("symbol building failed with %d error(s)", len(b.errors))
	}
	return nil
}

func (b *Builder) registerTypeShell(td *ast.TypeDecl) {
	if _, exists := b.Types[td.Name]; exists {
		b.addError("type %q declared more than once", td.Name)
		return
	}
	named := &types.NamedType{Decl: td, Name: td.Name}
	b.Types[td.Name] = named
	b.Scope.Define(&Binding{Name: td.Name, Kind: BindType, Type: named, Node: td})
}

func (b *Builder) fillTypeFields(td *ast.TypeDecl) {
	named, ok := b.Types[td.Name]
	if !ok {
		return
	}
	fields := make([]types.Field, 0, len(td.Fields))
	for _, f := range td.Fields {
		ft, err := b.ResolveTypeExpr(f.Type)
		if err != nil {
			b.addError("field %q of type %q: %v", f.Name, td.Name, err)
			continue
		}
		fields = append(fields, types.Field{Name: f.Name, Type: ft, Mutable: f.Mutable})
	}
	named.Fields = fields
}

func (b *Builder) registerGlobal(vd *ast.VarDecl) {
	if vd.Type == nil {
		b.addError("global variable %q requires an explicit type", vd.Name)
		return
	}
	t, err := b.ResolveTypeExpr(vd.Type)
	if err != nil {
		b.addError("global variable %q: %v", vd.Name, err)
		return
	}
	g := &GlobalSymbol{Decl: vd, Type: t, Mutable: vd.Mutable, External: vd.External}
	b.Globals[vd.Name] = g
	b.Scope.Define(&Binding{Name: vd.Name, Kind: BindVar, Type: t, Node: vd, Mutable: vd.Mutable})
}

func (b *Builder) registerFunction(fd *ast.FuncDecl) {
	params := make([]types.Parameter, 0, len(fd.Parameters))
	for _, p := range fd.Parameters {
		pt, err := b.ResolveTypeExpr(p.Type)
		if err != nil {
			b.addError("parameter %q of function %q: %v", p.Name, fd.Name, err)
			continue
		}
		params = append(params, types.Parameter{Name: p.Name, Type: pt})
	}

	var ret types.Type
	if fd.Return != nil {
		rt, err := b.ResolveTypeExpr(fd.Return)
		if err != nil {
			b.addError("return type of function %q: %v", fd.Name, err)
		} else {
			ret = rt
		}
	}

	ft := &types.FunctionType{ReturnType: ret, Parameters: params, Kind_: types.FunctionRegular}
	sym := &FunctionSymbol{Decl: fd, Type: ft}
	b.Functions[fd.Name] = append(b.Functions[fd.Name], sym)
	b.Scope.Define(&Binding{Name: fd.Name, Kind: BindFunction, Type: ft, Node: fd})
}

// ResolveTypeExpr turns parser syntax into a resolved types.Type.
func (b *Builder) ResolveTypeExpr(te ast.TypeExpression) (types.Type, error) {
	switch t := te.(type) {
	case nil:
		return nil, fmt.Errorf("missing type")
	case *ast.NameType:
		if p, ok := b.primitives[t.Name]; ok {
			return p, nil
		}
		if named, ok := b.Types[t.Name]; ok {
			return named, nil
		}
		if binding, ok := b.Scope.Find(t.Name); ok && binding.Kind == BindType {
			return binding.Type, nil
		}
		return nil, fmt.Errorf("undeclared type %q", t.Name)
	case *ast.ReferenceType:
		inner, err := b.ResolveTypeExpr(t.Inner)
		if err != nil {
			return nil, err
		}
		return &types.ReferenceType{Inner: inner, Mutable: t.Mutable, Kind_: types.RefKind(t.Kind)}, nil
	case *ast.OptionalType:
		inner, err := b.ResolveTypeExpr(t.Inner)
		if err != nil {
			return nil, err
		}
		return &types.OptionalType{Inner: inner, Bubbles: t.Bubbles}, nil
	case *ast.ArrayType:
		inner, err := b.ResolveTypeExpr(t.Inner)
		if err != nil {
			return nil, err
		}
		at := &types.ArrayType{Inner: inner, Kind_: types.ArrayKind(t.Kind), Size: t.Size}
		if t.Kind == ast.UnboundedSizedArray {
			at.SizeExpr = t.SizeExpr // identity anchor, never evaluated here
		}
		return at, nil
	case *ast.FunctionPointerType:
		params := make([]types.Parameter, 0, len(t.Parameters))
		for _, p := range t.Parameters {
			pt, err := b.ResolveTypeExpr(p.Type)
			if err != nil {
				return nil, err
			}
			params = append(params, types.Parameter{Name: p.Name, Type: pt})
		}
		var ret types.Type
		if t.Return != nil {
			rt, err := b.ResolveTypeExpr(t.Return)
			if err != nil {
				return nil, err
			}
			ret = rt
		}
		return &types.FunctionType{ReturnType: ret, Parameters: params, Kind_: types.FuncKind(t.Kind)}, nil
	default:
		return nil, fmt.Errorf("unhandled type expression %T", te)
	}
}
