package exprtree

import (
	"github.com/Be-ing/sixtyfps/internal/source"
	"github.com/Be-ing/sixtyfps/internal/types"
)

// Kind enumerates resolved expression kinds.
type Kind uint8

const (
	// Invalid is the poison value produced after an error was reported.
	Invalid Kind = iota
	NumberLiteral
	StringLiteral
	BoolLiteral
	// Cast converts From to the expression's Type. Color literals are a
	// cast of an integer literal to color.
	Cast
	Array
	Struct
	ElementReference
	PropertyReference
	CallbackReference
	FunctionReference
	FunctionParameterReference
	RepeaterIndexReference
	RepeaterModelReference
	StructFieldAccess
	// MemberFunction is a bound `base.member` awaiting its call; the base
	// becomes the first argument.
	MemberFunction
	BuiltinFunctionReference
	BuiltinMacroReference
	EnumerationValue
	BinaryOp
	UnaryOp
	SelfAssignment
	FunctionCall
	ArrayIndex
	Condition
	CodeBlock
	ReturnStatement
	LinearGradient
	ImageReference
)

var kindNames = [...]string{
	Invalid:                    "Invalid",
	NumberLiteral:              "NumberLiteral",
	StringLiteral:              "StringLiteral",
	BoolLiteral:                "BoolLiteral",
	Cast:                       "Cast",
	Array:                      "Array",
	Struct:                     "Struct",
	ElementReference:           "ElementReference",
	PropertyReference:          "PropertyReference",
	CallbackReference:          "CallbackReference",
	FunctionReference:          "FunctionReference",
	FunctionParameterReference: "FunctionParameterReference",
	RepeaterIndexReference:     "RepeaterIndexReference",
	RepeaterModelReference:     "RepeaterModelReference",
	StructFieldAccess:          "StructFieldAccess",
	MemberFunction:             "MemberFunction",
	BuiltinFunctionReference:   "BuiltinFunctionReference",
	BuiltinMacroReference:      "BuiltinMacroReference",
	EnumerationValue:           "EnumerationValue",
	BinaryOp:                   "BinaryOp",
	UnaryOp:                    "UnaryOp",
	SelfAssignment:             "SelfAssignment",
	FunctionCall:               "FunctionCall",
	ArrayIndex:                 "ArrayIndex",
	Condition:                  "Condition",
	CodeBlock:                  "CodeBlock",
	ReturnStatement:            "ReturnStatement",
	LinearGradient:             "LinearGradient",
	ImageReference:             "ImageReference",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Expr is a typed expression node. Sub-expressions are owned by their parent.
type Expr struct {
	Kind Kind
	Type types.TypeID
	Span source.Span
	Data Data
}

// Data is the kind-specific payload.
type Data interface {
	exprData()
}

type NumberLiteralData struct {
	Value float64
	Unit  types.Unit
}

func (NumberLiteralData) exprData() {}

type StringLiteralData struct {
	Value string
}

func (StringLiteralData) exprData() {}

type BoolLiteralData struct {
	Value bool
}

func (BoolLiteralData) exprData() {}

type CastData struct {
	From *Expr
}

func (CastData) exprData() {}

type ArrayData struct {
	ElemType types.TypeID
	Values   []*Expr
}

func (ArrayData) exprData() {}

type StructField struct {
	Name  string
	Value *Expr
}

// StructData keeps fields sorted by name.
type StructData struct {
	Fields []StructField
}

func (StructData) exprData() {}

// Field returns the value of the named field.
func (d StructData) Field(name string) (*Expr, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return nil, false
}

type ElementReferenceData struct {
	Element ElementID
}

func (ElementReferenceData) exprData() {}

// ReferenceData backs property, callback and function references.
type ReferenceData struct {
	Ref NamedReference
}

func (ReferenceData) exprData() {}

type ParameterReferenceData struct {
	Index int
	Name  string
}

func (ParameterReferenceData) exprData() {}

// RepeaterData backs repeater index and model-data references.
type RepeaterData struct {
	Element ElementID
}

func (RepeaterData) exprData() {}

type StructFieldAccessData struct {
	Base *Expr
	Name string
}

func (StructFieldAccessData) exprData() {}

type MemberFunctionData struct {
	Base   *Expr
	Member *Expr
}

func (MemberFunctionData) exprData() {}

type BuiltinFunctionData struct {
	Func BuiltinFunction
}

func (BuiltinFunctionData) exprData() {}

type BuiltinMacroData struct {
	Macro BuiltinMacro
}

func (BuiltinMacroData) exprData() {}

type EnumerationValueData struct {
	Index int
	Value string
}

func (EnumerationValueData) exprData() {}

type BinaryOpData struct {
	Op  Op
	LHS *Expr
	RHS *Expr
}

func (BinaryOpData) exprData() {}

type UnaryOpData struct {
	Op  Op
	Sub *Expr
}

func (UnaryOpData) exprData() {}

type SelfAssignmentData struct {
	Op  Op
	LHS *Expr
	RHS *Expr
}

func (SelfAssignmentData) exprData() {}

type FunctionCallData struct {
	Function *Expr
	Args     []*Expr
}

func (FunctionCallData) exprData() {}

type ArrayIndexData struct {
	Array *Expr
	Index *Expr
}

func (ArrayIndexData) exprData() {}

type ConditionData struct {
	Cond  *Expr
	True  *Expr
	False *Expr
}

func (ConditionData) exprData() {}

type CodeBlockData struct {
	Statements []*Expr
}

func (CodeBlockData) exprData() {}

// ReturnStatementData holds the returned value; nil for a bare `return;`.
type ReturnStatementData struct {
	Value *Expr
}

func (ReturnStatementData) exprData() {}

type GradientStop struct {
	Color    *Expr
	Position *Expr
}

type LinearGradientData struct {
	Angle *Expr
	Stops []GradientStop
}

func (LinearGradientData) exprData() {}

type ImageKind uint8

const (
	ImageNone ImageKind = iota
	ImageAbsolutePath
)

type ImageReferenceData struct {
	Kind ImageKind
	Path string
}

func (ImageReferenceData) exprData() {}
