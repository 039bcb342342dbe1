package types

import "fmt"

// TypeID uniquely identifies a type inside the interner.
// The zero value is the Invalid type.
type TypeID uint32

// Invalid marks the poison type. It unifies as "no opinion" and converts
// silently to anything.
const Invalid TypeID = 0

// Kind enumerates all supported kinds of types.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindVoid
	// KindInferredProperty is the declared type of `property <=> other;` before aliasing.
	KindInferredProperty
	KindInferredCallback
	KindBool
	KindInt32
	KindFloat32
	KindString
	KindColor
	KindBrush
	KindImage
	KindDuration
	KindPhysicalLength
	KindLogicalLength
	KindAngle
	KindPercent
	KindUnitProduct
	KindArray
	KindStruct
	KindEnumeration
	KindCallback
	KindFunction
	KindElementReference
	// KindModel is the target of a repeater model: an int, a float or an array.
	KindModel
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindVoid:
		return "void"
	case KindInferredProperty:
		return "inferred-property"
	case KindInferredCallback:
		return "inferred-callback"
	case KindBool:
		return "bool"
	case KindInt32:
		return "int"
	case KindFloat32:
		return "float"
	case KindString:
		return "string"
	case KindColor:
		return "color"
	case KindBrush:
		return "brush"
	case KindImage:
		return "image"
	case KindDuration:
		return "duration"
	case KindPhysicalLength:
		return "physical-length"
	case KindLogicalLength:
		return "length"
	case KindAngle:
		return "angle"
	case KindPercent:
		return "percent"
	case KindUnitProduct:
		return "unit-product"
	case KindArray:
		return "array"
	case KindStruct:
		return "struct"
	case KindEnumeration:
		return "enum"
	case KindCallback:
		return "callback"
	case KindFunction:
		return "function"
	case KindElementReference:
		return "element-reference"
	case KindModel:
		return "model"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Type is a compact descriptor. Composite kinds keep their details in a
// side table addressed by Payload.
type Type struct {
	Kind    Kind
	Elem    TypeID // for arrays
	Payload uint32 // slot in structs / fns / enums / units
}

// Builtins stores TypeIDs for the primitive types.
type Builtins struct {
	Invalid          TypeID
	Void             TypeID
	InferredProperty TypeID
	InferredCallback TypeID
	Bool             TypeID
	Int32            TypeID
	Float32          TypeID
	String           TypeID
	Color            TypeID
	Brush            TypeID
	Image            TypeID
	Duration         TypeID
	PhysicalLength   TypeID
	LogicalLength    TypeID
	Angle            TypeID
	Percent          TypeID
	ElementReference TypeID
	Model            TypeID
}
