package exprtree

// Op is a unary, binary or assignment operator.
type Op uint8

const (
	OpInvalid Op = iota
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpLess
	OpLessEqual
	OpGreater
	OpGreaterEqual
	OpEqual
	OpNotEqual
	OpAnd
	OpOr
	OpNot
	// OpAssign is plain `=` in a self assignment.
	OpAssign
)

var opText = [...]string{
	OpInvalid:      "?",
	OpAdd:          "+",
	OpSub:          "-",
	OpMul:          "*",
	OpDiv:          "/",
	OpLess:         "<",
	OpLessEqual:    "<=",
	OpGreater:      ">",
	OpGreaterEqual: ">=",
	OpEqual:        "==",
	OpNotEqual:     "!=",
	OpAnd:          "&&",
	OpOr:           "||",
	OpNot:          "!",
	OpAssign:       "=",
}

func (op Op) String() string {
	if int(op) < len(opText) {
		return opText[op]
	}
	return "?"
}

// OpClass groups binary operators by the operand type they expect.
type OpClass uint8

const (
	ClassArithmetic OpClass = iota
	ClassComparison
	ClassLogical
)

func (op Op) Class() OpClass {
	switch op {
	case OpLess, OpLessEqual, OpGreater, OpGreaterEqual, OpEqual, OpNotEqual:
		return ClassComparison
	case OpAnd, OpOr:
		return ClassLogical
	}
	return ClassArithmetic
}
