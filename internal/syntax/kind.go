package syntax

// NodeKind tags an interior node of the syntax tree.
type NodeKind uint8

const (
	NodeInvalid NodeKind = iota
	// Expression wraps exactly one expression form (or a literal token).
	Expression
	// QualifiedName is a dotted identifier path: a.b.c
	QualifiedName
	// BindingExpression is the right side of `prop: ...;` (Expression or CodeBlock).
	BindingExpression
	CodeBlock
	ReturnStatement
	// CallbackConnection is `cb(a, b) => { ... }`; DeclaredIdentifier children name the arguments.
	CallbackConnection
	DeclaredIdentifier
	// TwoWayBinding is `prop <=> other.prop;`
	TwoWayBinding
	AtImageUrl
	AtLinearGradient
	FunctionCallExpression
	MemberAccess
	IndexExpression
	SelfAssignment
	BinaryExpression
	UnaryOpExpression
	ConditionalExpression
	ObjectLiteral
	ObjectMember
	Array
	StringTemplate
)

var nodeKindNames = [...]string{
	NodeInvalid:            "Invalid",
	Expression:             "Expression",
	QualifiedName:          "QualifiedName",
	BindingExpression:      "BindingExpression",
	CodeBlock:              "CodeBlock",
	ReturnStatement:        "ReturnStatement",
	CallbackConnection:     "CallbackConnection",
	DeclaredIdentifier:     "DeclaredIdentifier",
	TwoWayBinding:          "TwoWayBinding",
	AtImageUrl:             "AtImageUrl",
	AtLinearGradient:       "AtLinearGradient",
	FunctionCallExpression: "FunctionCallExpression",
	MemberAccess:           "MemberAccess",
	IndexExpression:        "IndexExpression",
	SelfAssignment:         "SelfAssignment",
	BinaryExpression:       "BinaryExpression",
	UnaryOpExpression:      "UnaryOpExpression",
	ConditionalExpression:  "ConditionalExpression",
	ObjectLiteral:          "ObjectLiteral",
	ObjectMember:           "ObjectMember",
	Array:                  "Array",
	StringTemplate:         "StringTemplate",
}

func (k NodeKind) String() string {
	if int(k) < len(nodeKindNames) {
		return nodeKindNames[k]
	}
	return "NodeKind(?)"
}

// TokenKind tags a leaf token.
type TokenKind uint8

const (
	TokenInvalid TokenKind = iota
	Identifier
	StringLiteral
	NumberLiteral
	ColorLiteral
	Comma
	Dot
	Colon
	Question
	Plus
	Minus
	Star
	Div
	Bang
	LessEqual
	GreaterEqual
	LAngle
	RAngle
	EqualEqual
	NotEqual
	AndAnd
	OrOr
	Equal
	PlusEqual
	MinusEqual
	StarEqual
	DivEqual
	// TwoWayArrow is `<=>`.
	TwoWayArrow
	FatArrow
)

var tokenKindNames = [...]string{
	TokenInvalid:  "Invalid",
	Identifier:    "Identifier",
	StringLiteral: "StringLiteral",
	NumberLiteral: "NumberLiteral",
	ColorLiteral:  "ColorLiteral",
	Comma:         ",",
	Dot:           ".",
	Colon:         ":",
	Question:      "?",
	Plus:          "+",
	Minus:         "-",
	Star:          "*",
	Div:           "/",
	Bang:          "!",
	LessEqual:     "<=",
	GreaterEqual:  ">=",
	LAngle:        "<",
	RAngle:        ">",
	EqualEqual:    "==",
	NotEqual:      "!=",
	AndAnd:        "&&",
	OrOr:          "||",
	Equal:         "=",
	PlusEqual:     "+=",
	MinusEqual:    "-=",
	StarEqual:     "*=",
	DivEqual:      "/=",
	TwoWayArrow:   "<=>",
	FatArrow:      "=>",
}

func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return "TokenKind(?)"
}

// IsOperator reports whether the token is one of the punctuation operators.
func (k TokenKind) IsOperator() bool {
	return k >= Plus && k <= FatArrow
}
