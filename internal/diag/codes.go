package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Ошибки загрузки документа (interchange / syntax payload)
	SynInfo             Code = 2000
	SynMalformedPayload Code = 2001
	SynUnknownType      Code = 2002
	SynUnknownBase      Code = 2003
	SynDuplicateID      Code = 2004
	SynUnknownProperty  Code = 2005

	// Семантические (resolving pass)
	SemaInfo                 Code = 3000
	SemaError                Code = 3001
	SemaUnresolvedIdentifier Code = 3002 // name not visible in any scope
	SemaInvalidMember        Code = 3003 // container has no such member / field
	SemaTypeMismatch         Code = 3004 // no conversion between types
	SemaArityMismatch        Code = 3005 // call argument count differs
	SemaMalformedConstruct   Code = 3006 // gradient / macro shape errors
	SemaBindingDiscipline    Code = 3007 // assignment / two-way binding target errors
	SemaDeprecatedProperty   Code = 3008 // warning: deprecated property alias
	SemaBadLiteral           Code = 3009 // string / number / color literal errors
	SemaNotCallable          Code = 3010
	SemaUncalledFunction     Code = 3011
	SemaNotIndexable         Code = 3012
	SemaInvalidRepeaterModel Code = 3013

	// Ошибки I/O
	IOLoadFileError Code = 4001
	IODecodeError   Code = 4002

	// Ошибки проекта
	ProjInfo            Code = 5000
	ProjInvalidManifest Code = 5001

	// Observability
	ObsInfo    Code = 6000
	ObsTimings Code = 6001
)

var codeDescription = map[Code]string{
	UnknownCode:              "Unknown error",
	SynInfo:                  "Syntax information",
	SynMalformedPayload:      "Malformed syntax payload",
	SynUnknownType:           "Unknown type name",
	SynUnknownBase:           "Unknown element base type",
	SynDuplicateID:           "Duplicate element id",
	SynUnknownProperty:       "Binding to an undeclared property",
	SemaInfo:                 "Semantic information",
	SemaError:                "Semantic error",
	SemaUnresolvedIdentifier: "Unresolved identifier",
	SemaInvalidMember:        "Invalid member access",
	SemaTypeMismatch:         "Type mismatch",
	SemaArityMismatch:        "Argument count mismatch",
	SemaMalformedConstruct:   "Malformed construct",
	SemaBindingDiscipline:    "Invalid binding target",
	SemaDeprecatedProperty:   "Deprecated property",
	SemaBadLiteral:           "Invalid literal",
	SemaNotCallable:          "Expression is not callable",
	SemaUncalledFunction:     "Callback or function must be called",
	SemaNotIndexable:         "Expression is not indexable",
	SemaInvalidRepeaterModel: "Invalid repeater model",
	IOLoadFileError:          "I/O load file error",
	IODecodeError:            "Cannot decode document",
	ProjInfo:                 "Project information",
	ProjInvalidManifest:      "Invalid project manifest",
	ObsInfo:                  "Observability information",
	ObsTimings:               "Pipeline timings",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("PRJ%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("OBS%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	if desc, ok := codeDescription[c]; ok {
		return desc
	}
	return codeDescription[UnknownCode]
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
