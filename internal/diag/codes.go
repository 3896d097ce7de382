package diag

import (
	"fmt"
	"strconv"
	"strings"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexUnknownHeader            Code = 1004
	LexMalformedHeader          Code = 1005
	LexMissingAssign            Code = 1006

	// Директивы препроцессора
	DirInfo              Code = 1500
	DirMissingName       Code = 1501
	DirMissingValue      Code = 1502
	DirMalformedInclude  Code = 1503
	DirUnknown           Code = 1504
	DirUndefinedVariable Code = 1505
	DirRedefined         Code = 1506

	// Структура документа
	SynInfo               Code = 2000
	SynDuplicateGlobal    Code = 2001
	SynAssignBeforeHeader Code = 2002
	SynUnresolvedInclude  Code = 2003
	SynInvalidToken       Code = 2004

	// Опкоды и значения
	OpcInfo         Code = 3000
	OpcUnknown      Code = 3001
	OpcInvalidValue Code = 3002
	OpcOutOfRange   Code = 3003
	OpcEmptyValue   Code = 3004
	OpcUnknownEnum  Code = 3005
	OpcBeyondTarget Code = 3006

	// Ввод-вывод и include
	IOLoadFileError   Code = 4001
	IOIncludeNotFound Code = 4002
	IOIncludeCycle    Code = 4003
	IOIncludeDepth    Code = 4004

	// Observability
	ObsInfo    Code = 6000
	ObsTimings Code = 6001
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexInfo:                     "Lexical information",
	LexUnknownChar:              "Unexpected character",
	LexUnterminatedString:       "Unterminated quoted value",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexUnknownHeader:            "Unknown header",
	LexMalformedHeader:          "Malformed header",
	LexMissingAssign:            "Opcode name without '='",

	DirInfo:              "Directive information",
	DirMissingName:       "Directive is missing a variable name",
	DirMissingValue:      "Directive is missing a value",
	DirMalformedInclude:  "Malformed #include directive",
	DirUnknown:           "Unknown directive",
	DirUndefinedVariable: "Undefined variable",
	DirRedefined:         "Variable redefined",

	SynInfo:               "Structure information",
	SynDuplicateGlobal:    "Duplicate <global> header",
	SynAssignBeforeHeader: "Assignment before any header",
	SynUnresolvedInclude:  "Include was not flattened",
	SynInvalidToken:       "Invalid token in stream",

	OpcInfo:         "Opcode information",
	OpcUnknown:      "Unknown opcode",
	OpcInvalidValue: "Invalid opcode value",
	OpcOutOfRange:   "Opcode value out of range",
	OpcEmptyValue:   "Empty opcode value",
	OpcUnknownEnum:  "Unknown enumerated value",
	OpcBeyondTarget: "Not supported by the target SFZ dialect",

	IOLoadFileError:   "I/O load file error",
	IOIncludeNotFound: "Included file not found",
	IOIncludeCycle:    "Include cycle",
	IOIncludeDepth:    "Include nesting too deep",

	ObsInfo:    "Observability information",
	ObsTimings: "Pipeline timings",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 1500:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 1500 && ic < 2000:
		return fmt.Sprintf("DIR%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("OPC%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("OBS%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

// ParseCode accepts an ID such as "OPC3001" (case-insensitive) or the bare
// number and returns the matching known code.
func ParseCode(s string) (Code, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for c := range codeDescription {
		if c == UnknownCode {
			continue
		}
		if s == c.ID() || s == strconv.Itoa(int(c)) {
			return c, true
		}
	}
	return UnknownCode, false
}
