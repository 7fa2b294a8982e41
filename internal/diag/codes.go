package diag

import (
	"fmt"
)

type Code uint16

const (
	// UnknownCode is the zero value fallback.
	UnknownCode Code = 0

	// Lexical errors.
	LexInfo                     Code = 1000
	LexUnknownToken             Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003

	// Syntax errors.
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynUnclosedDelimiter  Code = 2002
	SynUnexpectedTopLevel Code = 2003
	SynExpectIdentifier   Code = 2004
	SynExpectType         Code = 2005
	SynUnclosedBody       Code = 2006

	// I/O and driver errors.
	IOInfo          Code = 4000
	IOLoadFileError Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode:                 "unknown diagnostic",
	LexInfo:                     "lexer note",
	LexUnknownToken:             "unrecognized token",
	LexUnterminatedString:       "unterminated string literal",
	LexUnterminatedBlockComment: "unterminated block comment",
	SynInfo:                     "parser note",
	SynUnexpectedToken:          "unexpected token",
	SynUnclosedDelimiter:        "unclosed delimiter",
	SynUnexpectedTopLevel:       "unrecognized declaration",
	SynExpectIdentifier:         "expected identifier",
	SynExpectType:               "expected type expression",
	SynUnclosedBody:             "unclosed body",
	IOInfo:                      "driver note",
	IOLoadFileError:             "failed to load file",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
