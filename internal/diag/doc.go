// Package diag defines the diagnostic model shared by the lexer, the parser
// and the CLI renderers: stable codes, severities, and a Bag accumulator.
//
// Lexing and parsing are fail-fast (the first error aborts the whole run),
// so the usual flow is a single SevError diagnostic wrapped in an *Error.
// The Bag surface exists for the driver, which still wants every diagnostic
// a multi-file run produced in one deterministic place.
package diag
