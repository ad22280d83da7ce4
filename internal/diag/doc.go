// Package diag defines the diagnostic model shared by the lexer and the
// indentation fixer.
//
// Producers emit through the Reporter interface; BagReporter collects into a
// Bag that the driver inspects and renders. Package diag performs no
// formatting or IO.
//
// Codes are grouped by range:
//
//   - 1000..1999 – lexical (LEX)
//   - 2000..2999 – indentation fixer (IND)
//   - 3000..3999 – I/O (IO)
package diag
