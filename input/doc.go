// Package input turns puzzle text into reports for package monotone.
//
// Format:
//
//	One report per line; levels are unsigned decimal integers separated by
//	spaces or tabs. "\n" and "\r\n" line endings are accepted, as is a
//	missing final newline.
//
// Malformed text is rejected here so the validator only ever sees
// well-formed integer sequences. Every failure is a *LineError carrying the
// 1-based line number and wrapping one of:
//
//   - ErrEmptyLine: a blank line between reports.
//   - ErrBadToken:  a token that is not an unsigned 32-bit decimal.
//
// A read failure from the underlying reader is returned wrapped as-is.
package input
