// Package terminal provides line-oriented ANSI output for the text front end.
//
// Features:
//   - True color (24-bit), 256-color and plain output
//   - Color capability detection from the environment and TTY checks
//   - Clean terminal restoration on panic
//
// Sequences are emitted directly; no terminfo lookup is performed.
package terminal
