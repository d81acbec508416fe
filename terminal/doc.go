// Package terminal provides direct ANSI terminal output with zero-alloc escape writers.
//
// Features:
//   - True color (24-bit) with 256-color palette fallback
//   - Buffered Writer emitting cursor, SGR and glyph sequences
//   - Scoped Session for raw mode, cursor visibility and screen clearing
//   - Clean terminal restoration on exit/panic
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI sequences.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
