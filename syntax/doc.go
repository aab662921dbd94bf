// Package syntax provides the lexical and syntactic front-end for the Helios
// source language: a lexer, an indentation rewriter, a Pratt/recursive-descent
// parser, and an event sink that together turn UTF-8 source text into a
// lossless concrete syntax tree annotated with diagnostics.
//
// The tree preserves every byte of the input, including whitespace, comments,
// and malformed regions, so downstream consumers (semantic analyzers,
// formatters, an LSP server) can reconstruct the original text and report
// diagnostics at precise byte ranges.
package syntax
