// Package main provides the CLI entry point for Helios.
//
// Usage:
//
//	helios parse <file.helios> [-format text|json|yaml] [-config helios.toml]
//	helios tokens <file.helios>
//	helios version
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/helios-lang/helios/syntax"
	"gopkg.in/yaml.v3"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "parse":
		err = runParse(os.Args[2:])
	case "tokens":
		err = runTokens(os.Args[2:])
	case "version", "-v", "--version":
		printVersion()
		return
	case "help", "-h", "--help":
		printUsage()
		return
	default:
		printUsage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`helios - a lossless lexer/parser front end for the Helios language

Usage:
  helios parse <file.helios> [-format text|json|yaml] [-config helios.toml]
  helios tokens <file.helios>
  helios version
  helios help

Commands:
  parse     Parse a file and print its syntax tree plus any diagnostics
  tokens    Print the raw token stream for a file
  version   Show version information
  help      Show this help message

Options:
  -format   Output format for parse: text (default), json, or yaml
  -config   Path to a helios.toml project manifest (tunes lexer behavior)`)
}

func printVersion() {
	fmt.Println("helios version 0.1.0")
}

// runParse implements `helios parse`. It exits with status 1 if the
// parse produced any diagnostics, even though that's not itself a Go
// error — parsing malformed input successfully (with diagnostics
// attached) is the normal, expected outcome of this front end.
func runParse(args []string) error {
	fs := flag.NewFlagSet("parse", flag.ExitOnError)
	format := fs.String("format", "text", "output format: text, json, or yaml")
	config := fs.String("config", "", "path to a helios.toml project manifest")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("missing input file")
	}
	path := fs.Arg(0)
	// Flags may also follow the file, as in the usage line.
	if err := fs.Parse(fs.Args()[1:]); err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	text := string(data)

	var manifest *syntax.ProjectManifest
	if *config != "" {
		manifest, err = syntax.LoadManifest(*config)
		if err != nil {
			return err
		}
	}

	file := syntax.FileID(1)
	var result *syntax.Parse
	if manifest != nil {
		result = syntax.ParseTextWithManifest(file, text, manifest)
	} else {
		result = syntax.ParseText(file, text)
	}

	lines := syntax.NewLines(text)
	if err := printParseResult(*format, path, result, lines); err != nil {
		return err
	}

	if len(result.Messages()) > 0 {
		os.Exit(1)
	}
	return nil
}

func printParseResult(format, path string, result *syntax.Parse, lines *syntax.Lines) error {
	switch format {
	case "text":
		fmt.Println(result.DebugTree())
		printDiagnosticsText(path, result, lines)
		return nil
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(buildParseOutput(path, result, lines))
	case "yaml":
		data, err := yaml.Marshal(buildParseOutput(path, result, lines))
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	default:
		return fmt.Errorf("unknown format %q (want text, json, or yaml)", format)
	}
}

func printDiagnosticsText(path string, result *syntax.Parse, lines *syntax.Lines) {
	for _, m := range result.Messages() {
		line, col := lines.ByteToLineColumn(m.Range.Start)
		fmt.Fprintf(os.Stderr, "%s:%d:%d: %s\n", path, line+1, col+1, m.Error())
	}
}

// diagnosticOutput is a JSON/YAML-friendly projection of a Message: byte
// offsets plus the 1-indexed line/column a human-facing tool would want.
type diagnosticOutput struct {
	Line    int    `json:"line" yaml:"line"`
	Column  int    `json:"column" yaml:"column"`
	Start   int    `json:"start" yaml:"start"`
	End     int    `json:"end" yaml:"end"`
	Message string `json:"message" yaml:"message"`
}

type parseOutput struct {
	File        string              `json:"file" yaml:"file"`
	Tree        string              `json:"tree" yaml:"tree"`
	Diagnostics []diagnosticOutput  `json:"diagnostics" yaml:"diagnostics"`
}

func buildParseOutput(path string, result *syntax.Parse, lines *syntax.Lines) parseOutput {
	out := parseOutput{File: path, Tree: result.DebugTree()}
	for _, m := range result.Messages() {
		line, col := lines.ByteToLineColumn(m.Range.Start)
		out.Diagnostics = append(out.Diagnostics, diagnosticOutput{
			Line: line + 1, Column: col + 1,
			Start: m.Range.Start, End: m.Range.End,
			Message: m.Error(),
		})
	}
	return out
}

// runTokens implements `helios tokens`: the flat token stream straight
// out of the lexer, before indentation rewriting — useful for debugging
// the lexer in isolation from the rest of the pipeline.
func runTokens(args []string) error {
	fs := flag.NewFlagSet("tokens", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		return fmt.Errorf("missing input file")
	}
	path := fs.Arg(0)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	text := string(data)
	file := syntax.FileID(1)

	tokens, messages := syntax.Tokenize(file, text)
	for _, t := range tokens {
		if t.Kind == syntax.End {
			continue
		}
		fmt.Printf("%s@%d..%d %q\n", t.Kind, t.Range.Start, t.Range.End, t.Text(text))
	}

	lines := syntax.NewLines(text)
	for _, m := range messages {
		line, col := lines.ByteToLineColumn(m.Range.Start)
		fmt.Fprintf(os.Stderr, "%s:%d:%d: %s\n", path, line+1, col+1, m.Error())
	}

	if len(messages) > 0 {
		os.Exit(1)
	}
	return nil
}
