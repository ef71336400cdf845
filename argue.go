// Copyright 2021-2024, Florent Heyworth. All rights reserved.
// Use of this source code is governed by the MIT licensee
// which can be found in the LICENSE file.

// Package argue parses command-line flags and positional arguments against a declarative
// flag table.
//
// A Parser is built from a list of Flag values, each bound to a caller-owned destination, and
// an optional ArgConfig describing the positional arguments it accepts:
//
//	var (
//		foo     int
//		verbose bool
//	)
//	rest, err := argue.Parse(os.Args, "a sample program", []argue.Flag{
//		{Name: "foo", Short: "f", Description: "an integer", Bind: argue.Int(&foo)},
//		{Name: "verbose", Description: "talk more", Bind: argue.Switch(&verbose)},
//	}, &argue.ArgConfig{Name: "files", Variadic: true})
//	if err != nil {
//		os.Exit(argue.ExitCode(err))
//	}
//
// Parse either returns the positional arguments, ErrHelp after printing the help text, or a
// ParseError after printing a diagnostic to stderr. A malformed flag table panics with a
// *ContractError.
package argue

import (
	"os"

	"github.com/napalu/argue/errs"
	"github.com/napalu/argue/i18n"
	"github.com/napalu/argue/parse"
)

// NewParser creates a Parser. Without options it has no flags, accepts at most one positional
// argument, prints help to os.Stdout and diagnostics to os.Stderr.
func NewParser(configs ...ConfigureParserFunc) (*Parser, error) {
	bundle := i18n.Default()
	p := &Parser{
		stdout: os.Stdout,
		stderr: os.Stderr,
		bundle: bundle,
		lang:   bundle.GetDefaultLanguage(),
	}

	var err error
	for _, cfg := range configs {
		cfg(p, &err)
		if err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Parse processes argv, whose first element is the program path. On success the positional
// arguments are returned in input order. Parse panics with a *ContractError when the flag
// table is malformed, before any token is read.
func (p *Parser) Parse(argv []string) ([]string, error) {
	table := validateFlags(p.flags)

	bin := programName(argv)
	var tokens []string
	if len(argv) > 1 {
		tokens = argv[1:]
	}

	if len(tokens) == 0 || helpRequested(tokens) {
		p.printUsage(p.stdout, bin, table)
		return nil, ErrHelp
	}

	occurrences, positionals, err := sortTokens(tokens, table)
	if err != nil {
		p.report(bin, err)
		return nil, err
	}

	if err = enforceArity(positionals, p.args); err != nil {
		p.report(bin, err)
		return nil, err
	}

	if err = evaluate(bin, occurrences, table); err != nil {
		p.report(bin, err)
		return nil, err
	}

	return positionals, nil
}

// ParseString splits line with shell quoting rules and parses the result. line must start
// with the program name.
func (p *Parser) ParseString(line string) ([]string, error) {
	argv, err := parse.Split(line)
	if err != nil {
		return nil, errs.ErrSplitFailed.Wrap(err)
	}

	return p.Parse(argv)
}

// Parse is a one-shot shortcut for NewParser followed by Parser.Parse
func Parse(argv []string, description string, flags []Flag, args *ArgConfig, configs ...ConfigureParserFunc) ([]string, error) {
	base := []ConfigureParserFunc{
		WithDescription(description),
		WithFlags(flags...),
		WithArgs(args),
	}

	p, err := NewParser(append(base, configs...)...)
	if err != nil {
		return nil, err
	}

	return p.Parse(argv)
}
