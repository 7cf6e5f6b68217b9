// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package validate implements a command
// to check the syntax of Newick files.
package validate

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/phylotree/lexer"
	"github.com/js-arias/phylotree/newick"
)

var Command = &command.Command{
	Usage: "validate [<tree-file>...]",
	Short: "check the syntax of Newick files",
	Long: `
Command validate reads one or more Newick tree files and reports every error
found in them.

One or more tree files can be given as arguments. If no file is given, the
trees will be read from the standard input.

All lexical errors of a file are reported, each one with the file name, the
line, and the column in which it was found. Grammar errors are reported at
the first violation. If any file has an error, the command finishes with a
non-zero exit status.
	`,
	Run: run,
}

func run(c *command.Command, args []string) error {
	if len(args) == 0 {
		args = append(args, "-")
	}

	valid := true
	for _, a := range args {
		errs := checkFile(c.Stdin(), a)
		for _, err := range errs {
			fmt.Fprintf(c.Stderr(), "%s: %v\n", a, err)
		}
		if len(errs) > 0 {
			valid = false
		}
	}
	if !valid {
		return fmt.Errorf("validate: invalid tree files")
	}
	return nil
}

func checkFile(r io.Reader, name string) []error {
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return []error{err}
		}
		defer f.Close()
		r = f
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return []error{err}
	}
	text := string(data)

	tokens := lexer.Scan(text, lexer.Options{GlueSignToNumber: true})
	var errs []error
	for _, e := range lexer.Errors(tokens) {
		errs = append(errs, e)
	}
	if len(errs) > 0 {
		return errs
	}
	if err := lexer.ValidateBrackets(tokens); err != nil {
		return []error{err}
	}

	sr := strings.NewReader(text)
	if _, err := newick.Read(sr); err != nil {
		return []error{err}
	}
	return nil
}
