// Package parse provides the lexical building blocks of argue: splitting a command string into
// tokens, classifying tokens as flags or positional arguments and walking a token list.
package parse

import "github.com/google/shlex"

// Split splits a command string into arguments using POSIX shell quoting rules
func Split(s string) ([]string, error) {
	args, err := shlex.Split(s)
	if err != nil {
		return nil, err
	}

	if args == nil {
		args = []string{}
	}

	return args, nil
}
