package domain

import (
	"strconv"
	"strings"
)

// Command describes a single external program invocation.
// It is built per invocation and never reused across runs.
type Command struct {
	// Description is the human readable label printed with the command and its output.
	Description string
	// Name is the program to execute, resolved through PATH when not absolute.
	Name string
	// Args are passed verbatim, without shell interpretation.
	Args []string
	// Dir is the working directory. Empty means the current directory.
	Dir string
	// Capture requests that stdout is collected, echoed line by line and returned.
	Capture bool
	// QuietStderr discards the command's diagnostic stream.
	QuietStderr bool
}

// Argv returns the full argument vector including the program name.
func (c Command) Argv() []string {
	argv := make([]string, 0, len(c.Args)+1)
	argv = append(argv, c.Name)
	return append(argv, c.Args...)
}

// Line renders the command for the execution trace.
// Arguments that are empty or contain whitespace are quoted.
func (c Command) Line() string {
	argv := c.Argv()
	parts := make([]string, len(argv))
	for i, a := range argv {
		if a == "" || strings.ContainsAny(a, " \t\n\"'") {
			parts[i] = strconv.Quote(a)
			continue
		}
		parts[i] = a
	}
	return strings.Join(parts, " ")
}

// WithPrefix returns a copy of the command executed through prefix.
// The first element of prefix becomes the program name.
func (c Command) WithPrefix(prefix []string) Command {
	if len(prefix) == 0 {
		return c
	}
	wrapped := c
	wrapped.Name = prefix[0]
	args := make([]string, 0, len(prefix)-1+len(c.Args)+1)
	args = append(args, prefix[1:]...)
	args = append(args, c.Name)
	wrapped.Args = append(args, c.Args...)
	return wrapped
}
