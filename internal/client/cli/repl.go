package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// command is one REPL verb. Commands with auth set are only offered and
// run while signed in.
type command struct {
	names []string
	usage string
	auth  bool
	run   func(ctx context.Context, args []string) error
}

// execIface is the minimal surface the REPL needs. The real App satisfies
// it; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	commands() []command
	report(ctx context.Context, err error)
}

// runREPL reads commands from reader until EOF or "exit"/"quit". The
// prompt shows statusFn. Errors returned by commands are passed to report,
// so the loop itself never stops on them.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		fmt.Fprintf(w, "uniswap %s> ", statusFn())
		line, err := readLine(reader)
		if err != nil {
			fmt.Fprintln(w)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		name, args := parts[0], parts[1:]

		switch name {
		case "help":
			fmt.Fprintln(w, helpText(a.commands(), a.isLoggedIn()))
			continue
		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return
		}

		cmd, ok := lookup(a.commands(), name)
		switch {
		case !ok:
			fmt.Fprintln(w, "Unknown command:", name)
		case cmd.auth && !a.isLoggedIn():
			fmt.Fprintln(w, "Please log in first (type 'login').")
		default:
			if err := cmd.run(ctx, args); err != nil {
				a.report(ctx, err)
			}
		}
	}
}

func lookup(cmds []command, name string) (command, bool) {
	for _, c := range cmds {
		for _, n := range c.names {
			if n == name {
				return c, true
			}
		}
	}
	return command{}, false
}

func helpText(cmds []command, loggedIn bool) string {
	var b strings.Builder
	b.WriteString("Available commands:\n")
	for _, c := range cmds {
		if c.auth && !loggedIn {
			continue
		}
		fmt.Fprintf(&b, "  %s\n", c.usage)
	}
	b.WriteString("  help\n  exit | quit")
	return b.String()
}
