package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool
	calls    []string
	args     [][]string
	reported []error
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }

func (f *fakeExec) report(_ context.Context, err error) { f.reported = append(f.reported, err) }

func (f *fakeExec) record(name string) func(context.Context, []string) error {
	return func(_ context.Context, args []string) error {
		f.calls = append(f.calls, name)
		f.args = append(f.args, args)
		return nil
	}
}

func (f *fakeExec) commands() []command {
	return []command{
		{names: []string{"login"}, usage: "login", run: func(context.Context, []string) error {
			f.calls = append(f.calls, "login")
			f.loggedIn = true
			return nil
		}},
		{names: []string{"items", "l"}, usage: "items [filters]", run: f.record("items")},
		{names: []string{"post-item"}, usage: "post-item", auth: true, run: f.record("post-item")},
		{names: []string{"boom"}, usage: "boom", run: func(context.Context, []string) error {
			return errors.New("boom")
		}},
	}
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	exec := &fakeExec{}
	var out bytes.Buffer

	runREPL(context.Background(), exec, func() string { return "status" },
		rdr("help\npost-item\nlogin\nhelp\nl -type free lamp\npost-item\nfoobar\nboom\nexit\nitems\n"), &out)

	assert.Equal(t, []string{"login", "items", "post-item"}, exec.calls)
	assert.Equal(t, []string{"-type", "free", "lamp"}, exec.args[0])
	assert.Len(t, exec.reported, 1)

	s := out.String()
	assert.Contains(t, s, "uniswap status> ")
	assert.Contains(t, s, "Please log in first")
	assert.Contains(t, s, "Unknown command: foobar")
	assert.Contains(t, s, "Bye!")
}

func TestRunREPL_HelpDependsOnSession(t *testing.T) {
	cmds := (&fakeExec{}).commands()
	assert.NotContains(t, helpText(cmds, false), "post-item")
	assert.Contains(t, helpText(cmds, true), "post-item")
}

func TestRunREPL_StopsOnEOF(t *testing.T) {
	exec := &fakeExec{}
	var out bytes.Buffer
	runREPL(context.Background(), exec, func() string { return "" }, rdr("items"), &out)
	assert.Equal(t, []string{"items"}, exec.calls)
}
