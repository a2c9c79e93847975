package cli

import (
	"bufio"
	"context"
	"io"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	args  []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}
func (f *fakeExec) Add(ctx context.Context, args []string) error {
	f.calls = append(f.calls, "add")
	f.args = args
	return nil
}
func (f *fakeExec) List(ctx context.Context) error { f.calls = append(f.calls, "list"); return nil }

func silence(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(io.Writer, ...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	silence(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"list",
		"login",
		"help",
		"add buy milk",
		"",
		"l",
		"foobar",
		"logout",
		"add too late",
		"exit",
		"list",
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, io.Discard, bufio.NewReader(input))

	want := []string{"login", "add", "list", "logout"}
	if strings.Join(exec.calls, ",") != strings.Join(want, ",") {
		t.Fatalf("calls = %v, want %v", exec.calls, want)
	}
	if strings.Join(exec.args, " ") != "buy milk" {
		t.Fatalf("add args = %v", exec.args)
	}
}

func TestRunREPL_StopsOnEOFAndCancel(t *testing.T) {
	silence(t)

	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "s" }, io.Discard, bufio.NewReader(strings.NewReader("list")))
	if len(exec.calls) != 1 {
		t.Fatalf("last line without newline must run: %v", exec.calls)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	exec = &fakeExec{loggedIn: true}
	runREPL(ctx, exec, func() string { return "s" }, io.Discard, bufio.NewReader(strings.NewReader("list\n")))
	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls after cancel: %v", exec.calls)
	}
}
