package cli

import (
	"bufio"
	"bytes"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	arg   string
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
func (f *fakeExec) List(ctx context.Context) error { f.calls = append(f.calls, "list"); return nil }
func (f *fakeExec) Next(ctx context.Context) error { f.calls = append(f.calls, "next"); return nil }
func (f *fakeExec) Reload(ctx context.Context) error {
	f.calls = append(f.calls, "reload")
	return nil
}
func (f *fakeExec) Search(ctx context.Context, query string) error {
	f.calls = append(f.calls, "search")
	f.arg = query
	return nil
}
func (f *fakeExec) Show(ctx context.Context, name string) error {
	f.calls = append(f.calls, "show")
	f.arg = name
	return nil
}
func (f *fakeExec) Profile(ctx context.Context) error {
	f.calls = append(f.calls, "profile")
	return nil
}
func (f *fakeExec) DeleteAccount(ctx context.Context) error {
	f.calls = append(f.calls, "deleteaccount")
	return nil
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"list",
		"next",
		"search pika chu",
		"show pikachu",
		"reload",
		"foobar",
		"logout",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)
	var out bytes.Buffer

	runREPL(context.Background(), exec, func() string { return "status" }, sc, &out)

	wantOrder := []string{"login", "list", "next", "search", "show", "reload", "logout"}
	if len(exec.calls) != len(wantOrder) {
		t.Fatalf("calls mismatch: got %v, want %v", exec.calls, wantOrder)
	}
	for i, c := range wantOrder {
		if exec.calls[i] != c {
			t.Fatalf("calls order mismatch: got %v, want %v", exec.calls, wantOrder)
		}
	}
	if !strings.Contains(out.String(), "Unknown command: foobar") {
		t.Fatalf("unknown command not reported: %q", out.String())
	}
}

func TestRunREPL_SearchJoinsArgs(t *testing.T) {
	input := strings.NewReader("search pika chu\nexit\n")
	exec := &fakeExec{loggedIn: true}
	var out bytes.Buffer

	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewScanner(input), &out)

	if exec.arg != "pika chu" {
		t.Fatalf("search arg = %q, want %q", exec.arg, "pika chu")
	}
}

func TestRunREPL_SearchWithoutArgsClearsFilter(t *testing.T) {
	input := strings.NewReader("search\nexit\n")
	exec := &fakeExec{loggedIn: true, arg: "stale"}
	var out bytes.Buffer

	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewScanner(input), &out)

	if len(exec.calls) != 1 || exec.calls[0] != "search" || exec.arg != "" {
		t.Fatalf("calls=%v arg=%q", exec.calls, exec.arg)
	}
}

func TestRunREPL_ShowUsageAndQuit(t *testing.T) {
	input := strings.NewReader("show\nquit\n")
	exec := &fakeExec{loggedIn: true}
	var out bytes.Buffer

	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewScanner(input), &out)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
	if !strings.Contains(out.String(), "Usage: show <name>") {
		t.Fatalf("usage not printed: %q", out.String())
	}
}

func TestRunREPL_HelpDependsOnLoginState(t *testing.T) {
	input := strings.NewReader("help\nlogin\nhelp\nexit\n")
	exec := &fakeExec{loggedIn: false}
	var out bytes.Buffer

	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewScanner(input), &out)

	s := out.String()
	if !strings.Contains(s, "register, login, exit") {
		t.Fatalf("logged-out help missing: %q", s)
	}
	if !strings.Contains(s, "deleteaccount") {
		t.Fatalf("logged-in help missing: %q", s)
	}
}
