package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool

	calls []string
}

func (f *fakeExec) record(name string, args ...string) error {
	f.calls = append(f.calls, strings.TrimSpace(name+" "+strings.Join(args, " ")))
	return nil
}

func (f *fakeExec) isLoggedIn() bool                { return f.loggedIn }
func (f *fakeExec) Register(context.Context) error  { return f.record("register") }
func (f *fakeExec) Me(context.Context) error        { return f.record("me") }
func (f *fakeExec) Sync(context.Context) error      { return f.record("sync") }
func (f *fakeExec) Rooms(context.Context) error     { return f.record("rooms") }
func (f *fakeExec) Users(context.Context) error     { return f.record("users") }
func (f *fakeExec) UploadURL(context.Context) error { return f.record("upload-url") }
func (f *fakeExec) Watch(context.Context) error     { return f.record("watch") }
func (f *fakeExec) StopWatch()                      { _ = f.record("unwatch") }
func (f *fakeExec) ForgotPassword(context.Context) error { return f.record("forgot-password") }
func (f *fakeExec) ChangePassword(context.Context) error { return f.record("change-password") }
func (f *fakeExec) Older(_ context.Context, a []string) error {
	return f.record("older", a...)
}
func (f *fakeExec) Search(_ context.Context, a []string) error {
	return f.record("search", a...)
}
func (f *fakeExec) Leave(_ context.Context, a []string) error {
	return f.record("leave", a...)
}
func (f *fakeExec) History(_ context.Context, a []string) error {
	return f.record("history", a...)
}
func (f *fakeExec) Send(_ context.Context, a []string) error {
	return f.record("send", a...)
}
func (f *fakeExec) NewRoom(_ context.Context, a []string) error {
	return f.record("newroom", a...)
}
func (f *fakeExec) RegisterDevice(_ context.Context, a []string) error {
	return f.record("device", a...)
}
func (f *fakeExec) Follow(_ context.Context, a []string, follow bool) error {
	return f.record(fmt.Sprintf("follow=%v", follow), a...)
}
func (f *fakeExec) Attach(_ context.Context, a []string) error {
	return f.record("attach", a...)
}
func (f *fakeExec) Download(_ context.Context, a []string) error {
	return f.record("download", a...)
}
func (f *fakeExec) Mute(_ context.Context, a []string, mute bool) error {
	if len(a) == 0 {
		return errors.New("usage")
	}
	return f.record(fmt.Sprintf("mute=%v", mute), a...)
}
func (f *fakeExec) Login(context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Logout(context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, fmt.Sprint(a...))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	out := captureOutput(t)

	input := strings.NewReader(strings.Join([]string{
		"help",
		"forgot-password",
		"change-password",
		"login",
		"help",
		"",
		"rooms",
		"send abc hello there",
		"h abc",
		"older abc",
		"search ali 0 5",
		"newroom Team u1 u2",
		"follow u1",
		"unfollow u1",
		"mute abc 30",
		"unmute abc",
		"attach abc ./cat.png",
		"download at1 /tmp",
		"mute",
		"watch",
		"unwatch",
		"foobar",
		"logout",
		"exit",
		"rooms",
	}, "\n"))

	exec := &fakeExec{}
	runREPL(context.Background(), exec, func() string { return "status" }, bufio.NewScanner(input))

	assert.Equal(t, []string{
		"forgot-password",
		"change-password",
		"login",
		"rooms",
		"send abc hello there",
		"history abc",
		"older abc",
		"search ali 0 5",
		"newroom Team u1 u2",
		"follow=true u1",
		"follow=false u1",
		"mute=true abc 30",
		"mute=false abc",
		"attach abc ./cat.png",
		"download at1 /tmp",
		"watch",
		"unwatch",
		"logout",
	}, exec.calls)

	joined := strings.Join(*out, "\n")
	assert.Contains(t, joined, helpAnonymous)
	assert.Contains(t, joined, helpSignedIn)
	assert.Contains(t, joined, "Unknown command:foobar")
	assert.Contains(t, joined, "error:usage")
	assert.Contains(t, joined, "Bye!")
}

func TestRunREPL_StopsOnEOF(t *testing.T) {
	captureOutput(t)
	exec := &fakeExec{loggedIn: true}
	runREPL(context.Background(), exec, func() string { return "s" }, bufio.NewScanner(strings.NewReader("sync")))
	assert.Equal(t, []string{"sync"}, exec.calls)
}
