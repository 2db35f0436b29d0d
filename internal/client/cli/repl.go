package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output.
var printlnFn = fmt.Println

// execIface is the command surface the REPL dispatches to. The real App
// satisfies it; tests provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	ForgotPassword(ctx context.Context) error
	ChangePassword(ctx context.Context) error
	Logout(ctx context.Context) error
	Me(ctx context.Context) error
	Sync(ctx context.Context) error
	Rooms(ctx context.Context) error
	History(ctx context.Context, args []string) error
	Older(ctx context.Context, args []string) error
	Send(ctx context.Context, args []string) error
	NewRoom(ctx context.Context, args []string) error
	Leave(ctx context.Context, args []string) error
	Users(ctx context.Context) error
	Search(ctx context.Context, args []string) error
	Follow(ctx context.Context, args []string, follow bool) error
	Mute(ctx context.Context, args []string, mute bool) error
	RegisterDevice(ctx context.Context, args []string) error
	UploadURL(ctx context.Context) error
	Attach(ctx context.Context, args []string) error
	Download(ctx context.Context, args []string) error
	Watch(ctx context.Context) error
	StopWatch()
}

const (
	helpAnonymous = "Available commands: register, login, forgot-password, change-password, exit"
	helpSignedIn  = "Available commands: rooms, history <room>, older <room>, send <room> [text], newroom <name|-> [user-id...], " +
		"leave <room>, users, search <name> [skip] [take], follow <user-id>, unfollow <user-id>, mute <room> [minutes], unmute <room>, " +
		"device <name> <token> <platform>, attach <room> <path>, download <attachment-id> [dir], upload-url, sync, watch, unwatch, me, logout, exit"
)

// runREPL reads commands from scanner and dispatches them to a until EOF,
// "exit" or "quit". Command errors are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("chat %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var err error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpSignedIn)
			} else {
				printlnFn(helpAnonymous)
			}
		case "register":
			err = a.Register(ctx)
		case "login":
			err = a.Login(ctx)
		case "forgot-password":
			err = a.ForgotPassword(ctx)
		case "change-password":
			err = a.ChangePassword(ctx)
		case "logout":
			err = a.Logout(ctx)
		case "me":
			err = a.Me(ctx)
		case "sync":
			err = a.Sync(ctx)
		case "rooms", "r":
			err = a.Rooms(ctx)
		case "history", "h":
			err = a.History(ctx, args)
		case "older":
			err = a.Older(ctx, args)
		case "send", "s":
			err = a.Send(ctx, args)
		case "newroom":
			err = a.NewRoom(ctx, args)
		case "leave":
			err = a.Leave(ctx, args)
		case "users":
			err = a.Users(ctx)
		case "search":
			err = a.Search(ctx, args)
		case "follow":
			err = a.Follow(ctx, args, true)
		case "unfollow":
			err = a.Follow(ctx, args, false)
		case "mute":
			err = a.Mute(ctx, args, true)
		case "unmute":
			err = a.Mute(ctx, args, false)
		case "device":
			err = a.RegisterDevice(ctx, args)
		case "upload-url":
			err = a.UploadURL(ctx)
		case "attach":
			err = a.Attach(ctx, args)
		case "download":
			err = a.Download(ctx, args)
		case "watch":
			err = a.Watch(ctx)
		case "unwatch":
			a.StopWatch()
		case "exit", "quit":
			printlnFn("Bye!")
			return
		default:
			printlnFn("Unknown command:", cmd)
		}
		if err != nil {
			printlnFn("error:", err)
		}
	}
}
