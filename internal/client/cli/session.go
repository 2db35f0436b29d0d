package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/chatsync/internal/client/client"
	"github.com/dmitrijs2005/chatsync/internal/client/repositories/metadata"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

func (a *App) Register(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	account, err := a.api.Register(ctx, name, email, string(password))
	if err != nil {
		return err
	}
	a.printf("Account %s created, you can log in now\n", account.GetId())
	return nil
}

// ForgotPassword asks the server to mail a reset code.
func (a *App) ForgotPassword(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	if err := a.api.ForgotPassword(ctx, email); err != nil {
		return err
	}
	a.printf("If %s has an account, a reset code is on its way\n", email)
	return nil
}

// ChangePassword redeems a reset code for a new password.
func (a *App) ChangePassword(ctx context.Context) error {
	code, err := getSimpleText(a.reader, "Enter reset code", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	if err := a.api.ChangePassword(ctx, code, string(password)); err != nil {
		return err
	}
	a.printf("Password changed, you can log in now\n")
	return nil
}

// Login signs in, stores the session and runs a first sync. Signing in as
// another account than the replica belongs to wipes the replica.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	tokens, err := a.api.Login(ctx, email, string(password))
	if err != nil {
		return err
	}
	me, err := a.api.Me(ctx)
	if err != nil {
		return err
	}
	userID, name := me.GetId(), me.GetName()

	meta := a.repos.Metadata
	previous, err := meta.Session(ctx)
	if err != nil {
		return err
	}
	if previous.UserID != "" && previous.UserID != userID {
		if err := a.repos.Replica.Reset(ctx); err != nil {
			return err
		}
	}
	err = meta.SaveSession(ctx, metadata.Session{
		UserID:       userID,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		SessionID:    tokens.SessionID,
	})
	if err != nil {
		return err
	}

	a.mu.Lock()
	a.userID, a.userName = userID, name
	a.mu.Unlock()
	a.setMode(ModeOnline)
	a.printf("Logged in as %s\n", name)

	return a.Sync(ctx)
}

// resume restores the session stored by a previous run. Without a server
// the replica stays readable and changes queue up in the outbox.
func (a *App) resume(ctx context.Context) error {
	stored, err := a.repos.Metadata.Session(ctx)
	if err != nil || !stored.SignedIn() {
		return err
	}
	a.api.SetSession(client.Tokens{
		AccessToken:  stored.AccessToken,
		RefreshToken: stored.RefreshToken,
		SessionID:    stored.SessionID,
	})
	userID := stored.UserID

	name := userID
	if u, err := a.repos.Replica.User(ctx, userID); err == nil {
		name = u.Name
	}
	a.mu.Lock()
	a.userID, a.userName = userID, name
	a.mu.Unlock()

	if _, err := a.syncer.Sync(ctx); err != nil {
		if errors.Is(err, client.ErrUnavailable) {
			a.setMode(ModeOffline)
			return nil
		}
		return err
	}
	a.setMode(ModeOnline)
	return nil
}

func (a *App) saveTokens(tokens client.Tokens) {
	ctx := context.Background()
	if err := a.repos.Metadata.SaveTokens(ctx, tokens.AccessToken, tokens.RefreshToken); err != nil {
		a.log.Error(ctx, "store tokens", "error", err)
	}
}

// Logout forgets the tokens. The replica and the outbox are kept for the
// next login of the same account.
func (a *App) Logout(ctx context.Context) error {
	a.StopWatch()
	if err := a.repos.Metadata.ForgetTokens(ctx); err != nil {
		return err
	}
	a.api.SetSession(client.Tokens{})

	a.mu.Lock()
	a.userID, a.userName = "", ""
	a.mu.Unlock()
	a.printf("Logged out\n")
	return nil
}

func (a *App) Me(ctx context.Context) error {
	me, err := a.api.Me(ctx)
	if err != nil {
		return err
	}
	a.printf("%-6s %s\n", "id:", me.GetId())
	a.printf("%-6s %s\n", "name:", me.GetName())
	a.printf("%-6s %s\n", "email:", me.GetEmail())
	a.printf("%-6s %s\n", "role:", me.GetRole())
	return nil
}

func (a *App) Sync(ctx context.Context) error {
	if _, err := a.currentUser(); err != nil {
		return err
	}
	stats, err := a.syncer.Sync(ctx)
	if err != nil {
		if errors.Is(err, client.ErrUnavailable) {
			a.setMode(ModeOffline)
		}
		return err
	}
	a.printf("Synced: %d pulled, %d pushed\n", stats.Pulled, stats.Pushed)
	return nil
}

func errUsage(usage string) error {
	return fmt.Errorf("usage: %s", usage)
}
