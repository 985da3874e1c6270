package cli

import (
	"context"

	"github.com/dmitrijs2005/blogkeeper/internal/client/client"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

func (a *App) Health(ctx context.Context) error {
	if err := a.api.Health(ctx); err != nil {
		return err
	}
	a.say("OK")
	return nil
}

// Signup takes username, email and role from args when given and prompts for
// whatever is missing. The password is always prompted.
func (a *App) Signup(ctx context.Context, args []string) error {
	req := client.SignupRequest{}
	var err error

	if len(args) > 0 {
		req.Username = args[0]
	} else if req.Username, err = getSimpleText(a.reader, "Enter username", a.out); err != nil {
		return err
	}
	if len(args) > 1 {
		req.Email = args[1]
	} else if req.Email, err = getSimpleText(a.reader, "Enter email", a.out); err != nil {
		return err
	}
	if len(args) > 2 {
		req.Role = args[2]
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer clear(password)
	req.Password = string(password)

	msg, err := a.api.Signup(ctx, req)
	if err != nil {
		return err
	}
	a.say(msg)
	return nil
}

// Login stores the returned token on success; a failed attempt leaves the
// previous session untouched.
func (a *App) Login(ctx context.Context, args []string) error {
	var (
		email string
		err   error
	)
	if len(args) > 0 {
		email = args[0]
	} else if email, err = getSimpleText(a.reader, "Enter email", a.out); err != nil {
		return err
	}

	password, err := getPassword(a.reader, a.out)
	if err != nil {
		return err
	}
	defer clear(password)

	token, err := a.api.Login(ctx, email, string(password))
	if err != nil {
		return err
	}

	a.token = token
	a.userName = email
	a.say("Login successful")
	return nil
}

func (a *App) Logout(_ context.Context) error {
	a.token = ""
	a.userName = ""
	a.api.SetToken("")
	a.say("Logged out")
	return nil
}
