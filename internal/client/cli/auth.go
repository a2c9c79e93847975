package cli

import (
	"context"

	"github.com/dmitrijs2005/todokeeper/internal/common"
)

// getSimpleText and getPassword are swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

func (a *App) Register(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	name, err := getSimpleText(a.reader, "Enter display name", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	if err := a.client.Register(ctx, email, name, password); err != nil {
		printlnFn(a.out, "Registration failed:", err)
		return err
	}

	a.email = email
	printlnFn(a.out, "Registered and logged in")
	return nil
}

func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	if err := a.client.Login(ctx, email, password); err != nil {
		printlnFn(a.out, "Login failed:", err)
		return err
	}

	a.email = email
	printlnFn(a.out, "Logged in")
	return nil
}

func (a *App) Logout(context.Context) error {
	a.client.Logout()
	a.email = ""
	return nil
}
