package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/audora0212/inhashapp/internal/keyring"
	"github.com/audora0212/inhashapp/internal/logger"
)

type LoginCmd struct {
	Email  string `short:"e" help:"Account email. Prompted for when omitted."`
	Signup bool   `help:"Register a new account instead of logging in."`
}

func (c *LoginCmd) Run(ctx *Context) error {
	if keyring.IsAuthenticated() {
		fmt.Println("Already logged in; run 'inhash logout' first")
		return nil
	}

	email := c.Email
	var password string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("이메일").
				Value(&email).
				Validate(func(s string) error {
					if !strings.Contains(s, "@") {
						return fmt.Errorf("올바른 이메일을 입력하세요")
					}
					return nil
				}),
			huh.NewInput().
				Title("비밀번호").
				EchoMode(huh.EchoModePassword).
				Value(&password).
				Validate(func(s string) error {
					if len(s) < 4 {
						return fmt.Errorf("비밀번호는 4자 이상이어야 합니다")
					}
					return nil
				}),
		),
	).WithTheme(huh.ThemeDracula())
	if err := form.Run(); err != nil {
		return err
	}

	var (
		token string
		err   error
	)
	if c.Signup {
		token, err = ctx.LMS.Signup(context.Background(), email, password)
	} else {
		token, err = ctx.LMS.Login(context.Background(), email, password)
	}
	if err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}

	if err := keyring.SetToken(token); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}

	logger.Info("logged in", "email", email)
	fmt.Println("로그인되었습니다")
	return nil
}

type LogoutCmd struct{}

func (c *LogoutCmd) Run(ctx *Context) error {
	if err := keyring.DeleteToken(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			fmt.Println("Not logged in")
			return nil
		}
		return fmt.Errorf("failed to delete token: %w", err)
	}
	fmt.Println("로그아웃되었습니다")
	return nil
}
