package console

import (
	"context"
	"coworking/internal/domains/user/model/dto"
	"coworking/shared/failure"
	"net/http"
)

func (c *Console) register(ctx context.Context) error {
	ctx, scope := c.scope(ctx, "register")
	defer scope.End()

	for {
		username, err := c.ask("Enter username:")
		if err != nil {
			return err
		}

		password, err := c.ask("Enter password:")
		if err != nil {
			return err
		}

		user, err := c.users.Register(ctx, dto.RegisterRequest{Username: username, Password: password})

		switch {
		case err == nil:
			c.log.Info().Str("username", user.Username).Bool("admin", user.Admin).Msg("user registered from console")
			c.println("Registration completed successfully!")
			c.println()

			return nil
		case failure.HasCode(err, http.StatusBadRequest):
			c.println("Username and password cannot be empty. Please try again!")
			c.println()
		default:
			c.println("A user with this name already exists. Please try again!")
			c.println()

			return nil
		}
	}
}

func (c *Console) login(ctx context.Context) error {
	ctx, scope := c.scope(ctx, "login")
	defer scope.End()

	username, err := c.ask("Enter username:")
	if err != nil {
		return err
	}

	password, err := c.ask("Enter password:")
	if err != nil {
		return err
	}

	user, err := c.users.Authenticate(ctx, username, password)
	if err != nil {
		c.println("Invalid username or password. Please try again!")
		c.println()

		return nil
	}

	c.current = &user
	c.log.Info().Str("username", user.Username).Msg("user logged in")

	c.println("Logged in successfully!")
	c.println()

	return nil
}
