// Package console drives the interactive text menus of the coworking manager.
package console

import (
	"bufio"
	"context"
	"coworking/infras/otel"
	bookingService "coworking/internal/domains/booking/service"
	resourceService "coworking/internal/domains/resource/service"
	userModel "coworking/internal/domains/user/model"
	userService "coworking/internal/domains/user/service"
	"coworking/shared/constant"
	"coworking/shared/logger"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	msgWelcome       = "Welcome to the coworking space manager!"
	msgInvalidChoice = "Invalid choice, please try again."
	msgNotANumber    = "Invalid input! Please enter a number."
	msgNoAccess      = "Access denied."
	separator        = "+--------------------------+"
)

// errExit ends the session on the user's request.
var errExit = errors.New("exit requested")

type Console struct {
	users     userService.User
	resources resourceService.Resource
	bookings  bookingService.Booking
	otel      otel.Otel

	in      *bufio.Scanner
	out     io.Writer
	log     zerolog.Logger
	current *userModel.User
}

func New(
	users userService.User,
	resources resourceService.Resource,
	bookings bookingService.Booking,
	otel otel.Otel,
) *Console {
	return &Console{
		users:     users,
		resources: resources,
		bookings:  bookings,
		otel:      otel,
	}
}

// Run serves one session reading commands from in until the user exits or the input ends.
func (c *Console) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	c.in = bufio.NewScanner(in)
	c.out = out
	c.current = nil
	c.log = logger.Session(uuid.NewString())

	c.log.Info().Msg("console session started")
	defer c.log.Info().Msg("console session ended")

	c.println(msgWelcome)
	c.println(separator)

	for {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("console session interrupted: %w", err)
		}

		var err error
		if c.current == nil {
			err = c.loginMenu(ctx)
		} else {
			err = c.mainMenu(ctx)
		}

		switch {
		case err == nil:
		case errors.Is(err, errExit), errors.Is(err, io.EOF):
			return nil
		default:
			return err
		}
	}
}

func (c *Console) loginMenu(ctx context.Context) error {
	c.println("1. Register")
	c.println("2. Log in")
	c.println("3. Exit")

	choice, err := c.choice()
	if err != nil {
		return err
	}

	switch choice {
	case 1:
		return c.register(ctx)
	case 2:
		return c.login(ctx)
	case 3:
		return errExit
	default:
		c.println(msgInvalidChoice)
	}

	return nil
}

func (c *Console) mainMenu(ctx context.Context) error {
	c.println("1. List all workspaces and conference rooms")
	c.println("2. Book a resource")
	c.println("3. My bookings")
	c.println("4. Cancel a booking")
	c.println("5. All bookings (admin)")
	c.println("6. Manage resources (admin)")
	c.println("7. Log out")

	choice, err := c.choice()
	if err != nil {
		return err
	}

	switch choice {
	case 1:
		c.listResources(ctx)
	case 2:
		return c.book(ctx)
	case 3:
		c.myBookings(ctx)
	case 4:
		return c.cancel(ctx)
	case 5:
		if !c.current.Admin {
			c.println(msgNoAccess)

			return nil
		}

		return c.allBookings(ctx)
	case 6:
		if !c.current.Admin {
			c.println(msgNoAccess)

			return nil
		}

		return c.manageResources(ctx)
	case 7:
		c.log.Info().Str("username", c.current.Username).Msg("user logged out")
		c.current = nil
	default:
		c.println(msgInvalidChoice)
	}

	return nil
}

func (c *Console) scope(ctx context.Context, name string) (context.Context, otel.Scope) {
	return c.otel.NewScope(ctx, constant.OtelConsoleScopeName, constant.OtelConsoleScopeName+"."+name)
}

// readLine returns the next input line, or io.EOF once the input is exhausted.
func (c *Console) readLine() (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}

		return "", io.EOF
	}

	return c.in.Text(), nil
}

func (c *Console) ask(prompt string) (string, error) {
	c.println(prompt)

	return c.readLine()
}

// choice reads a menu number. Non numeric input yields 0, which no menu accepts.
func (c *Console) choice() (int, error) {
	line, err := c.readLine()
	if err != nil {
		return 0, err
	}

	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		c.println(msgNotANumber)

		return 0, nil
	}

	return n, nil
}

// askID prompts until a positive number is entered.
func (c *Console) askID(prompt string) (int64, error) {
	for {
		line, err := c.ask(prompt)
		if err != nil {
			return 0, err
		}

		id, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
		if err == nil && id > 0 {
			return id, nil
		}

		c.println("Invalid input! Please enter a numeric ID.")
	}
}

func (c *Console) println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}
