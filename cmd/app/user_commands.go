package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/xapps/user-management-service/cmd/app/commands"
	"github.com/xapps/user-management-service/internal/app"
	"github.com/xapps/user-management-service/internal/config"
)

func getUserCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "create-admin",
			Usage: "Create a user account with the Administrator role",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "email",
					Aliases:  []string{"e"},
					Required: true,
					Usage:    "Email address for the administrator account",
				},
				&cli.StringFlag{
					Name:     "first-name",
					Required: true,
					Usage:    "First name",
				},
				&cli.StringFlag{
					Name:     "last-name",
					Required: true,
					Usage:    "Last name",
				},
				&cli.StringFlag{
					Name:     "password",
					Aliases:  []string{"p"},
					Required: true,
					Usage:    "Plain text password (hashed before storage)",
				},
				&cli.StringFlag{
					Name:    "format",
					Aliases: []string{"f"},
					Value:   "text",
					Usage:   "Output format: 'text' or 'json'",
				},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(ctx) }()

				userUseCase, err := container.UserUseCase()
				if err != nil {
					return err
				}

				return commands.RunCreateAdmin(
					ctx,
					userUseCase,
					container.Logger(),
					commands.DefaultIO().Writer,
					cmd.String("email"),
					cmd.String("first-name"),
					cmd.String("last-name"),
					cmd.String("password"),
					cmd.String("format"),
				)
			},
		},
	}
}
