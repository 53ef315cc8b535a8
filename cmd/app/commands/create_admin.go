package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	authDomain "github.com/xapps/user-management-service/internal/auth/domain"
	userDomain "github.com/xapps/user-management-service/internal/user/domain"
	userUseCase "github.com/xapps/user-management-service/internal/user/usecase"
)

// RunCreateAdmin creates a user account holding the Administrator role.
//
// Role escalation normally requires an authenticated administrator, which is a
// chicken-and-egg problem for the very first account. This command acts under a
// synthetic administrator principal so the bootstrap account can be created
// from the operator's shell. The password is never echoed back.
//
// Requirements: Database must be migrated and accessible.
func RunCreateAdmin(
	ctx context.Context,
	useCase userUseCase.UserUseCase,
	logger *slog.Logger,
	writer io.Writer,
	email string,
	firstName string,
	lastName string,
	password string,
	format string,
) error {
	logger.Info("creating administrator account", slog.String("email", email))

	input := &userDomain.CreateUserInput{
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		Password:  password,
		Roles:     []string{userDomain.RoleAdministrator},
	}

	// Bootstrap principal: acts as an administrator without a backing account.
	bootstrap := &authDomain.Principal{
		Email: "system@localhost",
		Roles: []string{userDomain.RoleAdministrator},
	}

	user, err := useCase.Create(ctx, bootstrap, input)
	if err != nil {
		return fmt.Errorf("failed to create administrator: %w", err)
	}

	if format == "json" {
		outputCreateAdminJSON(writer, user)
	} else {
		outputCreateAdminText(writer, user)
	}

	logger.Info("administrator created successfully",
		slog.String("user_id", user.ID.String()),
		slog.String("email", user.Email),
	)

	return nil
}

// outputCreateAdminText outputs the result in human-readable text format.
func outputCreateAdminText(writer io.Writer, user *userDomain.User) {
	_, _ = fmt.Fprintf(writer, "Administrator created\n")
	_, _ = fmt.Fprintf(writer, "ID:    %s\n", user.ID)
	_, _ = fmt.Fprintf(writer, "Email: %s\n", user.Email)
	_, _ = fmt.Fprintf(writer, "Roles: %v\n", user.RoleNames())
}

// outputCreateAdminJSON outputs the result in JSON format for machine consumption.
func outputCreateAdminJSON(writer io.Writer, user *userDomain.User) {
	result := map[string]interface{}{
		"id":    user.ID.String(),
		"email": user.Email,
		"roles": user.RoleNames(),
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		_, _ = fmt.Fprintf(writer, "failed to marshal JSON: %v\n", err)
		return
	}

	_, _ = fmt.Fprintln(writer, string(jsonBytes))
}
