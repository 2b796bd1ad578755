package commands

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"barpos/internal/core/domain/model/staff"
	"barpos/internal/pkg/errs"
	"barpos/internal/pkg/guard"
)

var (
	ErrAuthenticateStaffCommandIsNotConstructed = errors.New(
		"AuthenticateStaffCommand must be created via NewAuthenticateStaffCommand constructor",
	)

	// ErrInvalidCredentials covers both unknown usernames and wrong
	// passwords so a caller cannot probe which usernames exist.
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// AuthenticateStaffCommand represents a login attempt.
type AuthenticateStaffCommand struct { //nolint:recvcheck //using for validation
	username string
	password string

	guard guard.ConstructorGuard
}

// NewAuthenticateStaffCommand creates a login command.
func NewAuthenticateStaffCommand(username, password string) (AuthenticateStaffCommand, error) {
	authCommand := AuthenticateStaffCommand{
		guard: guard.NewConstructorGuard(),
	}

	if username == "" {
		return AuthenticateStaffCommand{}, ErrUsernameIsRequired
	}
	if password == "" {
		return AuthenticateStaffCommand{}, errs.NewValueIsRequiredError("password")
	}

	authCommand.username = username
	authCommand.password = password

	return authCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AuthenticateStaffCommand) Validate() error {
	return c.guard.Validate(ErrAuthenticateStaffCommandIsNotConstructed)
}

// Username returns the login name.
func (c AuthenticateStaffCommand) Username() string { return c.username }

// Password returns the plaintext password.
func (c AuthenticateStaffCommand) Password() string { return c.password }

// AuthenticateStaffCommandHandler verifies login credentials against the
// stored bcrypt hash.
type AuthenticateStaffCommandHandler struct {
	uowFactory StaffUoWFactory
}

// NewAuthenticateStaffCommandHandler creates a handler for login attempts.
func NewAuthenticateStaffCommandHandler(uowFactory StaffUoWFactory) AuthenticateStaffCommandHandler {
	return AuthenticateStaffCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle verifies the credentials and returns the account on success.
// Unknown usernames and wrong passwords both return ErrInvalidCredentials.
func (h *AuthenticateStaffCommandHandler) Handle(
	ctx context.Context,
	cmd AuthenticateStaffCommand,
) (*staff.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	user, err := uow.StaffRepository().GetByUsername(ctx, cmd.Username())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.CredentialHash()), []byte(cmd.Password())); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
