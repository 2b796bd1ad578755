package commands

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"barpos/internal/core/domain/model/kernel"
	"barpos/internal/core/domain/model/staff"
	"barpos/internal/pkg/guard"
)

var (
	ErrRegisterStaffCommandIsNotConstructed = errors.New(
		"RegisterStaffCommand must be created via NewRegisterStaffCommand constructor",
	)
	ErrUsernameIsRequired = errors.New("username is required")
	ErrNameIsRequired     = errors.New("name is required")
	ErrPasswordIsTooShort = errors.New("password must be at least 6 characters")
)

const minPasswordLength = 6

// RegisterStaffCommand represents a request to create a staff account.
// The plaintext password lives only inside the command; the handler stores
// a bcrypt hash and the plaintext is never persisted.
type RegisterStaffCommand struct { //nolint:recvcheck //using for validation
	userID   kernel.UUID
	username string
	name     string
	password string
	role     staff.Role

	guard guard.ConstructorGuard
}

// NewRegisterStaffCommand creates a command to register a staff account.
// Validates identity, non-empty username and display name, minimum password
// length, and a known role.
func NewRegisterStaffCommand(
	userID kernel.UUID,
	username, name, password string,
	role staff.Role,
) (RegisterStaffCommand, error) {
	registerCommand := RegisterStaffCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		registerCommand.setUserID(userID),
		registerCommand.setUsername(username),
		registerCommand.setName(name),
		registerCommand.setPassword(password),
		registerCommand.setRole(role),
	); err != nil {
		return RegisterStaffCommand{}, err
	}

	return registerCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterStaffCommand) Validate() error {
	return c.guard.Validate(ErrRegisterStaffCommandIsNotConstructed)
}

// UserID returns the unique identifier for the new account.
func (c RegisterStaffCommand) UserID() kernel.UUID { return c.userID }

// Username returns the login name.
func (c RegisterStaffCommand) Username() string { return c.username }

// Name returns the display name.
func (c RegisterStaffCommand) Name() string { return c.name }

// Password returns the plaintext password.
func (c RegisterStaffCommand) Password() string { return c.password }

// Role returns the account's role.
func (c RegisterStaffCommand) Role() staff.Role { return c.role }

func (c *RegisterStaffCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	c.userID = userID
	return nil
}

func (c *RegisterStaffCommand) setUsername(username string) error {
	if username == "" {
		return ErrUsernameIsRequired
	}
	c.username = username
	return nil
}

func (c *RegisterStaffCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *RegisterStaffCommand) setPassword(password string) error {
	if len(password) < minPasswordLength {
		return ErrPasswordIsTooShort
	}
	c.password = password
	return nil
}

func (c *RegisterStaffCommand) setRole(role staff.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}

// RegisterStaffCommandHandler creates staff accounts. Hashes the password
// with bcrypt before the account ever reaches storage.
type RegisterStaffCommandHandler struct {
	uowFactory StaffUoWFactory
}

// NewRegisterStaffCommandHandler creates a handler for staff registration.
func NewRegisterStaffCommandHandler(uowFactory StaffUoWFactory) RegisterStaffCommandHandler {
	return RegisterStaffCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle registers the account and returns the stored user. A duplicate
// username surfaces as errs.ConflictError from the repository.
func (h *RegisterStaffCommandHandler) Handle(ctx context.Context, cmd RegisterStaffCommand) (*staff.User, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password()), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user, err := staff.NewUser(cmd.UserID(), cmd.Username(), cmd.Name(), string(hash), cmd.Role())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.StaffRepository().Add(ctx, user); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return user, nil
}
