package staff

import (
	"errors"
	"time"

	"barpos/internal/core/domain/model/kernel"
	"barpos/internal/pkg/errs"
)

var (
	// ErrUserIsNotConstructed is returned when a User instance was not
	// created through the NewUser or RestoreUser factory methods.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")
)

// User represents a staff member with credentials and a role.
//
// User maintains these invariants:
//   - Valid unique identifier
//   - Non-empty unique username (uniqueness enforced by the store)
//   - Non-empty display name and credential hash
//   - A valid role; role changes go through ChangeRole
type User struct {
	id             kernel.UUID
	username       string
	name           string
	credentialHash string
	role           Role
	createdAt      time.Time

	isConstructed bool
}

// NewUser creates a new staff user with the current UTC time as its
// creation timestamp. credentialHash is the already-hashed password;
// hashing happens in the application layer.
func NewUser(id kernel.UUID, username, name, credentialHash string, role Role) (*User, error) {
	u := &User{
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setUsername(username),
		u.setName(name),
		u.setCredentialHash(credentialHash),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser reconstructs a User from persisted state.
func RestoreUser(
	id kernel.UUID,
	username, name, credentialHash string,
	role Role,
	createdAt time.Time,
) (*User, error) {
	u := &User{
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setUsername(username),
		u.setName(name),
		u.setCredentialHash(credentialHash),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	if createdAt.IsZero() {
		return nil, errs.NewValueIsRequiredError("createdAt")
	}
	u.createdAt = createdAt

	return u, nil
}

// Validate ensures the User instance was properly constructed.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the user's unique identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Username returns the unique login name.
func (u *User) Username() string {
	return u.username
}

// Name returns the display name.
func (u *User) Name() string {
	return u.name
}

// CredentialHash returns the opaque password hash.
func (u *User) CredentialHash() string {
	return u.credentialHash
}

// Role returns the user's current role.
func (u *User) Role() Role {
	return u.role
}

// CreatedAt returns the immutable creation timestamp (UTC).
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// ChangeRole moves the user to a new role.
// Returns an error if the role is invalid; the user is unchanged.
func (u *User) ChangeRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setUsername(username string) error {
	if username == "" {
		return errs.NewValueIsRequiredError("username")
	}
	u.username = username
	return nil
}

func (u *User) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	u.name = name
	return nil
}

func (u *User) setCredentialHash(credentialHash string) error {
	if credentialHash == "" {
		return errs.NewValueIsRequiredError("credentialHash")
	}
	u.credentialHash = credentialHash
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
