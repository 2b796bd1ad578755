package commands_test

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"barpos/internal/core/application/usecases/commands"
	"barpos/internal/core/domain/model/kernel"
	"barpos/internal/core/domain/model/staff"
	"barpos/internal/pkg/errs"
)

func TestRegisterStaffCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterStaffCommand(
		kernel.NewUUID(), "anna", "Anna K", "s3cret-pw", staff.RoleWaiter,
	)
	require.NoError(t, err)

	repo := new(MockStaffRepository)
	uow := new(MockStaffUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StaffRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*staff.User")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStaffUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterStaffCommandHandler(factory)
	user, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, "anna", user.Username())
	require.Equal(t, staff.RoleWaiter, user.Role())

	// the stored hash verifies against the plaintext and is not the plaintext
	require.NotEqual(t, "s3cret-pw", user.CredentialHash())
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.CredentialHash()), []byte("s3cret-pw")))

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRegisterStaffCommandHandler_Handle_DuplicateUsername(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewRegisterStaffCommand(
		kernel.NewUUID(), "anna", "Anna K", "s3cret-pw", staff.RoleWaiter,
	)
	require.NoError(t, err)

	repo := new(MockStaffRepository)
	uow := new(MockStaffUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StaffRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*staff.User")).
			Return(errs.NewConflictError("username")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStaffUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRegisterStaffCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrConflict)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestNewRegisterStaffCommand_Validation(t *testing.T) {
	id := kernel.NewUUID()

	_, err := commands.NewRegisterStaffCommand(id, "", "Anna K", "s3cret-pw", staff.RoleWaiter)
	require.ErrorIs(t, err, commands.ErrUsernameIsRequired)

	_, err = commands.NewRegisterStaffCommand(id, "anna", "Anna K", "short", staff.RoleWaiter)
	require.ErrorIs(t, err, commands.ErrPasswordIsTooShort)

	_, err = commands.NewRegisterStaffCommand(id, "anna", "Anna K", "s3cret-pw", staff.RoleUnknown)
	require.Error(t, err)
}

func TestChangeStaffRoleCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	existing, err := staff.NewUser(kernel.NewUUID(), "bo", "Bo L", "$2a$10$hash", staff.RoleWaiter)
	require.NoError(t, err)

	cmd, err := commands.NewChangeStaffRoleCommand(existing.ID(), staff.RoleManager)
	require.NoError(t, err)

	repo := new(MockStaffRepository)
	uow := new(MockStaffUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StaffRepository").Return(repo).Once(),
		repo.On("Get", mock.Anything, existing.ID()).Return(existing, nil).Once(),
		repo.On("Update", mock.Anything, existing).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStaffUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewChangeStaffRoleCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, staff.RoleManager, updated.Role())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRemoveStaffCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewRemoveStaffCommand(id)
	require.NoError(t, err)

	repo := new(MockStaffRepository)
	uow := new(MockStaffUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StaffRepository").Return(repo).Once(),
		repo.On("Remove", mock.Anything, id).
			Return(errs.NewObjectNotFoundError("userID", id)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStaffUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRemoveStaffCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}
