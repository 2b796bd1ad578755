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

func hashedUser(t *testing.T, password string) *staff.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	user, err := staff.NewUser(kernel.NewUUID(), "dana", "Dana M", string(hash), staff.RoleManager)
	require.NoError(t, err)
	return user
}

func TestAuthenticateStaffCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	existing := hashedUser(t, "good-password")
	cmd, err := commands.NewAuthenticateStaffCommand("dana", "good-password")
	require.NoError(t, err)

	repo := new(MockStaffRepository)
	uow := new(MockStaffUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StaffRepository").Return(repo).Once(),
		repo.On("GetByUsername", mock.Anything, "dana").Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStaffUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAuthenticateStaffCommandHandler(factory)
	user, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, "dana", user.Username())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestAuthenticateStaffCommandHandler_Handle_WrongPassword(t *testing.T) {
	ctx := t.Context()
	existing := hashedUser(t, "good-password")
	cmd, err := commands.NewAuthenticateStaffCommand("dana", "bad-password")
	require.NoError(t, err)

	repo := new(MockStaffRepository)
	uow := new(MockStaffUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StaffRepository").Return(repo).Once(),
		repo.On("GetByUsername", mock.Anything, "dana").Return(existing, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStaffUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAuthenticateStaffCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrInvalidCredentials)
}

func TestAuthenticateStaffCommandHandler_Handle_UnknownUsernameIsIndistinguishable(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewAuthenticateStaffCommand("ghost", "whatever-pw")
	require.NoError(t, err)

	repo := new(MockStaffRepository)
	uow := new(MockStaffUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("StaffRepository").Return(repo).Once(),
		repo.On("GetByUsername", mock.Anything, "ghost").
			Return(nil, errs.NewObjectNotFoundError("username", "ghost")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockStaffUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewAuthenticateStaffCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrInvalidCredentials)
	require.NotErrorIs(t, err, errs.ErrObjectNotFound)
}
