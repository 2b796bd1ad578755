package commands_test

import (
	"context"
	"errors"
	"time"

	"github.com/stretchr/testify/mock"

	"barpos/internal/core/application/usecases/commands"
	"barpos/internal/core/domain/model/kernel"
	"barpos/internal/core/domain/model/menu"
	"barpos/internal/core/domain/model/order"
	"barpos/internal/core/domain/model/staff"
	"barpos/internal/core/domain/services"
	"barpos/internal/core/ports"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Remove(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) RemoveClosedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockStaffRepository struct{ mock.Mock }

func (m *MockStaffRepository) Add(ctx context.Context, u *staff.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockStaffRepository) Update(ctx context.Context, u *staff.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockStaffRepository) Get(ctx context.Context, id kernel.UUID) (*staff.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*staff.User), args.Error(1)
}

func (m *MockStaffRepository) GetByUsername(ctx context.Context, username string) (*staff.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*staff.User), args.Error(1)
}

func (m *MockStaffRepository) Remove(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockStaffUoW struct{ mock.Mock }

func (m *MockStaffUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStaffUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStaffUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockStaffUoW) StaffRepository() ports.StaffRepository {
	args := m.Called()
	return args.Get(0).(ports.StaffRepository)
}

type MockStaffUoWFactory struct{ mock.Mock }

func (m *MockStaffUoWFactory) Create() commands.StaffUoW {
	args := m.Called()
	return args.Get(0).(commands.StaffUoW)
}

type MockMenuRepository struct{ mock.Mock }

func (m *MockMenuRepository) AddCategory(ctx context.Context, c *menu.Category) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockMenuRepository) GetCategory(_ context.Context, _ kernel.UUID) (*menu.Category, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockMenuRepository) RemoveCategory(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMenuRepository) AddProduct(ctx context.Context, p *menu.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockMenuRepository) GetProduct(_ context.Context, _ kernel.UUID) (*menu.Product, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockMenuRepository) RemoveProduct(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockMenuUoW struct{ mock.Mock }

func (m *MockMenuUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMenuUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMenuUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockMenuUoW) MenuRepository() ports.MenuRepository {
	args := m.Called()
	return args.Get(0).(ports.MenuRepository)
}

type MockMenuUoWFactory struct{ mock.Mock }

func (m *MockMenuUoWFactory) Create() commands.MenuUoW {
	args := m.Called()
	return args.Get(0).(commands.MenuUoW)
}

// RecordingPublisher captures publications in order so tests can assert the
// exact fan-out a handler produced.
type RecordingPublisher struct {
	Publications []services.Publication
}

func (p *RecordingPublisher) Publish(publication services.Publication) {
	p.Publications = append(p.Publications, publication)
}
