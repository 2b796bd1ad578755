package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"barpos/internal/core/application/usecases/commands"
	"barpos/internal/core/domain/model/kernel"
	"barpos/internal/core/domain/model/order"
	"barpos/internal/core/domain/services"
	"barpos/internal/core/ports"
	"barpos/internal/pkg/errs"
)

// memoryOrderRepository is a map-backed fake for the happy-path lifecycle
// scenario, where mock choreography would obscure what is being checked.
type memoryOrderRepository struct {
	mu     sync.Mutex
	orders map[string]*order.Order
}

func newMemoryOrderRepository() *memoryOrderRepository {
	return &memoryOrderRepository{orders: make(map[string]*order.Order)}
}

func (r *memoryOrderRepository) Add(_ context.Context, o *order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[o.ID().String()] = o
	return nil
}

func (r *memoryOrderRepository) Update(_ context.Context, o *order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[o.ID().String()] = o
	return nil
}

func (r *memoryOrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("orderID", id)
	}
	return o, nil
}

func (r *memoryOrderRepository) Remove(_ context.Context, id kernel.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.orders[id.String()]; !ok {
		return errs.NewObjectNotFoundError("orderID", id)
	}
	delete(r.orders, id.String())
	return nil
}

func (r *memoryOrderRepository) RemoveClosedBefore(context.Context, time.Time) (int64, error) {
	return 0, nil
}

type memoryOrderUoW struct {
	repo *memoryOrderRepository
}

func (u *memoryOrderUoW) Begin(context.Context) error            { return nil }
func (u *memoryOrderUoW) Commit(context.Context) error           { return nil }
func (u *memoryOrderUoW) Rollback(context.Context) error         { return nil }
func (u *memoryOrderUoW) OrderRepository() ports.OrderRepository { return u.repo }

type memoryOrderUoWFactory struct {
	uow *memoryOrderUoW
}

func (f *memoryOrderUoWFactory) Create() commands.OrderUoW { return f.uow }

func TestOrderLifecycle_PlaceThenAdvanceToDelivered(t *testing.T) {
	ctx := t.Context()
	factory := &memoryOrderUoWFactory{uow: &memoryOrderUoW{repo: newMemoryOrderRepository()}}
	router := services.NewAudienceRouter()
	publisher := new(RecordingPublisher)

	placeHandler := commands.NewPlaceOrderCommandHandler(factory, router, publisher)
	statusHandler := commands.NewChangeOrderStatusCommandHandler(factory, router, publisher)

	table, err := kernel.NewTableNumber(6)
	require.NoError(t, err)
	item, err := order.NewItem("lager", 2)
	require.NoError(t, err)

	placeCmd, err := commands.NewPlaceOrderCommand(kernel.NewUUID(), table, []order.Item{item})
	require.NoError(t, err)
	placed, err := placeHandler.Handle(ctx, placeCmd)
	require.NoError(t, err)
	require.Equal(t, order.Pending, placed.Status())

	for _, target := range []order.Status{order.Preparing, order.Ready, order.Delivered} {
		cmd, err := commands.NewChangeOrderStatusCommand(placed.ID(), target)
		require.NoError(t, err)
		updated, _, err := statusHandler.Handle(ctx, cmd)
		require.NoError(t, err)
		require.Equal(t, target, updated.Status())
	}

	stored, err := factory.uow.repo.Get(ctx, placed.ID())
	require.NoError(t, err)
	require.Equal(t, order.Delivered, stored.Status())

	// 5 creation events plus 3 per transition, completion included
	require.Len(t, publisher.Publications, 5+3*3)

	last := publisher.Publications[len(publisher.Publications)-1]
	require.Equal(t, services.Channel("table-6"), last.Channel)
	require.Equal(t, services.EventOrderCompleted, last.Event)
}
