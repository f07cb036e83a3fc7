package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	authentity "github.com/Jangel21/restaurante-app/src/auth/domain/entity"
	menuentity "github.com/Jangel21/restaurante-app/src/menu/domain/entity"
	"github.com/Jangel21/restaurante-app/src/order/application/request"
	"github.com/Jangel21/restaurante-app/src/order/domain/entity"
	"github.com/Jangel21/restaurante-app/src/order/domain/port"
)

// fakeMenuRepo sirve el catálogo desde un mapa en memoria.
// findErr fuerza una falla de infraestructura en FindByID.
type fakeMenuRepo struct {
	items   map[uuid.UUID]*menuentity.MenuItem
	findErr error
}

func newFakeMenuRepo(items ...*menuentity.MenuItem) *fakeMenuRepo {
	repo := &fakeMenuRepo{items: map[uuid.UUID]*menuentity.MenuItem{}}
	for _, item := range items {
		repo.items[item.ID] = item
	}
	return repo
}

func (r *fakeMenuRepo) List(ctx context.Context, category string) ([]*menuentity.MenuItem, error) {
	var out []*menuentity.MenuItem
	for _, item := range r.items {
		out = append(out, item)
	}
	return out, nil
}

func (r *fakeMenuRepo) FindByID(ctx context.Context, id uuid.UUID) (*menuentity.MenuItem, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	item, ok := r.items[id]
	if !ok {
		return nil, menuentity.ErrMenuItemNotFound
	}
	return item, nil
}

func (r *fakeMenuRepo) Save(ctx context.Context, item *menuentity.MenuItem) error {
	r.items[item.ID] = item
	return nil
}

func (r *fakeMenuRepo) Update(ctx context.Context, item *menuentity.MenuItem) error {
	r.items[item.ID] = item
	return nil
}

func (r *fakeMenuRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.items, id)
	return nil
}

func (r *fakeMenuRepo) Categories(ctx context.Context) ([]string, error) {
	return nil, nil
}

// fakeOrderRepo guarda las órdenes en memoria y reproduce el contrato del
// repositorio real: mutaciones que cargan, aplican el callback y persisten
// solo si el callback no falló, y un contador de tickets serializado, por
// lo que las creaciones concurrentes reciben números únicos.
type fakeOrderRepo struct {
	mu         sync.Mutex
	orders     map[uuid.UUID]*entity.Order
	nextTicket int64
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[uuid.UUID]*entity.Order{}}
}

func (r *fakeOrderRepo) Create(ctx context.Context, order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextTicket++
	order.TicketNumber = r.nextTicket
	copied := *order
	r.orders[order.ID] = &copied
	return nil
}

func (r *fakeOrderRepo) FindByID(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[orderID]
	if !ok {
		return nil, entity.ErrOrderNotFound
	}
	copied := *order
	return &copied, nil
}

func (r *fakeOrderRepo) List(ctx context.Context, filter port.ListFilter) ([]*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*entity.Order
	for _, order := range r.orders {
		if filter.Status != "" && order.Status != filter.Status {
			continue
		}
		out = append(out, order)
	}
	return out, nil
}

func (r *fakeOrderRepo) mutateOrder(orderID uuid.UUID, mutate func(*entity.Order) error) (*entity.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[orderID]
	if !ok {
		return nil, entity.ErrOrderNotFound
	}
	copied := *order
	copied.Items = append([]entity.OrderItem(nil), order.Items...)
	if err := mutate(&copied); err != nil {
		return nil, err
	}
	r.orders[orderID] = &copied
	return &copied, nil
}

func (r *fakeOrderRepo) UpdateItems(ctx context.Context, orderID uuid.UUID, mutate func(*entity.Order) error) (*entity.Order, error) {
	return r.mutateOrder(orderID, mutate)
}

func (r *fakeOrderRepo) Complete(ctx context.Context, orderID uuid.UUID, mutate func(*entity.Order) error) (*entity.Order, error) {
	return r.mutateOrder(orderID, mutate)
}

func (r *fakeOrderRepo) Cancel(ctx context.Context, orderID uuid.UUID, mutate func(*entity.Order) error) (*entity.Order, error) {
	return r.mutateOrder(orderID, mutate)
}

func (r *fakeOrderRepo) MarkPrinted(ctx context.Context, orderID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[orderID]
	if !ok {
		return entity.ErrOrderNotFound
	}
	order.Printed = true
	return nil
}

// fakePublisher captura los eventos publicados.
type fakePublisher struct {
	published []*entity.Order
	fail      bool
}

func (p *fakePublisher) PublishOrderCompleted(ctx context.Context, order *entity.Order) error {
	if p.fail {
		return errors.New("broker caído")
	}
	p.published = append(p.published, order)
	return nil
}

// fakeRenderer simula la generación del PDF.
type fakeRenderer struct {
	rendered []*entity.Order
	err      error
}

func (r *fakeRenderer) Render(order *entity.Order) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	r.rendered = append(r.rendered, order)
	return "tickets/" + order.TicketFilename(), nil
}

func mustMenuItem(t *testing.T, name, price string, available bool) *menuentity.MenuItem {
	t.Helper()
	item, err := menuentity.NewMenuItem(name, decimal.RequireFromString(price), "Platos Fuertes", "", "", available)
	if err != nil {
		t.Fatalf("NewMenuItem(%s): %v", name, err)
	}
	return item
}

func asAdmin() authentity.Principal {
	return authentity.Principal{UserID: uuid.New(), Username: "admin", Role: authentity.RoleAdmin}
}

func asWaiter() authentity.Principal {
	return authentity.Principal{UserID: uuid.New(), Username: "mesero1", Role: authentity.RoleWaiter}
}

func TestCreateOrder(t *testing.T) {
	tacos := mustMenuItem(t, "Tacos al Pastor", "45.00", true)
	agua := mustMenuItem(t, "Agua de Horchata", "25.00", true)

	orderRepo := newFakeOrderRepo()
	uc := NewCreateOrderUseCase(orderRepo, newFakeMenuRepo(tacos, agua))

	order, err := uc.Execute(context.Background(), asWaiter(), &request.CreateOrderRequest{
		CustomerName: "Ana",
		Items: []request.OrderItemRequest{
			{MenuItemID: tacos.ID, Quantity: 2},
			{MenuItemID: agua.ID, Quantity: 1, Notes: "sin hielo"},
		},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if order.TicketNumber != 1 {
		t.Errorf("ticket_number = %d, quería 1", order.TicketNumber)
	}
	if !order.Total.Equal(decimal.RequireFromString("133.40")) {
		t.Errorf("total = %s, quería 133.40", order.Total)
	}
	if !order.Items[0].UnitPrice.Equal(tacos.Price) {
		t.Errorf("unit_price = %s, quería el precio del menú %s", order.Items[0].UnitPrice, tacos.Price)
	}

	stored, err := orderRepo.FindByID(context.Background(), order.ID)
	if err != nil {
		t.Fatalf("la orden no quedó persistida: %v", err)
	}
	if stored.Status != entity.OrderStatusOpen {
		t.Errorf("status = %q, quería open", stored.Status)
	}
}

func TestCreateOrderUnavailableItemAbortsBatch(t *testing.T) {
	tacos := mustMenuItem(t, "Tacos al Pastor", "45.00", true)
	agotado := mustMenuItem(t, "Pozole Rojo", "70.00", false)

	orderRepo := newFakeOrderRepo()
	uc := NewCreateOrderUseCase(orderRepo, newFakeMenuRepo(tacos, agotado))

	_, err := uc.Execute(context.Background(), asAdmin(), &request.CreateOrderRequest{
		Items: []request.OrderItemRequest{
			{MenuItemID: tacos.ID, Quantity: 1},
			{MenuItemID: agotado.ID, Quantity: 1},
		},
	})
	if !errors.Is(err, entity.ErrProductUnavailable) {
		t.Fatalf("Execute() error = %v, quería ErrProductUnavailable", err)
	}

	// Todo o nada: no debe quedar ninguna orden parcial
	if len(orderRepo.orders) != 0 {
		t.Fatalf("quedaron %d órdenes persistidas", len(orderRepo.orders))
	}
}

// Una falla de infraestructura al resolver el menú no es un producto no
// disponible: debe propagarse como error genérico, no como rechazo 400.
func TestCreateOrderMenuRepoFailurePropagates(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	menuRepo := newFakeMenuRepo()
	menuRepo.findErr = errors.New("connection refused")

	uc := NewCreateOrderUseCase(orderRepo, menuRepo)
	_, err := uc.Execute(context.Background(), asAdmin(), &request.CreateOrderRequest{
		Items: []request.OrderItemRequest{{MenuItemID: uuid.New(), Quantity: 1}},
	})
	if err == nil {
		t.Fatal("Execute() debía fallar con el repositorio caído")
	}
	if errors.Is(err, entity.ErrProductUnavailable) {
		t.Fatalf("una falla del repositorio no debe reportarse como producto no disponible: %v", err)
	}
	if len(orderRepo.orders) != 0 {
		t.Fatalf("quedaron %d órdenes persistidas", len(orderRepo.orders))
	}
}

// N creaciones concurrentes reciben números de ticket únicos y
// consecutivos desde 1: el contrato del contador de tickets.
func TestCreateOrderConcurrentTicketNumbers(t *testing.T) {
	const n = 25

	tacos := mustMenuItem(t, "Tacos al Pastor", "45.00", true)
	orderRepo := newFakeOrderRepo()
	uc := NewCreateOrderUseCase(orderRepo, newFakeMenuRepo(tacos))

	tickets := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			order, err := uc.Execute(context.Background(), asAdmin(), &request.CreateOrderRequest{
				Items: []request.OrderItemRequest{{MenuItemID: tacos.ID, Quantity: 1}},
			})
			if err != nil {
				t.Errorf("Execute: %v", err)
				return
			}
			tickets <- order.TicketNumber
		}()
	}
	wg.Wait()
	close(tickets)

	seen := map[int64]bool{}
	for number := range tickets {
		if seen[number] {
			t.Fatalf("número de ticket repetido: %d", number)
		}
		seen[number] = true
	}
	for want := int64(1); want <= n; want++ {
		if !seen[want] {
			t.Fatalf("falta el número de ticket %d; asignados: %v", want, seen)
		}
	}
}

func TestCreateOrderForbiddenRole(t *testing.T) {
	uc := NewCreateOrderUseCase(newFakeOrderRepo(), newFakeMenuRepo())
	principal := authentity.Principal{UserID: uuid.New(), Username: "nadie", Role: authentity.Role("guest")}

	if _, err := uc.Execute(context.Background(), principal, &request.CreateOrderRequest{}); !errors.Is(err, authentity.ErrForbidden) {
		t.Fatalf("Execute() error = %v, quería ErrForbidden", err)
	}
}

func seedOpenOrder(t *testing.T, repo *fakeOrderRepo, items ...entity.OrderItem) *entity.Order {
	t.Helper()
	order, err := entity.NewOrder("Ana", entity.OrderTypeLocal, "", "", uuid.New())
	if err != nil {
		t.Fatalf("NewOrder: %v", err)
	}
	if len(items) > 0 {
		if err := order.AddItems(items); err != nil {
			t.Fatalf("AddItems: %v", err)
		}
	}
	if err := repo.Create(context.Background(), order); err != nil {
		t.Fatalf("Create: %v", err)
	}
	return order
}

func TestAddItems(t *testing.T) {
	tacos := mustMenuItem(t, "Tacos al Pastor", "45.00", true)
	orderRepo := newFakeOrderRepo()
	order := seedOpenOrder(t, orderRepo)

	uc := NewAddItemsUseCase(orderRepo, newFakeMenuRepo(tacos))

	updated, err := uc.Execute(context.Background(), asWaiter(), order.ID, &request.AddItemsRequest{
		Items: []request.OrderItemRequest{{MenuItemID: tacos.ID, Quantity: 2}},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(updated.Items) != 1 || !updated.Total.Equal(decimal.RequireFromString("104.40")) {
		t.Fatalf("items = %d, total = %s", len(updated.Items), updated.Total)
	}
}

func TestAddItemsEmptyBatch(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	order := seedOpenOrder(t, orderRepo)

	uc := NewAddItemsUseCase(orderRepo, newFakeMenuRepo())
	if _, err := uc.Execute(context.Background(), asAdmin(), order.ID, &request.AddItemsRequest{}); !errors.Is(err, entity.ErrItemsRequired) {
		t.Fatalf("Execute() error = %v, quería ErrItemsRequired", err)
	}
}

func TestAddItemsUnavailableLeavesOrderUntouched(t *testing.T) {
	tacos := mustMenuItem(t, "Tacos al Pastor", "45.00", true)
	orderRepo := newFakeOrderRepo()

	initial, err := entity.NewOrderItem(uuid.Nil, tacos.ID, tacos.Name, tacos.Price, 1, "")
	if err != nil {
		t.Fatalf("NewOrderItem: %v", err)
	}
	order := seedOpenOrder(t, orderRepo, *initial)

	uc := NewAddItemsUseCase(orderRepo, newFakeMenuRepo(tacos))
	_, err = uc.Execute(context.Background(), asAdmin(), order.ID, &request.AddItemsRequest{
		Items: []request.OrderItemRequest{
			{MenuItemID: tacos.ID, Quantity: 1},
			{MenuItemID: uuid.New(), Quantity: 1}, // no existe en el menú
		},
	})
	if !errors.Is(err, entity.ErrProductUnavailable) {
		t.Fatalf("Execute() error = %v, quería ErrProductUnavailable", err)
	}

	stored, _ := orderRepo.FindByID(context.Background(), order.ID)
	if len(stored.Items) != 1 {
		t.Fatalf("el lote fallido modificó la orden: %d líneas", len(stored.Items))
	}
}

func TestUpdateAndRemoveItem(t *testing.T) {
	tacos := mustMenuItem(t, "Tacos al Pastor", "45.00", true)
	orderRepo := newFakeOrderRepo()

	line, err := entity.NewOrderItem(uuid.Nil, tacos.ID, tacos.Name, tacos.Price, 2, "")
	if err != nil {
		t.Fatalf("NewOrderItem: %v", err)
	}
	order := seedOpenOrder(t, orderRepo, *line)

	qty := 3
	updateUC := NewUpdateItemUseCase(orderRepo)
	updated, err := updateUC.Execute(context.Background(), asAdmin(), order.ID, line.ID, &request.UpdateItemRequest{Quantity: &qty})
	if err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
	if !updated.Total.Equal(decimal.RequireFromString("156.60")) {
		t.Fatalf("total tras actualizar = %s", updated.Total)
	}

	removeUC := NewRemoveItemUseCase(orderRepo)
	emptied, err := removeUC.Execute(context.Background(), asAdmin(), order.ID, line.ID)
	if err != nil {
		t.Fatalf("RemoveItem: %v", err)
	}
	if len(emptied.Items) != 0 || !emptied.Total.IsZero() {
		t.Fatalf("items = %d, total = %s", len(emptied.Items), emptied.Total)
	}

	if _, err := removeUC.Execute(context.Background(), asAdmin(), order.ID, line.ID); !errors.Is(err, entity.ErrOrderItemNotFound) {
		t.Fatalf("RemoveItem repetido: %v", err)
	}
}

func TestCompleteOrder(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	order := seedOpenOrder(t, orderRepo)
	publisher := &fakePublisher{}

	uc := NewCompleteOrderUseCase(orderRepo, publisher)
	completed, err := uc.Execute(context.Background(), asAdmin(), order.ID, &request.CompleteOrderRequest{PaymentMethod: "card"})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if completed.Status != entity.OrderStatusCompleted || completed.PaymentMethod != entity.PaymentCard {
		t.Fatalf("status = %q, payment = %q", completed.Status, completed.PaymentMethod)
	}
	if len(publisher.published) != 1 {
		t.Fatalf("eventos publicados = %d, quería 1", len(publisher.published))
	}

	// Completar dos veces es conflicto de estado
	if _, err := uc.Execute(context.Background(), asAdmin(), order.ID, &request.CompleteOrderRequest{}); !errors.Is(err, entity.ErrOrderNotOpen) {
		t.Fatalf("Execute doble: %v", err)
	}
}

func TestCompleteOrderBrokerFailureDoesNotFail(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	order := seedOpenOrder(t, orderRepo)

	uc := NewCompleteOrderUseCase(orderRepo, &fakePublisher{fail: true})
	completed, err := uc.Execute(context.Background(), asAdmin(), order.ID, &request.CompleteOrderRequest{})
	if err != nil {
		t.Fatalf("un broker caído no debe revertir el cobro: %v", err)
	}
	if completed.Status != entity.OrderStatusCompleted {
		t.Fatalf("status = %q", completed.Status)
	}
}

func TestCompleteOrderForbiddenForWaiter(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	order := seedOpenOrder(t, orderRepo)

	uc := NewCompleteOrderUseCase(orderRepo, nil)
	if _, err := uc.Execute(context.Background(), asWaiter(), order.ID, &request.CompleteOrderRequest{}); !errors.Is(err, authentity.ErrForbidden) {
		t.Fatalf("Execute() error = %v, quería ErrForbidden", err)
	}
}

func TestCancelOrder(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	order := seedOpenOrder(t, orderRepo)

	uc := NewCancelOrderUseCase(orderRepo)
	if _, err := uc.Execute(context.Background(), asWaiter(), order.ID); !errors.Is(err, authentity.ErrForbidden) {
		t.Fatalf("cancelar como mesero: %v", err)
	}

	cancelled, err := uc.Execute(context.Background(), asAdmin(), order.ID)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if cancelled.Status != entity.OrderStatusCancelled {
		t.Fatalf("status = %q", cancelled.Status)
	}
}

func TestListOrdersInvalidDate(t *testing.T) {
	uc := NewListOrdersUseCase(newFakeOrderRepo())
	if _, err := uc.Execute(context.Background(), asAdmin(), "29-08-2026", ""); !errors.Is(err, entity.ErrInvalidDate) {
		t.Fatalf("Execute() error = %v, quería ErrInvalidDate", err)
	}
}

func TestDownloadTicket(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	order := seedOpenOrder(t, orderRepo)
	renderer := &fakeRenderer{}

	uc := NewDownloadTicketUseCase(orderRepo, renderer)
	path, filename, err := uc.Execute(context.Background(), asAdmin(), order.ID)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if filename != "ticket_0001.pdf" || path != "tickets/ticket_0001.pdf" {
		t.Fatalf("path = %q, filename = %q", path, filename)
	}

	stored, _ := orderRepo.FindByID(context.Background(), order.ID)
	if !stored.Printed {
		t.Fatal("la orden no quedó marcada como impresa")
	}

	renderer.err = errors.New("sin espacio en disco")
	if _, _, err := uc.Execute(context.Background(), asAdmin(), order.ID); err == nil {
		t.Fatal("Execute() debía fallar con el render roto")
	}
}

func TestGetOrderNotFound(t *testing.T) {
	uc := NewGetOrderUseCase(newFakeOrderRepo())
	if _, err := uc.Execute(context.Background(), asAdmin(), uuid.New()); !errors.Is(err, entity.ErrOrderNotFound) {
		t.Fatalf("Execute() error = %v, quería ErrOrderNotFound", err)
	}
}
