package port

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Jangel21/restaurante-app/src/order/domain/entity"
)

// ListFilter son los filtros opcionales al listar órdenes.
type ListFilter struct {
	// Date acota a las órdenes creadas ese día calendario.
	Date *time.Time
	// Status filtra por estado exacto.
	Status entity.OrderStatus
}

// OrderRepository define la persistencia del aggregate Order.
//
// Las operaciones de mutación reciben un callback sobre el aggregate ya
// cargado: el repositorio abre la transacción, bloquea la fila de la orden
// (SELECT ... FOR UPDATE) para serializar las ediciones concurrentes,
// aplica el callback y persiste el resultado. Si el callback devuelve
// error, la transacción se revierte completa y no sobrevive ningún
// escrito parcial.
type OrderRepository interface {
	// Create persiste una orden nueva con sus líneas. El número de ticket
	// se asigna dentro de la misma transacción mediante el contador
	// atómico, por lo que dos creaciones concurrentes nunca repiten número.
	Create(ctx context.Context, order *entity.Order) error

	FindByID(ctx context.Context, orderID uuid.UUID) (*entity.Order, error)

	List(ctx context.Context, filter ListFilter) ([]*entity.Order, error)

	// UpdateItems aplica una edición de líneas (alta/cambio/baja) sobre la
	// orden bloqueada y persiste líneas y totales recalculados.
	UpdateItems(ctx context.Context, orderID uuid.UUID, mutate func(*entity.Order) error) (*entity.Order, error)

	// Complete aplica la transición open -> completed y, en la MISMA
	// transacción, incrementa el acumulado de ventas diarias.
	Complete(ctx context.Context, orderID uuid.UUID, mutate func(*entity.Order) error) (*entity.Order, error)

	// Cancel aplica la transición open -> cancelled. Sin efecto en ventas diarias.
	Cancel(ctx context.Context, orderID uuid.UUID, mutate func(*entity.Order) error) (*entity.Order, error)

	// MarkPrinted marca la orden como impresa tras generar su ticket.
	MarkPrinted(ctx context.Context, orderID uuid.UUID) error
}

// DailySalesRepository consulta el acumulado de ventas diarias.
type DailySalesRepository interface {
	FindByDate(ctx context.Context, date time.Time) (*entity.DailySales, error)
}
