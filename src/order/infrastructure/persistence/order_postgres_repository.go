package persistence

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Jangel21/restaurante-app/src/order/domain/entity"
	"github.com/Jangel21/restaurante-app/src/order/domain/port"
)

// OrderPostgresRepository implementa OrderRepository usando PostgreSQL.
//
// Todas las mutaciones bloquean la fila de la orden (SELECT ... FOR UPDATE)
// durante el read-modify-write, de modo que las ediciones concurrentes al
// mismo ticket quedan serializadas por la base.
type OrderPostgresRepository struct {
	db *sql.DB
}

// NewOrderPostgresRepository crea una nueva instancia del repositorio
func NewOrderPostgresRepository(db *sql.DB) *OrderPostgresRepository {
	return &OrderPostgresRepository{
		db: db,
	}
}

// nextTicketNumber incrementa el contador atómico de tickets dentro de la
// transacción de creación. El upsert con RETURNING elimina la carrera del
// viejo esquema "max+1": dos creaciones concurrentes serializan sobre la
// fila del contador y reciben números distintos y consecutivos.
func nextTicketNumber(ctx context.Context, tx *sql.Tx) (int64, error) {
	query := `
		INSERT INTO ticket_counters (id, last_number)
		VALUES (1, 1)
		ON CONFLICT (id) DO UPDATE SET last_number = ticket_counters.last_number + 1
		RETURNING last_number
	`

	var number int64
	if err := tx.QueryRowContext(ctx, query).Scan(&number); err != nil {
		return 0, fmt.Errorf("error assigning ticket number: %w", err)
	}
	return number, nil
}

// Create persiste una orden nueva con sus líneas (DDD Aggregate).
// El número de ticket se asigna en la misma transacción.
func (r *OrderPostgresRepository) Create(ctx context.Context, order *entity.Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	ticketNumber, err := nextTicketNumber(ctx, tx)
	if err != nil {
		return err
	}
	order.TicketNumber = ticketNumber

	queryOrder := `
		INSERT INTO orders (
			id, ticket_number, customer_name, order_type, delivery_phone, delivery_address,
			subtotal, iva, total, status, payment_method, printed, created_by, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
		)
	`

	_, err = tx.ExecContext(ctx, queryOrder,
		order.ID,
		order.TicketNumber,
		order.CustomerName,
		order.OrderType,
		nullString(order.DeliveryPhone),
		nullString(order.DeliveryAddress),
		order.Subtotal,
		order.IVA,
		order.Total,
		order.Status,
		order.PaymentMethod,
		order.Printed,
		order.CreatedBy,
		order.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error saving order: %w", err)
	}

	if err := insertItems(ctx, tx, order); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

// FindByID busca una orden con sus líneas (load aggregate), sin bloquearla.
func (r *OrderPostgresRepository) FindByID(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	order, err := scanOrder(r.db.QueryRowContext(ctx, selectOrderQuery+` WHERE id = $1`, orderID))
	if err != nil {
		return nil, err
	}

	items, err := loadItems(ctx, r.db, orderID)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return order, nil
}

// List retorna las órdenes con filtros opcionales de fecha y estado
func (r *OrderPostgresRepository) List(ctx context.Context, filter port.ListFilter) ([]*entity.Order, error) {
	query := selectOrderQuery + ` WHERE 1=1`
	args := []interface{}{}

	if filter.Date != nil {
		// Rango [from, to) para aprovechar el índice de created_at
		from := filter.Date.Truncate(24 * time.Hour)
		to := from.AddDate(0, 0, 1)
		args = append(args, from, to)
		query += fmt.Sprintf(` AND created_at >= $%d AND created_at < $%d`, len(args)-1, len(args))
	}

	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(` AND status = $%d`, len(args))
	}

	query += ` ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing orders: %w", err)
	}
	defer rows.Close()

	var orders []*entity.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}

	for _, order := range orders {
		items, err := loadItems(ctx, r.db, order.ID)
		if err != nil {
			return nil, err
		}
		order.Items = items
	}

	return orders, nil
}

// UpdateItems aplica una edición de líneas sobre la orden bloqueada y
// persiste líneas y totales recalculados en una sola transacción.
func (r *OrderPostgresRepository) UpdateItems(ctx context.Context, orderID uuid.UUID, mutate func(*entity.Order) error) (*entity.Order, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	order, err := lockOrder(ctx, tx, orderID)
	if err != nil {
		return nil, err
	}

	if err := mutate(order); err != nil {
		return nil, err
	}

	// Reemplazar las líneas completas; los IDs de cada línea se conservan
	if _, err := tx.ExecContext(ctx, `DELETE FROM order_items WHERE order_id = $1`, orderID); err != nil {
		return nil, fmt.Errorf("error clearing order items: %w", err)
	}
	if err := insertItems(ctx, tx, order); err != nil {
		return nil, err
	}

	queryTotals := `
		UPDATE orders
		SET subtotal = $2, iva = $3, total = $4
		WHERE id = $1
	`
	if _, err := tx.ExecContext(ctx, queryTotals, orderID, order.Subtotal, order.IVA, order.Total); err != nil {
		return nil, fmt.Errorf("error updating order totals: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("error committing transaction: %w", err)
	}

	return order, nil
}

// Complete aplica la transición open -> completed y acumula las ventas
// diarias en la MISMA transacción: o se confirman ambas o ninguna.
func (r *OrderPostgresRepository) Complete(ctx context.Context, orderID uuid.UUID, mutate func(*entity.Order) error) (*entity.Order, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	order, err := lockOrder(ctx, tx, orderID)
	if err != nil {
		return nil, err
	}

	if err := mutate(order); err != nil {
		return nil, err
	}

	query := `
		UPDATE orders
		SET status = $2, payment_method = $3, completed_at = $4
		WHERE id = $1 AND status = 'open'
	`
	result, err := tx.ExecContext(ctx, query, orderID, order.Status, order.PaymentMethod, order.CompletedAt)
	if err != nil {
		return nil, fmt.Errorf("error completing order: %w", err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return nil, entity.ErrOrderNotOpen
	}

	if err := accumulateDailySales(ctx, tx, order); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("error committing transaction: %w", err)
	}

	return order, nil
}

// Cancel aplica la transición open -> cancelled. Sin efecto en ventas diarias.
func (r *OrderPostgresRepository) Cancel(ctx context.Context, orderID uuid.UUID, mutate func(*entity.Order) error) (*entity.Order, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	order, err := lockOrder(ctx, tx, orderID)
	if err != nil {
		return nil, err
	}

	if err := mutate(order); err != nil {
		return nil, err
	}

	query := `
		UPDATE orders
		SET status = $2
		WHERE id = $1 AND status = 'open'
	`
	result, err := tx.ExecContext(ctx, query, orderID, order.Status)
	if err != nil {
		return nil, fmt.Errorf("error cancelling order: %w", err)
	}
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return nil, entity.ErrOrderNotOpen
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("error committing transaction: %w", err)
	}

	return order, nil
}

// MarkPrinted marca la orden como impresa tras generar su ticket
func (r *OrderPostgresRepository) MarkPrinted(ctx context.Context, orderID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `UPDATE orders SET printed = TRUE WHERE id = $1`, orderID)
	if err != nil {
		return fmt.Errorf("error marking order as printed: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return entity.ErrOrderNotFound
	}

	return nil
}

// accumulateDailySales incrementa el acumulado del día de forma aditiva.
// El upsert sobre la fila única de la fecha corre dentro de la transacción
// de cierre de la orden. Los incrementos los calcula el dominio
// (DailySales.Accumulate); aquí solo se suman sobre la fila existente.
func accumulateDailySales(ctx context.Context, tx *sql.Tx, order *entity.Order) error {
	increment := entity.EmptyDailySales(*order.CompletedAt)
	increment.Accumulate(order)

	query := `
		INSERT INTO daily_sales (
			id, date, total_orders, total_sales, total_iva,
			cash_sales, card_sales, transfer_sales, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, NOW()
		)
		ON CONFLICT (date) DO UPDATE SET
			total_orders   = daily_sales.total_orders + EXCLUDED.total_orders,
			total_sales    = daily_sales.total_sales + EXCLUDED.total_sales,
			total_iva      = daily_sales.total_iva + EXCLUDED.total_iva,
			cash_sales     = daily_sales.cash_sales + EXCLUDED.cash_sales,
			card_sales     = daily_sales.card_sales + EXCLUDED.card_sales,
			transfer_sales = daily_sales.transfer_sales + EXCLUDED.transfer_sales
	`

	_, err := tx.ExecContext(ctx, query,
		uuid.New(),
		dateKey(*order.CompletedAt),
		increment.TotalOrders,
		increment.TotalSales,
		increment.TotalIVA,
		increment.CashSales,
		increment.CardSales,
		increment.TransferSales,
	)
	if err != nil {
		return fmt.Errorf("error accumulating daily sales: %w", err)
	}

	return nil
}

const selectOrderQuery = `
	SELECT id, ticket_number, customer_name, order_type, delivery_phone, delivery_address,
		subtotal, iva, total, status, payment_method, printed, created_by, created_at, completed_at
	FROM orders
`

// lockOrder carga el aggregate con la fila de la orden bloqueada
func lockOrder(ctx context.Context, tx *sql.Tx, orderID uuid.UUID) (*entity.Order, error) {
	order, err := scanOrder(tx.QueryRowContext(ctx, selectOrderQuery+` WHERE id = $1 FOR UPDATE`, orderID))
	if err != nil {
		return nil, err
	}

	items, err := loadItems(ctx, tx, orderID)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return order, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(row rowScanner) (*entity.Order, error) {
	order := &entity.Order{}
	var deliveryPhone, deliveryAddress sql.NullString
	var createdBy sql.NullString
	var completedAt sql.NullTime

	err := row.Scan(
		&order.ID,
		&order.TicketNumber,
		&order.CustomerName,
		&order.OrderType,
		&deliveryPhone,
		&deliveryAddress,
		&order.Subtotal,
		&order.IVA,
		&order.Total,
		&order.Status,
		&order.PaymentMethod,
		&order.Printed,
		&createdBy,
		&order.CreatedAt,
		&completedAt,
	)
	if err == sql.ErrNoRows {
		return nil, entity.ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error scanning order: %w", err)
	}

	order.DeliveryPhone = deliveryPhone.String
	order.DeliveryAddress = deliveryAddress.String
	if createdBy.Valid {
		if id, err := uuid.Parse(createdBy.String); err == nil {
			order.CreatedBy = id
		}
	}
	if completedAt.Valid {
		order.CompletedAt = &completedAt.Time
	}

	return order, nil
}

type queryer interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}

func loadItems(ctx context.Context, q queryer, orderID uuid.UUID) ([]entity.OrderItem, error) {
	query := `
		SELECT id, order_id, menu_item_id, menu_item_name, quantity, unit_price, subtotal, notes
		FROM order_items
		WHERE order_id = $1
		ORDER BY position, id
	`

	rows, err := q.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("error finding order items: %w", err)
	}
	defer rows.Close()

	var items []entity.OrderItem
	for rows.Next() {
		var item entity.OrderItem
		var notes sql.NullString
		err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.MenuItemID,
			&item.MenuItemName,
			&item.Quantity,
			&item.UnitPrice,
			&item.Subtotal,
			&notes,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning order item: %w", err)
		}
		item.Notes = notes.String
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating order items: %w", err)
	}

	return items, nil
}

// insertItems persiste las líneas en el orden del aggregate. El campo
// position conserva ese orden aunque las ediciones reescriban las filas.
func insertItems(ctx context.Context, tx *sql.Tx, order *entity.Order) error {
	query := `
		INSERT INTO order_items (
			id, order_id, menu_item_id, menu_item_name, position, quantity, unit_price, subtotal, notes, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, NOW()
		)
	`

	for position, item := range order.Items {
		_, err := tx.ExecContext(ctx, query,
			item.ID,
			order.ID,
			item.MenuItemID,
			item.MenuItemName,
			position,
			item.Quantity,
			item.UnitPrice,
			item.Subtotal,
			nullString(item.Notes),
		)
		if err != nil {
			return fmt.Errorf("error saving order item %s: %w", item.MenuItemName, err)
		}
	}

	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
