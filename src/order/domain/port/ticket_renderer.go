package port

import "github.com/Jangel21/restaurante-app/src/order/domain/entity"

// TicketRenderer genera el documento imprimible de una orden.
// Devuelve la ruta del archivo generado.
type TicketRenderer interface {
	Render(order *entity.Order) (string, error)
}
