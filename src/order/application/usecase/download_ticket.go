package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	authentity "github.com/Jangel21/restaurante-app/src/auth/domain/entity"
	"github.com/Jangel21/restaurante-app/src/order/domain/port"
)

// DownloadTicketUseCase caso de uso para generar el PDF del ticket
type DownloadTicketUseCase struct {
	orderRepo port.OrderRepository
	renderer  port.TicketRenderer
}

// NewDownloadTicketUseCase crea una nueva instancia del caso de uso
func NewDownloadTicketUseCase(orderRepo port.OrderRepository, renderer port.TicketRenderer) *DownloadTicketUseCase {
	return &DownloadTicketUseCase{
		orderRepo: orderRepo,
		renderer:  renderer,
	}
}

// Execute genera el ticket y marca la orden como impresa solo si el
// render terminó bien. Devuelve la ruta del PDF y el nombre de descarga.
func (uc *DownloadTicketUseCase) Execute(ctx context.Context, principal authentity.Principal, orderID uuid.UUID) (filepath, filename string, err error) {
	if !principal.HasAnyRole(authentity.RoleAdmin, authentity.RoleCashier) {
		return "", "", authentity.ErrForbidden
	}

	order, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return "", "", err
	}

	filepath, err = uc.renderer.Render(order)
	if err != nil {
		return "", "", fmt.Errorf("error rendering ticket %d: %w", order.TicketNumber, err)
	}

	if err := uc.orderRepo.MarkPrinted(ctx, orderID); err != nil {
		return "", "", err
	}

	return filepath, order.TicketFilename(), nil
}
