package ticket

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/Jangel21/restaurante-app/src/order/domain/entity"
)

// Ancho de ticket térmico estándar (80 mm), alto variable.
const (
	ticketWidth  = 80.0
	ticketHeight = 297.0
	marginX      = 5.0
)

// PDFGenerator genera tickets en formato PDF
type PDFGenerator struct {
	outputDir string
}

// NewPDFGenerator crea un generador que escribe en outputDir
func NewPDFGenerator(outputDir string) (*PDFGenerator, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating ticket output dir: %w", err)
	}
	return &PDFGenerator{outputDir: outputDir}, nil
}

// Render genera el PDF del ticket y devuelve la ruta del archivo
func (g *PDFGenerator) Render(order *entity.Order) (string, error) {
	pdf := fpdf.NewCustom(&fpdf.InitType{
		UnitStr: "mm",
		Size:    fpdf.SizeType{Wd: ticketWidth, Ht: ticketHeight},
	})
	pdf.SetMargins(marginX, 10, marginX)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	// Encabezado
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(ticketWidth-2*marginX, 5, "La Cantina Mexicana", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(ticketWidth-2*marginX, 4, "RFC: CME123456ABC", "", 1, "C", false, 0, "")
	pdf.CellFormat(ticketWidth-2*marginX, 4, "Guadalajara, Jalisco", "", 1, "C", false, 0, "")
	pdf.CellFormat(ticketWidth-2*marginX, 4, "Tel: (33) 1234-5678", "", 1, "C", false, 0, "")
	pdf.Ln(2)
	g.separator(pdf)

	// Información del ticket
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(0, 4, fmt.Sprintf("Ticket: #%04d", order.TicketNumber), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 4, "Cliente: "+order.CustomerName, "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 4, "Fecha: "+time.Now().Format("02/01/2006 15:04"), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 4, "Tipo: "+string(order.OrderType), "", 1, "L", false, 0, "")

	if order.OrderType == entity.OrderTypeDelivery {
		pdf.CellFormat(0, 4, "Tel. entrega: "+order.DeliveryPhone, "", 1, "L", false, 0, "")
		pdf.MultiCell(ticketWidth-2*marginX, 4, "Dirección: "+order.DeliveryAddress, "", "L", false)
	}
	pdf.Ln(2)
	g.separator(pdf)

	// Items
	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(10, 4, "Cant.", "", 0, "L", false, 0, "")
	pdf.CellFormat(38, 4, "Producto", "", 0, "L", false, 0, "")
	pdf.CellFormat(22, 4, "Total", "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	for _, item := range order.Items {
		name := item.MenuItemName
		if len(name) > 25 {
			name = name[:25]
		}
		pdf.CellFormat(10, 4, fmt.Sprintf("%d", item.Quantity), "", 0, "L", false, 0, "")
		pdf.CellFormat(38, 4, name, "", 0, "L", false, 0, "")
		pdf.CellFormat(22, 4, "$"+item.Subtotal.StringFixed(2), "", 1, "R", false, 0, "")

		pdf.SetFont("Helvetica", "", 7)
		pdf.CellFormat(10, 4, "", "", 0, "L", false, 0, "")
		pdf.CellFormat(38, 4, "$"+item.UnitPrice.StringFixed(2)+" c/u", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 8)

		if item.Notes != "" {
			pdf.SetFont("Helvetica", "I", 7)
			pdf.CellFormat(10, 4, "", "", 0, "L", false, 0, "")
			pdf.CellFormat(60, 4, "Nota: "+item.Notes, "", 1, "L", false, 0, "")
			pdf.SetFont("Helvetica", "", 8)
		}
	}
	pdf.Ln(2)
	g.separator(pdf)

	// Totales
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(48, 4, "Subtotal:", "", 0, "L", false, 0, "")
	pdf.CellFormat(22, 4, "$"+order.Subtotal.StringFixed(2), "", 1, "R", false, 0, "")
	pdf.CellFormat(48, 4, "IVA (16%):", "", 0, "L", false, 0, "")
	pdf.CellFormat(22, 4, "$"+order.IVA.StringFixed(2), "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(48, 5, "TOTAL:", "", 0, "L", false, 0, "")
	pdf.CellFormat(22, 5, "$"+order.Total.StringFixed(2), "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(0, 4, "Pago: "+string(order.PaymentMethod), "", 1, "L", false, 0, "")
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(ticketWidth-2*marginX, 4, "¡Gracias por su visita!", "", 1, "C", false, 0, "")

	path := filepath.Join(g.outputDir, order.TicketFilename())
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("error writing ticket pdf: %w", err)
	}

	return path, nil
}

func (g *PDFGenerator) separator(pdf *fpdf.Fpdf) {
	y := pdf.GetY()
	pdf.Line(marginX, y, ticketWidth-marginX, y)
	pdf.Ln(2)
}
