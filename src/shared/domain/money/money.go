package money

import "github.com/shopspring/decimal"

// IVARate es la tasa de IVA fija del sistema (16%).
var IVARate = decimal.RequireFromString("0.16")

// Round2 redondea un monto a 2 decimales usando half-up
// (los empates se alejan de cero: 0.125 -> 0.13).
// Todo cálculo de subtotal/iva/total debe pasar por esta función.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// LineSubtotal calcula el subtotal de una línea: round2(precio unitario × cantidad).
func LineSubtotal(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return Round2(unitPrice.Mul(decimal.NewFromInt(int64(quantity))))
}

// IVA calcula el impuesto sobre un subtotal ya redondeado.
func IVA(subtotal decimal.Decimal) decimal.Decimal {
	return Round2(subtotal.Mul(IVARate))
}
