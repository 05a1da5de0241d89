package usecase

import "leadpro/internal/entity"

// CalculateLeadTotal calcula o valor agregado do contrato de um lead.
//
// Cada item contribui com valor − desconto, sem clamp por item: uma linha
// negativa entra na soma. O subtotal é travado em zero, depois o desconto
// geral é subtraído e o resultado final é travado em zero de novo — o total
// nunca fica negativo.
//
// Puro e determinístico; roda na criação e em toda atualização que mexa em
// produtos ou desconto geral.
func CalculateLeadTotal(products []entity.LeadProduct, generalDiscount float64) float64 {
	subtotal := 0.0
	for _, p := range products {
		subtotal += p.Value - p.Discount
	}
	if subtotal < 0 {
		subtotal = 0
	}

	total := subtotal - generalDiscount
	if total < 0 {
		total = 0
	}
	return total
}
