package entity

type ProductName string

// Catálogo fixo de produtos. Um lead referencia cada produto no máximo uma vez.
const (
	ProductEasyMaps   ProductName = "EasyMaps"
	ProductEasyFlow   ProductName = "EasyFlow"
	ProductEasyLogs   ProductName = "EasyLogs"
	ProductEasyReport ProductName = "EasyReport"
	ProductEasyMon    ProductName = "EasyMon"
	ProductEasyBI     ProductName = "EasyBI"
)

func (p ProductName) IsValid() bool {
	switch p {
	case ProductEasyMaps, ProductEasyFlow, ProductEasyLogs, ProductEasyReport, ProductEasyMon, ProductEasyBI:
		return true
	}
	return false
}

type LeadProduct struct {
	ID         int         `json:"id,omitempty"`
	LeadID     int         `json:"leadId,omitempty"`
	Name       ProductName `json:"nome"`
	Value      float64     `json:"valor"`
	Discount   float64     `json:"desconto"`
	FinalValue float64     `json:"valorFinal"`
}
