package handlers

import (
	"database/sql"
	"net/http"

	"leadpro/internal/entity"
)

type DashboardHandler struct {
	db *sql.DB
}

func NewDashboardHandler(db *sql.DB) *DashboardHandler {
	return &DashboardHandler{db: db}
}

type DashboardStats struct {
	TotalLeads        int                `json:"totalLeads"`
	TotalValue        float64            `json:"valorTotal"`
	LeadsByStatus     map[string]int     `json:"leadsPorStatus"`
	LeadsBySource     map[string]int     `json:"leadsPorFonte"`
	TotalInteractions int                `json:"totalInteracoes"`
	ValueByStatus     map[string]float64 `json:"valorPorStatus"`
	ConversionRate    float64            `json:"taxaConversao"`
}

// Stats (GET /api/dashboard/stats) agrega tudo em uma passada por tabela.
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	stats := DashboardStats{
		LeadsByStatus: make(map[string]int),
		LeadsBySource: make(map[string]int),
		ValueByStatus: make(map[string]float64),
	}

	rows, err := h.db.QueryContext(ctx, `
		SELECT status, fonte, COUNT(*), COALESCE(SUM(valor_total), 0)
		FROM leads
		GROUP BY status, fonte`)
	if err != nil {
		respondError(w, err)
		return
	}
	defer rows.Close()

	for rows.Next() {
		var status, source string
		var count int
		var value float64
		if err := rows.Scan(&status, &source, &count, &value); err != nil {
			respondError(w, err)
			return
		}
		stats.TotalLeads += count
		stats.TotalValue += value
		stats.LeadsByStatus[status] += count
		stats.LeadsBySource[source] += count
		stats.ValueByStatus[status] += value
	}
	if err := rows.Err(); err != nil {
		respondError(w, err)
		return
	}

	if err := h.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM interactions`).Scan(&stats.TotalInteractions); err != nil {
		respondError(w, err)
		return
	}

	// Conversão = fatia de leads faturados
	if stats.TotalLeads > 0 {
		stats.ConversionRate = float64(stats.LeadsByStatus[string(entity.StatusFaturado)]) / float64(stats.TotalLeads)
	}

	respondJSON(w, http.StatusOK, stats)
}
