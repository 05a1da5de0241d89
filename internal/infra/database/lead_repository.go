package database

import (
	"context"
	"database/sql"
	"errors"

	"leadpro/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

const leadColumns = `
	id, nome, email, telefone, empresa, cargo, fonte, status,
	valor_contrato, observacoes, desconto_geral, valor_total,
	data_criacao, data_atualizacao, usuario_criacao, usuario_atualizacao
`

func (r *LeadRepository) FindAll(ctx context.Context) ([]entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads ORDER BY data_criacao DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads := []entity.Lead{}
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, *lead)
	}
	return leads, rows.Err()
}

func (r *LeadRepository) FindByID(ctx context.Context, id int) (*entity.Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE id = $1`

	lead, err := scanLead(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrLeadNotFound
		}
		return nil, err
	}

	products, err := r.findProducts(ctx, id)
	if err != nil {
		return nil, err
	}
	lead.Products = products
	return lead, nil
}

func (r *LeadRepository) findProducts(ctx context.Context, leadID int) ([]entity.LeadProduct, error) {
	query := `
		SELECT id, lead_id, nome, valor, desconto, valor_final
		FROM lead_products
		WHERE lead_id = $1
		ORDER BY id
	`

	rows, err := r.DB.QueryContext(ctx, query, leadID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []entity.LeadProduct
	for rows.Next() {
		var p entity.LeadProduct
		if err := rows.Scan(&p.ID, &p.LeadID, &p.Name, &p.Value, &p.Discount, &p.FinalValue); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

// CreateWithProducts grava o lead e todas as linhas de produto em uma única
// transação: ou tudo entra, ou nada entra. Leitores nunca enxergam um lead
// com lista de produtos parcial.
func (r *LeadRepository) CreateWithProducts(ctx context.Context, lead *entity.Lead) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		INSERT INTO leads (
			nome, email, telefone, empresa, cargo, fonte, status,
			valor_contrato, observacoes, desconto_geral, valor_total,
			data_criacao, data_atualizacao, usuario_criacao
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id
	`

	err = tx.QueryRowContext(ctx, query,
		lead.Name,
		lead.Email,
		nullString(lead.Phone),
		nullString(lead.Company),
		nullString(lead.Role),
		lead.Source,
		lead.Status,
		lead.ContractValue,
		nullString(lead.Notes),
		lead.GeneralDiscount,
		lead.TotalValue,
		lead.CreatedAt,
		lead.UpdatedAt,
		nullString(lead.CreatedBy),
	).Scan(&lead.ID)
	if err != nil {
		return err
	}

	if err := insertProducts(ctx, tx, lead.ID, lead.Products); err != nil {
		return err
	}

	for i := range lead.Products {
		lead.Products[i].LeadID = lead.ID
	}
	return tx.Commit()
}

// UpdateWithProducts atualiza o lead e, quando replaceProducts é true, troca
// a lista de produtos por completo (delete + reinsert) na mesma transação.
func (r *LeadRepository) UpdateWithProducts(ctx context.Context, lead *entity.Lead, replaceProducts bool) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		UPDATE leads SET
			nome = $2, email = $3, telefone = $4, empresa = $5, cargo = $6,
			fonte = $7, status = $8, valor_contrato = $9, observacoes = $10,
			desconto_geral = $11, valor_total = $12,
			data_atualizacao = $13, usuario_atualizacao = $14
		WHERE id = $1
	`

	result, err := tx.ExecContext(ctx, query,
		lead.ID,
		lead.Name,
		lead.Email,
		nullString(lead.Phone),
		nullString(lead.Company),
		nullString(lead.Role),
		lead.Source,
		lead.Status,
		lead.ContractValue,
		nullString(lead.Notes),
		lead.GeneralDiscount,
		lead.TotalValue,
		lead.UpdatedAt,
		nullString(lead.UpdatedBy),
	)
	if err != nil {
		return err
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return entity.ErrLeadNotFound
	}

	if replaceProducts {
		if _, err := tx.ExecContext(ctx, `DELETE FROM lead_products WHERE lead_id = $1`, lead.ID); err != nil {
			return err
		}
		if err := insertProducts(ctx, tx, lead.ID, lead.Products); err != nil {
			return err
		}
		for i := range lead.Products {
			lead.Products[i].LeadID = lead.ID
		}
	}

	return tx.Commit()
}

// Delete remove interações, produtos e o lead na mesma transação.
func (r *LeadRepository) Delete(ctx context.Context, id int) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM interactions WHERE lead_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM lead_products WHERE lead_id = $1`, id); err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return entity.ErrLeadNotFound
	}

	return tx.Commit()
}

func insertProducts(ctx context.Context, tx *sql.Tx, leadID int, products []entity.LeadProduct) error {
	query := `
		INSERT INTO lead_products (lead_id, nome, valor, desconto, valor_final)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	for i := range products {
		p := &products[i]
		if err := tx.QueryRowContext(ctx, query, leadID, p.Name, p.Value, p.Discount, p.FinalValue).Scan(&p.ID); err != nil {
			return err
		}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLead(row rowScanner) (*entity.Lead, error) {
	var lead entity.Lead
	var phone, company, role, notes, createdBy, updatedBy sql.NullString
	var contractValue, generalDiscount, totalValue sql.NullFloat64

	err := row.Scan(
		&lead.ID,
		&lead.Name,
		&lead.Email,
		&phone,
		&company,
		&role,
		&lead.Source,
		&lead.Status,
		&contractValue,
		&notes,
		&generalDiscount,
		&totalValue,
		&lead.CreatedAt,
		&lead.UpdatedAt,
		&createdBy,
		&updatedBy,
	)
	if err != nil {
		return nil, err
	}

	lead.Phone = phone.String
	lead.Company = company.String
	lead.Role = role.String
	lead.Notes = notes.String
	lead.CreatedBy = createdBy.String
	lead.UpdatedBy = updatedBy.String
	lead.ContractValue = contractValue.Float64
	lead.GeneralDiscount = generalDiscount.Float64
	lead.TotalValue = totalValue.Float64
	return &lead, nil
}
