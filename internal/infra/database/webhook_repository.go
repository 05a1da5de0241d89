package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"leadpro/internal/entity"
)

type WebhookRepository struct {
	DB *sql.DB
}

func NewWebhookRepository(db *sql.DB) *WebhookRepository {
	return &WebhookRepository{DB: db}
}

func (r *WebhookRepository) FindAll(ctx context.Context) ([]entity.Webhook, error) {
	query := `
		SELECT id, nome, url, ativo, eventos, configuracao_eventos, data_criacao, data_atualizacao
		FROM webhooks
		ORDER BY data_criacao DESC
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	webhooks := []entity.Webhook{}
	for rows.Next() {
		wh, err := scanWebhook(rows)
		if err != nil {
			return nil, err
		}
		webhooks = append(webhooks, *wh)
	}
	return webhooks, rows.Err()
}

func (r *WebhookRepository) FindByID(ctx context.Context, id int) (*entity.Webhook, error) {
	query := `
		SELECT id, nome, url, ativo, eventos, configuracao_eventos, data_criacao, data_atualizacao
		FROM webhooks
		WHERE id = $1
	`

	wh, err := scanWebhook(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrWebhookNotFound
		}
		return nil, err
	}
	return wh, nil
}

func (r *WebhookRepository) Create(ctx context.Context, webhook *entity.Webhook) error {
	events, configs, err := marshalConfig(webhook)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO webhooks (nome, url, ativo, eventos, configuracao_eventos, data_criacao, data_atualizacao)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	return r.DB.QueryRowContext(ctx, query,
		webhook.Name,
		webhook.URL,
		webhook.Active,
		events,
		configs,
		webhook.CreatedAt,
		webhook.UpdatedAt,
	).Scan(&webhook.ID)
}

func (r *WebhookRepository) Update(ctx context.Context, webhook *entity.Webhook) error {
	events, configs, err := marshalConfig(webhook)
	if err != nil {
		return err
	}

	query := `
		UPDATE webhooks SET
			nome = $2, url = $3, ativo = $4, eventos = $5,
			configuracao_eventos = $6, data_atualizacao = $7
		WHERE id = $1
	`

	result, err := r.DB.ExecContext(ctx, query,
		webhook.ID,
		webhook.Name,
		webhook.URL,
		webhook.Active,
		events,
		configs,
		webhook.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return entity.ErrWebhookNotFound
	}
	return nil
}

func (r *WebhookRepository) Delete(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM webhooks WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return entity.ErrWebhookNotFound
	}
	return nil
}

// eventos e configuracao_eventos vivem em colunas jsonb.
func marshalConfig(webhook *entity.Webhook) ([]byte, []byte, error) {
	events, err := json.Marshal(webhook.Events)
	if err != nil {
		return nil, nil, err
	}
	configs, err := json.Marshal(webhook.EventConfigs)
	if err != nil {
		return nil, nil, err
	}
	return events, configs, nil
}

func scanWebhook(row rowScanner) (*entity.Webhook, error) {
	var wh entity.Webhook
	var events, configs []byte

	err := row.Scan(&wh.ID, &wh.Name, &wh.URL, &wh.Active, &events, &configs, &wh.CreatedAt, &wh.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if len(events) > 0 {
		if err := json.Unmarshal(events, &wh.Events); err != nil {
			return nil, err
		}
	}
	if len(configs) > 0 {
		if err := json.Unmarshal(configs, &wh.EventConfigs); err != nil {
			return nil, err
		}
	}
	return &wh, nil
}
