package database

import (
	"context"
	"database/sql"

	"leadpro/internal/entity"
)

type InteractionRepository struct {
	DB *sql.DB
}

func NewInteractionRepository(db *sql.DB) *InteractionRepository {
	return &InteractionRepository{DB: db}
}

func (r *InteractionRepository) FindByLead(ctx context.Context, leadID int) ([]entity.Interaction, error) {
	query := `
		SELECT id, lead_id, tipo, conteudo, media_id, media_type, media_filename,
		       data_criacao, usuario_criacao
		FROM interactions
		WHERE lead_id = $1
		ORDER BY data_criacao DESC
	`

	rows, err := r.DB.QueryContext(ctx, query, leadID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	interactions := []entity.Interaction{}
	for rows.Next() {
		var i entity.Interaction
		var mediaID, mediaType, mediaFilename, createdBy sql.NullString

		err := rows.Scan(
			&i.ID,
			&i.LeadID,
			&i.Type,
			&i.Content,
			&mediaID,
			&mediaType,
			&mediaFilename,
			&i.CreatedAt,
			&createdBy,
		)
		if err != nil {
			return nil, err
		}

		i.MediaID = mediaID.String
		i.MediaType = mediaType.String
		i.MediaFilename = mediaFilename.String
		i.CreatedBy = createdBy.String
		interactions = append(interactions, i)
	}
	return interactions, rows.Err()
}

func (r *InteractionRepository) Create(ctx context.Context, interaction *entity.Interaction) error {
	query := `
		INSERT INTO interactions (
			lead_id, tipo, conteudo, media_id, media_type, media_filename,
			data_criacao, usuario_criacao
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	return r.DB.QueryRowContext(ctx, query,
		interaction.LeadID,
		interaction.Type,
		interaction.Content,
		nullString(interaction.MediaID),
		nullString(interaction.MediaType),
		nullString(interaction.MediaFilename),
		interaction.CreatedAt,
		interaction.CreatedBy,
	).Scan(&interaction.ID)
}
