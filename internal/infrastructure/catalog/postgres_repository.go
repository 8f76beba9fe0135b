package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/MradulDixit-A/neupi-api/internal/domain/model"
)

// PostgresRepository serves the card catalog from PostgreSQL. The cards table
// is operator-managed master data; this repository only reads it.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a PostgresRepository over an existing pool.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// FindAll retrieves the full catalog in its operator-defined order. Position
// is part of the contract: downstream tie-breaking preserves catalog order.
func (r *PostgresRepository) FindAll(ctx context.Context) ([]model.Card, error) {
	query := `
		SELECT card_id, issuer, network, card_type, tier,
			   min_income, min_credit_score, spend_bonus_category,
			   annual_fee, emi_friendly
		FROM cards
		ORDER BY position ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query card catalog: %w", err)
	}
	defer rows.Close()

	var cards []model.Card
	for rows.Next() {
		var card model.Card
		err := rows.Scan(
			&card.CardID, &card.Issuer, &card.Network, &card.CardType, &card.Tier,
			&card.MinIncome, &card.MinCreditScore, &card.SpendBonusCategory,
			&card.AnnualFee, &card.EMIFriendly,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan catalog card: %w", err)
		}
		if err := card.Validate(); err != nil {
			return nil, fmt.Errorf("invalid catalog record in DB: %w", err)
		}
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("row iteration error: %w", err)
	}
	if len(cards) == 0 {
		return nil, fmt.Errorf("card catalog table is empty")
	}
	return cards, nil
}
