package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/MradulDixit-A/neupi-api/internal/domain/model"
)

// FileRepository serves the card catalog from a JSON master file. The file is
// read and validated once; subsequent FindAll calls return the same slice.
type FileRepository struct {
	cards  []model.Card
	logger *slog.Logger
}

// NewFileRepository loads the catalog from path. Records that fail validation
// are logged and skipped; the load fails only when no valid record remains.
func NewFileRepository(path string, logger *slog.Logger) (*FileRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read card catalog: %w", err)
	}

	var records []model.Card
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse card catalog %s: %w", path, err)
	}

	cards := make([]model.Card, 0, len(records))
	for i, card := range records {
		if err := card.Validate(); err != nil {
			logger.Warn("skipping invalid catalog record",
				slog.Int("index", i),
				slog.String("card_id", card.CardID),
				slog.String("error", err.Error()),
			)
			continue
		}
		cards = append(cards, card)
	}
	if len(cards) == 0 {
		return nil, fmt.Errorf("card catalog %s contains no valid records", path)
	}

	logger.Info("card catalog loaded",
		slog.String("path", path),
		slog.Int("cards", len(cards)),
		slog.Int("skipped", len(records)-len(cards)),
	)
	return &FileRepository{cards: cards, logger: logger}, nil
}

// FindAll returns the loaded catalog in file order.
func (r *FileRepository) FindAll(_ context.Context) ([]model.Card, error) {
	return r.cards, nil
}
