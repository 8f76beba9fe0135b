package catalog_test

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MradulDixit-A/neupi-api/internal/infrastructure/catalog"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cards.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const validCatalogJSON = `[
	{
		"card_id": "amex_mrcc",
		"issuer": "American Express",
		"network": "amex",
		"card_type": "rewards",
		"tier": "mid",
		"min_income": 40000,
		"min_credit_score": 700,
		"spend_bonus_category": ["travel_hotels", "online_shopping"]
	},
	{
		"card_id": "axis_ace",
		"issuer": "Axis",
		"network": "visa",
		"card_type": "cashback",
		"tier": "entry",
		"min_income": 25000,
		"min_credit_score": 650,
		"spend_bonus_category": ["bill_payments"],
		"annual_fee": 500,
		"emi_friendly": true
	}
]`

func TestFileRepository_LoadsValidCatalog(t *testing.T) {
	path := writeCatalogFile(t, validCatalogJSON)

	repo, err := catalog.NewFileRepository(path, testLogger())
	require.NoError(t, err)

	cards, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, "amex_mrcc", cards[0].CardID, "file order must be preserved")
	assert.Equal(t, "axis_ace", cards[1].CardID)
	assert.Equal(t, int64(500), cards[1].AnnualFee)
	assert.True(t, cards[1].EMIFriendly)
}

func TestFileRepository_SkipsInvalidRecords(t *testing.T) {
	path := writeCatalogFile(t, `[
		{
			"card_id": "good_card",
			"issuer": "HDFC",
			"network": "visa",
			"card_type": "cashback",
			"tier": "entry",
			"min_income": 20000,
			"min_credit_score": 650,
			"spend_bonus_category": []
		},
		{
			"card_id": "broken_card",
			"network": "visa",
			"card_type": "cashback",
			"tier": "entry",
			"min_income": 20000,
			"min_credit_score": 650,
			"spend_bonus_category": []
		}
	]`)

	repo, err := catalog.NewFileRepository(path, testLogger())
	require.NoError(t, err)

	cards, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, cards, 1, "record without issuer must be skipped")
	assert.Equal(t, "good_card", cards[0].CardID)
}

func TestFileRepository_AllRecordsInvalid(t *testing.T) {
	path := writeCatalogFile(t, `[{"card_id": ""}]`)

	_, err := catalog.NewFileRepository(path, testLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no valid records")
}

func TestFileRepository_MissingFile(t *testing.T) {
	_, err := catalog.NewFileRepository(filepath.Join(t.TempDir(), "absent.json"), testLogger())
	assert.Error(t, err)
}

func TestFileRepository_MalformedJSON(t *testing.T) {
	path := writeCatalogFile(t, `{"not": "an array"`)

	_, err := catalog.NewFileRepository(path, testLogger())
	assert.Error(t, err)
}

func TestStaticRepository(t *testing.T) {
	repo := catalog.NewStaticRepository()

	cards, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, cards)
	for _, card := range cards {
		assert.NoError(t, card.Validate(), "card %s", card.CardID)
	}
}
