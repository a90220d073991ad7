package inventory

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wms/backend/internal/domain/shared"
)

func TestParseCountMode(t *testing.T) {
	tests := []struct {
		raw      string
		expected CountMode
	}{
		{"en vrac", CountModeBulk},
		{"  En   Vrac ", CountModeBulk},
		{"PAR ARTICLE", CountModeByArticle},
		{"image de stock", CountModeStockImage},
		{"image stock", CountModeStockImage},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			mode, err := ParseCountMode(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, mode)
		})
	}

	t.Run("rejects unknown mode", func(t *testing.T) {
		_, err := ParseCountMode("au hasard")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnsupportedCountMode))
		assert.Contains(t, err.Error(), "au hasard")
	})
}

func TestValidateCountingConfig_Bulk(t *testing.T) {
	t.Run("accepts scan only", func(t *testing.T) {
		result := ValidateCountingConfig(CountModeBulk, PassConfig{Order: 1, CountingFlags: CountingFlags{UnitScanned: true}})
		assert.True(t, result.IsValid())
	})

	t.Run("rejects scan and entry together", func(t *testing.T) {
		result := ValidateCountingConfig(CountModeBulk, PassConfig{Order: 1, CountingFlags: CountingFlags{UnitScanned: true, EntryQuantity: true}})
		require.Len(t, result.Errors, 1)
		assert.Equal(t, "en vrac.scan_entry.exclusive", result.Errors[0].Rule)
	})

	t.Run("collects every failure", func(t *testing.T) {
		result := ValidateCountingConfig(CountModeBulk, PassConfig{CountingFlags: CountingFlags{StockSituation: true}})
		rules := make([]string, 0, len(result.Errors))
		for _, v := range result.Errors {
			rules = append(rules, v.Rule)
		}
		assert.ElementsMatch(t, []string{"order.required", "en vrac.scan_entry.required", "en vrac.stock_situation.false"}, rules)
	})
}

func TestValidateCountingConfig_ByArticle(t *testing.T) {
	t.Run("accepts lot tracking", func(t *testing.T) {
		result := ValidateCountingConfig(CountModeByArticle, PassConfig{Order: 2, CountingFlags: CountingFlags{NLot: true, DLC: true}})
		assert.True(t, result.IsValid())
	})

	t.Run("rejects serial and lot together", func(t *testing.T) {
		result := ValidateCountingConfig(CountModeByArticle, PassConfig{Order: 2, CountingFlags: CountingFlags{NLot: true, NSerie: true}})
		require.Len(t, result.Errors, 1)
		assert.Contains(t, result.Errors[0].Message, "n_serie et n_lot")
		assert.Equal(t, 2, result.Errors[0].Order)
	})

	t.Run("rejects capture flags", func(t *testing.T) {
		result := ValidateCountingConfig(CountModeByArticle, PassConfig{Order: 2, CountingFlags: CountingFlags{UnitScanned: true, EntryQuantity: true}})
		assert.Len(t, result.Errors, 2)
	})
}

func TestValidateCountingConfig_StockImage(t *testing.T) {
	t.Run("accepts canonical flags", func(t *testing.T) {
		result := ValidateCountingConfig(CountModeStockImage, PassConfig{Order: 1, CountingFlags: StockImageFlags()})
		assert.True(t, result.IsValid())
	})

	t.Run("requires stock situation and rejects display flags", func(t *testing.T) {
		result := ValidateCountingConfig(CountModeStockImage, PassConfig{Order: 1, CountingFlags: CountingFlags{QuantityShow: true}})
		require.Len(t, result.Errors, 2)
		assert.Equal(t, "Pour le mode 'image de stock', le champ stock_situation doit être true", result.Errors[0].Message)
		assert.Equal(t, "Pour le mode 'image de stock', le champ quantity_show doit être false", result.Errors[1].Message)
	})
}

func TestCountingDispatcher(t *testing.T) {
	d := NewCountingDispatcher()

	t.Run("lists every mode", func(t *testing.T) {
		assert.Len(t, d.SupportedModes(), 3)
	})

	t.Run("resolves normalized mode", func(t *testing.T) {
		s, err := d.Resolve(" Par Article ")
		require.NoError(t, err)
		assert.Equal(t, CountModeByArticle, s.Mode())
	})

	t.Run("stock image strategy forces canonical flags", func(t *testing.T) {
		s, err := d.Resolve("image de stock")
		require.NoError(t, err)
		c, err := s.BuildCounting(7, PassConfig{Order: 1, CountMode: "image de stock", CountingFlags: CountingFlags{StockSituation: true}})
		require.NoError(t, err)
		assert.Equal(t, int64(7), c.InventoryID)
		assert.Equal(t, StockImageFlags(), c.CountingFlags)
	})

	t.Run("build fails with configuration error", func(t *testing.T) {
		s, err := d.Resolve("en vrac")
		require.NoError(t, err)
		_, err = s.BuildCounting(7, PassConfig{Order: 1})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrCountingConfigInvalid))

		var vErr *shared.ValidationError
		require.True(t, errors.As(err, &vErr))
		assert.True(t, vErr.HasRule("en vrac.scan_entry.required"))
	})

	t.Run("builds countings in pass order", func(t *testing.T) {
		countings, err := d.BuildCountings(1, []PassConfig{
			{Order: 3, CountMode: "en vrac", CountingFlags: CountingFlags{EntryQuantity: true}},
			{Order: 1, CountMode: "en vrac", CountingFlags: CountingFlags{UnitScanned: true}},
			{Order: 2, CountMode: "en vrac", CountingFlags: CountingFlags{UnitScanned: true}},
		})
		require.NoError(t, err)
		require.Len(t, countings, 3)
		for i, c := range countings {
			assert.Equal(t, i+1, c.Order)
		}
	})
}
