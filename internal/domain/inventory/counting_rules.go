package inventory

import (
	"github.com/wms/backend/internal/domain/shared"
)

// countingRule is one predicate of a mode's rule table. holds returns true
// when the pass satisfies the rule.
type countingRule struct {
	id      string
	field   string
	message string
	holds   func(PassConfig) bool
}

var ruleOrderRequired = countingRule{
	id:      "order.required",
	field:   "order",
	message: "L'ordre du comptage est obligatoire",
	holds:   func(p PassConfig) bool { return p.Order != 0 },
}

func mustBeFalse(mode CountMode, field string, get func(PassConfig) bool) countingRule {
	return countingRule{
		id:      string(mode) + "." + field + ".false",
		field:   field,
		message: "Pour le mode '" + string(mode) + "', le champ " + field + " doit être false",
		holds:   func(p PassConfig) bool { return !get(p) },
	}
}

var bulkRules = []countingRule{
	ruleOrderRequired,
	{
		id:      "en vrac.scan_entry.exclusive",
		field:   "unit_scanned",
		message: "Pour le mode 'en vrac', unit_scanned et entry_quantity ne peuvent pas être true simultanément",
		holds:   func(p PassConfig) bool { return !(p.UnitScanned && p.EntryQuantity) },
	},
	{
		id:      "en vrac.scan_entry.required",
		field:   "unit_scanned",
		message: "Pour le mode 'en vrac', au moins un des champs unit_scanned ou entry_quantity doit être true",
		holds:   func(p PassConfig) bool { return p.UnitScanned || p.EntryQuantity },
	},
	mustBeFalse(CountModeBulk, "stock_situation", func(p PassConfig) bool { return p.StockSituation }),
}

var byArticleRules = []countingRule{
	ruleOrderRequired,
	mustBeFalse(CountModeByArticle, "unit_scanned", func(p PassConfig) bool { return p.UnitScanned }),
	mustBeFalse(CountModeByArticle, "entry_quantity", func(p PassConfig) bool { return p.EntryQuantity }),
	mustBeFalse(CountModeByArticle, "stock_situation", func(p PassConfig) bool { return p.StockSituation }),
	{
		id:      "par article.serie_lot.exclusive",
		field:   "n_serie",
		message: "Pour le mode 'par article', n_serie et n_lot ne peuvent pas être true simultanément",
		holds:   func(p PassConfig) bool { return !(p.NSerie && p.NLot) },
	},
}

var stockImageRules = []countingRule{
	ruleOrderRequired,
	{
		id:      "image de stock.stock_situation.true",
		field:   "stock_situation",
		message: "Pour le mode 'image de stock', le champ stock_situation doit être true",
		holds:   func(p PassConfig) bool { return p.StockSituation },
	},
	mustBeFalse(CountModeStockImage, "unit_scanned", func(p PassConfig) bool { return p.UnitScanned }),
	mustBeFalse(CountModeStockImage, "entry_quantity", func(p PassConfig) bool { return p.EntryQuantity }),
	mustBeFalse(CountModeStockImage, "is_variant", func(p PassConfig) bool { return p.IsVariant }),
	mustBeFalse(CountModeStockImage, "n_lot", func(p PassConfig) bool { return p.NLot }),
	mustBeFalse(CountModeStockImage, "n_serie", func(p PassConfig) bool { return p.NSerie }),
	mustBeFalse(CountModeStockImage, "dlc", func(p PassConfig) bool { return p.DLC }),
	mustBeFalse(CountModeStockImage, "show_product", func(p PassConfig) bool { return p.ShowProduct }),
	mustBeFalse(CountModeStockImage, "quantity_show", func(p PassConfig) bool { return p.QuantityShow }),
}

func rulesFor(mode CountMode) []countingRule {
	switch mode {
	case CountModeBulk:
		return bulkRules
	case CountModeByArticle:
		return byArticleRules
	case CountModeStockImage:
		return stockImageRules
	}
	return nil
}

// ValidateCountingConfig evaluates every rule of the mode's table against the
// pass and returns all failures.
func ValidateCountingConfig(mode CountMode, pass PassConfig) shared.ValidationResult {
	var result shared.ValidationResult
	for _, rule := range rulesFor(mode) {
		if !rule.holds(pass) {
			result.AddError(rule.id, pass.Order, rule.field, rule.message)
		}
	}
	return result
}
