package inventory

import (
	"github.com/wms/backend/internal/domain/shared"
)

// CountingFlags are the capability flags of a counting pass
type CountingFlags struct {
	UnitScanned    bool `json:"unit_scanned"`
	EntryQuantity  bool `json:"entry_quantity"`
	IsVariant      bool `json:"is_variant"`
	StockSituation bool `json:"stock_situation"`
	NLot           bool `json:"n_lot"`
	NSerie         bool `json:"n_serie"`
	DLC            bool `json:"dlc"`
	ShowProduct    bool `json:"show_product"`
	QuantityShow   bool `json:"quantity_show"`
}

// ArticleParams are the per-article tracking flags that must stay aligned
// across the by-article passes of one inventory
type ArticleParams struct {
	NLot      bool
	DLC       bool
	NSerie    bool
	IsVariant bool
}

// articleParamLabels lists the article params in report order
var articleParamLabels = []struct {
	label string
	get   func(ArticleParams) bool
}{
	{"N° lot", func(p ArticleParams) bool { return p.NLot }},
	{"DLC", func(p ArticleParams) bool { return p.DLC }},
	{"N° série", func(p ArticleParams) bool { return p.NSerie }},
	{"Variante", func(p ArticleParams) bool { return p.IsVariant }},
}

// Diff returns the labels of the params that differ from other
func (p ArticleParams) Diff(other ArticleParams) []string {
	var fields []string
	for _, f := range articleParamLabels {
		if f.get(p) != f.get(other) {
			fields = append(fields, f.label)
		}
	}
	return fields
}

// ArticleParams extracts the per-article tracking flags
func (f CountingFlags) ArticleParams() ArticleParams {
	return ArticleParams{
		NLot:      f.NLot,
		DLC:       f.DLC,
		NSerie:    f.NSerie,
		IsVariant: f.IsVariant,
	}
}

// DisplaysTheoreticalStock reports whether operators are shown the
// theoretical product or quantity during capture
func (f CountingFlags) DisplaysTheoreticalStock() bool {
	return f.QuantityShow || f.ShowProduct
}

// PassConfig is the caller-supplied configuration of one counting pass
type PassConfig struct {
	Order     int    `json:"order"`
	CountMode string `json:"count_mode"`
	CountingFlags
}

// Counting is one of the three ordered passes of an inventory
type Counting struct {
	shared.BaseEntity
	InventoryID int64
	Order       int
	Mode        CountMode
	CountingFlags
}

// IsStockImage reports whether the pass is seeded from the stock snapshot
func (c *Counting) IsStockImage() bool {
	return c.Mode == CountModeStockImage
}

// FirstPass returns the counting with order 1, or nil
func FirstPass(countings []Counting) *Counting {
	for i := range countings {
		if countings[i].Order == 1 {
			return &countings[i]
		}
	}
	return nil
}
