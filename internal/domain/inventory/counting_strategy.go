package inventory

import (
	"fmt"
	"sort"

	"github.com/wms/backend/internal/domain/shared"
)

// CountingStrategy validates a pass configuration and materializes the
// Counting row for one count mode
type CountingStrategy interface {
	Mode() CountMode
	Description() string
	Validate(pass PassConfig) shared.ValidationResult
	BuildCounting(inventoryID int64, pass PassConfig) (*Counting, error)
}

type baseCountingStrategy struct {
	mode        CountMode
	description string
}

func (s baseCountingStrategy) Mode() CountMode {
	return s.mode
}

func (s baseCountingStrategy) Description() string {
	return s.description
}

func (s baseCountingStrategy) Validate(pass PassConfig) shared.ValidationResult {
	return ValidateCountingConfig(s.mode, pass)
}

func (s baseCountingStrategy) build(inventoryID int64, pass PassConfig, flags CountingFlags) (*Counting, error) {
	result := s.Validate(pass)
	if err := result.Err(CodeCountingConfigInvalid); err != nil {
		return nil, err
	}
	return &Counting{
		BaseEntity:    shared.NewBaseEntity(),
		InventoryID:   inventoryID,
		Order:         pass.Order,
		Mode:          s.mode,
		CountingFlags: flags,
	}, nil
}

// BulkCountingStrategy handles "en vrac" passes
type BulkCountingStrategy struct {
	baseCountingStrategy
}

// NewBulkCountingStrategy creates the bulk strategy
func NewBulkCountingStrategy() *BulkCountingStrategy {
	return &BulkCountingStrategy{baseCountingStrategy{
		mode:        CountModeBulk,
		description: "Total quantity per location, captured by scan or manual entry",
	}}
}

// BuildCounting keeps the caller's flags once they pass the bulk rules
func (s *BulkCountingStrategy) BuildCounting(inventoryID int64, pass PassConfig) (*Counting, error) {
	return s.build(inventoryID, pass, pass.CountingFlags)
}

// ByArticleCountingStrategy handles "par article" passes
type ByArticleCountingStrategy struct {
	baseCountingStrategy
}

// NewByArticleCountingStrategy creates the by-article strategy
func NewByArticleCountingStrategy() *ByArticleCountingStrategy {
	return &ByArticleCountingStrategy{baseCountingStrategy{
		mode:        CountModeByArticle,
		description: "Quantity per product within each location",
	}}
}

// BuildCounting keeps the caller's flags once they pass the by-article rules
func (s *ByArticleCountingStrategy) BuildCounting(inventoryID int64, pass PassConfig) (*Counting, error) {
	return s.build(inventoryID, pass, pass.CountingFlags)
}

// StockImageCountingStrategy handles "image de stock" passes
type StockImageCountingStrategy struct {
	baseCountingStrategy
}

// NewStockImageCountingStrategy creates the stock-image strategy
func NewStockImageCountingStrategy() *StockImageCountingStrategy {
	return &StockImageCountingStrategy{baseCountingStrategy{
		mode:        CountModeStockImage,
		description: "Counts seeded from the stock snapshot at launch",
	}}
}

// BuildCounting always stores the canonical stock-image flags
func (s *StockImageCountingStrategy) BuildCounting(inventoryID int64, pass PassConfig) (*Counting, error) {
	return s.build(inventoryID, pass, StockImageFlags())
}

// StockImageFlags returns the only legal flag set of a stock-image pass
func StockImageFlags() CountingFlags {
	return CountingFlags{StockSituation: true}
}

// CountingDispatcher selects the strategy matching a pass's count mode
type CountingDispatcher struct {
	strategies map[CountMode]CountingStrategy
}

// NewCountingDispatcher creates a dispatcher with one strategy per count mode
func NewCountingDispatcher() *CountingDispatcher {
	d := &CountingDispatcher{strategies: make(map[CountMode]CountingStrategy)}
	for _, mode := range AllCountModes() {
		d.strategies[mode] = newStrategy(mode)
	}
	return d
}

func newStrategy(mode CountMode) CountingStrategy {
	switch mode {
	case CountModeBulk:
		return NewBulkCountingStrategy()
	case CountModeByArticle:
		return NewByArticleCountingStrategy()
	case CountModeStockImage:
		return NewStockImageCountingStrategy()
	}
	panic(fmt.Sprintf("no counting strategy for mode %q", mode))
}

// StrategyFor returns the strategy for a parsed mode
func (d *CountingDispatcher) StrategyFor(mode CountMode) (CountingStrategy, error) {
	s, ok := d.strategies[mode]
	if !ok {
		return nil, unsupportedCountMode(string(mode))
	}
	return s, nil
}

// Resolve parses the raw mode string and returns its strategy
func (d *CountingDispatcher) Resolve(rawMode string) (CountingStrategy, error) {
	mode, err := ParseCountMode(rawMode)
	if err != nil {
		return nil, err
	}
	return d.StrategyFor(mode)
}

// SupportedModes returns the registered modes sorted by name
func (d *CountingDispatcher) SupportedModes() []CountMode {
	modes := make([]CountMode, 0, len(d.strategies))
	for mode := range d.strategies {
		modes = append(modes, mode)
	}
	sort.Slice(modes, func(i, j int) bool { return modes[i] < modes[j] })
	return modes
}

// BuildCountings materializes the Counting rows of an already validated
// sequence, in pass order
func (d *CountingDispatcher) BuildCountings(inventoryID int64, passes []PassConfig) ([]Counting, error) {
	sorted := sortedPasses(passes)
	countings := make([]Counting, 0, len(sorted))
	for _, pass := range sorted {
		s, err := d.Resolve(pass.CountMode)
		if err != nil {
			return nil, err
		}
		c, err := s.BuildCounting(inventoryID, pass)
		if err != nil {
			return nil, err
		}
		countings = append(countings, *c)
	}
	return countings, nil
}

func sortedPasses(passes []PassConfig) []PassConfig {
	sorted := make([]PassConfig, len(passes))
	copy(sorted, passes)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Order < sorted[j].Order })
	return sorted
}
