package inventory

import (
	"fmt"
	"strings"

	"github.com/wms/backend/internal/domain/shared"
)

// RequiredPasses is the number of counting passes every inventory carries
const RequiredPasses = 3

// Rule ids reported by the sequence validator
const (
	RuleSequenceCount       = "sequence.count"
	RuleSequenceOrders      = "sequence.orders"
	RuleSequenceModeInvalid = "sequence.mode.invalid"
	RuleSequenceSameMode    = "sequence.stock_image.same_mode"
	RuleSequenceManualMode  = "sequence.stock_image.manual_mode"
	RuleSequenceParams      = "sequence.article_params"
	RuleSequenceByArticle   = "sequence.by_article.all"
	RuleSequenceBulk        = "sequence.bulk.all"
)

// CountingSequenceValidator validates the combination of the three passes
// of an inventory
type CountingSequenceValidator struct {
	dispatcher *CountingDispatcher
}

// NewCountingSequenceValidator creates a sequence validator
func NewCountingSequenceValidator(dispatcher *CountingDispatcher) *CountingSequenceValidator {
	return &CountingSequenceValidator{dispatcher: dispatcher}
}

// Validate returns a ValidationError listing every violated rule, or nil
func (v *CountingSequenceValidator) Validate(passes []PassConfig) error {
	result := v.Check(passes)
	return result.Err(CodeSequenceInvalid)
}

// Check evaluates every sequence rule and every per-pass rule
func (v *CountingSequenceValidator) Check(passes []PassConfig) shared.ValidationResult {
	var result shared.ValidationResult

	if len(passes) != RequiredPasses {
		result.AddError(RuleSequenceCount, 0, "comptages", "Un inventaire doit contenir exactement 3 comptages")
		return result
	}

	sorted := sortedPasses(passes)
	for i, p := range sorted {
		if p.Order != i+1 {
			result.AddError(RuleSequenceOrders, 0, "order", "Les comptages doivent avoir les ordres 1, 2, 3")
			break
		}
	}

	modes := make([]CountMode, len(sorted))
	for i, p := range sorted {
		mode, err := ParseCountMode(p.CountMode)
		if err != nil {
			result.AddError(RuleSequenceModeInvalid, i+1, "count_mode",
				fmt.Sprintf("Comptage %d: Mode de comptage invalide '%s'", i+1, p.CountMode))
			continue
		}
		modes[i] = mode
	}

	v.checkCombination(&result, sorted, modes)

	for i, p := range sorted {
		if modes[i] == "" {
			continue
		}
		s, err := v.dispatcher.StrategyFor(modes[i])
		if err != nil {
			result.AddError(RuleSequenceModeInvalid, i+1, "count_mode", fmt.Sprintf("Comptage %d: %s", i+1, err.Error()))
			continue
		}
		passResult := s.Validate(p)
		for _, violation := range passResult.Errors {
			result.AddError(violation.Rule, i+1, violation.Field, fmt.Sprintf("Comptage %d: %s", i+1, violation.Message))
		}
	}

	return result
}

func (v *CountingSequenceValidator) checkCombination(result *shared.ValidationResult, passes []PassConfig, modes []CountMode) {
	first, second, third := modes[0], modes[1], modes[2]
	if first == "" {
		return
	}

	switch first {
	case CountModeStockImage:
		if second == "" || third == "" {
			return
		}
		if second != third {
			result.AddError(RuleSequenceSameMode, 0, "count_mode",
				"Si le premier comptage est 'image de stock', les 2e et 3e comptages doivent avoir le même mode")
		}
		if !second.IsManual() || !third.IsManual() {
			result.AddError(RuleSequenceManualMode, 0, "count_mode",
				"Si le premier comptage est 'image de stock', les 2e et 3e comptages doivent être 'en vrac' ou 'par article'")
		}
		if second == CountModeByArticle && third == CountModeByArticle {
			diff := passes[2].ArticleParams().Diff(passes[1].ArticleParams())
			if len(diff) > 0 {
				result.AddError(RuleSequenceParams, passes[2].Order, "article_params",
					fmt.Sprintf("Comptage %d: Les paramètres (%s) doivent être identiques au 2e comptage 'par article'",
						passes[2].Order, strings.Join(diff, ", ")))
			}
		}

	case CountModeByArticle:
		if second != CountModeByArticle || third != CountModeByArticle {
			result.AddError(RuleSequenceByArticle, 0, "count_mode",
				"Si le premier comptage est 'par article', les 2e et 3e comptages doivent également être 'par article'")
			return
		}
		reference := passes[0].ArticleParams()
		for _, p := range passes[1:] {
			diff := p.ArticleParams().Diff(reference)
			if len(diff) > 0 {
				result.AddError(RuleSequenceParams, p.Order, "article_params",
					fmt.Sprintf("Comptage %d: Les paramètres (%s) doivent être identiques au premier comptage 'par article'",
						p.Order, strings.Join(diff, ", ")))
			}
		}

	case CountModeBulk:
		if second != CountModeBulk || third != CountModeBulk {
			result.AddError(RuleSequenceBulk, 0, "count_mode",
				"Si le premier comptage est 'en vrac', les 2e et 3e comptages doivent également être 'en vrac'")
		}
	}
}
