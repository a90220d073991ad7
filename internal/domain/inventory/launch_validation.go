package inventory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/wms/backend/internal/domain/shared"
)

// Rule ids reported by the launch validator
const (
	RuleLaunchStatus          = "launch.status"
	RuleLaunchCountings       = "launch.countings"
	RuleLaunchSnapshot        = "launch.stock_image.snapshot"
	RuleLaunchSnapshotDisplay = "launch.display.snapshot"
	RuleLaunchGrouping        = "launch.general.grouping"
	RuleLaunchCoverage        = "launch.general.coverage"
	RuleLaunchJobsRequired    = "launch.jobs.required"
	RuleLaunchJobsReady       = "launch.general.jobs_ready"
	RuleLaunchGeneralAdvice   = "launch.general.advice"
	RuleLaunchTournantReady   = "launch.tournant.job_ready"
	RuleLaunchTournantScope   = "launch.tournant.coverage"
)

// LaunchReport is the outcome of a launch readiness check
type LaunchReport struct {
	InventoryID int64              `json:"inventory_id"`
	CanLaunch   bool               `json:"can_launch"`
	Violations  []shared.Violation `json:"violations"`
	Infos       []string           `json:"infos"`
}

// LaunchValidator collects every launch precondition violation of an inventory
type LaunchValidator struct {
	jobs      JobReader
	locations LocationReader
	stocks    StockReader
}

// NewLaunchValidator creates a launch validator over the read ports
func NewLaunchValidator(jobs JobReader, locations LocationReader, stocks StockReader) *LaunchValidator {
	return &LaunchValidator{jobs: jobs, locations: locations, stocks: stocks}
}

// Validate returns the report, or a LAUNCH_VALIDATION_FAILED ValidationError
// carrying every violation and advisory. Infrastructure failures are returned
// as plain errors.
func (v *LaunchValidator) Validate(ctx context.Context, inv *Inventory) (*LaunchReport, error) {
	report, result, err := v.run(ctx, inv)
	if err != nil {
		return nil, err
	}
	if err := result.Err(CodeLaunchValidationFailed); err != nil {
		return report, err
	}
	return report, nil
}

// Check runs the same rules as Validate but always returns the report
func (v *LaunchValidator) Check(ctx context.Context, inv *Inventory) (*LaunchReport, error) {
	report, _, err := v.run(ctx, inv)
	return report, err
}

func (v *LaunchValidator) run(ctx context.Context, inv *Inventory) (*LaunchReport, shared.ValidationResult, error) {
	var result shared.ValidationResult

	if inv.Status != InventoryStatusEnPreparation {
		result.AddError(RuleLaunchStatus, 0, "status",
			fmt.Sprintf("L'inventaire doit être au statut %s pour être lancé (statut actuel: %s)", InventoryStatusEnPreparation, inv.Status))
	}
	if len(inv.Countings) != RequiredPasses {
		result.AddError(RuleLaunchCountings, 0, "comptages", "Un inventaire doit contenir exactement 3 comptages")
	}

	if err := v.checkSnapshot(ctx, inv, &result); err != nil {
		return nil, result, err
	}

	var err error
	switch inv.Type {
	case InventoryTypeTournant:
		err = v.checkTournant(ctx, inv, &result)
	default:
		err = v.checkGeneral(ctx, inv, &result)
	}
	if err != nil {
		return nil, result, err
	}

	violations := result.Errors
	if violations == nil {
		violations = []shared.Violation{}
	}
	return &LaunchReport{
		InventoryID: inv.ID,
		CanLaunch:   result.IsValid(),
		Violations:  violations,
		Infos:       result.InfoMessages(),
	}, result, nil
}

func (v *LaunchValidator) checkSnapshot(ctx context.Context, inv *Inventory, result *shared.ValidationResult) error {
	needsSnapshot := false
	displays := false
	for _, c := range inv.Countings {
		if c.IsStockImage() {
			needsSnapshot = true
		} else if c.DisplaysTheoreticalStock() {
			displays = true
		}
	}
	if !needsSnapshot && !displays {
		return nil
	}

	count, err := v.stocks.CountByInventory(ctx, inv.ID)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, c := range sortedCountings(inv.Countings) {
		switch {
		case c.IsStockImage():
			result.AddError(RuleLaunchSnapshot, c.Order, "stock",
				fmt.Sprintf("Comptage %d ('%s'): aucun stock n'a été importé pour cet inventaire", c.Order, c.Mode))
		case c.DisplaysTheoreticalStock():
			result.AddInfo(RuleLaunchSnapshotDisplay,
				fmt.Sprintf("Comptage %d: aucun stock importé, les quantités et produits théoriques ne seront pas affichés", c.Order))
		}
	}
	return nil
}

func (v *LaunchValidator) checkGeneral(ctx context.Context, inv *Inventory, result *shared.ValidationResult) error {
	accountID := inv.AccountID()
	hasGrouping, err := v.locations.GroupingExists(ctx, accountID)
	if err != nil {
		return err
	}
	if !hasGrouping {
		result.AddError(RuleLaunchGrouping, 0, "account_id",
			"Aucun regroupement d'emplacements n'est défini pour le compte de cet inventaire")
	} else {
		locations, err := v.locations.FindActiveByAccount(ctx, accountID)
		if err != nil {
			return err
		}
		covered, err := v.jobs.CoveredLocationIDs(ctx, inv.ID)
		if err != nil {
			return err
		}
		coveredSet := make(map[int64]bool, len(covered))
		for _, id := range covered {
			coveredSet[id] = true
		}
		var uncovered []string
		for _, loc := range locations {
			if !coveredSet[loc.ID] {
				uncovered = append(uncovered, loc.Reference)
			}
		}
		if len(uncovered) > 0 {
			sort.Strings(uncovered)
			result.AddError(RuleLaunchCoverage, 0, "locations",
				fmt.Sprintf("%d emplacement(s) ne sont affectés à aucun job: %s", len(uncovered), strings.Join(uncovered, ", ")))
		}
	}

	jobs, err := v.jobs.FindByInventory(ctx, inv.ID)
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		result.AddError(RuleLaunchJobsRequired, 0, "jobs", "Aucun job n'est associé à cet inventaire")
	} else {
		var notReady []string
		for _, j := range jobs {
			if !j.Status.IsReady() {
				notReady = append(notReady, j.Reference)
			}
		}
		if len(notReady) > 0 {
			result.AddError(RuleLaunchJobsReady, 0, "jobs",
				fmt.Sprintf("Tous les jobs doivent être au statut %s: %s", JobStatusPret, strings.Join(notReady, ", ")))
		}
	}

	if !result.IsValid() {
		result.AddInfo(RuleLaunchGeneralAdvice,
			"Merci de réceptionner tous les commandes et ranger et clôturer tous les commandes.")
	}
	return nil
}

func (v *LaunchValidator) checkTournant(ctx context.Context, inv *Inventory, result *shared.ValidationResult) error {
	jobs, err := v.jobs.FindByInventory(ctx, inv.ID)
	if err != nil {
		return err
	}
	ready := false
	for _, j := range jobs {
		if j.Status.IsReady() {
			ready = true
			break
		}
	}
	if !ready {
		result.AddError(RuleLaunchTournantReady, 0, "jobs",
			fmt.Sprintf("Au moins un job doit être au statut %s pour un inventaire tournant", JobStatusPret))
	}

	covered, err := v.jobs.CoveredLocationIDs(ctx, inv.ID)
	if err != nil {
		return err
	}
	if len(covered) == 0 {
		result.AddError(RuleLaunchTournantScope, 0, "locations",
			"Au moins un emplacement doit être affecté à un job pour un inventaire tournant")
	}
	return nil
}

func sortedCountings(countings []Counting) []Counting {
	sorted := make([]Counting, len(countings))
	copy(sorted, countings)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Order < sorted[j].Order })
	return sorted
}
