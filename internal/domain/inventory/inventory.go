package inventory

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wms/backend/internal/domain/shared"
)

// InventoryStatus represents the lifecycle status of an inventory
type InventoryStatus string

const (
	InventoryStatusEnPreparation InventoryStatus = "EN PREPARATION"
	InventoryStatusEnRealisation InventoryStatus = "EN REALISATION"
	InventoryStatusTermine       InventoryStatus = "TERMINE"
	InventoryStatusCloture       InventoryStatus = "CLOTURE"
)

// IsValid checks if the status is a valid InventoryStatus
func (s InventoryStatus) IsValid() bool {
	switch s {
	case InventoryStatusEnPreparation, InventoryStatusEnRealisation, InventoryStatusTermine, InventoryStatusCloture:
		return true
	}
	return false
}

// String returns the string representation of InventoryStatus
func (s InventoryStatus) String() string {
	return string(s)
}

// CanTransitionTo checks if the status can transition to the target status
func (s InventoryStatus) CanTransitionTo(target InventoryStatus) bool {
	switch s {
	case InventoryStatusEnPreparation:
		return target == InventoryStatusEnRealisation
	case InventoryStatusEnRealisation:
		return target == InventoryStatusTermine || target == InventoryStatusEnPreparation
	case InventoryStatusTermine:
		return target == InventoryStatusCloture
	case InventoryStatusCloture:
		return false
	}
	return false
}

// InventoryType distinguishes full-warehouse from rotating inventories
type InventoryType string

const (
	InventoryTypeGeneral  InventoryType = "GENERAL"
	InventoryTypeTournant InventoryType = "TOURNANT"
)

// IsValid checks if the type is a valid InventoryType
func (t InventoryType) IsValid() bool {
	return t == InventoryTypeGeneral || t == InventoryTypeTournant
}

// ParseInventoryType parses a type, defaulting to GENERAL when empty
func ParseInventoryType(raw string) (InventoryType, error) {
	if strings.TrimSpace(raw) == "" {
		return InventoryTypeGeneral, nil
	}
	t := InventoryType(strings.ToUpper(strings.TrimSpace(raw)))
	if !t.IsValid() {
		return "", shared.NewDomainError(CodeInventoryInvalid, fmt.Sprintf("Type d'inventaire invalide: '%s'", raw))
	}
	return t, nil
}

// StatusTimestamps records when each status was last entered
type StatusTimestamps map[InventoryStatus]time.Time

// At returns the timestamp of a status, or nil if never entered
func (ts StatusTimestamps) At(status InventoryStatus) *time.Time {
	t, ok := ts[status]
	if !ok {
		return nil
	}
	return &t
}

// Setting links an inventory to one warehouse of an account
type Setting struct {
	shared.BaseEntity
	Reference   string
	InventoryID int64
	WarehouseID int64
	AccountID   int64
}

// Inventory is a physical stock-count campaign and the aggregate root of its
// settings and counting passes
type Inventory struct {
	shared.BaseAggregateRoot
	Reference   string
	Label       string
	Date        time.Time
	Status      InventoryStatus
	Type        InventoryType
	StatusDates StatusTimestamps
	IsDeleted   bool
	Settings    []Setting
	Countings   []Counting
}

// NewReference builds a short unique reference with the given prefix
func NewReference(prefix string) string {
	return prefix + "-" + strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:12])
}

// NewInventory creates an inventory in preparation
func NewInventory(label string, date time.Time, invType InventoryType, accountID int64, warehouseIDs []int64) (*Inventory, error) {
	var result shared.ValidationResult
	if strings.TrimSpace(label) == "" {
		result.AddError("inventory.label.required", 0, "label", "Le label est obligatoire")
	}
	if date.IsZero() {
		result.AddError("inventory.date.required", 0, "date", "La date est obligatoire")
	}
	if !invType.IsValid() {
		result.AddError("inventory.type.invalid", 0, "inventory_type", fmt.Sprintf("Type d'inventaire invalide: '%s'", invType))
	}
	result.Merge(validateSettings(accountID, warehouseIDs))
	if err := result.Err(CodeInventoryInvalid); err != nil {
		return nil, err
	}

	now := time.Now()
	inv := &Inventory{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Reference:         NewReference("INV"),
		Label:             strings.TrimSpace(label),
		Date:              date,
		Status:            InventoryStatusEnPreparation,
		Type:              invType,
		StatusDates:       StatusTimestamps{InventoryStatusEnPreparation: now},
	}
	inv.Settings = buildSettings(accountID, warehouseIDs)
	return inv, nil
}

// RecordCreation raises InventoryCreated. It is called once the inventory
// has been assigned its id.
func (inv *Inventory) RecordCreation() {
	inv.AddDomainEvent(NewInventoryCreatedEvent(inv))
}

func validateSettings(accountID int64, warehouseIDs []int64) shared.ValidationResult {
	var result shared.ValidationResult
	if accountID <= 0 {
		result.AddError("inventory.account.required", 0, "account_id", "L'account_id est obligatoire")
	}
	if len(warehouseIDs) == 0 {
		result.AddError("inventory.warehouse.required", 0, "warehouse", "Au moins un entrepôt est obligatoire")
	}
	for _, id := range warehouseIDs {
		if id <= 0 {
			result.AddError("inventory.warehouse.id", 0, "warehouse", "Chaque entrepôt doit avoir un ID")
			break
		}
	}
	return result
}

func buildSettings(accountID int64, warehouseIDs []int64) []Setting {
	seen := make(map[int64]bool, len(warehouseIDs))
	settings := make([]Setting, 0, len(warehouseIDs))
	for _, id := range warehouseIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		settings = append(settings, Setting{
			BaseEntity:  shared.NewBaseEntity(),
			Reference:   NewReference("SET"),
			WarehouseID: id,
			AccountID:   accountID,
		})
	}
	return settings
}

// AccountID returns the account the inventory's warehouses belong to
func (inv *Inventory) AccountID() int64 {
	if len(inv.Settings) == 0 {
		return 0
	}
	return inv.Settings[0].AccountID
}

// WarehouseIDs returns the linked warehouse ids
func (inv *Inventory) WarehouseIDs() []int64 {
	ids := make([]int64, 0, len(inv.Settings))
	for _, s := range inv.Settings {
		ids = append(ids, s.WarehouseID)
	}
	return ids
}

// HasWarehouse reports whether a Setting links the warehouse to the inventory
func (inv *Inventory) HasWarehouse(warehouseID int64) bool {
	for _, s := range inv.Settings {
		if s.WarehouseID == warehouseID {
			return true
		}
	}
	return false
}

// FirstPass returns the order-1 counting, or nil when not configured
func (inv *Inventory) FirstPass() *Counting {
	return FirstPass(inv.Countings)
}

// StartsFromStockImage reports whether pass 1 is seeded from the stock snapshot
func (inv *Inventory) StartsFromStockImage() bool {
	first := inv.FirstPass()
	return first != nil && first.IsStockImage()
}

// SnapshotByLocation reports whether the stock snapshot is seeded per
// location, which is the case when the passes after the stock image count
// in bulk
func (inv *Inventory) SnapshotByLocation() bool {
	if !inv.StartsFromStockImage() {
		return false
	}
	for _, c := range inv.Countings {
		if c.Order == 2 {
			return c.Mode == CountModeBulk
		}
	}
	return false
}

// IsEditable reports whether configuration changes are allowed
func (inv *Inventory) IsEditable() bool {
	return inv.Status == InventoryStatusEnPreparation && !inv.IsDeleted
}

// UpdateDetails changes label, date and type while in preparation
func (inv *Inventory) UpdateDetails(label string, date time.Time, invType InventoryType) error {
	if !inv.IsEditable() {
		return ErrInventoryNotEditable
	}
	if strings.TrimSpace(label) == "" {
		return shared.NewDomainError(CodeInventoryInvalid, "Le label est obligatoire")
	}
	if date.IsZero() {
		return shared.NewDomainError(CodeInventoryInvalid, "La date est obligatoire")
	}
	if !invType.IsValid() {
		return shared.NewDomainError(CodeInventoryInvalid, fmt.Sprintf("Type d'inventaire invalide: '%s'", invType))
	}
	inv.Label = strings.TrimSpace(label)
	inv.Date = date
	inv.Type = invType
	inv.touch()
	return nil
}

// ReplaceSettings replaces the warehouse links while in preparation
func (inv *Inventory) ReplaceSettings(accountID int64, warehouseIDs []int64) error {
	if !inv.IsEditable() {
		return ErrInventoryNotEditable
	}
	result := validateSettings(accountID, warehouseIDs)
	if err := result.Err(CodeInventoryInvalid); err != nil {
		return err
	}
	settings := buildSettings(accountID, warehouseIDs)
	for i := range settings {
		settings[i].InventoryID = inv.ID
	}
	inv.Settings = settings
	inv.touch()
	return nil
}

// ReplaceCountings replaces the full set of passes while in preparation.
// The set must hold exactly the orders 1, 2 and 3.
func (inv *Inventory) ReplaceCountings(countings []Counting) error {
	if !inv.IsEditable() {
		return ErrInventoryNotEditable
	}
	if len(countings) != RequiredPasses {
		return shared.NewDomainError(CodeSequenceInvalid, "Un inventaire doit contenir exactement 3 comptages")
	}
	seen := make(map[int]bool, RequiredPasses)
	for _, c := range countings {
		if c.Order < 1 || c.Order > RequiredPasses || seen[c.Order] {
			return shared.NewDomainError(CodeSequenceInvalid, "Les comptages doivent avoir les ordres 1, 2, 3")
		}
		seen[c.Order] = true
	}
	replaced := make([]Counting, len(countings))
	copy(replaced, countings)
	for i := range replaced {
		replaced[i].InventoryID = inv.ID
	}
	inv.Countings = replaced
	inv.touch()
	return nil
}

// Launch moves the inventory from preparation to realisation. Launch
// preconditions are checked by LaunchValidator before calling it.
func (inv *Inventory) Launch() error {
	if err := inv.transition(InventoryStatusEnRealisation); err != nil {
		return err
	}
	inv.AddDomainEvent(NewInventoryLaunchedEvent(inv))
	return nil
}

// Cancel moves the inventory back to preparation and clears the realisation timestamp
func (inv *Inventory) Cancel() error {
	if inv.Status != InventoryStatusEnRealisation {
		return invalidTransition(inv.Status, InventoryStatusEnPreparation)
	}
	if err := inv.transition(InventoryStatusEnPreparation); err != nil {
		return err
	}
	delete(inv.StatusDates, InventoryStatusEnRealisation)
	inv.AddDomainEvent(NewInventoryCancelledEvent(inv))
	return nil
}

// CompletionResult reports whether an inventory could be completed and,
// if not, which jobs are still open
type CompletionResult struct {
	Success          bool   `json:"success"`
	Message          string `json:"message,omitempty"`
	JobsNotCompleted []Job  `json:"jobs_not_completed,omitempty"`
}

// Complete moves the inventory to TERMINE when at least one job exists and
// every job is done. Otherwise the status is unchanged and the result lists
// the jobs still open.
func (inv *Inventory) Complete(jobs []Job) (CompletionResult, error) {
	if !inv.Status.CanTransitionTo(InventoryStatusTermine) {
		return CompletionResult{}, invalidTransition(inv.Status, InventoryStatusTermine)
	}
	if len(jobs) == 0 {
		return CompletionResult{
			Success: false,
			Message: "Aucun job n'est associé à cet inventaire",
		}, nil
	}
	var open []Job
	for _, j := range jobs {
		if !j.Status.IsDone() {
			open = append(open, j)
		}
	}
	if len(open) > 0 {
		return CompletionResult{
			Success:          false,
			Message:          fmt.Sprintf("%d job(s) ne sont pas terminés", len(open)),
			JobsNotCompleted: open,
		}, nil
	}
	if err := inv.transition(InventoryStatusTermine); err != nil {
		return CompletionResult{}, err
	}
	inv.AddDomainEvent(NewInventoryCompletedEvent(inv))
	return CompletionResult{Success: true}, nil
}

// Close moves a finished inventory to CLOTURE
func (inv *Inventory) Close() error {
	if err := inv.transition(InventoryStatusCloture); err != nil {
		return err
	}
	inv.AddDomainEvent(NewInventoryClosedEvent(inv))
	return nil
}

// SoftDelete flags an inventory in preparation as deleted
func (inv *Inventory) SoftDelete() error {
	if !inv.IsEditable() {
		return ErrInventoryNotEditable
	}
	inv.IsDeleted = true
	inv.touch()
	return nil
}

// EnsureTransition fails with INVALID_TRANSITION when the inventory cannot
// move to target from its current status
func (inv *Inventory) EnsureTransition(target InventoryStatus) error {
	if !inv.Status.CanTransitionTo(target) {
		return invalidTransition(inv.Status, target)
	}
	return nil
}

func (inv *Inventory) transition(target InventoryStatus) error {
	if err := inv.EnsureTransition(target); err != nil {
		return err
	}
	now := time.Now()
	if inv.StatusDates == nil {
		inv.StatusDates = make(StatusTimestamps)
	}
	inv.Status = target
	inv.StatusDates[target] = now
	inv.UpdatedAt = now
	inv.IncrementVersion()
	return nil
}

func (inv *Inventory) touch() {
	inv.UpdatedAt = time.Now()
	inv.IncrementVersion()
}
