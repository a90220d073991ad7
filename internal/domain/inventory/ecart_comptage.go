package inventory

import (
	"fmt"
	"strings"

	"github.com/wms/backend/internal/domain/shared"
)

// Stopped reasons stamped on a discrepancy
const (
	StoppedReasonEcartZero = "ECART_ZERO"
	StoppedReasonManual    = "RESOLU_MANUEL"
)

// ComptageSequence records that a counting detail contributed to a
// discrepancy, in arrival order
type ComptageSequence struct {
	shared.BaseEntity
	EcartComptageID   int64
	SequenceNumber    int
	CountingDetailID  int64
	Quantity          int
	EcartWithPrevious *int
}

// EcartComptage is the reconciliation record of one discrepancy key
type EcartComptage struct {
	shared.BaseAggregateRoot
	Reference       string
	InventoryID     int64
	LocationID      int64
	ProductID       *int64
	TotalSequences  int
	StoppedSequence *int
	FinalResult     *int
	Resolved        bool
	Justification   *string
	StoppedReason   *string
	Sequences       []ComptageSequence
}

// NewEcartComptage opens a discrepancy for the key and back-fills the
// observations recorded so far, in pass order
func NewEcartComptage(key DiscrepancyKey, observations []Observation) (*EcartComptage, error) {
	if len(observations) < 2 {
		return nil, insufficientSequences(len(observations))
	}
	e := &EcartComptage{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Reference:         NewReference("ECT"),
		InventoryID:       key.InventoryID,
		LocationID:        key.LocationID,
		ProductID:         key.ProductID,
	}
	for _, obs := range observations {
		if err := e.AppendObservation(obs.ID, obs.Quantity); err != nil {
			return nil, err
		}
	}
	return e, nil
}

// Key returns the discrepancy key
func (e *EcartComptage) Key() DiscrepancyKey {
	return DiscrepancyKey{InventoryID: e.InventoryID, LocationID: e.LocationID, ProductID: e.ProductID}
}

// HasDetail reports whether the detail already contributed a sequence
func (e *EcartComptage) HasDetail(detailID int64) bool {
	return e.sequenceFor(detailID) != nil
}

// AppendObservation adds a sequence for a new detail. A zero gap with the
// previous sequence stops the discrepancy with ECART_ZERO unless a stop
// reason is already set.
func (e *EcartComptage) AppendObservation(detailID int64, quantity int) error {
	if e.Resolved {
		return ErrEcartAlreadyResolved
	}
	seq := ComptageSequence{
		BaseEntity:       shared.NewBaseEntity(),
		EcartComptageID:  e.ID,
		SequenceNumber:   len(e.Sequences) + 1,
		CountingDetailID: detailID,
		Quantity:         quantity,
	}
	if n := len(e.Sequences); n > 0 {
		gap := quantity - e.Sequences[n-1].Quantity
		seq.EcartWithPrevious = &gap
	}
	e.Sequences = append(e.Sequences, seq)
	e.recount()
	e.stampZeroGap(seq)
	e.Touch()
	return nil
}

// CorrectObservation updates the quantity of the latest sequence. Earlier
// sequences have been superseded by a later pass and cannot change.
func (e *EcartComptage) CorrectObservation(detailID int64, quantity int) error {
	if e.Resolved {
		return ErrEcartAlreadyResolved
	}
	n := len(e.Sequences)
	if n == 0 || e.Sequences[n-1].CountingDetailID != detailID {
		return ErrCountingDetailLocked
	}
	last := &e.Sequences[n-1]
	last.Quantity = quantity
	last.EcartWithPrevious = nil
	if n > 1 {
		gap := quantity - e.Sequences[n-2].Quantity
		last.EcartWithPrevious = &gap
	}
	last.Touch()
	e.restampZeroGap()
	e.Touch()
	return nil
}

// DetachDetails drops the sequences contributed by the matching details,
// renumbers the remaining ones and recomputes their gaps and the zero-gap
// stop. It reports whether at least two sequences remain.
func (e *EcartComptage) DetachDetails(detached func(detailID int64) bool) bool {
	kept := e.Sequences[:0]
	for _, seq := range e.Sequences {
		if !detached(seq.CountingDetailID) {
			kept = append(kept, seq)
		}
	}
	e.Sequences = kept
	for i := range e.Sequences {
		seq := &e.Sequences[i]
		seq.SequenceNumber = i + 1
		seq.EcartWithPrevious = nil
		if i > 0 {
			gap := seq.Quantity - e.Sequences[i-1].Quantity
			seq.EcartWithPrevious = &gap
		}
		seq.Touch()
	}
	e.recount()
	if e.StoppedReason != nil && *e.StoppedReason == StoppedReasonManual &&
		e.StoppedSequence != nil && *e.StoppedSequence > e.TotalSequences {
		number := e.TotalSequences
		e.StoppedSequence = &number
	}
	e.restampZeroGap()
	e.Touch()
	return e.TotalSequences >= 2
}

// SetFinalResult records the adjudicated quantity. When resolved is true and
// no stop reason is set, the discrepancy is stamped RESOLU_MANUEL.
func (e *EcartComptage) SetFinalResult(value int, justification *string, resolved *bool) error {
	e.recount()
	if e.TotalSequences < 2 {
		return insufficientSequences(e.TotalSequences)
	}
	e.FinalResult = &value
	if justification != nil {
		e.setJustification(*justification)
	}
	if resolved != nil {
		e.Resolved = *resolved
		if e.Resolved {
			e.stampManual()
			e.AddDomainEvent(NewEcartResolvedEvent(e))
		}
	}
	e.Touch()
	e.IncrementVersion()
	return nil
}

// Resolve closes the discrepancy. A final result must have been set.
func (e *EcartComptage) Resolve(justification *string) error {
	e.recount()
	if e.TotalSequences < 2 {
		return insufficientSequences(e.TotalSequences)
	}
	if e.FinalResult == nil {
		return ErrFinalResultRequired
	}
	if justification != nil {
		e.setJustification(*justification)
	}
	e.Resolved = true
	e.stampManual()
	e.AddDomainEvent(NewEcartResolvedEvent(e))
	e.Touch()
	e.IncrementVersion()
	return nil
}

// LastQuantity returns the quantity of the latest sequence
func (e *EcartComptage) LastQuantity() *int {
	if len(e.Sequences) == 0 {
		return nil
	}
	q := e.Sequences[len(e.Sequences)-1].Quantity
	return &q
}

func (e *EcartComptage) recount() {
	e.TotalSequences = len(e.Sequences)
}

func (e *EcartComptage) stampZeroGap(seq ComptageSequence) {
	if e.StoppedReason != nil || seq.EcartWithPrevious == nil || *seq.EcartWithPrevious != 0 {
		return
	}
	reason := StoppedReasonEcartZero
	number := seq.SequenceNumber
	e.StoppedReason = &reason
	e.StoppedSequence = &number
}

// restampZeroGap drops an ECART_ZERO stop and stamps the first zero gap
// left, if any. A manual stop is kept.
func (e *EcartComptage) restampZeroGap() {
	if e.StoppedReason != nil && *e.StoppedReason != StoppedReasonEcartZero {
		return
	}
	e.StoppedReason = nil
	e.StoppedSequence = nil
	for _, seq := range e.Sequences {
		e.stampZeroGap(seq)
	}
}

func (e *EcartComptage) stampManual() {
	if e.StoppedReason != nil {
		return
	}
	reason := StoppedReasonManual
	number := e.TotalSequences
	e.StoppedReason = &reason
	e.StoppedSequence = &number
}

func (e *EcartComptage) setJustification(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		e.Justification = nil
		return
	}
	e.Justification = &text
}

func (e *EcartComptage) sequenceFor(detailID int64) *ComptageSequence {
	for i := range e.Sequences {
		if e.Sequences[i].CountingDetailID == detailID {
			return &e.Sequences[i]
		}
	}
	return nil
}

func insufficientSequences(total int) error {
	return shared.NewDomainError(ErrInsufficientSequences.Code,
		fmt.Sprintf("Au moins 2 séquences de comptage sont requises (actuellement %d)", total))
}
