package models

import (
	"github.com/wms/backend/internal/domain/inventory"
)

// CountingDetailModel is one observed quantity of a counting pass
type CountingDetailModel struct {
	BaseModel
	CountingID int64  `gorm:"not null;index:idx_detail_counting_location,priority:1"`
	LocationID int64  `gorm:"not null;index:idx_detail_counting_location,priority:2"`
	ProductID  *int64 `gorm:"index"`
	JobID      *int64 `gorm:"index"`
	Quantity   int    `gorm:"not null;default:0"`
	Source     string `gorm:"type:varchar(10);not null;default:MANUAL"`
}

// TableName returns the table name for GORM
func (CountingDetailModel) TableName() string {
	return "counting_details"
}

// ToDomain converts the persistence model to a domain CountingDetail
func (m *CountingDetailModel) ToDomain() *inventory.CountingDetail {
	return &inventory.CountingDetail{
		BaseEntity: m.BaseModel.ToDomain(),
		CountingID: m.CountingID,
		LocationID: m.LocationID,
		ProductID:  m.ProductID,
		JobID:      m.JobID,
		Quantity:   m.Quantity,
		Source:     inventory.DetailSource(m.Source),
	}
}

// CountingDetailModelFromDomain creates a persistence model from a domain CountingDetail
func CountingDetailModelFromDomain(d *inventory.CountingDetail) *CountingDetailModel {
	m := &CountingDetailModel{
		CountingID: d.CountingID,
		LocationID: d.LocationID,
		ProductID:  d.ProductID,
		JobID:      d.JobID,
		Quantity:   d.Quantity,
		Source:     string(d.Source),
	}
	if m.Source == "" {
		m.Source = string(inventory.DetailSourceManual)
	}
	m.FromDomainBaseEntity(d.BaseEntity)
	return m
}

// EcartComptageModel is the persistence model for the EcartComptage
// aggregate root. ProductKey is the product id or 0, so that location-level
// discrepancies are unique too.
type EcartComptageModel struct {
	AggregateModel
	Reference       string  `gorm:"type:varchar(50);not null;uniqueIndex"`
	InventoryID     int64   `gorm:"not null;uniqueIndex:idx_ecart_key,priority:1;index"`
	LocationID      int64   `gorm:"not null;uniqueIndex:idx_ecart_key,priority:2"`
	ProductKey      int64   `gorm:"not null;default:0;uniqueIndex:idx_ecart_key,priority:3"`
	ProductID       *int64  `gorm:"index"`
	TotalSequences  int     `gorm:"not null;default:0"`
	StoppedSequence *int
	FinalResult     *int
	Resolved        bool    `gorm:"not null;default:false;index"`
	Justification   *string `gorm:"type:text"`
	StoppedReason   *string `gorm:"type:varchar(20)"`
	// Associations
	Sequences []ComptageSequenceModel `gorm:"foreignKey:EcartComptageID;references:ID"`
}

// TableName returns the table name for GORM
func (EcartComptageModel) TableName() string {
	return "ecart_comptages"
}

// ToDomain converts the persistence model to a domain EcartComptage
func (m *EcartComptageModel) ToDomain() *inventory.EcartComptage {
	e := &inventory.EcartComptage{
		Reference:       m.Reference,
		InventoryID:     m.InventoryID,
		LocationID:      m.LocationID,
		ProductID:       m.ProductID,
		TotalSequences:  m.TotalSequences,
		StoppedSequence: m.StoppedSequence,
		FinalResult:     m.FinalResult,
		Resolved:        m.Resolved,
		Justification:   m.Justification,
		StoppedReason:   m.StoppedReason,
		Sequences:       make([]inventory.ComptageSequence, len(m.Sequences)),
	}
	m.PopulateAggregateRoot(&e.BaseAggregateRoot)
	for i := range m.Sequences {
		e.Sequences[i] = *m.Sequences[i].ToDomain()
	}
	return e
}

// FromDomain populates the persistence model from a domain EcartComptage
func (m *EcartComptageModel) FromDomain(e *inventory.EcartComptage) {
	m.FromDomainAggregateRoot(e.BaseAggregateRoot)
	m.Reference = e.Reference
	m.InventoryID = e.InventoryID
	m.LocationID = e.LocationID
	m.ProductID = e.ProductID
	m.ProductKey = e.Key().ProductKey()
	m.TotalSequences = e.TotalSequences
	m.StoppedSequence = e.StoppedSequence
	m.FinalResult = e.FinalResult
	m.Resolved = e.Resolved
	m.Justification = e.Justification
	m.StoppedReason = e.StoppedReason
	m.Sequences = make([]ComptageSequenceModel, len(e.Sequences))
	for i := range e.Sequences {
		m.Sequences[i] = *ComptageSequenceModelFromDomain(&e.Sequences[i])
	}
}

// EcartComptageModelFromDomain creates a persistence model from a domain EcartComptage
func EcartComptageModelFromDomain(e *inventory.EcartComptage) *EcartComptageModel {
	m := &EcartComptageModel{}
	m.FromDomain(e)
	return m
}

// ComptageSequenceModel is one contribution of a counting detail to a
// discrepancy. Rows are append-only apart from the latest one.
type ComptageSequenceModel struct {
	BaseModel
	EcartComptageID   int64 `gorm:"not null;uniqueIndex:idx_sequence_ecart_number,priority:1"`
	SequenceNumber    int   `gorm:"not null;uniqueIndex:idx_sequence_ecart_number,priority:2"`
	CountingDetailID  int64 `gorm:"not null;index"`
	Quantity          int   `gorm:"not null"`
	EcartWithPrevious *int
}

// TableName returns the table name for GORM
func (ComptageSequenceModel) TableName() string {
	return "comptage_sequences"
}

// ToDomain converts the persistence model to a domain ComptageSequence
func (m *ComptageSequenceModel) ToDomain() *inventory.ComptageSequence {
	return &inventory.ComptageSequence{
		BaseEntity:        m.BaseModel.ToDomain(),
		EcartComptageID:   m.EcartComptageID,
		SequenceNumber:    m.SequenceNumber,
		CountingDetailID:  m.CountingDetailID,
		Quantity:          m.Quantity,
		EcartWithPrevious: m.EcartWithPrevious,
	}
}

// ComptageSequenceModelFromDomain creates a persistence model from a domain ComptageSequence
func ComptageSequenceModelFromDomain(s *inventory.ComptageSequence) *ComptageSequenceModel {
	m := &ComptageSequenceModel{
		EcartComptageID:   s.EcartComptageID,
		SequenceNumber:    s.SequenceNumber,
		CountingDetailID:  s.CountingDetailID,
		Quantity:          s.Quantity,
		EcartWithPrevious: s.EcartWithPrevious,
	}
	m.FromDomainBaseEntity(s.BaseEntity)
	return m
}
