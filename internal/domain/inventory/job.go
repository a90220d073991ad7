package inventory

// JobStatus is the progress status of a counting job
type JobStatus string

const (
	JobStatusEnAttente JobStatus = "EN ATTENTE"
	JobStatusAffecte   JobStatus = "AFFECTE"
	JobStatusPret      JobStatus = "PRET"
	JobStatusTransfert JobStatus = "TRANSFERT"
	JobStatusEntame    JobStatus = "ENTAME"
	JobStatusValide    JobStatus = "VALIDE"
	JobStatusTermine   JobStatus = "TERMINE"
)

// IsReady reports whether the job can be started by operators
func (s JobStatus) IsReady() bool {
	return s == JobStatusPret
}

// IsDone reports whether the job is finished
func (s JobStatus) IsDone() bool {
	return s == JobStatusTermine
}

// Job is a unit of counting work over a set of locations. Jobs are owned by
// the assignment workflow; this package only reads them.
type Job struct {
	ID          int64     `json:"id"`
	Reference   string    `json:"reference"`
	InventoryID int64     `json:"inventory_id"`
	WarehouseID int64     `json:"warehouse_id"`
	Status      JobStatus `json:"status"`
}

// JobDetail assigns one location to a job
type JobDetail struct {
	ID         int64
	JobID      int64
	LocationID int64
}
