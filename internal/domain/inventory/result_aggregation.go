package inventory

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/wms/backend/internal/domain/shared"
)

// ResultObservation is one summed quantity of a (location, product, job)
// group for one pass, as read from the counting details
type ResultObservation struct {
	LocationID        int64
	LocationReference string
	LocationCode      string
	ProductID         *int64
	ProductReference  string
	ProductBarcode    string
	ProductLabel      string
	ProductCode       string
	JobID             *int64
	JobReference      string
	Order             int
	Quantity          int
}

// ResultRow is the per-group outcome of the three passes
type ResultRow struct {
	LocationID         int64
	Location           string
	Product            string
	ProductDescription string
	ProductCode        string
	JobID              *int64
	JobReference       string
	Quantities         []*int
	Variances          []*int
	FinalResult        *int
	EcartComptageID    *int64
	Resolved           *bool
}

// PassLabel returns the result column of a pass quantity
func PassLabel(order int) string {
	if order == 1 {
		return "1er comptage"
	}
	return fmt.Sprintf("%de comptage", order)
}

// VarianceLabel returns the result column of the gap between two passes
func VarianceLabel(previous, order int) string {
	return fmt.Sprintf("ecart_%d_%d", previous, order)
}

// ResolveAggregationMode returns the single manual mode driving the
// inventory's passes
func ResolveAggregationMode(countings []Counting) (CountMode, error) {
	seen := make(map[CountMode]bool)
	var modes []CountMode
	for _, c := range sortedCountings(countings) {
		if !seen[c.Mode] {
			seen[c.Mode] = true
			modes = append(modes, c.Mode)
		}
	}
	for _, m := range modes {
		if !m.IsManual() {
			return "", unsupportedCountMode(string(m))
		}
	}
	if len(modes) == 0 {
		return "", unsupportedCountMode("")
	}
	if len(modes) > 1 {
		return "", ambiguousCountMode(modes)
	}
	return modes[0], nil
}

type resultGroupKey struct {
	locationID int64
	productID  int64
	jobID      int64
}

// AggregateResults groups the observations per (location, product, job),
// lays out one quantity per configured pass and the absolute variance of
// each consecutive pair, and attaches the discrepancy of the group's key.
// A pass nobody counted yet stays a null column.
// Rows are sorted by location reference, product reference then job id.
func AggregateResults(mode CountMode, passes int, observations []ResultObservation, ecarts []EcartComptage) []ResultRow {
	if len(observations) == 0 {
		return []ResultRow{}
	}

	maxOrder := passes
	for _, obs := range observations {
		if obs.Order > maxOrder {
			maxOrder = obs.Order
		}
	}

	ecartByKey := make(map[[2]int64]*EcartComptage, len(ecarts))
	for i := range ecarts {
		k := ecarts[i].Key()
		ecartByKey[[2]int64{k.LocationID, k.ProductKey()}] = &ecarts[i]
	}

	type group struct {
		first      ResultObservation
		quantities map[int]int
	}
	groups := make(map[resultGroupKey]*group)
	var keys []resultGroupKey
	for _, obs := range observations {
		key := resultGroupKey{locationID: obs.LocationID, productID: derefID(obs.ProductID), jobID: derefID(obs.JobID)}
		g, ok := groups[key]
		if !ok {
			g = &group{first: obs, quantities: make(map[int]int)}
			groups[key] = g
			keys = append(keys, key)
		}
		g.quantities[obs.Order] += obs.Quantity
	}

	sort.SliceStable(keys, func(i, j int) bool {
		a, b := groups[keys[i]].first, groups[keys[j]].first
		if a.LocationReference != b.LocationReference {
			return a.LocationReference < b.LocationReference
		}
		if a.ProductReference != b.ProductReference {
			return a.ProductReference < b.ProductReference
		}
		return derefID(a.JobID) < derefID(b.JobID)
	})

	rows := make([]ResultRow, 0, len(keys))
	for _, key := range keys {
		g := groups[key]
		row := ResultRow{
			LocationID:   g.first.LocationID,
			Location:     g.first.LocationReference,
			JobID:        g.first.JobID,
			JobReference: g.first.JobReference,
			Quantities:   make([]*int, maxOrder),
		}
		if mode == CountModeByArticle && g.first.ProductID != nil {
			row.Product = g.first.ProductBarcode
			if row.Product == "" {
				row.Product = g.first.ProductReference
			}
			row.ProductDescription = g.first.ProductLabel
			row.ProductCode = g.first.ProductCode
		}
		for order := 1; order <= maxOrder; order++ {
			if q, ok := g.quantities[order]; ok {
				q := q
				row.Quantities[order-1] = &q
			}
		}
		row.Variances = variances(row.Quantities)

		if e, ok := ecartByKey[[2]int64{key.locationID, key.productID}]; ok {
			id := e.ID
			resolved := e.Resolved
			row.EcartComptageID = &id
			row.FinalResult = e.FinalResult
			row.Resolved = &resolved
		}
		rows = append(rows, row)
	}
	return rows
}

// variances returns |q[n] - q[n-1]| for each consecutive pair, nil when
// either side is missing
func variances(quantities []*int) []*int {
	if len(quantities) < 2 {
		return nil
	}
	out := make([]*int, len(quantities)-1)
	for i := 1; i < len(quantities); i++ {
		prev, cur := quantities[i-1], quantities[i]
		if prev == nil || cur == nil {
			continue
		}
		d := *cur - *prev
		if d < 0 {
			d = -d
		}
		out[i-1] = &d
	}
	return out
}

// Columns returns the ordered keys of the row
func (r ResultRow) Columns() []string {
	cols := []string{"location", "location_id"}
	if r.Product != "" {
		cols = append(cols, "product", "product_description", "product_internal_code")
	}
	if r.JobID != nil {
		cols = append(cols, "job_id", "job_reference")
	}
	for i := range r.Quantities {
		order := i + 1
		cols = append(cols, PassLabel(order))
		if order > 1 {
			cols = append(cols, VarianceLabel(order-1, order))
		}
	}
	cols = append(cols, "final_result")
	if r.EcartComptageID != nil {
		cols = append(cols, "ecart_comptage_id", "resolved")
	}
	return cols
}

// Values returns the row flattened by column key
func (r ResultRow) Values() map[string]interface{} {
	values := map[string]interface{}{
		"location":     r.Location,
		"location_id":  r.LocationID,
		"final_result": r.FinalResult,
	}
	if r.Product != "" {
		values["product"] = r.Product
		values["product_description"] = r.ProductDescription
		values["product_internal_code"] = r.ProductCode
	}
	if r.JobID != nil {
		values["job_id"] = *r.JobID
		values["job_reference"] = r.JobReference
	}
	for i, q := range r.Quantities {
		order := i + 1
		values[PassLabel(order)] = q
		if order > 1 {
			values[VarianceLabel(order-1, order)] = r.Variances[i-1]
		}
	}
	if r.EcartComptageID != nil {
		values["ecart_comptage_id"] = *r.EcartComptageID
		values["resolved"] = r.Resolved
	}
	return values
}

// MarshalJSON renders the row with its pass and variance columns flattened
func (r ResultRow) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Values())
}

func derefID(id *int64) int64 {
	if id == nil {
		return 0
	}
	return *id
}

func ambiguousCountMode(modes []CountMode) error {
	names := make([]string, len(modes))
	for i, m := range modes {
		names[i] = "'" + m.String() + "'"
	}
	return shared.NewDomainError(ErrAmbiguousCountMode.Code,
		fmt.Sprintf("Plusieurs modes de comptage détectés (%s); un seul mode est supporté pour les résultats", strings.Join(names, ", ")))
}
