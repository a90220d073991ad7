package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wms/backend/internal/domain/inventory"
	"github.com/xuri/excelize/v2"
)

func intPtr(v int) *int { return &v }

func int64Ptr(v int64) *int64 { return &v }

func boolPtr(v bool) *bool { return &v }

func sampleRows() []inventory.ResultRow {
	return []inventory.ResultRow{
		{
			LocationID:         1,
			Location:           "A-01",
			Product:            "3760001",
			ProductDescription: "Vis inox",
			ProductCode:        "VIS-01",
			Quantities:         []*int{intPtr(10), intPtr(7), intPtr(8)},
			Variances:          []*int{intPtr(3), intPtr(1)},
			FinalResult:        intPtr(8),
			EcartComptageID:    int64Ptr(55),
			Resolved:           boolPtr(true),
		},
		{
			LocationID: 2,
			Location:   "A-02",
			Product:    "3760002",
			Quantities: []*int{intPtr(4), nil, nil},
			Variances:  []*int{nil, nil},
		},
	}
}

func TestColumns(t *testing.T) {
	assert.Equal(t, []string{
		"location", "location_id",
		"product", "product_description", "product_internal_code",
		"1er comptage", "2e comptage", "ecart_1_2", "3e comptage", "ecart_2_3",
		"final_result", "ecart_comptage_id", "resolved",
	}, Columns(sampleRows()))

	assert.Equal(t, []string{"location", "location_id", "final_result"}, Columns(nil))
}

func TestResultWorkbook_Write(t *testing.T) {
	workbook := NewResultWorkbook("wms-backend")
	assert.Equal(t, ".xlsx", workbook.Extension())
	assert.Contains(t, workbook.ContentType(), "spreadsheetml")

	var buf bytes.Buffer
	require.NoError(t, workbook.Write(&buf, "Inventaire annuel - Entrepôt 1", sampleRows()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	props, err := f.GetDocProps()
	require.NoError(t, err)
	assert.Equal(t, "Inventaire annuel - Entrepôt 1", props.Title)
	assert.Equal(t, "wms-backend", props.Creator)

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "location", rows[0][0])
	assert.Equal(t, "resolved", rows[0][12])
	assert.Equal(t, []string{"A-01", "1", "3760001", "Vis inox", "VIS-01", "10", "7", "3", "8", "1", "8", "55", "TRUE"}, rows[1])
	assert.Equal(t, []string{"A-02", "2", "3760002", "", "", "4"}, rows[2])
}

func TestResultWorkbook_Write_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewResultWorkbook("wms-backend").Write(&buf, "Vide", nil))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"location", "location_id", "final_result"}, rows[0])
}
