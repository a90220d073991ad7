package inventory

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wms/backend/internal/domain/inventory"
	"github.com/wms/backend/internal/domain/shared"
	"go.uber.org/zap/zaptest"
)

// stubExporter writes one line per row
type stubExporter struct {
	title string
}

func (e *stubExporter) ContentType() string { return "text/plain" }
func (e *stubExporter) Extension() string   { return ".txt" }

func (e *stubExporter) Write(w io.Writer, title string, rows []inventory.ResultRow) error {
	e.title = title
	for _, r := range rows {
		if _, err := io.WriteString(w, r.Location+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func newResultService(t *testing.T, repos *testRepos, exporter ResultExporter) *ResultService {
	return NewResultService(repos.inventories, repos.details, repos.ecarts, exporter, zaptest.NewLogger(t))
}

func TestResultService_Results(t *testing.T) {
	ctx := context.Background()
	allEcarts := shared.Filter{Page: 1, PageSize: 0}

	t.Run("aggregates passes and attaches discrepancy outcome", func(t *testing.T) {
		repos := newTestRepos()
		service := newResultService(t, repos, &stubExporter{})
		inv := newPreparedInventory(t, bulkPassRequests())

		e := openEcart(t, 10, 12)
		require.NoError(t, e.SetFinalResult(11, nil, boolPtr(true)))
		e.ProductID = nil

		repos.inventories.On("FindByID", mock.Anything, inv.ID).Return(inv, nil)
		repos.details.On("FindResultObservations", mock.Anything, inv.ID, int64(10)).Return([]inventory.ResultObservation{
			{LocationID: 1, LocationReference: "A-01", Order: 1, Quantity: 10},
			{LocationID: 1, LocationReference: "A-01", Order: 2, Quantity: 12},
			{LocationID: 2, LocationReference: "A-02", Order: 1, Quantity: 4},
		}, nil)
		repos.ecarts.On("FindByInventory", mock.Anything, inv.ID, allEcarts).Return([]inventory.EcartComptage{*e}, int64(1), nil)

		rows, err := service.Results(ctx, inv.ID, 10)

		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "A-01", rows[0].Location)
		assert.Equal(t, 2, *rows[0].Variances[0])
		require.NotNil(t, rows[0].FinalResult)
		assert.Equal(t, 11, *rows[0].FinalResult)
		require.NotNil(t, rows[0].Resolved)
		assert.True(t, *rows[0].Resolved)
		assert.Nil(t, rows[1].FinalResult)
		// pass 3 has no capture yet
		require.Len(t, rows[1].Quantities, 3)
		assert.Nil(t, rows[1].Quantities[2])
		require.Len(t, rows[1].Variances, 2)
		assert.Nil(t, rows[1].Variances[1])
		repos.assertExpectations(t)
	})

	t.Run("rejects a warehouse outside the inventory", func(t *testing.T) {
		repos := newTestRepos()
		service := newResultService(t, repos, &stubExporter{})
		inv := newPreparedInventory(t, bulkPassRequests())
		repos.inventories.On("FindByID", mock.Anything, inv.ID).Return(inv, nil)

		_, err := service.Results(ctx, inv.ID, 99)

		assert.True(t, errors.Is(err, inventory.ErrWarehouseNotLinked))
	})

	t.Run("stock image inventories are not aggregated", func(t *testing.T) {
		repos := newTestRepos()
		service := newResultService(t, repos, &stubExporter{})
		inv := newPreparedInventory(t, stockImagePassRequests())
		repos.inventories.On("FindByID", mock.Anything, inv.ID).Return(inv, nil)

		_, err := service.Results(ctx, inv.ID, 10)

		assert.True(t, errors.Is(err, inventory.ErrUnsupportedCountMode))
		repos.details.AssertNotCalled(t, "FindResultObservations", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestResultService_Export(t *testing.T) {
	repos := newTestRepos()
	exporter := &stubExporter{}
	service := newResultService(t, repos, exporter)
	inv := newPreparedInventory(t, bulkPassRequests())

	repos.inventories.On("FindByID", mock.Anything, inv.ID).Return(inv, nil)
	repos.details.On("FindResultObservations", mock.Anything, inv.ID, int64(11)).Return([]inventory.ResultObservation{
		{LocationID: 3, LocationReference: "B-03", Order: 1, Quantity: 1},
	}, nil)
	repos.ecarts.On("FindByInventory", mock.Anything, inv.ID, mock.Anything).Return([]inventory.EcartComptage{}, int64(0), nil)

	var buf bytes.Buffer
	filename, err := service.Export(context.Background(), inv.ID, 11, &buf)

	require.NoError(t, err)
	assert.Equal(t, "resultats_"+inv.Reference+".txt", filename)
	assert.Equal(t, "B-03\n", buf.String())
	assert.Equal(t, inv.Label, exporter.title)
	assert.Equal(t, "text/plain", service.ContentType())
}
