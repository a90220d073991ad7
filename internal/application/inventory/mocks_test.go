package inventory

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"
	"github.com/wms/backend/internal/domain/inventory"
	"github.com/wms/backend/internal/domain/shared"
)

// MockEventPublisher is a mock implementation of shared.EventPublisher
type MockEventPublisher struct {
	mu     sync.Mutex
	events []shared.DomainEvent
}

func NewMockEventPublisher() *MockEventPublisher {
	return &MockEventPublisher{
		events: make([]shared.DomainEvent, 0),
	}
}

func (m *MockEventPublisher) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, events...)
	return nil
}

func (m *MockEventPublisher) GetEvents() []shared.DomainEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]shared.DomainEvent, len(m.events))
	copy(result, m.events)
	return result
}

func (m *MockEventPublisher) GetEventsByType(eventType string) []shared.DomainEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	result := make([]shared.DomainEvent, 0)
	for _, e := range m.events {
		if e.EventType() == eventType {
			result = append(result, e)
		}
	}
	return result
}

// MockInventoryRepository is a mock implementation of inventory.InventoryRepository
type MockInventoryRepository struct {
	mock.Mock
}

func (m *MockInventoryRepository) FindByID(ctx context.Context, id int64) (*inventory.Inventory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Inventory), args.Error(1)
}

func (m *MockInventoryRepository) FindByIDForUpdate(ctx context.Context, id int64) (*inventory.Inventory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Inventory), args.Error(1)
}

func (m *MockInventoryRepository) FindAll(ctx context.Context, filter inventory.InventoryFilter) ([]inventory.Inventory, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]inventory.Inventory), args.Get(1).(int64), args.Error(2)
}

func (m *MockInventoryRepository) ExistsByLabel(ctx context.Context, label string, excludeID int64) (bool, error) {
	args := m.Called(ctx, label, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockInventoryRepository) Create(ctx context.Context, inv *inventory.Inventory) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

func (m *MockInventoryRepository) Save(ctx context.Context, inv *inventory.Inventory) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

func (m *MockInventoryRepository) SaveConfiguration(ctx context.Context, inv *inventory.Inventory) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

// MockCountingRepository is a mock implementation of inventory.CountingRepository
type MockCountingRepository struct {
	mock.Mock
}

func (m *MockCountingRepository) FindByID(ctx context.Context, id int64) (*inventory.Counting, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Counting), args.Error(1)
}

func (m *MockCountingRepository) FindByInventory(ctx context.Context, inventoryID int64) ([]inventory.Counting, error) {
	args := m.Called(ctx, inventoryID)
	return args.Get(0).([]inventory.Counting), args.Error(1)
}

// MockCountingDetailRepository is a mock implementation of inventory.CountingDetailRepository
type MockCountingDetailRepository struct {
	mock.Mock
}

func (m *MockCountingDetailRepository) Create(ctx context.Context, detail *inventory.CountingDetail) error {
	args := m.Called(ctx, detail)
	return args.Error(0)
}

func (m *MockCountingDetailRepository) CreateBatch(ctx context.Context, details []inventory.CountingDetail) error {
	args := m.Called(ctx, details)
	return args.Error(0)
}

func (m *MockCountingDetailRepository) Update(ctx context.Context, detail *inventory.CountingDetail) error {
	args := m.Called(ctx, detail)
	return args.Error(0)
}

func (m *MockCountingDetailRepository) FindByID(ctx context.Context, id int64) (*inventory.CountingDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.CountingDetail), args.Error(1)
}

func (m *MockCountingDetailRepository) FindExisting(ctx context.Context, countingID, locationID int64, productID, jobID *int64) (*inventory.CountingDetail, error) {
	args := m.Called(ctx, countingID, locationID, productID, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.CountingDetail), args.Error(1)
}

func (m *MockCountingDetailRepository) FindByKey(ctx context.Context, key inventory.DiscrepancyKey) ([]inventory.Observation, error) {
	args := m.Called(ctx, key)
	return args.Get(0).([]inventory.Observation), args.Error(1)
}

func (m *MockCountingDetailRepository) DeleteByCountingAndSource(ctx context.Context, countingID int64, source inventory.DetailSource) (int64, error) {
	args := m.Called(ctx, countingID, source)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCountingDetailRepository) FindReferencedIDs(ctx context.Context, countingID int64, source inventory.DetailSource) ([]int64, error) {
	args := m.Called(ctx, countingID, source)
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockCountingDetailRepository) CountByCountingAndSource(ctx context.Context, countingID int64, source inventory.DetailSource) (int64, error) {
	args := m.Called(ctx, countingID, source)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCountingDetailRepository) FindResultObservations(ctx context.Context, inventoryID, warehouseID int64) ([]inventory.ResultObservation, error) {
	args := m.Called(ctx, inventoryID, warehouseID)
	return args.Get(0).([]inventory.ResultObservation), args.Error(1)
}

// MockEcartComptageRepository is a mock implementation of inventory.EcartComptageRepository
type MockEcartComptageRepository struct {
	mock.Mock
}

func (m *MockEcartComptageRepository) FindByID(ctx context.Context, id int64) (*inventory.EcartComptage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.EcartComptage), args.Error(1)
}

func (m *MockEcartComptageRepository) FindByIDForUpdate(ctx context.Context, id int64) (*inventory.EcartComptage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.EcartComptage), args.Error(1)
}

func (m *MockEcartComptageRepository) FindByKeyForUpdate(ctx context.Context, key inventory.DiscrepancyKey) (*inventory.EcartComptage, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.EcartComptage), args.Error(1)
}

func (m *MockEcartComptageRepository) FindByInventory(ctx context.Context, inventoryID int64, filter shared.Filter) ([]inventory.EcartComptage, int64, error) {
	args := m.Called(ctx, inventoryID, filter)
	return args.Get(0).([]inventory.EcartComptage), args.Get(1).(int64), args.Error(2)
}

func (m *MockEcartComptageRepository) Create(ctx context.Context, ecart *inventory.EcartComptage) error {
	args := m.Called(ctx, ecart)
	return args.Error(0)
}

func (m *MockEcartComptageRepository) Save(ctx context.Context, ecart *inventory.EcartComptage) error {
	args := m.Called(ctx, ecart)
	return args.Error(0)
}

func (m *MockEcartComptageRepository) FindByCountingSource(ctx context.Context, countingID int64, source inventory.DetailSource) ([]inventory.EcartComptage, error) {
	args := m.Called(ctx, countingID, source)
	return args.Get(0).([]inventory.EcartComptage), args.Error(1)
}

func (m *MockEcartComptageRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockJobReader is a mock implementation of inventory.JobReader
type MockJobReader struct {
	mock.Mock
}

func (m *MockJobReader) FindByInventory(ctx context.Context, inventoryID int64) ([]inventory.Job, error) {
	args := m.Called(ctx, inventoryID)
	return args.Get(0).([]inventory.Job), args.Error(1)
}

func (m *MockJobReader) CoveredLocationIDs(ctx context.Context, inventoryID int64) ([]int64, error) {
	args := m.Called(ctx, inventoryID)
	return args.Get(0).([]int64), args.Error(1)
}

// MockLocationReader is a mock implementation of inventory.LocationReader
type MockLocationReader struct {
	mock.Mock
}

func (m *MockLocationReader) GroupingExists(ctx context.Context, accountID int64) (bool, error) {
	args := m.Called(ctx, accountID)
	return args.Bool(0), args.Error(1)
}

func (m *MockLocationReader) FindActiveByAccount(ctx context.Context, accountID int64) ([]inventory.Location, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).([]inventory.Location), args.Error(1)
}

func (m *MockLocationReader) FindByID(ctx context.Context, id int64) (*inventory.Location, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Location), args.Error(1)
}

// MockStockReader is a mock implementation of inventory.StockReader
type MockStockReader struct {
	mock.Mock
}

func (m *MockStockReader) CountByInventory(ctx context.Context, inventoryID int64) (int64, error) {
	args := m.Called(ctx, inventoryID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStockReader) FindSnapshot(ctx context.Context, inventoryID int64, warehouseIDs []int64) ([]inventory.StockRow, error) {
	args := m.Called(ctx, inventoryID, warehouseIDs)
	return args.Get(0).([]inventory.StockRow), args.Error(1)
}

// MockMasterDataReader is a mock implementation of inventory.MasterDataReader
type MockMasterDataReader struct {
	mock.Mock
}

func (m *MockMasterDataReader) AccountExists(ctx context.Context, accountID int64) (bool, error) {
	args := m.Called(ctx, accountID)
	return args.Bool(0), args.Error(1)
}

func (m *MockMasterDataReader) MissingWarehouses(ctx context.Context, warehouseIDs []int64) ([]int64, error) {
	args := m.Called(ctx, warehouseIDs)
	return args.Get(0).([]int64), args.Error(1)
}

// testRepos bundles the mocks behind a NoOpTransactionScope
type testRepos struct {
	inventories *MockInventoryRepository
	countings   *MockCountingRepository
	details     *MockCountingDetailRepository
	ecarts      *MockEcartComptageRepository
	jobs        *MockJobReader
	locations   *MockLocationReader
	stocks      *MockStockReader
}

func newTestRepos() *testRepos {
	return &testRepos{
		inventories: new(MockInventoryRepository),
		countings:   new(MockCountingRepository),
		details:     new(MockCountingDetailRepository),
		ecarts:      new(MockEcartComptageRepository),
		jobs:        new(MockJobReader),
		locations:   new(MockLocationReader),
		stocks:      new(MockStockReader),
	}
}

func (r *testRepos) scope() *NoOpTransactionScope {
	return NewNoOpTransactionScope(Repositories{
		Inventories: r.inventories,
		Countings:   r.countings,
		Details:     r.details,
		Ecarts:      r.ecarts,
		Jobs:        r.jobs,
		Locations:   r.locations,
		Stocks:      r.stocks,
	})
}

func (r *testRepos) assertExpectations(t mock.TestingT) {
	r.inventories.AssertExpectations(t)
	r.countings.AssertExpectations(t)
	r.details.AssertExpectations(t)
	r.ecarts.AssertExpectations(t)
	r.jobs.AssertExpectations(t)
	r.locations.AssertExpectations(t)
	r.stocks.AssertExpectations(t)
}
