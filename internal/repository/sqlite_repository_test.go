package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/techiepookie/electronics-inventory-dashboard/internal/database"
	"github.com/techiepookie/electronics-inventory-dashboard/internal/domain"
)

func setupTestRepository(t *testing.T) *SQLiteInventoryRepository {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), "inventory_test.db"), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewSQLiteInventoryRepository(db)
}

func mustAddItem(t *testing.T, repo *SQLiteInventoryRepository, category, name string, quantity int, notes string, price float64) *domain.Item {
	t.Helper()

	item, err := domain.NewItem(category, name, quantity, notes, decimal.NewFromFloat(price))
	require.NoError(t, err)
	_, err = repo.AddItem(context.Background(), item)
	require.NoError(t, err)
	return item
}

func TestAddItem_ThenList(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	added := mustAddItem(t, repo, "Sensors & Modules", "DHT11", 5, "temperature + humidity", 120.0)
	assert.NotZero(t, added.ID)

	items, err := repo.ListItems(ctx, "")
	require.NoError(t, err)
	require.Len(t, items, 1)

	got := items[0]
	assert.Equal(t, added.ID, got.ID)
	assert.Equal(t, "Sensors & Modules", got.Category)
	assert.Equal(t, "DHT11", got.Name)
	assert.Equal(t, 5, got.Quantity)
	assert.Equal(t, "temperature + humidity", got.Notes)
	assert.True(t, got.Price.Equal(decimal.NewFromFloat(120.0)))
	assert.Equal(t, got.DateAdded, got.LastUpdated)
}

func TestAddItem_MonotonicIDs(t *testing.T) {
	repo := setupTestRepository(t)

	first := mustAddItem(t, repo, "Other", "Part A", 1, "", 0)
	second := mustAddItem(t, repo, "Other", "Part B", 1, "", 0)

	assert.Greater(t, second.ID, first.ID)
}

func TestFindByID_NotFound(t *testing.T) {
	repo := setupTestRepository(t)

	item, err := repo.FindByID(context.Background(), 999)

	assert.Nil(t, item)
	assert.Equal(t, domain.ErrItemNotFound, err)
}

func TestListItems_Filter(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	mustAddItem(t, repo, "Basic Components", "Resistor kit", 100, "1/4W assortment", 250.0)
	mustAddItem(t, repo, "Sensors & Modules", "HC-SR04", 3, "ultrasonic, works as RESISTOR tester too", 80.0)
	mustAddItem(t, repo, "Microcontrollers & Boards", "Arduino Uno", 2, "R3 clone", 450.0)

	// Case-insensitive match across name and notes, none from category
	items, err := repo.ListItems(ctx, "resistor")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Resistor kit", items[0].Name)
	assert.Equal(t, "HC-SR04", items[1].Name)

	// Category substring match
	items, err = repo.ListItems(ctx, "microcontrollers")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Arduino Uno", items[0].Name)

	// No false positives
	items, err = repo.ListItems(ctx, "capacitor")
	require.NoError(t, err)
	assert.Empty(t, items)

	// LIKE wildcards are literal characters here
	items, err = repo.ListItems(ctx, "%")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestListItems_InsertionOrder(t *testing.T) {
	repo := setupTestRepository(t)

	mustAddItem(t, repo, "Other", "Zeta", 1, "", 0)
	mustAddItem(t, repo, "Other", "Alpha", 1, "", 0)

	items, err := repo.ListItems(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Zeta", items[0].Name)
	assert.Equal(t, "Alpha", items[1].Name)
}

func TestUpdateItem_Quantity(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	added := mustAddItem(t, repo, "Sensors & Modules", "DHT11", 5, "keep these notes", 120.0)
	before := added.LastUpdated

	quantity := 3
	updated, err := repo.UpdateItem(ctx, added.ID, domain.ItemUpdate{Quantity: &quantity})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Quantity)

	got, err := repo.FindByID(ctx, added.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Quantity)
	assert.Equal(t, "keep these notes", got.Notes)
	assert.True(t, got.Price.Equal(decimal.NewFromFloat(120.0)))
	assert.True(t, got.LastUpdated.After(before))
	assert.Equal(t, added.DateAdded.Format(timeLayout), got.DateAdded.Format(timeLayout))
}

func TestUpdateItem_PriceAndNotes(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	added := mustAddItem(t, repo, "Power & Battery", "18650 cell", 4, "", 90.0)

	price := decimal.NewFromFloat(110.5)
	notes := "Samsung, 2600mAh"
	updated, err := repo.UpdateItem(ctx, added.ID, domain.ItemUpdate{Price: &price, Notes: &notes})
	require.NoError(t, err)

	assert.Equal(t, 4, updated.Quantity)
	assert.True(t, updated.Price.Equal(price))
	assert.Equal(t, "Samsung, 2600mAh", updated.Notes)
}

func TestUpdateItem_NotFound(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	existing := mustAddItem(t, repo, "Other", "Untouched", 7, "", 0)

	quantity := 1
	updated, err := repo.UpdateItem(ctx, 999, domain.ItemUpdate{Quantity: &quantity})
	assert.Nil(t, updated)
	assert.Equal(t, domain.ErrItemNotFound, err)

	// No stored row was altered
	got, err := repo.FindByID(ctx, existing.ID)
	require.NoError(t, err)
	assert.Equal(t, 7, got.Quantity)
	assert.Equal(t, existing.LastUpdated.Format(timeLayout), got.LastUpdated.Format(timeLayout))
}

func TestUpdateItem_NegativeQuantityRejected(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	added := mustAddItem(t, repo, "Other", "LDR", 10, "", 5.0)

	quantity := -1
	_, err := repo.UpdateItem(ctx, added.ID, domain.ItemUpdate{Quantity: &quantity})
	assert.Equal(t, domain.ErrNegativeQuantity, err)

	got, err := repo.FindByID(ctx, added.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, got.Quantity)
}

func TestCategorySummary(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	mustAddItem(t, repo, "Basic Components", "Resistor kit", 100, "", 0)
	mustAddItem(t, repo, "Basic Components", "Capacitor kit", 50, "", 0)
	mustAddItem(t, repo, "Sensors & Modules", "DHT11", 5, "", 0)

	summary, err := repo.CategorySummary(ctx)
	require.NoError(t, err)
	require.Len(t, summary, 2)

	assert.Equal(t, "Basic Components", summary[0].Category)
	assert.Equal(t, 2, summary[0].Items)
	assert.Equal(t, 150, summary[0].TotalQuantity)

	assert.Equal(t, "Sensors & Modules", summary[1].Category)
	assert.Equal(t, 1, summary[1].Items)
	assert.Equal(t, 5, summary[1].TotalQuantity)
}

func TestCategorySummary_TracksUpdates(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	added := mustAddItem(t, repo, "Sensors & Modules", "DHT11", 5, "", 0)

	quantity := 3
	_, err := repo.UpdateItem(ctx, added.ID, domain.ItemUpdate{Quantity: &quantity})
	require.NoError(t, err)

	summary, err := repo.CategorySummary(ctx)
	require.NoError(t, err)
	require.Len(t, summary, 1)
	assert.Equal(t, 3, summary[0].TotalQuantity)
}

func TestStats(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalItems)
	assert.Equal(t, 0, stats.Categories)
	assert.Equal(t, 0, stats.TotalQuantity)

	mustAddItem(t, repo, "Basic Components", "Resistor kit", 100, "", 0)
	mustAddItem(t, repo, "Sensors & Modules", "DHT11", 5, "", 0)
	mustAddItem(t, repo, "Sensors & Modules", "HC-SR04", 3, "", 0)

	stats, err = repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalItems)
	assert.Equal(t, 2, stats.Categories)
	assert.Equal(t, 108, stats.TotalQuantity)
}

// Mirrors the add -> list -> update -> list round trip of the dashboard flow.
func TestAddUpdateScenario(t *testing.T) {
	repo := setupTestRepository(t)
	ctx := context.Background()

	added := mustAddItem(t, repo, "Sensors & Modules", "DHT11", 5, "", 120.0)

	items, err := repo.ListItems(ctx, "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, items[0].DateAdded, items[0].LastUpdated)
	before := items[0].LastUpdated

	quantity := 3
	_, err = repo.UpdateItem(ctx, added.ID, domain.ItemUpdate{Quantity: &quantity})
	require.NoError(t, err)

	items, err = repo.ListItems(ctx, "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
	assert.True(t, items[0].LastUpdated.After(before))
}
