package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/techiepookie/electronics-inventory-dashboard/internal/domain"
)

// fakeRepository records inserted items and can fail on demand.
type fakeRepository struct {
	items   []*domain.Item
	failFor map[string]bool
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{failFor: make(map[string]bool)}
}

func (f *fakeRepository) AddItem(ctx context.Context, item *domain.Item) (int64, error) {
	if f.failFor[item.Name] {
		return 0, errors.New("insert failed")
	}
	f.items = append(f.items, item)
	item.ID = int64(len(f.items))
	return item.ID, nil
}

func (f *fakeRepository) FindByID(ctx context.Context, id int64) (*domain.Item, error) {
	return nil, domain.ErrItemNotFound
}

func (f *fakeRepository) ListItems(ctx context.Context, filter string) ([]domain.Item, error) {
	return nil, nil
}

func (f *fakeRepository) UpdateItem(ctx context.Context, id int64, update domain.ItemUpdate) (*domain.Item, error) {
	return nil, domain.ErrItemNotFound
}

func (f *fakeRepository) CategorySummary(ctx context.Context) ([]domain.CategoryCount, error) {
	return nil, nil
}

func (f *fakeRepository) Stats(ctx context.Context) (*domain.Stats, error) {
	return nil, nil
}

func TestLoad_KnownLists(t *testing.T) {
	for _, name := range []string{"NEW", "OLD", "new", "old"} {
		t.Run(name, func(t *testing.T) {
			rows, err := Load(name)
			require.NoError(t, err)
			assert.NotEmpty(t, rows)
			// Every shipped seed row must pass item validation
			for _, row := range rows {
				assert.True(t, domain.IsValidCategory(row.Category), row.Category)
				assert.NotEmpty(t, row.Name)
				assert.GreaterOrEqual(t, row.Quantity, 0)
			}
		})
	}
}

func TestLoad_UnknownList(t *testing.T) {
	rows, err := Load("VINTAGE")
	assert.Nil(t, rows)
	assert.Equal(t, ErrListNotFound, err)
}

func TestRun_InsertsAllRows(t *testing.T) {
	repo := newFakeRepository()
	importer := NewImporter(repo, zap.NewNop())

	rows, err := Load("NEW")
	require.NoError(t, err)

	inserted, err := importer.Run(context.Background(), "NEW")
	require.NoError(t, err)
	assert.Equal(t, len(rows), inserted)
	assert.Len(t, repo.items, len(rows))
}

func TestRun_UnknownList(t *testing.T) {
	repo := newFakeRepository()
	importer := NewImporter(repo, zap.NewNop())

	inserted, err := importer.Run(context.Background(), "VINTAGE")
	assert.Zero(t, inserted)
	assert.Equal(t, ErrListNotFound, err)
	assert.Empty(t, repo.items)
}

func TestImportRows_SkipsInvalidRows(t *testing.T) {
	repo := newFakeRepository()
	importer := NewImporter(repo, zap.NewNop())

	rows := []Row{
		{Category: "Sensors & Modules", Name: "DHT11", Quantity: 5, Notes: ""},
		{Category: "Kitchen Appliances", Name: "Toaster", Quantity: 1, Notes: ""}, // unknown category
		{Category: "Other", Name: "", Quantity: 1, Notes: ""},                     // empty name
		{Category: "Other", Name: "Broken counter", Quantity: -3, Notes: ""},      // negative quantity
		{Category: "Basic Components", Name: "Resistor kit", Quantity: 100, Notes: ""},
	}

	inserted := importer.importRows(context.Background(), rows)

	assert.Equal(t, 2, inserted)
	require.Len(t, repo.items, 2)
	assert.Equal(t, "DHT11", repo.items[0].Name)
	assert.Equal(t, "Resistor kit", repo.items[1].Name)
}

func TestImportRows_SkipsFailedInserts(t *testing.T) {
	repo := newFakeRepository()
	repo.failFor["DHT11"] = true
	importer := NewImporter(repo, zap.NewNop())

	rows := []Row{
		{Category: "Sensors & Modules", Name: "DHT11", Quantity: 5},
		{Category: "Sensors & Modules", Name: "HC-SR04", Quantity: 2},
	}

	inserted := importer.importRows(context.Background(), rows)

	assert.Equal(t, 1, inserted)
	require.Len(t, repo.items, 1)
	assert.Equal(t, "HC-SR04", repo.items[0].Name)
}
