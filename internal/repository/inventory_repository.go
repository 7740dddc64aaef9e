package repository

import (
	"context"

	"github.com/techiepookie/electronics-inventory-dashboard/internal/domain"
)

// InventoryRepository is the seam between the HTTP layer and the stored
// inventory. It takes and returns plain domain values only.
type InventoryRepository interface {
	// AddItem inserts a new row and returns the assigned id.
	AddItem(ctx context.Context, item *domain.Item) (int64, error)
	// FindByID returns the item or domain.ErrItemNotFound.
	FindByID(ctx context.Context, id int64) (*domain.Item, error)
	// ListItems returns all items, or those where filter is a
	// case-insensitive substring of name, category, or notes.
	ListItems(ctx context.Context, filter string) ([]domain.Item, error)
	// UpdateItem applies a partial update and returns the updated item,
	// or domain.ErrItemNotFound.
	UpdateItem(ctx context.Context, id int64, update domain.ItemUpdate) (*domain.Item, error)
	// CategorySummary recomputes per-category counts and quantity sums
	// from the stored rows.
	CategorySummary(ctx context.Context) ([]domain.CategoryCount, error)
	// Stats recomputes the dashboard totals from the stored rows.
	Stats(ctx context.Context) (*domain.Stats, error)
}
