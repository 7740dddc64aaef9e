package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/techiepookie/electronics-inventory-dashboard/internal/database"
	"github.com/techiepookie/electronics-inventory-dashboard/internal/domain"
)

// timeLayout keeps sub-second precision so last_updated strictly advances on
// every mutation, even two mutations within the same second.
const timeLayout = time.RFC3339Nano

// SQLiteInventoryRepository persists inventory items in the local SQLite file.
type SQLiteInventoryRepository struct {
	db *database.SingleWriterDB
}

// NewSQLiteInventoryRepository creates a new SQLite-backed repository.
func NewSQLiteInventoryRepository(db *database.SingleWriterDB) *SQLiteInventoryRepository {
	return &SQLiteInventoryRepository{db: db}
}

// AddItem inserts a new row and fills in the assigned id on the item.
func (r *SQLiteInventoryRepository) AddItem(ctx context.Context, item *domain.Item) (int64, error) {
	query := `
		INSERT INTO inventory_items (category, item_name, quantity, notes, price, date_added, last_updated)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	result, err := r.db.ExecContext(ctx, query,
		item.Category, item.Name, item.Quantity, item.Notes,
		item.Price.String(),
		item.DateAdded.Format(timeLayout),
		item.LastUpdated.Format(timeLayout),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get inserted id: %w", err)
	}

	item.ID = id
	return id, nil
}

// FindByID finds an item by ID.
func (r *SQLiteInventoryRepository) FindByID(ctx context.Context, id int64) (*domain.Item, error) {
	query := `
		SELECT id, category, item_name, quantity, notes, price, date_added, last_updated
		FROM inventory_items
		WHERE id = ?
	`

	row := r.db.QueryRowContext(ctx, query, id)
	item, err := scanItem(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to find item by ID: %w", err)
	}

	return item, nil
}

// ListItems returns all rows, or rows where filter is a case-insensitive
// substring of name, category, or notes. Ordered by id for reproducibility.
func (r *SQLiteInventoryRepository) ListItems(ctx context.Context, filter string) ([]domain.Item, error) {
	query := `
		SELECT id, category, item_name, quantity, notes, price, date_added, last_updated
		FROM inventory_items
	`
	var args []interface{}

	if filter != "" {
		// instr instead of LIKE so '%' and '_' in the filter match literally
		query += `
		WHERE instr(lower(item_name), ?) > 0
		   OR instr(lower(category), ?) > 0
		   OR instr(lower(notes), ?) > 0
		`
		needle := strings.ToLower(filter)
		args = append(args, needle, needle, needle)
	}

	query += ` ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	items := make([]domain.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, *item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating items: %w", err)
	}

	return items, nil
}

// UpdateItem applies a partial update: only the supplied fields change and
// last_updated advances. date_added is never written here.
func (r *SQLiteInventoryRepository) UpdateItem(ctx context.Context, id int64, update domain.ItemUpdate) (*domain.Item, error) {
	item, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := item.Apply(update); err != nil {
		return nil, err
	}

	query := `
		UPDATE inventory_items
		SET quantity = ?, notes = ?, price = ?, last_updated = ?
		WHERE id = ?
	`

	result, err := r.db.ExecContext(ctx, query,
		item.Quantity, item.Notes, item.Price.String(),
		item.LastUpdated.Format(timeLayout),
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return nil, domain.ErrItemNotFound
	}

	return item, nil
}

// CategorySummary recomputes the per-category aggregation from the stored
// rows on each call. Ordered by item count descending, category as tiebreak.
func (r *SQLiteInventoryRepository) CategorySummary(ctx context.Context) ([]domain.CategoryCount, error) {
	query := `
		SELECT category, COUNT(*) AS items, COALESCE(SUM(quantity), 0) AS total_qty
		FROM inventory_items
		GROUP BY category
		ORDER BY items DESC, category ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize categories: %w", err)
	}
	defer rows.Close()

	summary := make([]domain.CategoryCount, 0)
	for rows.Next() {
		var cc domain.CategoryCount
		if err := rows.Scan(&cc.Category, &cc.Items, &cc.TotalQuantity); err != nil {
			return nil, fmt.Errorf("failed to scan category summary: %w", err)
		}
		summary = append(summary, cc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating category summary: %w", err)
	}

	return summary, nil
}

// Stats recomputes the dashboard totals from the stored rows.
func (r *SQLiteInventoryRepository) Stats(ctx context.Context) (*domain.Stats, error) {
	query := `
		SELECT COUNT(*), COUNT(DISTINCT category), COALESCE(SUM(quantity), 0)
		FROM inventory_items
	`

	var stats domain.Stats
	err := r.db.QueryRowContext(ctx, query).Scan(
		&stats.TotalItems, &stats.Categories, &stats.TotalQuantity,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to compute stats: %w", err)
	}

	return &stats, nil
}

// scanItem reads one inventory row through the given Scan function.
func scanItem(scan func(dest ...interface{}) error) (*domain.Item, error) {
	var item domain.Item
	var priceStr, dateAddedStr, lastUpdatedStr string

	err := scan(
		&item.ID,
		&item.Category,
		&item.Name,
		&item.Quantity,
		&item.Notes,
		&priceStr,
		&dateAddedStr,
		&lastUpdatedStr,
	)
	if err != nil {
		return nil, err
	}

	price, err := decimal.NewFromString(priceStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse price %q: %w", priceStr, err)
	}
	item.Price = price

	if dateAdded, err := time.Parse(timeLayout, dateAddedStr); err == nil {
		item.DateAdded = dateAdded
	}
	if lastUpdated, err := time.Parse(timeLayout, lastUpdatedStr); err == nil {
		item.LastUpdated = lastUpdated
	}

	return &item, nil
}
