package handlers

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/techiepookie/electronics-inventory-dashboard/internal/domain"
)

// CreateItemRequest represents the request body for adding an item
// @Description Request to record a new electronics component
type CreateItemRequest struct {
	// Category must be one of the closed category set
	Category string `json:"category" binding:"required" example:"Sensors & Modules"`

	// Component name
	Name string `json:"name" binding:"required" example:"DHT11"`

	// Units on hand (must be >= 0)
	Quantity int `json:"quantity" binding:"min=0" example:"5"`

	// Free-text notes/specifications (optional)
	Notes string `json:"notes" example:"temperature + humidity, 3.3-5V"`

	// Unit price, currency-agnostic (optional, must be >= 0)
	Price decimal.Decimal `json:"price" example:"120.0"`
}

// UpdateItemRequest represents the request body for a partial update.
// Omitted fields are left unchanged on the stored item.
// @Description Partial update of quantity, price, and/or notes
type UpdateItemRequest struct {
	Quantity *int             `json:"quantity,omitempty" example:"3"`
	Price    *decimal.Decimal `json:"price,omitempty" example:"99.5"`
	Notes    *string          `json:"notes,omitempty" example:"two units given away"`
}

// ItemResponse is the wire form of a stored inventory item
type ItemResponse struct {
	ID          int64           `json:"id" example:"1"`
	Category    string          `json:"category" example:"Sensors & Modules"`
	Name        string          `json:"name" example:"DHT11"`
	Quantity    int             `json:"quantity" example:"5"`
	Notes       string          `json:"notes" example:"temperature + humidity"`
	Price       decimal.Decimal `json:"price" example:"120.0"`
	DateAdded   time.Time       `json:"date_added" example:"2024-01-15T10:30:00Z"`
	LastUpdated time.Time       `json:"last_updated" example:"2024-01-15T10:30:00Z"`
}

func toItemResponse(item *domain.Item) ItemResponse {
	return ItemResponse{
		ID:          item.ID,
		Category:    item.Category,
		Name:        item.Name,
		Quantity:    item.Quantity,
		Notes:       item.Notes,
		Price:       item.Price,
		DateAdded:   item.DateAdded,
		LastUpdated: item.LastUpdated,
	}
}

// ListItemsResponse wraps a list/search result
type ListItemsResponse struct {
	Items []ItemResponse `json:"items"`
	Total int            `json:"total" example:"1"`
}

// CategoryCountResponse is one row of the category summary
type CategoryCountResponse struct {
	Category      string `json:"category" example:"Basic Components"`
	Items         int    `json:"items" example:"3"`
	TotalQuantity int    `json:"total_quantity" example:"450"`
}

// CategorySummaryResponse wraps the per-category aggregation
type CategorySummaryResponse struct {
	Categories []CategoryCountResponse `json:"categories"`
}

// StatsResponse is the dashboard header aggregation
type StatsResponse struct {
	TotalItems    int `json:"total_items" example:"27"`
	Categories    int `json:"categories" example:"11"`
	TotalQuantity int `json:"total_quantity" example:"1240"`
}

// ImportRequest selects which seed list to import
// @Description Request to run a one-shot bulk import
type ImportRequest struct {
	// Seed list name: NEW or OLD
	List string `json:"list" binding:"required" example:"NEW"`
}

// ImportResponse reports the import outcome
type ImportResponse struct {
	List     string `json:"list" example:"NEW"`
	Imported int    `json:"imported" example:"27"`
}

// CategoriesResponse lists the closed category set for form rendering
type CategoriesResponse struct {
	Categories []string `json:"categories"`
}
