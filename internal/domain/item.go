package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categories is the closed set of component classes an item can belong to.
// Validation and the API share this single definition.
var Categories = []string{
	"Tools & Accessories",
	"Microcontrollers & Boards",
	"Display Modules",
	"Keypads & Buttons",
	"Sensors & Modules",
	"Motors & Drivers",
	"Power & Battery",
	"Integrated Circuits (ICs)",
	"Basic Components",
	"Boards & Prototyping",
	"Wires & Connectors",
	"Other",
}

// IsValidCategory reports whether category is a member of Categories.
func IsValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// Item is a single inventory record. The ID is assigned by the storage layer
// on insert and never changes afterwards.
type Item struct {
	ID          int64
	Category    string
	Name        string
	Quantity    int
	Notes       string
	Price       decimal.Decimal
	DateAdded   time.Time
	LastUpdated time.Time
}

// NewItem creates a new inventory item with DateAdded == LastUpdated.
func NewItem(category, name string, quantity int, notes string, price decimal.Decimal) (*Item, error) {
	if !IsValidCategory(category) {
		return nil, ErrInvalidCategory
	}
	if name == "" {
		return nil, ErrEmptyName
	}
	if quantity < 0 {
		return nil, ErrNegativeQuantity
	}
	if price.IsNegative() {
		return nil, ErrNegativePrice
	}

	now := time.Now()
	return &Item{
		Category:    category,
		Name:        name,
		Quantity:    quantity,
		Notes:       notes,
		Price:       price,
		DateAdded:   now,
		LastUpdated: now,
	}, nil
}

// ItemUpdate carries the optional fields of a partial update. Nil fields are
// left unchanged on the item.
type ItemUpdate struct {
	Quantity *int
	Price    *decimal.Decimal
	Notes    *string
}

// Validate checks the supplied fields without touching any item.
func (u ItemUpdate) Validate() error {
	if u.Quantity != nil && *u.Quantity < 0 {
		return ErrNegativeQuantity
	}
	if u.Price != nil && u.Price.IsNegative() {
		return ErrNegativePrice
	}
	return nil
}

// Apply copies the supplied fields onto the item and advances LastUpdated.
// An update with no fields set is a valid no-op mutation: it still advances
// LastUpdated. The item is untouched when validation fails.
func (i *Item) Apply(update ItemUpdate) error {
	if err := update.Validate(); err != nil {
		return err
	}

	if update.Quantity != nil {
		i.Quantity = *update.Quantity
	}
	if update.Price != nil {
		i.Price = *update.Price
	}
	if update.Notes != nil {
		i.Notes = *update.Notes
	}
	i.LastUpdated = time.Now()
	return nil
}

// CategoryCount is one row of the dashboard's per-category aggregation.
type CategoryCount struct {
	Category      string
	Items         int
	TotalQuantity int
}

// Stats is the dashboard header aggregation over the whole inventory.
type Stats struct {
	TotalItems    int
	Categories    int
	TotalQuantity int
}

// Domain errors
var (
	ErrItemNotFound     = &DomainError{Message: "item not found"}
	ErrInvalidCategory  = &DomainError{Message: "unknown category"}
	ErrEmptyName        = &DomainError{Message: "item name is required"}
	ErrNegativeQuantity = &DomainError{Message: "quantity cannot be negative"}
	ErrNegativePrice    = &DomainError{Message: "price cannot be negative"}
)

// DomainError represents a domain-level error
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}
