package seed

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/techiepookie/electronics-inventory-dashboard/internal/domain"
	"github.com/techiepookie/electronics-inventory-dashboard/internal/repository"
)

//go:embed data/*.json
var seedFS embed.FS

// ErrListNotFound is returned when no seed list carries the requested name.
var ErrListNotFound = errors.New("seed list not found")

// Row is one candidate item of a seed list. Seeded items carry no price; the
// user fills prices in later through the update flow.
type Row struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes"`
}

// Load returns the rows of the named seed list. Names are case-insensitive
// ("NEW", "OLD").
func Load(name string) ([]Row, error) {
	data, err := seedFS.ReadFile(fmt.Sprintf("data/%s.json", strings.ToLower(name)))
	if err != nil {
		return nil, ErrListNotFound
	}

	var rows []Row
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse seed list %s: %w", name, err)
	}

	return rows, nil
}

// Importer inserts seed rows through the repository. It is generic over any
// list of candidate rows; the lists themselves live in embedded JSON files.
type Importer struct {
	repo   repository.InventoryRepository
	logger *zap.Logger
}

// NewImporter creates a new importer.
func NewImporter(repo repository.InventoryRepository, logger *zap.Logger) *Importer {
	return &Importer{
		repo:   repo,
		logger: logger,
	}
}

// Run imports the named seed list and returns the number of rows inserted.
// Rows that fail validation are skipped rather than aborting the batch; the
// import is a one-time convenience, not a correctness-critical path. Re-running
// an import inserts duplicates; there is no deduplication.
func (imp *Importer) Run(ctx context.Context, name string) (int, error) {
	rows, err := Load(name)
	if err != nil {
		return 0, err
	}

	inserted := imp.importRows(ctx, rows)

	imp.logger.Info("Bulk import finished",
		zap.String("list", name),
		zap.Int("candidates", len(rows)),
		zap.Int("inserted", inserted),
	)

	return inserted, nil
}

// importRows inserts each row, skip-and-continue on validation failure.
func (imp *Importer) importRows(ctx context.Context, rows []Row) int {
	inserted := 0
	for _, row := range rows {
		item, err := domain.NewItem(row.Category, row.Name, row.Quantity, row.Notes, decimal.Zero)
		if err != nil {
			imp.logger.Warn("Skipping invalid seed row",
				zap.String("name", row.Name),
				zap.String("category", row.Category),
				zap.Error(err),
			)
			continue
		}

		if _, err := imp.repo.AddItem(ctx, item); err != nil {
			imp.logger.Warn("Skipping seed row, insert failed",
				zap.String("name", row.Name),
				zap.Error(err),
			)
			continue
		}

		inserted++
	}
	return inserted
}
