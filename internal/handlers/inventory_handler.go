package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/techiepookie/electronics-inventory-dashboard/internal/domain"
	"github.com/techiepookie/electronics-inventory-dashboard/internal/repository"
	"github.com/techiepookie/electronics-inventory-dashboard/internal/seed"
	"github.com/techiepookie/electronics-inventory-dashboard/pkg/errors"
)

// BulkImporter runs a named one-shot seed import.
type BulkImporter interface {
	Run(ctx context.Context, name string) (int, error)
}

type InventoryHandler struct {
	logger     *zap.Logger
	repository repository.InventoryRepository
	importer   BulkImporter
}

func NewInventoryHandler(logger *zap.Logger, repo repository.InventoryRepository, importer BulkImporter) *InventoryHandler {
	return &InventoryHandler{
		logger:     logger,
		repository: repo,
		importer:   importer,
	}
}

// CreateItem handles POST /api/v1/inventory/items
// @Summary      Add an inventory item
// @Description  Records a new component. Category must be a member of the closed category set; quantity and price must be non-negative.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      CreateItemRequest  true  "Item to record"
// @Success      201      {object}  ItemResponse          "Item recorded"
// @Failure      400      {object}  errors.StandardError  "Validation error"
// @Failure      401      {object}  errors.StandardError  "Missing or invalid session token"
// @Failure      500      {object}  errors.StandardError  "Persistence error"
// @Router       /inventory/items [post]
func (h *InventoryHandler) CreateItem(c *gin.Context) {
	var req CreateItemRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid request", zap.Error(err))
		c.JSON(http.StatusBadRequest, errors.NewInvalidRequest("invalid request body", err.Error()))
		return
	}

	item, err := domain.NewItem(req.Category, req.Name, req.Quantity, req.Notes, req.Price)
	if err != nil {
		c.JSON(http.StatusBadRequest, errors.NewValidationError(err.Error(), validationField(err)))
		return
	}

	id, err := h.repository.AddItem(c.Request.Context(), item)
	if err != nil {
		h.logger.Error("Failed to save item", zap.Error(err))
		c.JSON(http.StatusInternalServerError, errors.NewDatabaseError("insert item", err))
		return
	}

	h.logger.Info("Item added",
		zap.Int64("item_id", id),
		zap.String("name", item.Name),
		zap.String("category", item.Category),
	)
	c.JSON(http.StatusCreated, toItemResponse(item))
}

// ListItems handles GET /api/v1/inventory/items
// @Summary      List or search inventory items
// @Description  Returns all items in insertion order, or those where the q parameter is a case-insensitive substring of name, category, or notes.
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Param        q   query     string  false  "Search text"
// @Success      200  {object}  ListItemsResponse
// @Failure      401  {object}  errors.StandardError  "Missing or invalid session token"
// @Failure      500  {object}  errors.StandardError  "Persistence error"
// @Router       /inventory/items [get]
func (h *InventoryHandler) ListItems(c *gin.Context) {
	filter := c.Query("q")

	items, err := h.repository.ListItems(c.Request.Context(), filter)
	if err != nil {
		h.logger.Error("Failed to list items", zap.Error(err))
		c.JSON(http.StatusInternalServerError, errors.NewDatabaseError("list items", err))
		return
	}

	response := ListItemsResponse{
		Items: make([]ItemResponse, 0, len(items)),
		Total: len(items),
	}
	for i := range items {
		response.Items = append(response.Items, toItemResponse(&items[i]))
	}

	c.JSON(http.StatusOK, response)
}

// UpdateItem handles PUT /api/v1/inventory/items/:id
// @Summary      Update an inventory item
// @Description  Partially updates quantity, price, and/or notes. Omitted fields are left unchanged; last_updated always advances.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      int                true  "Item ID"
// @Param        request  body      UpdateItemRequest  true  "Fields to update"
// @Success      200      {object}  ItemResponse          "Updated item"
// @Failure      400      {object}  errors.StandardError  "Invalid id or validation error"
// @Failure      401      {object}  errors.StandardError  "Missing or invalid session token"
// @Failure      404      {object}  errors.StandardError  "Item not found"
// @Failure      500      {object}  errors.StandardError  "Persistence error"
// @Router       /inventory/items/{id} [put]
func (h *InventoryHandler) UpdateItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errors.NewInvalidRequest("invalid item id", c.Param("id")))
		return
	}

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errors.NewInvalidRequest("invalid request body", err.Error()))
		return
	}

	update := domain.ItemUpdate{
		Quantity: req.Quantity,
		Price:    req.Price,
		Notes:    req.Notes,
	}

	item, err := h.repository.UpdateItem(c.Request.Context(), id, update)
	if err != nil {
		switch err {
		case domain.ErrItemNotFound:
			c.JSON(http.StatusNotFound, errors.NewItemNotFound(id))
		case domain.ErrNegativeQuantity, domain.ErrNegativePrice:
			c.JSON(http.StatusBadRequest, errors.NewValidationError(err.Error(), validationField(err)))
		default:
			h.logger.Error("Failed to update item", zap.Int64("item_id", id), zap.Error(err))
			c.JSON(http.StatusInternalServerError, errors.NewDatabaseError("update item", err))
		}
		return
	}

	h.logger.Info("Item updated", zap.Int64("item_id", id))
	c.JSON(http.StatusOK, toItemResponse(item))
}

// CategorySummary handles GET /api/v1/inventory/summary
// @Summary      Per-category summary
// @Description  Item count and quantity sum for each category present, recomputed from the stored rows on each call.
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  CategorySummaryResponse
// @Failure      401  {object}  errors.StandardError  "Missing or invalid session token"
// @Failure      500  {object}  errors.StandardError  "Persistence error"
// @Router       /inventory/summary [get]
func (h *InventoryHandler) CategorySummary(c *gin.Context) {
	summary, err := h.repository.CategorySummary(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to summarize categories", zap.Error(err))
		c.JSON(http.StatusInternalServerError, errors.NewDatabaseError("category summary", err))
		return
	}

	response := CategorySummaryResponse{
		Categories: make([]CategoryCountResponse, 0, len(summary)),
	}
	for _, cc := range summary {
		response.Categories = append(response.Categories, CategoryCountResponse{
			Category:      cc.Category,
			Items:         cc.Items,
			TotalQuantity: cc.TotalQuantity,
		})
	}

	c.JSON(http.StatusOK, response)
}

// Stats handles GET /api/v1/inventory/stats
// @Summary      Dashboard totals
// @Description  Total items, distinct categories, and total quantity across the inventory.
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  StatsResponse
// @Failure      401  {object}  errors.StandardError  "Missing or invalid session token"
// @Failure      500  {object}  errors.StandardError  "Persistence error"
// @Router       /inventory/stats [get]
func (h *InventoryHandler) Stats(c *gin.Context) {
	stats, err := h.repository.Stats(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to compute stats", zap.Error(err))
		c.JSON(http.StatusInternalServerError, errors.NewDatabaseError("stats", err))
		return
	}

	c.JSON(http.StatusOK, StatsResponse{
		TotalItems:    stats.TotalItems,
		Categories:    stats.Categories,
		TotalQuantity: stats.TotalQuantity,
	})
}

// Categories handles GET /api/v1/inventory/categories
// @Summary      Category set
// @Description  The closed set of component categories, for form rendering. Shared with validation.
// @Tags         inventory
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  CategoriesResponse
// @Router       /inventory/categories [get]
func (h *InventoryHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, CategoriesResponse{Categories: domain.Categories})
}

// RunImport handles POST /api/v1/inventory/import
// @Summary      Run a bulk import
// @Description  Seeds the inventory from a predefined list (NEW or OLD). Invalid rows are skipped; re-running duplicates rows.
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      ImportRequest  true  "Seed list selection"
// @Success      200      {object}  ImportResponse        "Rows inserted"
// @Failure      400      {object}  errors.StandardError  "Missing list name"
// @Failure      401      {object}  errors.StandardError  "Missing or invalid session token"
// @Failure      404      {object}  errors.StandardError  "Unknown seed list"
// @Failure      500      {object}  errors.StandardError  "Persistence error"
// @Router       /inventory/import [post]
func (h *InventoryHandler) RunImport(c *gin.Context) {
	var req ImportRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errors.NewInvalidRequest("invalid request body", err.Error()))
		return
	}

	imported, err := h.importer.Run(c.Request.Context(), req.List)
	if err != nil {
		if err == seed.ErrListNotFound {
			c.JSON(http.StatusNotFound, errors.NewSeedListNotFound(req.List))
			return
		}
		h.logger.Error("Bulk import failed", zap.String("list", req.List), zap.Error(err))
		c.JSON(http.StatusInternalServerError, errors.NewInternalError("bulk import failed", err))
		return
	}

	h.logger.Info("Bulk import completed",
		zap.String("list", req.List),
		zap.Int("imported", imported),
	)
	c.JSON(http.StatusOK, ImportResponse{List: req.List, Imported: imported})
}

// validationField maps a domain validation error to the offending field name.
func validationField(err error) string {
	switch err {
	case domain.ErrInvalidCategory:
		return "category"
	case domain.ErrEmptyName:
		return "name"
	case domain.ErrNegativeQuantity:
		return "quantity"
	case domain.ErrNegativePrice:
		return "price"
	default:
		return "request"
	}
}
