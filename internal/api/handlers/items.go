package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"items-api/internal/api/middleware"
	"items-api/internal/storage"
	"items-api/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

const msgItemNotFound = "Item not found"

// ItemHandler holds the repository dependency for item operations
type ItemHandler struct {
	repo storage.ItemRepository
}

// NewItemHandler creates a new ItemHandler with the given repository
func NewItemHandler(repo storage.ItemRepository) *ItemHandler {
	return &ItemHandler{repo: repo}
}

// GetItems godoc
// @Summary      List all items
// @Description  Retrieves every item, ordered by id.
// @Tags         items
// @Produce      json
// @Success      200  {object}  dto.Response{data=[]models.Item}
// @Failure      500  {object}  dto.Response
// @Router       /items [get]
func (h *ItemHandler) GetItems(c *gin.Context) {
	items, err := h.repo.GetAll(c.Request.Context())
	if err != nil {
		internalError(c, err, "Failed to fetch items", 0)
		return
	}
	c.JSON(http.StatusOK, dto.Response{Success: true, Data: items})
}

// GetItemByID godoc
// @Summary      Get an item by ID
// @Tags         items
// @Produce      json
// @Param        id   path      int  true  "Item ID"
// @Success      200  {object}  dto.Response{data=models.Item}
// @Failure      404  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Router       /items/{id} [get]
func (h *ItemHandler) GetItemByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		notFound(c)
		return
	}

	item, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			notFound(c)
		} else {
			internalError(c, err, "Failed to fetch item", id)
		}
		return
	}
	c.JSON(http.StatusOK, dto.Response{Success: true, Data: item})
}

// CreateItem godoc
// @Summary      Create a new item
// @Description  The id is assigned by the store. Unknown fields are dropped.
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        item body      dto.CreateItemRequest true  "Item to create"
// @Success      201  {object}  dto.Response{data=models.Item}
// @Failure      400  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Router       /items [post]
func (h *ItemHandler) CreateItem(c *gin.Context) {
	req, ok := middleware.ValidatedBody[dto.CreateItemRequest](c)
	if !ok {
		internalError(c, errors.New("create route is missing its validation middleware"), "Failed to create item", 0)
		return
	}

	item, err := h.repo.Create(c.Request.Context(), &req)
	if err != nil {
		internalError(c, err, "Failed to create item", 0)
		return
	}

	c.JSON(http.StatusCreated, dto.Response{
		Success: true,
		Message: "Item created successfully",
		Data:    item,
	})
}

// UpdateItem godoc
// @Summary      Update an existing item
// @Description  Only the supplied fields are changed.
// @Tags         items
// @Accept       json,x-www-form-urlencoded,mpfd
// @Produce      json
// @Param        id   path      int                    true  "Item ID"
// @Param        item body      dto.UpdateItemRequest  true  "Fields to change"
// @Success      200  {object}  dto.Response{data=models.Item}
// @Failure      400  {object}  dto.Response
// @Failure      404  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Router       /items/{id} [put]
func (h *ItemHandler) UpdateItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		notFound(c)
		return
	}

	req, ok := middleware.ValidatedBody[dto.UpdateItemRequest](c)
	if !ok || req.IsEmpty() {
		internalError(c, errors.New("update route is missing its validation middleware"), "Failed to update item", id)
		return
	}

	item, err := h.repo.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			notFound(c)
		} else {
			internalError(c, err, "Failed to update item", id)
		}
		return
	}

	c.JSON(http.StatusOK, dto.Response{
		Success: true,
		Message: "Item updated successfully",
		Data:    item,
	})
}

// DeleteItem godoc
// @Summary      Delete an item by ID
// @Description  Returns the item as it was before deletion.
// @Tags         items
// @Produce      json
// @Param        id   path      int  true  "Item ID"
// @Success      200  {object}  dto.Response{data=models.Item}
// @Failure      404  {object}  dto.Response
// @Failure      500  {object}  dto.Response
// @Router       /items/{id} [delete]
func (h *ItemHandler) DeleteItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		notFound(c)
		return
	}

	item, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			notFound(c)
		} else {
			internalError(c, err, "Failed to delete item", id)
		}
		return
	}

	c.JSON(http.StatusOK, dto.Response{
		Success: true,
		Message: "Item deleted successfully",
		Data:    item,
	})
}

// parseID reads the :id path parameter. A malformed id cannot match any row,
// so callers answer it like a missing one.
func parseID(c *gin.Context) (int64, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		logrus.WithField("id", raw).Debug("Malformed item id")
		return 0, false
	}
	return id, true
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, dto.Response{Success: false, Error: msgItemNotFound})
}

// internalError logs the full error and answers with a generic message only.
func internalError(c *gin.Context, err error, msg string, id int64) {
	entry := logrus.WithError(err).WithField("request_id", middleware.GetRequestID(c))
	if id != 0 {
		entry = entry.WithField("item_id", id)
	}
	entry.Error(msg)
	c.JSON(http.StatusInternalServerError, dto.Response{Success: false, Error: msg})
}
