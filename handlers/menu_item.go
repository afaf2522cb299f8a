package handlers

import (
	"net/http"
	"strconv"

	"restaurant-api/models"
	"restaurant-api/pkg/apperr"
	"restaurant-api/services"

	"github.com/gin-gonic/gin"
)

type MenuItemHandler struct {
	Service *services.MenuItemService
}

func NewMenuItemHandler(s *services.MenuItemService) *MenuItemHandler {
	return &MenuItemHandler{Service: s}
}

type CreateMenuItemRequest struct {
	Name     string          `json:"name" binding:"required"`
	Price    *float64        `json:"price" binding:"required,gt=0"`
	Category models.Category `json:"category" binding:"required,oneof=APPETIZER MAIN_COURSE DESSERT BEVERAGE SIDE"`
}

var createMenuItemMessages = map[string]string{
	"Name.required":     "Menu item name is mandatory",
	"Price.required":    "Price is mandatory",
	"Price.gt":          "Price must be greater than 0",
	"Category.required": "Category is mandatory",
	"Category.oneof":    "Category must be a valid value",
}

type UpdateMenuItemStatusRequest struct {
	Status models.Status `json:"status" binding:"required,oneof=AVAILABLE UNAVAILABLE"`
}

var updateMenuItemStatusMessages = map[string]string{
	"Status.required": "Status is required",
	"Status.oneof":    "Status must be a valid value",
}

// Add creates a menu item under a restaurant
func (h *MenuItemHandler) Add(c *gin.Context) {
	restaurantID, err := pathID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.Validation(validationMessage(err, createMenuItemMessages)))
		return
	}

	resp, err := h.Service.Add(restaurantID, req.Name, *req.Price, req.Category)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// List returns one page of a restaurant's menu, optionally filtered by
// category and status. Query: category, status, page, size, sort.
func (h *MenuItemHandler) List(c *gin.Context) {
	restaurantID, err := pathID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	var category *models.Category
	if raw := c.Query("category"); raw != "" {
		v := models.Category(raw)
		if !v.Valid() {
			respondError(c, apperr.Validation("Category '"+raw+"' is not a valid value"))
			return
		}
		category = &v
	}

	var status *models.Status
	if raw := c.Query("status"); raw != "" {
		v := models.Status(raw)
		if !v.Valid() {
			respondError(c, apperr.Validation("Status '"+raw+"' is not a valid value"))
			return
		}
		status = &v
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(models.DefaultPageSize)))
	pageReq := models.NewPageRequest(page, size, c.DefaultQuery("sort", "id,asc"))

	resp, err := h.Service.List(restaurantID, category, status, pageReq)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateStatus changes a menu item's availability
func (h *MenuItemHandler) UpdateStatus(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	var req UpdateMenuItemStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.Validation(validationMessage(err, updateMenuItemStatusMessages)))
		return
	}

	resp, err := h.Service.UpdateStatus(id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Delete soft-deletes a menu item
func (h *MenuItemHandler) Delete(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	if err := h.Service.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
