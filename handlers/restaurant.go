package handlers

import (
	"net/http"

	"restaurant-api/pkg/apperr"
	"restaurant-api/services"

	"github.com/gin-gonic/gin"
)

type RestaurantHandler struct {
	Service *services.RestaurantService
}

func NewRestaurantHandler(s *services.RestaurantService) *RestaurantHandler {
	return &RestaurantHandler{Service: s}
}

type CreateRestaurantRequest struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location"`
}

var createRestaurantMessages = map[string]string{
	"Name.required": "Restaurant name is mandatory",
}

type UpdateRestaurantStatusRequest struct {
	IsOpen *bool `json:"isOpen" binding:"required"`
}

var updateRestaurantStatusMessages = map[string]string{
	"IsOpen.required": "isOpen status is required",
}

// Create registers a new restaurant
func (h *RestaurantHandler) Create(c *gin.Context) {
	var req CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.Validation(validationMessage(err, createRestaurantMessages)))
		return
	}

	resp, err := h.Service.Create(req.Name, req.Location)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Get returns one restaurant by id
func (h *RestaurantHandler) Get(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	resp, err := h.Service.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateStatus opens or closes a restaurant
func (h *RestaurantHandler) UpdateStatus(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		respondError(c, err)
		return
	}

	var req UpdateRestaurantStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.Validation(validationMessage(err, updateRestaurantStatusMessages)))
		return
	}

	resp, err := h.Service.UpdateOpenStatus(id, *req.IsOpen)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
