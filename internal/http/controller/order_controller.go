package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/veloura/storefront/internal/catalog"
	"github.com/veloura/storefront/internal/model"
	"github.com/veloura/storefront/internal/order"
	"github.com/veloura/storefront/internal/selection"
	"github.com/veloura/storefront/internal/service"
)

// OrderController handles HTTP requests for the order flow: selecting a
// product, adjusting quantity, submitting, and closing the modal.
type OrderController struct {
	svc *service.StorefrontService
}

// NewOrderController creates a new OrderController with the given storefront service.
func NewOrderController(svc *service.StorefrontService) *OrderController {
	return &OrderController{svc: svc}
}

// SelectRequest represents the request body for selecting a product.
type SelectRequest struct {
	ProductID int `json:"product_id" binding:"required"`
}

// SelectionResponse represents the current selection state.
type SelectionResponse struct {
	Product  ProductResponse `json:"product"`
	Quantity int             `json:"quantity"`
	Total    int             `json:"total"`
	Flow     string          `json:"flow"`
}

// Select handles the HTTP POST request for picking a product to order.
func (oc *OrderController) Select(c *gin.Context) {
	var req SelectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snap, err := oc.svc.Select(req.ProductID)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to select product"})
		return
	}

	c.JSON(http.StatusOK, oc.toSelectionResponse(snap))
}

// QuantityRequest represents the request body for setting the order quantity.
// The quantity arrives as whatever the form field held; anything that is not
// a positive integer clamps to 1 on the server side.
type QuantityRequest struct {
	Quantity any `json:"quantity"`
}

// SetQuantity handles the HTTP POST request for adjusting the order quantity.
func (oc *OrderController) SetQuantity(c *gin.Context) {
	var req QuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snap, err := oc.svc.SetQuantity(fmt.Sprint(req.Quantity))
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, oc.toSelectionResponse(snap))
}

// SubmitRequest represents the request body for submitting an order.
type SubmitRequest struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	Size         string `json:"size"`
	Instructions string `json:"instructions"`
	Channel      string `json:"channel"`
}

// ValidationErrorResponse represents a rejected order form.
type ValidationErrorResponse struct {
	Error         string   `json:"error"`
	MissingFields []string `json:"missing_fields,omitempty"`
	InvalidEmail  bool     `json:"invalid_email,omitempty"`
}

// Submit handles the HTTP POST request for submitting the order form. A
// validation failure is a 422 carrying the exact missing fields; the flow
// stays open for re-prompting.
func (oc *OrderController) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fields := model.CustomerFields{
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		Address:      req.Address,
		Size:         req.Size,
		Instructions: req.Instructions,
	}

	action, err := oc.svc.SubmitOrder(fields, req.Channel)
	if err != nil {
		var validationErr *order.ValidationError
		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusUnprocessableEntity, ValidationErrorResponse{
				Error:         validationErr.Error(),
				MissingFields: validationErr.MissingFields,
				InvalidEmail:  validationErr.InvalidEmail,
			})
		case errors.Is(err, selection.ErrNoSelection):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, action)
}

// Close handles the HTTP POST request for closing the order modal, clearing
// the selection.
func (oc *OrderController) Close(c *gin.Context) {
	oc.svc.CloseOrder()
	c.JSON(http.StatusOK, gin.H{"message": "order closed"})
}

func (oc *OrderController) toSelectionResponse(snap selection.Snapshot) SelectionResponse {
	return SelectionResponse{
		Product:  toProductResponse(snap.Product),
		Quantity: snap.Quantity,
		Total:    snap.Total(),
		Flow:     string(oc.svc.Flow()),
	}
}
