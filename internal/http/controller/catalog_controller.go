package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/veloura/storefront/internal/model"
	"github.com/veloura/storefront/internal/service"
)

// CatalogController handles HTTP requests for catalog views.
type CatalogController struct {
	svc *service.StorefrontService
}

// NewCatalogController creates a new CatalogController with the given storefront service.
func NewCatalogController(svc *service.StorefrontService) *CatalogController {
	return &CatalogController{svc: svc}
}

// ListProductsRequest represents the query parameters for a catalog view.
type ListProductsRequest struct {
	Search string `form:"search"`
	Sort   string `form:"sort"`
}

// ProductResponse represents the response body for a product.
type ProductResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Price       int    `json:"price"`
	Image       string `json:"image"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// ListProductsResponse represents the response body for a catalog view.
type ListProductsResponse struct {
	Products []ProductResponse `json:"products"`
	Count    int               `json:"count"`
}

// ListProducts handles the HTTP GET request for the filtered and sorted
// catalog view. An unknown sort key is a 400; zero matches is a 200 with an
// empty list, which the UI renders as its empty state.
func (cc *CatalogController) ListProducts(c *gin.Context) {
	var req ListProductsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	products, err := cc.svc.Search(req.Search, req.Sort)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	responses := make([]ProductResponse, 0, len(products))
	for _, product := range products {
		responses = append(responses, toProductResponse(product))
	}

	c.JSON(http.StatusOK, ListProductsResponse{
		Products: responses,
		Count:    len(responses),
	})
}

func toProductResponse(product model.Product) ProductResponse {
	return ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Price:       product.Price,
		Image:       product.Image,
		Description: product.Description,
		Category:    product.Category,
	}
}
