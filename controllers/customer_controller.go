package controllers

import (
	"net/http"
	"strconv"

	"payment-api/models"
	"payment-api/services"

	"github.com/gin-gonic/gin"
)

// CustomerController handles HTTP requests for customer management.
type CustomerController struct {
	customerService services.CustomerService
}

// NewCustomerController creates a new CustomerController.
func NewCustomerController(svc services.CustomerService) *CustomerController {
	return &CustomerController{customerService: svc}
}

// CreateCustomer handles POST /customers
func (cc *CustomerController) CreateCustomer(ctx *gin.Context) {
	var req models.CreateCustomerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	customer, svcErr := cc.customerService.Create(ctx.Request.Context(), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.Code, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusCreated, customer)
}

// GetCustomer handles GET /customers/:id
func (cc *CustomerController) GetCustomer(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid customer ID"})
		return
	}

	customer, svcErr := cc.customerService.GetByID(ctx.Request.Context(), uint(id))
	if svcErr != nil {
		ctx.JSON(svcErr.Code, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, customer)
}

// ListCustomers handles GET /customers
func (cc *CustomerController) ListCustomers(ctx *gin.Context) {
	limit, offset := parseListParams(ctx)

	customers, svcErr := cc.customerService.List(ctx.Request.Context(), limit, offset)
	if svcErr != nil {
		ctx.JSON(svcErr.Code, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"customers": customers})
}

// DeleteCustomer handles DELETE /customers/:id. Customer deletion is
// permanently disallowed, so this always responds 403.
func (cc *CustomerController) DeleteCustomer(ctx *gin.Context) {
	ctx.JSON(http.StatusForbidden, gin.H{"error": "Customer deletion is not allowed"})
}
