package controllers

import (
	"net/http"
	"strconv"

	"payment-api/models"
	"payment-api/services"
	"payment-api/simulator"

	"github.com/gin-gonic/gin"
)

// PaymentController handles HTTP requests for the order lifecycle and the
// standalone authorize endpoint.
type PaymentController struct {
	paymentService services.PaymentService
	authorizer     *simulator.Authorizer
}

// NewPaymentController creates a new PaymentController.
func NewPaymentController(svc services.PaymentService, authorizer *simulator.Authorizer) *PaymentController {
	return &PaymentController{paymentService: svc, authorizer: authorizer}
}

// Checkout handles POST /orders/checkout
func (pc *PaymentController) Checkout(ctx *gin.Context) {
	var req models.CheckoutRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	resp, svcErr := pc.paymentService.Checkout(ctx.Request.Context(), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.Code, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// Settle handles POST /payments/settle
func (pc *PaymentController) Settle(ctx *gin.Context) {
	var req models.SettleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	resp, svcErr := pc.paymentService.Settle(ctx.Request.Context(), &req)
	if svcErr != nil {
		ctx.JSON(svcErr.Code, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// GetOrder handles GET /orders/:id
func (pc *PaymentController) GetOrder(ctx *gin.Context) {
	orderID := ctx.Param("id")
	if orderID == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Order ID is required"})
		return
	}

	detail, svcErr := pc.paymentService.GetOrderDetail(ctx.Request.Context(), orderID)
	if svcErr != nil {
		ctx.JSON(svcErr.Code, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, detail)
}

// ListOrders handles GET /orders
func (pc *PaymentController) ListOrders(ctx *gin.Context) {
	limit, offset := parseListParams(ctx)

	minAmount := 0.0
	if s := ctx.Query("min_amount"); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil && v > 0 {
			minAmount = v
		}
	}

	orders, svcErr := pc.paymentService.ListOrders(ctx.Request.Context(), limit, offset, minAmount)
	if svcErr != nil {
		ctx.JSON(svcErr.Code, gin.H{"error": svcErr.Message})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"orders": orders})
}

// Authorize handles POST /authorize: a one-shot simulated gateway decision
// with no persistence. The HTTP status follows the drawn outcome.
func (pc *PaymentController) Authorize(ctx *gin.Context) {
	result := pc.authorizer.Pick()
	ctx.JSON(result.HTTPStatus, gin.H{"result": result.Code})
}

// parseListParams extracts and validates limit/offset query params.
func parseListParams(ctx *gin.Context) (int, int) {
	const defaultLimit = 100
	limit, offset := defaultLimit, 0
	if l, err := strconv.Atoi(ctx.DefaultQuery("limit", "100")); err == nil && l > 0 {
		limit = l
	}
	if o, err := strconv.Atoi(ctx.DefaultQuery("offset", "0")); err == nil && o >= 0 {
		offset = o
	}
	return limit, offset
}
