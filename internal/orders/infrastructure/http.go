package infrastructure

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-commerce/internal/orders/application"
	"go-commerce/internal/orders/domain"
	apperrors "go-commerce/pkg/errors"
	"go-commerce/pkg/middleware"
)

// HTTPHandler handles HTTP requests for orders
type HTTPHandler struct {
	useCase *application.OrderUseCase
}

// NewHTTPHandler creates a new HTTP handler
func NewHTTPHandler(useCase *application.OrderUseCase) *HTTPHandler {
	return &HTTPHandler{useCase: useCase}
}

// RegisterRoutes registers the order routes
func (h *HTTPHandler) RegisterRoutes(r *gin.RouterGroup) {
	orders := r.Group("/orders")
	{
		orders.POST("", h.CreateOrder)
		orders.GET("/:id", h.GetOrder)
		orders.POST("/:id/lines", h.AddLine)
		orders.PUT("/:id/lines/:productId", h.UpdateQuantity)
		orders.DELETE("/:id/lines/:productId", h.RemoveLine)
		orders.POST("/:id/pay", h.PayOrder)
		orders.POST("/:id/cancel", h.CancelOrder)
		orders.POST("/:id/refund", h.RefundOrder)
	}
}

// LineRequest is one order line in a request body
type LineRequest struct {
	ProductID   string `json:"product_id" binding:"required"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity" binding:"required,gt=0"`
	Price       string `json:"price" binding:"required"`
	Currency    string `json:"currency" binding:"required"`
}

// CreateOrderRequest is the request body for creating an order
type CreateOrderRequest struct {
	CustomerID string        `json:"customer_id" binding:"required"`
	Lines      []LineRequest `json:"lines"`
}

// UpdateQuantityRequest is the request body for changing a line quantity
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// LineResponse is one order line in a response body
type LineResponse struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	Price       string `json:"price"`
	Total       string `json:"total"`
}

// OrderResponse is the response body for order operations
type OrderResponse struct {
	ID            string         `json:"id"`
	CustomerID    string         `json:"customer_id"`
	Status        string         `json:"status"`
	Total         string         `json:"total"`
	Lines         []LineResponse `json:"lines"`
	TransactionID string         `json:"transaction_id,omitempty"`
	CreatedAt     string         `json:"created_at"`
	PaidAt        string         `json:"paid_at,omitempty"`
}

// ReceiptResponse is the response body for a successful payment
type ReceiptResponse struct {
	OrderID       string `json:"order_id"`
	TransactionID string `json:"transaction_id"`
	Amount        string `json:"amount"`
	Status        string `json:"status"`
}

// CreateOrder handles POST /orders
func (h *HTTPHandler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.NewValidation("invalid request body", err.Error()))
		return
	}

	lines, err := toLineInputs(req.Lines)
	if err != nil {
		c.Error(asAppError(err))
		return
	}

	output, err := h.useCase.CreateOrder(c.Request.Context(), application.CreateOrderInput{
		CustomerID: req.CustomerID,
		Lines:      lines,
	})
	if err != nil {
		c.Error(asAppError(err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"data":     toOrderResponse(output.Order),
		"trace_id": c.GetString(middleware.TraceIDKey),
	})
}

// GetOrder handles GET /orders/:id
func (h *HTTPHandler) GetOrder(c *gin.Context) {
	output, err := h.useCase.GetOrder(c.Request.Context(), application.GetOrderInput{
		OrderID: c.Param("id"),
	})
	if err != nil {
		c.Error(asAppError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":     toOrderResponse(output.Order),
		"trace_id": c.GetString(middleware.TraceIDKey),
	})
}

// AddLine handles POST /orders/:id/lines
func (h *HTTPHandler) AddLine(c *gin.Context) {
	var req LineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.NewValidation("invalid request body", err.Error()))
		return
	}

	lines, err := toLineInputs([]LineRequest{req})
	if err != nil {
		c.Error(asAppError(err))
		return
	}

	if err := h.useCase.AddLine(c.Request.Context(), application.AddLineInput{
		OrderID: c.Param("id"),
		Line:    lines[0],
	}); err != nil {
		c.Error(asAppError(err))
		return
	}

	c.Status(http.StatusNoContent)
}

// UpdateQuantity handles PUT /orders/:id/lines/:productId
func (h *HTTPHandler) UpdateQuantity(c *gin.Context) {
	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperrors.NewValidation("invalid request body", err.Error()))
		return
	}

	if err := h.useCase.UpdateQuantity(c.Request.Context(), application.UpdateQuantityInput{
		OrderID:   c.Param("id"),
		ProductID: c.Param("productId"),
		Quantity:  req.Quantity,
	}); err != nil {
		c.Error(asAppError(err))
		return
	}

	c.Status(http.StatusNoContent)
}

// RemoveLine handles DELETE /orders/:id/lines/:productId
func (h *HTTPHandler) RemoveLine(c *gin.Context) {
	if err := h.useCase.RemoveLine(c.Request.Context(), application.RemoveLineInput{
		OrderID:   c.Param("id"),
		ProductID: c.Param("productId"),
	}); err != nil {
		c.Error(asAppError(err))
		return
	}

	c.Status(http.StatusNoContent)
}

// PayOrder handles POST /orders/:id/pay
func (h *HTTPHandler) PayOrder(c *gin.Context) {
	receipt, err := h.useCase.PayOrder(c.Request.Context(), application.PayOrderInput{
		OrderID: c.Param("id"),
	})
	if err != nil {
		c.Error(asAppError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data": ReceiptResponse{
			OrderID:       receipt.OrderID,
			TransactionID: receipt.TransactionID,
			Amount:        receipt.Amount,
			Status:        receipt.Status,
		},
		"trace_id": c.GetString(middleware.TraceIDKey),
	})
}

// CancelOrder handles POST /orders/:id/cancel
func (h *HTTPHandler) CancelOrder(c *gin.Context) {
	if err := h.useCase.CancelOrder(c.Request.Context(), application.CancelOrderInput{
		OrderID: c.Param("id"),
	}); err != nil {
		c.Error(asAppError(err))
		return
	}

	c.Status(http.StatusNoContent)
}

// RefundOrder handles POST /orders/:id/refund
func (h *HTTPHandler) RefundOrder(c *gin.Context) {
	if err := h.useCase.RefundOrder(c.Request.Context(), application.RefundOrderInput{
		OrderID: c.Param("id"),
	}); err != nil {
		c.Error(asAppError(err))
		return
	}

	c.Status(http.StatusNoContent)
}

func toLineInputs(reqs []LineRequest) ([]application.LineInput, error) {
	lines := make([]application.LineInput, 0, len(reqs))
	for _, req := range reqs {
		price, err := domain.NewMoneyFromString(req.Price, req.Currency)
		if err != nil {
			return nil, err
		}
		lines = append(lines, application.LineInput{
			ProductID:   req.ProductID,
			ProductName: req.ProductName,
			Quantity:    req.Quantity,
			Price:       price,
		})
	}
	return lines, nil
}

func toOrderResponse(order *domain.Order) OrderResponse {
	resp := OrderResponse{
		ID:            order.ID(),
		CustomerID:    order.CustomerID(),
		Status:        string(order.Status()),
		Total:         order.TotalAmount().String(),
		Lines:         []LineResponse{},
		TransactionID: order.TransactionID(),
		CreatedAt:     order.CreatedAt().Format("2006-01-02T15:04:05Z07:00"),
	}
	if paidAt := order.PaidAt(); paidAt != nil {
		resp.PaidAt = paidAt.Format("2006-01-02T15:04:05Z07:00")
	}
	for _, line := range order.Lines() {
		resp.Lines = append(resp.Lines, LineResponse{
			ProductID:   line.ProductID(),
			ProductName: line.ProductName(),
			Quantity:    line.Quantity(),
			Price:       line.Price().String(),
			Total:       line.Total().String(),
		})
	}
	return resp
}

// asAppError maps domain error kinds to transport-level error codes.
// Unknown errors pass through unchanged so the middleware renders them
// as internal.
func asAppError(err error) error {
	var domainErr *domain.Error
	if !errors.As(err, &domainErr) {
		return err
	}

	switch domainErr.Kind {
	case domain.KindNegativeAmount,
		domain.KindInvalidAmount,
		domain.KindCurrencyMismatch,
		domain.KindInvalidCurrency,
		domain.KindInvalidQuantity,
		domain.KindInvalidProduct,
		domain.KindEmptyCustomerID,
		domain.KindPaymentRejected:
		return apperrors.NewValidation(domainErr.Message, gin.H{"kind": string(domainErr.Kind)})
	case domain.KindOrderNotFound,
		domain.KindProductNotFound,
		domain.KindTransactionNotFound:
		return apperrors.NewNotFound(domainErr.Message)
	case domain.KindGatewayUnavailable:
		return apperrors.NewUnavailable(domainErr.Message)
	default:
		// State machine rejections: already paid, cancelled, not
		// modifiable, empty order, non-positive total
		return apperrors.NewConflict(domainErr.Message)
	}
}
