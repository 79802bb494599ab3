package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/feral-file/ff-editions/internal/api/middleware"
	"github.com/feral-file/ff-editions/internal/api/rest/dto"
	"github.com/feral-file/ff-editions/internal/logger"
	"github.com/feral-file/ff-editions/internal/purchase"
)

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// ReservePurchase reserves one edition of a post
	// POST /api/v1/posts/:id/purchases
	ReservePurchase(c *gin.Context)

	// GetLatestPurchase returns the caller's most recent purchase of a post
	// GET /api/v1/posts/:id/purchases/latest
	GetLatestPurchase(c *gin.Context)

	// SubmitSignature records the payment transaction signature
	// POST /api/v1/purchases/:id/signature
	SubmitSignature(c *gin.Context)

	// PollPurchase advances a purchase and returns its status
	// GET /api/v1/purchases/:id
	PollPurchase(c *gin.Context)

	// CancelPurchase abandons an unsigned reservation
	// POST /api/v1/purchases/:id/cancel
	CancelPurchase(c *gin.Context)

	// RetryFulfillment re-attempts minting for a paid purchase
	// POST /api/v1/purchases/:id/retry
	RetryFulfillment(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	purchases purchase.Service
}

// NewHandler creates a new REST API handler
func NewHandler(purchases purchase.Service) Handler {
	return &handler{
		purchases: purchases,
	}
}

func (h *handler) ReservePurchase(c *gin.Context) {
	postID, ok := uuidParam(c)
	if !ok {
		return
	}

	var req dto.ReservePurchaseRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondValidationError(c, err.Error())
			return
		}
	}

	result, err := h.purchases.Reserve(c.Request.Context(), purchase.ReserveInput{
		UserID:        middleware.UserID(c),
		PostID:        postID,
		WalletAddress: req.WalletAddress,
	})
	if err != nil {
		respondError(c, err, zap.String("post_id", postID))
		return
	}

	c.JSON(http.StatusOK, dto.NewReservePurchaseResponse(result))
}

func (h *handler) GetLatestPurchase(c *gin.Context) {
	postID, ok := uuidParam(c)
	if !ok {
		return
	}

	p, err := h.purchases.GetLatestPurchase(c.Request.Context(), middleware.UserID(c), postID)
	if err != nil {
		respondError(c, err, zap.String("post_id", postID))
		return
	}

	c.JSON(http.StatusOK, dto.LatestPurchaseResponse{
		Success:  true,
		Purchase: dto.NewPurchaseSummary(p),
	})
}

func (h *handler) SubmitSignature(c *gin.Context) {
	purchaseID, ok := uuidParam(c)
	if !ok {
		return
	}

	var req dto.SubmitSignatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	ctx := logger.WithPurchase(c.Request.Context(), purchaseID)
	if err := h.purchases.SubmitSignature(ctx, middleware.UserID(c), purchaseID, req.Signature); err != nil {
		respondError(c, err, zap.String("purchase_id", purchaseID))
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

func (h *handler) PollPurchase(c *gin.Context) {
	purchaseID, ok := uuidParam(c)
	if !ok {
		return
	}

	ctx := logger.WithPurchase(c.Request.Context(), purchaseID)
	result, err := h.purchases.Poll(ctx, middleware.UserID(c), purchaseID)
	if err != nil {
		respondError(c, err, zap.String("purchase_id", purchaseID))
		return
	}

	c.JSON(http.StatusOK, dto.NewPurchaseStatusResponse(result))
}

func (h *handler) CancelPurchase(c *gin.Context) {
	purchaseID, ok := uuidParam(c)
	if !ok {
		return
	}

	ctx := logger.WithPurchase(c.Request.Context(), purchaseID)
	if err := h.purchases.Cancel(ctx, middleware.UserID(c), purchaseID); err != nil {
		respondError(c, err, zap.String("purchase_id", purchaseID))
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

func (h *handler) RetryFulfillment(c *gin.Context) {
	purchaseID, ok := uuidParam(c)
	if !ok {
		return
	}

	ctx := logger.WithPurchase(c.Request.Context(), purchaseID)
	result, err := h.purchases.RetryFulfillment(ctx, middleware.UserID(c), purchaseID)
	if err != nil {
		respondError(c, err, zap.String("purchase_id", purchaseID))
		return
	}

	c.JSON(http.StatusOK, dto.NewPurchaseStatusResponse(result))
}

func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Success: true,
		Status:  "ok",
		Service: "ff-editions-api",
	})
}

// uuidParam reads the :id path parameter and rejects anything that is not a UUID
func uuidParam(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		respondBadRequest(c, "Invalid ID", id)
		return "", false
	}
	return id, true
}
