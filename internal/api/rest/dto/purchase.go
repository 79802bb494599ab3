package dto

import (
	"time"

	"github.com/feral-file/ff-editions/internal/purchase"
	"github.com/feral-file/ff-editions/internal/store/schema"
)

// ReservePurchaseRequest is the body of a reservation request
type ReservePurchaseRequest struct {
	// WalletAddress is the wallet paying for the edition, defaults to the primary wallet
	WalletAddress string `json:"walletAddress"`
}

// SubmitSignatureRequest is the body of a signature submission
type SubmitSignatureRequest struct {
	Signature string `json:"signature" binding:"required"`
}

// ReservePurchaseResponse is the result of a reservation. Success is only set for a new reservation.
type ReservePurchaseResponse struct {
	Success       bool   `json:"success"`
	Status        string `json:"status"`
	PurchaseID    string `json:"purchaseId,omitempty"`
	Transaction   string `json:"transaction,omitempty"`
	EditionNumber *int64 `json:"editionNumber,omitempty"`
}

// SuccessResponse acknowledges an operation without a payload
type SuccessResponse struct {
	Success bool `json:"success"`
}

// PurchaseStatusResponse is the client-facing state of a purchase
type PurchaseStatusResponse struct {
	Success       bool    `json:"success"`
	PurchaseID    string  `json:"purchaseId"`
	Status        string  `json:"status"`
	TxSignature   *string `json:"txSignature"`
	NFTMint       *string `json:"nftMint"`
	EditionNumber *int64  `json:"editionNumber,omitempty"`
	Error         *string `json:"error,omitempty"`
	// Retry tells the client that polling again will re-attempt fulfillment
	Retry bool `json:"retry,omitempty"`
}

// LatestPurchaseResponse wraps the caller's most recent purchase of a post
type LatestPurchaseResponse struct {
	Success  bool            `json:"success"`
	Purchase PurchaseSummary `json:"purchase"`
}

// PurchaseSummary is the public view of a purchase record
type PurchaseSummary struct {
	ID            string     `json:"id"`
	PostID        string     `json:"postId"`
	Status        string     `json:"status"`
	AmountPaid    int64      `json:"amountPaid"`
	Currency      string     `json:"currency"`
	EditionNumber *int64     `json:"editionNumber,omitempty"`
	TxSignature   *string    `json:"txSignature,omitempty"`
	NFTMint       *string    `json:"nftMint,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
	MintedAt      *time.Time `json:"mintedAt,omitempty"`
}

// HealthResponse is the health check payload
type HealthResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
	Service string `json:"service"`
}

// NewReservePurchaseResponse maps a reservation result
func NewReservePurchaseResponse(r *purchase.ReserveResult) ReservePurchaseResponse {
	return ReservePurchaseResponse{
		Success:       r.Status == purchase.ReserveStatusReserved,
		Status:        string(r.Status),
		PurchaseID:    r.PurchaseID,
		Transaction:   r.Transaction,
		EditionNumber: r.EditionNumber,
	}
}

// NewPurchaseStatusResponse maps a poll result
func NewPurchaseStatusResponse(r *purchase.PollResult) PurchaseStatusResponse {
	return PurchaseStatusResponse{
		Success:       true,
		PurchaseID:    r.PurchaseID,
		Status:        string(r.Status),
		TxSignature:   r.TxSignature,
		NFTMint:       r.NFTMint,
		EditionNumber: r.EditionNumber,
		Error:         r.ErrorMessage,
		Retry:         r.Retry,
	}
}

// NewPurchaseSummary maps a purchase record
func NewPurchaseSummary(p *schema.Purchase) PurchaseSummary {
	return PurchaseSummary{
		ID:            p.ID,
		PostID:        p.PostID,
		Status:        string(p.Status),
		AmountPaid:    p.AmountPaid,
		Currency:      string(p.Currency),
		EditionNumber: p.EditionNumber,
		TxSignature:   p.TxSignature,
		NFTMint:       p.NFTMint,
		CreatedAt:     p.CreatedAt,
		MintedAt:      p.MintConfirmedAt,
	}
}
