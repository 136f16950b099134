package marketplace

// Constants for error messages
const (
	ErrListingNotFound    = "Listing not found"
	ErrInvalidPrice       = "Price must be zero or more"
	ErrInvalidCategory    = "Unknown listing category"
	ErrNotListingOwner    = "You do not own this listing"
	ErrFailedCreate       = "Failed to create listing"
	ErrFailedUpdate       = "Failed to update listing"
	ErrFailedDelete       = "Failed to delete listing"
	ErrFailedFetch        = "Failed to fetch listings"
	ErrPurchaseFailed     = "Purchase failed"
	ErrInvalidIdempotency = "Idempotency key must be a UUID"
)

// CreateListingRequest model for creating a listing
type CreateListingRequest struct {
	Title          string  `json:"title" binding:"required,max=100"`
	Description    string  `json:"description" binding:"required,max=2000"`
	PriceLBT       *int    `json:"price_lbt" binding:"required"`
	Category       string  `json:"category" binding:"required"`
	TokenGated     bool    `json:"token_gated"`
	DeliveryMethod *string `json:"delivery_method"`
}

// UpdateListingRequest model for editing a listing. Active toggles
// deactivation without deleting the row; omitting active or delivery_method
// leaves the stored value unchanged.
type UpdateListingRequest struct {
	Title          string  `json:"title" binding:"required,max=100"`
	Description    string  `json:"description" binding:"required,max=2000"`
	PriceLBT       *int    `json:"price_lbt" binding:"required"`
	Category       string  `json:"category" binding:"required"`
	TokenGated     bool    `json:"token_gated"`
	Active         *bool   `json:"active"`
	DeliveryMethod *string `json:"delivery_method"`
}

// PurchaseRequest model for buying a listing. The idempotency key is
// client-generated; omitting it opts out of double-submit protection, so a
// key is generated server side as a fallback.
type PurchaseRequest struct {
	IdempotencyKey string `json:"idempotency_key"`
}

// InsufficientFundsResponse names the exact shortfall of a rejected purchase
type InsufficientFundsResponse struct {
	Error     string `json:"error"`
	Required  int    `json:"required"`
	Available int    `json:"available"`
}

// SellerDashboardResponse aggregates a seller's sales
type SellerDashboardResponse struct {
	TotalSales   int `json:"total_sales_lbt"`
	Transactions int `json:"transaction_count"`
}
