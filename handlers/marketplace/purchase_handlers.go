package marketplace

import (
	"errors"
	"net/http"

	"api/middleware"
	"api/services"
	"api/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PurchaseListing buys a listing with the caller's LBT balance. The
// precondition chain runs in order (wallet linked, sufficient balance, not
// the seller, token gate) and the first failure rejects the purchase before
// anything is written. The transfer itself is atomic.
// @Summary Purchase a listing
// @Description Buy a listing, transferring its price from buyer to seller
// @Tags Marketplace
// @Accept json
// @Produce json
// @Param id path string true "Listing ID"
// @Param request body PurchaseRequest false "Idempotency key"
// @Success 200 {object} models.Transaction
// @Failure 400 {object} InsufficientFundsResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /marketplace/listings/{id}/purchase [post]
// @Security Bearer
func PurchaseListing(c *gin.Context) {
	buyer, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	var request PurchaseRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&request); err != nil {
			response.Error(c, http.StatusBadRequest, err.Error())
			return
		}
	}
	if request.IdempotencyKey == "" {
		request.IdempotencyKey = uuid.NewString()
	} else if _, err := uuid.Parse(request.IdempotencyKey); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidIdempotency)
		return
	}

	purchase, err := services.ExecutePurchase(buyer, c.Param("id"), request.IdempotencyKey)
	if err != nil {
		respondPurchaseError(c, err)
		return
	}

	middleware.InvalidateUserCache(c, purchase.BuyerID)
	middleware.InvalidateUserCache(c, purchase.SellerID)

	c.JSON(http.StatusOK, purchase)
}

// respondPurchaseError maps precondition and transfer failures onto HTTP
// statuses. Insufficient funds carries the required and available amounts.
func respondPurchaseError(c *gin.Context, err error) {
	var insufficient *services.InsufficientFundsError
	switch {
	case errors.As(err, &insufficient):
		c.JSON(http.StatusBadRequest, InsufficientFundsResponse{
			Error:     insufficient.Error(),
			Required:  insufficient.Required,
			Available: insufficient.Available,
		})
	case errors.Is(err, services.ErrListingNotFound):
		response.Error(c, http.StatusNotFound, ErrListingNotFound)
	case errors.Is(err, services.ErrWalletRequired),
		errors.Is(err, services.ErrSelfPurchase),
		errors.Is(err, services.ErrTokenRequired):
		response.Error(c, http.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrListingInactive):
		response.Error(c, http.StatusConflict, err.Error())
	default:
		response.Error(c, http.StatusInternalServerError, ErrPurchaseFailed)
	}
}
