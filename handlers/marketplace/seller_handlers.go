package marketplace

import (
	"net/http"

	"api/middleware"
	"api/services"
	"api/utils/response"

	"github.com/gin-gonic/gin"
)

// GetSellerListings returns every listing the caller has created
// @Summary Get own listings
// @Description Get the caller's listings, newest first, active or not
// @Tags Marketplace
// @Produce json
// @Success 200 {array} models.Listing
// @Failure 401 {object} map[string]string
// @Router /marketplace/seller/listings [get]
// @Security Bearer
func GetSellerListings(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	listings, err := services.GetSellerListings(user.ID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedFetch)
		return
	}
	c.JSON(http.StatusOK, listings)
}

// GetSellerTransactions returns the caller's sales with listing titles
// @Summary Get own sales
// @Description Get the caller's sale transactions, newest first
// @Tags Marketplace
// @Produce json
// @Success 200 {array} models.Transaction
// @Failure 401 {object} map[string]string
// @Router /marketplace/seller/transactions [get]
// @Security Bearer
func GetSellerTransactions(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	transactions, err := services.GetSellerTransactions(user.ID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedFetch)
		return
	}
	c.JSON(http.StatusOK, transactions)
}

// GetSellerDashboard aggregates the caller's sales totals
// @Summary Get seller dashboard
// @Description Get the caller's total sales volume and transaction count
// @Tags Marketplace
// @Produce json
// @Success 200 {object} SellerDashboardResponse
// @Failure 401 {object} map[string]string
// @Router /marketplace/seller/dashboard [get]
// @Security Bearer
func GetSellerDashboard(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	transactions, err := services.GetSellerTransactions(user.ID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedFetch)
		return
	}
	total, err := services.SellerTotalSales(user.ID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedFetch)
		return
	}

	c.JSON(http.StatusOK, SellerDashboardResponse{
		TotalSales:   total,
		Transactions: len(transactions),
	})
}
