package marketplace

import (
	"api/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to the marketplace
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup) {
	// Public browsing routes
	r.GET("/marketplace/listings", GetListings)
	r.GET("/marketplace/listings/:id", GetListingDetail)

	marketplace := r.Group("/marketplace")
	marketplace.Use(middleware.AuthMiddleware())
	{
		// Seller routes
		marketplace.POST("/listings", CreateListing)
		marketplace.PUT("/listings/:id", UpdateListing)
		marketplace.DELETE("/listings/:id", DeleteListing)
		marketplace.GET("/seller/listings", GetSellerListings)
		marketplace.GET("/seller/transactions", GetSellerTransactions)
		marketplace.GET("/seller/dashboard", GetSellerDashboard)

		// Buyer routes
		marketplace.POST("/listings/:id/purchase", PurchaseListing)
	}
}
