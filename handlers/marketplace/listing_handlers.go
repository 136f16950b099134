package marketplace

import (
	"net/http"
	"strconv"

	"api/database"
	"api/middleware"
	"api/models"
	"api/services"
	"api/utils/response"

	"github.com/gin-gonic/gin"
)

// GetListings returns active listings matching the query filters
// @Summary Browse listings
// @Description Get active marketplace listings, filtered and newest first
// @Tags Marketplace
// @Produce json
// @Param category query string false "Category filter"
// @Param min_price query int false "Inclusive minimum price"
// @Param max_price query int false "Inclusive maximum price"
// @Param search query string false "Substring match on title or description"
// @Param token_gated query bool false "Token-gated filter"
// @Success 200 {array} models.Listing
// @Failure 500 {object} map[string]string
// @Router /marketplace/listings [get]
func GetListings(c *gin.Context) {
	filters := services.ListingFilters{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}
	if raw := c.Query("min_price"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			filters.MinPrice = &v
		}
	}
	if raw := c.Query("max_price"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			filters.MaxPrice = &v
		}
	}
	if raw := c.Query("token_gated"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			filters.TokenGated = &v
		}
	}

	listings, err := services.ListListings(filters)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedFetch)
		return
	}
	c.JSON(http.StatusOK, listings)
}

// GetListingDetail returns one listing with its seller profile
// @Summary Get listing detail
// @Description Get a single listing with the seller profile joined in
// @Tags Marketplace
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} models.Listing
// @Failure 404 {object} map[string]string
// @Router /marketplace/listings/{id} [get]
func GetListingDetail(c *gin.Context) {
	listing, err := services.GetListing(c.Param("id"))
	if err != nil {
		response.Error(c, http.StatusNotFound, ErrListingNotFound)
		return
	}
	if listing.Seller != nil {
		listing.Seller.Password = ""
		listing.Seller.Email = ""
	}
	c.JSON(http.StatusOK, listing)
}

// CreateListing creates a listing for the authenticated seller
// @Summary Create a listing
// @Description Create a new marketplace listing owned by the caller
// @Tags Marketplace
// @Accept json
// @Produce json
// @Param listing body CreateListingRequest true "Listing details"
// @Success 201 {object} models.Listing
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /marketplace/listings [post]
// @Security Bearer
func CreateListing(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	var request CreateListingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	if *request.PriceLBT < 0 {
		response.Error(c, http.StatusBadRequest, ErrInvalidPrice)
		return
	}
	if !models.ValidCategory(request.Category) {
		response.Error(c, http.StatusBadRequest, ErrInvalidCategory)
		return
	}

	listing := models.Listing{
		SellerID:       user.ID,
		Title:          request.Title,
		Description:    request.Description,
		PriceLBT:       *request.PriceLBT,
		Category:       request.Category,
		TokenGated:     request.TokenGated,
		Active:         true,
		DeliveryMethod: request.DeliveryMethod,
	}
	if err := database.DB.Create(&listing).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedCreate)
		return
	}

	c.JSON(http.StatusCreated, listing)
}

// UpdateListing edits a listing owned by the caller
// @Summary Update a listing
// @Description Edit or deactivate a listing owned by the caller
// @Tags Marketplace
// @Accept json
// @Produce json
// @Param id path string true "Listing ID"
// @Param listing body UpdateListingRequest true "Listing details"
// @Success 200 {object} models.Listing
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /marketplace/listings/{id} [put]
// @Security Bearer
func UpdateListing(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	var listing models.Listing
	if err := database.DB.First(&listing, "id = ?", c.Param("id")).Error; err != nil {
		response.Error(c, http.StatusNotFound, ErrListingNotFound)
		return
	}
	if listing.SellerID != user.ID {
		response.Error(c, http.StatusForbidden, ErrNotListingOwner)
		return
	}

	var request UpdateListingRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.Error(c, http.StatusBadRequest, err.Error())
		return
	}
	if *request.PriceLBT < 0 {
		response.Error(c, http.StatusBadRequest, ErrInvalidPrice)
		return
	}
	if !models.ValidCategory(request.Category) {
		response.Error(c, http.StatusBadRequest, ErrInvalidCategory)
		return
	}

	if err := database.DB.Model(&listing).Updates(listingUpdates(request)).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedUpdate)
		return
	}

	if err := database.DB.First(&listing, "id = ?", listing.ID).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, "Listing updated but failed to retrieve updated data")
		return
	}
	c.JSON(http.StatusOK, listing)
}

// listingUpdates builds the column map for a listing edit. Optional fields
// only change when the request carries them; an omitted active or
// delivery_method leaves the stored value untouched.
func listingUpdates(request UpdateListingRequest) map[string]interface{} {
	updatedFields := map[string]interface{}{
		"title":       request.Title,
		"description": request.Description,
		"price_lbt":   *request.PriceLBT,
		"category":    request.Category,
		"token_gated": request.TokenGated,
	}
	if request.Active != nil {
		updatedFields["active"] = *request.Active
	}
	if request.DeliveryMethod != nil {
		updatedFields["delivery_method"] = *request.DeliveryMethod
	}
	return updatedFields
}

// DeleteListing removes a listing owned by the caller
// @Summary Delete a listing
// @Description Remove a listing owned by the caller from the marketplace
// @Tags Marketplace
// @Produce json
// @Param id path string true "Listing ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /marketplace/listings/{id} [delete]
// @Security Bearer
func DeleteListing(c *gin.Context) {
	user, err := middleware.GetUserFromRequest(c)
	if err != nil {
		return // Error already handled by middleware
	}

	var listing models.Listing
	if err := database.DB.First(&listing, "id = ?", c.Param("id")).Error; err != nil {
		response.Error(c, http.StatusNotFound, ErrListingNotFound)
		return
	}
	if listing.SellerID != user.ID {
		response.Error(c, http.StatusForbidden, ErrNotListingOwner)
		return
	}

	if err := database.DB.Delete(&listing).Error; err != nil {
		response.Error(c, http.StatusInternalServerError, ErrFailedDelete)
		return
	}
	response.Message(c, http.StatusOK, "Listing deleted")
}
