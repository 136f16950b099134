package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"api/database"
	"api/metrics"
	"api/models"
	"api/realtime"

	"gorm.io/gorm"
)

var (
	ErrListingNotFound = errors.New("listing not found")
	ErrListingInactive = errors.New("listing is no longer active")
	ErrWalletRequired  = errors.New("a linked wallet address is required to purchase")
	ErrSelfPurchase    = errors.New("you cannot purchase your own listing")
	ErrTokenRequired   = errors.New("this listing is reserved for token holders")
)

// InsufficientFundsError carries both the required and the available amount
// so the caller can name the exact shortfall
type InsufficientFundsError struct {
	Required  int
	Available int
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient balance: you need %d LBT but only have %d LBT", e.Required, e.Available)
}

// ValidatePurchase runs the purchase precondition chain against an already
// authenticated buyer. Checks run in a fixed order and the first failure
// stops the chain; no store write happens before every check passes.
func ValidatePurchase(buyer models.User, listing models.Listing) error {
	if !listing.Active {
		return ErrListingInactive
	}
	if buyer.WalletAddress == nil || *buyer.WalletAddress == "" {
		return ErrWalletRequired
	}
	if buyer.Points < listing.PriceLBT {
		return &InsufficientFundsError{Required: listing.PriceLBT, Available: buyer.Points}
	}
	if buyer.ID == listing.SellerID {
		return ErrSelfPurchase
	}
	if listing.TokenGated && !buyer.HasToken {
		return ErrTokenRequired
	}
	return nil
}

// findReplay looks up a transaction previously created by this buyer under
// the given idempotency key
func findReplay(buyerID string, idempotencyKey string) (models.Transaction, bool) {
	var existing models.Transaction
	err := database.DB.
		Where("idempotency_key = ? AND buyer_id = ?", idempotencyKey, buyerID).
		First(&existing).Error
	return existing, err == nil
}

// ExecutePurchase performs a marketplace purchase: it snapshots the listing
// price into a transaction row, debits the buyer and credits the seller. All
// three writes run in one database transaction, so a failure in any step
// leaves no partial state. The idempotency key de-duplicates double submits:
// replaying a key returns the transaction it originally created. Keys are
// scoped to the buyer, so one buyer cannot read another buyer's transaction
// by replaying their key.
func ExecutePurchase(buyer models.User, listingID string, idempotencyKey string) (models.Transaction, error) {
	if existing, ok := findReplay(buyer.ID, idempotencyKey); ok {
		return existing, nil
	}

	var listing models.Listing
	if err := database.DB.First(&listing, "id = ?", listingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Transaction{}, ErrListingNotFound
		}
		return models.Transaction{}, fmt.Errorf("failed to fetch listing: %w", err)
	}

	if err := ValidatePurchase(buyer, listing); err != nil {
		metrics.PurchaseCounter.WithLabelValues("rejected").Inc()
		return models.Transaction{}, err
	}

	hash := fmt.Sprintf("placeholder-%d", time.Now().UnixMilli())
	purchase := models.Transaction{
		ListingID:       listing.ID,
		BuyerID:         buyer.ID,
		SellerID:        listing.SellerID,
		AmountLBT:       listing.PriceLBT,
		IdempotencyKey:  idempotencyKey,
		TransactionHash: &hash,
	}

	start := time.Now()
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&purchase).Error; err != nil {
			return fmt.Errorf("failed to record transaction: %w", err)
		}

		// Conditional decrement: guards against a balance that changed
		// since the precondition check
		debit := tx.Model(&models.User{}).
			Where("id = ? AND points >= ?", buyer.ID, purchase.AmountLBT).
			Update("points", gorm.Expr("points - ?", purchase.AmountLBT))
		if debit.Error != nil {
			return fmt.Errorf("failed to debit buyer: %w", debit.Error)
		}
		if debit.RowsAffected == 0 {
			return &InsufficientFundsError{Required: purchase.AmountLBT, Available: buyer.Points}
		}

		if err := tx.Model(&models.User{}).
			Where("id = ?", purchase.SellerID).
			Update("points", gorm.Expr("points + ?", purchase.AmountLBT)).Error; err != nil {
			return fmt.Errorf("failed to credit seller: %w", err)
		}
		return nil
	})
	metrics.RecordDBOperation("purchase", "marketplace_transactions", start)

	if err != nil {
		// Two truly concurrent submits with the same key race on the unique
		// index; the loser's insert fails after the winner committed. Re-read
		// so the loser gets the winner's row instead of an error.
		if existing, ok := findReplay(buyer.ID, idempotencyKey); ok {
			return existing, nil
		}
		var insufficient *InsufficientFundsError
		if errors.As(err, &insufficient) {
			metrics.PurchaseCounter.WithLabelValues("rejected").Inc()
		} else {
			metrics.PurchaseCounter.WithLabelValues("failed").Inc()
		}
		return models.Transaction{}, err
	}

	metrics.PurchaseCounter.WithLabelValues("completed").Inc()
	metrics.PurchaseVolume.Add(float64(purchase.AmountLBT))
	InvalidateLeaderboardCache(context.Background())
	realtime.BroadcastChange(realtime.TableChange{Table: "profiles", Action: "update"})
	realtime.BroadcastChange(realtime.TableChange{Table: "marketplace_transactions", Action: "insert"})

	return purchase, nil
}

// ListingFilters are the buyer-side query predicates
type ListingFilters struct {
	Category   string
	MinPrice   *int
	MaxPrice   *int
	Search     string
	TokenGated *bool
}

// ListListings returns active listings matching the filters, newest first,
// with the seller profile joined in
func ListListings(filters ListingFilters) ([]models.Listing, error) {
	query := database.DB.Model(&models.Listing{}).
		Preload("Seller").
		Where("active = ?", true).
		Order("created_at desc")

	if filters.Category != "" && filters.Category != "all" {
		query = query.Where("category = ?", filters.Category)
	}
	if filters.MinPrice != nil {
		query = query.Where("price_lbt >= ?", *filters.MinPrice)
	}
	if filters.MaxPrice != nil {
		query = query.Where("price_lbt <= ?", *filters.MaxPrice)
	}
	if filters.Search != "" {
		pattern := "%" + filters.Search + "%"
		query = query.Where("title ILIKE ? OR description ILIKE ?", pattern, pattern)
	}
	if filters.TokenGated != nil {
		query = query.Where("token_gated = ?", *filters.TokenGated)
	}

	var listings []models.Listing
	if err := query.Find(&listings).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch listings: %w", err)
	}
	return listings, nil
}

// GetListing returns a single listing with its seller profile joined in
func GetListing(listingID string) (models.Listing, error) {
	var listing models.Listing
	if err := database.DB.Preload("Seller").First(&listing, "id = ?", listingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Listing{}, ErrListingNotFound
		}
		return models.Listing{}, fmt.Errorf("failed to fetch listing: %w", err)
	}
	return listing, nil
}

// GetSellerListings returns every listing a seller has created, newest first
func GetSellerListings(sellerID string) ([]models.Listing, error) {
	var listings []models.Listing
	if err := database.DB.Where("seller_id = ?", sellerID).
		Order("created_at desc").Find(&listings).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch seller listings: %w", err)
	}
	return listings, nil
}

// GetSellerTransactions returns a seller's sales with the listing title
// joined in, newest first
func GetSellerTransactions(sellerID string) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := database.DB.Preload("Listing").
		Where("seller_id = ?", sellerID).
		Order("created_at desc").Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}
	return transactions, nil
}

// SellerTotalSales sums a seller's completed sale amounts
func SellerTotalSales(sellerID string) (int, error) {
	var total int
	if err := database.DB.Model(&models.Transaction{}).
		Select("COALESCE(SUM(amount_lbt), 0)").
		Where("seller_id = ?", sellerID).
		Scan(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to sum sales: %w", err)
	}
	return total, nil
}
