package services

import (
	"errors"
	"testing"

	"api/models"
)

func buyer(points int) models.User {
	wallet := "0x742d35cc6634c0532925a3b844bc9e7595f25e89"
	return models.User{
		ID:            "buyer-id",
		Username:      "buyer",
		Points:        points,
		WalletAddress: &wallet,
	}
}

func listing(price int) models.Listing {
	return models.Listing{
		ID:       "listing-id",
		SellerID: "seller-id",
		Title:    "Incident response playbook",
		PriceLBT: price,
		Category: models.CategoryResources,
		Active:   true,
	}
}

func TestValidatePurchaseBalanceBoundary(t *testing.T) {
	// balance == price is allowed
	if err := ValidatePurchase(buyer(100), listing(100)); err != nil {
		t.Fatalf("balance == price: err = %v, want nil", err)
	}

	// balance == price-1 is rejected with the exact shortfall
	err := ValidatePurchase(buyer(99), listing(100))
	var insufficient *InsufficientFundsError
	if !errors.As(err, &insufficient) {
		t.Fatalf("err = %v, want InsufficientFundsError", err)
	}
	if insufficient.Required != 100 || insufficient.Available != 99 {
		t.Errorf("shortfall = need %d have %d, want need 100 have 99", insufficient.Required, insufficient.Available)
	}
}

func TestValidatePurchaseWalletRequired(t *testing.T) {
	noWallet := buyer(1000)
	noWallet.WalletAddress = nil
	if err := ValidatePurchase(noWallet, listing(100)); !errors.Is(err, ErrWalletRequired) {
		t.Errorf("nil wallet: err = %v, want ErrWalletRequired", err)
	}

	empty := ""
	noWallet.WalletAddress = &empty
	if err := ValidatePurchase(noWallet, listing(100)); !errors.Is(err, ErrWalletRequired) {
		t.Errorf("empty wallet: err = %v, want ErrWalletRequired", err)
	}
}

func TestValidatePurchaseSelfPurchase(t *testing.T) {
	self := buyer(1000)
	self.ID = "seller-id"
	if err := ValidatePurchase(self, listing(100)); !errors.Is(err, ErrSelfPurchase) {
		t.Errorf("err = %v, want ErrSelfPurchase", err)
	}
}

func TestValidatePurchaseInactiveListing(t *testing.T) {
	inactive := listing(100)
	inactive.Active = false
	if err := ValidatePurchase(buyer(1000), inactive); !errors.Is(err, ErrListingInactive) {
		t.Errorf("err = %v, want ErrListingInactive", err)
	}
}

func TestValidatePurchaseTokenGate(t *testing.T) {
	gated := listing(100)
	gated.TokenGated = true

	if err := ValidatePurchase(buyer(1000), gated); !errors.Is(err, ErrTokenRequired) {
		t.Errorf("without token: err = %v, want ErrTokenRequired", err)
	}

	holder := buyer(1000)
	holder.HasToken = true
	if err := ValidatePurchase(holder, gated); err != nil {
		t.Errorf("with token: err = %v, want nil", err)
	}
}

// The chain checks in a fixed order: wallet before balance, balance before
// self-purchase. A buyer failing several preconditions sees the earliest one.
func TestValidatePurchaseCheckOrder(t *testing.T) {
	broke := buyer(0)
	broke.WalletAddress = nil
	if err := ValidatePurchase(broke, listing(100)); !errors.Is(err, ErrWalletRequired) {
		t.Errorf("wallet+balance failure: err = %v, want ErrWalletRequired", err)
	}

	brokeSeller := buyer(0)
	brokeSeller.ID = "seller-id"
	err := ValidatePurchase(brokeSeller, listing(100))
	var insufficient *InsufficientFundsError
	if !errors.As(err, &insufficient) {
		t.Errorf("balance+self failure: err = %v, want InsufficientFundsError", err)
	}
}

func TestValidatePurchaseFreeListing(t *testing.T) {
	if err := ValidatePurchase(buyer(0), listing(0)); err != nil {
		t.Errorf("free listing with zero balance: err = %v, want nil", err)
	}
}
