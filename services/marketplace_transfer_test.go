package services

import (
	"errors"
	"fmt"
	"testing"

	"api/database"
	"api/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const replayKey = "5f0c1f48-9f6b-4a3e-8c1d-2b7e9d4a6c01"

// newTransferMock swaps the global connections for a scripted database so
// the transfer can be driven through failure at each step. The redis client
// points at a closed port; cache invalidation errors are ignored.
func newTransferMock(t *testing.T) (sqlmock.Sqlmock, func()) {
	t.Helper()
	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: conn}), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		t.Fatalf("gorm open: %v", err)
	}

	prevDB, prevRedis := database.DB, database.REDIS
	database.DB = gormDB
	database.REDIS = redis.NewClient(&redis.Options{Addr: "127.0.0.1:1"})
	return mock, func() {
		database.DB, database.REDIS = prevDB, prevRedis
		conn.Close()
	}
}

// The replay lookup is scoped to the buyer; the pattern pins the buyer_id
// predicate so a key can never resolve another buyer's transaction.
func expectNoReplay(mock sqlmock.Sqlmock) {
	mock.ExpectQuery(`SELECT .* FROM "marketplace_transactions" WHERE idempotency_key = \$1 AND buyer_id = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
}

func expectListing(mock sqlmock.Sqlmock, l models.Listing) {
	mock.ExpectQuery(`SELECT .* FROM "marketplace_listings" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "seller_id", "title", "price_lbt", "category", "token_gated", "active"}).
			AddRow(l.ID, l.SellerID, l.Title, l.PriceLBT, l.Category, l.TokenGated, l.Active))
}

func expectInsertTransaction(mock sqlmock.Sqlmock) {
	mock.ExpectQuery(`INSERT INTO "marketplace_transactions"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("tx-1"))
}

func TestExecutePurchaseCommitsTransfer(t *testing.T) {
	mock, cleanup := newTransferMock(t)
	defer cleanup()

	expectNoReplay(mock)
	expectListing(mock, listing(100))
	mock.ExpectBegin()
	expectInsertTransaction(mock)
	mock.ExpectExec(`UPDATE "profiles" SET`).WillReturnResult(sqlmock.NewResult(0, 1)) // debit
	mock.ExpectExec(`UPDATE "profiles" SET`).WillReturnResult(sqlmock.NewResult(0, 1)) // credit
	mock.ExpectCommit()

	purchase, err := ExecutePurchase(buyer(100), "listing-id", replayKey)
	if err != nil {
		t.Fatalf("err = %v, want nil", err)
	}
	if purchase.ID != "tx-1" || purchase.AmountLBT != 100 {
		t.Errorf("purchase = id %q amount %d, want id \"tx-1\" amount 100", purchase.ID, purchase.AmountLBT)
	}
	if purchase.BuyerID != "buyer-id" || purchase.SellerID != "seller-id" {
		t.Errorf("parties = buyer %q seller %q", purchase.BuyerID, purchase.SellerID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

// The balance can shrink between the precondition check and the debit. The
// conditional debit then matches no row and the whole transfer rolls back:
// no transaction row persists and neither balance moves.
func TestExecutePurchaseStaleBalanceRollsBack(t *testing.T) {
	mock, cleanup := newTransferMock(t)
	defer cleanup()

	expectNoReplay(mock)
	expectListing(mock, listing(100))
	mock.ExpectBegin()
	expectInsertTransaction(mock)
	mock.ExpectExec(`UPDATE "profiles" SET`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()
	expectNoReplay(mock) // post-failure race check finds nothing

	_, err := ExecutePurchase(buyer(100), "listing-id", replayKey)
	var insufficient *InsufficientFundsError
	if !errors.As(err, &insufficient) {
		t.Fatalf("err = %v, want InsufficientFundsError", err)
	}
	if insufficient.Required != 100 || insufficient.Available != 100 {
		t.Errorf("shortfall = need %d have %d, want need 100 have 100", insufficient.Required, insufficient.Available)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

// A failure crediting the seller rolls the debit and the transaction row
// back together; nothing commits.
func TestExecutePurchaseCreditFailureRollsBack(t *testing.T) {
	mock, cleanup := newTransferMock(t)
	defer cleanup()

	expectNoReplay(mock)
	expectListing(mock, listing(100))
	mock.ExpectBegin()
	expectInsertTransaction(mock)
	mock.ExpectExec(`UPDATE "profiles" SET`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "profiles" SET`).WillReturnError(fmt.Errorf("connection reset"))
	mock.ExpectRollback()
	expectNoReplay(mock)

	if _, err := ExecutePurchase(buyer(100), "listing-id", replayKey); err == nil {
		t.Fatal("err = nil, want credit failure")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

// Replaying a key the buyer already used returns the original transaction
// without touching the listing or the balances.
func TestExecutePurchaseReplayReturnsOriginal(t *testing.T) {
	mock, cleanup := newTransferMock(t)
	defer cleanup()

	mock.ExpectQuery(`SELECT .* FROM "marketplace_transactions" WHERE idempotency_key = \$1 AND buyer_id = \$2`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "listing_id", "buyer_id", "seller_id", "amount_lbt", "idempotency_key"}).
			AddRow("tx-original", "listing-id", "buyer-id", "seller-id", 100, replayKey))

	purchase, err := ExecutePurchase(buyer(100), "listing-id", replayKey)
	if err != nil {
		t.Fatalf("err = %v, want nil", err)
	}
	if purchase.ID != "tx-original" {
		t.Errorf("purchase.ID = %q, want \"tx-original\"", purchase.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

// When two submits race on the same key, the loser's insert hits the unique
// index after the winner committed. The loser re-reads and returns the
// winner's row instead of surfacing the constraint error.
func TestExecutePurchaseConcurrentKeyLoserGetsWinnerRow(t *testing.T) {
	mock, cleanup := newTransferMock(t)
	defer cleanup()

	expectNoReplay(mock)
	expectListing(mock, listing(100))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "marketplace_transactions"`).
		WillReturnError(fmt.Errorf(`duplicate key value violates unique constraint "idx_marketplace_transactions_idempotency_key"`))
	mock.ExpectRollback()
	mock.ExpectQuery(`SELECT .* FROM "marketplace_transactions" WHERE idempotency_key = \$1 AND buyer_id = \$2`).
		WillReturnRows(sqlmock.NewRows(
			[]string{"id", "listing_id", "buyer_id", "seller_id", "amount_lbt", "idempotency_key"}).
			AddRow("tx-winner", "listing-id", "buyer-id", "seller-id", 100, replayKey))

	purchase, err := ExecutePurchase(buyer(100), "listing-id", replayKey)
	if err != nil {
		t.Fatalf("err = %v, want the winner's transaction", err)
	}
	if purchase.ID != "tx-winner" {
		t.Errorf("purchase.ID = %q, want \"tx-winner\"", purchase.ID)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
