package ledger

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/anandkv/ecopoints/internal/errs"
	"github.com/anandkv/ecopoints/internal/model"
	"github.com/anandkv/ecopoints/internal/storage"
)

func setup(t *testing.T) (*Ledger, *storage.MemStorage, model.Account) {
	t.Helper()

	store := storage.NewMemStorage()
	account, err := store.CreateAccount(context.Background(), model.Account{Username: "tester", Email: "t@example.com"})
	if err != nil {
		t.Fatalf("create account: %v", err)
	}
	return New(store, store), store, account
}

func checkReconciles(t *testing.T, store *storage.MemStorage, accountID int) {
	t.Helper()

	account, err := store.GetAccount(context.Background(), accountID)
	if err != nil {
		t.Fatalf("get account: %v", err)
	}

	txs, err := store.ListTransactionsByAccount(context.Background(), accountID)
	if err != nil {
		t.Fatalf("list transactions: %v", err)
	}

	sum := 0
	for _, tx := range txs {
		sum += tx.Amount
	}
	if sum != account.PointsBalance {
		t.Errorf("balance %d does not equal transaction sum %d", account.PointsBalance, sum)
	}
}

func TestCredit(t *testing.T) {
	led, store, account := setup(t)
	ctx := context.Background()

	tx, err := led.Credit(ctx, account.ID, 100, 10.0, 2.0, "earned", nil)
	if err != nil {
		t.Fatalf("credit: %v", err)
	}
	if tx.Type != model.TxEarn || tx.Amount != 100 {
		t.Errorf("unexpected transaction: %+v", tx)
	}

	updated, _ := store.GetAccount(ctx, account.ID)
	if updated.PointsBalance != 100 {
		t.Errorf("expected balance 100, got %d", updated.PointsBalance)
	}
	if updated.TotalEarned != 10.0 {
		t.Errorf("expected total earned 10.0, got %.2f", updated.TotalEarned)
	}
	if updated.CO2Saved != 2.0 {
		t.Errorf("expected co2 2.0, got %.2f", updated.CO2Saved)
	}

	checkReconciles(t, store, account.ID)
}

func TestCreditInvalidAmount(t *testing.T) {
	led, store, account := setup(t)

	for _, points := range []int{0, -5} {
		_, err := led.Credit(context.Background(), account.ID, points, 0, 0, "bad", nil)
		if !errors.Is(err, errs.ErrInvalidAmount) {
			t.Errorf("points=%d: expected ErrInvalidAmount, got %v", points, err)
		}
	}

	checkReconciles(t, store, account.ID)
}

func TestCreditUnknownAccount(t *testing.T) {
	led, _, _ := setup(t)

	_, err := led.Credit(context.Background(), 999, 10, 0, 0, "ghost", nil)
	if !errors.Is(err, errs.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDebit(t *testing.T) {
	led, store, account := setup(t)
	ctx := context.Background()

	if _, err := led.Credit(ctx, account.ID, 100, 10, 0, "earned", nil); err != nil {
		t.Fatalf("credit: %v", err)
	}

	tx, err := led.Debit(ctx, account.ID, 40, model.TxRedeem, "redeemed", nil)
	if err != nil {
		t.Fatalf("debit: %v", err)
	}
	if tx.Type != model.TxRedeem || tx.Amount != -40 {
		t.Errorf("unexpected transaction: %+v", tx)
	}

	updated, _ := store.GetAccount(ctx, account.ID)
	if updated.PointsBalance != 60 {
		t.Errorf("expected balance 60, got %d", updated.PointsBalance)
	}
	// cumulative earnings untouched by a debit
	if updated.TotalEarned != 10 {
		t.Errorf("expected total earned 10, got %.2f", updated.TotalEarned)
	}

	checkReconciles(t, store, account.ID)
}

func TestDebitInsufficientBalance(t *testing.T) {
	led, store, account := setup(t)
	ctx := context.Background()

	if _, err := led.Credit(ctx, account.ID, 50, 5, 0, "earned", nil); err != nil {
		t.Fatalf("credit: %v", err)
	}

	_, err := led.Debit(ctx, account.ID, 51, model.TxSpend, "too much", nil)
	if !errors.Is(err, errs.ErrInsufficientBalance) {
		t.Fatalf("expected ErrInsufficientBalance, got %v", err)
	}

	updated, _ := store.GetAccount(ctx, account.ID)
	if updated.PointsBalance != 50 {
		t.Errorf("failed debit must not change balance, got %d", updated.PointsBalance)
	}

	checkReconciles(t, store, account.ID)
}

func TestReverse(t *testing.T) {
	led, store, account := setup(t)
	ctx := context.Background()

	tx, err := led.Credit(ctx, account.ID, 100, 10, 1, "earned", nil)
	if err != nil {
		t.Fatalf("credit: %v", err)
	}

	comp, err := led.Reverse(ctx, tx.ID)
	if err != nil {
		t.Fatalf("reverse: %v", err)
	}
	if comp.Amount != -100 || comp.ReversalOf == nil || *comp.ReversalOf != tx.ID {
		t.Errorf("unexpected compensating transaction: %+v", comp)
	}

	updated, _ := store.GetAccount(ctx, account.ID)
	if updated.PointsBalance != 0 {
		t.Errorf("expected balance restored to 0, got %d", updated.PointsBalance)
	}
	if updated.TotalEarned != 0 {
		t.Errorf("expected total earned restored to 0, got %.2f", updated.TotalEarned)
	}
	if updated.CO2Saved != 0 {
		t.Errorf("expected co2 restored to 0, got %.2f", updated.CO2Saved)
	}

	checkReconciles(t, store, account.ID)
}

func TestReverseTwice(t *testing.T) {
	led, _, account := setup(t)
	ctx := context.Background()

	tx, _ := led.Credit(ctx, account.ID, 100, 10, 0, "earned", nil)
	if _, err := led.Reverse(ctx, tx.ID); err != nil {
		t.Fatalf("first reverse: %v", err)
	}

	_, err := led.Reverse(ctx, tx.ID)
	if !errors.Is(err, errs.ErrAlreadyReversed) {
		t.Fatalf("expected ErrAlreadyReversed, got %v", err)
	}
}

func TestReverseUnknownTransaction(t *testing.T) {
	led, _, _ := setup(t)

	_, err := led.Reverse(context.Background(), 12345)
	if !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestReverseWouldOverdraw(t *testing.T) {
	led, store, account := setup(t)
	ctx := context.Background()

	tx, _ := led.Credit(ctx, account.ID, 100, 10, 0, "earned", nil)
	if _, err := led.Debit(ctx, account.ID, 80, model.TxSpend, "spent", nil); err != nil {
		t.Fatalf("debit: %v", err)
	}

	// undoing the 100-point earn would leave the balance at -80
	_, err := led.Reverse(ctx, tx.ID)
	if !errors.Is(err, errs.ErrInsufficientBalance) {
		t.Fatalf("expected ErrInsufficientBalance, got %v", err)
	}

	checkReconciles(t, store, account.ID)
}

func TestConcurrentDebits(t *testing.T) {
	led, store, account := setup(t)
	ctx := context.Background()

	if _, err := led.Credit(ctx, account.ID, 100, 10, 0, "earned", nil); err != nil {
		t.Fatalf("credit: %v", err)
	}

	var wg sync.WaitGroup
	results := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := led.Debit(ctx, account.ID, 60, model.TxRedeem, "concurrent", nil)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var succeeded, insufficient int
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, errs.ErrInsufficientBalance):
			insufficient++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if succeeded != 1 || insufficient != 1 {
		t.Fatalf("expected exactly one success and one ErrInsufficientBalance, got %d/%d", succeeded, insufficient)
	}

	updated, _ := store.GetAccount(ctx, account.ID)
	if updated.PointsBalance != 40 {
		t.Errorf("expected balance 40, got %d", updated.PointsBalance)
	}

	checkReconciles(t, store, account.ID)
}

func TestBalanceNeverNegative(t *testing.T) {
	led, store, account := setup(t)
	ctx := context.Background()

	led.Credit(ctx, account.ID, 30, 3, 0, "earned", nil)
	led.Debit(ctx, account.ID, 10, model.TxSpend, "spent", nil)
	led.Debit(ctx, account.ID, 50, model.TxSpend, "too much", nil)
	led.Credit(ctx, account.ID, 5, 0.5, 0, "earned", nil)
	led.Debit(ctx, account.ID, 25, model.TxRedeem, "redeemed", nil)

	updated, _ := store.GetAccount(ctx, account.ID)
	if updated.PointsBalance < 0 {
		t.Fatalf("balance went negative: %d", updated.PointsBalance)
	}

	checkReconciles(t, store, account.ID)
}
