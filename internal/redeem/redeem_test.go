package redeem

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/anandkv/ecopoints/internal/errs"
	"github.com/anandkv/ecopoints/internal/ledger"
	"github.com/anandkv/ecopoints/internal/model"
	"github.com/anandkv/ecopoints/internal/storage"
)

type fixture struct {
	svc     *Service
	ledger  *ledger.Ledger
	store   *storage.MemStorage
	account model.Account
	shop    model.Shop
}

func setup(t *testing.T, balance int) *fixture {
	t.Helper()
	ctx := context.Background()

	store := storage.NewMemStorage()
	led := ledger.New(store, store)

	account, err := store.CreateAccount(ctx, model.Account{Username: "tester", Email: "t@example.com"})
	if err != nil {
		t.Fatalf("create account: %v", err)
	}
	shop, err := store.CreateShop(ctx, model.Shop{Name: "Village General Store", Address: "123 Main Street", IsActive: true})
	if err != nil {
		t.Fatalf("create shop: %v", err)
	}

	if balance > 0 {
		if _, err := led.Credit(ctx, account.ID, balance, float64(balance)*model.PointValueRate, 0, "initial", nil); err != nil {
			t.Fatalf("seed balance: %v", err)
		}
	}

	return &fixture{
		svc:     NewService(store, led),
		ledger:  led,
		store:   store,
		account: account,
		shop:    shop,
	}
}

func TestRequest(t *testing.T) {
	f := setup(t, 100)
	ctx := context.Background()

	redemption, err := f.svc.Request(ctx, model.RedemptionRequest{
		AccountID:  f.account.ID,
		ShopID:     f.shop.ID,
		PointsUsed: 50,
	})
	if err != nil {
		t.Fatalf("request: %v", err)
	}

	if redemption.Status != model.RedemptionPending {
		t.Errorf("expected pending, got %s", redemption.Status)
	}
	if redemption.CashValue != 5.0 {
		t.Errorf("expected cash value 5.00, got %.2f", redemption.CashValue)
	}

	account, _ := f.store.GetAccount(ctx, f.account.ID)
	if account.PointsBalance != 50 {
		t.Errorf("points must be deducted at request time, balance %d", account.PointsBalance)
	}
}

func TestRequestInsufficientBalance(t *testing.T) {
	f := setup(t, 40)
	ctx := context.Background()

	_, err := f.svc.Request(ctx, model.RedemptionRequest{
		AccountID:  f.account.ID,
		ShopID:     f.shop.ID,
		PointsUsed: 41,
	})
	if !errors.Is(err, errs.ErrInsufficientBalance) {
		t.Fatalf("expected ErrInsufficientBalance, got %v", err)
	}

	account, _ := f.store.GetAccount(ctx, f.account.ID)
	if account.PointsBalance != 40 {
		t.Errorf("failed request must not change balance, got %d", account.PointsBalance)
	}

	redemptions, _ := f.svc.ListByAccount(ctx, f.account.ID)
	if len(redemptions) != 0 {
		t.Errorf("failed request must not persist a redemption, got %d", len(redemptions))
	}
}

func TestRequestInvalidAmount(t *testing.T) {
	f := setup(t, 100)

	for _, points := range []int{0, -10} {
		_, err := f.svc.Request(context.Background(), model.RedemptionRequest{
			AccountID:  f.account.ID,
			ShopID:     f.shop.ID,
			PointsUsed: points,
		})
		if !errors.Is(err, errs.ErrInvalidAmount) {
			t.Errorf("points=%d: expected ErrInvalidAmount, got %v", points, err)
		}
	}
}

func TestRequestUnknownShop(t *testing.T) {
	f := setup(t, 100)

	_, err := f.svc.Request(context.Background(), model.RedemptionRequest{
		AccountID:  f.account.ID,
		ShopID:     999,
		PointsUsed: 10,
	})
	if !errors.Is(err, errs.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestComplete(t *testing.T) {
	f := setup(t, 100)
	ctx := context.Background()

	redemption, _ := f.svc.Request(ctx, model.RedemptionRequest{AccountID: f.account.ID, ShopID: f.shop.ID, PointsUsed: 50})

	completed, err := f.svc.Complete(ctx, redemption.ID)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if completed.Status != model.RedemptionCompleted {
		t.Errorf("expected completed, got %s", completed.Status)
	}

	// completion has no further ledger effect
	account, _ := f.store.GetAccount(ctx, f.account.ID)
	if account.PointsBalance != 50 {
		t.Errorf("expected balance 50, got %d", account.PointsBalance)
	}
}

func TestCancelRestoresBalance(t *testing.T) {
	f := setup(t, 100)
	ctx := context.Background()

	redemption, _ := f.svc.Request(ctx, model.RedemptionRequest{AccountID: f.account.ID, ShopID: f.shop.ID, PointsUsed: 50})

	cancelled, err := f.svc.Cancel(ctx, redemption.ID)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if cancelled.Status != model.RedemptionCancelled {
		t.Errorf("expected cancelled, got %s", cancelled.Status)
	}

	account, _ := f.store.GetAccount(ctx, f.account.ID)
	if account.PointsBalance != 100 {
		t.Errorf("expected balance restored to 100, got %d", account.PointsBalance)
	}
	// the restore credit carries no earnings delta
	if account.TotalEarned != 100*model.PointValueRate {
		t.Errorf("cancel changed total earned: %.2f", account.TotalEarned)
	}
}

func TestCancelCompleted(t *testing.T) {
	f := setup(t, 100)
	ctx := context.Background()

	redemption, _ := f.svc.Request(ctx, model.RedemptionRequest{AccountID: f.account.ID, ShopID: f.shop.ID, PointsUsed: 50})
	f.svc.Complete(ctx, redemption.ID)

	_, err := f.svc.Cancel(ctx, redemption.ID)
	if !errors.Is(err, errs.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestCancelTwice(t *testing.T) {
	f := setup(t, 100)
	ctx := context.Background()

	redemption, _ := f.svc.Request(ctx, model.RedemptionRequest{AccountID: f.account.ID, ShopID: f.shop.ID, PointsUsed: 50})
	f.svc.Cancel(ctx, redemption.ID)

	_, err := f.svc.Cancel(ctx, redemption.ID)
	if !errors.Is(err, errs.ErrInvalidTransition) {
		t.Fatalf("second cancel must fail, got %v", err)
	}

	account, _ := f.store.GetAccount(ctx, f.account.ID)
	if account.PointsBalance != 100 {
		t.Errorf("double cancel must not double credit, balance %d", account.PointsBalance)
	}
}

// gatedStore releases GetRedemption only after both concurrent callers have
// read, so both see the same pending row before either writes.
type gatedStore struct {
	*storage.MemStorage
	reads sync.WaitGroup
}

func (g *gatedStore) GetRedemption(ctx context.Context, id int) (model.Redemption, error) {
	redemption, err := g.MemStorage.GetRedemption(ctx, id)
	g.reads.Done()
	g.reads.Wait()
	return redemption, err
}

func TestConcurrentCancels(t *testing.T) {
	f := setup(t, 100)
	ctx := context.Background()

	redemption, err := f.svc.Request(ctx, model.RedemptionRequest{AccountID: f.account.ID, ShopID: f.shop.ID, PointsUsed: 50})
	if err != nil {
		t.Fatalf("request: %v", err)
	}

	gated := &gatedStore{MemStorage: f.store}
	gated.reads.Add(2)
	svc := NewService(gated, f.ledger)

	var wg sync.WaitGroup
	results := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Cancel(ctx, redemption.ID)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var succeeded, conflicted int
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, errs.ErrInvalidTransition):
			conflicted++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if succeeded != 1 || conflicted != 1 {
		t.Fatalf("expected exactly one success and one conflict, got %d/%d", succeeded, conflicted)
	}

	account, _ := f.store.GetAccount(ctx, f.account.ID)
	if account.PointsBalance != 100 {
		t.Fatalf("concurrent cancels must restore exactly once, balance %d", account.PointsBalance)
	}
}

// failingStore fails balance writes on demand.
type failingStore struct {
	*storage.MemStorage
	failDelta bool
}

func (f *failingStore) ApplyAccountDelta(ctx context.Context, id int, points int, monetary, co2 float64) error {
	if f.failDelta {
		return errs.ErrStorageUnavailable
	}
	return f.MemStorage.ApplyAccountDelta(ctx, id, points, monetary, co2)
}

func TestCancelCreditFailureLeavesPending(t *testing.T) {
	ctx := context.Background()

	store := &failingStore{MemStorage: storage.NewMemStorage()}
	led := ledger.New(store, store)
	svc := NewService(store, led)

	account, _ := store.CreateAccount(ctx, model.Account{Username: "tester", Email: "t@example.com"})
	shop, _ := store.CreateShop(ctx, model.Shop{Name: "Village General Store", Address: "123 Main Street", IsActive: true})
	if _, err := led.Credit(ctx, account.ID, 100, 10, 0, "initial", nil); err != nil {
		t.Fatalf("seed balance: %v", err)
	}

	redemption, err := svc.Request(ctx, model.RedemptionRequest{AccountID: account.ID, ShopID: shop.ID, PointsUsed: 50})
	if err != nil {
		t.Fatalf("request: %v", err)
	}

	store.failDelta = true
	if _, err := svc.Cancel(ctx, redemption.ID); err == nil {
		t.Fatal("cancel must fail when the restore credit fails")
	}

	after, _ := store.GetRedemption(ctx, redemption.ID)
	if after.Status != model.RedemptionPending {
		t.Errorf("failed cancel must leave the redemption pending, got %s", after.Status)
	}
	account2, _ := store.GetAccount(ctx, account.ID)
	if account2.PointsBalance != 50 {
		t.Errorf("failed cancel must not change the balance, got %d", account2.PointsBalance)
	}

	// the retry succeeds and credits exactly once
	store.failDelta = false
	cancelled, err := svc.Cancel(ctx, redemption.ID)
	if err != nil {
		t.Fatalf("retry cancel: %v", err)
	}
	if cancelled.Status != model.RedemptionCancelled {
		t.Errorf("expected cancelled, got %s", cancelled.Status)
	}
	account3, _ := store.GetAccount(ctx, account.ID)
	if account3.PointsBalance != 100 {
		t.Errorf("expected balance restored to 100, got %d", account3.PointsBalance)
	}
	txs, _ := store.ListTransactionsByAccount(ctx, account.ID)
	if len(txs) != 3 {
		t.Errorf("expected initial credit, debit and one restore credit, got %d transactions", len(txs))
	}
}

func TestConcurrentRequests(t *testing.T) {
	f := setup(t, 100)
	ctx := context.Background()

	var wg sync.WaitGroup
	results := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.Request(ctx, model.RedemptionRequest{
				AccountID:  f.account.ID,
				ShopID:     f.shop.ID,
				PointsUsed: 60,
			})
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
		t.Fatalf("expected exactly one success and one failure, got %d/%d", succeeded, insufficient)
	}

	account, _ := f.store.GetAccount(ctx, f.account.ID)
	if account.PointsBalance != 40 {
		t.Errorf("expected balance 40, got %d", account.PointsBalance)
	}
}
