package waste

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
	svc      *Service
	store    *storage.MemStorage
	account  model.Account
	category model.WasteCategory
	shop     model.Shop
}

func setup(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	store := storage.NewMemStorage()
	account, err := store.CreateAccount(ctx, model.Account{Username: "tester", Email: "t@example.com"})
	if err != nil {
		t.Fatalf("create account: %v", err)
	}
	category, err := store.CreateWasteCategory(ctx, model.WasteCategory{Name: "Plastic Bottles", PointsPerKg: 50})
	if err != nil {
		t.Fatalf("create category: %v", err)
	}
	shop, err := store.CreateShop(ctx, model.Shop{Name: "Village General Store", Address: "123 Main Street", IsActive: true})
	if err != nil {
		t.Fatalf("create shop: %v", err)
	}

	return &fixture{
		svc:      NewService(store, ledger.New(store, store)),
		store:    store,
		account:  account,
		category: category,
		shop:     shop,
	}
}

func (f *fixture) submit(t *testing.T, weight float64) model.WasteItem {
	t.Helper()

	item, err := f.svc.Submit(context.Background(), model.SubmitWasteRequest{
		AccountID:  f.account.ID,
		CategoryID: f.category.ID,
		ShopID:     f.shop.ID,
		Weight:     weight,
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	return item
}

func TestSubmit(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	item := f.submit(t, 2.0)

	if item.Status != model.ItemPending {
		t.Errorf("expected pending, got %s", item.Status)
	}
	if item.PointsEarned != 100 {
		t.Errorf("expected 100 points for 2.0 kg at 50/kg, got %d", item.PointsEarned)
	}

	account, _ := f.store.GetAccount(ctx, f.account.ID)
	if account.PointsBalance != 100 {
		t.Errorf("expected balance 100, got %d", account.PointsBalance)
	}
	if account.TotalEarned != 10.0 {
		t.Errorf("expected total earned 10.00, got %.2f", account.TotalEarned)
	}
	if account.CO2Saved != 2.0*model.CO2PerKg {
		t.Errorf("expected co2 %.2f, got %.2f", 2.0*model.CO2PerKg, account.CO2Saved)
	}

	tx, err := f.store.GetTransactionByReference(ctx, model.RefWaste, item.ID)
	if err != nil {
		t.Fatalf("submission credit not recorded: %v", err)
	}
	if tx.Type != model.TxEarn || tx.Amount != 100 {
		t.Errorf("unexpected transaction: %+v", tx)
	}
}

func TestSubmitRoundsPoints(t *testing.T) {
	f := setup(t)

	// 50/kg * 1.55 kg = 77.5, rounds to 78
	item := f.submit(t, 1.55)
	if item.PointsEarned != 78 {
		t.Errorf("expected 78 points, got %d", item.PointsEarned)
	}
}

func TestSubmitInvalidWeight(t *testing.T) {
	f := setup(t)

	for _, weight := range []float64{0, -1.5} {
		_, err := f.svc.Submit(context.Background(), model.SubmitWasteRequest{
			AccountID:  f.account.ID,
			CategoryID: f.category.ID,
			ShopID:     f.shop.ID,
			Weight:     weight,
		})
		if !errors.Is(err, errs.ErrInvalidAmount) {
			t.Errorf("weight=%.1f: expected ErrInvalidAmount, got %v", weight, err)
		}
	}

	account, _ := f.store.GetAccount(context.Background(), f.account.ID)
	if account.PointsBalance != 0 {
		t.Errorf("failed submit must not credit, balance %d", account.PointsBalance)
	}
}

func TestSubmitUnknownReferences(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	cases := []model.SubmitWasteRequest{
		{AccountID: 999, CategoryID: f.category.ID, ShopID: f.shop.ID, Weight: 1},
		{AccountID: f.account.ID, CategoryID: 999, ShopID: f.shop.ID, Weight: 1},
		{AccountID: f.account.ID, CategoryID: f.category.ID, ShopID: 999, Weight: 1},
	}
	for i, req := range cases {
		if _, err := f.svc.Submit(ctx, req); !errors.Is(err, errs.ErrNotFound) {
			t.Errorf("case %d: expected ErrNotFound, got %v", i, err)
		}
	}
}

func TestVerify(t *testing.T) {
	f := setup(t)
	item := f.submit(t, 1.0)

	verified, err := f.svc.Verify(context.Background(), item.ID)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if verified.Status != model.ItemVerified {
		t.Errorf("expected verified, got %s", verified.Status)
	}

	// no further ledger effect
	account, _ := f.store.GetAccount(context.Background(), f.account.ID)
	if account.PointsBalance != item.PointsEarned {
		t.Errorf("verify changed balance: %d", account.PointsBalance)
	}
}

func TestVerifyTwice(t *testing.T) {
	f := setup(t)
	item := f.submit(t, 1.0)

	if _, err := f.svc.Verify(context.Background(), item.ID); err != nil {
		t.Fatalf("verify: %v", err)
	}
	_, err := f.svc.Verify(context.Background(), item.ID)
	if !errors.Is(err, errs.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestVerifyCollected(t *testing.T) {
	f := setup(t)
	item := f.submit(t, 1.0)
	ctx := context.Background()

	f.svc.Verify(ctx, item.ID)
	f.svc.Collect(ctx, item.ID)

	_, err := f.svc.Verify(ctx, item.ID)
	if !errors.Is(err, errs.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestReject(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	item := f.submit(t, 2.0)

	rejected, err := f.svc.Reject(ctx, item.ID)
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if rejected.Status != model.ItemRejected {
		t.Errorf("expected rejected, got %s", rejected.Status)
	}

	account, _ := f.store.GetAccount(ctx, f.account.ID)
	if account.PointsBalance != 0 {
		t.Errorf("expected balance restored to 0, got %d", account.PointsBalance)
	}
	if account.TotalEarned != 0 {
		t.Errorf("expected total earned restored to 0, got %.2f", account.TotalEarned)
	}
	if account.CO2Saved != 0 {
		t.Errorf("expected co2 restored to 0, got %.2f", account.CO2Saved)
	}
}

func TestRejectVerified(t *testing.T) {
	f := setup(t)
	item := f.submit(t, 1.0)
	ctx := context.Background()

	f.svc.Verify(ctx, item.ID)

	_, err := f.svc.Reject(ctx, item.ID)
	if !errors.Is(err, errs.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestCollect(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	item := f.submit(t, 2.0)
	f.svc.Verify(ctx, item.ID)

	collected, err := f.svc.Collect(ctx, item.ID)
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if collected.Status != model.ItemCollected {
		t.Errorf("expected collected, got %s", collected.Status)
	}

	shop, _ := f.store.GetShop(ctx, f.shop.ID)
	if shop.PointsDistributed != item.PointsEarned {
		t.Errorf("expected shop counter %d, got %d", item.PointsEarned, shop.PointsDistributed)
	}
}

func TestCollectPending(t *testing.T) {
	f := setup(t)
	item := f.submit(t, 1.0)

	_, err := f.svc.Collect(context.Background(), item.ID)
	if !errors.Is(err, errs.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
}

func TestPointsFixedAtCreation(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	item := f.submit(t, 2.0)

	// a later rate change must not alter already-earned points
	f.svc.Verify(ctx, item.ID)
	after, _ := f.store.GetWasteItem(ctx, item.ID)
	if after.PointsEarned != item.PointsEarned {
		t.Errorf("points recomputed: %d != %d", after.PointsEarned, item.PointsEarned)
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

func TestSubmitCreditFailureRemovesItem(t *testing.T) {
	ctx := context.Background()

	store := &failingStore{MemStorage: storage.NewMemStorage()}
	svc := NewService(store, ledger.New(store, store))

	account, _ := store.CreateAccount(ctx, model.Account{Username: "tester", Email: "t@example.com"})
	category, _ := store.CreateWasteCategory(ctx, model.WasteCategory{Name: "Plastic Bottles", PointsPerKg: 50})
	shop, _ := store.CreateShop(ctx, model.Shop{Name: "Village General Store", Address: "123 Main Street", IsActive: true})

	store.failDelta = true
	_, err := svc.Submit(ctx, model.SubmitWasteRequest{
		AccountID:  account.ID,
		CategoryID: category.ID,
		ShopID:     shop.ID,
		Weight:     2.0,
	})
	if err == nil {
		t.Fatal("submit must fail when the credit fails")
	}

	items, _ := svc.ListByAccount(ctx, account.ID)
	if len(items) != 0 {
		t.Errorf("failed submit must not leave an item behind, got %d", len(items))
	}
	after, _ := store.GetAccount(ctx, account.ID)
	if after.PointsBalance != 0 {
		t.Errorf("failed submit must not credit, balance %d", after.PointsBalance)
	}
}

// gatedStore releases GetWasteItem only after both concurrent callers have
// read, so both see the same status before either writes.
type gatedStore struct {
	*storage.MemStorage
	reads sync.WaitGroup
}

func (g *gatedStore) GetWasteItem(ctx context.Context, id int) (model.WasteItem, error) {
	item, err := g.MemStorage.GetWasteItem(ctx, id)
	g.reads.Done()
	g.reads.Wait()
	return item, err
}

func TestConcurrentCollects(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	item := f.submit(t, 2.0)
	if _, err := f.svc.Verify(ctx, item.ID); err != nil {
		t.Fatalf("verify: %v", err)
	}

	gated := &gatedStore{MemStorage: f.store}
	gated.reads.Add(2)
	svc := NewService(gated, ledger.New(gated, gated))

	var wg sync.WaitGroup
	results := make(chan error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Collect(ctx, item.ID)
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

	shop, _ := f.store.GetShop(ctx, f.shop.ID)
	if shop.PointsDistributed != item.PointsEarned {
		t.Errorf("concurrent collects must bump the shop counter exactly once, got %d", shop.PointsDistributed)
	}
}

func TestListByAccountAndShop(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	f.submit(t, 1.0)
	f.submit(t, 2.0)

	byAccount, err := f.svc.ListByAccount(ctx, f.account.ID)
	if err != nil {
		t.Fatalf("list by account: %v", err)
	}
	if len(byAccount) != 2 {
		t.Errorf("expected 2 items, got %d", len(byAccount))
	}

	byShop, err := f.svc.ListByShop(ctx, f.shop.ID)
	if err != nil {
		t.Fatalf("list by shop: %v", err)
	}
	if len(byShop) != 2 {
		t.Errorf("expected 2 items, got %d", len(byShop))
	}
}
