package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/anandkv/ecopoints/internal/errs"
	"github.com/anandkv/ecopoints/internal/model"
)

// MemStorage keeps everything in process memory. Used in tests and when the
// service is started without a database URI.
type MemStorage struct {
	mu          sync.RWMutex
	accounts    map[int]model.Account
	shops       map[int]model.Shop
	categories  map[int]model.WasteCategory
	items       map[int]model.WasteItem
	books       map[int]model.Book
	txs         map[int]model.Transaction
	redemptions map[int]model.Redemption
	nextID      map[string]int
}

func NewMemStorage() *MemStorage {
	return &MemStorage{
		accounts:    make(map[int]model.Account),
		shops:       make(map[int]model.Shop),
		categories:  make(map[int]model.WasteCategory),
		items:       make(map[int]model.WasteItem),
		books:       make(map[int]model.Book),
		txs:         make(map[int]model.Transaction),
		redemptions: make(map[int]model.Redemption),
		nextID:      make(map[string]int),
	}
}

func (s *MemStorage) Ping(ctx context.Context) error { return nil }

func (s *MemStorage) id(kind string) int {
	s.nextID[kind]++
	return s.nextID[kind]
}

// Accounts

func (s *MemStorage) CreateAccount(ctx context.Context, account model.Account) (model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account.ID = s.id("account")
	account.CreatedAt = time.Now()
	s.accounts[account.ID] = account
	return account, nil
}

func (s *MemStorage) GetAccount(ctx context.Context, id int) (model.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[id]
	if !ok {
		return model.Account{}, errs.ErrNotFound
	}
	return account, nil
}

// UpdateAccountProfile edits contact fields only. Balance, earnings and CO2
// are mutated exclusively through ApplyAccountDelta.
func (s *MemStorage) UpdateAccountProfile(ctx context.Context, id int, phone, location string) (model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[id]
	if !ok {
		return model.Account{}, errs.ErrNotFound
	}
	account.Phone = phone
	account.Location = location
	s.accounts[id] = account
	return account, nil
}

func (s *MemStorage) ApplyAccountDelta(ctx context.Context, id int, points int, monetary, co2 float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[id]
	if !ok {
		return errs.ErrNotFound
	}
	if account.PointsBalance+points < 0 {
		return errs.ErrInsufficientBalance
	}

	account.PointsBalance += points
	account.TotalEarned += monetary
	account.CO2Saved += co2
	s.accounts[id] = account
	return nil
}

// Shops

func (s *MemStorage) CreateShop(ctx context.Context, shop model.Shop) (model.Shop, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	shop.ID = s.id("shop")
	shop.CreatedAt = time.Now()
	s.shops[shop.ID] = shop
	return shop, nil
}

func (s *MemStorage) GetShop(ctx context.Context, id int) (model.Shop, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	shop, ok := s.shops[id]
	if !ok {
		return model.Shop{}, errs.ErrNotFound
	}
	return shop, nil
}

func (s *MemStorage) ListShops(ctx context.Context) ([]model.Shop, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	shops := make([]model.Shop, 0, len(s.shops))
	for _, shop := range s.shops {
		shops = append(shops, shop)
	}
	sort.Slice(shops, func(i, j int) bool { return shops[i].ID < shops[j].ID })
	return shops, nil
}

func (s *MemStorage) AddPointsDistributed(ctx context.Context, shopID, points int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	shop, ok := s.shops[shopID]
	if !ok {
		return errs.ErrNotFound
	}
	shop.PointsDistributed += points
	s.shops[shopID] = shop
	return nil
}

// Waste categories

func (s *MemStorage) CreateWasteCategory(ctx context.Context, category model.WasteCategory) (model.WasteCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	category.ID = s.id("category")
	s.categories[category.ID] = category
	return category, nil
}

func (s *MemStorage) GetWasteCategory(ctx context.Context, id int) (model.WasteCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	category, ok := s.categories[id]
	if !ok {
		return model.WasteCategory{}, errs.ErrNotFound
	}
	return category, nil
}

func (s *MemStorage) ListWasteCategories(ctx context.Context) ([]model.WasteCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	categories := make([]model.WasteCategory, 0, len(s.categories))
	for _, category := range s.categories {
		categories = append(categories, category)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].ID < categories[j].ID })
	return categories, nil
}

// Waste items

func (s *MemStorage) CreateWasteItem(ctx context.Context, item model.WasteItem) (model.WasteItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item.ID = s.id("item")
	item.CreatedAt = time.Now()
	s.items[item.ID] = item
	return item, nil
}

func (s *MemStorage) GetWasteItem(ctx context.Context, id int) (model.WasteItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.items[id]
	if !ok {
		return model.WasteItem{}, errs.ErrNotFound
	}
	return item, nil
}

// UpdateWasteItemStatus writes the new status only when the item is still in
// the expected source status, so concurrent transitions race on this write and
// exactly one wins.
func (s *MemStorage) UpdateWasteItemStatus(ctx context.Context, id int, from, to model.WasteItemStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[id]
	if !ok {
		return errs.ErrNotFound
	}
	if item.Status != from {
		return errs.ErrInvalidTransition
	}
	item.Status = to
	s.items[id] = item
	return nil
}

func (s *MemStorage) DeleteWasteItem(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return errs.ErrNotFound
	}
	delete(s.items, id)
	return nil
}

func (s *MemStorage) ListWasteItemsByAccount(ctx context.Context, accountID int) ([]model.WasteItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var items []model.WasteItem
	for _, item := range s.items {
		if item.AccountID == accountID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID > items[j].ID })
	return items, nil
}

func (s *MemStorage) ListWasteItemsByShop(ctx context.Context, shopID int) ([]model.WasteItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var items []model.WasteItem
	for _, item := range s.items {
		if item.ShopID == shopID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID > items[j].ID })
	return items, nil
}

// Books

func (s *MemStorage) CreateBook(ctx context.Context, book model.Book) (model.Book, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	book.ID = s.id("book")
	book.CreatedAt = time.Now()
	s.books[book.ID] = book
	return book, nil
}

func (s *MemStorage) GetBook(ctx context.Context, id int) (model.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	book, ok := s.books[id]
	if !ok {
		return model.Book{}, errs.ErrNotFound
	}
	return book, nil
}

func (s *MemStorage) ListBooks(ctx context.Context, category string) ([]model.Book, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var books []model.Book
	for _, book := range s.books {
		if category == "" || book.Category == category {
			books = append(books, book)
		}
	}
	sort.Slice(books, func(i, j int) bool { return books[i].ID < books[j].ID })
	return books, nil
}

// UpdateBookAvailability flips availability only when it actually changes.
// Taking a book off the shelf that is already off fails with
// ErrBookUnavailable, so of two concurrent buyers only one claims it.
// Putting an already-available book back is a no-op.
func (s *MemStorage) UpdateBookAvailability(ctx context.Context, id int, available bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	book, ok := s.books[id]
	if !ok {
		return errs.ErrNotFound
	}
	if book.IsAvailable == available {
		if !available {
			return errs.ErrBookUnavailable
		}
		return nil
	}
	book.IsAvailable = available
	s.books[id] = book
	return nil
}

// Transactions

func (s *MemStorage) CreateTransaction(ctx context.Context, tx model.Transaction) (model.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx.ID = s.id("tx")
	tx.CreatedAt = time.Now()
	s.txs[tx.ID] = tx
	return tx, nil
}

func (s *MemStorage) GetTransaction(ctx context.Context, id int) (model.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	tx, ok := s.txs[id]
	if !ok {
		return model.Transaction{}, errs.ErrNotFound
	}
	return tx, nil
}

func (s *MemStorage) GetReversal(ctx context.Context, transactionID int) (model.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, tx := range s.txs {
		if tx.ReversalOf != nil && *tx.ReversalOf == transactionID {
			return tx, nil
		}
	}
	return model.Transaction{}, errs.ErrNotFound
}

func (s *MemStorage) GetTransactionByReference(ctx context.Context, itemType string, itemID int) (model.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	found := model.Transaction{}
	for _, tx := range s.txs {
		if tx.RelatedItemType != itemType || tx.RelatedItemID == nil || *tx.RelatedItemID != itemID {
			continue
		}
		if tx.ReversalOf != nil {
			continue
		}
		if found.ID == 0 || tx.ID < found.ID {
			found = tx
		}
	}
	if found.ID == 0 {
		return model.Transaction{}, errs.ErrNotFound
	}
	return found, nil
}

func (s *MemStorage) ListTransactionsByAccount(ctx context.Context, accountID int) ([]model.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var txs []model.Transaction
	for _, tx := range s.txs {
		if tx.AccountID == accountID {
			txs = append(txs, tx)
		}
	}
	sort.Slice(txs, func(i, j int) bool { return txs[i].ID > txs[j].ID })
	return txs, nil
}

// Redemptions

func (s *MemStorage) CreateRedemption(ctx context.Context, redemption model.Redemption) (model.Redemption, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	redemption.ID = s.id("redemption")
	redemption.CreatedAt = time.Now()
	s.redemptions[redemption.ID] = redemption
	return redemption, nil
}

func (s *MemStorage) GetRedemption(ctx context.Context, id int) (model.Redemption, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	redemption, ok := s.redemptions[id]
	if !ok {
		return model.Redemption{}, errs.ErrNotFound
	}
	return redemption, nil
}

// UpdateRedemptionStatus writes the new status only when the redemption is
// still in the expected source status. See UpdateWasteItemStatus.
func (s *MemStorage) UpdateRedemptionStatus(ctx context.Context, id int, from, to model.RedemptionStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	redemption, ok := s.redemptions[id]
	if !ok {
		return errs.ErrNotFound
	}
	if redemption.Status != from {
		return errs.ErrInvalidTransition
	}
	redemption.Status = to
	s.redemptions[id] = redemption
	return nil
}

func (s *MemStorage) ListRedemptionsByAccount(ctx context.Context, accountID int) ([]model.Redemption, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var redemptions []model.Redemption
	for _, redemption := range s.redemptions {
		if redemption.AccountID == accountID {
			redemptions = append(redemptions, redemption)
		}
	}
	sort.Slice(redemptions, func(i, j int) bool { return redemptions[i].ID > redemptions[j].ID })
	return redemptions, nil
}
