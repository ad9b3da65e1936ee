package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/anandkv/ecopoints/internal/model"
	"github.com/go-chi/chi/v5"
)

func urlParamInt(r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	return id, err == nil
}

// Accounts

func (s *Server) CreateAccountHandler(w http.ResponseWriter, r *http.Request) {
	var req model.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Email) == "" {
		http.Error(w, "username and email required", http.StatusBadRequest)
		return
	}

	account, err := s.storage.CreateAccount(r.Context(), model.Account{
		Username:    req.Username,
		Email:       req.Email,
		Phone:       req.Phone,
		Location:    req.Location,
		IsShopOwner: req.IsShopOwner,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, account)
}

func (s *Server) GetAccountHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamInt(r, "id")
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	account, err := s.storage.GetAccount(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, account)
}

// UpdateAccountHandler edits contact fields only; balance, earnings and CO2
// are reachable solely through ledger operations.
func (s *Server) UpdateAccountHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamInt(r, "id")
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req model.UpdateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	account, err := s.storage.UpdateAccountProfile(r.Context(), id, req.Phone, req.Location)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, account)
}

// Shops

func (s *Server) ListShopsHandler(w http.ResponseWriter, r *http.Request) {
	shops, err := s.storage.ListShops(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, shops)
}

func (s *Server) GetShopHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamInt(r, "id")
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	shop, err := s.storage.GetShop(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, shop)
}

func (s *Server) CreateShopHandler(w http.ResponseWriter, r *http.Request) {
	var req model.CreateShopRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Address) == "" {
		http.Error(w, "name and address required", http.StatusBadRequest)
		return
	}

	shop, err := s.storage.CreateShop(r.Context(), model.Shop{
		Name:      req.Name,
		Address:   req.Address,
		Phone:     req.Phone,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		OwnerID:   req.OwnerID,
	})
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, shop)
}

// Waste categories

func (s *Server) ListCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	categories, err := s.storage.ListWasteCategories(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, categories)
}

// Waste items

func (s *Server) SubmitWasteHandler(w http.ResponseWriter, r *http.Request) {
	var req model.SubmitWasteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	item, err := s.waste.Submit(r.Context(), req)
	if err != nil {
		s.writeError(w, err)
		return
	}

	wasteSubmissions.Inc()
	pointsCredited.Add(float64(item.PointsEarned))
	s.writeJSON(w, http.StatusCreated, item)
}

func (s *Server) ListWasteByAccountHandler(w http.ResponseWriter, r *http.Request) {
	accountID, ok := urlParamInt(r, "userID")
	if !ok {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	items, err := s.waste.ListByAccount(r.Context(), accountID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, items)
}

func (s *Server) ListWasteByShopHandler(w http.ResponseWriter, r *http.Request) {
	shopID, ok := urlParamInt(r, "shopID")
	if !ok {
		http.Error(w, "invalid shop id", http.StatusBadRequest)
		return
	}

	items, err := s.waste.ListByShop(r.Context(), shopID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, items)
}

func (s *Server) VerifyWasteHandler(w http.ResponseWriter, r *http.Request) {
	s.wasteTransition(w, r, s.waste.Verify)
}

func (s *Server) RejectWasteHandler(w http.ResponseWriter, r *http.Request) {
	s.wasteTransition(w, r, s.waste.Reject)
}

func (s *Server) CollectWasteHandler(w http.ResponseWriter, r *http.Request) {
	s.wasteTransition(w, r, s.waste.Collect)
}

func (s *Server) wasteTransition(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, itemID int) (model.WasteItem, error)) {
	id, ok := urlParamInt(r, "id")
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	item, err := op(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, item)
}

// Books

func (s *Server) ListBooksHandler(w http.ResponseWriter, r *http.Request) {
	books, err := s.market.List(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, books)
}

func (s *Server) GetBookHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamInt(r, "id")
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	book, err := s.market.Get(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, book)
}

func (s *Server) CreateBookHandler(w http.ResponseWriter, r *http.Request) {
	var req model.CreateBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Author) == "" {
		http.Error(w, "title and author required", http.StatusBadRequest)
		return
	}

	book, err := s.market.Create(r.Context(), req)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, book)
}

func (s *Server) PurchaseBookHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := urlParamInt(r, "id")
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var req model.PurchaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	book, err := s.market.Purchase(r.Context(), req.BuyerID, id)
	if err != nil {
		s.writeError(w, err)
		return
	}

	bookPurchases.Inc()
	pointsDebited.Add(float64(book.PointsPrice))
	s.writeJSON(w, http.StatusOK, book)
}

// Transactions

func (s *Server) ListTransactionsHandler(w http.ResponseWriter, r *http.Request) {
	accountID, ok := urlParamInt(r, "userID")
	if !ok {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	txs, err := s.storage.ListTransactionsByAccount(r.Context(), accountID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, txs)
}

// Redemptions

func (s *Server) RequestRedemptionHandler(w http.ResponseWriter, r *http.Request) {
	var req model.RedemptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	redemption, err := s.redeem.Request(r.Context(), req)
	if err != nil {
		s.writeError(w, err)
		return
	}

	redemptionRequests.Inc()
	pointsDebited.Add(float64(redemption.PointsUsed))
	s.writeJSON(w, http.StatusCreated, redemption)
}

func (s *Server) ListRedemptionsHandler(w http.ResponseWriter, r *http.Request) {
	accountID, ok := urlParamInt(r, "userID")
	if !ok {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	redemptions, err := s.redeem.ListByAccount(r.Context(), accountID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, redemptions)
}

func (s *Server) CompleteRedemptionHandler(w http.ResponseWriter, r *http.Request) {
	s.redemptionTransition(w, r, s.redeem.Complete)
}

func (s *Server) CancelRedemptionHandler(w http.ResponseWriter, r *http.Request) {
	s.redemptionTransition(w, r, s.redeem.Cancel)
}

func (s *Server) redemptionTransition(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, id int) (model.Redemption, error)) {
	id, ok := urlParamInt(r, "id")
	if !ok {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	redemption, err := op(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, redemption)
}

// Scan

func (s *Server) ScanWasteHandler(w http.ResponseWriter, r *http.Request) {
	var req model.ScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	result, err := s.classifier.Classify(r.Context(), req.ImageData)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}
