package model

// Typed request bodies, validated at the boundary before reaching the core.

type CreateAccountRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Location    string `json:"location"`
	IsShopOwner bool   `json:"is_shop_owner"`
}

type UpdateAccountRequest struct {
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

type CreateShopRequest struct {
	Name      string  `json:"name"`
	Address   string  `json:"address"`
	Phone     string  `json:"phone"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	OwnerID   *int    `json:"owner_id"`
}

type SubmitWasteRequest struct {
	AccountID  int     `json:"user_id"`
	CategoryID int     `json:"category_id"`
	ShopID     int     `json:"shop_id"`
	Weight     float64 `json:"weight"`
	ImageURL   string  `json:"image_url"`
}

type RedemptionRequest struct {
	AccountID  int `json:"user_id"`
	ShopID     int `json:"shop_id"`
	PointsUsed int `json:"points_used"`
}

type CreateBookRequest struct {
	Title         string        `json:"title"`
	Author        string        `json:"author"`
	Category      string        `json:"category"`
	OriginalPrice float64       `json:"original_price"`
	PointsPrice   int           `json:"points_price"`
	Condition     BookCondition `json:"condition"`
	Description   string        `json:"description"`
	ImageURL      string        `json:"image_url"`
	SellerID      int           `json:"seller_id"`
}

type PurchaseRequest struct {
	BuyerID int `json:"user_id"`
}

type ScanRequest struct {
	ImageData string `json:"image_data"`
}
