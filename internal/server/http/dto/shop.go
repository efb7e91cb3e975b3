package dto

// ShopRequest is the registration payload. Name is the owner's name.
type ShopRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	ShopName    string `json:"shopName"`
	ShopAddress string `json:"shopAddress"`
}

// ShopResponse describes a directory entry.
type ShopResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	ShopName    string `json:"shopName"`
	ShopAddress string `json:"shopAddress"`
}

// RegisterShopResponse wraps a freshly registered shop.
type RegisterShopResponse struct {
	Success bool         `json:"success"`
	Shop    ShopResponse `json:"shop"`
}

// ShopsResponse is the search result.
type ShopsResponse struct {
	Shops []ShopResponse `json:"shops"`
}
