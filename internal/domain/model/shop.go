package model

import "time"

// Shop is a print shop registered in the directory. Shops are append-only.
type Shop struct {
	ID          string
	OwnerName   string
	Email       string
	Phone       string
	ShopName    string
	ShopAddress string
	CreatedAt   time.Time
}
