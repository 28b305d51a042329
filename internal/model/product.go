// File: internal/model/product.go
package model

import "time"

// ProductStatusAvailable 是新商品的預設狀態
const ProductStatusAvailable = "available"

type Product struct {
	ID          int       `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Category    string    `db:"category" json:"category"`
	Status      string    `db:"status" json:"status"`
	OwnerID     *int      `db:"owner_id" json:"owner_id"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
