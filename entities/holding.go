package entities

import (
	"github.com/google/uuid"
)

// FridgeHolding and PantryHolding share their shape but live in separate
// tables. ExpirationDate is stored as yyyy-mm-dd.
type FridgeHolding struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserEmail      string    `gorm:"index" json:"user_email"`
	ProductBarcode string    `gorm:"index" json:"product_barcode"`
	Quantity       int       `json:"quantity"`
	ExpirationDate string    `json:"expiration_date"`

	User    *User    `gorm:"foreignKey:UserEmail;references:Email"`
	Product *Product `gorm:"foreignKey:ProductBarcode;references:Barcode"`
	Timestamp
}

type PantryHolding struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserEmail      string    `gorm:"index" json:"user_email"`
	ProductBarcode string    `gorm:"index" json:"product_barcode"`
	Quantity       int       `json:"quantity"`
	ExpirationDate string    `json:"expiration_date"`

	User    *User    `gorm:"foreignKey:UserEmail;references:Email"`
	Product *Product `gorm:"foreignKey:ProductBarcode;references:Barcode"`
	Timestamp
}
