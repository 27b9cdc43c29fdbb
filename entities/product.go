package entities

import (
	"github.com/google/uuid"
)

// Product is keyed by its barcode. ExpirationDate keeps the dd/mm/yy form it
// was registered with.
type Product struct {
	Barcode        string `gorm:"primaryKey;type:varchar(32)" json:"barcode"`
	Name           string `gorm:"type:varchar(50);index" json:"name"`
	ExpirationDate string `json:"expiration_date"`
	ImageURL       string `json:"image_url,omitempty"`

	Categories     []*ProductCategory `gorm:"foreignKey:ProductBarcode;references:Barcode" json:"categories"`
	FridgeHoldings []*FridgeHolding   `gorm:"foreignKey:ProductBarcode;references:Barcode" json:"-"`
	Timestamp
}

type ProductCategory struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	ProductBarcode string    `gorm:"index" json:"product_barcode"`
	Name           string    `json:"name"`
}

func (p *Product) CategoryNames() []string {
	names := make([]string, 0, len(p.Categories))
	for _, c := range p.Categories {
		names = append(names, c.Name)
	}
	return names
}
