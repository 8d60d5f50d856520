package catalog

import "time"

// Type discriminators. Every entity carries its shape name even when both
// shapes share physical storage, and the value is immutable once set.
const (
	TypeProduct  = "Product"
	TypeCategory = "Category"
)

// Base holds the fields shared by every catalog entity. The server assigns
// ID on create and stamps both timestamps; callers never set them.
type Base struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EntityID returns the entity id.
func (b *Base) EntityID() string { return b.ID }

// SetEntityID assigns a server-generated id.
func (b *Base) SetEntityID(id string) { b.ID = id }

// EntityType returns the type discriminator.
func (b *Base) EntityType() string { return b.Type }

// StampCreated records the creation timestamp.
func (b *Base) StampCreated(t time.Time) { b.CreatedAt = t }

// StampUpdated records the last-modified timestamp.
func (b *Base) StampUpdated(t time.Time) { b.UpdatedAt = t }

// Product is a sellable catalog item.
type Product struct {
	Base
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	ImageURL    string  `json:"imageUrl,omitempty"`
	CategoryID  string  `json:"categoryId"`
	Stock       int     `json:"stock"`
	IsPublished bool    `json:"isPublished"`
}

// NewProduct returns a Product with its discriminator set.
func NewProduct() *Product {
	return &Product{Base: Base{Type: TypeProduct}}
}

// Category groups products.
type Category struct {
	Base
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// NewCategory returns a Category with its discriminator set.
func NewCategory() *Category {
	return &Category{Base: Base{Type: TypeCategory}}
}
