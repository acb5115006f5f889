// Package model defines the relational entities of the marketplace.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// User is a registered account. Authentication happens outside this
// service; the row exists so orders, favorites, and adoption requests
// have something to reference.
type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Name      string    `gorm:"not null" json:"name"`
	Role      string    `gorm:"not null" json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Shelter is a verified organization listing pets for adoption.
type Shelter struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	UserID       string    `gorm:"uniqueIndex;not null" json:"user_id"`
	Name         string    `gorm:"not null" json:"name"`
	Municipality string    `json:"municipality"`
	Verified     bool      `gorm:"default:false" json:"verified"`
	CreatedAt    time.Time `json:"created_at"`
}

// Vendor is a verified organization selling physical products.
type Vendor struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	UserID       string    `gorm:"uniqueIndex;not null" json:"user_id"`
	Name         string    `gorm:"not null" json:"name"`
	Municipality string    `json:"municipality"`
	Verified     bool      `gorm:"default:false" json:"verified"`
	CreatedAt    time.Time `json:"created_at"`
}

// Pet is an adoptable animal owned by a shelter.
type Pet struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	ShelterID string    `gorm:"index;not null" json:"shelter_id"`
	Shelter   *Shelter  `json:"shelter,omitempty"`
	Name      string    `gorm:"not null" json:"name"`
	Species   string    `gorm:"not null" json:"species"`
	Breed     string    `json:"breed"`
	AgeMonths int       `json:"age_months"`
	Photo     string    `json:"photo,omitempty"`
	Adopted   bool      `gorm:"default:false" json:"adopted"`
	CreatedAt time.Time `json:"created_at"`
}

// Product is a vendor listing. Price is authoritative and server-held;
// Stock never goes negative and is decremented only when an order is
// placed.
type Product struct {
	ID          string          `gorm:"primaryKey" json:"id"`
	VendorID    string          `gorm:"index;not null" json:"vendor_id"`
	Vendor      *Vendor         `json:"vendor,omitempty"`
	Name        string          `gorm:"not null" json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `gorm:"type:numeric;not null" json:"price"`
	Stock       int64           `gorm:"not null;default:0;check:stock >= 0" json:"stock"`
	Photo       string          `json:"photo,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// Order is immutable once created. Total is computed server-side at
// placement time from the products' authoritative prices.
type Order struct {
	ID                   string          `gorm:"primaryKey" json:"id"`
	UserID               string          `gorm:"index;not null" json:"user_id"`
	Total                decimal.Decimal `gorm:"type:numeric;not null" json:"total"`
	ShippingMunicipality string          `gorm:"not null" json:"shipping_municipality"`
	ShippingAddress      string          `gorm:"not null" json:"shipping_address"`
	PaymentMethod        string          `gorm:"not null" json:"payment_method"`
	Items                []OrderItem     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt            time.Time       `json:"created_at"`
}

// OrderItem stores a price snapshot: UnitPrice is copied from the
// product at placement time, so later price changes never alter
// historical orders.
type OrderItem struct {
	ID        string          `gorm:"primaryKey" json:"id"`
	OrderID   string          `gorm:"index;not null" json:"order_id"`
	ProductID string          `gorm:"not null" json:"product_id"`
	Product   *Product        `json:"product,omitempty"`
	Quantity  int64           `gorm:"not null" json:"quantity"`
	UnitPrice decimal.Decimal `gorm:"type:numeric;not null" json:"unit_price"`
}

// Favorite exists iff the user has favorited the pet. The composite
// unique index is the backstop against duplicate toggles racing.
type Favorite struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"uniqueIndex:idx_favorites_user_pet;not null" json:"user_id"`
	PetID     string    `gorm:"uniqueIndex:idx_favorites_user_pet;not null" json:"pet_id"`
	Pet       *Pet      `json:"pet,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Adoption request statuses. Transitions are one-way: pending may move
// to approved or rejected, decided requests never change again.
const (
	AdoptionPending  = "pending"
	AdoptionApproved = "approved"
	AdoptionRejected = "rejected"
)

// AdoptionRequest is a user's application to adopt a pet. One request
// per (user, pet).
type AdoptionRequest struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	UserID    string    `gorm:"uniqueIndex:idx_adoptions_user_pet;not null" json:"user_id"`
	PetID     string    `gorm:"uniqueIndex:idx_adoptions_user_pet;not null" json:"pet_id"`
	Pet       *Pet      `json:"pet,omitempty"`
	Message   string    `json:"message"`
	Status    string    `gorm:"not null;default:pending" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Announcement is a site-wide notice managed by administrators.
type Announcement struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

func ensureID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}

func (u *User) BeforeCreate(*gorm.DB) error            { ensureID(&u.ID); return nil }
func (s *Shelter) BeforeCreate(*gorm.DB) error         { ensureID(&s.ID); return nil }
func (v *Vendor) BeforeCreate(*gorm.DB) error          { ensureID(&v.ID); return nil }
func (p *Pet) BeforeCreate(*gorm.DB) error             { ensureID(&p.ID); return nil }
func (p *Product) BeforeCreate(*gorm.DB) error         { ensureID(&p.ID); return nil }
func (o *Order) BeforeCreate(*gorm.DB) error           { ensureID(&o.ID); return nil }
func (i *OrderItem) BeforeCreate(*gorm.DB) error       { ensureID(&i.ID); return nil }
func (f *Favorite) BeforeCreate(*gorm.DB) error        { ensureID(&f.ID); return nil }
func (a *AdoptionRequest) BeforeCreate(*gorm.DB) error { ensureID(&a.ID); return nil }
func (a *Announcement) BeforeCreate(*gorm.DB) error    { ensureID(&a.ID); return nil }
