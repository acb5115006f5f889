package service

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/pawlig/pawlig/internal/model"
)

// PetInput describes a new pet listing.
type PetInput struct {
	Name      string `json:"name"`
	Species   string `json:"species"`
	Breed     string `json:"breed"`
	AgeMonths int    `json:"age_months"`
	Photo     string `json:"photo"`
}

// CreatePet registers a pet under the shelter.
func (s *Service) CreatePet(ctx context.Context, shelterID string, in PetInput) (*model.Pet, error) {
	if in.Name == "" {
		return nil, &ValidationError{Field: "name", Reason: "required"}
	}
	if in.Species == "" {
		return nil, &ValidationError{Field: "species", Reason: "required"}
	}
	if in.AgeMonths < 0 {
		return nil, &ValidationError{Field: "age_months", Reason: "must not be negative"}
	}
	pet := model.Pet{
		ShelterID: shelterID,
		Name:      in.Name,
		Species:   in.Species,
		Breed:     in.Breed,
		AgeMonths: in.AgeMonths,
		Photo:     in.Photo,
	}
	if err := s.store.DB(ctx).Create(&pet).Error; err != nil {
		return nil, err
	}
	return &pet, nil
}

// ProductInput describes a new or updated product listing. Stock set
// here is vendor restocking; placed orders remain the only path that
// decrements it.
type ProductInput struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Stock       int64           `json:"stock"`
	Photo       string          `json:"photo"`
}

func (in *ProductInput) validate() error {
	if in.Name == "" {
		return &ValidationError{Field: "name", Reason: "required"}
	}
	if in.Price.IsNegative() {
		return &ValidationError{Field: "price", Reason: "must not be negative"}
	}
	if in.Stock < 0 {
		return &ValidationError{Field: "stock", Reason: "must not be negative"}
	}
	return nil
}

// CreateProduct registers a product under the vendor.
func (s *Service) CreateProduct(ctx context.Context, vendorID string, in ProductInput) (*model.Product, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	p := model.Product{
		VendorID:    vendorID,
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Stock:       in.Stock,
		Photo:       in.Photo,
	}
	if err := s.store.DB(ctx).Create(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateProduct replaces a product's listing fields. Only the owning
// vendor may update; a foreign product is reported as not found rather
// than revealing its existence.
func (s *Service) UpdateProduct(ctx context.Context, vendorID, productID string, in ProductInput) (*model.Product, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	db := s.store.DB(ctx)
	var p model.Product
	err := db.First(&p, "id = ? AND vendor_id = ?", productID, vendorID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Entity: "product", ID: productID}
	}
	if err != nil {
		return nil, err
	}
	p.Name = in.Name
	p.Description = in.Description
	p.Price = in.Price
	p.Stock = in.Stock
	p.Photo = in.Photo
	if err := db.Save(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}
