package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/pawlig/pawlig/internal/model"
)

// Pets lists adoptable pets, newest first, each joined to its shelter.
// Pets whose shelter no longer resolves are excluded rather than
// surfaced half-formed.
func (s *Service) Pets(ctx context.Context) ([]model.Pet, error) {
	var pets []model.Pet
	err := s.store.DB(ctx).
		Preload("Shelter").
		Order("created_at DESC").
		Find(&pets).Error
	if err != nil {
		return nil, err
	}
	// Always a non-nil slice so empty listings marshal as [].
	out := make([]model.Pet, 0, len(pets))
	for _, p := range pets {
		if p.Shelter != nil {
			out = append(out, p)
		}
	}
	return out, nil
}

// PetByID loads one pet with its shelter.
func (s *Service) PetByID(ctx context.Context, id string) (*model.Pet, error) {
	var pet model.Pet
	err := s.store.DB(ctx).Preload("Shelter").First(&pet, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Entity: "pet", ID: id}
	}
	if err != nil {
		return nil, err
	}
	return &pet, nil
}

// Products lists products, newest first, each joined to its vendor.
func (s *Service) Products(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	err := s.store.DB(ctx).
		Preload("Vendor").
		Order("created_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	out := make([]model.Product, 0, len(products))
	for _, p := range products {
		if p.Vendor != nil {
			out = append(out, p)
		}
	}
	return out, nil
}

// ProductByID loads one product with its vendor.
func (s *Service) ProductByID(ctx context.Context, id string) (*model.Product, error) {
	var p model.Product
	err := s.store.DB(ctx).Preload("Vendor").First(&p, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Entity: "product", ID: id}
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Announcements lists announcements, newest first.
func (s *Service) Announcements(ctx context.Context) ([]model.Announcement, error) {
	as := make([]model.Announcement, 0)
	err := s.store.DB(ctx).Order("created_at DESC").Find(&as).Error
	if err != nil {
		return nil, err
	}
	return as, nil
}
