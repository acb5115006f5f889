package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/pawlig/pawlig/internal/model"
)

// RequestAdoption files an adoption request for (userID, petID). A
// second request for the same pair is a business-rule violation.
func (s *Service) RequestAdoption(ctx context.Context, userID, petID, message string) (*model.AdoptionRequest, error) {
	db := s.store.DB(ctx)
	var pet model.Pet
	if err := db.First(&pet, "id = ?", petID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "pet", ID: petID}
		}
		return nil, err
	}
	req := model.AdoptionRequest{
		UserID:  userID,
		PetID:   petID,
		Message: message,
		Status:  model.AdoptionPending,
	}
	if err := db.Create(&req).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, &RuleError{
				Code:    RuleDuplicateRequest,
				Message: "an adoption request for this pet already exists",
			}
		}
		return nil, err
	}
	return &req, nil
}

// AdoptionsForShelter lists requests targeting the shelter's pets,
// newest first, joined to the pets.
func (s *Service) AdoptionsForShelter(ctx context.Context, shelterID string) ([]model.AdoptionRequest, error) {
	reqs := make([]model.AdoptionRequest, 0)
	err := s.store.DB(ctx).
		Preload("Pet").
		Joins("JOIN pets ON pets.id = adoption_requests.pet_id").
		Where("pets.shelter_id = ?", shelterID).
		Order("adoption_requests.created_at DESC").
		Find(&reqs).Error
	if err != nil {
		return nil, err
	}
	return reqs, nil
}

// DecideAdoption moves a pending request to approved or rejected. Only
// the shelter owning the pet may decide; decided requests are final.
func (s *Service) DecideAdoption(ctx context.Context, shelterID, requestID, status string) (*model.AdoptionRequest, error) {
	if status != model.AdoptionApproved && status != model.AdoptionRejected {
		return nil, &RuleError{Code: RuleInvalidStatus, Message: "status must be approved or rejected"}
	}
	var req model.AdoptionRequest
	err := s.store.Transact(ctx, func(tx *gorm.DB) error {
		err := tx.Preload("Pet").First(&req, "id = ?", requestID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Entity: "adoption request", ID: requestID}
		}
		if err != nil {
			return err
		}
		if req.Pet == nil || req.Pet.ShelterID != shelterID {
			return &NotFoundError{Entity: "adoption request", ID: requestID}
		}
		if req.Status != model.AdoptionPending {
			return &RuleError{Code: RuleAlreadyDecided, Message: "request has already been decided"}
		}
		req.Status = status
		if err := tx.Model(&model.AdoptionRequest{}).
			Where("id = ?", req.ID).
			Update("status", status).Error; err != nil {
			return err
		}
		if status == model.AdoptionApproved {
			return tx.Model(&model.Pet{}).
				Where("id = ?", req.PetID).
				Update("adopted", true).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &req, nil
}
