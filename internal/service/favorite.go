package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/pawlig/pawlig/internal/model"
)

// ToggleFavorite inverts favorite membership for (userID, petID) and
// returns the new state. A duplicate create losing a race against the
// unique index is swallowed and reported as favorited.
func (s *Service) ToggleFavorite(ctx context.Context, userID, petID string) (bool, error) {
	db := s.store.DB(ctx)
	var pet model.Pet
	if err := db.First(&pet, "id = ?", petID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, &NotFoundError{Entity: "pet", ID: petID}
		}
		return false, err
	}
	var fav model.Favorite
	err := db.First(&fav, "user_id = ? AND pet_id = ?", userID, petID).Error
	switch {
	case err == nil:
		if err := db.Delete(&model.Favorite{}, "id = ?", fav.ID).Error; err != nil {
			return false, err
		}
		return false, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return s.favoriteCreate(db, userID, petID)
	default:
		return false, err
	}
}

// favoriteCreate inserts the favorite row. A duplicate-key conflict
// means a concurrent toggle won the race to the unique index; the
// membership is what this caller wanted, so it is reported as success.
func (s *Service) favoriteCreate(db *gorm.DB, userID, petID string) (bool, error) {
	err := db.Create(&model.Favorite{UserID: userID, PetID: petID}).Error
	if err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
		return false, err
	}
	return true, nil
}

// FavoritesOf lists the user's favorites, newest first, each joined to
// its pet and the pet's shelter. Rows where any link of the
// favorite→pet→shelter chain no longer resolves are excluded.
func (s *Service) FavoritesOf(ctx context.Context, userID string) ([]model.Favorite, error) {
	var favs []model.Favorite
	err := s.store.DB(ctx).
		Preload("Pet.Shelter").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&favs).Error
	if err != nil {
		return nil, err
	}
	out := make([]model.Favorite, 0, len(favs))
	for _, f := range favs {
		if f.Pet != nil && f.Pet.Shelter != nil {
			out = append(out, f)
		}
	}
	return out, nil
}
