package service

import (
	"context"

	"github.com/pawlig/pawlig/internal/model"
)

// CreateAnnouncement publishes a site-wide notice.
func (s *Service) CreateAnnouncement(ctx context.Context, title, body string) (*model.Announcement, error) {
	if title == "" {
		return nil, &ValidationError{Field: "title", Reason: "required"}
	}
	a := model.Announcement{Title: title, Body: body}
	if err := s.store.DB(ctx).Create(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// DeleteAnnouncement removes a notice.
func (s *Service) DeleteAnnouncement(ctx context.Context, id string) error {
	res := s.store.DB(ctx).Delete(&model.Announcement{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return &NotFoundError{Entity: "announcement", ID: id}
	}
	return nil
}
