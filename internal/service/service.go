package service

import "github.com/pawlig/pawlig/internal/store"

// Service exposes the marketplace use cases to the HTTP layer.
type Service struct {
	store *store.Store
}

func New(st *store.Store) *Service {
	return &Service{store: st}
}
