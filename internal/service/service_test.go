package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/pawlig/pawlig/internal/model"
	"github.com/pawlig/pawlig/internal/obs"
	"github.com/pawlig/pawlig/internal/store"
)

func newTestService(t *testing.T) (*Service, *store.Store) {
	t.Helper()
	obs.InitLogger()
	st, err := store.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	return New(st), st
}

func seedShelter(t *testing.T, st *store.Store, id string) {
	t.Helper()
	s := model.Shelter{ID: id, UserID: "owner-" + id, Name: "Shelter " + id, Verified: true}
	require.NoError(t, st.DB(context.Background()).Create(&s).Error)
}

func seedVendor(t *testing.T, st *store.Store, id string) {
	t.Helper()
	v := model.Vendor{ID: id, UserID: "owner-" + id, Name: "Vendor " + id, Verified: true}
	require.NoError(t, st.DB(context.Background()).Create(&v).Error)
}

func seedPet(t *testing.T, st *store.Store, id, shelterID string) {
	t.Helper()
	p := model.Pet{ID: id, ShelterID: shelterID, Name: "Pet " + id, Species: "dog"}
	require.NoError(t, st.DB(context.Background()).Create(&p).Error)
}

func seedProduct(t *testing.T, st *store.Store, id, vendorID string, price int64, stock int64) {
	t.Helper()
	p := model.Product{
		ID:       id,
		VendorID: vendorID,
		Name:     "Product " + id,
		Price:    decimal.NewFromInt(price),
		Stock:    stock,
	}
	require.NoError(t, st.DB(context.Background()).Create(&p).Error)
}

func productStock(t *testing.T, st *store.Store, id string) int64 {
	t.Helper()
	var p model.Product
	require.NoError(t, st.DB(context.Background()).First(&p, "id = ?", id).Error)
	return p.Stock
}
