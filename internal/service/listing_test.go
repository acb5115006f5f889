package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestCreatePet(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	seedShelter(t, st, "s1")

	pet, err := svc.CreatePet(ctx, "s1", PetInput{Name: "Rex", Species: "dog", Breed: "mix", AgeMonths: 18})
	require.NoError(t, err)
	require.NotEmpty(t, pet.ID)
	require.Equal(t, "s1", pet.ShelterID)
	require.False(t, pet.Adopted)

	_, err = svc.CreatePet(ctx, "s1", PetInput{Species: "dog"})
	var v *ValidationError
	require.ErrorAs(t, err, &v)
	require.Equal(t, "name", v.Field)

	_, err = svc.CreatePet(ctx, "s1", PetInput{Name: "X", Species: "cat", AgeMonths: -1})
	require.ErrorAs(t, err, &v)
}

func TestCreateProduct(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	seedVendor(t, st, "v1")

	p, err := svc.CreateProduct(ctx, "v1", ProductInput{
		Name:  "Collar",
		Price: decimal.NewFromInt(350),
		Stock: 12,
	})
	require.NoError(t, err)
	require.Equal(t, "v1", p.VendorID)
	require.EqualValues(t, 12, p.Stock)

	_, err = svc.CreateProduct(ctx, "v1", ProductInput{Name: "Bad", Price: decimal.NewFromInt(-1)})
	var v *ValidationError
	require.ErrorAs(t, err, &v)
	require.Equal(t, "price", v.Field)

	_, err = svc.CreateProduct(ctx, "v1", ProductInput{Name: "Bad", Stock: -2})
	require.ErrorAs(t, err, &v)
	require.Equal(t, "stock", v.Field)
}

func TestUpdateProductOwnership(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	seedVendor(t, st, "v1")
	seedVendor(t, st, "v2")
	seedProduct(t, st, "P1", "v1", 500, 4)

	updated, err := svc.UpdateProduct(ctx, "v1", "P1", ProductInput{
		Name:  "Renamed",
		Price: decimal.NewFromInt(600),
		Stock: 9,
	})
	require.NoError(t, err)
	require.Equal(t, "Renamed", updated.Name)
	require.EqualValues(t, 9, updated.Stock)
	require.True(t, updated.Price.Equal(decimal.NewFromInt(600)))

	// A foreign vendor sees not-found, not the row.
	_, err = svc.UpdateProduct(ctx, "v2", "P1", ProductInput{
		Name:  "Hijacked",
		Price: decimal.NewFromInt(1),
	})
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	require.EqualValues(t, 9, productStock(t, st, "P1"))
}
