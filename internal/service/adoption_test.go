package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pawlig/pawlig/internal/model"
)

func TestRequestAdoption(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	seedShelter(t, st, "s1")
	seedPet(t, st, "p1", "s1")

	req, err := svc.RequestAdoption(ctx, "u1", "p1", "we have a garden")
	require.NoError(t, err)
	require.Equal(t, model.AdoptionPending, req.Status)
	require.NotEmpty(t, req.ID)
}

func TestRequestAdoptionDuplicate(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	seedShelter(t, st, "s1")
	seedPet(t, st, "p1", "s1")

	_, err := svc.RequestAdoption(ctx, "u1", "p1", "")
	require.NoError(t, err)
	_, err = svc.RequestAdoption(ctx, "u1", "p1", "again")
	var rule *RuleError
	require.ErrorAs(t, err, &rule)
	require.Equal(t, RuleDuplicateRequest, rule.Code)

	// A different user may still apply for the same pet.
	_, err = svc.RequestAdoption(ctx, "u2", "p1", "")
	require.NoError(t, err)
}

func TestRequestAdoptionPetNotFound(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.RequestAdoption(context.Background(), "u1", "ghost", "")
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
}

func TestAdoptionsForShelterScoped(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	seedShelter(t, st, "s1")
	seedShelter(t, st, "s2")
	seedPet(t, st, "p1", "s1")
	seedPet(t, st, "p2", "s2")

	_, err := svc.RequestAdoption(ctx, "u1", "p1", "")
	require.NoError(t, err)
	_, err = svc.RequestAdoption(ctx, "u1", "p2", "")
	require.NoError(t, err)

	reqs, err := svc.AdoptionsForShelter(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, reqs, 1)
	require.Equal(t, "p1", reqs[0].PetID)
	require.NotNil(t, reqs[0].Pet)
}

func TestDecideAdoptionApprove(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	seedShelter(t, st, "s1")
	seedPet(t, st, "p1", "s1")
	req, err := svc.RequestAdoption(ctx, "u1", "p1", "")
	require.NoError(t, err)

	decided, err := svc.DecideAdoption(ctx, "s1", req.ID, model.AdoptionApproved)
	require.NoError(t, err)
	require.Equal(t, model.AdoptionApproved, decided.Status)

	pet, err := svc.PetByID(ctx, "p1")
	require.NoError(t, err)
	require.True(t, pet.Adopted)

	// Decided requests are final.
	_, err = svc.DecideAdoption(ctx, "s1", req.ID, model.AdoptionRejected)
	var rule *RuleError
	require.ErrorAs(t, err, &rule)
	require.Equal(t, RuleAlreadyDecided, rule.Code)
}

func TestDecideAdoptionWrongShelter(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	seedShelter(t, st, "s1")
	seedShelter(t, st, "s2")
	seedPet(t, st, "p1", "s1")
	req, err := svc.RequestAdoption(ctx, "u1", "p1", "")
	require.NoError(t, err)

	_, err = svc.DecideAdoption(ctx, "s2", req.ID, model.AdoptionApproved)
	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)

	// Status untouched.
	reqs, err := svc.AdoptionsForShelter(ctx, "s1")
	require.NoError(t, err)
	require.Equal(t, model.AdoptionPending, reqs[0].Status)
}

func TestDecideAdoptionInvalidStatus(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()
	seedShelter(t, st, "s1")
	seedPet(t, st, "p1", "s1")
	req, err := svc.RequestAdoption(ctx, "u1", "p1", "")
	require.NoError(t, err)

	_, err = svc.DecideAdoption(ctx, "s1", req.ID, "pending")
	var rule *RuleError
	require.ErrorAs(t, err, &rule)
	require.Equal(t, RuleInvalidStatus, rule.Code)
}
