package service

import (
	"context"
	"testing"

	"github.com/anandbhardwaj456/E-commerce-webapp/internal/domain"
	"github.com/anandbhardwaj456/E-commerce-webapp/internal/dto"
	"github.com/anandbhardwaj456/E-commerce-webapp/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func countDefaults(addresses []domain.Address) int {
	n := 0
	for _, a := range addresses {
		if a.IsDefault {
			n++
		}
	}
	return n
}

func TestAddAddressFirstBecomesDefault(t *testing.T) {
	user := domain.User{ID: primitive.NewObjectID(), Name: "Asha"}
	userRepo := newFakeUserRepository(user)
	svc := CreateUserService(userRepo)

	addr, err := svc.AddAddress(context.Background(), user.ID.Hex(), dto.AddressRequest{
		Name:   "Asha",
		Street: "12 MG Road",
		City:   "Bengaluru",
	})
	require.NoError(t, err)
	assert.True(t, addr.IsDefault)
}

func TestAddAddressKeepsSingleDefault(t *testing.T) {
	user := domain.User{
		ID: primitive.NewObjectID(),
		Addresses: []domain.Address{
			{ID: primitive.NewObjectID(), Name: "Home", Street: "12 MG Road", City: "Bengaluru", IsDefault: true},
		},
	}
	userRepo := newFakeUserRepository(user)
	svc := CreateUserService(userRepo)

	_, err := svc.AddAddress(context.Background(), user.ID.Hex(), dto.AddressRequest{
		Name:      "Office",
		Street:    "1 Residency Road",
		City:      "Bengaluru",
		IsDefault: true,
	})
	require.NoError(t, err)

	stored, err := userRepo.GetUserByID(context.Background(), user.ID.Hex())
	require.NoError(t, err)
	assert.Len(t, stored.Addresses, 2)
	assert.Equal(t, 1, countDefaults(stored.Addresses))
	assert.Equal(t, "Office", stored.Addresses[1].Name)
	assert.True(t, stored.Addresses[1].IsDefault)
}

func TestDeleteDefaultAddressPromotesAnother(t *testing.T) {
	defaultAddr := domain.Address{ID: primitive.NewObjectID(), Name: "Home", Street: "12 MG Road", City: "Bengaluru", IsDefault: true}
	other := domain.Address{ID: primitive.NewObjectID(), Name: "Office", Street: "1 Residency Road", City: "Bengaluru"}
	user := domain.User{ID: primitive.NewObjectID(), Addresses: []domain.Address{defaultAddr, other}}
	userRepo := newFakeUserRepository(user)
	svc := CreateUserService(userRepo)

	err := svc.DeleteAddress(context.Background(), user.ID.Hex(), defaultAddr.ID.Hex())
	require.NoError(t, err)

	stored, err := userRepo.GetUserByID(context.Background(), user.ID.Hex())
	require.NoError(t, err)
	require.Len(t, stored.Addresses, 1)
	assert.True(t, stored.Addresses[0].IsDefault)
}

func TestUpdateAddressUnknownID(t *testing.T) {
	user := domain.User{ID: primitive.NewObjectID()}
	svc := CreateUserService(newFakeUserRepository(user))

	_, err := svc.UpdateAddress(context.Background(), user.ID.Hex(), primitive.NewObjectID().Hex(), dto.AddressRequest{Name: "Home"})
	assert.ErrorIs(t, err, errs.ErrAddressNotFound)
}

func TestUpdateProfileDuplicateEmail(t *testing.T) {
	user := domain.User{ID: primitive.NewObjectID(), Email: "asha@example.com"}
	other := domain.User{ID: primitive.NewObjectID(), Email: "taken@example.com"}
	svc := CreateUserService(newFakeUserRepository(user, other))

	_, err := svc.UpdateProfile(context.Background(), dto.ProfileRequest{
		UserID: user.ID.Hex(),
		Email:  "taken@example.com",
	})
	assert.ErrorIs(t, err, errs.ErrUserAlreadyExists)
}
