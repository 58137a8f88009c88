package usecase_test

import (
	"context"
	"testing"

	"loja/internal/domain/model"
	repo "loja/internal/repository"
	"loja/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func validAddressInput() usecase.AddressInput {
	return usecase.AddressInput{
		Street:       "Rua das Flores",
		Number:       "123",
		Neighborhood: "Centro",
		City:         "São Paulo",
		State:        "SP",
		ZipCode:      "01000-000",
	}
}

func TestAddressUsecase_Create_MissingFieldsRejected(t *testing.T) {
	aRepo := new(AddressRepoMock)
	uc := usecase.NewAddressUsecase(aRepo)

	in := validAddressInput()
	in.City = "  "

	_, err := uc.Create(context.Background(), 1, in)
	assertErrContains(t, err, "missing required fields")

	aRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAddressUsecase_Create_TrimsFields(t *testing.T) {
	aRepo := new(AddressRepoMock)
	uc := usecase.NewAddressUsecase(aRepo)

	in := validAddressInput()
	in.Street = "  Rua das Flores  "

	aRepo.On("Create", mock.Anything, mock.MatchedBy(func(a model.Address) bool {
		return a.UserID == 1 && a.Street == "Rua das Flores"
	})).Return(model.Address{ID: 10, UserID: 1, Street: "Rua das Flores"}, nil)

	created, err := uc.Create(context.Background(), 1, in)
	assert.NoError(t, err)
	assert.Equal(t, int64(10), created.ID)

	aRepo.AssertExpectations(t)
}

func TestAddressUsecase_Update_OtherUsersAddressNotFound(t *testing.T) {
	aRepo := new(AddressRepoMock)
	uc := usecase.NewAddressUsecase(aRepo)

	aRepo.On("IsOwnedByUser", mock.Anything, int64(10), int64(2)).Return(false, nil)

	err := uc.Update(context.Background(), 2, 10, validAddressInput())
	assertErrContains(t, err, "not found")

	aRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAddressUsecase_Delete_InUseConflict(t *testing.T) {
	aRepo := new(AddressRepoMock)
	uc := usecase.NewAddressUsecase(aRepo)

	aRepo.On("IsOwnedByUser", mock.Anything, int64(10), int64(1)).Return(true, nil)
	aRepo.On("Delete", mock.Anything, int64(10)).Return(repo.ErrAddressInUse)

	err := uc.Delete(context.Background(), 1, 10)
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 409, he.Status)
}

func TestAddressUsecase_Delete_DBErrorIs500(t *testing.T) {
	aRepo := new(AddressRepoMock)
	uc := usecase.NewAddressUsecase(aRepo)

	aRepo.On("IsOwnedByUser", mock.Anything, int64(10), int64(1)).Return(true, nil)
	aRepo.On("Delete", mock.Anything, int64(10)).Return(assert.AnError)

	err := uc.Delete(context.Background(), 1, 10)
	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 500, he.Status)
}

func TestAddressUsecase_List_EmptyIsNormal(t *testing.T) {
	aRepo := new(AddressRepoMock)
	uc := usecase.NewAddressUsecase(aRepo)

	aRepo.On("ListByUserID", mock.Anything, int64(1)).Return([]model.Address{}, nil)

	list, err := uc.List(context.Background(), 1)
	assert.NoError(t, err)
	assert.Len(t, list, 0)
}
