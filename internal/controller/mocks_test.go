package controller

import (
	"context"
	"mime/multipart"

	"github.com/reusemart/consignment-service/internal/dto"
	pkgdto "github.com/reusemart/consignment-service/pkg/dto"
	"github.com/stretchr/testify/mock"
)

type mockBarangService struct {
	mock.Mock
}

func (m *mockBarangService) GetBarangByID(ctx context.Context, id int64) (dto.BarangResponse, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(dto.BarangResponse), args.Error(1)
}

func (m *mockBarangService) UpdateBarang(ctx context.Context, id int64, form dto.BarangEditForm, images []*multipart.FileHeader) error {
	args := m.Called(ctx, id, form, images)
	return args.Error(0)
}

func (m *mockBarangService) DeleteBarang(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockBarangService) UpdateRating(ctx context.Context, id int64, rating int64) error {
	return m.Called(ctx, id, rating).Error(0)
}

type mockPenitipService struct {
	mock.Mock
}

func (m *mockPenitipService) GetPenitips(ctx context.Context, filter pkgdto.Filter) ([]dto.PenitipResponse, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]dto.PenitipResponse), args.Error(1)
}

func (m *mockPenitipService) AddPenitip(ctx context.Context, req dto.PenitipRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

func (m *mockPenitipService) UpdatePenitip(ctx context.Context, req dto.PenitipUpdateRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *mockPenitipService) DeletePenitip(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Register(ctx context.Context, req dto.RegisterRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *mockAuthService) VerifyEmail(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}

func (m *mockAuthService) Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(dto.LoginResponse), args.Error(1)
}

func (m *mockAuthService) GoogleAuthURL() string {
	return m.Called().String(0)
}

func (m *mockAuthService) GoogleCallback(ctx context.Context, code string) (dto.LoginResponse, error) {
	args := m.Called(ctx, code)
	return args.Get(0).(dto.LoginResponse), args.Error(1)
}

type mockTransaksiService struct {
	mock.Mock
}

func (m *mockTransaksiService) GetTransaksiByPenitip(ctx context.Context, idPenitip int64) ([]dto.TransaksiPenitipResponse, error) {
	args := m.Called(ctx, idPenitip)
	return args.Get(0).([]dto.TransaksiPenitipResponse), args.Error(1)
}
