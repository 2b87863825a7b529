package service

import (
	"context"
	"mime/multipart"

	"github.com/reusemart/consignment-service/internal/dto"
	pkgdto "github.com/reusemart/consignment-service/pkg/dto"
)

type BarangService interface {
	GetBarangByID(ctx context.Context, id int64) (resp dto.BarangResponse, err error)
	UpdateBarang(ctx context.Context, id int64, form dto.BarangEditForm, images []*multipart.FileHeader) (err error)
	DeleteBarang(ctx context.Context, id int64) (err error)
	UpdateRating(ctx context.Context, id int64, rating int64) (err error)
}

type PenitipService interface {
	GetPenitips(ctx context.Context, filter pkgdto.Filter) (resp []dto.PenitipResponse, err error)
	AddPenitip(ctx context.Context, req dto.PenitipRequest) (publicID string, err error)
	UpdatePenitip(ctx context.Context, req dto.PenitipUpdateRequest) (err error)
	DeletePenitip(ctx context.Context, id int64) (err error)
}

type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (err error)
	VerifyEmail(ctx context.Context, token string) (err error)
	Login(ctx context.Context, req dto.LoginRequest) (resp dto.LoginResponse, err error)
	GoogleAuthURL() string
	GoogleCallback(ctx context.Context, code string) (resp dto.LoginResponse, err error)
}

type TransaksiService interface {
	GetTransaksiByPenitip(ctx context.Context, idPenitip int64) (resp []dto.TransaksiPenitipResponse, err error)
}

// EventPublisher is the message-queue side of the service; a nil publisher
// is allowed by the kafka implementation.
type EventPublisher interface {
	Publish(ctx context.Context, key string, value []byte) error
}

type ImageStorage interface {
	SaveImage(fh *multipart.FileHeader) (url string, err error)
	Remove(url string) error
}

type VerificationMailer interface {
	SendVerificationEmail(ctx context.Context, to string, link string) error
}
