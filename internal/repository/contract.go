package repository

import (
	"context"

	"github.com/reusemart/consignment-service/internal/domain"
	pkgdto "github.com/reusemart/consignment-service/pkg/dto"
)

// Lookups return a zero value and a nil error when the row does not exist;
// callers check the primary key.

type BarangRepository interface {
	HandleTrx(ctx context.Context, fn func(ctx context.Context, repo BarangRepository) error) error

	GetBarangByID(ctx context.Context, id int64) (data domain.Barang, err error)
	GetGambarBarang(ctx context.Context, idBarang int64) (data []domain.GambarBarang, err error)
	UpdateBarang(ctx context.Context, data domain.BarangUpdate) (err error)
	ReplaceGambarBarang(ctx context.Context, idBarang int64, srcImgs []string) (err error)
	DeleteBarang(ctx context.Context, id int64) (err error)

	UpdateBarangRating(ctx context.Context, id int64, rating int64) (err error)
	GetBarangPenitipID(ctx context.Context, id int64) (idPenitip int64, err error)
	AddPenitipRating(ctx context.Context, idPenitip int64, rating int64) (err error)
	MarkTransaksiRated(ctx context.Context, idBarang int64) (err error)
}

type PenitipRepository interface {
	HandleTrx(ctx context.Context, fn func(ctx context.Context, repo PenitipRepository) error) error

	GetPenitips(ctx context.Context, filter pkgdto.Filter) (data []domain.PenitipSummary, err error)
	GetPenitipByID(ctx context.Context, id int64) (data domain.Penitip, err error)
	PenitipExistsByEmailOrKTP(ctx context.Context, email string, noKTP string, excludeID int64) (exists bool, err error)
	AddPenitip(ctx context.Context, data domain.Penitip) (id int64, err error)
	SetPenitipPublicID(ctx context.Context, id int64, publicID string) (err error)
	UpdatePenitip(ctx context.Context, data domain.PenitipUpdate) (err error)
	DeletePenitip(ctx context.Context, id int64) (err error)
}

type AccountRepository interface {
	EmailExists(ctx context.Context, table domain.AccountTable, email string) (exists bool, err error)
	GetAccountByEmail(ctx context.Context, email string) (data domain.Account, err error)
	AddPembeli(ctx context.Context, data domain.Pembeli) (id int64, err error)
	GetPembeliByID(ctx context.Context, id int64) (data domain.Pembeli, err error)
	VerifyPembeli(ctx context.Context, id int64) (err error)
}

type TransaksiRepository interface {
	GetTransaksiRowsByPenitip(ctx context.Context, idPenitip int64) (data []domain.TransaksiPenitipRow, err error)
}
