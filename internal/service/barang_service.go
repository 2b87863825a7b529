package service

import (
	"context"
	"mime/multipart"

	"github.com/reusemart/consignment-service/internal/dto"
	"github.com/reusemart/consignment-service/internal/repository"
	"github.com/reusemart/consignment-service/pkg/errs"
	"github.com/rs/zerolog/log"
)

const (
	MinRating = 1
	MaxRating = 5
)

type BarangServiceImpl struct {
	repo      repository.BarangRepository
	storage   ImageStorage
	publisher EventPublisher
}

func CreateBarangService(repo repository.BarangRepository, storage ImageStorage, publisher EventPublisher) BarangService {
	return &BarangServiceImpl{repo: repo, storage: storage, publisher: publisher}
}

func (s *BarangServiceImpl) GetBarangByID(ctx context.Context, id int64) (resp dto.BarangResponse, err error) {
	barang, err := s.repo.GetBarangByID(ctx, id)
	if err != nil {
		return
	}

	if barang.ID == 0 {
		return resp, errs.ErrBarangNotFound
	}

	gambar, err := s.repo.GetGambarBarang(ctx, id)
	if err != nil {
		return
	}

	resp = dto.BarangResponse{
		IDBarang:        barang.ID,
		NamaBarang:      barang.NamaBarang,
		DeskripsiBarang: barang.DeskripsiBarang,
		HargaBarang:     barang.HargaBarang,
		BeratBarang:     barang.BeratBarang,
		KategoriBarang:  barang.KategoriBarang,
		StatusTitip:     barang.StatusTitip,
		TanggalMasuk:    barang.TanggalMasuk,
		TanggalKeluar:   barang.TanggalKeluar,
		TanggalGaransi:  barang.TanggalGaransi,
		Rating:          barang.Rating,
		IDPenitip:       barang.IDPenitip,
		PenitipID:       barang.PenitipPublicID,
		NamaPenitip:     barang.PenitipName,
		GambarBarang:    make([]dto.GambarBarangResponse, 0, len(gambar)),
	}

	for _, g := range gambar {
		resp.GambarBarang = append(resp.GambarBarang, dto.GambarBarangResponse{
			IDGambar: g.ID,
			SrcImg:   g.SrcImg,
		})
	}

	return resp, nil
}

// UpdateBarang validates the form, stores new images and then updates the row
// and replaces the image rows in one transaction. Stored files are removed
// again when the transaction fails.
func (s *BarangServiceImpl) UpdateBarang(ctx context.Context, id int64, form dto.BarangEditForm, images []*multipart.FileHeader) (err error) {
	update, err := form.Validate(id)
	if err != nil {
		return err
	}

	barang, err := s.repo.GetBarangByID(ctx, id)
	if err != nil {
		return
	}

	if barang.ID == 0 {
		return errs.ErrBarangNotFound
	}

	urls := make([]string, 0, len(images))
	defer func() {
		if err != nil {
			s.removeImages(urls)
		}
	}()

	for _, fh := range images {
		url, err := s.storage.SaveImage(fh)
		if err != nil {
			return err
		}
		urls = append(urls, url)
	}

	err = s.repo.HandleTrx(ctx, func(ctx context.Context, repo repository.BarangRepository) error {
		if err := repo.UpdateBarang(ctx, update); err != nil {
			return err
		}

		if len(urls) == 0 {
			return nil
		}

		return repo.ReplaceGambarBarang(ctx, id, urls)
	})

	return err
}

func (s *BarangServiceImpl) removeImages(urls []string) {
	for _, url := range urls {
		if err := s.storage.Remove(url); err != nil {
			log.Error().Err(err).Str("component", "UpdateBarang").Str("url", url).Msg("")
		}
	}
}

func (s *BarangServiceImpl) DeleteBarang(ctx context.Context, id int64) (err error) {
	if id == 0 {
		return errs.ErrIDBarangRequired
	}

	return s.repo.HandleTrx(ctx, func(ctx context.Context, repo repository.BarangRepository) error {
		barang, err := repo.GetBarangByID(ctx, id)
		if err != nil {
			return err
		}

		if barang.ID == 0 {
			return errs.ErrBarangNotFound
		}

		return repo.DeleteBarang(ctx, id)
	})
}

// UpdateRating stores the rating on the barang, adds it to the owner's
// total_rating and marks the linked transaksi as rated, all or nothing.
func (s *BarangServiceImpl) UpdateRating(ctx context.Context, id int64, rating int64) (err error) {
	if rating < MinRating || rating > MaxRating {
		return errs.ErrInvalidRating
	}

	var idPenitip int64
	err = s.repo.HandleTrx(ctx, func(ctx context.Context, repo repository.BarangRepository) error {
		if err := repo.UpdateBarangRating(ctx, id, rating); err != nil {
			return err
		}

		var err error
		idPenitip, err = repo.GetBarangPenitipID(ctx, id)
		if err != nil {
			return err
		}

		if idPenitip == 0 {
			return errs.ErrRatingPenitipNotFound
		}

		if err := repo.AddPenitipRating(ctx, idPenitip, rating); err != nil {
			return err
		}

		return repo.MarkTransaksiRated(ctx, id)
	})
	if err != nil {
		return err
	}

	publishEvent(ctx, s.publisher, EventBarangRated, dto.BarangRatedEvent{
		IDBarang:  id,
		IDPenitip: idPenitip,
		Rating:    rating,
	})

	return nil
}
