package service

import (
	"context"
	"mime/multipart"
	"testing"

	"github.com/reusemart/consignment-service/internal/domain"
	"github.com/reusemart/consignment-service/internal/dto"
	"github.com/reusemart/consignment-service/pkg/errs"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type BarangServiceSuite struct {
	suite.Suite
	repo      *fakeBarangRepo
	storage   *fakeStorage
	publisher *fakePublisher
	svc       BarangService
}

func (s *BarangServiceSuite) SetupTest() {
	s.repo = newFakeBarangRepo()
	s.storage = &fakeStorage{}
	s.publisher = &fakePublisher{}
	s.svc = CreateBarangService(s.repo, s.storage, s.publisher)

	idPenitip := int64(3)
	s.repo.barang[7] = domain.Barang{ID: 7, NamaBarang: "Kulkas", HargaBarang: decimal.NewFromInt(1500000), IDPenitip: &idPenitip}
	s.repo.barang[8] = domain.Barang{ID: 8, NamaBarang: "Kipas"}
	s.repo.gambar[7] = []domain.GambarBarang{
		{ID: 1, IDBarang: 7, SrcImg: "/uploads/a.jpg"},
		{ID: 2, IDBarang: 7, SrcImg: "/uploads/a.jpg"},
	}
	s.repo.totalRating[3] = 10
}

func TestBarangServiceSuite(t *testing.T) {
	suite.Run(t, new(BarangServiceSuite))
}

func (s *BarangServiceSuite) TestGetBarangByID() {
	resp, err := s.svc.GetBarangByID(context.Background(), 7)
	s.Require().NoError(err)

	s.Equal("Kulkas", resp.NamaBarang)
	s.Len(resp.GambarBarang, 2)
}

func (s *BarangServiceSuite) TestGetBarangByIDNotFound() {
	_, err := s.svc.GetBarangByID(context.Background(), 404)
	s.ErrorIs(err, errs.ErrBarangNotFound)
}

func (s *BarangServiceSuite) TestGetBarangByIDWithoutImages() {
	resp, err := s.svc.GetBarangByID(context.Background(), 8)
	s.Require().NoError(err)
	s.NotNil(resp.GambarBarang)
	s.Empty(resp.GambarBarang)
}

func (s *BarangServiceSuite) TestUpdateRating() {
	err := s.svc.UpdateRating(context.Background(), 7, 4)
	s.Require().NoError(err)

	s.Equal(int64(4), *s.repo.barang[7].Rating)
	s.Equal(int64(14), s.repo.totalRating[3])
	s.True(s.repo.rated[7])
	s.Equal(1, s.repo.commits)

	s.Require().Len(s.publisher.events, 1)
	s.Equal(EventBarangRated, s.publisher.events[0].key)
	s.JSONEq(`{"event_type":"barang_rated","data":{"id_barang":7,"id_penitip":3,"rating":4}}`, s.publisher.events[0].value)
}

func (s *BarangServiceSuite) TestUpdateRatingRejectsOutOfRange() {
	for _, rating := range []int64{0, 6, -1} {
		err := s.svc.UpdateRating(context.Background(), 7, rating)
		s.ErrorIs(err, errs.ErrInvalidRating)
	}
	s.Zero(s.repo.commits + s.repo.rollbacks)
}

func (s *BarangServiceSuite) TestUpdateRatingWithoutPenitipChangesNothing() {
	err := s.svc.UpdateRating(context.Background(), 8, 5)
	s.ErrorIs(err, errs.ErrRatingPenitipNotFound)

	s.Nil(s.repo.barang[8].Rating)
	s.False(s.repo.rated[8])
	s.Equal(1, s.repo.rollbacks)
	s.Empty(s.publisher.events)
}

func (s *BarangServiceSuite) TestUpdateRatingRollsBackOnLateFailure() {
	s.repo.failOn = "MarkTransaksiRated"

	err := s.svc.UpdateRating(context.Background(), 7, 5)
	s.ErrorIs(err, errDB)

	s.Nil(s.repo.barang[7].Rating)
	s.Equal(int64(10), s.repo.totalRating[3])
	s.Empty(s.publisher.events)
}

func (s *BarangServiceSuite) TestUpdateRatingSurvivesPublishFailure() {
	s.publisher.err = errDB

	err := s.svc.UpdateRating(context.Background(), 7, 3)
	s.NoError(err)
	s.Equal(int64(13), s.repo.totalRating[3])
}

func (s *BarangServiceSuite) TestUpdateBarangReplacesImages() {
	form := dto.BarangEditForm{NamaBarang: "Kulkas 2 Pintu", HargaBarang: "1750000", BeratBarang: "40", StatusTitip: "AVAILABLE"}
	images := []*multipart.FileHeader{{Filename: "b.jpg"}, {Filename: "c.jpg"}}

	err := s.svc.UpdateBarang(context.Background(), 7, form, images)
	s.Require().NoError(err)

	s.Equal("Kulkas 2 Pintu", s.repo.barang[7].NamaBarang)
	s.True(decimal.NewFromInt(1750000).Equal(s.repo.barang[7].HargaBarang))
	s.Require().Len(s.repo.gambar[7], 2)
	s.Equal("/uploads/b.jpg", s.repo.gambar[7][0].SrcImg)
	s.Empty(s.storage.removed)
}

func (s *BarangServiceSuite) TestUpdateBarangKeepsImagesWithoutUploads() {
	form := dto.BarangEditForm{NamaBarang: "Kulkas", HargaBarang: "10"}

	err := s.svc.UpdateBarang(context.Background(), 7, form, nil)
	s.Require().NoError(err)

	s.Len(s.repo.gambar[7], 2)
	s.Equal(domain.StatusTitipAvailable, s.repo.barang[7].StatusTitip)
}

func (s *BarangServiceSuite) TestUpdateBarangRemovesFilesWhenTransactionFails() {
	s.repo.failOn = "ReplaceGambarBarang"
	form := dto.BarangEditForm{NamaBarang: "Kulkas Baru", HargaBarang: "10"}

	err := s.svc.UpdateBarang(context.Background(), 7, form, []*multipart.FileHeader{{Filename: "b.jpg"}})
	s.ErrorIs(err, errDB)

	s.Equal("Kulkas", s.repo.barang[7].NamaBarang)
	s.Equal([]string{"/uploads/b.jpg"}, s.storage.removed)
}

func (s *BarangServiceSuite) TestUpdateBarangRemovesEarlierFilesWhenUploadFails() {
	form := dto.BarangEditForm{NamaBarang: "Kulkas", HargaBarang: "10"}
	images := []*multipart.FileHeader{{Filename: "b.jpg"}, {Filename: "notes.txt"}}

	err := s.svc.UpdateBarang(context.Background(), 7, form, images)
	s.ErrorIs(err, errNotImage)
	s.Equal([]string{"/uploads/b.jpg"}, s.storage.removed)
}

func (s *BarangServiceSuite) TestUpdateBarangValidation() {
	err := s.svc.UpdateBarang(context.Background(), 7, dto.BarangEditForm{HargaBarang: "10"}, nil)
	s.Equal(errs.KindValidation, errs.KindOf(err))
}

func (s *BarangServiceSuite) TestUpdateBarangNotFound() {
	err := s.svc.UpdateBarang(context.Background(), 404, dto.BarangEditForm{NamaBarang: "X", HargaBarang: "1"}, []*multipart.FileHeader{{Filename: "b.jpg"}})
	s.ErrorIs(err, errs.ErrBarangNotFound)
	s.Empty(s.storage.saved)
}

func (s *BarangServiceSuite) TestDeleteBarang() {
	s.Require().NoError(s.svc.DeleteBarang(context.Background(), 7))

	_, ok := s.repo.barang[7]
	s.False(ok)
	s.Empty(s.repo.gambar[7])
}

func (s *BarangServiceSuite) TestDeleteBarangErrors() {
	s.ErrorIs(s.svc.DeleteBarang(context.Background(), 0), errs.ErrIDBarangRequired)
	s.ErrorIs(s.svc.DeleteBarang(context.Background(), 404), errs.ErrBarangNotFound)
}

func TestUpdateRatingPropagatesRepositoryErrors(t *testing.T) {
	repo := newFakeBarangRepo()
	repo.failOn = "UpdateBarangRating"
	svc := CreateBarangService(repo, &fakeStorage{}, nil)

	err := svc.UpdateRating(context.Background(), 7, 3)
	require.ErrorIs(t, err, errDB)
	assert.Equal(t, errs.KindInternal, errs.KindOf(err))
}
