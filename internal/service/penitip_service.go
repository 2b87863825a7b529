package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/reusemart/consignment-service/internal/domain"
	"github.com/reusemart/consignment-service/internal/dto"
	"github.com/reusemart/consignment-service/internal/repository"
	pkgdto "github.com/reusemart/consignment-service/pkg/dto"
	"github.com/reusemart/consignment-service/pkg/errs"
	"github.com/reusemart/consignment-service/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

type PenitipServiceImpl struct {
	repo        repository.PenitipRepository
	accountRepo repository.AccountRepository
}

func CreatePenitipService(repo repository.PenitipRepository, accountRepo repository.AccountRepository) PenitipService {
	return &PenitipServiceImpl{repo: repo, accountRepo: accountRepo}
}

func (s *PenitipServiceImpl) GetPenitips(ctx context.Context, filter pkgdto.Filter) (resp []dto.PenitipResponse, err error) {
	data, err := s.repo.GetPenitips(ctx, filter)
	if err != nil {
		return
	}

	resp = make([]dto.PenitipResponse, 0, len(data))
	for _, p := range data {
		resp = append(resp, dto.PenitipResponse{
			IDPenitip:   p.IDPenitip,
			ID:          p.ID,
			Nama:        p.Nama,
			NoKTP:       p.NoKTP,
			NoTelepon:   p.NoTelepon,
			Email:       p.Email,
			BadgeLevel:  p.BadgeLevel,
			TotalBarang: p.TotalBarang,
		})
	}

	return resp, nil
}

// penitipConflictTables are the other account tables whose emails a penitip may not reuse.
var penitipConflictTables = []struct {
	table domain.AccountTable
	err   error
}{
	{domain.TablePegawai, errs.ErrEmailInPegawai},
	{domain.TablePembeli, errs.ErrEmailInPembeli},
	{domain.TableOrganisasi, errs.ErrEmailInOrganisasi},
}

// checkConflicts enforces email and no_ktp uniqueness for the penitip
// idPenitip (0 for a new one).
func (s *PenitipServiceImpl) checkConflicts(ctx context.Context, email string, noKTP string, idPenitip int64) error {
	for _, t := range penitipConflictTables {
		exists, err := s.accountRepo.EmailExists(ctx, t.table, email)
		if err != nil {
			return err
		}
		if exists {
			return t.err
		}
	}

	exists, err := s.repo.PenitipExistsByEmailOrKTP(ctx, email, noKTP, idPenitip)
	if err != nil {
		return err
	}
	if exists {
		return errs.ErrEmailOrKTPInPenitip
	}

	return nil
}

// PublicPenitipID is the human readable id stored in penitip.id.
func PublicPenitipID(idPenitip int64) string {
	return fmt.Sprintf("T%d", idPenitip)
}

func (s *PenitipServiceImpl) AddPenitip(ctx context.Context, req dto.PenitipRequest) (publicID string, err error) {
	email := strings.TrimSpace(req.Email)
	noKTP := req.NoKTP.String()
	if utils.IsBlank(req.Nama, noKTP, req.NoTelepon.String(), email, req.Password) {
		return "", errs.ErrRequiredFields
	}

	err = s.checkConflicts(ctx, email, noKTP, 0)
	if err != nil {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	err = s.repo.HandleTrx(ctx, func(ctx context.Context, repo repository.PenitipRepository) error {
		id, err := repo.AddPenitip(ctx, domain.Penitip{
			Nama:           strings.TrimSpace(req.Nama),
			NoKTP:          noKTP,
			NoTelepon:      req.NoTelepon.String(),
			Email:          email,
			HashedPassword: string(hash),
			BadgeLevel:     domain.BadgeNovice,
		})
		if err != nil {
			return err
		}

		publicID = PublicPenitipID(id)
		return repo.SetPenitipPublicID(ctx, id, publicID)
	})
	if err != nil {
		return "", err
	}

	return publicID, nil
}

func (s *PenitipServiceImpl) UpdatePenitip(ctx context.Context, req dto.PenitipUpdateRequest) (err error) {
	if req.IDPenitip == 0 || utils.IsBlank(req.Nama, req.NoKTP.String(), req.NoTelepon.String(), req.Email, req.BadgeLevel) {
		return errs.ErrRequiredFields
	}

	noKTP, err := strconv.ParseInt(req.NoKTP.String(), 10, 64)
	if err != nil {
		return errs.ErrInvalidNumber
	}

	noTelepon, err := strconv.ParseInt(req.NoTelepon.String(), 10, 64)
	if err != nil {
		return errs.ErrInvalidNumber
	}

	penitip, err := s.repo.GetPenitipByID(ctx, req.IDPenitip)
	if err != nil {
		return
	}

	if penitip.IDPenitip == 0 {
		return errs.ErrPenitipNotFound
	}

	email := strings.TrimSpace(req.Email)
	err = s.checkConflicts(ctx, email, strconv.FormatInt(noKTP, 10), req.IDPenitip)
	if err != nil {
		return err
	}

	return s.repo.UpdatePenitip(ctx, domain.PenitipUpdate{
		IDPenitip:  req.IDPenitip,
		Nama:       strings.TrimSpace(req.Nama),
		NoKTP:      noKTP,
		NoTelepon:  noTelepon,
		Email:      email,
		BadgeLevel: req.BadgeLevel,
	})
}

func (s *PenitipServiceImpl) DeletePenitip(ctx context.Context, id int64) (err error) {
	if id == 0 {
		return errs.ErrIDPenitipRequired
	}

	penitip, err := s.repo.GetPenitipByID(ctx, id)
	if err != nil {
		return
	}

	if penitip.IDPenitip == 0 {
		return errs.ErrPenitipNotFound
	}

	return s.repo.DeletePenitip(ctx, id)
}
