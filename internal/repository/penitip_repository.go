package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/reusemart/consignment-service/internal/domain"
	pkgdto "github.com/reusemart/consignment-service/pkg/dto"
	"github.com/rs/zerolog/log"
)

type PenitipRepositoryImpl struct {
	db *sqlx.DB
	tx *sqlx.Tx
}

func CreatePenitipRepository(db *sqlx.DB) PenitipRepository {
	return &PenitipRepositoryImpl{db: db}
}

func (r *PenitipRepositoryImpl) HandleTrx(ctx context.Context, fn func(ctx context.Context, repo PenitipRepository) error) error {
	return runInTx(ctx, r.db, func(tx *sqlx.Tx) error {
		return fn(ctx, &PenitipRepositoryImpl{db: r.db, tx: tx})
	})
}

func (r *PenitipRepositoryImpl) GetPenitips(ctx context.Context, filter pkgdto.Filter) (data []domain.PenitipSummary, err error) {
	query := `
		SELECT penitip.id_penitip, penitip.id, penitip.nama, penitip.no_ktp, penitip.no_telepon,
		       penitip.email, COALESCE(penitip.badge_level, '') AS badge_level,
		       COUNT(barang.id_barang) AS total_barang
		FROM penitip
		LEFT JOIN barang ON penitip.id_penitip = barang.id_penitip`

	var args []interface{}
	if search := strings.TrimSpace(filter.Q); search != "" {
		query += `
		WHERE LOWER(penitip.nama) LIKE ? OR LOWER(penitip.email) LIKE ? OR LOWER(penitip.no_telepon) LIKE ?`
		pattern := "%" + escapeLike(strings.ToLower(search)) + "%"
		args = append(args, pattern, pattern, pattern)
	}

	query += " GROUP BY penitip.id_penitip"

	err = sqlx.SelectContext(ctx, conn(r.db, r.tx), &data, query, args...)
	if err != nil {
		log.Error().Err(err).Str("component", "GetPenitips").Msg("")
		return nil, err
	}

	return data, nil
}

func (r *PenitipRepositoryImpl) GetPenitipByID(ctx context.Context, id int64) (data domain.Penitip, err error) {
	err = sqlx.GetContext(ctx, conn(r.db, r.tx), &data, `
		SELECT id_penitip, id, nama, no_ktp, no_telepon, email, password,
		       COALESCE(badge_level, '') AS badge_level, COALESCE(total_rating, 0) AS total_rating
		FROM penitip WHERE id_penitip = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Penitip{}, nil
		}
		log.Error().Err(err).Str("component", "GetPenitipByID").Msg("")
		return
	}

	return
}

// PenitipExistsByEmailOrKTP ignores the row excludeID so an update does not
// collide with itself; pass 0 to check every row.
func (r *PenitipRepositoryImpl) PenitipExistsByEmailOrKTP(ctx context.Context, email string, noKTP string, excludeID int64) (exists bool, err error) {
	var count int64
	err = sqlx.GetContext(ctx, conn(r.db, r.tx), &count,
		"SELECT COUNT(*) FROM penitip WHERE (LOWER(email) = LOWER(?) OR no_ktp = ?) AND id_penitip <> ?", email, noKTP, excludeID)
	if err != nil {
		log.Error().Err(err).Str("component", "PenitipExistsByEmailOrKTP").Msg("")
		return false, err
	}

	return count > 0, nil
}

func (r *PenitipRepositoryImpl) AddPenitip(ctx context.Context, data domain.Penitip) (id int64, err error) {
	result, err := sqlx.NamedExecContext(ctx, conn(r.db, r.tx), `
		INSERT INTO penitip (nama, no_ktp, no_telepon, email, password, badge_level)
		VALUES (:nama, :no_ktp, :no_telepon, :email, :password, :badge_level)`, data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddPenitip").Msg("")
		return
	}

	id, err = result.LastInsertId()
	if err != nil {
		log.Error().Err(err).Str("component", "AddPenitip").Msg("")
		return
	}

	return id, nil
}

func (r *PenitipRepositoryImpl) SetPenitipPublicID(ctx context.Context, id int64, publicID string) (err error) {
	_, err = conn(r.db, r.tx).ExecContext(ctx, "UPDATE penitip SET id = ? WHERE id_penitip = ?", publicID, id)
	if err != nil {
		log.Error().Err(err).Str("component", "SetPenitipPublicID").Msg("")
		return
	}

	return nil
}

func (r *PenitipRepositoryImpl) UpdatePenitip(ctx context.Context, data domain.PenitipUpdate) (err error) {
	_, err = sqlx.NamedExecContext(ctx, conn(r.db, r.tx), `
		UPDATE penitip SET nama = :nama, no_ktp = :no_ktp, no_telepon = :no_telepon,
		       email = :email, badge_level = :badge_level
		WHERE id_penitip = :id_penitip`, data)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdatePenitip").Msg("")
		return
	}

	return nil
}

func (r *PenitipRepositoryImpl) DeletePenitip(ctx context.Context, id int64) (err error) {
	_, err = conn(r.db, r.tx).ExecContext(ctx, "DELETE FROM penitip WHERE id_penitip = ?", id)
	if err != nil {
		log.Error().Err(err).Str("component", "DeletePenitip").Msg("")
		return
	}

	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
