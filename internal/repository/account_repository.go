package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/reusemart/consignment-service/internal/domain"
	"github.com/rs/zerolog/log"
)

type AccountRepositoryImpl struct {
	db *sqlx.DB
}

func CreateAccountRepository(db *sqlx.DB) AccountRepository {
	return &AccountRepositoryImpl{db: db}
}

// accountLookups are tried in order; the first table holding the email wins.
var accountLookups = []string{
	`SELECT id_pegawai AS id, email, password, COALESCE(jabatan, '') AS role, 1 AS is_verified
	 FROM pegawai WHERE LOWER(email) = LOWER(?) LIMIT 1`,
	`SELECT id_penitip AS id, email, password, 'Penitip' AS role, 1 AS is_verified
	 FROM penitip WHERE LOWER(email) = LOWER(?) LIMIT 1`,
	`SELECT id_pembeli AS id, email, password, 'Pembeli' AS role, COALESCE(is_verified, 0) AS is_verified
	 FROM pembeli WHERE LOWER(email) = LOWER(?) LIMIT 1`,
	`SELECT id_organisasi AS id, email, password, 'Organisasi' AS role, 1 AS is_verified
	 FROM organisasi WHERE LOWER(email) = LOWER(?) LIMIT 1`,
}

func (r *AccountRepositoryImpl) EmailExists(ctx context.Context, table domain.AccountTable, email string) (exists bool, err error) {
	switch table {
	case domain.TablePegawai, domain.TablePembeli, domain.TableOrganisasi, domain.TablePenitip:
	default:
		return false, fmt.Errorf("unknown account table %q", table)
	}

	var count int64
	err = r.db.GetContext(ctx, &count, fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE LOWER(email) = LOWER(?)", table), email)
	if err != nil {
		log.Error().Err(err).Str("component", "EmailExists").Str("table", string(table)).Msg("")
		return false, err
	}

	return count > 0, nil
}

func (r *AccountRepositoryImpl) GetAccountByEmail(ctx context.Context, email string) (data domain.Account, err error) {
	for _, query := range accountLookups {
		err = r.db.GetContext(ctx, &data, query, email)
		if err == nil {
			return data, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			log.Error().Err(err).Str("component", "GetAccountByEmail").Msg("")
			return domain.Account{}, err
		}
	}

	return domain.Account{}, nil
}

func (r *AccountRepositoryImpl) AddPembeli(ctx context.Context, data domain.Pembeli) (id int64, err error) {
	result, err := r.db.NamedExecContext(ctx, `
		INSERT INTO pembeli (nama, no_telepon, email, password, poin_loyalitas, is_verified)
		VALUES (:nama, :no_telepon, :email, :password, :poin_loyalitas, :is_verified)`, data)
	if err != nil {
		log.Error().Err(err).Str("component", "AddPembeli").Msg("")
		return
	}

	id, err = result.LastInsertId()
	if err != nil {
		log.Error().Err(err).Str("component", "AddPembeli").Msg("")
		return
	}

	return id, nil
}

func (r *AccountRepositoryImpl) GetPembeliByID(ctx context.Context, id int64) (data domain.Pembeli, err error) {
	err = r.db.GetContext(ctx, &data, `
		SELECT id_pembeli, nama, COALESCE(no_telepon, '') AS no_telepon, email, password,
		       COALESCE(poin_loyalitas, 0) AS poin_loyalitas, COALESCE(is_verified, 0) AS is_verified
		FROM pembeli WHERE id_pembeli = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Pembeli{}, nil
		}
		log.Error().Err(err).Str("component", "GetPembeliByID").Msg("")
		return
	}

	return
}

func (r *AccountRepositoryImpl) VerifyPembeli(ctx context.Context, id int64) (err error) {
	_, err = r.db.ExecContext(ctx, "UPDATE pembeli SET is_verified = 1 WHERE id_pembeli = ?", id)
	if err != nil {
		log.Error().Err(err).Str("component", "VerifyPembeli").Msg("")
		return
	}

	return nil
}
