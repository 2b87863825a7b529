package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/reusemart/consignment-service/internal/domain"
	"github.com/rs/zerolog/log"
)

type BarangRepositoryImpl struct {
	db *sqlx.DB
	tx *sqlx.Tx
}

func CreateBarangRepository(db *sqlx.DB) BarangRepository {
	return &BarangRepositoryImpl{db: db}
}

func (r *BarangRepositoryImpl) HandleTrx(ctx context.Context, fn func(ctx context.Context, repo BarangRepository) error) error {
	return runInTx(ctx, r.db, func(tx *sqlx.Tx) error {
		return fn(ctx, &BarangRepositoryImpl{db: r.db, tx: tx})
	})
}

func (r *BarangRepositoryImpl) GetBarangByID(ctx context.Context, id int64) (data domain.Barang, err error) {
	err = sqlx.GetContext(ctx, conn(r.db, r.tx), &data, `
		SELECT b.id_barang, b.nama_barang, b.deskripsi_barang,
		       COALESCE(b.harga_barang, 0) AS harga_barang,
		       COALESCE(b.berat_barang, 0) AS berat_barang,
		       b.kategori_barang,
		       COALESCE(b.status_titip, '') AS status_titip,
		       b.tanggal_masuk, b.tanggal_keluar, b.tanggal_garansi, b.rating, b.id_penitip,
		       p.id AS penitip_public_id, p.nama AS penitip_name
		FROM barang b
		LEFT JOIN penitip p ON p.id_penitip = b.id_penitip
		WHERE b.id_barang = ?`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Barang{}, nil
		}
		log.Error().Err(err).Str("component", "GetBarangByID").Msg("")
		return
	}

	return
}

func (r *BarangRepositoryImpl) GetGambarBarang(ctx context.Context, idBarang int64) (data []domain.GambarBarang, err error) {
	err = sqlx.SelectContext(ctx, conn(r.db, r.tx), &data,
		"SELECT id_gambar, id_barang, src_img FROM gambar_barang WHERE id_barang = ? ORDER BY id_gambar", idBarang)
	if err != nil {
		log.Error().Err(err).Str("component", "GetGambarBarang").Msg("")
		return nil, err
	}

	return
}

func (r *BarangRepositoryImpl) UpdateBarang(ctx context.Context, data domain.BarangUpdate) (err error) {
	_, err = sqlx.NamedExecContext(ctx, conn(r.db, r.tx), `
		UPDATE barang SET nama_barang = :nama_barang, deskripsi_barang = :deskripsi_barang,
		       harga_barang = :harga_barang, berat_barang = :berat_barang,
		       tanggal_garansi = :tanggal_garansi, status_titip = :status_titip
		WHERE id_barang = :id_barang`, data)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateBarang").Msg("")
		return
	}

	return nil
}

func (r *BarangRepositoryImpl) ReplaceGambarBarang(ctx context.Context, idBarang int64, srcImgs []string) (err error) {
	db := conn(r.db, r.tx)

	_, err = db.ExecContext(ctx, "DELETE FROM gambar_barang WHERE id_barang = ?", idBarang)
	if err != nil {
		log.Error().Err(err).Str("component", "ReplaceGambarBarang").Msg("")
		return
	}

	if len(srcImgs) == 0 {
		return nil
	}

	rows := make([]domain.GambarBarang, len(srcImgs))
	for i, src := range srcImgs {
		rows[i] = domain.GambarBarang{IDBarang: idBarang, SrcImg: src}
	}

	_, err = sqlx.NamedExecContext(ctx, db, "INSERT INTO gambar_barang (id_barang, src_img) VALUES (:id_barang, :src_img)", rows)
	if err != nil {
		log.Error().Err(err).Str("component", "ReplaceGambarBarang").Msg("")
		return
	}

	return nil
}

func (r *BarangRepositoryImpl) DeleteBarang(ctx context.Context, id int64) (err error) {
	db := conn(r.db, r.tx)

	_, err = db.ExecContext(ctx, "DELETE FROM gambar_barang WHERE id_barang = ?", id)
	if err != nil {
		log.Error().Err(err).Str("component", "DeleteBarang").Msg("")
		return
	}

	_, err = db.ExecContext(ctx, "DELETE FROM barang WHERE id_barang = ?", id)
	if err != nil {
		log.Error().Err(err).Str("component", "DeleteBarang").Msg("")
		return
	}

	return nil
}

func (r *BarangRepositoryImpl) UpdateBarangRating(ctx context.Context, id int64, rating int64) (err error) {
	_, err = conn(r.db, r.tx).ExecContext(ctx, "UPDATE barang SET rating = ? WHERE id_barang = ?", rating, id)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateBarangRating").Msg("")
		return
	}

	return nil
}

func (r *BarangRepositoryImpl) GetBarangPenitipID(ctx context.Context, id int64) (idPenitip int64, err error) {
	var nullable sql.NullInt64
	err = sqlx.GetContext(ctx, conn(r.db, r.tx), &nullable, "SELECT id_penitip FROM barang WHERE id_barang = ?", id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		log.Error().Err(err).Str("component", "GetBarangPenitipID").Msg("")
		return 0, err
	}

	return nullable.Int64, nil
}

func (r *BarangRepositoryImpl) AddPenitipRating(ctx context.Context, idPenitip int64, rating int64) (err error) {
	_, err = conn(r.db, r.tx).ExecContext(ctx,
		"UPDATE penitip SET total_rating = COALESCE(total_rating, 0) + ? WHERE id_penitip = ?", rating, idPenitip)
	if err != nil {
		log.Error().Err(err).Str("component", "AddPenitipRating").Msg("")
		return
	}

	return nil
}

func (r *BarangRepositoryImpl) MarkTransaksiRated(ctx context.Context, idBarang int64) (err error) {
	_, err = conn(r.db, r.tx).ExecContext(ctx, `
		UPDATE transaksi SET is_rated = 1
		WHERE id_transaksi = (
			SELECT id_transaksi FROM bridgebarangtransaksi WHERE id_barang = ? ORDER BY id_transaksi LIMIT 1
		)`, idBarang)
	if err != nil {
		log.Error().Err(err).Str("component", "MarkTransaksiRated").Msg("")
		return
	}

	return nil
}
