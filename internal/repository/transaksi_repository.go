package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/reusemart/consignment-service/internal/domain"
	"github.com/rs/zerolog/log"
)

type TransaksiRepositoryImpl struct {
	db *sqlx.DB
}

func CreateTransaksiRepository(db *sqlx.DB) TransaksiRepository {
	return &TransaksiRepositoryImpl{db: db}
}

func (r *TransaksiRepositoryImpl) GetTransaksiRowsByPenitip(ctx context.Context, idPenitip int64) (data []domain.TransaksiPenitipRow, err error) {
	err = r.db.SelectContext(ctx, &data, `
		SELECT t.id_transaksi, t.no_nota, t.tanggal_pesan,
		       b.nama_barang, COALESCE(b.harga_barang, 0) AS harga_barang,
		       p.nama AS nama_pembeli, t.status_transaksi, k.komisi_penitip
		FROM transaksi t
		JOIN bridgebarangtransaksi bt ON bt.id_transaksi = t.id_transaksi
		JOIN barang b ON b.id_barang = bt.id_barang
		JOIN pembeli p ON t.id_pembeli = p.id_pembeli
		LEFT JOIN (
			SELECT DISTINCT id_transaksi, komisi_penitip
			FROM komisi
		) k ON t.id_transaksi = k.id_transaksi
		WHERE b.id_penitip = ?
		ORDER BY t.tanggal_pesan DESC`, idPenitip)
	if err != nil {
		log.Error().Err(err).Str("component", "GetTransaksiRowsByPenitip").Msg("")
		return nil, err
	}

	return data, nil
}
