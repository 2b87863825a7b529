package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransaksiPenitipRow is one flat row of the transaksi/barang/pembeli/komisi join.
type TransaksiPenitipRow struct {
	IDTransaksi     int64               `db:"id_transaksi"`
	NoNota          string              `db:"no_nota"`
	TanggalPesan    *time.Time          `db:"tanggal_pesan"`
	NamaBarang      string              `db:"nama_barang"`
	HargaBarang     decimal.Decimal     `db:"harga_barang"`
	NamaPembeli     string              `db:"nama_pembeli"`
	StatusTransaksi string              `db:"status_transaksi"`
	KomisiPenitip   decimal.NullDecimal `db:"komisi_penitip"`
}
