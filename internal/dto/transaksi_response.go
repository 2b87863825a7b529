package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransaksiBarangResponse struct {
	NamaBarang  string          `json:"nama_barang"`
	HargaBarang decimal.Decimal `json:"harga_barang"`
}

// TransaksiPenitipResponse is one transaksi with the distinct items of the
// requesting penitip that it contains.
type TransaksiPenitipResponse struct {
	IDTransaksi     int64                     `json:"id_transaksi"`
	NoNota          string                    `json:"no_nota"`
	TanggalPesan    *time.Time                `json:"tanggal_pesan"`
	NamaPembeli     string                    `json:"nama_pembeli"`
	StatusTransaksi string                    `json:"status_transaksi"`
	KomisiPenitip   decimal.NullDecimal       `json:"komisi_penitip"`
	Barang          []TransaksiBarangResponse `json:"barang"`
	TotalHarga      decimal.Decimal           `json:"total_harga"`
}

type TransaksiListResponse struct {
	Transaksi []TransaksiPenitipResponse `json:"transaksi"`
}
