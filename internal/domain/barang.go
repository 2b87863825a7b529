package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusTitipAvailable = "AVAILABLE"
	KategoriElektronik   = "Elektronik"
)

type Barang struct {
	ID              int64           `db:"id_barang"`
	NamaBarang      string          `db:"nama_barang"`
	DeskripsiBarang *string         `db:"deskripsi_barang"`
	HargaBarang     decimal.Decimal `db:"harga_barang"`
	BeratBarang     float64         `db:"berat_barang"`
	KategoriBarang  *string         `db:"kategori_barang"`
	StatusTitip     string          `db:"status_titip"`
	TanggalMasuk    *time.Time      `db:"tanggal_masuk"`
	TanggalKeluar   *time.Time      `db:"tanggal_keluar"`
	TanggalGaransi  *time.Time      `db:"tanggal_garansi"`
	Rating          *int64          `db:"rating"`
	IDPenitip       *int64          `db:"id_penitip"`
	PenitipPublicID *string         `db:"penitip_public_id"`
	PenitipName     *string         `db:"penitip_name"`
	GambarBarang    []GambarBarang
}

type GambarBarang struct {
	ID       int64  `db:"id_gambar"`
	IDBarang int64  `db:"id_barang"`
	SrcImg   string `db:"src_img"`
}

// BarangUpdate is the set of columns the admin edit form may change.
type BarangUpdate struct {
	ID              int64           `db:"id_barang"`
	NamaBarang      string          `db:"nama_barang"`
	DeskripsiBarang string          `db:"deskripsi_barang"`
	HargaBarang     decimal.Decimal `db:"harga_barang"`
	BeratBarang     float64         `db:"berat_barang"`
	TanggalGaransi  *time.Time      `db:"tanggal_garansi"`
	StatusTitip     string          `db:"status_titip"`
}
