package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type GambarBarangResponse struct {
	IDGambar int64  `json:"id_gambar"`
	SrcImg   string `json:"src_img"`
}

type BarangResponse struct {
	IDBarang        int64                  `json:"id_barang"`
	NamaBarang      string                 `json:"nama_barang"`
	DeskripsiBarang *string                `json:"deskripsi_barang"`
	HargaBarang     decimal.Decimal        `json:"harga_barang"`
	BeratBarang     float64                `json:"berat_barang"`
	KategoriBarang  *string                `json:"kategori_barang"`
	StatusTitip     string                 `json:"status_titip"`
	TanggalMasuk    *time.Time             `json:"tanggal_masuk"`
	TanggalKeluar   *time.Time             `json:"tanggal_keluar"`
	TanggalGaransi  *time.Time             `json:"tanggal_garansi"`
	Rating          *int64                 `json:"rating"`
	IDPenitip       *int64                 `json:"id_penitip"`
	PenitipID       *string                `json:"penitip_id"`
	NamaPenitip     *string                `json:"nama_penitip"`
	GambarBarang    []GambarBarangResponse `json:"gambar_barang"`
}

type RatingResponse struct {
	IDBarang int64 `json:"id_barang"`
	Rating   int64 `json:"rating"`
}

type BarangDetailResponse struct {
	Barang BarangResponse `json:"barang"`
}
