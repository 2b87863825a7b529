package dto

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/reusemart/consignment-service/internal/domain"
	"github.com/reusemart/consignment-service/pkg/errs"
	"github.com/reusemart/consignment-service/pkg/utils"
	"github.com/shopspring/decimal"
)

// BarangEditForm holds the raw values of the admin edit form. It is a value
// type; Validate reads it and returns a separate domain.BarangUpdate.
type BarangEditForm struct {
	NamaBarang      string `form:"nama_barang"`
	DeskripsiBarang string `form:"deskripsi_barang"`
	HargaBarang     string `form:"harga_barang"`
	BeratBarang     string `form:"berat_barang"`
	TanggalGaransi  string `form:"tanggal_garansi"`
	StatusTitip     string `form:"status_titip"`
}

// NewBarangEditForm prefills the form from the stored barang. Status is
// always submitted as AVAILABLE from the admin page.
func NewBarangEditForm(b BarangResponse) BarangEditForm {
	form := BarangEditForm{
		NamaBarang:     b.NamaBarang,
		HargaBarang:    b.HargaBarang.String(),
		BeratBarang:    strconv.FormatFloat(b.BeratBarang, 'f', -1, 64),
		TanggalGaransi: utils.DateInputValue(b.TanggalGaransi),
		StatusTitip:    domain.StatusTitipAvailable,
	}
	if b.DeskripsiBarang != nil {
		form.DeskripsiBarang = *b.DeskripsiBarang
	}

	return form
}

// Validate checks the form and returns the typed update for barang id.
func (f BarangEditForm) Validate(id int64) (domain.BarangUpdate, error) {
	nama := strings.TrimSpace(f.NamaBarang)
	if nama == "" {
		return domain.BarangUpdate{}, errs.Validation("nama_barang is required!")
	}

	harga, err := decimal.NewFromString(strings.TrimSpace(f.HargaBarang))
	if err != nil || harga.IsNegative() {
		return domain.BarangUpdate{}, errs.Validation("harga_barang must be a non-negative number!")
	}

	var berat float64
	if s := strings.TrimSpace(f.BeratBarang); s != "" {
		berat, err = strconv.ParseFloat(s, 64)
		if err != nil || berat < 0 {
			return domain.BarangUpdate{}, errs.Validation("berat_barang must be a non-negative number!")
		}
	}

	garansi, err := utils.ParseTanggal(f.TanggalGaransi)
	if err != nil {
		return domain.BarangUpdate{}, errs.Validation("tanggal_garansi must be formatted as YYYY-MM-DD!")
	}

	status := strings.TrimSpace(f.StatusTitip)
	if status == "" {
		status = domain.StatusTitipAvailable
	}

	return domain.BarangUpdate{
		ID:              id,
		NamaBarang:      nama,
		DeskripsiBarang: f.DeskripsiBarang,
		HargaBarang:     harga,
		BeratBarang:     berat,
		TanggalGaransi:  garansi,
		StatusTitip:     status,
	}, nil
}

type DeleteBarangRequest struct {
	IDBarang int64 `json:"id_barang"`
}

// RatingRequest keeps rating as a json.Number so 4.5 and 6 reach validation
// instead of failing the bind.
type RatingRequest struct {
	Rating json.Number `json:"rating"`
}
