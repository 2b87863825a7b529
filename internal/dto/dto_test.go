package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/reusemart/consignment-service/internal/domain"
	"github.com/reusemart/consignment-service/pkg/errs"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlexibleStringAcceptsStringsAndNumbers(t *testing.T) {
	var req PenitipRequest
	err := json.Unmarshal([]byte(`{"no_ktp": 3201010101010001, "no_telepon": "081234567890"}`), &req)
	require.NoError(t, err)

	assert.Equal(t, "3201010101010001", req.NoKTP.String())
	assert.Equal(t, "081234567890", req.NoTelepon.String())

	err = json.Unmarshal([]byte(`{"no_ktp": null}`), &req)
	require.NoError(t, err)
	assert.Equal(t, "", req.NoKTP.String())

	assert.Error(t, json.Unmarshal([]byte(`{"no_ktp": true}`), &req))
}

func TestBarangEditFormValidate(t *testing.T) {
	form := BarangEditForm{
		NamaBarang:     " Kulkas ",
		HargaBarang:    "1500000",
		BeratBarang:    "35.5",
		TanggalGaransi: "2025-12-31",
	}

	update, err := form.Validate(7)
	require.NoError(t, err)

	assert.Equal(t, int64(7), update.ID)
	assert.Equal(t, "Kulkas", update.NamaBarang)
	assert.True(t, decimal.NewFromInt(1500000).Equal(update.HargaBarang))
	assert.Equal(t, 35.5, update.BeratBarang)
	assert.Equal(t, domain.StatusTitipAvailable, update.StatusTitip)
	require.NotNil(t, update.TanggalGaransi)
	assert.Equal(t, time.December, update.TanggalGaransi.Month())

	assert.Equal(t, " Kulkas ", form.NamaBarang, "form must not be mutated")
}

func TestBarangEditFormValidateRejects(t *testing.T) {
	valid := BarangEditForm{NamaBarang: "Kulkas", HargaBarang: "10", BeratBarang: "1"}

	cases := map[string]BarangEditForm{
		"missing name":   {HargaBarang: "10"},
		"negative price": {NamaBarang: "Kulkas", HargaBarang: "-1"},
		"bad price":      {NamaBarang: "Kulkas", HargaBarang: "sepuluh"},
		"negative berat": {NamaBarang: "Kulkas", HargaBarang: "10", BeratBarang: "-2"},
		"bad date":       {NamaBarang: "Kulkas", HargaBarang: "10", TanggalGaransi: "31/12/2025"},
	}

	for name, form := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := form.Validate(1)
			assert.Equal(t, errs.KindValidation, errs.KindOf(err))
		})
	}

	_, err := valid.Validate(1)
	assert.NoError(t, err)
}

func TestBarangEditFormValidateWithoutGaransi(t *testing.T) {
	for _, tanggal := range []string{"", "null", "undefined"} {
		form := BarangEditForm{NamaBarang: "Kulkas", HargaBarang: "10", TanggalGaransi: tanggal}

		update, err := form.Validate(1)
		require.NoError(t, err)
		assert.Nil(t, update.TanggalGaransi, tanggal)
	}
}

func TestNewBarangEditForm(t *testing.T) {
	desc := "Dua pintu"
	garansi := time.Date(2025, time.May, 5, 0, 0, 0, 0, time.UTC)
	form := NewBarangEditForm(BarangResponse{
		NamaBarang:      "Kulkas",
		DeskripsiBarang: &desc,
		HargaBarang:     decimal.RequireFromString("1500000.00"),
		BeratBarang:     35.5,
		TanggalGaransi:  &garansi,
		StatusTitip:     "SOLD",
	})

	assert.Equal(t, "Dua pintu", form.DeskripsiBarang)
	assert.Equal(t, "1500000", form.HargaBarang)
	assert.Equal(t, "35.5", form.BeratBarang)
	assert.Equal(t, "2025-05-05", form.TanggalGaransi)
	assert.Equal(t, domain.StatusTitipAvailable, form.StatusTitip)
}
