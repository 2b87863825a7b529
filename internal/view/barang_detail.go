package view

import (
	"strings"

	"github.com/reusemart/consignment-service/internal/domain"
	"github.com/reusemart/consignment-service/internal/dto"
	"github.com/reusemart/consignment-service/pkg/utils"
)

const (
	DefaultImage = "/images/default-image.jpg"

	TemplateBarangDetail = "barang_detail.html"
)

// UniqueImages keeps the first occurrence of every src_img, in order.
func UniqueImages(gambar []dto.GambarBarangResponse) []string {
	seen := make(map[string]struct{}, len(gambar))
	images := make([]string, 0, len(gambar))

	for _, g := range gambar {
		if g.SrcImg == "" {
			continue
		}
		if _, ok := seen[g.SrcImg]; ok {
			continue
		}
		seen[g.SrcImg] = struct{}{}
		images = append(images, g.SrcImg)
	}

	return images
}

func PreviewImage(images []string) string {
	if len(images) == 0 {
		return DefaultImage
	}
	return images[0]
}

type BarangDetailPage struct {
	Found bool
	ID    string

	Barang           dto.BarangResponse
	Images           []string
	Preview          string
	Harga            string
	Kategori         string
	Deskripsi        string
	Penitip          string
	TanggalMasuk     string
	TanggalKeluar    string
	TanggalGaransi   string
	ShowGaransiInput bool
	Form             dto.BarangEditForm
}

func NewBarangDetailPage(b dto.BarangResponse) BarangDetailPage {
	images := UniqueImages(b.GambarBarang)

	page := BarangDetailPage{
		Found:            true,
		Barang:           b,
		Images:           images,
		Preview:          PreviewImage(images),
		Harga:            utils.FormatRupiah(b.HargaBarang),
		Kategori:         deref(b.KategoriBarang),
		Deskripsi:        deref(b.DeskripsiBarang),
		TanggalMasuk:     utils.FormatTanggal(b.TanggalMasuk),
		TanggalKeluar:    utils.FormatTanggal(b.TanggalKeluar),
		TanggalGaransi:   utils.FormatTanggal(b.TanggalGaransi),
		ShowGaransiInput: b.KategoriBarang != nil && strings.Contains(*b.KategoriBarang, domain.KategoriElektronik),
		Form:             dto.NewBarangEditForm(b),
	}

	page.ID = formatID(b.IDBarang)
	page.Penitip = deref(b.NamaPenitip)
	if b.PenitipID != nil {
		page.Penitip += " (" + *b.PenitipID + ")"
	}
	if page.Penitip == "" {
		page.Penitip = "-"
	}

	return page
}

// NotFoundPage is rendered with status 404 instead of an endless loading state.
func NotFoundPage(id string) BarangDetailPage {
	return BarangDetailPage{Found: false, ID: id, Preview: DefaultImage}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
