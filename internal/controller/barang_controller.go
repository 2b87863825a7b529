package controller

import (
	"encoding/json"
	"mime/multipart"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/reusemart/consignment-service/internal/dto"
	"github.com/reusemart/consignment-service/internal/middleware"
	"github.com/reusemart/consignment-service/internal/service"
	"github.com/reusemart/consignment-service/pkg/errs"
	"github.com/reusemart/consignment-service/pkg/response"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const formFieldGambar = "gambar"

type BarangController struct {
	service service.BarangService
}

func CreateBarangController(g *echo.Group, service service.BarangService, jwtSecret string) {
	bc := BarangController{
		service: service,
	}
	authenticated := middleware.Authenticate(jwtSecret)

	g.GET("/barang/:id", bc.GetBarangByID)
	g.PUT("/barang/:id", bc.UpdateBarang, authenticated)
	g.DELETE("/barang", bc.DeleteBarang, authenticated)
	g.PATCH("/barang/:id/rating", bc.UpdateRating)
}

func parseBarangID(e echo.Context) (int64, error) {
	id, err := strconv.ParseInt(e.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.ErrInvalidBarangID
	}
	return id, nil
}

// parseRating accepts any JSON number with an integral value, so 4 and 4.0
// are the same rating.
func parseRating(n json.Number) (int64, error) {
	d, err := decimal.NewFromString(n.String())
	if err != nil || !d.IsInteger() || !d.BigInt().IsInt64() {
		return 0, errs.ErrInvalidRating
	}
	return d.IntPart(), nil
}

func (c *BarangController) GetBarangByID(e echo.Context) error {
	id, err := parseBarangID(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, "")
	}

	resp, err := c.service.GetBarangByID(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err, "Gagal mengambil data barang")
	}

	return response.WriteSuccessResponse(e, "", dto.BarangDetailResponse{Barang: resp})
}

func (c *BarangController) UpdateBarang(e echo.Context) error {
	id, err := parseBarangID(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, "")
	}

	form := dto.BarangEditForm{}
	err = e.Bind(&form)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateBarang").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, "")
	}

	var images []*multipart.FileHeader
	if mf, err := e.MultipartForm(); err == nil {
		images = mf.File[formFieldGambar]
	}

	err = c.service.UpdateBarang(e.Request().Context(), id, form, images)
	if err != nil {
		return response.WriteErrorResponse(e, err, "Gagal mengupdate barang")
	}

	return response.WriteSuccessResponse(e, "Barang berhasil diupdate", nil)
}

func (c *BarangController) DeleteBarang(e echo.Context) error {
	payload := dto.DeleteBarangRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "DeleteBarang").Msg("")
		return response.WriteErrorResponse(e, errs.ErrIDBarangRequired, "")
	}

	err = c.service.DeleteBarang(e.Request().Context(), payload.IDBarang)
	if err != nil {
		return response.WriteErrorResponse(e, err, "Gagal menghapus barang")
	}

	return response.WriteSuccessResponse(e, "Barang berhasil dihapus", nil)
}

func (c *BarangController) UpdateRating(e echo.Context) error {
	id, err := parseBarangID(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, "")
	}

	payload := dto.RatingRequest{}
	err = e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateRating").Msg("")
		return response.WriteErrorResponse(e, errs.ErrInvalidRating, "")
	}

	rating, err := parseRating(payload.Rating)
	if err != nil {
		return response.WriteErrorResponse(e, err, "")
	}

	err = c.service.UpdateRating(e.Request().Context(), id, rating)
	if err != nil {
		return response.WriteErrorResponse(e, err, "Gagal update rating")
	}

	return response.WriteSuccessResponse(e, "Rating barang dan penitip berhasil disimpan", dto.RatingResponse{
		IDBarang: id,
		Rating:   rating,
	})
}
