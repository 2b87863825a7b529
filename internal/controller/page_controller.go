package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/reusemart/consignment-service/internal/service"
	"github.com/reusemart/consignment-service/internal/view"
	"github.com/reusemart/consignment-service/pkg/errs"
	"github.com/reusemart/consignment-service/pkg/response"
)

type PageController struct {
	barangService service.BarangService
}

func CreatePageController(g *echo.Group, barangService service.BarangService) {
	pc := PageController{
		barangService: barangService,
	}
	g.GET("/barang/:id", pc.BarangDetail)
}

func (c *PageController) BarangDetail(e echo.Context) error {
	idParam := e.Param("id")
	id, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil || id <= 0 {
		return e.Render(http.StatusNotFound, view.TemplateBarangDetail, view.NotFoundPage(idParam))
	}

	barang, err := c.barangService.GetBarangByID(e.Request().Context(), id)
	if errors.Is(err, errs.ErrBarangNotFound) {
		return e.Render(http.StatusNotFound, view.TemplateBarangDetail, view.NotFoundPage(idParam))
	}
	if err != nil {
		return response.WriteErrorResponse(e, err, "Gagal mengambil data barang")
	}

	return e.Render(http.StatusOK, view.TemplateBarangDetail, view.NewBarangDetailPage(barang))
}
