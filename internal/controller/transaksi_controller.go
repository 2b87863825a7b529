package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/reusemart/consignment-service/internal/dto"
	"github.com/reusemart/consignment-service/internal/middleware"
	"github.com/reusemart/consignment-service/internal/service"
	"github.com/reusemart/consignment-service/pkg/response"
	"github.com/reusemart/consignment-service/pkg/utils"
)

type TransaksiController struct {
	service service.TransaksiService
}

func CreateTransaksiController(g *echo.Group, service service.TransaksiService, jwtSecret string) {
	tc := TransaksiController{
		service: service,
	}
	g.GET("/transaksi/by-penitip", tc.GetTransaksiByPenitip, middleware.Authenticate(jwtSecret))
}

// GetTransaksiByPenitip is scoped by the id in the caller's token.
func (c *TransaksiController) GetTransaksiByPenitip(e echo.Context) error {
	idPenitip, _ := utils.ExtractTokenUser(e)

	resp, err := c.service.GetTransaksiByPenitip(e.Request().Context(), idPenitip)
	if err != nil {
		return response.WriteErrorResponse(e, err, "Failed to fetch Penitip's Transaksi")
	}

	return response.WriteSuccessResponse(e, "", dto.TransaksiListResponse{Transaksi: resp})
}
