package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/reusemart/consignment-service/internal/domain"
	"github.com/reusemart/consignment-service/internal/dto"
	"github.com/reusemart/consignment-service/internal/middleware"
	"github.com/reusemart/consignment-service/internal/service"
	pkgdto "github.com/reusemart/consignment-service/pkg/dto"
	"github.com/reusemart/consignment-service/pkg/errs"
	"github.com/reusemart/consignment-service/pkg/response"
	"github.com/rs/zerolog/log"
)

type PenitipController struct {
	service service.PenitipService
}

func CreatePenitipController(g *echo.Group, service service.PenitipService, jwtSecret string) {
	pc := PenitipController{
		service: service,
	}

	cs := g.Group("/penitip", middleware.VerifyUserRole(jwtSecret, domain.RoleCS))
	cs.GET("", pc.GetPenitips)
	cs.POST("", pc.AddPenitip)
	cs.PUT("", pc.UpdatePenitip)
	cs.DELETE("", pc.DeletePenitip)
}

func (c *PenitipController) GetPenitips(e echo.Context) error {
	filter := pkgdto.Filter{}
	err := e.Bind(&filter)
	if err != nil {
		log.Error().Err(err).Str("component", "GetPenitips").Msg("")
	}

	resp, err := c.service.GetPenitips(e.Request().Context(), filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, "Gagal mengambil data penitip")
	}

	return response.WriteSuccessResponse(e, "", dto.PenitipListResponse{Penitip: resp})
}

func (c *PenitipController) AddPenitip(e echo.Context) error {
	payload := dto.PenitipRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddPenitip").Msg("")
		return response.WriteErrorResponse(e, errs.ErrRequiredFields, "")
	}

	publicID, err := c.service.AddPenitip(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, "Failed to add Penitip")
	}

	return response.WriteCreatedResponse(e, "Penitip added successfully!", dto.PenitipCreatedResponse{ID: publicID})
}

func (c *PenitipController) UpdatePenitip(e echo.Context) error {
	payload := dto.PenitipUpdateRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdatePenitip").Msg("")
		return response.WriteErrorResponse(e, errs.ErrRequiredFields, "")
	}

	err = c.service.UpdatePenitip(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, "Failed to update Penitip")
	}

	return response.WriteSuccessResponse(e, "Penitip updated successfully!", nil)
}

func (c *PenitipController) DeletePenitip(e echo.Context) error {
	payload := dto.DeletePenitipRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "DeletePenitip").Msg("")
		return response.WriteErrorResponse(e, errs.ErrIDPenitipRequired, "")
	}

	err = c.service.DeletePenitip(e.Request().Context(), payload.IDPenitip)
	if err != nil {
		return response.WriteErrorResponse(e, err, "Failed to delete Penitip")
	}

	return response.WriteSuccessResponse(e, "Penitip deleted successfully!", nil)
}
