package response

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/reusemart/consignment-service/pkg/errs"
	"github.com/rs/zerolog"
)

// ErrorResponse carries the same text in message and error so both
// `data.message` and `data.error` readers keep working.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

func WriteSuccessResponse(c echo.Context, message string, data interface{}) error {
	return writeSuccess(c, http.StatusOK, message, data)
}

func WriteCreatedResponse(c echo.Context, message string, data interface{}) error {
	return writeSuccess(c, http.StatusCreated, message, data)
}

// writeSuccess puts the fields of an object payload at the top level next to
// status and message, so {"penitip": [...]} is served as
// {"status":"success","message":"","penitip":[...]}. A payload that does not
// encode to an object is placed under "data".
func writeSuccess(c echo.Context, statusCode int, message string, data interface{}) error {
	resp := map[string]interface{}{
		"status":  "success",
		"message": message,
	}

	if data != nil {
		raw, err := json.Marshal(data)
		if err != nil {
			return err
		}

		fields := map[string]json.RawMessage{}
		if err := json.Unmarshal(raw, &fields); err != nil {
			resp["data"] = json.RawMessage(raw)
		} else {
			for key, value := range fields {
				if _, reserved := resp[key]; reserved {
					continue
				}
				resp[key] = value
			}
		}
	}

	return c.JSON(statusCode, resp)
}

// WriteErrorResponse maps err to its status code. Internal errors are logged
// and replaced by fallback so database details never reach the client.
func WriteErrorResponse(c echo.Context, err error, fallback string) error {
	statusCode := errs.GetErrorStatusCode(err)
	message := err.Error()

	if errs.KindOf(err) == errs.KindInternal {
		zerolog.Ctx(c.Request().Context()).Error().Err(err).
			Str("method", c.Request().Method).
			Str("path", c.Path()).
			Msg("unhandled error")

		message = fallback
		if message == "" {
			message = errs.ErrInternalServer.Message
		}
	}

	resp := ErrorResponse{}
	resp.Status = "error"
	resp.Message = message
	resp.Error = message

	return c.JSON(statusCode, resp)
}
