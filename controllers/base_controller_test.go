package controllers

import (
	"net/http/httptest"
	"testing"

	"careers-backend/lib/apperrors"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestSendError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{`missing data`, apperrors.New(apperrors.KindMissingData, "name is required"), fiber.StatusBadRequest},
		{`invalid status`, apperrors.New(apperrors.KindInvalidStatus, "unknown status"), fiber.StatusBadRequest},
		{`already applied`, apperrors.New(apperrors.KindAlreadyApplied, "an application for this position already exists"), fiber.StatusConflict},
		{`duplicate location`, apperrors.New(apperrors.KindDuplicateLocation, "location already exists"), fiber.StatusConflict},
		{`not found`, apperrors.New(apperrors.KindNotFound, "note not found"), fiber.StatusNotFound},
		{`tagged write failure`, apperrors.New(apperrors.KindUpdateFailed, "application not found"), fiber.StatusInternalServerError},
		{`untagged`, errors.New("boom"), fiber.StatusInternalServerError},
	}
	controller := BaseAPIController{}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(ctx *fiber.Ctx) error {
				return controller.SendError(ctx, controller.GetLogger(ctx), tc.err, "operation failed")
			})
			resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
			require.NoError(t, err)
			require.Equal(t, tc.status, resp.StatusCode)
		})
	}
}
