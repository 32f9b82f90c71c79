package controllers

import (
	"careers-backend/lib/apperrors"
	apimodels "careers-backend/models/api"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("request body parsing failed")
		return errors.New("unable to read request data")
	}
	return nil
}

func (c *BaseAPIController) GetID(ctx *fiber.Ctx) (string, error) {
	id := ctx.Params("id")
	if id == "" {
		return "", errors.New("record id is required")
	}
	return id, nil
}

func (c *BaseAPIController) GetLogger(ctx *fiber.Ctx) *log.Entry {
	return log.
		WithField("method", ctx.Method()).
		WithField("path", ctx.Path()).
		WithField("request_id", ctx.Get(fiber.HeaderXRequestID))
}

// SendError maps tagged domain errors to client responses and everything
// else to a 500 with the fallback message.
func (c *BaseAPIController) SendError(ctx *fiber.Ctx, logger *log.Entry, err error, fallbackMsg string) error {
	kind := apperrors.KindOf(err)
	switch kind {
	case apperrors.KindMissingData, apperrors.KindInvalidStatus:
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewKindError(string(kind), err.Error()))
	case apperrors.KindAlreadyApplied, apperrors.KindDuplicateLocation:
		return ctx.Status(fiber.StatusConflict).JSON(apimodels.NewKindError(string(kind), err.Error()))
	case apperrors.KindNotFound:
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewKindError(string(kind), err.Error()))
	}
	logger.WithError(err).Error(fallbackMsg)
	if kind != "" {
		return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewKindError(string(kind), fallbackMsg))
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(fallbackMsg))
}
