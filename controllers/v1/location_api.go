package apiv1

import (
	"careers-backend/controllers"
	locationhandler "careers-backend/lib/location"
	"careers-backend/middleware"
	apimodels "careers-backend/models/api"
	locationapimodels "careers-backend/models/api/location"

	"github.com/gofiber/fiber/v2"
)

type locationApiController struct {
	controllers.BaseAPIController
}

func InitLocationApiRouters(app *fiber.App) {
	controller := locationApiController{}
	app.Route("location", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Get("by_state", controller.listByState)

		router.Use(middleware.AuthorizationRequired())
		router.Use(middleware.StaffRequired())
		router.Post("", controller.create)
		router.Delete(":id", controller.delete)
	})
}

// @Summary List locations
// @Tags Location
// @Success 200 {object} apimodels.Response{data=[]locationapimodels.LocationView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/location [get]
func (c *locationApiController) list(ctx *fiber.Ctx) error {
	list, err := locationhandler.Instance.List()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "location list failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary List locations grouped by state
// @Tags Location
// @Success 200 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/location/by_state [get]
func (c *locationApiController) listByState(ctx *fiber.Ctx) error {
	result, err := locationhandler.Instance.ListByState()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "location list failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(result))
}

// @Summary Add location
// @Tags Location
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	body body	locationapimodels.LocationData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/location [post]
func (c *locationApiController) create(ctx *fiber.Ctx) error {
	var payload locationapimodels.LocationData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := locationhandler.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "location create failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Delete location
// @Tags Location
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/location/{id} [delete]
func (c *locationApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	found, err := locationhandler.Instance.Delete(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "location delete failed")
	}
	if !found {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewKindError("not_found", "location not found"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
