package apiv1

import (
	"careers-backend/controllers"
	pdfexport "careers-backend/lib/export/pdf"
	positionhandler "careers-backend/lib/position"
	"careers-backend/middleware"
	apimodels "careers-backend/models/api"
	positionapimodels "careers-backend/models/api/position"

	"github.com/gofiber/fiber/v2"
)

type positionApiController struct {
	controllers.BaseAPIController
}

func InitPositionApiRouters(app *fiber.App) {
	controller := positionApiController{}
	app.Route("position", func(router fiber.Router) {
		router.Post("list", controller.list)
		router.Get(":id/pdf", controller.exportPdf)
		router.Get(":id", controller.get)

		router.Use(middleware.AuthorizationRequired())
		router.Use(middleware.StaffRequired())
		router.Post("", controller.create)
		router.Put("bulk_status", controller.bulkStatus)
		router.Delete("bulk_delete", controller.bulkDelete)
		router.Put(":id", controller.update)
		router.Delete(":id", controller.delete)
	})
}

// @Summary Create position
// @Tags Position
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	body body	positionapimodels.PositionData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/position [post]
func (c *positionApiController) create(ctx *fiber.Ctx) error {
	var payload positionapimodels.PositionData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	id, err := positionhandler.Instance.Create(userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "position create failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Update position
// @Tags Position
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	body body	positionapimodels.PositionUpdateData	true	"request body"
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/position/{id} [put]
func (c *positionApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload positionapimodels.PositionUpdateData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = positionhandler.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "position update failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Get position by ID
// @Tags Position
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=positionapimodels.PositionView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/position/{id} [get]
func (c *positionApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := positionhandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "position fetch failed")
	}
	if resp == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewKindError("not_found", "position not found"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Delete position
// @Tags Position
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/position/{id} [delete]
func (c *positionApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	found, err := positionhandler.Instance.Delete(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "position delete failed")
	}
	if !found {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewKindError("not_found", "position not found"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary List positions
// @Tags Position
// @Param	body body	positionapimodels.PositionFilter	true	"request filter body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]positionapimodels.PositionView}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/position/list [post]
func (c *positionApiController) list(ctx *fiber.Ctx) error {
	var filter positionapimodels.PositionFilter
	if err := c.BodyParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := positionhandler.Instance.List(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "position list failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Bulk status update
// @Tags Position
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	body body	positionapimodels.BulkStatusData	true	"request body"
// @Success 200 {object} apimodels.Response{data=int64}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/position/bulk_status [put]
func (c *positionApiController) bulkStatus(ctx *fiber.Ctx) error {
	var payload positionapimodels.BulkStatusData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	affected, ok, err := positionhandler.Instance.BulkUpdateStatus(payload.IDs, payload.Status)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "bulk status update failed")
	}
	if !ok {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewKindError("invalid_status", "no ids supplied or status outside the allow-list"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(affected))
}

// @Summary Bulk delete
// @Tags Position
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	body body	positionapimodels.BulkDeleteData	true	"request body"
// @Success 200 {object} apimodels.Response{data=int64}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/position/bulk_delete [delete]
func (c *positionApiController) bulkDelete(ctx *fiber.Ctx) error {
	var payload positionapimodels.BulkDeleteData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	affected, ok, err := positionhandler.Instance.BulkDelete(payload.IDs)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "bulk delete failed")
	}
	if !ok {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewKindError("missing_data", "no ids supplied"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(affected))
}

// @Summary Export position as PDF
// @Tags Position
// @Param   id	path	string	true	"rec ID"
// @Success 200 {file} binary
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/position/{id}/pdf [get]
func (c *positionApiController) exportPdf(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := positionhandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "position fetch failed")
	}
	if resp == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewKindError("not_found", "position not found"))
	}
	file, err := pdfexport.GeneratePosition(*resp)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "position pdf export failed")
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="position.pdf"`)
	return ctx.Status(fiber.StatusOK).Send(file)
}
