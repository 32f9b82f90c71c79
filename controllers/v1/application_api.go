package apiv1

import (
	"io"

	"careers-backend/controllers"
	applicationhandler "careers-backend/lib/application"
	xlsexport "careers-backend/lib/export/xls"
	filestorage "careers-backend/lib/file-storage"
	"careers-backend/middleware"
	apimodels "careers-backend/models/api"
	applicationapimodels "careers-backend/models/api/application"

	"github.com/gofiber/fiber/v2"
)

type applicationApiController struct {
	controllers.BaseAPIController
}

func InitApplicationApiRouters(app *fiber.App) {
	controller := applicationApiController{}
	app.Route("application", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())

		// applicant routes
		router.Post("", controller.create)
		router.Post("upload", controller.upload)
		router.Get("my", controller.my)

		// review routes
		router.Use(middleware.StaffRequired())
		router.Post("list", controller.list)
		router.Get("stats", controller.stats)
		router.Get("stats/export", controller.exportStatsXls)
		router.Post("export", controller.exportXls)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Delete("", controller.delete)
			idRoute.Put("change_status", controller.changeStatus)
			idRoute.Get("file", controller.downloadFile)
			idRoute.Route("note", func(noteRoute fiber.Router) {
				noteRoute.Get("", controller.noteList)
				noteRoute.Post("", controller.noteCreate)
				noteRoute.Delete(":note_id", controller.noteDelete)
			})
		})
	})
}

// @Summary Submit application
// @Tags Application
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	body body	applicationapimodels.ApplicationData	true	"request body"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application [post]
func (c *applicationApiController) create(ctx *fiber.Ctx) error {
	var payload applicationapimodels.ApplicationData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	id, err := applicationhandler.Instance.Create(userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "application submit failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Upload resume or cover letter
// @Tags Application
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   file	formData	file	true	"uploaded file"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/upload [post]
func (c *applicationApiController) upload(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("file is required"))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "file read failed")
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "file read failed")
	}
	userID := middleware.GetUserID(ctx)
	objectKey, err := filestorage.Instance.Upload(ctx.UserContext(), userID, fileHeader.Filename, data)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "file upload failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(objectKey))
}

// @Summary List own applications
// @Tags Application
// @Param   Authorization	header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]applicationapimodels.ApplicationView}
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/my [get]
func (c *applicationApiController) my(ctx *fiber.Ctx) error {
	filter := applicationapimodels.ApplicationFilter{
		UserID: middleware.GetUserID(ctx),
	}
	list, rowCount, err := applicationhandler.Instance.List(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "application list failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary List applications
// @Tags Application
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	body body	applicationapimodels.ApplicationFilter	true	"request filter body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/list [post]
func (c *applicationApiController) list(ctx *fiber.Ctx) error {
	var filter applicationapimodels.ApplicationFilter
	if err := c.BodyParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := applicationhandler.Instance.List(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "application list failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Get application by ID
// @Tags Application
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.ApplicationView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/{id} [get]
func (c *applicationApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := applicationhandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "application fetch failed")
	}
	if resp == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewKindError("not_found", "application not found"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Delete application
// @Tags Application
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/{id} [delete]
func (c *applicationApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	found, err := applicationhandler.Instance.Delete(ctx.UserContext(), id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "application delete failed")
	}
	if !found {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewKindError("not_found", "application not found"))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Change application status
// @Tags Application
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	body body	applicationapimodels.StatusChangeData	true	"request body"
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/{id}/change_status [put]
func (c *applicationApiController) changeStatus(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload applicationapimodels.StatusChangeData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = applicationhandler.Instance.UpdateStatus(id, payload.Status)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "application status change failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Download applicant file
// @Tags Application
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"rec ID"
// @Param   type	query	string	false	"resume (default) or cover_letter"
// @Success 200 {file} binary
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/{id}/file [get]
func (c *applicationApiController) downloadFile(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := applicationhandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "application fetch failed")
	}
	if resp == nil {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewKindError("not_found", "application not found"))
	}
	objectKey := resp.ResumeURL
	if ctx.Query("type") == "cover_letter" {
		objectKey = resp.CoverLetterURL
	}
	if objectKey == "" {
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewKindError("not_found", "file not found"))
	}
	data, err := filestorage.Instance.Get(ctx.UserContext(), objectKey)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "file download failed")
	}
	ctx.Set(fiber.HeaderContentType, fiber.MIMEOctetStream)
	return ctx.Status(fiber.StatusOK).Send(data)
}

// @Summary Application stats
// @Tags Application
// @Param   Authorization	header	string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=applicationapimodels.StatsView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/stats [get]
func (c *applicationApiController) stats(ctx *fiber.Ctx) error {
	resp, err := applicationhandler.Instance.Stats()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "application stats failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Export applications as XLSX
// @Tags Application
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	body body	applicationapimodels.ApplicationFilter	true	"request filter body"
// @Success 200 {file} binary
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/export [post]
func (c *applicationApiController) exportXls(ctx *fiber.Ctx) error {
	var filter applicationapimodels.ApplicationFilter
	if err := c.BodyParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := applicationhandler.Instance.ListRecords(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "application list failed")
	}
	buf, err := xlsexport.Instance.ExportApplicationList(list)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "application export failed")
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="applications.xlsx"`)
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}

// @Summary Export application stats as XLSX
// @Tags Application
// @Param   Authorization	header	string	true	"Authorization token"
// @Success 200 {file} binary
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/stats/export [get]
func (c *applicationApiController) exportStatsXls(ctx *fiber.Ctx) error {
	stats, err := applicationhandler.Instance.Stats()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "application stats failed")
	}
	buf, err := xlsexport.Instance.ExportStats(stats)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "stats export failed")
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="application_stats.xlsx"`)
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}

// @Summary List notes
// @Tags Application
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=[]applicationapimodels.NoteView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/{id}/note [get]
func (c *applicationApiController) noteList(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := applicationhandler.Instance.GetNotes(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "note list failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Add note
// @Tags Application
// @Param   Authorization	header	string	true	"Authorization token"
// @Param	body body	applicationapimodels.NoteData	true	"request body"
// @Param   id	path	string	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=string}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/{id}/note [post]
func (c *applicationApiController) noteCreate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload applicationapimodels.NoteData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	userID := middleware.GetUserID(ctx)
	noteID, err := applicationhandler.Instance.AddNote(id, userID, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "note create failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(noteID))
}

// @Summary Delete note
// @Tags Application
// @Param   Authorization	header	string	true	"Authorization token"
// @Param   id	path	string	true	"rec ID"
// @Param   note_id	path	string	true	"note ID"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/application/{id}/note/{note_id} [delete]
func (c *applicationApiController) noteDelete(ctx *fiber.Ctx) error {
	noteID := ctx.Params("note_id")
	if noteID == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("note id is required"))
	}
	userID := middleware.GetUserID(ctx)
	role := middleware.GetUserRole(ctx)
	err := applicationhandler.Instance.DeleteNote(noteID, userID, role)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "note delete failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
