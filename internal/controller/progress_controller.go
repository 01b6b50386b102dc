package controller

import (
	"errors"

	"skillras-be/internal/dto"
	"skillras-be/internal/pkg/serverutils"
	"skillras-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IProgressController interface {
	RegisterRoutes(r fiber.Router)
}

type progressController struct {
	service service.IProgressService
}

func NewProgressController(service service.IProgressService) IProgressController {
	return &progressController{service: service}
}

func (c *progressController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/progress", serverutils.JwtMiddleware)
	h.Post("/chapters", c.MarkChapter)
	h.Get("/courses/:courseId", c.GetCourseProgress)
	h.Delete("/courses/:courseId", c.ResetCourseProgress)
}

func (c *progressController) MarkChapter(ctx *fiber.Ctx) error {
	var req dto.MarkChapterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid request body"))
	}
	if fields := serverutils.ValidateRequest(req); fields != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(serverutils.ValidationErrorResponse(fields))
	}

	userId, err := serverutils.UserIDFromCtx(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "invalid session"))
	}
	email := serverutils.EmailFromCtx(ctx)

	res, err := c.service.MarkChapter(ctx.Context(), userId, email, &req)
	if err != nil {
		if errors.Is(err, service.ErrCourseLocked) {
			return ctx.Status(fiber.StatusForbidden).JSON(serverutils.ErrorResponse(403, err.Error()))
		}
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Progress updated", res))
}

func (c *progressController) GetCourseProgress(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIDFromCtx(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "invalid session"))
	}

	res, err := c.service.GetCourseProgress(ctx.Context(), userId, ctx.Params("courseId"))
	if err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Course progress", res))
}

func (c *progressController) ResetCourseProgress(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIDFromCtx(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "invalid session"))
	}

	if err := c.service.ResetCourseProgress(ctx.Context(), userId, ctx.Params("courseId")); err != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Progress reset", nil))
}
