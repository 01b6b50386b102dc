package controller

import (
	"errors"

	"skillras-be/internal/dto"
	"skillras-be/internal/pkg/serverutils"
	"skillras-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICertificateController interface {
	RegisterRoutes(r fiber.Router)
}

type certificateController struct {
	service service.ICertificateService
}

func NewCertificateController(service service.ICertificateService) ICertificateController {
	return &certificateController{service: service}
}

func (c *certificateController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/certificates", serverutils.JwtMiddleware)
	h.Post("/", c.Issue)
	h.Get("/", c.ListOwn)
}

func (c *certificateController) Issue(ctx *fiber.Ctx) error {
	var req dto.IssueCertificateRequest
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

	res, err := c.service.Issue(ctx.Context(), userId, email, &req)
	if err != nil {
		if errors.Is(err, service.ErrCourseNotCompleted) || errors.Is(err, service.ErrCourseLocked) {
			return ctx.Status(fiber.StatusForbidden).JSON(serverutils.ErrorResponse(403, err.Error()))
		}
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Certificate issued", res))
}

func (c *certificateController) ListOwn(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIDFromCtx(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "invalid session"))
	}

	res, err := c.service.ListOwn(ctx.Context(), userId)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Certificates", res))
}
