package controller

import (
	"errors"

	"skillras-be/internal/pkg/serverutils"
	"skillras-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ICatalogController interface {
	RegisterRoutes(r fiber.Router)
}

type catalogController struct {
	service service.ICatalogService
}

func NewCatalogController(service service.ICatalogService) ICatalogController {
	return &catalogController{service: service}
}

func (c *catalogController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/catalog")
	h.Get("/packages", c.GetPackages)

	h.Get("/dashboard", serverutils.JwtMiddleware, c.GetDashboard)
	h.Get("/courses/:courseId", serverutils.JwtMiddleware, c.GetCourse)
}

func (c *catalogController) GetPackages(ctx *fiber.Ctx) error {
	res := c.service.GetPackages(ctx.Context())
	return ctx.JSON(serverutils.SuccessResponse("Packages", res))
}

func (c *catalogController) GetDashboard(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIDFromCtx(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "invalid session"))
	}
	email := serverutils.EmailFromCtx(ctx)

	res, err := c.service.GetDashboard(ctx.Context(), userId, email)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Dashboard", res))
}

func (c *catalogController) GetCourse(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserIDFromCtx(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "invalid session"))
	}
	email := serverutils.EmailFromCtx(ctx)

	res, err := c.service.GetCourse(ctx.Context(), userId, email, ctx.Params("courseId"))
	if err != nil {
		if errors.Is(err, service.ErrCourseLocked) {
			return ctx.Status(fiber.StatusForbidden).JSON(serverutils.ErrorResponse(403, err.Error()))
		}
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Course", res))
}
