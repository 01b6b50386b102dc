package controller

import (
	"skillras-be/internal/pkg/serverutils"
	"skillras-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAffiliateController interface {
	RegisterRoutes(r fiber.Router)
}

type affiliateController struct {
	service service.IAffiliateService
}

func NewAffiliateController(service service.IAffiliateService) IAffiliateController {
	return &affiliateController{service: service}
}

func (c *affiliateController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/affiliates", serverutils.JwtMiddleware)
	h.Get("/earnings", c.GetEarnings)

	admin := h.Group("/admin", serverutils.RequireAdmin)
	admin.Get("/earnings", c.GetEarningsByEmail)
}

// GetEarnings returns the caller's own affiliate ledger.
func (c *affiliateController) GetEarnings(ctx *fiber.Ctx) error {
	email := serverutils.EmailFromCtx(ctx)
	if email == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "invalid session"))
	}

	res, err := c.service.GetEarnings(ctx.Context(), email)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Affiliate earnings", res))
}

// GetEarningsByEmail lets an admin inspect any referrer's ledger.
func (c *affiliateController) GetEarningsByEmail(ctx *fiber.Ctx) error {
	email := ctx.Query("email")
	if email == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "email is required"))
	}

	res, err := c.service.GetEarnings(ctx.Context(), email)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Affiliate earnings", res))
}
