package controller

import (
	"skillras-be/internal/dto"
	"skillras-be/internal/pkg/serverutils"
	"skillras-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IReferralController interface {
	RegisterRoutes(r fiber.Router)
}

type referralController struct {
	service service.IReferralService
}

func NewReferralController(service service.IReferralService) IReferralController {
	return &referralController{service: service}
}

func (c *referralController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/referrals")
	h.Post("/verify", c.Verify)

	admin := h.Group("/admin", serverutils.JwtMiddleware, serverutils.RequireAdmin)
	admin.Post("/codes", c.CreateCode)
	admin.Get("/codes", c.ListCodes)
	admin.Patch("/codes/:id", c.UpdateCode)
	admin.Delete("/codes/:id", c.DeactivateCode)
}

func (c *referralController) Verify(ctx *fiber.Ctx) error {
	var req dto.VerifyReferralRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid request body"))
	}
	if fields := serverutils.ValidateRequest(req); fields != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(serverutils.ValidationErrorResponse(fields))
	}

	res, err := c.service.Verify(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Referral verification", res))
}

func (c *referralController) CreateCode(ctx *fiber.Ctx) error {
	var req dto.CreateReferralCodeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid request body"))
	}
	if fields := serverutils.ValidateRequest(req); fields != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(serverutils.ValidationErrorResponse(fields))
	}

	res, err := c.service.CreateCode(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Code created", res))
}

func (c *referralController) ListCodes(ctx *fiber.Ctx) error {
	res, err := c.service.ListCodes(ctx.Context(), ctx.Query("type"))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Codes", res))
}

func (c *referralController) UpdateCode(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid id format"))
	}

	var req dto.UpdateReferralCodeRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid request body"))
	}
	if fields := serverutils.ValidateRequest(req); fields != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(serverutils.ValidationErrorResponse(fields))
	}

	res, err := c.service.UpdateCode(ctx.Context(), id, &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Code updated", res))
}

func (c *referralController) DeactivateCode(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid id format"))
	}

	if err := c.service.DeactivateCode(ctx.Context(), id); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Code deactivated", nil))
}
