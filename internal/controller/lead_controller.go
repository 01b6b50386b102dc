package controller

import (
	"skillras-be/internal/dto"
	"skillras-be/internal/pkg/serverutils"
	"skillras-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ILeadController interface {
	RegisterRoutes(r fiber.Router)
}

type leadController struct {
	service service.ILeadService
}

func NewLeadController(service service.ILeadService) ILeadController {
	return &leadController{service: service}
}

func (c *leadController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/leads")
	h.Post("/", c.Capture)

	admin := h.Group("/admin", serverutils.JwtMiddleware, serverutils.RequireAdmin)
	admin.Get("/", c.ListLeads)
	admin.Post("/products", c.CreateProduct)
	admin.Get("/products", c.ListProducts)
	admin.Delete("/products/:id", c.DeleteProduct)
}

func (c *leadController) Capture(ctx *fiber.Ctx) error {
	var req dto.CaptureLeadRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid request body"))
	}
	if fields := serverutils.ValidateRequest(req); fields != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(serverutils.ValidationErrorResponse(fields))
	}

	res, err := c.service.Capture(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Lead captured", res))
}

func (c *leadController) ListLeads(ctx *fiber.Ctx) error {
	res, err := c.service.ListLeads(ctx.Context(), ctx.QueryInt("limit", 50), ctx.QueryInt("offset", 0))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Leads", res))
}

func (c *leadController) CreateProduct(ctx *fiber.Ctx) error {
	var req dto.CreateProductRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid request body"))
	}
	if fields := serverutils.ValidateRequest(req); fields != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(serverutils.ValidationErrorResponse(fields))
	}

	res, err := c.service.CreateProduct(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Product created", res))
}

func (c *leadController) ListProducts(ctx *fiber.Ctx) error {
	res, err := c.service.ListProducts(ctx.Context())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Products", res))
}

func (c *leadController) DeleteProduct(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid id format"))
	}

	if err := c.service.DeleteProduct(ctx.Context(), id); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Product deleted", nil))
}
