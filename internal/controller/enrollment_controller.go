package controller

import (
	"skillras-be/internal/dto"
	"skillras-be/internal/pkg/serverutils"
	"skillras-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IEnrollmentController interface {
	RegisterRoutes(r fiber.Router)
}

type enrollmentController struct {
	service service.IEnrollmentService
}

func NewEnrollmentController(service service.IEnrollmentService) IEnrollmentController {
	return &enrollmentController{service: service}
}

func (c *enrollmentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/enrollments")
	h.Post("/", c.Create)
	h.Post("/midtrans/notification", c.Webhook)

	h.Get("/me", serverutils.JwtMiddleware, c.ListOwn)
}

func (c *enrollmentController) Create(ctx *fiber.Ctx) error {
	var req dto.CreateEnrollmentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid request body"))
	}
	if fields := serverutils.ValidateRequest(req); fields != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(serverutils.ValidationErrorResponse(fields))
	}

	res, err := c.service.Create(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Enrollment created", res))
}

func (c *enrollmentController) Webhook(ctx *fiber.Ctx) error {
	var req dto.PaymentWebhookRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid payload"))
	}

	if err := c.service.HandleWebhook(ctx.Context(), &req); err != nil {
		// The gateway retries on non-2xx; signature failures must not retry.
		if err.Error() == "invalid signature" {
			return ctx.Status(fiber.StatusForbidden).JSON(serverutils.ErrorResponse(403, err.Error()))
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("OK", nil))
}

func (c *enrollmentController) ListOwn(ctx *fiber.Ctx) error {
	email := serverutils.EmailFromCtx(ctx)
	if email == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, "invalid session"))
	}

	res, err := c.service.ListByEmail(ctx.Context(), email)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Enrollments", res))
}
