package controller

import (
	"skillras-be/internal/dto"
	"skillras-be/internal/pkg/serverutils"
	"skillras-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
}

type authController struct {
	service service.IAuthService
}

func NewAuthController(service service.IAuthService) IAuthController {
	return &authController{service: service}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Post("/register", c.Register)
	h.Post("/verify-email", c.VerifyEmail)
	h.Post("/login", c.Login)
	h.Post("/admin/login", c.LoginAdmin)
	h.Post("/forgot-password", c.ForgotPassword)
	h.Post("/reset-password", c.ResetPassword)
	h.Post("/logout", c.Logout)

	h.Post("/change-password", serverutils.JwtMiddleware, c.ChangePassword)
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid request body"))
	}
	if fields := serverutils.ValidateRequest(req); fields != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(serverutils.ValidationErrorResponse(fields))
	}

	res, err := c.service.Register(ctx.Context(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Registration successful, check your email for the otp code", res))
}

func (c *authController) VerifyEmail(ctx *fiber.Ctx) error {
	var req dto.VerifyEmailRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid request body"))
	}
	if fields := serverutils.ValidateRequest(req); fields != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(serverutils.ValidationErrorResponse(fields))
	}

	if err := c.service.VerifyEmail(ctx.Context(), &req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Email verified", nil))
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid request body"))
	}
	if fields := serverutils.ValidateRequest(req); fields != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(serverutils.ValidationErrorResponse(fields))
	}

	res, err := c.service.Login(ctx.Context(), &req, ctx.IP(), ctx.Get("User-Agent"))
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Login successful", res))
}

func (c *authController) LoginAdmin(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid request body"))
	}
	if fields := serverutils.ValidateRequest(req); fields != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(serverutils.ValidationErrorResponse(fields))
	}

	res, err := c.service.LoginAdmin(ctx.Context(), &req, ctx.IP(), ctx.Get("User-Agent"))
	if err != nil {
		return ctx.Status(fiber.StatusUnauthorized).JSON(serverutils.ErrorResponse(401, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Login successful", res))
}

func (c *authController) ForgotPassword(ctx *fiber.Ctx) error {
	var req dto.ForgotPasswordRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid request body"))
	}
	if fields := serverutils.ValidateRequest(req); fields != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(serverutils.ValidationErrorResponse(fields))
	}

	if err := c.service.ForgotPassword(ctx.Context(), &req); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("If the email exists, a reset link has been sent", nil))
}

func (c *authController) ResetPassword(ctx *fiber.Ctx) error {
	var req dto.ResetPasswordRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid request body"))
	}
	if fields := serverutils.ValidateRequest(req); fields != nil {
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(serverutils.ValidationErrorResponse(fields))
	}

	if err := c.service.ResetPassword(ctx.Context(), &req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Password updated", nil))
}

func (c *authController) ChangePassword(ctx *fiber.Ctx) error {
	var req dto.ChangePasswordRequest
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

	if err := c.service.ChangePassword(ctx.Context(), userId, &req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Password changed", nil))
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	var req dto.LogoutRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "invalid request body"))
	}

	if err := c.service.Logout(ctx.Context(), req.RefreshToken); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse[any]("Logged out", nil))
}
