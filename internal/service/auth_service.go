package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"os"
	"time"

	"skillras-be/internal/dto"
	"skillras-be/internal/entity"
	"skillras-be/internal/pkg/logger"
	"skillras-be/internal/pkg/mailer"
	"skillras-be/internal/repository/specification"
	"skillras-be/internal/repository/unitofwork"

	"skillras-be/pkg/events"
	pkgNats "skillras-be/pkg/nats"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	VerifyEmail(ctx context.Context, req *dto.VerifyEmailRequest) error
	Login(ctx context.Context, req *dto.LoginRequest, ipAddress, userAgent string) (*dto.LoginResponse, error)
	LoginAdmin(ctx context.Context, req *dto.LoginRequest, ipAddress, userAgent string) (*dto.LoginResponse, error)
	ForgotPassword(ctx context.Context, req *dto.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error
	ChangePassword(ctx context.Context, userId uuid.UUID, req *dto.ChangePasswordRequest) error
	Logout(ctx context.Context, refreshToken string) error
}

type authService struct {
	uowFactory     unitofwork.RepositoryFactory
	emailService   mailer.IEmailService
	eventPublisher *pkgNats.Publisher
	sysLogger      logger.ILogger
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, emailService mailer.IEmailService, eventPublisher *pkgNats.Publisher, sysLogger logger.ILogger) IAuthService {
	return &authService{
		uowFactory:     uowFactory,
		emailService:   emailService,
		eventPublisher: eventPublisher,
		sysLogger:      sysLogger,
	}
}

func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n), nil
}

func hashRefreshToken(raw string) string {
	hasher := sha256.New()
	hasher.Write([]byte(raw))
	return hex.EncodeToString(hasher.Sum(nil))
}

func signAccessToken(user *entity.User, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.Id.String(),
		"email":   user.Email,
		"role":    string(user.Role),
		"exp":     time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default_secret"
	}
	return token.SignedString([]byte(secret))
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	existing, _ := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if existing != nil {
		return nil, errors.New("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hashStr := string(hash)

	user := &entity.User{
		Id:            uuid.New(),
		Email:         req.Email,
		FullName:      req.FullName,
		Phone:         req.Phone,
		PasswordHash:  &hashStr,
		Role:          entity.UserRoleLearner,
		Status:        entity.UserStatusPending,
		EmailVerified: false,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	// User + OTP token creation must land together.
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}

	otpCode, err := generateOTP()
	if err != nil {
		return nil, err
	}

	verificationToken := &entity.EmailVerificationToken{
		Id:        uuid.New(),
		UserId:    user.Id,
		Token:     otpCode,
		ExpiresAt: time.Now().Add(15 * time.Minute),
		CreatedAt: time.Now(),
	}

	if err := uow.UserRepository().CreateEmailVerificationToken(ctx, verificationToken); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	go func() {
		if emailErr := s.emailService.SendOTP(user.Email, otpCode); emailErr != nil {
			s.sysLogger.Error("AUTH", "Failed to send registration email", map[string]interface{}{
				"email": user.Email,
				"error": emailErr,
			})
		}
	}()

	if s.eventPublisher != nil {
		event := events.BaseEvent{
			Type: events.TypeUserRegistered,
			Data: map[string]interface{}{
				"user_id": user.Id,
				"email":   user.Email,
			},
			OccurredAt: time.Now(),
		}
		if err := s.eventPublisher.Publish(ctx, event); err != nil {
			s.sysLogger.Warn("AUTH", "Failed to publish user.registered event", map[string]interface{}{
				"user_id": user.Id,
				"error":   err,
			})
		}
	}

	return &dto.RegisterResponse{Id: user.Id, Email: user.Email}, nil
}

func (s *authService) VerifyEmail(ctx context.Context, req *dto.VerifyEmailRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil || user == nil {
		return errors.New("user not found")
	}

	if user.Status == entity.UserStatusActive {
		return nil
	}

	tokenEntity, err := uow.UserRepository().FindEmailVerificationToken(ctx,
		specification.UserOwnedBy{UserID: user.Id},
		specification.ByToken{Token: req.Token},
	)
	if err != nil || tokenEntity == nil {
		return errors.New("invalid otp code")
	}

	if time.Now().After(tokenEntity.ExpiresAt) {
		return errors.New("otp code expired")
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.UserRepository().ActivateUser(ctx, user.Id); err != nil {
		return err
	}

	_ = uow.UserRepository().DeleteEmailVerificationToken(ctx, tokenEntity.Id)

	return uow.Commit()
}

func (s *authService) login(ctx context.Context, req *dto.LoginRequest, ipAddress, userAgent string, adminOnly bool) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil || user == nil {
		return nil, errors.New("invalid credentials")
	}

	if adminOnly && user.Role != entity.UserRoleAdmin {
		return nil, errors.New("access denied: admins only")
	}

	if user.PasswordHash == nil {
		return nil, errors.New("invalid credentials")
	}

	if user.Status == entity.UserStatusPending || !user.EmailVerified {
		return nil, errors.New("email not verified. please check your inbox for the otp code")
	}

	// The only password check: bcrypt against the stored hash.
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, errors.New("invalid credentials")
	}

	if user.Status == entity.UserStatusBlocked {
		return nil, errors.New("user account is blocked")
	}

	signedToken, err := signAccessToken(user, time.Hour*24)
	if err != nil {
		return nil, err
	}

	var rawRefreshToken string

	if req.RememberMe {
		rawRefreshToken = uuid.New().String()

		refreshTokenEntity := &entity.UserRefreshToken{
			Id:        uuid.New(),
			UserId:    user.Id,
			TokenHash: hashRefreshToken(rawRefreshToken),
			ExpiresAt: time.Now().Add(time.Hour * 24 * 30),
			Revoked:   false,
			CreatedAt: time.Now(),
			IpAddress: ipAddress,
			UserAgent: userAgent,
		}

		if err := uow.UserRepository().CreateRefreshToken(ctx, refreshTokenEntity); err != nil {
			return nil, fmt.Errorf("failed to create session: %v", err)
		}
	}

	return &dto.LoginResponse{
		AccessToken:  signedToken,
		RefreshToken: rawRefreshToken,
		User: dto.UserDTO{
			Id:       user.Id,
			Email:    user.Email,
			FullName: user.FullName,
			Phone:    user.Phone,
			Role:     string(user.Role),
		},
	}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest, ipAddress, userAgent string) (*dto.LoginResponse, error) {
	return s.login(ctx, req, ipAddress, userAgent, false)
}

func (s *authService) LoginAdmin(ctx context.Context, req *dto.LoginRequest, ipAddress, userAgent string) (*dto.LoginResponse, error) {
	return s.login(ctx, req, ipAddress, userAgent, true)
}

func (s *authService) ForgotPassword(ctx context.Context, req *dto.ForgotPasswordRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return err
	}
	if user == nil {
		// Do not reveal whether the email exists.
		return nil
	}

	rawToken := uuid.New().String()
	resetToken := &entity.PasswordResetToken{
		Id:        uuid.New(),
		UserId:    user.Id,
		Token:     rawToken,
		ExpiresAt: time.Now().Add(time.Hour),
		Used:      false,
		CreatedAt: time.Now(),
	}

	if err := uow.UserRepository().CreatePasswordResetToken(ctx, resetToken); err != nil {
		return err
	}

	go func() {
		if emailErr := s.emailService.SendResetToken(user.Email, rawToken); emailErr != nil {
			s.sysLogger.Error("AUTH", "Failed to send reset email", map[string]interface{}{
				"email": user.Email,
				"error": emailErr,
			})
		}
	}()

	return nil
}

func (s *authService) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	tokenEntity, err := uow.UserRepository().FindPasswordResetToken(ctx, specification.ByToken{Token: req.Token})
	if err != nil || tokenEntity == nil {
		return errors.New("invalid or expired reset token")
	}
	if tokenEntity.Used || time.Now().After(tokenEntity.ExpiresAt) {
		return errors.New("invalid or expired reset token")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.UserRepository().UpdatePassword(ctx, tokenEntity.UserId, string(hash)); err != nil {
		return err
	}
	if err := uow.UserRepository().MarkTokenUsed(ctx, tokenEntity.Id); err != nil {
		return err
	}

	return uow.Commit()
}

func (s *authService) ChangePassword(ctx context.Context, userId uuid.UUID, req *dto.ChangePasswordRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil || user == nil {
		return errors.New("user not found")
	}
	if user.PasswordHash == nil {
		return errors.New("no password set for this account")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return errors.New("current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return uow.UserRepository().UpdatePassword(ctx, userId, string(hash))
}

func (s *authService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.UserRepository().RevokeRefreshToken(ctx, hashRefreshToken(refreshToken))
}
