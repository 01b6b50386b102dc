package bootstrap

import (
	"context"
	"log"

	"skillras-be/internal/config"
	"skillras-be/internal/controller"
	"skillras-be/internal/pkg/logger"
	"skillras-be/internal/pkg/mailer"
	"skillras-be/internal/repository/unitofwork"
	"skillras-be/internal/service"
	"skillras-be/pkg/progress"

	pkgNats "skillras-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	AuthController        controller.IAuthController
	CatalogController     controller.ICatalogController
	EnrollmentController  controller.IEnrollmentController
	ProgressController    controller.IProgressController
	CertificateController controller.ICertificateController
	ReferralController    controller.IReferralController
	AffiliateController   controller.IAffiliateController
	LeadController        controller.ILeadController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger *logger.ZapLogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pkgNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Redis (progress store). Falls back to the in-memory store when Redis
	// is unreachable so local dev works without infra.
	var store progress.Store
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v. Progress will not survive restarts", err)
		store = progress.NewMemoryStore()
	} else {
		store = progress.NewRedisStore(rdb)
	}
	tracker := progress.NewTracker(store)

	// 3. Services
	queuePublisher := service.NewQueuePublisher(pubSub)
	consumerService := service.NewConsumerService(pubSub, uowFactory, emailService, sysLogger)

	authService := service.NewAuthService(uowFactory, emailService, natsPub, sysLogger)
	catalogService := service.NewCatalogService(uowFactory, tracker)
	enrollmentService := service.NewEnrollmentService(uowFactory, natsPub, queuePublisher, sysLogger)
	progressService := service.NewProgressService(uowFactory, tracker)
	certificateService := service.NewCertificateService(uowFactory, tracker, emailService, natsPub, sysLogger)
	referralService := service.NewReferralService(uowFactory)
	affiliateService := service.NewAffiliateService(uowFactory)
	leadService := service.NewLeadService(uowFactory, queuePublisher, natsPub, sysLogger)

	// 4. Controllers
	return &Container{
		AuthController:        controller.NewAuthController(authService),
		CatalogController:     controller.NewCatalogController(catalogService),
		EnrollmentController:  controller.NewEnrollmentController(enrollmentService),
		ProgressController:    controller.NewProgressController(progressService),
		CertificateController: controller.NewCertificateController(certificateService),
		ReferralController:    controller.NewReferralController(referralService),
		AffiliateController:   controller.NewAffiliateController(affiliateService),
		LeadController:        controller.NewLeadController(leadService),

		ConsumerService: consumerService,
		Logger:          sysLogger,
	}
}
