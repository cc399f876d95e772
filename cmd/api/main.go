package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/tu-usuario/farmacia-suite/internal/application/analytics"
	"github.com/tu-usuario/farmacia-suite/internal/application/auth"
	appchat "github.com/tu-usuario/farmacia-suite/internal/application/chat"
	appcompliance "github.com/tu-usuario/farmacia-suite/internal/application/compliance"
	apppayroll "github.com/tu-usuario/farmacia-suite/internal/application/payroll"
	apppos "github.com/tu-usuario/farmacia-suite/internal/application/pos"
	apppromo "github.com/tu-usuario/farmacia-suite/internal/application/promo"
	appstock "github.com/tu-usuario/farmacia-suite/internal/application/stock"
	"github.com/tu-usuario/farmacia-suite/internal/application/usecase"
	"github.com/tu-usuario/farmacia-suite/internal/infrastructure/cache"
	infracompliance "github.com/tu-usuario/farmacia-suite/internal/infrastructure/compliance"
	"github.com/tu-usuario/farmacia-suite/internal/infrastructure/email"
	infrapdf "github.com/tu-usuario/farmacia-suite/internal/infrastructure/pdf"
	"github.com/tu-usuario/farmacia-suite/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/farmacia-suite/internal/interfaces/http"
	"github.com/tu-usuario/farmacia-suite/internal/interfaces/ws"
	"github.com/tu-usuario/farmacia-suite/pkg/config"
	"github.com/tu-usuario/farmacia-suite/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	pharmacyRepo := postgres.NewPharmacyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	lotRepo := postgres.NewLotRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	settingsRepo := postgres.NewAlertSettingsRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	sessionRepo := postgres.NewCashSessionRepository(pool)
	promoRepo := postgres.NewPromotionRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	payslipRepo := postgres.NewPayslipRepository(pool)
	messageRepo := postgres.NewMessageRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Correo de alertas: Host vacío = las alertas solo se persisten.
	var mailer appstock.AlertMailer
	if cfg.SMTP.Host != "" {
		mailer = email.NewMailer(cfg.SMTP)
	}

	// Caché Redis del dashboard: URL vacía = sin caché.
	var dashCache appanalytics.Cache
	if cfg.Redis.URL != "" {
		redisCache, err := cache.NewRedisCache(ctx, cfg.Redis.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer redisCache.Close()
		dashCache = redisCache
	}

	authUC := auth.NewAuthUseCase(userRepo, pharmacyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	pharmacyUC := usecase.NewPharmacyUseCase(pharmacyRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	lotUC := usecase.NewLotUseCase(lotRepo, productRepo)
	settingsUC := usecase.NewAlertSettingsUseCase(settingsRepo)
	notificationUC := usecase.NewNotificationUseCase(notificationRepo)
	moduleSvc := usecase.NewModuleService(pharmacyRepo)

	overviewUC := appstock.NewOverviewUseCase(stockRepo, settingsRepo)
	suggestionUC := appstock.NewSuggestionUseCase(stockRepo, settingsRepo)
	alertUC := appstock.NewAlertUseCase(stockRepo, settingsRepo, notificationRepo, mailer)

	createSaleUC := apppos.NewCreateSaleUseCase(txRunner, sessionRepo, promoRepo)
	saleUC := apppos.NewSaleUseCase(saleRepo)
	receiptUC := apppos.NewReceiptUseCase(saleRepo, pharmacyRepo, infrapdf.NewReceiptRenderer())
	cashSessionUC := apppos.NewCashSessionUseCase(sessionRepo)
	promoUC := apppromo.NewUseCase(promoRepo, productRepo)

	payrollUC := apppayroll.NewUseCase(employeeRepo, payslipRepo)
	payslipPDFUC := apppayroll.NewPDFUseCase(payslipRepo, employeeRepo, pharmacyRepo, infrapdf.NewPayslipRenderer())

	chatHub := ws.NewHub()
	chatUC := appchat.NewUseCase(messageRepo, userRepo, chatHub)

	dashboardUC := appanalytics.NewDashboardUseCase(
		analyticsRepo, overviewUC, dashCache,
		time.Duration(cfg.Redis.TTL)*time.Second,
	)
	reportUC := appcompliance.NewReportUseCase(
		pharmacyRepo, analyticsRepo, overviewUC, infracompliance.NewXMLBuilder(),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Farmacia Suite API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		PharmacyUC:     pharmacyUC,
		ProductUC:      productUC,
		UserUC:         userUC,
		LotUC:          lotUC,
		SettingsUC:     settingsUC,
		NotificationUC: notificationUC,
		ModuleService:  moduleSvc,
		OverviewUC:     overviewUC,
		SuggestionUC:   suggestionUC,
		AlertUC:        alertUC,
		CreateSaleUC:   createSaleUC,
		SaleUC:         saleUC,
		ReceiptUC:      receiptUC,
		CashSessionUC:  cashSessionUC,
		PromoUC:        promoUC,
		PayrollUC:      payrollUC,
		PayslipPDFUC:   payslipPDFUC,
		ChatUC:         chatUC,
		ChatHub:        chatHub,
		DashboardUC:    dashboardUC,
		ReportUC:       reportUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
