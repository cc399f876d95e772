package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/farmacia-suite/internal/application/analytics"
	"github.com/tu-usuario/farmacia-suite/internal/application/auth"
	"github.com/tu-usuario/farmacia-suite/internal/application/chat"
	"github.com/tu-usuario/farmacia-suite/internal/application/compliance"
	"github.com/tu-usuario/farmacia-suite/internal/application/payroll"
	"github.com/tu-usuario/farmacia-suite/internal/application/pos"
	"github.com/tu-usuario/farmacia-suite/internal/application/promo"
	appstock "github.com/tu-usuario/farmacia-suite/internal/application/stock"
	"github.com/tu-usuario/farmacia-suite/internal/application/usecase"
	"github.com/tu-usuario/farmacia-suite/internal/domain/entity"
	"github.com/tu-usuario/farmacia-suite/internal/interfaces/ws"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	PharmacyUC     *usecase.PharmacyUseCase
	ProductUC      *usecase.ProductUseCase
	UserUC         *usecase.UserUseCase
	LotUC          *usecase.LotUseCase
	SettingsUC     *usecase.AlertSettingsUseCase
	NotificationUC *usecase.NotificationUseCase
	ModuleService  *usecase.ModuleService

	OverviewUC   *appstock.OverviewUseCase
	SuggestionUC *appstock.SuggestionUseCase
	AlertUC      *appstock.AlertUseCase

	CreateSaleUC  *pos.CreateSaleUseCase
	SaleUC        *pos.SaleUseCase
	ReceiptUC     *pos.ReceiptUseCase
	CashSessionUC *pos.CashSessionUseCase
	PromoUC       *promo.UseCase

	PayrollUC    *payroll.UseCase
	PayslipPDFUC *payroll.PDFUseCase

	ChatUC      *chat.UseCase
	ChatHub     *ws.Hub
	DashboardUC *analytics.DashboardUseCase
	ReportUC    *compliance.ReportUseCase

	JWTSecret string
}

// Router registra las rutas de la API. Cada módulo SaaS queda detrás de su
// guard RequireModule; auth y farmacias son la superficie pública/base.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Pharmacies: alta y listado públicos (onboarding), módulos solo admin.
	pharmacies := api.Group("/pharmacies")
	pharmacyHandler := NewPharmacyHandler(deps.PharmacyUC)
	pharmacies.Post("/", pharmacyHandler.Create)
	pharmacies.Get("/", pharmacyHandler.List)
	pharmacies.Get("/:id", pharmacyHandler.GetByID)
	pharmacies.Post("/modules",
		AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin),
		pharmacyHandler.EnableModule)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Users
	users := protected.Group("/users")
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/me", userHandler.Me)
	users.Get("/", RequireRole(entity.RoleAdmin), userHandler.List)

	// Products (módulo inventario)
	products := protected.Group("/products", RequireModule(entity.ModuleInventory, deps.ModuleService))
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Deactivate)

	// Inventory: lotes (módulo inventario)
	inventory := protected.Group("/inventory", RequireModule(entity.ModuleInventory, deps.ModuleService))
	lotHandler := NewLotHandler(deps.LotUC)
	inventory.Post("/lots", lotHandler.Receive)
	inventory.Get("/lots/expiring", lotHandler.ExpiringSoon)
	inventory.Patch("/lots/:id", lotHandler.Adjust)
	inventory.Get("/products/:productId/lots", lotHandler.ListByProduct)

	// Stock: panorama, sugerencias, alertas (módulo inventario)
	stockGroup := protected.Group("/stock", RequireModule(entity.ModuleInventory, deps.ModuleService))
	stockHandler := NewStockHandler(deps.OverviewUC, deps.SuggestionUC, deps.AlertUC, deps.SettingsUC, deps.NotificationUC)
	stockGroup.Get("/overview", stockHandler.Overview)
	stockGroup.Get("/suggestions", stockHandler.Suggestions)
	stockGroup.Post("/alerts/run", stockHandler.RunAlerts)
	stockGroup.Get("/alert-settings", stockHandler.GetAlertSettings)
	stockGroup.Put("/alert-settings", stockHandler.UpdateAlertSettings)
	stockGroup.Get("/notifications", stockHandler.ListNotifications)
	stockGroup.Post("/notifications/:id/read", stockHandler.MarkNotificationRead)

	// POS: ventas, sesiones de caja, promociones (módulo pos)
	posGroup := protected.Group("/pos", RequireModule(entity.ModulePOS, deps.ModuleService))
	saleHandler := NewSaleHandler(deps.CreateSaleUC, deps.SaleUC, deps.ReceiptUC)
	posGroup.Post("/sales", saleHandler.Create)
	posGroup.Get("/sales/:id", saleHandler.GetByID)
	posGroup.Get("/sales/:id/receipt", saleHandler.Receipt)
	posGroup.Post("/sales/:id/void", RequireRole(entity.RoleAdmin, entity.RoleFarmaceutico), saleHandler.Void)

	sessionHandler := NewCashSessionHandler(deps.CashSessionUC)
	posGroup.Post("/sessions", sessionHandler.Open)
	posGroup.Get("/sessions/current", sessionHandler.Current)
	posGroup.Post("/sessions/:id/close", sessionHandler.Close)
	posGroup.Get("/sessions/:sessionId/sales", saleHandler.ListBySession)

	promoHandler := NewPromoHandler(deps.PromoUC)
	posGroup.Post("/promotions", RequireRole(entity.RoleAdmin), promoHandler.Create)
	posGroup.Get("/promotions", promoHandler.List)
	posGroup.Delete("/promotions/:id", RequireRole(entity.RoleAdmin), promoHandler.Deactivate)

	// Payroll (módulo nomina, solo admin)
	payrollGroup := protected.Group("/payroll",
		RequireModule(entity.ModulePayroll, deps.ModuleService),
		RequireRole(entity.RoleAdmin))
	payrollHandler := NewPayrollHandler(deps.PayrollUC, deps.PayslipPDFUC)
	payrollGroup.Post("/employees", payrollHandler.CreateEmployee)
	payrollGroup.Get("/employees", payrollHandler.ListEmployees)
	payrollGroup.Post("/payslips", payrollHandler.GeneratePayslip)
	payrollGroup.Get("/payslips", payrollHandler.ListPayslips)
	payrollGroup.Get("/payslips/:id/pdf", payrollHandler.PayslipPDF)

	// Chat (módulo chat)
	chatGroup := protected.Group("/chat", RequireModule(entity.ModuleChat, deps.ModuleService))
	chatHandler := NewChatHandler(deps.ChatUC)
	chatGroup.Post("/channels", chatHandler.CreateChannel)
	chatGroup.Get("/channels", chatHandler.ListChannels)
	chatGroup.Post("/channels/:channelId/messages", chatHandler.PostMessage)
	chatGroup.Get("/channels/:channelId/messages", chatHandler.History)

	// Websocket de chat: token por query param, fuera del grupo /api.
	if deps.ChatHub != nil {
		app.Get("/ws/chat/:channelId", ws.Upgrade(deps.JWTSecret), deps.ChatHub.Handler())
	}

	// Dashboard y reportes (módulo reportes)
	reportsGuard := RequireModule(entity.ModuleReports, deps.ModuleService)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard/summary", reportsGuard, dashboardHandler.Summary)

	complianceHandler := NewComplianceHandler(deps.ReportUC)
	protected.Get("/reports/monthly", reportsGuard, RequireRole(entity.RoleAdmin), complianceHandler.MonthlyReport)
}
