package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/harshitgawli/Turf-Booking/internal/audit"
	"github.com/harshitgawli/Turf-Booking/internal/config"
	"github.com/harshitgawli/Turf-Booking/internal/handlers"
	infraRepo "github.com/harshitgawli/Turf-Booking/internal/infra/repository"
	"github.com/harshitgawli/Turf-Booking/internal/mailer"
	"github.com/harshitgawli/Turf-Booking/internal/media"
	"github.com/harshitgawli/Turf-Booking/internal/middleware"
	"github.com/harshitgawli/Turf-Booking/internal/otp"
	"github.com/harshitgawli/Turf-Booking/internal/payments"
	ucBooking "github.com/harshitgawli/Turf-Booking/internal/usecase/booking"
	ucPayment "github.com/harshitgawli/Turf-Booking/internal/usecase/payment"
)

type Deps struct {
	DB       *gorm.DB
	Cfg      *config.Config
	Log      *zap.Logger
	Redis    *redis.Client
	Mail     mailer.Notifier
	Provider payments.Provider
	Uploader *media.Uploader
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	slotRepo := infraRepo.NewSlotGormRepository(d.DB)

	auditLogger := audit.New(d.DB)
	auditDispatcher := audit.NewDispatcher(auditLogger, d.Log)

	otpStore := otp.NewStore(d.Redis, time.Duration(d.Cfg.OTPTTLMinutes)*time.Minute)

	authLimiter := middleware.NewRateLimiter(5, 5)

	// ======================================================
	// USE CASES: BOOKING
	// ======================================================
	generateDayUC := ucBooking.NewGenerateDaySlots(slotRepo, auditDispatcher)
	reserveUC := ucBooking.NewReserveSlot(slotRepo, auditDispatcher)
	confirmUC := ucBooking.NewConfirmBooking(slotRepo, d.Mail, auditDispatcher)
	cancelUC := ucBooking.NewCancelBooking(slotRepo, auditDispatcher)
	offlineUC := ucBooking.NewOfflineBook(slotRepo, auditDispatcher)
	listSlotsUC := ucBooking.NewListSlots(slotRepo)
	myBookingsUC := ucBooking.NewMyBookings(slotRepo)
	listBookingsUC := ucBooking.NewListBookings(slotRepo)

	// ======================================================
	// USE CASES: PAYMENTS
	// ======================================================
	createOrderUC := ucPayment.NewCreateOrder(slotRepo, d.Provider)
	verifyUC := ucPayment.NewVerifyAndConfirm(
		slotRepo,
		[]byte(d.Cfg.PaymentSecret),
		d.Mail,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(d.DB, d.Cfg, otpStore, d.Mail)

	slotHandler := handlers.NewSlotHandler(
		generateDayUC,
		reserveUC,
		confirmUC,
		cancelUC,
		offlineUC,
		listSlotsUC,
		myBookingsUC,
		listBookingsUC,
	)

	paymentHandler := handlers.NewPaymentHandler(createOrderUC, verifyUC)
	mediaHandler := handlers.NewMediaHandler(d.DB, d.Uploader)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.DB)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH (rate limited)
		// ------------------------------
		auth := api.Group("/auth")
		auth.Use(authLimiter.Limit())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/send-otp", authHandler.SendOTP)
			auth.POST("/verify-otp", authHandler.VerifyOTP)
		}

		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/slots", slotHandler.List)
		api.GET("/photos", mediaHandler.List)

		// ------------------------------
		// USER
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(d.Cfg))
		{
			secured.POST("/slots/book/:id", slotHandler.Reserve)
			secured.GET("/slots/my-bookings", slotHandler.MyBookings)

			secured.POST("/payments/order", paymentHandler.CreateOrder)
			secured.POST("/payments/verify", paymentHandler.Verify)

			// ------------------------------
			// ADMIN
			// ------------------------------
			admin := secured.Group("/")
			admin.Use(middleware.RequireAdmin())
			{
				admin.POST("/slots/generate", slotHandler.GenerateDay)
				admin.POST("/slots/confirm/:id", slotHandler.Confirm)
				admin.POST("/slots/cancel/:id", slotHandler.Cancel)
				admin.POST("/slots/offline/:id", slotHandler.OfflineBook)

				admin.GET("/slots/bookings", slotHandler.AllBookings)
				admin.GET("/slots/pending", slotHandler.PendingBookings)

				admin.POST("/media/photos", mediaHandler.Upload)
				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
