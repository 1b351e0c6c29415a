package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/harshitgawli/Turf-Booking/internal/config"
	dbpkg "github.com/harshitgawli/Turf-Booking/internal/db"
	"github.com/harshitgawli/Turf-Booking/internal/logger"
	"github.com/harshitgawli/Turf-Booking/internal/mailer"
	"github.com/harshitgawli/Turf-Booking/internal/media"
	"github.com/harshitgawli/Turf-Booking/internal/middleware"
	"github.com/harshitgawli/Turf-Booking/internal/payments"
	"github.com/harshitgawli/Turf-Booking/internal/routes"
)

func main() {

	cfg := config.Load()

	log := logger.New()
	defer log.Sync()

	db := dbpkg.NewDB(cfg)
	rdb := dbpkg.NewRedis(cfg)

	sender := mailer.NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom)
	mail := mailer.NewDispatcher(sender, log)

	provider, err := payments.NewMercadoPago(cfg.MPAccessToken, cfg.PaymentCurrency)
	if err != nil {
		log.Fatal("failed to init payment provider", zap.Error(err))
	}

	uploader := media.NewUploader(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	routes.RegisterRoutes(r, routes.Deps{
		DB:       db,
		Cfg:      cfg,
		Log:      log,
		Redis:    rdb,
		Mail:     mail,
		Provider: provider,
		Uploader: uploader,
	})

	log.Info("server starting", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
