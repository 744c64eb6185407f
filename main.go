package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/webirent/webirent-api/checkout"
	"github.com/webirent/webirent-api/config"
	"github.com/webirent/webirent-api/controllers"
	"github.com/webirent/webirent-api/mailer"
	"github.com/webirent/webirent-api/payment"
	"github.com/webirent/webirent-api/routes"
	"github.com/webirent/webirent-api/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := store.Connect(cfg.DatabaseDSN)
	if err != nil {
		log.Fatal(err)
	}
	if err := db.AutoMigrate(); err != nil {
		log.Fatal(err)
	}

	gateway := payment.NewClient(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	notifier := &mailer.OrderNotifier{
		Sender:     mailer.NewClient(cfg.ResendAPIKey),
		AdminEmail: cfg.AdminEmail,
		FromEmail:  cfg.FromEmail,
	}

	checkoutService := &checkout.Service{
		Templates: store.NewTemplateStore(db),
		Orders:    store.NewOrderStore(db),
		Gateway:   gateway,
		Notifier:  notifier,
		Currency:  cfg.Currency,
	}

	authController := &controllers.AuthController{
		Users:     store.NewUserStore(db),
		JWTSecret: cfg.JWTSecret,
	}
	templateController := &controllers.TemplateController{
		Templates: store.NewTemplateStore(db),
		S3Bucket:  cfg.S3Bucket,
	}
	paymentController := &controllers.PaymentController{Checkout: checkoutService}
	orderController := &controllers.OrderController{Checkout: checkoutService}

	server := gin.Default()
	server.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", cfg.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.DefaultRoutes(server)
	routes.AuthRoutes(server, authController, cfg.JWTSecret)
	routes.TemplateRoutes(server, templateController, cfg.JWTSecret)
	routes.PaymentRoutes(server, paymentController, cfg.JWTSecret)
	routes.OrderRoutes(server, orderController, cfg.JWTSecret)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: server,
	}

	go func() {
		log.Println("Server listening on port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Println("Server shutdown error:", err)
	}
	if err := db.Close(); err != nil {
		log.Println("Database close error:", err)
	}
	log.Println("Server stopped.")
}
