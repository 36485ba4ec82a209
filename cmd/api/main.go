package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/stayvista/stayvista-api/internal/domain"
	"github.com/stayvista/stayvista-api/internal/http/handlers"
	apimw "github.com/stayvista/stayvista-api/internal/http/middleware"
	"github.com/stayvista/stayvista-api/internal/platform/mailer"
	"github.com/stayvista/stayvista-api/internal/platform/payments"
	"github.com/stayvista/stayvista-api/internal/platform/storage"
	"github.com/stayvista/stayvista-api/internal/store"
	"github.com/stayvista/stayvista-api/pkg/config"
	"github.com/stayvista/stayvista-api/pkg/events"
	"github.com/stayvista/stayvista-api/pkg/logger"
	pkgmw "github.com/stayvista/stayvista-api/pkg/middleware"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	client, err := store.Connect(ctx, cfg.Mongo.URI)
	if err != nil {
		logger.Error("mongo connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disconnectCancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			logger.Error("mongo disconnect failed", "error", err)
		}
	}()

	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Warn("redis unreachable, rate limiting disabled", "error", err)
			rdb = nil
		}
	}

	var publisher events.Publisher
	if cfg.NATS.DevMode {
		publisher = events.NewLogPublisher()
	} else {
		bus, err := events.NewNATSEventBus(cfg.NATS.URL)
		if err != nil {
			logger.Warn("nats unreachable, falling back to log publisher", "error", err)
			publisher = events.NewLogPublisher()
		} else {
			publisher = bus
		}
	}
	defer publisher.Close()

	mail := buildMailer(cfg)

	files, err := storage.NewDisk(cfg.Upload.Dir)
	if err != nil {
		logger.Error("upload directory unavailable", "error", err)
		os.Exit(1)
	}

	users := store.NewUsersRepo(client, cfg.Mongo.Database)
	rooms := store.NewRoomsRepo(client, cfg.Mongo.Database)
	bookings := store.NewBookingsRepo(client, cfg.Mongo.Database)

	authHandler := handlers.NewAuthHandler(cfg.Auth.CookieName, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL, cfg.Server.IsProduction())
	requireAuth := apimw.RequireAuth(cfg.Auth.CookieName, cfg.Auth.JWTSecret)
	usersHandler := handlers.NewUsersHandler(users)
	roomsHandler := handlers.NewRoomsHandler(rooms)
	bookingsHandler := handlers.NewBookingsHandler(bookings, publisher, mail)
	statsHandler := handlers.NewStatsHandler(users, rooms, bookings)
	paymentsHandler := handlers.NewPaymentsHandler(payments.NewStripeClient(cfg.Stripe.SecretKey), publisher)
	uploadsHandler := handlers.NewUploadsHandler(files)

	limiter := apimw.NewRateLimiter(rdb, apimw.RateLimitConfig{
		Requests: 30,
		Window:   time.Minute,
	})

	r := chi.NewRouter()
	r.Use(pkgmw.RequestID)
	r.Use(pkgmw.Logging)
	r.Use(pkgmw.Recoverer)
	r.Use(pkgmw.Health)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.Origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.With(limiter.Middleware()).Post("/jwt", authHandler.IssueToken)
	r.Get("/logout", authHandler.Logout)

	r.Get("/users", usersHandler.List)
	r.Put("/user", usersHandler.Upsert)
	r.Patch("/role/{email}", usersHandler.UpdateRole)
	r.Patch("/role-request/{email}", usersHandler.RequestRole)
	r.Get("/role/{email}", usersHandler.GetRole)

	r.Get("/rooms", roomsHandler.List)
	r.Get("/rooms8", roomsHandler.ListFeatured)
	r.Get("/room/{id}", roomsHandler.Get)
	r.Post("/room", roomsHandler.Create)
	r.Delete("/room/{id}", roomsHandler.Delete)
	r.Get("/my-listing/{email}", roomsHandler.ListByHost)
	r.Patch("/room-update/{id}", roomsHandler.UpdateBooked)
	r.Get("/gallery", roomsHandler.Gallery)

	r.Post("/booking", bookingsHandler.Create)
	r.Get("/my-bookings/{email}", bookingsHandler.ListByGuest)
	r.Get("/manage-bookings/{email}", bookingsHandler.ListByHost)
	r.Delete("/booking/{id}", bookingsHandler.Delete)

	// Only the dashboards are gated; everything else trusts the frontend.
	r.With(requireAuth, apimw.RequireRole(users, domain.RoleAdmin)).Get("/admin-stat", statsHandler.Admin)
	r.With(requireAuth, apimw.RequireRole(users, domain.RoleHost)).Get("/host-stat", statsHandler.Host)
	r.With(requireAuth).Get("/guest-stat", statsHandler.Guest)

	r.With(limiter.Middleware()).Post("/create-payment-intent", paymentsHandler.CreateIntent)

	r.Post("/upload", uploadsHandler.Upload)
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.Upload.Dir))))

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server starting", "port", cfg.Server.Port, "env", cfg.Server.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}

func buildMailer(cfg *config.Config) mailer.Service {
	switch {
	case cfg.Email.DevMode:
		return mailer.NewDevMailer()
	case cfg.Email.MailerSendKey != "":
		return mailer.NewMailer(cfg.Email.MailerSendKey, cfg.Email.FromName, cfg.Email.SMTPFrom)
	default:
		return mailer.NewSMTPMailer(cfg.Email.SMTPHost, cfg.Email.SMTPPort, cfg.Email.SMTPFrom, cfg.Email.SMTPUser, cfg.Email.SMTPPass, cfg.Email.SMTPUseTLS)
	}
}
