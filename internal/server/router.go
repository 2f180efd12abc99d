package server

import (
	"context"
	"net/http"
	"time"

	"consultdesk/internal/calendar"
	"consultdesk/internal/config"
	"consultdesk/internal/metrics"
	"consultdesk/internal/middleware"
	"consultdesk/internal/modules/admin"
	"consultdesk/internal/modules/booking"
	"consultdesk/internal/modules/contact"
	"consultdesk/internal/modules/newsletter"
	"consultdesk/internal/modules/review"
	"consultdesk/internal/notification"
	"consultdesk/internal/pkg/response"
	"consultdesk/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type Deps struct {
	Config *config.Config
	Log    *zerolog.Logger
	DB     *gorm.DB

	// Sink receives best-effort notifications, normally a Dispatcher.
	Sink notification.Sink
	// Direct delivers synchronously; used by the admin test email.
	Direct notification.Sink
	// Limiter throttles public submissions. Nil disables rate limiting.
	Limiter middleware.Limiter
	// Now overrides the calendar clock.
	Now func() time.Time
}

func NewRouter(d Deps) *gin.Engine {
	cfg := d.Config
	if d.Sink == nil {
		d.Sink = notification.Noop
	}
	if d.Direct == nil {
		d.Direct = d.Sink
	}

	// repositories
	reservationRepo := repository.NewReservationRepository(d.DB)
	reviewRepo := repository.NewReviewRepository(d.DB)
	subscriberRepo := repository.NewSubscriberRepository(d.DB)
	contactRepo := repository.NewContactRepository(d.DB)

	var calOpts []calendar.Option
	if d.Now != nil {
		calOpts = append(calOpts, calendar.WithClock(d.Now))
	}
	cal := calendar.New(cfg.Booking.Location, cfg.Booking.WindowDays, calOpts...)

	notifier := notification.NewNotifier(d.Sink, cfg.SMTP.ContactEmail, d.Log)
	gate := middleware.NewGate(cfg.Admin.Token)

	// services
	bookingService := booking.NewService(reservationRepo, cal, notifier)
	reviewService := review.NewService(reviewRepo, notifier)
	newsletterService := newsletter.NewService(subscriberRepo, notifier)
	contactService := contact.NewService(contactRepo, notifier)
	adminService := admin.NewService(
		gate,
		admin.Credentials{Token: cfg.Admin.Token, PasswordHash: cfg.Admin.PasswordHash},
		reviewRepo,
		reservationRepo,
		subscriberRepo,
		contactRepo,
		admin.TestMailerFunc(func(ctx context.Context) error { return notifier.SendTest(ctx, d.Direct) }),
		d.Log,
	)

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.ErrorLogger(d.Log),
		middleware.RequestLogger(d.Log),
		middleware.Metrics(),
		middleware.CORS(cfg.CORSOrigins),
	)

	if cfg.MetricsEnabled {
		metrics.Register()
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	api := r.Group("/api")
	api.GET("/health", health(d.DB))

	submit := api.Group("")
	if d.Limiter != nil {
		submit.Use(middleware.RateLimit(d.Limiter, d.Log))
	}
	gated := api.Group("", middleware.AdminOnly(gate, d.Log))

	booking.NewHandler(bookingService).RegisterRoutes(api, submit)
	review.NewHandler(reviewService).RegisterRoutes(api, submit)
	newsletter.NewHandler(newsletterService).RegisterRoutes(submit)
	contact.NewHandler(contactService).RegisterRoutes(submit)
	admin.NewHandler(adminService).RegisterRoutes(submit, gated)

	r.NoRoute(func(c *gin.Context) {
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Route not found")
	})

	return r
}

// health reports liveness and store reachability.
func health(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			_ = c.Error(err)
			response.Error(c, http.StatusServiceUnavailable, "STORE_UNAVAILABLE", "Database unreachable")
			return
		}
		response.Success(c, http.StatusOK, gin.H{"ok": true})
	}
}
