package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	classificationDelivery "classificador-backend/internal/classification/delivery"
	classificationUsecase "classificador-backend/internal/classification/usecase"
	"classificador-backend/pkg/ai"
	"classificador-backend/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

type Handler struct {
	classificationHandler *classificationDelivery.ClassificationHandler
	settingsHandler       *SettingsHandler
	log                   *zap.Logger
	metrics               *metrics.Metrics
	gatherer              prometheus.Gatherer
}

func NewHandler(
	uc classificationUsecase.ClassificationUsecase,
	settings *ai.RuntimeSettings,
	log *zap.Logger,
	m *metrics.Metrics,
	gatherer prometheus.Gatherer,
) *Handler {
	return &Handler{
		classificationHandler: classificationDelivery.NewClassificationHandler(uc, log),
		settingsHandler:       NewSettingsHandler(settings),
		log:                   log,
		metrics:               m,
		gatherer:              gatherer,
	}
}

// Router builds the gin engine with middleware and all routes.
func (h *Handler) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(RequestLogger(h.log, h.metrics))

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.classificationHandler, h.settingsHandler,
		promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))
	return r
}

// Start serves HTTP on addr until ctx is cancelled, then shuts down gracefully.
func (h *Handler) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		h.log.Info("server starting", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	h.log.Info("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
