package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/armydb/soldiers-api/internal/api/handler"
	"github.com/armydb/soldiers-api/internal/core/service"
	mongodb "github.com/armydb/soldiers-api/internal/infrastructure/db/mongo"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("soldiers_api"))

	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Dependencies ---
	soldierRepo := mongodb.NewSoldierRepository(db)
	soldierService := service.NewSoldierService(soldierRepo, log)
	soldierHandler := handler.NewSoldierHandler(soldierService)

	// --- Soldier routes ---
	soldiers := e.Group("/soldiers")
	soldiers.POST("", soldierHandler.Create)
	soldiers.GET("", soldierHandler.List)
	soldiers.GET("/:id", soldierHandler.Get)
	soldiers.DELETE("/:id", soldierHandler.Delete)
	soldiers.PATCH("/:id", soldierHandler.Update)
	soldiers.PUT("/:id/limitations", soldierHandler.AppendLimitations)

	// --- Health probes ---
	healthHandler := handler.NewHealthHandler()
	dbHealthHandler := handler.NewDBHealthHandler(mongodb.NewHealthRepository(db))

	e.GET("/health", healthHandler.Liveness)       // liveness  – is the process alive?
	e.GET("/health/db", dbHealthHandler.Readiness) // readiness – is storage reachable?

	return e
}
