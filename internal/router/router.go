package router

import (
	"time"

	"github.com/ARUNKUMAR016/suganya-metals/internal/config"
	"github.com/ARUNKUMAR016/suganya-metals/internal/handler"
	"github.com/ARUNKUMAR016/suganya-metals/internal/middleware"
	"github.com/ARUNKUMAR016/suganya-metals/internal/repository"
	"github.com/ARUNKUMAR016/suganya-metals/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	labourRepo := repository.NewLabourRepository(db)
	productRepo := repository.NewProductRepository(db)
	productionRepo := repository.NewProductionRepository(db)
	advanceRepo := repository.NewAdvanceRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(userRepo, cfg)
	roleSvc := service.NewRoleService(roleRepo)
	labourSvc := service.NewLabourService(labourRepo, roleRepo, productionRepo, advanceRepo)
	productSvc := service.NewProductService(productRepo, productionRepo)
	productionSvc := service.NewProductionService(productionRepo, labourRepo)
	salarySvc := service.NewSalaryService(productionRepo, advanceRepo)
	advanceSvc := service.NewAdvanceService(advanceRepo, labourRepo)
	paymentSvc := service.NewPaymentService(paymentRepo, labourRepo)
	dashboardSvc := service.NewDashboardService(productionRepo, labourRepo, roleRepo, productRepo, paymentRepo, rdb)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	rolesH := handler.NewRolesHandler(roleSvc)
	laboursH := handler.NewLaboursHandler(labourSvc)
	productsH := handler.NewProductsHandler(productSvc)
	productionH := handler.NewProductionHandler(productionSvc)
	salaryH := handler.NewSalaryHandler(salarySvc)
	advancesH := handler.NewAdvancesHandler(advanceSvc)
	paymentsH := handler.NewPaymentsHandler(paymentSvc)
	dashboardH := handler.NewDashboardHandler(dashboardSvc)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Protected routes
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		// Master data writes are admin-only; operators can read everything
		// and record day-to-day production, advances and payments.
		v1.GET("/roles", middleware.RequireRole("operator", "admin"), rolesH.List)
		roles := v1.Group("/roles", middleware.RequireRole("admin"))
		{
			roles.POST("", rolesH.Create)
			roles.PUT("/:id", rolesH.Update)
		}

		v1.GET("/labours", middleware.RequireRole("operator", "admin"), laboursH.List)
		labours := v1.Group("/labours", middleware.RequireRole("admin"))
		{
			labours.POST("", laboursH.Create)
			labours.PUT("/:id", laboursH.Update)
			labours.DELETE("/:id", laboursH.Delete)
		}

		v1.GET("/products", middleware.RequireRole("operator", "admin"), productsH.List)
		products := v1.Group("/products", middleware.RequireRole("admin"))
		{
			products.POST("", productsH.Create)
			products.PUT("/:id", productsH.Update)
			products.DELETE("/:id", productsH.Delete)
		}

		prod := v1.Group("/production", middleware.RequireRole("operator", "admin"))
		{
			prod.POST("", productionH.Record)
			prod.GET("", productionH.List)
		}

		v1.GET("/salary", middleware.RequireRole("operator", "admin"), salaryH.Weekly)

		adv := v1.Group("/advances", middleware.RequireRole("operator", "admin"))
		{
			adv.POST("", advancesH.Create)
			adv.GET("", advancesH.List)
		}
		v1.DELETE("/advances/:id", middleware.RequireRole("admin"), advancesH.Delete)

		pay := v1.Group("/payments", middleware.RequireRole("operator", "admin"))
		{
			pay.POST("", paymentsH.Create)
			pay.GET("", paymentsH.List)
		}

		v1.GET("/dashboard/stats", middleware.RequireRole("operator", "admin"), dashboardH.Stats)
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
