package routes

import (
	"fmt"
	"net/http"

	"equipment-management-backend/internal/api/handlers"
	"equipment-management-backend/internal/api/middleware"
	"equipment-management-backend/internal/auth"
	"equipment-management-backend/internal/config"
	"equipment-management-backend/internal/logger"
	"equipment-management-backend/internal/repository"
	"equipment-management-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Store bundles the storage the router is built on. DB is nil for the
// in-memory driver.
type Store struct {
	DB           *gorm.DB
	Repositories *repository.Repositories
	UnitOfWork   repository.UnitOfWork
}

// NewGormStore builds a Store over a database connection
func NewGormStore(db *gorm.DB) Store {
	return Store{
		DB:           db,
		Repositories: repository.NewRepositories(db),
		UnitOfWork:   repository.NewGormUnitOfWork(db),
	}
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(store Store, cfg *config.Config) (*gin.Engine, error) {
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))
	if cfg.RateLimitRPS > 0 {
		router.Use(middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst).Middleware())
	}

	validator := validator.New()
	repos := store.Repositories

	// Initialize services
	assignmentService := service.NewAssignmentService(store.UnitOfWork, validator, cfg.DefaultAssignNote)
	returnService := service.NewReturnService(store.UnitOfWork, validator)
	equipmentService := service.NewEquipmentService(repos.Equipment, repos.EquipmentTypes, store.UnitOfWork, validator)
	employeeService := service.NewEmployeeService(repos.Employees, repos.Departments, repos.Equipment, repos.History, validator)
	departmentService := service.NewDepartmentService(repos.Departments, repos.Employees, validator)
	equipmentTypeService := service.NewEquipmentTypeService(repos.EquipmentTypes, repos.Equipment, validator)
	historyService := service.NewHistoryService(repos.History, repos.Equipment, repos.Employees, store.UnitOfWork, validator)

	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize auth service: %w", err)
	}
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(store.DB)
	equipmentHandler := handlers.NewEquipmentHandler(equipmentService)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentService, returnService)
	historyHandler := handlers.NewHistoryHandler(historyService)
	employeeHandler := handlers.NewEmployeeHandler(employeeService)
	departmentHandler := handlers.NewDepartmentHandler(departmentService)
	equipmentTypeHandler := handlers.NewEquipmentTypeHandler(equipmentTypeService)

	// Health check routes
	registerHealthRoutes(router, healthHandler)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authGroup := router.Group("/api/v1/auth")
	{
		if !cfg.IsProduction() {
			authGroup.POST("/token", authHandler.IssueToken)
		}
		authGroup.GET("/validate", authMiddleware.RequireAuth(), authHandler.Validate)
	}

	v1 := router.Group("/api/v1")
	if cfg.AuthEnabled {
		v1.Use(authMiddleware.RequireAuth())
	} else {
		logger.New().Warn("authentication disabled, write operations are recorded as anonymous")
		v1.Use(authMiddleware.OptionalAuth())
	}

	{
		// Equipment routes
		equipment := v1.Group("/equipment")
		{
			equipment.GET("", equipmentHandler.ListEquipment)
			equipment.POST("", equipmentHandler.CreateEquipment)
			equipment.POST("/warranty/refresh", equipmentHandler.RefreshWarranty)
			equipment.GET("/:id", equipmentHandler.GetEquipment)
			equipment.PUT("/:id", equipmentHandler.UpdateEquipment)
			equipment.DELETE("/:id", equipmentHandler.DeleteEquipment)
			equipment.PUT("/:id/status", equipmentHandler.ChangeStatus)
			equipment.POST("/:id/assign", assignmentHandler.AssignEquipment)
			equipment.POST("/:id/return", assignmentHandler.ReturnEquipment)
			equipment.GET("/:id/history", historyHandler.GetEquipmentHistory)
		}

		// Employee routes
		employees := v1.Group("/employees")
		{
			employees.GET("", employeeHandler.ListEmployees)
			employees.POST("", employeeHandler.CreateEmployee)
			employees.GET("/:id", employeeHandler.GetEmployee)
			employees.PUT("/:id", employeeHandler.UpdateEmployee)
			employees.DELETE("/:id", employeeHandler.DeleteEmployee)
			employees.GET("/:id/equipment", employeeHandler.GetEmployeeEquipment)
			employees.GET("/:id/history", historyHandler.GetEmployeeHistory)
		}

		// Department routes
		departments := v1.Group("/departments")
		{
			departments.GET("", departmentHandler.ListDepartments)
			departments.POST("", departmentHandler.CreateDepartment)
			departments.GET("/:id", departmentHandler.GetDepartment)
			departments.PUT("/:id", departmentHandler.UpdateDepartment)
			departments.DELETE("/:id", departmentHandler.DeleteDepartment)
		}

		// Equipment type routes
		equipmentTypes := v1.Group("/equipment-types")
		{
			equipmentTypes.GET("", equipmentTypeHandler.ListEquipmentTypes)
			equipmentTypes.POST("", equipmentTypeHandler.CreateEquipmentType)
			equipmentTypes.GET("/:id", equipmentTypeHandler.GetEquipmentType)
			equipmentTypes.PUT("/:id", equipmentTypeHandler.UpdateEquipmentType)
			equipmentTypes.DELETE("/:id", equipmentTypeHandler.DeleteEquipmentType)
		}

		// Assignment history routes
		history := v1.Group("/history")
		{
			history.GET("/:id", historyHandler.GetEntry)
			history.POST("/:id/notes", historyHandler.AppendNote)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router, nil
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	registerHealthRoutes(router, handlers.NewHealthHandler(db))
	return router
}

func registerHealthRoutes(router *gin.Engine, h *handlers.HealthHandler) {
	router.GET("/health", h.Health)
	router.GET("/health/ready", h.Ready)
	router.GET("/health/live", h.Live)
}
