package main

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/random"

	"github.com/agasthyasuperfoods/nutromilk-indent/internal/caching"
	"github.com/agasthyasuperfoods/nutromilk-indent/internal/config"
	"github.com/agasthyasuperfoods/nutromilk-indent/internal/handlers"
	"github.com/agasthyasuperfoods/nutromilk-indent/internal/jobs"
	"github.com/agasthyasuperfoods/nutromilk-indent/internal/jobs/background"
	"github.com/agasthyasuperfoods/nutromilk-indent/internal/middleware"
	"github.com/agasthyasuperfoods/nutromilk-indent/internal/reports"
	"github.com/agasthyasuperfoods/nutromilk-indent/internal/repositories"
	"github.com/agasthyasuperfoods/nutromilk-indent/internal/services"
	"github.com/agasthyasuperfoods/nutromilk-indent/internal/storage"
	"github.com/agasthyasuperfoods/nutromilk-indent/pkg/database"
)

const version = "1.0.0"

func main() {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	pool, err := database.NewPool(databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	// Optional TOML config for storage/report/queue settings; env vars
	// override where both are set.
	cfg := config.Default()
	if cfgPath := os.Getenv("CONFIG_FILE"); cfgPath != "" {
		cfg, err = config.LoadAppConfig(cfgPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = random.String(32)
		log.Printf("WARNING: JWT_SECRET not set, using a generated secret; sessions will not survive restarts")
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = cfg.Queuing.RedisAddr
	}
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}
	redisPassword := os.Getenv("REDIS_PASSWORD")
	if redisPassword == "" {
		redisPassword = cfg.Queuing.RedisPassword
	}
	redisDB := cfg.Queuing.RedisDB
	if redisDBStr := os.Getenv("REDIS_DB"); redisDBStr != "" {
		if db, err := strconv.Atoi(redisDBStr); err == nil {
			redisDB = db
		}
	}

	minioEndpoint := os.Getenv("MINIO_ENDPOINT")
	if minioEndpoint == "" {
		minioEndpoint = cfg.Storage.Endpoint
	}
	if minioEndpoint == "" {
		minioEndpoint = "localhost:9000"
	}
	minioAccessKey := os.Getenv("MINIO_ACCESS_KEY")
	if minioAccessKey == "" {
		minioAccessKey = cfg.Storage.AccessKeyID
	}
	minioSecretKey := os.Getenv("MINIO_SECRET_KEY")
	if minioSecretKey == "" {
		minioSecretKey = cfg.Storage.SecretAccessKey
	}
	useSSL := cfg.Storage.UseSSL || os.Getenv("MINIO_USE_SSL") == "true"

	// Storage for exported report PDFs
	presignCache := storage.NewPresignCache()
	storageSvc, err := storage.NewMinioService(minioEndpoint, minioAccessKey, minioSecretKey, cfg.Storage.Bucket, useSSL, presignCache)
	if err != nil {
		log.Fatalf("Failed to initialize MinIO service: %v", err)
	}

	// Cache and indent buffer
	cacheSvc := caching.NewRedisCacheService(redisAddr, redisPassword, redisDB)

	// Repositories
	userRepo := repositories.NewUserRepo(pool)
	customerRepo := repositories.NewCustomerRepo(pool)
	overrideRepo := repositories.NewOverrideRepo(pool)
	indentRepo := repositories.NewIndentRepo(pool)
	partnerRepo := repositories.NewDeliveryPartnerRepo(pool)
	routeRepo := repositories.NewRouteRepo(pool)
	attendanceRepo := repositories.NewAttendanceRepo(pool)

	// Services
	authSvc := services.NewAuthService(jwtSecret, cacheSvc)
	customerSvc := services.NewCustomerService(customerRepo, overrideRepo, cacheSvc)
	partnerSvc := services.NewDeliveryPartnerService(partnerRepo, routeRepo)
	routeSvc := services.NewRouteService(routeRepo)
	attendanceSvc := services.NewAttendanceService(attendanceRepo, userRepo)

	indentStore := services.NewTieredIndentStore(
		services.NewRemoteIndentStore(indentRepo),
		services.NewLocalIndentStore(cacheSvc),
	)
	indentSvc := services.NewIndentService(indentStore, indentRepo)

	reportSvc := reports.NewService(indentRepo)
	exporter := reports.NewExporter(reportSvc, storageSvc, cfg.Company.Name)

	// Handlers
	authHandlers := handlers.NewAuthHandlers(authSvc, userRepo)
	indentHandlers := handlers.NewIndentHandlers(indentSvc)
	customerHandlers := handlers.NewCustomerHandlers(customerSvc)
	partnerHandlers := handlers.NewDeliveryPartnerHandlers(partnerSvc)
	routeHandlers := handlers.NewRouteHandlers(routeSvc)
	attendanceHandlers := handlers.NewAttendanceHandlers(attendanceSvc)
	reportHandlers := handlers.NewReportHandlers(reportSvc, exporter, cfg.Company.Name)
	healthHandlers := handlers.NewHealthHandlers(pool, cacheSvc, storageSvc)

	// Background queue for report exports
	asynqRedis := asynq.RedisClientOpt{Addr: redisAddr, Password: redisPassword, DB: redisDB}
	asynqClient := asynq.NewClient(asynqRedis)
	defer asynqClient.Close()

	asynqServer := asynq.NewServer(asynqRedis, asynq.Config{
		Concurrency: cfg.Queuing.Concurrency,
	})
	mux := asynq.NewServeMux()
	reportTasks := jobs.NewReportTaskHandler(exporter)
	mux.HandleFunc(jobs.TypeMonthlyReportExport, reportTasks.HandleMonthlyExport)

	go func() {
		if err := asynqServer.Run(mux); err != nil {
			log.Fatalf("Failed to run task server: %v", err)
		}
	}()

	// Recurring jobs: indent buffer flush + month-end report enqueue
	flusher := jobs.NewBufferFlusher(cacheSvc, indentRepo)
	scheduler := background.NewJobScheduler(flusher, asynqClient)
	if err := scheduler.Start(); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}
	defer scheduler.Stop()

	// HTTP server
	e := echo.New()
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RemoveTrailingSlash())

	// Health endpoints (no auth required)
	e.GET("/health", healthHandlers.HealthCheck)
	e.GET("/health/live", healthHandlers.LivenessCheck)
	e.GET("/health/ready", healthHandlers.ReadinessCheck)
	e.GET("/health/buffer", healthHandlers.BufferStatus)

	v1 := e.Group("/v1")

	// Authentication routes (no JWT required for signup/login)
	auth := v1.Group("/auth")
	auth.POST("/signup", authHandlers.Signup)
	auth.POST("/login", authHandlers.Login)

	// Protected routes
	protected := v1.Group("")
	protected.Use(middleware.JWTMiddleware(authSvc, jwtSecret))

	protected.POST("/auth/logout", authHandlers.Logout)
	protected.GET("/me", authHandlers.Me)

	// Daily indent ledger
	protected.POST("/indents/bulk", indentHandlers.CreateBulkIndent)
	protected.POST("/indents/delivery", indentHandlers.CreateDeliveryIndent)
	protected.GET("/indents", indentHandlers.ListIndents)
	protected.GET("/indents/range", indentHandlers.ListIndentsByRange)

	// Bulk customer master and monthly overrides
	protected.GET("/customers", customerHandlers.ListCustomers)
	protected.POST("/customers", customerHandlers.CreateCustomer)
	protected.GET("/customers/:id", customerHandlers.GetCustomer)
	protected.PUT("/customers/:id", customerHandlers.UpdateCustomer)
	protected.DELETE("/customers/:id", middleware.RequireAdmin()(customerHandlers.DeleteCustomer))
	protected.POST("/customers/:id/overrides", customerHandlers.UpsertOverride)
	protected.GET("/customers/:id/overrides", customerHandlers.ListOverrides)
	protected.GET("/customers/:id/overrides/:month", customerHandlers.GetOverride)

	// Delivery partner master
	protected.GET("/delivery-partners", partnerHandlers.ListPartners)
	protected.POST("/delivery-partners", partnerHandlers.CreatePartner)
	protected.GET("/delivery-partners/:id", partnerHandlers.GetPartner)
	protected.PUT("/delivery-partners/:id", partnerHandlers.UpdatePartner)
	protected.DELETE("/delivery-partners/:id", middleware.RequireAdmin()(partnerHandlers.DeletePartner))

	// Route master
	protected.GET("/routes", routeHandlers.ListRoutes)
	protected.POST("/routes", routeHandlers.CreateRoute)
	protected.GET("/routes/:id", routeHandlers.GetRoute)
	protected.PUT("/routes/:id", routeHandlers.UpdateRoute)
	protected.DELETE("/routes/:id", middleware.RequireAdmin()(routeHandlers.DeleteRoute))

	// Attendance
	protected.POST("/attendance", attendanceHandlers.MarkAttendance)
	protected.GET("/attendance", attendanceHandlers.ListAttendance)
	protected.GET("/attendance/employees/:id", attendanceHandlers.GetEmployeeMonth)

	// Reports
	protected.GET("/reports/sales", reportHandlers.GetSalesReport)
	protected.GET("/reports/sales/pdf", reportHandlers.DownloadSalesReportPDF)
	protected.POST("/reports/sales/export", reportHandlers.ExportSalesReport)

	portStr := os.Getenv("PORT")
	if portStr == "" {
		portStr = "8080"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		log.Fatalf("Invalid port %s: %v", portStr, err)
	}

	log.Printf("Nutromilk indent server v%s starting on port %d", version, port)

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%d", port)))
}
