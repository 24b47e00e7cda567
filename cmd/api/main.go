package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"alfredoptarigan/ai-recruiter/internal/config"
	"alfredoptarigan/ai-recruiter/internal/logger"
	"alfredoptarigan/ai-recruiter/internal/repositories"
	"alfredoptarigan/ai-recruiter/internal/server"
	"alfredoptarigan/ai-recruiter/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	zl, err := logger.New(cfg.Log.JSON, cfg.Log.Debug)
	if err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer zl.Sync() //nolint:errcheck
	zl.Info("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		zl.Fatal("❌ Failed to initialize database", zap.Error(err))
	}

	if err := repositories.AutoMigrate(db); err != nil {
		zl.Warn("⚠️ Database migration skipped", zap.Error(err))
	} else {
		zl.Info("✅ Database migration completed")
	}

	// Seed roles; startup continues whatever happens here
	ctx := context.Background()
	seeder := services.NewRoleSeeder(repositories.NewRoleRepository(db))
	if inserted, err := seeder.Seed(ctx); err != nil {
		zl.Warn("⚠️ Role seeding failed", zap.Error(err))
	} else if inserted > 0 {
		zl.Info("🌱 Seeded role catalog", zap.Int("roles", inserted))
	}

	app := server.New(cfg, db, zl)
	zl.Info("✅ Handlers initialized")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		zl.Info("🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			zl.Error("❌ Server forced to shutdown", zap.Error(err))
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	zl.Info("🚀 Server starting", zap.String("addr", addr))

	if err := app.Listen(addr); err != nil {
		zl.Fatal("❌ Failed to start server", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		zl.Warn("⚠️ Failed to get database pool", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		zl.Warn("⚠️ Failed to close database pool", zap.Error(err))
	}
}
