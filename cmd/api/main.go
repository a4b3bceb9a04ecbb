package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/Emalachi/lazersolution/internal/config"
	"github.com/Emalachi/lazersolution/internal/database"
	"github.com/Emalachi/lazersolution/internal/domain/auth"
	"github.com/Emalachi/lazersolution/internal/domain/formconfig"
	"github.com/Emalachi/lazersolution/internal/domain/intake"
	"github.com/Emalachi/lazersolution/internal/domain/lead"
	"github.com/Emalachi/lazersolution/internal/domain/upload"
	"github.com/Emalachi/lazersolution/internal/domain/visitor"
	"github.com/Emalachi/lazersolution/internal/middleware"
	jwtsvc "github.com/Emalachi/lazersolution/internal/pkg/jwt"
	"github.com/Emalachi/lazersolution/internal/realtime"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	if err := migrate(db); err != nil {
		log.Fatal(err)
	}

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	hub := realtime.NewHub()
	wsHandler := realtime.NewWSHandler(hub, j)

	leadRepo := lead.NewRepository(db)
	leadService := lead.NewService(leadRepo, realtime.NewLeadFeed(hub))
	leadHandler := lead.NewHandler(leadService)

	formConfigRepo := formconfig.NewRepository(db)
	formConfigService := formconfig.NewService(formConfigRepo)
	formConfigHandler := formconfig.NewHandler(formConfigService)

	renderer := intake.NewRenderer(formConfigService, leadService)
	intakeHandler := intake.NewHandler(renderer)

	visitorRepo := visitor.NewRepository(db)
	visitorHandler := visitor.NewHandler(visitorRepo)

	userRepo := auth.NewRepository(db)
	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	uploadRepo := upload.NewRepository(db)
	uploadService := upload.NewService(uploadRepo, cfg.UploadsDir, cfg.StaticBase)
	uploadHandler := upload.NewHandler(uploadService)

	if cfg.AppEnv == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS())
	r.Static(cfg.StaticBase, cfg.UploadsDir)

	v1 := r.Group("/api/v1")
	{
		// public
		intake.RegisterPublicRoutes(v1, intakeHandler)
		visitor.RegisterPublicRoutes(v1, visitorHandler)
		auth.RegisterPublicRoutes(v1, authHandler)

		// WebSocket auth rides a query token, so the feed sits outside
		// the bearer-header group.
		v1.GET("/admin/ws", wsHandler.HandleWebSocket)

		// staff dashboard
		admin := v1.Group("/admin")
		admin.Use(middleware.Auth(j))
		{
			lead.RegisterAdminRoutes(admin, leadHandler)
			formconfig.RegisterAdminRoutes(admin, formConfigHandler)
			visitor.RegisterAdminRoutes(admin, visitorHandler)
			auth.RegisterAdminRoutes(admin, authHandler)
			upload.RegisterAdminRoutes(admin, uploadHandler)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

func migrate(db *gorm.DB) error {
	for _, fn := range []func(*gorm.DB) error{
		auth.Migrate,
		lead.Migrate,
		formconfig.Migrate,
		visitor.Migrate,
		upload.Migrate,
	} {
		if err := fn(db); err != nil {
			return err
		}
	}
	return nil
}
