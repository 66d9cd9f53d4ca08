package main

import (
	"context"
	"fmt"
	"log"

	common_api "go-pm/internal/common/api"
	"go-pm/internal/config"
	"go-pm/internal/database"
	"go-pm/internal/features/audit"
	"go-pm/internal/features/auth"
	"go-pm/internal/features/bulkaction"
	"go-pm/internal/features/entity"
	"go-pm/internal/features/export"
	"go-pm/internal/features/notify"
	"go-pm/internal/features/preference"
	"go-pm/internal/features/record"
	"go-pm/internal/features/savedview"
	"go-pm/internal/features/user"
	"go-pm/internal/features/warehouse"
	"go-pm/internal/logger"
	"go-pm/internal/middleware"
	"go-pm/pkg/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
)

// NewFiberServer creates a new Fiber app instance
func NewFiberServer() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(middleware.CORSMiddleware())

	return app
}

// AsRoute is a helper function to reduce boilerplate.
// It tags the constructor so Fx knows to add it to the "routes" group.
func AsRoute(f any) any {
	return fx.Annotate(
		f,
		fx.As(new(common_api.Route)),
		fx.ResultTags(`group:"routes"`),
	)
}

// RegisterAllRoutes takes the group "routes" (slice of interfaces)
// and calls Setup() on each one.
func RegisterAllRoutes(app *fiber.App, routes []common_api.Route) {
	for _, route := range routes {
		route.Setup(app)
	}
	log.Printf("Registered %d route groups\n", len(routes))
}

var RegisterAllRoutesWithAnnotation = fx.Annotate(
	RegisterAllRoutes,
	fx.ParamTags(``, `group:"routes"`),
)

// StartServer creates a lifecycle hook to start Fiber in a goroutine
// and shut it down when the app exits.
func StartServer(lc fx.Lifecycle, app *fiber.App, cfg *config.Config) {
	utils.SetSecret(cfg.JWTSecret)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := fmt.Sprintf(":%s", cfg.Port)
				if err := app.Listen(port); err != nil {
					log.Fatalf("Server failed to start: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.Shutdown()
		},
	})
}

func main() {
	app := fx.New(
		fx.Provide(
			config.LoadConfig,
			logger.NewLogger,
			NewFiberServer,
			database.NewDatabase,

			entity.NewCatalog,
			entity.NewValidator,
			notify.NewHub,

			// Repositories
			audit.NewAuditRepository,
			user.NewUserRepository,
			auth.NewTenantRepository,
			record.NewRecordRepository,
			savedview.NewSavedViewRepository,
			preference.NewPreferenceRepository,
			export.NewExportRepository,
			warehouse.NewSyncLogRepository,

			// Services
			audit.NewAuditService,
			auth.NewAuthService,
			user.NewUserService,
			record.NewRecordService,
			bulkaction.NewBulkActionService,
			savedview.NewSavedViewService,
			preference.NewPreferenceService,
			export.NewExportService,
			warehouse.NewWarehouseService,
			export.NewRetentionSweeper,

			// Interface adapters
			func(r user.UserRepository) audit.UserFinder { return r },
			func(h *notify.Hub) record.RefreshNotifier { return h },
			func(h *notify.Hub) bulkaction.RefreshNotifier { return h },
			func(r record.RecordRepository) bulkaction.RecordDeleter { return r },
			func(s audit.AuditService) bulkaction.AuditLogger { return s },
			func(s audit.AuditService) savedview.AuditLogger { return s },
			func(s record.RecordService) export.RecordLister { return s },

			// Controllers
			auth.NewAuthController,
			user.NewUserController,
			record.NewRecordController,
			bulkaction.NewBulkActionController,
			savedview.NewSavedViewController,
			preference.NewPreferenceController,
			export.NewExportController,
			warehouse.NewWarehouseController,
			audit.NewAuditController,

			// API Routes
			AsRoute(auth.NewAuthApi),
			AsRoute(user.NewUserApi),
			AsRoute(record.NewRecordApi),
			AsRoute(bulkaction.NewBulkActionApi),
			AsRoute(savedview.NewSavedViewApi),
			AsRoute(preference.NewPreferenceApi),
			AsRoute(export.NewExportApi),
			AsRoute(warehouse.NewWarehouseApi),
			AsRoute(audit.NewAuditApi),
			AsRoute(notify.NewNotifyApi),
		),
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		fx.Invoke(
			RegisterAllRoutesWithAnnotation,
			StartServer,
			func(lc fx.Lifecycle, sweeper *export.RetentionSweeper) {
				lc.Append(fx.Hook{
					OnStart: func(ctx context.Context) error {
						return sweeper.Start()
					},
					OnStop: func(ctx context.Context) error {
						sweeper.Stop()
						return nil
					},
				})
			},
		),
	)

	app.Run()
}
