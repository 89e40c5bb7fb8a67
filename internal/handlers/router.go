package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"melodee/internal/middleware"
	"melodee/internal/services"
)

// RouterDeps carries the shared dependencies handler registration needs.
type RouterDeps struct {
	DB       *gorm.DB
	Repo     *services.Repository
	Settings *services.SettingsService
	Auth     *services.AuthService
	Logger   zerolog.Logger
}

// RegisterRoutes mounts the v1 API. Login is the only unauthenticated
// endpoint; everything else requires a valid X-Api-Key header, and the
// admin subtree additionally requires an admin account.
func RegisterRoutes(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.Auth)
	searchHandler := NewSearchHandler(deps.Repo, deps.Logger)
	libraryHandler := NewLibraryHandler(deps.Repo)
	reactionsHandler := NewReactionsHandler(deps.Repo)
	settingsHandler := NewSettingsHandler(deps.Settings)
	migrationsHandler := NewMigrationsHandler(deps.DB, deps.Logger)

	v1 := app.Group("/api/v1")
	v1.Post("/auth/login", authHandler.Login)

	guarded := v1.Group("", middleware.NewAuthMiddleware(deps.Repo).APIKeyAuth())
	guarded.Post("/auth/password", authHandler.ChangePassword)
	guarded.Get("/search", searchHandler.Search)

	guarded.Get("/libraries", libraryHandler.ListLibraries)
	guarded.Get("/libraries/:id", libraryHandler.GetLibrary)
	guarded.Get("/libraries/:id/history", libraryHandler.GetScanHistory)

	guarded.Post("/artists/:id/reaction", reactionsHandler.ReactTo("artists"))
	guarded.Post("/albums/:id/reaction", reactionsHandler.ReactTo("albums"))
	guarded.Post("/songs/:id/reaction", reactionsHandler.ReactTo("songs"))
	guarded.Post("/songs/:id/play", reactionsHandler.RecordPlay)

	admin := guarded.Group("/admin", middleware.AdminOnly())
	admin.Post("/libraries/:id/history", libraryHandler.AppendScanHistory)
	admin.Get("/settings", settingsHandler.GetSettings)
	admin.Get("/settings/export", settingsHandler.ExportSettings)
	admin.Post("/settings/import", settingsHandler.ImportSettings)
	admin.Get("/settings/:key", settingsHandler.GetSetting)
	admin.Put("/settings/:key", settingsHandler.UpdateSetting)
	admin.Get("/migrations", migrationsHandler.GetStatus)
}
