package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"tablecomm/assets"
	"tablecomm/config"
	"tablecomm/gemini"
	"tablecomm/handlers/api"
	"tablecomm/handlers/web"
	"tablecomm/menu"
	"tablecomm/middleware"
	"tablecomm/models"
	"tablecomm/preference"
	"tablecomm/storage"
	"tablecomm/templates"
	"tablecomm/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/nicksnyder/go-i18n/v2/i18n"
)

// appDeps are the long-lived services the routes are built from
type appDeps struct {
	Config      *config.Config
	Gateway     *gemini.Service
	Preferences *preference.Store
	Cache       *utils.MemoryCache
}

// Helper function to determine if request is an API request
func isAPIRequest(c *fiber.Ctx) bool {
	if c == nil {
		return false
	}
	path := c.Path()
	return len(path) >= 4 && path[:4] == "/api"
}

func newEngine() *html.Engine {
	engine := html.NewFileSystem(http.FS(templates.FS), ".html")

	// i18n template functions; pages pass their request localizer
	engine.AddFunc("t", func(localizer *i18n.Localizer, messageID string) string {
		return utils.T(localizer, messageID)
	})
	engine.AddFunc("tWithData", func(localizer *i18n.Localizer, messageID string, pairs ...interface{}) string {
		data := make(map[string]interface{}, len(pairs)/2)
		for i := 0; i+1 < len(pairs); i += 2 {
			if key, ok := pairs[i].(string); ok {
				data[key] = pairs[i+1]
			}
		}
		return utils.TWithData(localizer, messageID, data)
	})

	return engine
}

func errorHandler(aiEnabled bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		localizer, _ := c.Locals("localizer").(*i18n.Localizer)
		message := utils.T(localizer, "error_500")

		if appErr, ok := err.(*utils.AppError); ok {
			code = appErr.Code
			message = appErr.Message
			log := utils.Log.WithField("path", c.Path())
			if len(appErr.Context) > 0 {
				log = log.WithFields(appErr.Context)
			}
			if code >= fiber.StatusInternalServerError {
				log.Error("Application error: %v", appErr)
			} else {
				log.Debug("Request rejected: %v", appErr)
			}
		} else if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			message = e.Message
			if code == fiber.StatusNotFound {
				message = utils.T(localizer, "error_404")
			}
		} else {
			utils.Log.Error("Unhandled error on %s: %v", c.Path(), err)
		}

		if isAPIRequest(c) {
			return c.Status(code).JSON(fiber.Map{
				"error": message,
			})
		}

		return c.Status(code).Render("error", fiber.Map{
			"Error":     message,
			"Code":      code,
			"Page":      "error",
			"Lang":      middleware.DisplayLanguage(c),
			"UILang":    middleware.UILanguage(c),
			"Localizer": localizer,
			"Languages": models.SupportedLanguages,
			"AIEnabled": aiEnabled,
		})
	}
}

func newApp(d appDeps) *fiber.App {
	cfg := d.Config

	if err := utils.InitI18n(cfg.Server.UILanguage); err != nil {
		utils.Log.Error("Failed to initialize i18n: %v", err)
	}

	aiEnabled := d.Gateway.Configured()

	app := fiber.New(fiber.Config{
		Views:        newEngine(),
		ViewsLayout:  "layouts/main",
		ErrorHandler: errorHandler(aiEnabled),
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(helmet.New(helmet.Config{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "SAMEORIGIN",
		ReferrerPolicy:        "no-referrer",
		ContentSecurityPolicy: "default-src 'self'; script-src 'self'; style-src 'self' 'unsafe-inline'; img-src 'self' data:;",
	}))

	app.Use(middleware.LocaleMiddleware(d.Preferences, cfg.Server.UILanguage))

	app.Use("/assets", filesystem.New(filesystem.Config{
		Root:   http.FS(assets.FS),
		MaxAge: int((24 * time.Hour).Seconds()),
	}))
	app.Use("/images", filesystem.New(filesystem.Config{
		Root:       http.FS(assets.FS),
		PathPrefix: "images",
		MaxAge:     int((24 * time.Hour).Seconds()),
	}))

	documents := menu.NewDocuments(d.Cache, cfg.Menu.PrintTTL.Duration)
	pipeline := menu.NewPipeline(d.Gateway, menu.Strategy(cfg.Menu.Strategy), cfg.Menu.Concurrency)

	pageHandler := web.NewPageHandler(cfg, documents, aiEnabled)
	geminiHandler := api.NewGeminiHandler(d.Gateway)
	menuHandler := api.NewMenuHandler(pipeline, documents, cfg.Menu)
	catalogHandler := &api.CatalogHandler{}
	languageHandler := api.NewLanguageHandler(d.Preferences)
	eventsHandler := api.NewEventsHandler(d.Preferences)
	i18nHandler := &api.I18nHandler{}

	// Pages
	app.Get("/", pageHandler.QuickResponses)
	app.Get("/menu", pageHandler.Menu)
	app.Get("/menu/print/:id", pageHandler.PrintMenu)

	limiter := middleware.RateLimiter(cfg.RateLimit)

	apiRoutes := app.Group("/api")
	{
		geminiRoutes := apiRoutes.Group("/gemini", limiter)
		geminiRoutes.Post("/translate", geminiHandler.Translate)
		geminiRoutes.Post("/generate", geminiHandler.Generate)

		menuRoutes := apiRoutes.Group("/menu", limiter)
		menuRoutes.Get("/sample", menuHandler.Sample)
		menuRoutes.Post("/translate", menuHandler.Translate)
		menuRoutes.Post("/print", menuHandler.Print)

		apiRoutes.Get("/catalog", catalogHandler.List)
		apiRoutes.Get("/catalog/:id", catalogHandler.Get)

		apiRoutes.Get("/language", languageHandler.Get)
		apiRoutes.Post("/language", languageHandler.Set)
		apiRoutes.Get("/language/events", eventsHandler.HandleSSE)

		apiRoutes.Get("/i18n/:lang", i18nHandler.GetTranslations)
	}

	// Health check endpoint. ?check=true also sends a test prompt to the provider.
	// A plain health read is free; ?check=true calls the provider, so it
	// shares the AI routes' limiter.
	app.Get("/health", func(c *fiber.Ctx) error {
		if c.QueryBool("check") {
			return limiter(c)
		}
		return c.Next()
	}, func(c *fiber.Ctx) error {
		provider := fiber.Map{
			"configured": d.Gateway.Configured(),
			"backend":    d.Gateway.Backend(),
		}
		if c.QueryBool("check") {
			provider["reachable"] = d.Gateway.Validate(c.UserContext())
		}
		return c.JSON(fiber.Map{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
			"gemini": provider,
		})
	})

	// 404 Handler for undefined routes
	app.Use(func(c *fiber.Ctx) error {
		return fiber.ErrNotFound
	})

	return app
}

func main() {
	cfg, err := config.LoadConfig("config.toml")
	if err != nil {
		utils.Log.Error("Failed to load config: %v", err)
		os.Exit(1)
	}
	utils.Log.SetLevel(utils.ParseLogLevel(cfg.Log.Level))
	defer utils.Log.Sync()

	utils.Log.Info("Initializing tablecomm...")

	var persister preference.Persister
	db, err := storage.InitDB(cfg.Storage.DataDir)
	if err != nil {
		utils.Log.Error("Failed to open database, language preference will not persist: %v", err)
	} else {
		defer db.Close()
		persister = storage.NewPreferenceStorage(db)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cache := utils.NewMemoryCache(10 * time.Minute)
	defer cache.Close()

	app := newApp(appDeps{
		Config:      cfg,
		Gateway:     gemini.New(ctx, cfg.Gemini, cfg.Breaker),
		Preferences: preference.NewStore(persister),
		Cache:       cache,
	})

	go func() {
		<-ctx.Done()
		utils.Log.Info("Shutting down...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			utils.Log.Error("Shutdown error: %v", err)
		}
	}()

	utils.Log.Info("Starting server on port %d...", cfg.Server.Port)
	if err := app.Listen(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		utils.Log.Error("Error starting server: %v", err)
	}
}
