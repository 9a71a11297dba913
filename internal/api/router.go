package api

import (
	"keeps/docs"
	"keeps/internal/api/handlers"
	"keeps/pkg/auth"
	"keeps/pkg/config"
	"keeps/pkg/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// multipartOverhead is added to the upload limit so the form envelope fits.
const multipartOverhead = 1 << 20

type Handlers struct {
	Auth     *handlers.AuthHandler
	Policy   *handlers.PolicyHandler
	Profile  *handlers.ProfileHandler
	Gap      *handlers.GapHandler
	Document *handlers.DocumentHandler
	Chat     *handlers.ChatHandler
	Claim    *handlers.ClaimHandler
	Premium  *handlers.PremiumHandler
}

func SetupRouter(
	h Handlers,
	jwtManager *auth.JWTManager,
	cfg *config.Config,
	appLogger *zap.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "keeps",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BodyLimit:    int(cfg.Extraction.MaxUploadBytes) + multipartOverhead,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			} else {
				appLogger.Error("Unhandled error", zap.String("path", c.Path()), zap.Error(err))
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.CORSOrigins,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(logger.New())

	_ = docs.SwaggerInfo
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Auth routes (public)
	authGroup := app.Group("/user/auth")
	authGroup.Post("/register", h.Auth.Register)
	authGroup.Post("/login", h.Auth.Login)
	authGroup.Post("/refresh", h.Auth.RefreshToken)

	// Protected routes
	protected := app.Group("/api/v1", middleware.AuthMiddleware(jwtManager, appLogger))

	policies := protected.Group("/policies")
	policies.Post("", h.Policy.CreatePolicy)
	policies.Get("", h.Policy.ListPolicies)
	policies.Get("/:id", h.Policy.GetPolicy)
	policies.Put("/:id", h.Policy.UpdatePolicy)
	policies.Delete("/:id", h.Policy.DeletePolicy)
	policies.Post("/:id/details", h.Policy.AddDetail)
	policies.Delete("/:id/details/:detailId", h.Policy.DeleteDetail)
	policies.Post("/:id/contacts", h.Policy.AddContact)
	policies.Delete("/:id/contacts/:contactId", h.Policy.DeleteContact)
	policies.Get("/:id/claims", h.Claim.ListClaims)
	policies.Post("/:id/claims", h.Claim.CreateClaim)
	policies.Put("/:id/claims/:claimId", h.Claim.UpdateClaim)
	policies.Delete("/:id/claims/:claimId", h.Claim.DeleteClaim)
	policies.Get("/:id/premiums", h.Premium.ListPremiums)
	policies.Post("/:id/premiums", h.Premium.CreatePremium)
	policies.Put("/:id/premiums/:premiumId", h.Premium.UpdatePremium)
	policies.Delete("/:id/premiums/:premiumId", h.Premium.DeletePremium)

	protected.Get("/renewals/upcoming", h.Policy.UpcomingRenewals)
	protected.Get("/premiums/annual-spend", h.Premium.AnnualSpend)

	protected.Get("/profile", h.Profile.GetProfile)
	protected.Put("/profile", h.Profile.UpdateProfile)

	gaps := protected.Group("/gaps")
	gaps.Get("", h.Gap.AnalyzeGaps)
	gaps.Get("/summary", h.Gap.Summary)
	gaps.Get("/taxonomy", h.Gap.Taxonomy)
	gaps.Get("/policy/:id", h.Gap.PolicyGaps)
	gaps.Get("/business/:name", h.Gap.BusinessGaps)

	documents := protected.Group("/documents")
	documents.Post("/upload", h.Document.UploadDocument)
	documents.Get("", h.Document.ListDocuments)
	documents.Get("/:id/download", h.Document.DownloadDocument)
	documents.Post("/:id/extract", h.Document.ExtractDocument)

	protected.Post("/chat", h.Chat.Ask)

	return app
}
