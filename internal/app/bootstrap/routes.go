// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	accountfeature "github.com/dalemusser/mentorhub/internal/app/features/account"
	feedbackfeature "github.com/dalemusser/mentorhub/internal/app/features/feedback"
	healthfeature "github.com/dalemusser/mentorhub/internal/app/features/health"
	meetingsfeature "github.com/dalemusser/mentorhub/internal/app/features/meetings"
	profilefeature "github.com/dalemusser/mentorhub/internal/app/features/profile"
	progressfeature "github.com/dalemusser/mentorhub/internal/app/features/progress"
	relationshipsfeature "github.com/dalemusser/mentorhub/internal/app/features/relationships"
	"github.com/dalemusser/mentorhub/internal/app/system/httpjson"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler for the API.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// Startup have completed. Every API route lives under /api; anything
// unmatched there answers with the JSON 404 envelope. The portal frontend
// assets are served from /static, and /health is for load balancers.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", appCfg.StaticDir))

	api := chi.NewRouter()
	api.NotFound(httpjson.NotFoundHandler())
	api.MethodNotAllowed(httpjson.NotFoundHandler())

	// Accounts: login (with implicit signup), signup, forgot-password
	accountHandler := accountfeature.NewHandler(deps.MongoDatabase, appCfg.TempPasswordLength, logger)
	api.Post("/login", accountHandler.HandleLogin)
	api.Post("/signup", accountHandler.HandleSignup)
	api.Post("/forgot-password", accountHandler.HandleForgotPassword)

	// Meeting scheduling and listing
	meetingsHandler := meetingsfeature.NewHandler(deps.MongoDatabase, logger)
	api.Mount("/meetings", meetingsfeature.Routes(meetingsHandler))

	// Profile read/update
	profileHandler := profilefeature.NewHandler(deps.MongoDatabase, logger)
	api.Mount("/user", profilefeature.Routes(profileHandler))

	// Progress document and sub-resource mutations
	progressHandler := progressfeature.NewHandler(deps.MongoDatabase, logger)
	api.Mount("/progress", progressfeature.Routes(progressHandler))

	// Feedback submission and listing
	feedbackHandler := feedbackfeature.NewHandler(deps.MongoDatabase, logger)
	api.Mount("/feedback", feedbackfeature.Routes(feedbackHandler))

	// Mentor-mentee relationship lookups
	relationshipsHandler := relationshipsfeature.NewHandler(deps.MongoDatabase, logger)
	api.Get("/mentees/{mentorEmail}", relationshipsHandler.HandleMentees)
	api.Get("/mentor/{menteeEmail}", relationshipsHandler.HandleMentor)

	r.Mount("/api", api)
	r.NotFound(httpjson.NotFoundHandler())

	return r, nil
}
