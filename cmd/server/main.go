package main

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"os"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/encuestapp/survey-api/internal/api"
	"github.com/encuestapp/survey-api/internal/config"
	"github.com/encuestapp/survey-api/internal/db"
	"github.com/encuestapp/survey-api/internal/middleware"
	"github.com/encuestapp/survey-api/internal/services"
	"github.com/encuestapp/survey-api/internal/token"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Logger is not configured yet; keep this plain.
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}
	setupLogger(cfg.LogLevel)

	store, err := openStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("open store")
	}

	codec := token.NewCodec([]byte(cfg.JWTSecret))
	authSvc := services.NewAuthService(cfg.AdminEmail, cfg.AdminPassword, func(email, role string) (string, error) {
		return codec.Sign(token.Claims{"email": email, "role": role})
	})

	commit := os.Getenv("SURVEY_COMMIT")
	buildTime := os.Getenv("SURVEY_BUILD_TIME")

	mux := http.NewServeMux()
	api.NewRouter(store, authSvc).Register(mux, middleware.NewAuth(codec))

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"ok":   true,
			"name": "Survey API",
		})
	})
	mux.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"commit":     commit,
			"build_time": buildTime,
		})
	})

	// Static frontend (survey form + dashboard build) when configured.
	if cfg.StaticDir != "" {
		mux.Handle("/", http.FileServer(http.Dir(cfg.StaticDir)))
	}

	handler := middleware.RequestLogger(
		middleware.CORS(middleware.SecureHeaders(middleware.NoStore(mux))),
	)

	log.Info().Str("addr", cfg.Addr).Msg("survey server listening")
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}

func setupLogger(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.With().Str("service", "survey-api").Logger()
}

func openStore(cfg *config.Config) (api.Store, error) {
	if cfg.DBPath == "memory" {
		log.Warn().Msg("using in-process store, responses will not survive a restart")
		return api.NewMemoryStore(), nil
	}
	conn, err := sql.Open("sqlite3", cfg.DBPath)
	if err != nil {
		return nil, err
	}
	if err := db.RunMigrations(conn); err != nil {
		return nil, err
	}
	return db.NewStore(conn)
}
