package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Env captures the gateway's tunables. Everything comes from environment
// variables with defaults that work against the production BRTC API, so the
// binary runs locally without setup beyond an API token.
type Env struct {
	AppAddr string
	GinMode string

	// Upstream BRTC API.
	APIBaseURL      string
	APIToken        string
	UpstreamTimeout time.Duration

	// Departure countdown recompute period.
	RefreshInterval time.Duration

	CORSOrigins []string
}

func LoadEnv() Env {
	// Optional .env for local development; real deployments set the
	// variables in the environment.
	_ = godotenv.Load()

	env := Env{
		AppAddr:         ":8080",
		APIBaseURL:      "https://api.koyrabrtc.com",
		UpstreamTimeout: 10 * time.Second,
		RefreshInterval: 60 * time.Second,
	}

	setStringFromEnv(&env.AppAddr, "APP_ADDR")
	setStringFromEnv(&env.GinMode, "GIN_MODE")
	setStringFromEnv(&env.APIBaseURL, "BRTC_API_BASE_URL")
	setStringFromEnv(&env.APIToken, "BRTC_API_TOKEN")
	setDurationFromEnv(&env.UpstreamTimeout, "BRTC_API_TIMEOUT")
	setDurationFromEnv(&env.RefreshInterval, "COUNTDOWN_REFRESH_INTERVAL")

	env.APIBaseURL = strings.TrimRight(env.APIBaseURL, "/")

	if raw := strings.TrimSpace(os.Getenv("CORS_ALLOWED_ORIGINS")); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				env.CORSOrigins = append(env.CORSOrigins, o)
			}
		}
	}

	return env
}

func setStringFromEnv(target *string, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		*target = v
	}
}

func setDurationFromEnv(target *time.Duration, key string) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*target = d
		}
	}
}
