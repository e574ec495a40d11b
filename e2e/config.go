package e2e

import (
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// RUKUN_E2E_SERVER_URL points at a running server (e.g. http://localhost:8080).
	// Scenarios are skipped when it is unset.
	ServerURL string `envconfig:"RUKUN_E2E_SERVER_URL"`
	// RUKUN_E2E_AUTH_SECRET must match the server's signing secret.
	AuthSecret string `envconfig:"RUKUN_E2E_AUTH_SECRET" default:"dev-secret"`
	// E2E_DEBUG_JSON allows dumping full frame bodies as JSON
	DebugJSON bool `envconfig:"E2E_DEBUG_JSON" default:"false"`
	// E2E_COLOURS enables colorized output for better log readability
	Colours bool `envconfig:"E2E_COLOURS" default:"true"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	return cfg, err
}
