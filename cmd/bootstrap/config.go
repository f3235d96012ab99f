package bootstrap

import (
	"mechmobile/internal/pkg/config"

	"github.com/joho/godotenv"
	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		LoadConfig,
	),
)

// LoadConfig reads .env when present, then the environment. A missing .env is
// the normal case in deployed environments.
func LoadConfig() (config.Config, error) {
	_ = godotenv.Load()
	return config.LoadConfig()
}
