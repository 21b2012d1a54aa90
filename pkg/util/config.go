package util

import (
	"errors"
	"fmt"
	"strings"

	"github.com/HazelJiang/BearMap/pkg"
	"github.com/spf13/viper"
)

// ReadConfig loads ./data/config.yaml when present and lets environment variables override any key.
func ReadConfig() error {
	SetConfigDefaults()

	viper.SetConfigName("config")
	viper.AddConfigPath("./data/")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("fatal error config file: %w", err)
	}
	return nil
}

func SetConfigDefaults() {
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("GRAPH_FILE", "./data/streetmap.graph")
	viper.SetDefault("SEARCH_TIMEOUT", pkg.DEFAULT_SEARCH_TIMEOUT)
	viper.SetDefault("SNAP_RADIUS_KM", pkg.MAX_SNAP_RADIUS_KM)
	viper.SetDefault("BATCH_WORKERS", 0)
	viper.SetDefault("API_PORT", 6060)
	viper.SetDefault("API_TIMEOUT", "30s")
	viper.SetDefault("USE_RATE_LIMIT", false)
	viper.SetDefault("RATE_LIMIT_RPS", 20)
	viper.SetDefault("RATE_LIMIT_BURST", 40)
	viper.SetDefault("HTTP_SERVER_READ_TIMEOUT", "5s")
	viper.SetDefault("HTTP_SERVER_WRITE_TIMEOUT", "10s")
	viper.SetDefault("HTTP_SERVER_IDLE_TIMEOUT", "60s")
	viper.SetDefault("HTTP_SERVER_READ_HEADER_TIMEOUT", "2s")
}
