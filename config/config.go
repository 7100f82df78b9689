package config

import (
	"strings"
	"time"

	"github.com/jsphweid/sheetmusic/constants"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type Config struct {
	Render RenderConfig
	Server ServerConfig
	Watch  WatchConfig
}

type RenderConfig struct {
	// Clef is a file drawn to the left of the staff; empty for none.
	Clef   string
	Header bool
	// Output is where the editor saves its render.
	Output string
}

type ServerConfig struct {
	Addr           string
	AllowedOrigins []string
}

type WatchConfig struct {
	Debounce time.Duration
}

func setDefaults() {
	viper.SetDefault("render.clef", "")
	viper.SetDefault("render.header", true)
	viper.SetDefault("render.output", constants.DefaultOutputFile)
	viper.SetDefault("server.addr", ":8080")
	viper.SetDefault("server.allowed_origins", []string{"*"})
	viper.SetDefault("watch.debounce", 200*time.Millisecond)
}

// Load reads sheetmusic.yaml (optional), SHEETMUSIC_* variables and any
// flags already bound to viper, in increasing priority.
func Load() (*Config, error) {
	viper.SetConfigName("sheetmusic")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// SHEETMUSIC_SERVER_ADDR overrides server.addr
	viper.SetEnvPrefix("sheetmusic")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.Wrap(err, "could not read config file")
		}
	}

	cfg := &Config{
		Render: RenderConfig{
			Clef:   viper.GetString("render.clef"),
			Header: viper.GetBool("render.header"),
			Output: viper.GetString("render.output"),
		},
		Server: ServerConfig{
			Addr:           viper.GetString("server.addr"),
			AllowedOrigins: viper.GetStringSlice("server.allowed_origins"),
		},
		Watch: WatchConfig{
			Debounce: viper.GetDuration("watch.debounce"),
		},
	}
	if cfg.Watch.Debounce < 0 {
		return nil, errors.Errorf("watch.debounce must not be negative, got %v", cfg.Watch.Debounce)
	}
	return cfg, nil
}
