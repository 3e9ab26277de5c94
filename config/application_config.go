package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/GlintPay/gsbc/build"
	"github.com/GlintPay/gsbc/utils"
	"github.com/caarlos0/env/v6"
	"github.com/rs/zerolog/log"
	"sigs.k8s.io/yaml"
)

type Configuration struct {
	ApplicationConfigFileYmlPath string `env:"APP_CONFIG_FILE_YML_PATH" envDefault:"application.yml"`
	DeployTarget                 string `env:"DEPLOY_TARGET" envDefault:"server"`
}

// ApplicationConfiguration Must use full names for `sigs.k8s.io/yaml`
type ApplicationConfiguration struct {
	Server     Server
	Prometheus Prometheus
	Site       Site
	Defaults   Defaults
	Tracing    Tracing
	Logging    Logging
}

type Site struct {
	Url               string `json:"url"`
	RefreshRateMillis int64  `json:"refreshRate"`
}

type Defaults struct {
	FlattenHierarchicalConfig bool
	LogResponses              bool
	LogRequests               bool
	PrettyPrintJson           bool
	Format                    string
}

type Server struct {
	Port int
}

type Tracing struct {
	Enabled         bool
	Endpoint        string
	SamplerFraction float64
}

type Prometheus struct {
	Path string
}

type Logging struct {
	Level string
}

func LoadEnv() (Configuration, error) {
	envConfig := Configuration{}
	if err := env.Parse(&envConfig); err != nil {
		return envConfig, fmt.Errorf("configuration loading failed: %w", err)
	}
	return envConfig, nil
}

// Load reads the YAML application configuration. A missing file is not an error: defaults apply.
func Load(filePath string) (ApplicationConfiguration, error) {
	appConfig := defaults()

	yamlFile, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Info().Msgf("No config file found: %s", utils.FriendlyFileName(filePath))
			return appConfig, nil
		}
		return appConfig, err
	}

	log.Debug().Msgf("Loading YAML config from %s", utils.FriendlyFileName(filePath))
	if err = yaml.Unmarshal(yamlFile, &appConfig); err != nil {
		return appConfig, fmt.Errorf("unmarshal %s: %w", utils.FriendlyFileName(filePath), err)
	}

	if appConfig.Site.Url == "" {
		appConfig.Site.Url = build.DefaultSiteURL
	}
	return appConfig, nil
}

func defaults() ApplicationConfiguration {
	return ApplicationConfiguration{
		Server:  Server{Port: 80},
		Site:    Site{Url: build.DefaultSiteURL},
		Tracing: Tracing{SamplerFraction: 1},
		Defaults: Defaults{
			Format: "json",
		},
		Logging: Logging{Level: "info"},
	}
}
