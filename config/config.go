package config

import (
	"time"

	"github.com/google/uuid"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// Config represents service configuration for dp-acled-hdx-publisher
type Config struct {
	BindAddr                   string        `envconfig:"BIND_ADDR"`
	HDXURL                     string        `envconfig:"HDX_URL"`
	HDXAPIKey                  string        `envconfig:"HDX_API_KEY"                json:"-"`
	ServiceAuthToken           string        `envconfig:"SERVICE_AUTH_TOKEN"         json:"-"`
	ACLEDCountriesURL          string        `envconfig:"ACLED_COUNTRIES_URL"`
	ACLEDEventsURL             string        `envconfig:"ACLED_EVENTS_URL"`
	HXLProxyURL                string        `envconfig:"HXL_PROXY_URL"`
	HDXOwnerOrg                string        `envconfig:"HDX_OWNER_ORG"`
	HDXMaintainer              string        `envconfig:"HDX_MAINTAINER"`
	PublishConcurrency         int           `envconfig:"PUBLISH_CONCURRENCY"`
	HTTPClientTimeout          time.Duration `envconfig:"HTTP_CLIENT_TIMEOUT"`
	HTTPMaxRetries             int           `envconfig:"HTTP_MAX_RETRIES"`
	GracefulShutdownTimeout    time.Duration `envconfig:"GRACEFUL_SHUTDOWN_TIMEOUT"`
	HealthCheckInterval        time.Duration `envconfig:"HEALTHCHECK_INTERVAL"`
	HealthCheckCriticalTimeout time.Duration `envconfig:"HEALTHCHECK_CRITICAL_TIMEOUT"`
}

// Get returns the default config with any modifications through environment
// variables
func Get() (cfg *Config, err error) {

	cfg = &Config{
		BindAddr:                   ":28300",
		HDXURL:                     "https://data.humdata.org",
		ACLEDCountriesURL:          "https://www.acleddata.com/download/3987/",
		ACLEDEventsURL:             "https://api.acleddata.com/acled/read.csv?limit=0&",
		HXLProxyURL:                "https://data.humdata.org/hxlproxy/data.csv",
		HDXOwnerOrg:                "b67e6c74-c185-4f43-b561-0e114a736f19",
		HDXMaintainer:              "8b84230c-e04a-43ec-99e5-41307a203a2f",
		PublishConcurrency:         1,
		HTTPClientTimeout:          60 * time.Second,
		HTTPMaxRetries:             3,
		GracefulShutdownTimeout:    5 * time.Second,
		HealthCheckInterval:        30 * time.Second,
		HealthCheckCriticalTimeout: 90 * time.Second,
	}

	if err = envconfig.Process("", cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the values that cannot be defaulted sensibly
func (cfg *Config) Validate() error {
	urls := map[string]string{
		"HDX_URL":             cfg.HDXURL,
		"ACLED_COUNTRIES_URL": cfg.ACLEDCountriesURL,
		"ACLED_EVENTS_URL":    cfg.ACLEDEventsURL,
		"HXL_PROXY_URL":       cfg.HXLProxyURL,
	}
	for name, value := range urls {
		if value == "" {
			return errors.Errorf("%s must be set", name)
		}
	}

	if _, err := uuid.Parse(cfg.HDXOwnerOrg); err != nil {
		return errors.Wrap(err, "HDX_OWNER_ORG is not a valid organisation id")
	}
	if _, err := uuid.Parse(cfg.HDXMaintainer); err != nil {
		return errors.Wrap(err, "HDX_MAINTAINER is not a valid user id")
	}

	if cfg.PublishConcurrency < 1 {
		return errors.New("PUBLISH_CONCURRENCY must be at least 1")
	}

	return nil
}
