package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

var ErrMissingRequiredValue = errors.New("missing required value")
var ErrInvalidValue = errors.New("invalid value")

type environment string

const (
	production  environment = "production"
	staging     environment = "staging"
	development environment = "development"
)

const (
	defaultPort              = "8080"
	defaultPromoCacheTTL     = 30 * time.Second
	defaultPromoFetchTimeout = 5 * time.Second
)

type Config struct {
	port              string
	sentryDSN         string
	promoAPIBaseURL   string
	promoCacheTTL     time.Duration
	promoFetchTimeout time.Duration
	simulatedLatency  time.Duration
	otelEnabled       bool
	gcpProject        string
	env               environment
}

func (c *Config) Port() string {
	return c.port
}

func (c *Config) SentryDSN() string {
	return c.sentryDSN
}

// Base URL of the mock API consumed through the promotional content cache
func (c *Config) PromoAPIBaseURL() string {
	return c.promoAPIBaseURL
}

func (c *Config) PromoCacheTTL() time.Duration {
	return c.promoCacheTTL
}

func (c *Config) PromoFetchTimeout() time.Duration {
	return c.promoFetchTimeout
}

func (c *Config) SimulatedLatency() time.Duration {
	return c.simulatedLatency
}

func (c *Config) OTelEnabled() bool {
	return c.otelEnabled
}

func (c *Config) GCPProject() string {
	return c.gcpProject
}

func (c *Config) IsProduction() bool {
	return c.env == production
}

func (c *Config) IsStaging() bool {
	return c.env == staging
}

func (c *Config) IsDevelopment() bool {
	return c.env == development
}

// Return a string representation suitable for logging etc
func (c *Config) NonSensitiveString() string {
	return fmt.Sprintf(
		"Config{env: %s, port: %s, promoAPIBaseURL: %s, promoCacheTTL: %s, promoFetchTimeout: %s, simulatedLatency: %s, otelEnabled: %t, ...}",
		string(c.env),
		c.port,
		c.promoAPIBaseURL,
		c.promoCacheTTL,
		c.promoFetchTimeout,
		c.simulatedLatency,
		c.otelEnabled,
	)
}

func durationFromEnv(key string, fallback time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}

	duration, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s (%s): %w", ErrInvalidValue, key, raw, err)
	}
	if duration < 0 {
		return 0, fmt.Errorf("%w: %s (%s) must not be negative", ErrInvalidValue, key, raw)
	}

	return duration, nil
}

func ConfigFromEnv() (Config, error) {
	missingKey := func(key string) (Config, error) {
		return Config{}, fmt.Errorf("%w: %s", ErrMissingRequiredValue, key)
	}

	var env environment
	rawEnv, ok := os.LookupEnv("SKILLFORGE_ENVIRONMENT")
	if !ok {
		return missingKey("SKILLFORGE_ENVIRONMENT")
	}
	switch rawEnv {
	case "production":
		env = production
	case "staging":
		env = staging
	case "development":
		env = development
	default:
		return Config{}, fmt.Errorf("%w: SKILLFORGE_ENVIRONMENT (%s)", ErrInvalidValue, rawEnv)
	}
	if string(env) == "" {
		panic("logic error: env is empty")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}
	if _, err := strconv.ParseUint(port, 10, 16); err != nil {
		return Config{}, fmt.Errorf("%w: PORT (%s)", ErrInvalidValue, port)
	}

	sentryDSN := os.Getenv("SENTRY_DSN")
	promoAPIBaseURL := os.Getenv("PROMO_API_BASE_URL")
	gcpProject := os.Getenv("GCP_PROJECT")

	if env == production || env == staging {
		if sentryDSN == "" {
			return missingKey("SENTRY_DSN")
		}
		if promoAPIBaseURL == "" {
			return missingKey("PROMO_API_BASE_URL")
		}
	}

	if promoAPIBaseURL == "" {
		// The mock API is served by this same process
		promoAPIBaseURL = fmt.Sprintf("http://localhost:%s/api", port)
	}
	parsedBaseURL, err := url.Parse(promoAPIBaseURL)
	if err != nil || parsedBaseURL.Scheme == "" || parsedBaseURL.Host == "" {
		return Config{}, fmt.Errorf("%w: PROMO_API_BASE_URL (%s)", ErrInvalidValue, promoAPIBaseURL)
	}

	promoCacheTTL, err := durationFromEnv("PROMO_CACHE_TTL", defaultPromoCacheTTL)
	if err != nil {
		return Config{}, err
	}
	if promoCacheTTL == 0 {
		return Config{}, fmt.Errorf("%w: PROMO_CACHE_TTL must be positive", ErrInvalidValue)
	}
	promoFetchTimeout, err := durationFromEnv("PROMO_FETCH_TIMEOUT", defaultPromoFetchTimeout)
	if err != nil {
		return Config{}, err
	}
	if promoFetchTimeout == 0 {
		return Config{}, fmt.Errorf("%w: PROMO_FETCH_TIMEOUT must be positive", ErrInvalidValue)
	}
	simulatedLatency, err := durationFromEnv("SIMULATED_LATENCY", 0)
	if err != nil {
		return Config{}, err
	}

	otelEnabled := false
	if rawOTelEnabled := os.Getenv("OTEL_ENABLED"); rawOTelEnabled != "" {
		otelEnabled, err = strconv.ParseBool(rawOTelEnabled)
		if err != nil {
			return Config{}, fmt.Errorf("%w: OTEL_ENABLED (%s)", ErrInvalidValue, rawOTelEnabled)
		}
	}

	return Config{
		port:              port,
		sentryDSN:         sentryDSN,
		promoAPIBaseURL:   promoAPIBaseURL,
		promoCacheTTL:     promoCacheTTL,
		promoFetchTimeout: promoFetchTimeout,
		simulatedLatency:  simulatedLatency,
		otelEnabled:       otelEnabled,
		gcpProject:        gcpProject,
		env:               env,
	}, nil
}
