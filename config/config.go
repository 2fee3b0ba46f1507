package config

import (
	"os"
	"strings"
	"time"

	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultMaxRequestBodySize = "10MB"

	defaultForcedSignOutDelay = 2 * time.Second
	defaultFeaturedLimit      = 6
	defaultHomeCategoryLimit  = 8
	defaultMaxPageSize        = 100
	defaultCurrency           = "NGN"
	defaultPaymentTimeout     = 15 * time.Second
	defaultMaxUploadSize      = 5 << 20
	defaultSessionPurge       = time.Hour
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts           struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	SecretKey struct {
		Access  string `json:"access" yaml:"access"`
		Refresh string `json:"refresh" yaml:"refresh"`
	} `json:"secretKey" yaml:"secretKey"`

	Auth *AuthConfig `json:"auth" yaml:"auth"`

	// Admin configuration for the admin console gate
	Admin *AdminConfig `json:"admin" yaml:"admin"`

	Catalog *CatalogConfig `json:"catalog" yaml:"catalog"`

	// Storage configuration for the product and category image buckets
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// Payment configuration for the hosted payment gateway
	Payment *PaymentConfig `json:"payment" yaml:"payment"`

	RateLimit *RateLimitConfig `json:"rateLimit" yaml:"rateLimit"`

	// Firebase configuration for push notifications
	Firebase *FirebaseConfig `json:"firebase" yaml:"firebase"`

	// QRCode configuration for order receipt codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`

	// PubSub configuration for order event publishing
	PubSub *PubSubConfig `json:"pubsub" yaml:"pubsub"`
}

// AuthConfig defines authentication-related configuration
type AuthConfig struct {
	BcryptCost        int           `json:"bcryptCost" yaml:"bcryptCost"`
	AccessTokenTTL    time.Duration `json:"accessTokenTtl" yaml:"accessTokenTtl"`
	RefreshTokenTTL   time.Duration `json:"refreshTokenTtl" yaml:"refreshTokenTtl"`
	MinPasswordLength int           `json:"minPasswordLength" yaml:"minPasswordLength"`

	// SessionPurgeInterval is how often the worker deletes expired and revoked sessions
	SessionPurgeInterval time.Duration `json:"sessionPurgeInterval" yaml:"sessionPurgeInterval"`
}

// AdminConfig defines how the admin gate treats non-admin sessions
type AdminConfig struct {
	// ForcedSignOutDelay is how long a denied session survives before it is revoked
	ForcedSignOutDelay time.Duration `json:"forcedSignOutDelay" yaml:"forcedSignOutDelay"`
}

// CatalogConfig defines storefront listing limits
type CatalogConfig struct {
	FeaturedLimit     int `json:"featuredLimit" yaml:"featuredLimit"`
	HomeCategoryLimit int `json:"homeCategoryLimit" yaml:"homeCategoryLimit"`
	MaxPageSize       int `json:"maxPageSize" yaml:"maxPageSize"`
}

// StorageConfig defines the object store buckets
type StorageConfig struct {
	// BucketURLs maps a bucket name (product-images, category-images) to a gocloud blob URL
	BucketURLs map[string]string `json:"bucketUrls" yaml:"bucketUrls"`

	// PublicBaseURL is prefixed to "<bucket>/<key>" when building public image URLs
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`

	MaxUploadSize int64 `json:"maxUploadSize" yaml:"maxUploadSize"`

	// ServeLocal mounts GET /static/:bucket/* on the API so file:// and mem://
	// buckets can be browsed in development
	ServeLocal bool `json:"serveLocal" yaml:"serveLocal"`
}

// PaymentConfig defines the Flutterwave gateway settings
type PaymentConfig struct {
	BaseURL     string        `json:"baseUrl" yaml:"baseUrl"`
	SecretKey   string        `json:"secretKey" yaml:"secretKey"`
	SecretHash  string        `json:"secretHash" yaml:"secretHash"`
	Currency    string        `json:"currency" yaml:"currency"`
	RedirectURL string        `json:"redirectUrl" yaml:"redirectUrl"`
	Timeout     time.Duration `json:"timeout" yaml:"timeout"`
}

// RateLimitConfig defines the per-client sign-in rate limit
type RateLimitConfig struct {
	RequestsPerSecond float64 `json:"requestsPerSecond" yaml:"requestsPerSecond"`
	Burst             int     `json:"burst" yaml:"burst"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`

	// SlowQuery is the duration above which a SQL statement is logged as slow
	SlowQuery time.Duration `json:"slowQuery" yaml:"slowQuery"`
}

// FirebaseConfig defines Firebase configuration for push notifications
type FirebaseConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
}

// PubSubConfig defines Pub/Sub configuration for event publishing
type PubSubConfig struct {
	// Provider type: "local" for local HTTP or "google" for Google Pub/Sub
	Provider string `json:"provider" yaml:"provider"`

	// Google Cloud project ID (for google provider)
	ProjectID string `json:"projectId" yaml:"projectId"`

	// Pub/Sub topic ID (for google provider)
	TopicID string `json:"topicId" yaml:"topicId"`

	// Local HTTP endpoint for development (for local provider)
	LocalEndpoint string `json:"localEndpoint" yaml:"localEndpoint"`
}

// New loads config.yaml from the working directory or a config/ directory up
// to two levels above it, so binaries and package tests find the same file.
func New() (*Config, error) {
	cfg, err := Load[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)
	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = replicasFromEnv(os.Getenv)
	}

	return cfg, nil
}

// applyDefaults fills the sections a deployment may leave out.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxRequestBodySize
	}

	if cfg.Auth == nil {
		cfg.Auth = &AuthConfig{}
	}
	if cfg.Auth.SessionPurgeInterval <= 0 {
		cfg.Auth.SessionPurgeInterval = defaultSessionPurge
	}

	if cfg.Admin == nil {
		cfg.Admin = &AdminConfig{}
	}
	if cfg.Admin.ForcedSignOutDelay <= 0 {
		cfg.Admin.ForcedSignOutDelay = defaultForcedSignOutDelay
	}

	if cfg.Catalog == nil {
		cfg.Catalog = &CatalogConfig{}
	}
	if cfg.Catalog.FeaturedLimit <= 0 {
		cfg.Catalog.FeaturedLimit = defaultFeaturedLimit
	}
	if cfg.Catalog.HomeCategoryLimit <= 0 {
		cfg.Catalog.HomeCategoryLimit = defaultHomeCategoryLimit
	}
	if cfg.Catalog.MaxPageSize <= 0 {
		cfg.Catalog.MaxPageSize = defaultMaxPageSize
	}

	if cfg.Payment == nil {
		cfg.Payment = &PaymentConfig{}
	}
	if cfg.Payment.Currency == "" {
		cfg.Payment.Currency = defaultCurrency
	}
	if cfg.Payment.Timeout <= 0 {
		cfg.Payment.Timeout = defaultPaymentTimeout
	}

	if cfg.Storage == nil {
		cfg.Storage = &StorageConfig{}
	}
	if cfg.Storage.MaxUploadSize <= 0 {
		cfg.Storage.MaxUploadSize = defaultMaxUploadSize
	}
}
