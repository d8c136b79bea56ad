package config

import (
	"fmt"
	"log"

	"restaurant-saas-api/docstore"

	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

// Config carries every runtime knob. Values come from an optional config
// file with environment variables layered on top.
type Config struct {
	Port    string `mapstructure:"port"`
	GinMode string `mapstructure:"gin_mode"`
	DBPath  string `mapstructure:"db_path"`

	JWTSecret string `mapstructure:"jwt_secret"`

	// Tenant-admin and platform-admin credentials. These are configured
	// comparisons, not a real credential system.
	AdminUsername      string `mapstructure:"admin_username"`
	AdminPassword      string `mapstructure:"admin_password"`
	SuperAdminEmail    string `mapstructure:"super_admin_email"`
	SuperAdminPassword string `mapstructure:"super_admin_password"`
}

var (
	App   *Config
	Store *docstore.Store

	// JWTSecret used to sign session tokens
	JWTSecret []byte

	// bcrypt digests of the configured passwords, computed once at boot so
	// login compares constant-time and the plaintext never sticks around.
	AdminPasswordHash      []byte
	SuperAdminPasswordHash []byte
)

// Load reads configuration from ./config.yaml (if present) and the
// environment, fills defaults, and prepares credential hashes.
func Load(cfgFile string) (*Config, error) {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv() // Read in environment variables that match

	viper.SetDefault("port", "8080")
	viper.SetDefault("gin_mode", "debug")
	viper.SetDefault("db_path", "restaurant_saas.db")
	viper.SetDefault("jwt_secret", "restaurant_saas_super_secret_2024")
	viper.SetDefault("admin_username", "admin")
	viper.SetDefault("admin_password", "admin123")
	viper.SetDefault("super_admin_email", "admin@restaurantsaas.com")
	viper.SetDefault("super_admin_password", "admin123")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	JWTSecret = []byte(cfg.JWTSecret)

	var err error
	AdminPasswordHash, err = bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	SuperAdminPasswordHash, err = bcrypt.GenerateFromPassword([]byte(cfg.SuperAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash super-admin password: %w", err)
	}

	App = &cfg
	return &cfg, nil
}

// InitStore opens the document store and publishes the global handle.
func InitStore(cfg *Config) {
	store, err := docstore.Open(cfg.DBPath)
	if err != nil {
		log.Fatal("Failed to open document store:", err)
	}
	Store = store
	log.Println("✅ Document store opened and migrated successfully")
}
