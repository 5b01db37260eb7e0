package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI            string
	Port                string
	DBName              string
	PrincipalsColl      string
	CatalogColl         string
	GrantsColl          string
	OrdersColl          string
	ReadTimeout         time.Duration
	WriteTimeout        time.Duration
	ProofSecret         string
	ProofTTL            time.Duration
	BootstrapPrincipals []string
}

func LoadConfig() (*Config, error) {
	// Optional .env for local development; env vars win when both are set.
	_ = godotenv.Load()

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	cfg := &Config{
		MongoURI:            mongoURI,
		Port:                port,
		DBName:              getEnv("DB_NAME", "shopaccess_db"),
		PrincipalsColl:      getEnv("COLLECTION_PRINCIPALS", "principals"),
		CatalogColl:         getEnv("COLLECTION_CATALOG", "catalog_nodes"),
		GrantsColl:          getEnv("COLLECTION_GRANTS", "grants"),
		OrdersColl:          getEnv("COLLECTION_ORDERS", "orders"),
		ReadTimeout:         getEnvDuration("SERVER_READ_TIMEOUT", 10*time.Second),
		WriteTimeout:        getEnvDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
		ProofSecret:         os.Getenv("WALLET_PROOF_SECRET"),
		ProofTTL:            getEnvDuration("WALLET_PROOF_TTL", 15*time.Minute),
		BootstrapPrincipals: splitNonEmpty(os.Getenv("BOOTSTRAP_ADMIN_IDS")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.MongoURI == "" {
		return fmt.Errorf("MONGO_URI is required")
	}
	if c.ProofSecret == "" {
		return fmt.Errorf("WALLET_PROOF_SECRET is required")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	valStr := os.Getenv(key)
	if valStr == "" {
		return fallback
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		d, err := time.ParseDuration(valStr)
		if err == nil {
			return d
		}
		return fallback
	}
	return time.Duration(val) * time.Second
}

func splitNonEmpty(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
