package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"

	"github.com/wiradata/treasury_app/internal/core/domain"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool
	JWTSecret    string
	JWTIssuer    string

	// RateLimit is a ulule/limiter formatted rate, e.g. "100-M".
	RateLimit string

	// Approval gate predicate.
	ApprovalEnabled         bool
	ApprovalAmountThreshold decimal.Decimal
	ApprovalKinds           map[domain.TransactionKind]bool

	// RevisionReasonMinLen is the minimum reason length accepted when
	// writing into a soft-closed accounting period.
	RevisionReasonMinLen int
}

// LoadConfig loads configuration from environment variables and a .env file
// if present. Environment variables win over .env values.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("JWT_SECRET", "a-very-secret-key-should-be-longer-and-random")
	viper.SetDefault("JWT_ISSUER", "treasury-app")
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("APPROVAL_ENABLED", false)
	viper.SetDefault("APPROVAL_AMOUNT_THRESHOLD", "0")
	viper.SetDefault("APPROVAL_KINDS", "")
	viper.SetDefault("REVISION_REASON_MIN_LEN", 10)

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	cfg.JWTSecret = viper.GetString("JWT_SECRET")
	if cfg.JWTSecret == "a-very-secret-key-should-be-longer-and-random" {
		log.Println("Warning: JWT_SECRET not set. Using default insecure key.")
	}
	cfg.JWTIssuer = viper.GetString("JWT_ISSUER")

	cfg.ApprovalEnabled = viper.GetBool("APPROVAL_ENABLED")

	thresholdStr := viper.GetString("APPROVAL_AMOUNT_THRESHOLD")
	threshold, err := decimal.NewFromString(thresholdStr)
	if err != nil {
		threshold = decimal.Zero
		log.Printf("Warning: Invalid value for APPROVAL_AMOUNT_THRESHOLD ('%s'). Defaulting to 0.\n", thresholdStr)
	}
	cfg.ApprovalAmountThreshold = threshold

	// Comma-separated kinds, e.g. "DISBURSEMENT,TRANSFER_OUT". Empty = all kinds.
	cfg.ApprovalKinds = map[domain.TransactionKind]bool{}
	for _, raw := range strings.Split(viper.GetString("APPROVAL_KINDS"), ",") {
		kind := domain.TransactionKind(strings.TrimSpace(raw))
		if kind == "" {
			continue
		}
		if !kind.Valid() {
			log.Printf("Warning: Unknown transaction kind '%s' in APPROVAL_KINDS, ignored.\n", kind)
			continue
		}
		cfg.ApprovalKinds[kind] = true
	}

	cfg.RevisionReasonMinLen = viper.GetInt("REVISION_REASON_MIN_LEN")
	if cfg.RevisionReasonMinLen < 0 {
		cfg.RevisionReasonMinLen = 0
	}

	return cfg, nil
}
