// Command admintoken mints a bearer token for the administrative survey routes
package main

import (
	"fmt"
	"os"

	"github.com/legalpulse/survey-api/config"
	"github.com/legalpulse/survey-api/pkg/jwt"
	"github.com/spf13/pflag"
)

func main() {
	subject := pflag.StringP("subject", "s", "", "who the token is issued to, e.g. an email address")
	ttlHours := pflag.Int("ttl-hours", 0, "token lifetime in hours (defaults to ADMIN_TOKEN_TTL_HOURS)")
	pflag.Parse()

	if *subject == "" {
		fmt.Fprintln(os.Stderr, "--subject is required")
		pflag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if !cfg.AdminAuthEnabled() {
		fmt.Fprintln(os.Stderr, "ADMIN_JWT_SECRET is not set")
		os.Exit(1)
	}

	ttl := cfg.Admin.TokenTTLHours
	if *ttlHours > 0 {
		ttl = *ttlHours
	}

	token, err := jwt.NewTokenManager(cfg.Admin.JWTSecret, cfg.Admin.JWTIssuer, ttl).GenerateToken(*subject, jwt.RoleAdmin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to generate token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
}
