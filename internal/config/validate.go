package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535 (got %d)", c.Server.Port)
	}

	if err := validatePrincipal("parts", c.Auth.PartsUsername, c.Auth.PartsSecretHash); err != nil {
		return err
	}
	if err := validatePrincipal("records", c.Auth.RecordsUsername, c.Auth.RecordsSecretHash); err != nil {
		return err
	}

	if c.Auth.PartsUsername == c.Auth.RecordsUsername {
		return fmt.Errorf("auth: parts and records principals must have distinct usernames")
	}

	return nil
}

func validatePrincipal(name, username, hash string) error {
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("auth.%s_username must not be blank", name)
	}
	if !strings.HasPrefix(hash, "$2") {
		return fmt.Errorf("auth.%s_secret_hash must be a bcrypt hash", name)
	}
	return nil
}
