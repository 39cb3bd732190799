// internal/config/database.go
package config

import (
	"strings"
)

// DSN builds the postgres connection string. The session timezone is
// pinned to UTC so revenue month bucketing never drifts with the host
// clock.
func (d *DatabaseConfig) DSN() string {
	parts := []string{
		"host=" + d.Host,
		"port=" + d.Port,
		"user=" + d.User,
		"password=" + d.Password,
		"dbname=" + d.Database,
		"sslmode=" + d.SSLMode,
		"TimeZone=UTC",
	}
	return strings.Join(parts, " ")
}

// RedactedDSN is the DSN with the password masked, safe for logs.
func (d *DatabaseConfig) RedactedDSN() string {
	return strings.Replace(d.DSN(), "password="+d.Password, "password=***", 1)
}
