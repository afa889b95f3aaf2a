package config

import (
	"os"
	"strings"
	"time"
)

const defaultAddr = ":8080"

func BasePath() string {
	return os.Getenv("APP_BASE_PATH")
}

// Addr is the listen address of the game server, APP_ADDR or ":8080".
func Addr() string {
	return lookupString("APP_ADDR", defaultAddr)
}

// CorsOrigins splits APP_CORS_ORIGINS on commas. Empty means any origin.
func CorsOrigins() []string {
	var origins []string
	for _, origin := range strings.Split(os.Getenv("APP_CORS_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

// SessionTTL is how long a finished game stays fetchable, in minutes from
// SESSION_TTL_MIN (default 30). Zero keeps them forever.
func SessionTTL() (time.Duration, error) {
	minutes, err := lookupInt("SESSION_TTL_MIN", 30)
	if err != nil {
		return 0, err
	}
	return time.Duration(minutes) * time.Minute, nil
}
