package config

import "os"

// SQLitePath is the checkbook journal file, CHECKBOOK_DB or "checkbook.db".
func SQLitePath() string {
	return lookupString("CHECKBOOK_DB", "checkbook.db")
}

// AuditLogPath is where the checkbook writes its rotated audit log.
func AuditLogPath() string {
	return lookupString("CHECKBOOK_AUDIT_LOG", "checkbook-audit.log")
}

// UsePostgres reports whether the checkbook journal should live in Postgres
// rather than in the local SQLite file.
func UsePostgres() bool {
	if _, ok := os.LookupEnv("DATABASE_URL"); ok {
		return true
	}
	_, ok := os.LookupEnv("POSTGRES_HOST")
	return ok
}
