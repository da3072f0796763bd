package config

// Config struct holds application configuration
// This is a simple way to make config accessible globally.
// A more advanced approach might use dependency injection.
type Config struct {
	JWTSecret        string
	StoreBackend     string // "sheets", "postgres" or "memory"
	SpreadsheetID    string
	GoogleCredsJSON  string
	DatabaseURL      string
	GeminiAPIKey     string
	OperatorEmail    string
	OperatorPassHash string // bcrypt hash of the operator password
}

// AppConfig holds the application-wide configuration
var AppConfig Config
