// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig covers framework-level settings (HTTP ports and TLS,
// logging level and format, CORS, request limits); AppConfig is everything
// specific to MentorHub.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Length of the temporary password issued by forgot-password.
	TempPasswordLength int

	// StaticDir is the directory of portal frontend assets served at /static.
	StaticDir string
}
