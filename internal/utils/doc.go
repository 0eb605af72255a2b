// Package utils exposes the ambient helpers shared by the CLI: a Viper-backed
// ConfigurationLoader, a zap LoggerFactory, and a FlushingWriter for report output.
package utils
