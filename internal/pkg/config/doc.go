// Package config defines the typed settings consumed by the application
// (server port, database connection, logging, token signing) and the loader
// that populates them from a yaml file with environment overrides.
package config
