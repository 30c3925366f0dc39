// Package config loads and validates lumen.json project configuration.
package config
