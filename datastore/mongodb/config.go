/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package mongodb

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/suparena/docstore/errors"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvUsername = "DB_USERNAME"
	EnvPassword = "DB_PASSWORD"
	EnvHost     = "DB_URL"
)

// DefaultScheme is the connection scheme used when Config.Scheme is empty.
const DefaultScheme = "mongodb+srv"

// redactedPassword is the placeholder used when printing configurations.
const redactedPassword = "[REDACTED]"

// Config holds the connection settings for a MongoDB deployment. The three
// required values mirror the environment contract: a username, a password
// and the host fragment of the connection string.
type Config struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Host     string `yaml:"host"`

	// Scheme selects the connection string scheme. Defaults to
	// "mongodb+srv"; set to "mongodb" for deployments without SRV records.
	Scheme string `yaml:"scheme,omitempty"`
}

// ConfigFromEnv builds a Config from the process environment. A .env file in
// the working directory is loaded first if present. Each of DB_USERNAME,
// DB_PASSWORD and DB_URL is required; a missing variable is reported as an
// errors.MissingEnvError.
func ConfigFromEnv() (*Config, error) {
	// Best effort; the variables may already be exported.
	_ = godotenv.Load()

	cfg := &Config{}
	for _, v := range []struct {
		name   string
		target *string
	}{
		{EnvUsername, &cfg.Username},
		{EnvPassword, &cfg.Password},
		{EnvHost, &cfg.Host},
	} {
		val, ok := os.LookupEnv(v.name)
		if !ok || val == "" {
			return nil, errors.NewMissingEnvError(v.name)
		}
		*v.target = val
	}
	return cfg, nil
}

// Validate checks that all required connection values are present.
func (c *Config) Validate() error {
	if c.Username == "" {
		return errors.NewValidationError("username", "is required")
	}
	if c.Password == "" {
		return errors.NewValidationError("password", "is required")
	}
	if c.Host == "" {
		return errors.NewValidationError("host", "is required")
	}
	return nil
}

// URI assembles the connection string in the form
// scheme://<username>:<password>@<host>/ with URL-escaped credentials.
func (c *Config) URI() string {
	scheme := c.Scheme
	if scheme == "" {
		scheme = DefaultScheme
	}

	var uri strings.Builder
	uri.WriteString(scheme)
	uri.WriteString("://")
	uri.WriteString(url.QueryEscape(c.Username))
	uri.WriteString(":")
	uri.WriteString(url.QueryEscape(c.Password))
	uri.WriteString("@")
	uri.WriteString(c.Host)
	uri.WriteString("/")
	return uri.String()
}

// String returns a representation with the password redacted.
// Safe for logging and debugging.
func (c *Config) String() string {
	password := redactedPassword
	if c.Password == "" {
		password = ""
	}
	return fmt.Sprintf("MongoDB{host=%s, user=%s, password=%s}", c.Host, c.Username, password)
}
