// Copyright (c) 2023-2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package config is an adapter which accepts yaml formatted config
// files from its users and allows the dealer to instantiate different
// components, from the adapter or use cases layers, using those loaded
// configuration settings.
// The parsed and validated configurations are passed to their ultimate
// components as a series of individual params (for the mandatory items)
// and a series of functional options (for the optional items), so they
// are validated once more by the relevant end-component (e.g., a
// UseCase instance).
package config

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/momeni/car-dealer/pkg/adapter/config/settings"
	"github.com/momeni/car-dealer/pkg/adapter/restapi"
	"github.com/momeni/car-dealer/pkg/core/cerr"
	"github.com/momeni/car-dealer/pkg/core/model"
	"github.com/momeni/car-dealer/pkg/core/usecase/cataloguc"
	"gopkg.in/yaml.v3"
)

// BaseURLEnv names the environment variable which overrides the
// api.base-url setting.
const BaseURLEnv = "BASE_URL"

// Config contains all settings which are required by different parts
// of the dealer, such as adapters or use cases. Optional settings are
// pointers, so missing items can be detected and filled by defaults.
type Config struct {
	API      API      // Remote REST API settings
	Gin      Gin      // Gin-Gonic instantiation settings
	Session  Session  // CLI session storage settings
	Business Business // Dealership contact information
	Catalog  Catalog  // Public catalog settings
	Logging  Logging  // slog handler settings
}

// API contains the remote REST API settings.
type API struct {
	BaseURL         string  `yaml:"base-url"`
	TokenPath       *string `yaml:"token-path,omitempty"`
	CredentialField *string `yaml:"credential-field,omitempty"`
}

// Session contains the CLI session settings.
type Session struct {
	// Path of the SQLite database file which keeps the CLI tokens.
	Path *string `yaml:"path,omitempty"`
}

// Business contains the dealership contact information.
type Business struct {
	Name     string
	Phone    string
	Email    string
	Currency *string `yaml:"currency,omitempty"`
}

// Catalog contains the public catalog settings.
type Catalog struct {
	PlaceholderImage *string `yaml:"placeholder-image,omitempty"`
}

// Default values of the optional settings.
var (
	defaultSessionPath  = "dealer-session.db"
	defaultCurrency     = string(model.USD)
	defaultAddress      = ":8080"
	defaultCookieMaxAge = settings.Duration(30 * 24 * time.Hour)
	minCookieMaxAge     = settings.Duration(time.Minute)
	maxCookieMaxAge     = settings.Duration(365 * 24 * time.Hour)
	defaultLogLevel     = "info"
	defaultLogFormat    = "text"
	defaultPlaceholder  = cataloguc.DefaultPlaceholder
	defaultTokenPath    = restapi.DefaultTokenPath
	defaultCredField    = restapi.DefaultCredentialField
)

// Load function loads, validates, and normalizes the configuration
// file and returns its settings as an instance of the Config struct.
// The BASE_URL environment variable (if set) overrides the base URL
// which is written in the configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading %q: %w", path, err)
	}
	return c, nil
}

// Parse decodes the YAML data (rejecting unknown fields), applies the
// BASE_URL environment variable, and validates the settings.
func Parse(data []byte) (*Config, error) {
	c := &Config{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil {
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}
	if u, ok := os.LookupEnv(BaseURLEnv); ok && u != "" {
		c.API.BaseURL = u
	}
	if err := c.ValidateAndNormalize(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return c, nil
}

// ValidateAndNormalize validates the configuration settings and fills
// the missing optional settings with their default values.
// A missing base URL is reported as cerr.ErrMissingBaseURL.
func (c *Config) ValidateAndNormalize() error {
	c.API.BaseURL = strings.TrimSpace(c.API.BaseURL)
	if c.API.BaseURL == "" {
		return cerr.ErrMissingBaseURL
	}
	settings.OverwriteNil(&c.API.TokenPath, &defaultTokenPath)
	settings.OverwriteNil(&c.API.CredentialField, &defaultCredField)
	settings.Nil2Zero(&c.Gin.Logger)
	settings.Nil2Zero(&c.Gin.Recovery)
	settings.Nil2Zero(&c.Gin.SecureCookies)
	settings.OverwriteNil(&c.Gin.Address, &defaultAddress)
	settings.OverwriteNil(&c.Gin.CookieMaxAge, &defaultCookieMaxAge)
	if err := settings.VerifyRange(
		&c.Gin.CookieMaxAge, &minCookieMaxAge, &maxCookieMaxAge,
	); err != nil {
		return fmt.Errorf("gin.cookie-max-age: %w", err)
	}
	settings.OverwriteNil(&c.Session.Path, &defaultSessionPath)
	settings.OverwriteNil(&c.Business.Currency, &defaultCurrency)
	cur, err := model.ParseCurrency(*c.Business.Currency)
	if err != nil {
		return fmt.Errorf("business.currency: %w", err)
	}
	*c.Business.Currency = string(cur)
	switch {
	case c.Business.Phone == "":
		return errors.New("business.phone is required")
	case c.Business.Email == "":
		return errors.New("business.email is required")
	}
	settings.OverwriteNil(&c.Catalog.PlaceholderImage, &defaultPlaceholder)
	settings.OverwriteNil(&c.Logging.Level, &defaultLogLevel)
	settings.OverwriteNil(&c.Logging.Format, &defaultLogFormat)
	if err := c.Logging.validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	return nil
}

// LogValue implements slog.LogValuer, reporting the settings which
// identify a running dealer.
func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("base-url", c.API.BaseURL),
		slog.String("address", *c.Gin.Address),
		slog.String("currency", *c.Business.Currency),
		slog.String("session", *c.Session.Path),
		slog.String("log-level", *c.Logging.Level),
	)
}

// Marshalled is the YAML form of a Config. Durations are rendered by
// their human-readable Marshal method.
type Marshalled struct {
	API API
	Gin struct {
		Address       *string `yaml:"address,omitempty"`
		Logger        *bool   `yaml:"logger,omitempty"`
		Recovery      *bool   `yaml:"recovery,omitempty"`
		SecureCookies *bool   `yaml:"secure-cookies,omitempty"`
		CookieMaxAge  *string `yaml:"cookie-max-age,omitempty"`
	}
	Session  Session
	Business Business
	Catalog  Catalog
	Logging  Logging
}

// MarshalYAML implements the yaml.Marshaler interface, encoding the
// Marshalled form of c.
func (c *Config) MarshalYAML() (interface{}, error) {
	return c.Marshal(), nil
}

// Marshal creates a Marshalled instance from c.
func (c *Config) Marshal() *Marshalled {
	m := &Marshalled{
		API:      c.API,
		Session:  c.Session,
		Business: c.Business,
		Catalog:  c.Catalog,
		Logging:  c.Logging,
	}
	m.Gin.Address = c.Gin.Address
	m.Gin.Logger = c.Gin.Logger
	m.Gin.Recovery = c.Gin.Recovery
	m.Gin.SecureCookies = c.Gin.SecureCookies
	m.Gin.CookieMaxAge = c.Gin.CookieMaxAge.Marshal()
	return m
}
