// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package config

import (
	"context"
	"fmt"

	"github.com/momeni/car-dealer/pkg/adapter/db/sqlite"
	"github.com/momeni/car-dealer/pkg/adapter/db/sqlite/tokenrp"
	"github.com/momeni/car-dealer/pkg/adapter/restapi"
	"github.com/momeni/car-dealer/pkg/core/model"
	"github.com/momeni/car-dealer/pkg/core/usecase/adminuc"
	"github.com/momeni/car-dealer/pkg/core/usecase/appuc"
	"github.com/momeni/car-dealer/pkg/core/usecase/cataloguc"
	"github.com/momeni/car-dealer/pkg/core/usecase/contactuc"
)

// NewGateway instantiates the REST API client. Extra options (e.g.,
// a custom HTTP client in tests) are applied after the configured ones.
func (c *Config) NewGateway(opts ...restapi.Option) (*restapi.Client, error) {
	opts = append([]restapi.Option{
		restapi.WithTokenPath(*c.API.TokenPath),
		restapi.WithCredentialField(*c.API.CredentialField),
	}, opts...)
	gw, err := restapi.New(c.API.BaseURL, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating REST API client: %w", err)
	}
	return gw, nil
}

// UseCases groups the use cases which are shared by the web and CLI
// surfaces.
type UseCases struct {
	Gateway *restapi.Client
	App     *appuc.UseCase
	Catalog *cataloguc.UseCase
	Admin   *adminuc.UseCase
	Contact *contactuc.UseCase
}

// NewUseCases instantiates the gateway and all use cases which use it.
func (c *Config) NewUseCases(opts ...restapi.Option) (*UseCases, error) {
	gw, err := c.NewGateway(opts...)
	if err != nil {
		return nil, err
	}
	app := appuc.New(gw, gw)
	catalog, err := cataloguc.New(app,
		cataloguc.WithPlaceholder(*c.Catalog.PlaceholderImage),
		cataloguc.WithDefaultSlides(cataloguc.DefaultSlides()...),
	)
	if err != nil {
		return nil, fmt.Errorf("creating catalog use case: %w", err)
	}
	admin, err := adminuc.New(app, gw, gw, gw,
		adminuc.WithPlaceholder(*c.Catalog.PlaceholderImage),
	)
	if err != nil {
		return nil, fmt.Errorf("creating admin use case: %w", err)
	}
	contact, err := c.NewContact()
	if err != nil {
		return nil, err
	}
	return &UseCases{
		Gateway: gw,
		App:     app,
		Catalog: catalog,
		Admin:   admin,
		Contact: contact,
	}, nil
}

// NewContact instantiates the contact use case.
func (c *Config) NewContact() (*contactuc.UseCase, error) {
	uc, err := contactuc.New(contactuc.Business{
		Name:  c.Business.Name,
		Phone: c.Business.Phone,
		Email: c.Business.Email,
	}, model.Currency(*c.Business.Currency))
	if err != nil {
		return nil, fmt.Errorf("creating contact use case: %w", err)
	}
	return uc, nil
}

// OpenTokenStorage opens the SQLite session database of the CLI. The
// returned closer must be called when the storage is not needed.
func (c *Config) OpenTokenStorage(
	ctx context.Context,
) (*tokenrp.Repo, func() error, error) {
	pool, err := sqlite.NewPool(ctx, *c.Session.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %q: %w", *c.Session.Path, err)
	}
	r, err := tokenrp.New(ctx, pool)
	if err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("creating token storage: %w", err)
	}
	return r, pool.Close, nil
}
