// Copyright (c) 2023-2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package routes contains all resource packages and facilitates
// instantiation and registration of the gateway, use case, and
// resource packages based on the user provided configuration settings.
package routes

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/momeni/car-dealer/pkg/adapter/config"
	"github.com/momeni/car-dealer/pkg/adapter/restapi"
	"github.com/momeni/car-dealer/pkg/adapter/restful/gin/adminrs"
	"github.com/momeni/car-dealer/pkg/adapter/restful/gin/catalogrs"
	"github.com/momeni/car-dealer/pkg/adapter/restful/gin/views"
	"github.com/momeni/car-dealer/pkg/core/log"
)

// Register instantiates the REST API gateway and the use cases based
// on the c configuration settings. The use cases share one application
// use case, so the collections which the admin resource reconciles are
// the ones which the catalog resource reads. Register instantiates the
// "resource" structs, from packages which are named like catalogrs, in
// order to adapt the use cases with the web requests. These resources
// are registered as request handlers using the e gin-gonic engine.
// The opts options are passed to the gateway (e.g., an HTTP client).
// Possible errors will be returned after possible wrapping.
func Register(
	ctx context.Context, e *gin.Engine, c *config.Config,
	opts ...restapi.Option,
) error {
	ucs, err := c.NewUseCases(opts...)
	if err != nil {
		return fmt.Errorf("creating use cases: %w", err)
	}
	site := views.Site{
		Business:    ucs.Contact.Business(),
		Currency:    ucs.Contact.Currency(),
		Placeholder: ucs.Catalog.Placeholder(),
	}
	e.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	catalogrs.Register(e, ucs.Catalog, ucs.Contact, site)
	adminrs.Register(e, ucs.Admin, ucs.Gateway, site, c.Gin.Cookies())
	log.Info(ctx, "routes are registered",
		log.Str("api", ucs.Gateway.BaseURL()))
	return nil
}
