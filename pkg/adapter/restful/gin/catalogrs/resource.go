// Copyright (c) 2023-2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package catalogrs realizes the public catalog resource, allowing the
// listing, detail, carousel, and contact requests to be accepted and
// delegated to the catalog and contact use cases respectively.
package catalogrs

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/momeni/car-dealer/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/car-dealer/pkg/adapter/restful/gin/views"
	"github.com/momeni/car-dealer/pkg/core/cerr"
	"github.com/momeni/car-dealer/pkg/core/usecase/cataloguc"
	"github.com/momeni/car-dealer/pkg/core/usecase/contactuc"
)

type resource struct {
	catalog *cataloguc.UseCase
	contact *contactuc.UseCase
	site    views.Site
}

// ErrCarNotFound indicates a request for a car which does not exist.
var ErrCarNotFound = errors.New("car not found")

// Register instantiates a resource adapting the catalog and contact
// use case instances with the relevant requests including:
//  1. GET request to / for the filtered listing page,
//  2. GET request to /cars/:id for the car detail page,
//  3. GET request to /cars/:id/carousel for the carousel fragment,
//  4. GET request to /cars/:id/contact/:channel and /contact/:channel
//     in order to be redirected to a WhatsApp, Viber, or email link.
func Register(
	r gin.IRouter,
	catalog *cataloguc.UseCase,
	contact *contactuc.UseCase,
	site views.Site,
) {
	rs := &resource{catalog: catalog, contact: contact, site: site}
	r.GET("/", rs.Listing)
	r.GET("/cars/:id", rs.Detail)
	r.GET("/cars/:id/carousel", rs.Carousel)
	r.GET("/cars/:id/contact/:channel", rs.CarContact)
	r.GET("/contact/:channel", rs.Contact)
}

func (rs *resource) Listing(c *gin.Context) {
	s, ok := rs.DserFilter(c)
	if !ok {
		return
	}
	v := rs.catalog.Listing(c, s)
	code := http.StatusOK
	if v.Err != nil {
		code = cerr.StatusCode(v.Err)
	}
	serdser.Respond(c, code, SerListing(v), views.ListingPage(rs.site, v))
}

func (rs *resource) Detail(c *gin.Context) {
	req, ok := rs.DserDetailReq(c)
	if !ok {
		return
	}
	v := rs.catalog.Detail(c, req.ID, req.Index)
	switch {
	case v.Err != nil:
		serdser.Respond(c, cerr.StatusCode(v.Err), errBody(v.Err),
			views.DetailPage(rs.site, v))
	case !v.Found:
		serdser.Respond(c, http.StatusNotFound, errBody(ErrCarNotFound),
			views.NotFoundPage(rs.site))
	default:
		serdser.Respond(c, http.StatusOK, SerDetail(v),
			views.DetailPage(rs.site, v))
	}
}

func (rs *resource) Carousel(c *gin.Context) {
	req, ok := rs.DserDetailReq(c)
	if !ok {
		return
	}
	v := rs.catalog.Detail(c, req.ID, req.Index)
	switch {
	case v.Err != nil:
		serdser.SerErr(c, v.Err)
	case !v.Found:
		serdser.SerErr(c, cerr.NotFound(ErrCarNotFound))
	default:
		serdser.Respond(c, http.StatusOK, SerCarousel(&v.Carousel),
			views.CarouselFragment(v.ID, &v.Carousel))
	}
}

func (rs *resource) CarContact(c *gin.Context) {
	ch, ok := rs.DserChannel(c)
	if !ok {
		return
	}
	req, ok := rs.DserDetailReq(c)
	if !ok {
		return
	}
	v := rs.catalog.Detail(c, req.ID, 0)
	switch {
	case v.Err != nil:
		serdser.SerErr(c, v.Err)
	case !v.Found:
		serdser.SerErr(c, cerr.NotFound(ErrCarNotFound))
	default:
		link, err := rs.contact.Link(ch, v.Car)
		rs.redirect(c, link, err)
	}
}

func (rs *resource) Contact(c *gin.Context) {
	ch, ok := rs.DserChannel(c)
	if !ok {
		return
	}
	link, err := rs.contact.GeneralLink(ch)
	rs.redirect(c, link, err)
}

func (rs *resource) redirect(c *gin.Context, link string, err error) {
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	if serdser.WantsJSON(c) {
		c.JSON(http.StatusOK, gin.H{"url": link})
		return
	}
	c.Redirect(http.StatusFound, link)
}
