// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package views

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/momeni/car-dealer/pkg/core/cerr"
	"github.com/momeni/car-dealer/pkg/core/filter"
	"github.com/momeni/car-dealer/pkg/core/model"
	"github.com/momeni/car-dealer/pkg/core/usecase/adminuc"
	"github.com/momeni/car-dealer/pkg/core/usecase/cataloguc"
	"github.com/momeni/car-dealer/pkg/core/usecase/contactuc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

var site = Site{
	Business: contactuc.Business{
		Name:  "Premier Auto Sales",
		Phone: "+1234567890",
		Email: "info@premierautosales.com",
	},
	Currency:    model.USD,
	Placeholder: "https://img.example/none.jpg",
}

var camry = model.Car{
	ID: "7", Brand: "Toyota", Model: "Camry", Year: 2020, Price: 25000,
	Mileage: 15000, FuelType: model.FuelPetrol, Color: "White",
	Transmission: model.TransmissionAutomatic, BodyType: model.BodySedan,
	Features: []string{"AC", "Navigation", "Bluetooth", "Sunroof", "Heated Seats"},
	Images: []model.Image{
		{ID: "a", URL: "https://img.example/a.jpg"},
		{ID: "b", URL: "https://img.example/b.jpg"},
	},
}

func render(t *testing.T, n g.Node) string {
	t.Helper()
	var b strings.Builder
	require.NoError(t, n.Render(&b))
	return b.String()
}

func TestListingPage(t *testing.T) {
	v := &cataloguc.ListingView{
		Filter:  filter.Default(),
		Options: filter.Options([]model.Car{camry}),
		Cars:    []model.Car{camry},
		Total:   3,
		Slides:  cataloguc.DefaultSlides(),
	}
	html := render(t, ListingPage(site, v))
	assert.True(t, strings.HasPrefix(strings.ToLower(html), "<!doctype html>"))
	assert.Contains(t, html, "<title>Find Your Perfect Car | Premier Auto Sales</title>")
	assert.Contains(t, html, "Showing 1 of 3 cars")
	assert.Contains(t, html, "$25,000")
	assert.Contains(t, html, "15,000 miles")
	assert.Contains(t, html, "+2 more")
	assert.Contains(t, html, `href="/cars/7"`)
	assert.Contains(t, html, "All Brands")
	assert.Contains(t, html, "Min Price ($)")
	assert.Contains(t, html, "Clear all filters")
	assert.Contains(t, html, "Trusted Partner")
	assert.Contains(t, html, `href="/contact/whatsapp"`)
	assert.NotContains(t, html, "No cars match")

	v.Cars = nil
	html = render(t, ListingPage(site, v))
	assert.Contains(t, html, "No cars match your current filters.")
}

func TestListingPageError(t *testing.T) {
	v := &cataloguc.ListingView{
		Filter: filter.Default(),
		Err: fmt.Errorf("listing cars: %w", &cerr.RemoteError{
			Op: cerr.OpFetch, Resource: "cars", StatusCode: 503,
			Status: "503 Service Unavailable",
		}),
	}
	html := render(t, ListingPage(site, v))
	assert.Contains(t, html,
		"Error: failed to fetch cars: 503 Service Unavailable")
	assert.Contains(t, html, "Please try again later.")
	assert.NotContains(t, html, `id="summary"`)
}

func TestDetailPage(t *testing.T) {
	v := &cataloguc.DetailView{
		ID: camry.ID, Found: true, Car: camry,
		HasPrev: true, Prev: "6",
		Carousel: cataloguc.NewCarousel(camry, site.Placeholder),
	}
	html := render(t, DetailPage(site, v))
	assert.Contains(t, html, `<p class="price" id="price">$25,000</p>`)
	assert.Contains(t, html, `href="/cars/6" rel="prev"`)
	assert.Contains(t, html, "Next car")
	assert.Contains(t, html, "Location: ")
	assert.Contains(t, html, "<li>Sunroof</li>")
	assert.Contains(t, html, `href="/cars/7/contact/email"`)

	html = render(t, DetailPage(site, &cataloguc.DetailView{ID: "42"}))
	assert.Contains(t, html, "Car not found")
	assert.Contains(t, html, "Back to Listings")
}

func TestCarouselFragment(t *testing.T) {
	c := cataloguc.NewCarousel(camry, site.Placeholder)
	html := render(t, CarouselFragment(camry.ID, &c))
	assert.Contains(t, html, `alt="Image 1 of 2"`)
	assert.Contains(t, html, `hx-get="/cars/7/carousel?i=2"`)
	assert.Contains(t, html, `hx-target="#carousel"`)
	assert.Contains(t, html, `href="/cars/7?i=2"`)

	single := cataloguc.NewCarousel(model.Car{ID: "8"}, site.Placeholder)
	html = render(t, CarouselFragment("8", &single))
	assert.Contains(t, html, site.Placeholder)
	assert.NotContains(t, html, "hx-get", "a single image has no arrows")
}

func TestCarFormPage(t *testing.T) {
	f := adminuc.EmptyCarForm()
	f.Brand, f.Year = "Toyota", "twenty"
	_, err := f.Parse(site.Placeholder)
	require.Error(t, err)
	html := render(t, CarFormPage(site, "", f, err))
	assert.Contains(t, html, "Add New Car")
	assert.Contains(t, html, `action="/admin/cars"`)
	assert.Contains(t, html, `value="Toyota"`)
	assert.Contains(t, html, "Year must be a whole number")
	assert.Contains(t, html, "Model is required")
	assert.NotContains(t, html, `role="alert"`, "field errors are not alerts")

	html = render(t, CarFormPage(site, "7", adminuc.CarFormFrom(camry),
		errors.New("failed to update car: 500 Internal Server Error")))
	assert.Contains(t, html, "Edit Car")
	assert.Contains(t, html, `action="/admin/cars/7"`)
	assert.Contains(t, html, `<option value="Sedan" selected>`)
	assert.Contains(t, html, `role="alert"`)
	assert.Contains(t, html, "AC, Navigation, Bluetooth")
}

func TestDashboardPage(t *testing.T) {
	slides := []model.ImageSlider{{ID: "s1", URL: "https://img.example/s.jpg", Title: "Sale"}}
	html := render(t, DashboardPage(site, []model.Car{camry}, slides, nil))
	assert.Contains(t, html, `href="/admin/cars/7/edit"`)
	assert.Contains(t, html, `action="/admin/cars/7/delete"`)
	assert.Contains(t, html, `action="/admin/slides/s1/delete"`)
	assert.Contains(t, html, `name="confirm" value="yes"`)
	assert.Contains(t, html, "hx-confirm")

	html = render(t, DashboardPage(site, nil, nil, cerr.ErrSessionExpired))
	assert.Contains(t, html, "Your session has expired. Please sign in again.")
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "deletion is not confirmed",
		message(cerr.BadRequest(adminuc.ErrNotConfirmed)))
	re := &cerr.RemoteError{
		Op: cerr.OpCreate, Resource: "car", StatusCode: 400,
		Status: "400 Bad Request",
	}
	assert.Equal(t, "failed to create car: 400 Bad Request",
		message(fmt.Errorf("saving: %w", re)))
	assert.Nil(t, ErrorAlert(nil))
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Mileage", label("mileage"))
	assert.Equal(t, "Fuel type", label("fuelType"))
	assert.Equal(t, "URL", label("url"))
}
