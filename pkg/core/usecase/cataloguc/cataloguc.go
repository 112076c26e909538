// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package cataloguc contains the catalog UseCase which prepares the
// public listing and detail views. Views are plain structs which are
// rendered by the adapters layer (as HTML pages, JSON documents, or
// CLI tables). Read failures do not fail a view; they are reported
// inside the view, so a page can show them inline.
package cataloguc

import (
	"context"
	"fmt"

	"github.com/momeni/car-dealer/pkg/core/filter"
	"github.com/momeni/car-dealer/pkg/core/log"
	"github.com/momeni/car-dealer/pkg/core/model"
	"github.com/momeni/car-dealer/pkg/core/usecase/appuc"
)

// DefaultPlaceholder is the image which is shown for a car having no
// images.
const DefaultPlaceholder = "https://images.unsplash.com/photo-1494905998402-395d579af36f?w=500"

// UseCase represents the catalog use case.
type UseCase struct {
	app *appuc.UseCase

	placeholder   string
	defaultSlides []model.ImageSlider
}

// New instantiates a catalog use case which reads the collections of
// the app application use case.
func New(app *appuc.UseCase, opts ...Option) (*UseCase, error) {
	uc := &UseCase{app: app}
	for _, opt := range opts {
		if err := opt(uc); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}
	if uc.placeholder == "" {
		uc.placeholder = DefaultPlaceholder
	}
	return uc, nil
}

// Placeholder returns the image which represents a car with no images.
func (uc *UseCase) Placeholder() string {
	return uc.placeholder
}

// ListingView is the state of the public listing page.
type ListingView struct {
	Filter  filter.State
	Options filter.OptionSet
	Cars    []model.Car // the filtered subset, in collection order
	Total   int         // size of the full collection

	Slides    []model.ImageSlider
	SlidesErr error

	// Err reports a failed car collection fetch. Cars is empty then.
	Err error
}

// Shown returns the number of cars which passed the filter.
func (v *ListingView) Shown() int {
	return len(v.Cars)
}

// Summary returns a text like "Showing 3 of 10 cars".
func (v *ListingView) Summary() string {
	return fmt.Sprintf("Showing %d of %d cars", v.Shown(), v.Total)
}

// Listing fetches the car and image slider collections through the
// gateway (as a page mount does) and builds the listing view for the
// s filter state. A failed slider fetch only hides the remote slides.
func (uc *UseCase) Listing(ctx context.Context, s filter.State) *ListingView {
	v := &ListingView{Filter: s.Normalize(), Cars: []model.Car{}}
	cars, err := uc.app.ReloadCars(ctx)
	if err != nil {
		log.Warn(ctx, "loading listing failed", log.Err("err", err))
		v.Err = err
	} else {
		v = ListingOf(cars, s)
	}
	v.Slides, v.SlidesErr = uc.slides(ctx)
	return v
}

func (uc *UseCase) slides(ctx context.Context) ([]model.ImageSlider, error) {
	slides, err := uc.app.ReloadSlides(ctx)
	if err != nil {
		log.Warn(ctx, "loading slides failed", log.Err("err", err))
		return uc.defaultSlides, err
	}
	if len(slides) == 0 {
		return uc.defaultSlides, nil
	}
	return slides, nil
}

// ListingOf builds a listing view from a collection which is supplied
// by the caller, without any fetch.
func ListingOf(cars []model.Car, s filter.State) *ListingView {
	s = s.Normalize()
	return &ListingView{
		Filter:  s,
		Options: filter.Options(cars),
		Cars:    filter.Apply(cars, s),
		Total:   len(cars),
	}
}

// DetailView is the state of a car detail page.
type DetailView struct {
	ID    model.ID
	Found bool
	Car   model.Car

	HasPrev, HasNext bool
	Prev, Next       model.ID

	Carousel Carousel

	// Err reports a failed car collection fetch.
	Err error
}

// Detail resolves the car having the given id from the full (not
// filtered) collection and prepares its neighbors for the previous
// and next navigation. The carousel is selected on its index-th image
// (1-based); zero or out of range indices are clamped.
func (uc *UseCase) Detail(ctx context.Context, id model.ID, index int) *DetailView {
	v := &DetailView{ID: id}
	cars, err := uc.app.Cars(ctx)
	if err != nil {
		log.Warn(ctx, "loading car failed",
			log.ID("id", id), log.Err("err", err))
		v.Err = err
		return v
	}
	car, i, ok := model.Find(cars, id)
	if !ok {
		return v
	}
	v.Found, v.Car = true, car
	if i > 0 {
		v.HasPrev, v.Prev = true, cars[i-1].ID
	}
	if i < len(cars)-1 {
		v.HasNext, v.Next = true, cars[i+1].ID
	}
	v.Carousel = NewCarousel(car, uc.placeholder)
	v.Carousel.Select(index)
	return v
}
