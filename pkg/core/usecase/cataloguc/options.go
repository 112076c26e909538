// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package cataloguc

import (
	"errors"
	"net/url"

	"github.com/momeni/car-dealer/pkg/core/model"
)

// Option is a functional option for the catalog use case.
type Option func(uc *UseCase) error

// WithPlaceholder configures the image URL which represents a car
// having no images. It may be passed to the New() function.
func WithPlaceholder(u string) Option {
	return func(uc *UseCase) error {
		if _, err := url.ParseRequestURI(u); err != nil {
			return errors.New("placeholder is not an absolute URL")
		}
		if uc.placeholder != "" {
			return errors.New("placeholder is already configured")
		}
		uc.placeholder = u
		return nil
	}
}

// WithDefaultSlides configures the slides which are shown when the
// remote image slider collection is empty or can not be fetched.
func WithDefaultSlides(slides ...model.ImageSlider) Option {
	return func(uc *UseCase) error {
		if uc.defaultSlides != nil {
			return errors.New("default slides are already configured")
		}
		uc.defaultSlides = slides
		return nil
	}
}

// DefaultSlides returns the homepage slides which are shown when the
// remote image slider collection is empty.
func DefaultSlides() []model.ImageSlider {
	return []model.ImageSlider{
		{
			ID:          "default-1",
			URL:         "https://images.unsplash.com/photo-1705747401901-28363172fe7e?w=1080",
			Alt:         "Luxury Car Showroom",
			Title:       "Premium Collection",
			Description: "Discover our carefully curated selection of luxury vehicles",
		},
		{
			ID:          "default-2",
			URL:         "https://images.unsplash.com/photo-1644749700856-a82a92828a1b?w=1080",
			Alt:         "Modern Car Dealership",
			Title:       "Expert Service",
			Description: "Professional guidance from our experienced team",
		},
		{
			ID:          "default-3",
			URL:         "https://images.unsplash.com/photo-1696176559269-c944fb2ec40f?w=1080",
			Alt:         "Premium Cars Collection",
			Title:       "Quality Assured",
			Description: "Every vehicle undergoes thorough inspection and certification",
		},
		{
			ID:          "default-4",
			URL:         "https://images.unsplash.com/photo-1749222152514-b819f229db99?w=1080",
			Alt:         "Automotive Business",
			Title:       "Trusted Partner",
			Description: "Your reliable partner in finding the perfect vehicle",
		},
	}
}
