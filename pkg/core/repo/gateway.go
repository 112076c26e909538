// Copyright (c) 2023-2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package repo specifies the expected interfaces which the use cases
// layer needs from its collaborators in the adapters layer. The remote
// REST API is reached through the Cars, Slides, Images, and
// Authenticator interfaces, while local durable state (the admin
// token pair) is kept by a TokenStorage. The Pool, Conn, and Tx
// interfaces abstract a local database for the TokenStorage
// implementations which need one.
package repo

import (
	"context"

	"github.com/momeni/car-dealer/pkg/core/model"
)

// CarsReader fetches the full car collection. No filtering is
// performed by the remote side.
type CarsReader interface {
	ListCars(ctx context.Context) ([]model.Car, error)
}

// CarsWriter mutates car records. Each method needs a bearer access
// token and returns the canonical record which the server produced.
type CarsWriter interface {
	CreateCar(ctx context.Context, d model.CarDraft, token string) (model.Car, error)
	UpdateCar(ctx context.Context, c model.Car, token string) (model.Car, error)
	DeleteCar(ctx context.Context, id model.ID, token string) error
}

// Cars combines the reading and writing parts of the cars gateway.
type Cars interface {
	CarsReader
	CarsWriter
}

// SlidesReader fetches the homepage image slider collection.
type SlidesReader interface {
	ListSlides(ctx context.Context) ([]model.ImageSlider, error)
}

// SlidesWriter mutates image slider records.
type SlidesWriter interface {
	CreateSlide(ctx context.Context, d model.SlideDraft, token string) (model.ImageSlider, error)
	UpdateSlide(ctx context.Context, s model.ImageSlider, token string) (model.ImageSlider, error)
	DeleteSlide(ctx context.Context, id model.ID, token string) error
}

// Slides combines the reading and writing parts of the slides gateway.
type Slides interface {
	SlidesReader
	SlidesWriter
}

// Images uploads and removes pictures.
type Images interface {
	UploadImage(ctx context.Context, f model.ImageFile, token string) (model.Image, error)
	DeleteImage(ctx context.Context, id model.ID, token string) error
}

// Authenticator exchanges admin credentials for a token pair.
type Authenticator interface {
	Login(ctx context.Context, c model.Credentials) (model.Tokens, error)
}

// Gateway is the complete remote data gateway.
type Gateway interface {
	Cars
	Slides
	Images
	Authenticator
}
