// Copyright (c) 2024-2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package appuc contains the application UseCase which maintains the
// top-level application state, that is, the car and image slider
// collections as they were last fetched from the remote API and
// reconciled with the records which the admin use cases produced.
// The listing, detail, and dashboard views read these collections,
// while only the admin use cases mutate them. Collections are replaced
// atomically (copy on write), so a reader may keep using a collection
// which it has obtained without any locking.
package appuc

import (
	"context"
	"fmt"
	"sync"

	"github.com/momeni/car-dealer/pkg/core/log"
	"github.com/momeni/car-dealer/pkg/core/model"
	"github.com/momeni/car-dealer/pkg/core/repo"
)

// UseCase represents an application use case. It holds the readers
// of the remote gateway, so it can load a collection on demand.
type UseCase struct {
	carsReader   repo.CarsReader
	slidesReader repo.SlidesReader

	// rwlock is locked for writing whenever a new collection should be
	// published and is locked for reading by the getter methods.
	rwlock sync.RWMutex

	cars   collection[model.Car]
	slides collection[model.ImageSlider]
}

// collection is one published collection. Each fetch takes a ticket
// before sending its request and its result is published only if no
// later ticket (of another fetch or a mutation) is published already.
// This way, a slow fetch may not override a newer collection.
type collection[T model.Identified] struct {
	items     []T
	loaded    bool
	tickets   uint64
	published uint64
}

// New instantiates an application use case object. Collections are
// empty and not loaded until their first Load or Reload call.
func New(cars repo.CarsReader, slides repo.SlidesReader) *UseCase {
	return &UseCase{carsReader: cars, slidesReader: slides}
}

func (c *collection[T]) ticket() uint64 {
	c.tickets++
	return c.tickets
}

func (c *collection[T]) publish(t uint64, items []T) bool {
	if t < c.published {
		return false
	}
	c.items, c.loaded, c.published = items, true, t
	return true
}

// reconcile publishes the f result of the loaded items. An unloaded
// collection stays unloaded, but its in-flight fetches are outdated,
// so the next reader fetches a collection containing the mutation.
func (c *collection[T]) reconcile(f func([]T) []T) {
	t := c.ticket()
	if !c.loaded {
		c.published = t
		return
	}
	c.publish(t, f(c.items))
}

// ReloadCars fetches the full car collection, publishes it (unless a
// newer collection is published meanwhile), and returns the fetched
// collection.
func (app *UseCase) ReloadCars(ctx context.Context) ([]model.Car, error) {
	app.rwlock.Lock()
	t := app.cars.ticket()
	app.rwlock.Unlock()
	cars, err := app.carsReader.ListCars(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing cars: %w", err)
	}
	app.rwlock.Lock()
	ok := app.cars.publish(t, cars)
	app.rwlock.Unlock()
	if !ok {
		log.Debug(ctx, "stale cars collection is not published")
	}
	return cars, nil
}

// ReloadSlides fetches the image slider collection like ReloadCars.
func (app *UseCase) ReloadSlides(
	ctx context.Context,
) ([]model.ImageSlider, error) {
	app.rwlock.Lock()
	t := app.slides.ticket()
	app.rwlock.Unlock()
	slides, err := app.slidesReader.ListSlides(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing slides: %w", err)
	}
	app.rwlock.Lock()
	ok := app.slides.publish(t, slides)
	app.rwlock.Unlock()
	if !ok {
		log.Debug(ctx, "stale slides collection is not published")
	}
	return slides, nil
}

// Cars returns the published car collection, loading it through
// ReloadCars if it is not loaded yet.
// The returned slice must not be modified.
func (app *UseCase) Cars(ctx context.Context) ([]model.Car, error) {
	app.rwlock.RLock()
	cars, loaded := app.cars.items, app.cars.loaded
	app.rwlock.RUnlock()
	if loaded {
		return cars, nil
	}
	return app.ReloadCars(ctx)
}

// Slides returns the published image slider collection, loading it
// through ReloadSlides if it is not loaded yet.
// The returned slice must not be modified.
func (app *UseCase) Slides(
	ctx context.Context,
) ([]model.ImageSlider, error) {
	app.rwlock.RLock()
	slides, loaded := app.slides.items, app.slides.loaded
	app.rwlock.RUnlock()
	if loaded {
		return slides, nil
	}
	return app.ReloadSlides(ctx)
}

// ApplyCar reconciles the server-returned car with the published
// collection, replacing the record with the same ID or appending it.
func (app *UseCase) ApplyCar(car model.Car) {
	app.rwlock.Lock()
	defer app.rwlock.Unlock()
	app.cars.reconcile(func(cars []model.Car) []model.Car {
		return model.Apply(cars, car)
	})
}

// RemoveCar drops the car having the given id from the published
// collection, keeping the order of the other cars.
func (app *UseCase) RemoveCar(id model.ID) {
	app.rwlock.Lock()
	defer app.rwlock.Unlock()
	app.cars.reconcile(func(cars []model.Car) []model.Car {
		return model.Remove(cars, id)
	})
}

// ApplySlide reconciles the server-returned slide with the published
// collection.
func (app *UseCase) ApplySlide(s model.ImageSlider) {
	app.rwlock.Lock()
	defer app.rwlock.Unlock()
	app.slides.reconcile(func(slides []model.ImageSlider) []model.ImageSlider {
		return model.Apply(slides, s)
	})
}

// RemoveSlide drops the slide having the given id.
func (app *UseCase) RemoveSlide(id model.ID) {
	app.rwlock.Lock()
	defer app.rwlock.Unlock()
	app.slides.reconcile(func(slides []model.ImageSlider) []model.ImageSlider {
		return model.Remove(slides, id)
	})
}
