// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package adminuc contains the admin UseCase which creates, updates,
// and deletes the car and image slider records, and uploads images.
// Every action is guarded by a Session: a missing or expired access
// token fails the action with cerr.ErrSessionExpired before anything
// is sent to the remote API. A successful mutation is reconciled with
// the collections of the application use case using the canonical
// record which the server returned (never the submitted draft), while
// a failed mutation leaves those collections untouched.
package adminuc

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/momeni/car-dealer/pkg/core/cerr"
	"github.com/momeni/car-dealer/pkg/core/log"
	"github.com/momeni/car-dealer/pkg/core/model"
	"github.com/momeni/car-dealer/pkg/core/repo"
	"github.com/momeni/car-dealer/pkg/core/usecase/appuc"
)

// Session is the part of the session store which protected actions
// need. It is implemented by the sessionuc.Store type.
type Session interface {
	// AccessToken returns the bearer token or cerr.ErrSessionExpired.
	AccessToken(ctx context.Context) (string, error)

	// Expire logs the session out after the remote API rejected its
	// access token.
	Expire(ctx context.Context) error
}

// UseCase represents the admin use case.
type UseCase struct {
	app    *appuc.UseCase
	cars   repo.CarsWriter
	slides repo.SlidesWriter
	images repo.Images

	placeholder string
}

// New instantiates an admin use case which mutates records through
// the given gateway parts and reconciles the app collections.
func New(
	app *appuc.UseCase,
	cars repo.CarsWriter,
	slides repo.SlidesWriter,
	images repo.Images,
	opts ...Option,
) (*UseCase, error) {
	uc := &UseCase{app: app, cars: cars, slides: slides, images: images}
	for _, opt := range opts {
		if err := opt(uc); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}
	return uc, nil
}

var (
	// ErrNotConfirmed indicates a delete which was not confirmed.
	ErrNotConfirmed = errors.New("deletion is not confirmed")

	// ErrNotAnImage indicates an upload whose MIME type is not image/*.
	ErrNotAnImage = errors.New("only image files can be uploaded")

	// ErrNotFound indicates that an edited record does not exist.
	ErrNotFound = errors.New("record not found")
)

// Dashboard returns the car and image slider collections which the
// admin dashboard lists. They are loaded once, if not loaded already.
func (uc *UseCase) Dashboard(
	ctx context.Context,
) ([]model.Car, []model.ImageSlider, error) {
	cars, err := uc.app.Cars(ctx)
	if err != nil {
		return nil, nil, err
	}
	slides, err := uc.app.Slides(ctx)
	if err != nil {
		return cars, nil, err
	}
	return cars, slides, nil
}

// Car returns the id car of the loaded collection, e.g., for filling
// the edit form. A missing car is reported by a 404 cerr.Error.
func (uc *UseCase) Car(ctx context.Context, id model.ID) (model.Car, error) {
	cars, err := uc.app.Cars(ctx)
	if err != nil {
		return model.Car{}, err
	}
	car, _, ok := model.Find(cars, id)
	if !ok {
		return model.Car{}, cerr.NotFound(ErrNotFound)
	}
	return car, nil
}

// Slide returns the id image slider entry like Car.
func (uc *UseCase) Slide(
	ctx context.Context, id model.ID,
) (model.ImageSlider, error) {
	slides, err := uc.app.Slides(ctx)
	if err != nil {
		return model.ImageSlider{}, err
	}
	s, _, ok := model.Find(slides, id)
	if !ok {
		return model.ImageSlider{}, cerr.NotFound(ErrNotFound)
	}
	return s, nil
}

// SubmitCar saves the car form. A zero editing ID creates a new car,
// otherwise the editing car is updated. The returned car is the record
// which the server returned.
func (uc *UseCase) SubmitCar(
	ctx context.Context, sess Session, editing model.ID, form CarForm,
) (model.Car, error) {
	token, err := sess.AccessToken(ctx)
	if err != nil {
		return model.Car{}, err
	}
	d, err := form.Parse(uc.placeholder)
	if err != nil {
		return model.Car{}, err
	}
	var car model.Car
	if editing.IsZero() {
		car, err = uc.cars.CreateCar(ctx, d, token)
	} else {
		car, err = uc.cars.UpdateCar(ctx, d.WithID(editing), token)
	}
	if err != nil {
		return model.Car{}, uc.failed(ctx, sess, err)
	}
	uc.app.ApplyCar(car)
	log.Info(ctx, "car is saved", log.ID("id", car.ID))
	return car, nil
}

// DeleteCar removes the id car. Nothing is sent unless confirmed.
func (uc *UseCase) DeleteCar(
	ctx context.Context, sess Session, id model.ID, confirmed bool,
) error {
	if !confirmed {
		return cerr.BadRequest(ErrNotConfirmed)
	}
	token, err := sess.AccessToken(ctx)
	if err != nil {
		return err
	}
	if err := uc.cars.DeleteCar(ctx, id, token); err != nil {
		return uc.failed(ctx, sess, err)
	}
	uc.app.RemoveCar(id)
	log.Info(ctx, "car is deleted", log.ID("id", id))
	return nil
}

// SubmitSlide saves the image slider form like SubmitCar.
func (uc *UseCase) SubmitSlide(
	ctx context.Context, sess Session, editing model.ID, form SlideForm,
) (model.ImageSlider, error) {
	token, err := sess.AccessToken(ctx)
	if err != nil {
		return model.ImageSlider{}, err
	}
	d, err := form.Parse()
	if err != nil {
		return model.ImageSlider{}, err
	}
	var s model.ImageSlider
	if editing.IsZero() {
		s, err = uc.slides.CreateSlide(ctx, d, token)
	} else {
		s, err = uc.slides.UpdateSlide(ctx, d.WithID(editing), token)
	}
	if err != nil {
		return model.ImageSlider{}, uc.failed(ctx, sess, err)
	}
	uc.app.ApplySlide(s)
	log.Info(ctx, "slide is saved", log.ID("id", s.ID))
	return s, nil
}

// DeleteSlide removes the id slide. Nothing is sent unless confirmed.
func (uc *UseCase) DeleteSlide(
	ctx context.Context, sess Session, id model.ID, confirmed bool,
) error {
	if !confirmed {
		return cerr.BadRequest(ErrNotConfirmed)
	}
	token, err := sess.AccessToken(ctx)
	if err != nil {
		return err
	}
	if err := uc.slides.DeleteSlide(ctx, id, token); err != nil {
		return uc.failed(ctx, sess, err)
	}
	uc.app.RemoveSlide(id)
	log.Info(ctx, "slide is deleted", log.ID("id", id))
	return nil
}

// UploadImage uploads f and returns its server assigned ID and URL.
// Picked, dropped, and pasted files are all uploaded by this method.
func (uc *UseCase) UploadImage(
	ctx context.Context, sess Session, f model.ImageFile,
) (model.Image, error) {
	if !strings.HasPrefix(f.ContentType, "image/") {
		return model.Image{}, cerr.BadRequest(ErrNotAnImage)
	}
	token, err := sess.AccessToken(ctx)
	if err != nil {
		return model.Image{}, err
	}
	img, err := uc.images.UploadImage(ctx, f, token)
	if err != nil {
		return model.Image{}, uc.failed(ctx, sess, err)
	}
	log.Info(ctx, "image is uploaded",
		log.ID("id", img.ID), log.Str("name", f.Name))
	return img, nil
}

// DeleteImage removes the id image from the remote storage.
func (uc *UseCase) DeleteImage(
	ctx context.Context, sess Session, id model.ID,
) error {
	token, err := sess.AccessToken(ctx)
	if err != nil {
		return err
	}
	if err := uc.images.DeleteImage(ctx, id, token); err != nil {
		return uc.failed(ctx, sess, err)
	}
	return nil
}

// failed expires sess if err shows that the remote API rejected its
// access token, so the caller is sent to the login page.
func (uc *UseCase) failed(ctx context.Context, sess Session, err error) error {
	var re *cerr.RemoteError
	if errors.As(err, &re) && re.IsUnauthorized() {
		return errors.Join(err, sess.Expire(ctx))
	}
	return err
}
