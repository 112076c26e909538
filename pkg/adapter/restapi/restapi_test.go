// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package restapi_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/momeni/car-dealer/internal/test/fakeapi"
	"github.com/momeni/car-dealer/pkg/adapter/restapi"
	"github.com/momeni/car-dealer/pkg/core/cerr"
	"github.com/momeni/car-dealer/pkg/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T, opts ...restapi.Option) (*restapi.Client, *fakeapi.Server) {
	t.Helper()
	api := fakeapi.New(t)
	c, err := restapi.New(strings.TrimSuffix(api.URL(), "/"), opts...)
	require.NoError(t, err)
	assert.Equal(t, api.URL(), c.BaseURL(), "trailing slash is appended")
	return c, api
}

func TestMissingBaseURL(t *testing.T) {
	_, err := restapi.New("  ")
	assert.ErrorIs(t, err, cerr.ErrMissingBaseURL)
}

func TestCarsRoundTrip(t *testing.T) {
	c, api := newClient(t)
	ctx := fakeapi.Context(t)
	api.SeedCars(model.Car{Brand: "Toyota", Model: "Camry", Year: 2020})

	cars, err := c.ListCars(ctx)
	require.NoError(t, err)
	require.Len(t, cars, 1)
	assert.Equal(t, model.ID("1"), cars[0].ID, "numeric IDs are decoded")

	d := model.CarDraft{
		Brand: "Honda", Model: "Civic", Year: 2018, Price: 12000,
		FuelType: model.FuelHybrid, Features: []string{"AC"},
	}
	car, err := c.CreateCar(ctx, d, fakeapi.Access)
	require.NoError(t, err)
	assert.Equal(t, d.WithID("2"), car)

	car.Price = 11000
	updated, err := c.UpdateCar(ctx, car, fakeapi.Access)
	require.NoError(t, err)
	assert.Equal(t, int64(11000), updated.Price)

	require.NoError(t, c.DeleteCar(ctx, "1", fakeapi.Access))
	assert.Equal(t, []model.Car{updated}, api.Cars())
	assert.Equal(t, 1, api.Calls(http.MethodDelete, "/api/cars/"))
}

func TestRemoteErrors(t *testing.T) {
	c, api := newClient(t)
	ctx := fakeapi.Context(t)

	_, err := c.CreateCar(ctx, model.CarDraft{}, "bad-token")
	var re *cerr.RemoteError
	require.True(t, errors.As(err, &re))
	assert.True(t, re.IsUnauthorized())
	assert.ErrorIs(t, err, cerr.ErrCreate)
	assert.EqualError(t, err, "failed to create car: 401 Unauthorized")

	api.Fail(http.MethodGet, "/api/cars/image-slider/", http.StatusInternalServerError)
	_, err = c.ListSlides(ctx)
	assert.ErrorIs(t, err, cerr.ErrFetch)
	assert.Equal(t, http.StatusBadGateway, cerr.StatusCode(err))

	_, err = c.UpdateCar(ctx, model.Car{ID: "404"}, fakeapi.Access)
	assert.ErrorIs(t, err, cerr.ErrUpdate)
	require.True(t, errors.As(err, &re))
	assert.Equal(t, http.StatusNotFound, re.StatusCode)
}

func TestTransportFailure(t *testing.T) {
	c, err := restapi.New("http://127.0.0.1:1/")
	require.NoError(t, err)
	_, err = c.ListCars(context.Background())
	assert.ErrorIs(t, err, cerr.ErrFetch)
	var re *cerr.RemoteError
	require.True(t, errors.As(err, &re))
	assert.Zero(t, re.StatusCode)
	assert.Error(t, re.Err)
}

func TestHungRequestHonorsContext(t *testing.T) {
	c, api := newClient(t)
	api.Hang()
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err := c.ListCars(ctx)
	assert.ErrorIs(t, err, cerr.ErrFetch)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestSlidesRoundTrip(t *testing.T) {
	c, api := newClient(t)
	ctx := fakeapi.Context(t)
	s, err := c.CreateSlide(ctx, model.SlideDraft{URL: "u", Title: "T"}, fakeapi.Access)
	require.NoError(t, err)
	s.Alt = "alt"
	s, err = c.UpdateSlide(ctx, s, fakeapi.Access)
	require.NoError(t, err)
	slides, err := c.ListSlides(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.ImageSlider{s}, slides)
	require.NoError(t, c.DeleteSlide(ctx, s.ID, fakeapi.Access))
	assert.Empty(t, api.Slides())
}

func TestImages(t *testing.T) {
	c, api := newClient(t)
	ctx := fakeapi.Context(t)
	img, err := c.UploadImage(ctx, model.ImageFile{
		Name:        "front.jpg",
		ContentType: "image/jpeg",
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader("jpeg-bytes")), nil
		},
	}, fakeapi.Access)
	require.NoError(t, err)
	assert.NotEmpty(t, img.ID)
	assert.True(t, strings.HasSuffix(img.URL, "/front.jpg"))
	assert.Equal(t, []byte("jpeg-bytes"), api.Uploads["front.jpg"])

	require.NoError(t, c.DeleteImage(ctx, img.ID, fakeapi.Access))
	err = c.DeleteImage(ctx, img.ID, fakeapi.Access)
	assert.ErrorIs(t, err, cerr.ErrDelete)
}

func TestLogin(t *testing.T) {
	c, _ := newClient(t)
	ctx := fakeapi.Context(t)
	tokens, err := c.Login(ctx, model.Credentials{
		Email: fakeapi.Email, Password: fakeapi.Password,
	})
	require.NoError(t, err)
	assert.Equal(t, model.Tokens{Access: fakeapi.Access, Refresh: fakeapi.Refresh}, tokens)

	_, err = c.Login(ctx, model.Credentials{Email: fakeapi.Email, Password: "x"})
	assert.ErrorIs(t, err, cerr.ErrLogin)

	c, _ = newClient(t, restapi.WithCredentialField("username"),
		restapi.WithTokenPath("/api/token/"))
	_, err = c.Login(ctx, model.Credentials{
		Email: fakeapi.Email, Password: fakeapi.Password,
	})
	assert.NoError(t, err)
}

func TestEmptyMutationResponsesAreRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodPost:
				if strings.HasSuffix(r.URL.Path, "/image/") {
					w.WriteHeader(http.StatusCreated)
					_, _ = w.Write([]byte(`{"id": 5}`))
					return
				}
				w.WriteHeader(http.StatusCreated)
			case http.MethodPut:
				w.WriteHeader(http.StatusNoContent)
			default:
				w.WriteHeader(http.StatusOK)
			}
		},
	))
	t.Cleanup(srv.Close)
	c, err := restapi.New(srv.URL)
	require.NoError(t, err)
	ctx := context.Background()

	_, err = c.CreateCar(ctx, model.CarDraft{Brand: "Toyota"}, "token")
	assert.ErrorIs(t, err, cerr.ErrCreate)
	assert.ErrorIs(t, err, restapi.ErrIncompleteResponse)
	assert.EqualError(t, err, "failed to create car: incomplete response: missing id")

	car, err := c.UpdateCar(ctx, model.Car{ID: "1", Brand: "Toyota"}, "token")
	assert.ErrorIs(t, err, cerr.ErrUpdate)
	assert.ErrorIs(t, err, restapi.ErrIncompleteResponse)
	assert.Zero(t, car, "the draft is not echoed back")

	_, err = c.CreateSlide(ctx, model.SlideDraft{URL: "u"}, "token")
	assert.ErrorIs(t, err, restapi.ErrIncompleteResponse)
	_, err = c.UpdateSlide(ctx, model.ImageSlider{ID: "1", URL: "u"}, "token")
	assert.ErrorIs(t, err, restapi.ErrIncompleteResponse)

	_, err = c.UploadImage(ctx, model.ImageFile{
		Name: "a.png", ContentType: "image/png",
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader("png")), nil
		},
	}, "token")
	assert.ErrorIs(t, err, cerr.ErrUpload)
	assert.ErrorIs(t, err, restapi.ErrIncompleteResponse)
}

func TestUpdateReturnsServerRecord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(
		func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"id": 1, "brand": "Honda"}`))
		},
	))
	t.Cleanup(srv.Close)
	c, err := restapi.New(srv.URL)
	require.NoError(t, err)
	car, err := c.UpdateCar(context.Background(),
		model.Car{ID: "1", Brand: "Toyota", Model: "Camry"}, "token")
	require.NoError(t, err)
	assert.Equal(t, model.Car{ID: "1", Brand: "Honda"}, car,
		"draft fields are not merged into the response")
}
