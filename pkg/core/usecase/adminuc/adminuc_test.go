// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package adminuc_test

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/momeni/car-dealer/internal/test/memtokens"
	"github.com/momeni/car-dealer/pkg/core/cerr"
	"github.com/momeni/car-dealer/pkg/core/model"
	"github.com/momeni/car-dealer/pkg/core/usecase/adminuc"
	"github.com/momeni/car-dealer/pkg/core/usecase/appuc"
	"github.com/momeni/car-dealer/pkg/core/usecase/sessionuc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gateway is a recording fake of the remote gateway. Created records
// get the "srv-" ID prefix and an upper-cased color, so tests can tell
// server records from the submitted drafts.
type gateway struct {
	cars   []model.Car
	slides []model.ImageSlider
	calls  []string
	tokens []string
	err    error
}

func (g *gateway) record(call, token string) error {
	g.calls = append(g.calls, call)
	g.tokens = append(g.tokens, token)
	return g.err
}

func (g *gateway) ListCars(context.Context) ([]model.Car, error) {
	g.calls = append(g.calls, "ListCars")
	return g.cars, nil
}

func (g *gateway) ListSlides(context.Context) ([]model.ImageSlider, error) {
	g.calls = append(g.calls, "ListSlides")
	return g.slides, nil
}

func (g *gateway) CreateCar(_ context.Context, d model.CarDraft, token string) (model.Car, error) {
	if err := g.record("CreateCar", token); err != nil {
		return model.Car{}, err
	}
	d.Color = strings.ToUpper(d.Color)
	return d.WithID("srv-1"), nil
}

func (g *gateway) UpdateCar(_ context.Context, c model.Car, token string) (model.Car, error) {
	if err := g.record("UpdateCar", token); err != nil {
		return model.Car{}, err
	}
	c.Color = strings.ToUpper(c.Color)
	return c, nil
}

func (g *gateway) DeleteCar(_ context.Context, _ model.ID, token string) error {
	return g.record("DeleteCar", token)
}

func (g *gateway) CreateSlide(_ context.Context, d model.SlideDraft, token string) (model.ImageSlider, error) {
	if err := g.record("CreateSlide", token); err != nil {
		return model.ImageSlider{}, err
	}
	return d.WithID("srv-s"), nil
}

func (g *gateway) UpdateSlide(_ context.Context, s model.ImageSlider, token string) (model.ImageSlider, error) {
	return s, g.record("UpdateSlide", token)
}

func (g *gateway) DeleteSlide(_ context.Context, _ model.ID, token string) error {
	return g.record("DeleteSlide", token)
}

func (g *gateway) UploadImage(_ context.Context, f model.ImageFile, token string) (model.Image, error) {
	if err := g.record("UploadImage", token); err != nil {
		return model.Image{}, err
	}
	return model.Image{ID: "img-1", URL: "https://cdn.example/" + f.Name}, nil
}

func (g *gateway) DeleteImage(_ context.Context, _ model.ID, token string) error {
	return g.record("DeleteImage", token)
}

type fixture struct {
	gw      *gateway
	app     *appuc.UseCase
	uc      *adminuc.UseCase
	storage *memtokens.Storage
	sess    *sessionuc.Store
}

func newFixture(t *testing.T, tokens model.Tokens) *fixture {
	t.Helper()
	ctx := context.Background()
	f := &fixture{
		gw: &gateway{
			cars: []model.Car{
				{ID: "1", Brand: "Toyota", Color: "White"},
				{ID: "2", Brand: "Honda", Color: "Red"},
			},
			slides: []model.ImageSlider{{ID: "s1", URL: "a"}},
		},
		storage: memtokens.New(tokens),
	}
	f.app = appuc.New(f.gw, f.gw)
	uc, err := adminuc.New(f.app, f.gw, f.gw, f.gw,
		adminuc.WithPlaceholder(placeholder))
	require.NoError(t, err)
	f.uc = uc
	f.sess, err = sessionuc.New(ctx, f.storage)
	require.NoError(t, err)
	return f
}

var loggedIn = model.Tokens{Access: "tok", Refresh: "ref"}

func TestSubmitCarCreatesAndReconciles(t *testing.T) {
	f := newFixture(t, loggedIn)
	ctx := context.Background()
	_, _, err := f.uc.Dashboard(ctx)
	require.NoError(t, err)

	car, err := f.uc.SubmitCar(ctx, f.sess, "", validForm())
	require.NoError(t, err)
	assert.Equal(t, model.ID("srv-1"), car.ID)
	assert.Equal(t, "WHITE", car.Color)
	assert.Equal(t, []string{"tok"}, f.gw.tokens[:1])

	cars, _, err := f.uc.Dashboard(ctx)
	require.NoError(t, err)
	require.Len(t, cars, 3)
	assert.Equal(t, car, cars[2], "server record is appended, not the draft")
}

func TestSubmitCarUpdatesInPlace(t *testing.T) {
	f := newFixture(t, loggedIn)
	ctx := context.Background()
	_, _, err := f.uc.Dashboard(ctx)
	require.NoError(t, err)

	form := validForm()
	form.Color = "blue"
	car, err := f.uc.SubmitCar(ctx, f.sess, "1", form)
	require.NoError(t, err)
	assert.Equal(t, model.ID("1"), car.ID)

	cars, _, _ := f.uc.Dashboard(ctx)
	require.Len(t, cars, 2)
	assert.Equal(t, "BLUE", cars[0].Color)
	assert.Equal(t, model.ID("2"), cars[1].ID)
}

func TestMissingTokenSendsNothing(t *testing.T) {
	f := newFixture(t, model.Tokens{})
	ctx := context.Background()

	_, err := f.uc.SubmitCar(ctx, f.sess, "", validForm())
	assert.ErrorIs(t, err, cerr.ErrSessionExpired)
	err = f.uc.DeleteCar(ctx, f.sess, "1", true)
	assert.ErrorIs(t, err, cerr.ErrSessionExpired)
	_, err = f.uc.SubmitSlide(ctx, f.sess, "", adminuc.SlideForm{URL: "u"})
	assert.ErrorIs(t, err, cerr.ErrSessionExpired)
	err = f.uc.DeleteImage(ctx, f.sess, "img-1")
	assert.ErrorIs(t, err, cerr.ErrSessionExpired)
	assert.Equal(t, http.StatusUnauthorized, cerr.StatusCode(err))
	assert.Empty(t, f.gw.calls, "no network call without a token")
}

func TestFailedMutationKeepsCollection(t *testing.T) {
	f := newFixture(t, loggedIn)
	ctx := context.Background()
	_, _, err := f.uc.Dashboard(ctx)
	require.NoError(t, err)

	f.gw.err = &cerr.RemoteError{
		Op: cerr.OpCreate, Resource: "car",
		StatusCode: http.StatusBadRequest, Status: "400 Bad Request",
	}
	_, err = f.uc.SubmitCar(ctx, f.sess, "", validForm())
	assert.ErrorIs(t, err, cerr.ErrCreate)
	assert.EqualError(t, err, "failed to create car: 400 Bad Request")
	assert.True(t, f.sess.IsAuthenticated())

	cars, _, _ := f.uc.Dashboard(ctx)
	assert.Len(t, cars, 2)
}

func TestUnauthorizedExpiresSession(t *testing.T) {
	f := newFixture(t, loggedIn)
	ctx := context.Background()
	f.gw.err = &cerr.RemoteError{
		Op: cerr.OpDelete, Resource: "car",
		StatusCode: http.StatusUnauthorized, Status: "401 Unauthorized",
	}
	err := f.uc.DeleteCar(ctx, f.sess, "1", true)
	assert.ErrorIs(t, err, cerr.ErrDelete)
	assert.ErrorIs(t, err, cerr.ErrSessionExpired)
	assert.False(t, f.sess.IsAuthenticated())
	assert.Equal(t, model.Tokens{}, f.storage.Tokens())
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	f := newFixture(t, loggedIn)
	ctx := context.Background()
	_, _, err := f.uc.Dashboard(ctx)
	require.NoError(t, err)

	err = f.uc.DeleteCar(ctx, f.sess, "1", false)
	assert.ErrorIs(t, err, adminuc.ErrNotConfirmed)
	assert.Equal(t, []string{"ListCars", "ListSlides"}, f.gw.calls)

	require.NoError(t, f.uc.DeleteCar(ctx, f.sess, "1", true))
	cars, _, _ := f.uc.Dashboard(ctx)
	require.Len(t, cars, 1)
	assert.Equal(t, model.ID("2"), cars[0].ID)
}

func TestSlides(t *testing.T) {
	f := newFixture(t, loggedIn)
	ctx := context.Background()
	_, _, err := f.uc.Dashboard(ctx)
	require.NoError(t, err)

	s, err := f.uc.SubmitSlide(ctx, f.sess, "",
		adminuc.SlideForm{URL: "b", Title: "New"})
	require.NoError(t, err)
	assert.Equal(t, model.ID("srv-s"), s.ID)

	require.NoError(t, f.uc.DeleteSlide(ctx, f.sess, "s1", true))
	_, slides, err := f.uc.Dashboard(ctx)
	require.NoError(t, err)
	assert.Equal(t, []model.ImageSlider{s}, slides)
}

func TestUploadImage(t *testing.T) {
	f := newFixture(t, loggedIn)
	ctx := context.Background()
	file := model.ImageFile{
		Name:        "car.png",
		ContentType: "image/png",
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader("png")), nil
		},
	}
	img, err := f.uc.UploadImage(ctx, f.sess, file)
	require.NoError(t, err)
	assert.Equal(t, model.Image{ID: "img-1", URL: "https://cdn.example/car.png"}, img)

	file.ContentType = "text/plain"
	_, err = f.uc.UploadImage(ctx, f.sess, file)
	assert.ErrorIs(t, err, adminuc.ErrNotAnImage)
	assert.Equal(t, []string{"UploadImage"}, f.gw.calls)
}

func TestLookups(t *testing.T) {
	f := newFixture(t, loggedIn)
	ctx := context.Background()
	car, err := f.uc.Car(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "Honda", car.Brand)
	_, err = f.uc.Car(ctx, "9")
	assert.ErrorIs(t, err, adminuc.ErrNotFound)
	assert.Equal(t, http.StatusNotFound, cerr.StatusCode(err))

	s, err := f.uc.Slide(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "a", s.URL)
	_, err = f.uc.Slide(ctx, "s9")
	assert.ErrorIs(t, err, adminuc.ErrNotFound)
}
