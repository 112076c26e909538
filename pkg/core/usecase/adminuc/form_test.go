// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package adminuc_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/momeni/car-dealer/pkg/core/cerr"
	"github.com/momeni/car-dealer/pkg/core/model"
	"github.com/momeni/car-dealer/pkg/core/usecase/adminuc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const placeholder = "https://img.example/default.jpg"

func validForm() adminuc.CarForm {
	return adminuc.CarForm{
		Brand:        "Toyota",
		Model:        "Camry",
		Year:         " 2020 ",
		Price:        "25000",
		Mileage:      "30000",
		FuelType:     "Petrol",
		Transmission: "Automatic",
		BodyType:     "Sedan",
		Color:        "White",
		Location:     "Tokyo",
		Description:  "Clean",
		Features:     "AC, , Navigation ,Sunroof,",
	}
}

func TestCarFormParse(t *testing.T) {
	d, err := validForm().Parse(placeholder)
	require.NoError(t, err)
	exp := model.CarDraft{
		Brand:        "Toyota",
		Model:        "Camry",
		Year:         2020,
		Price:        25000,
		Mileage:      30000,
		FuelType:     model.FuelPetrol,
		Transmission: model.TransmissionAutomatic,
		BodyType:     model.BodySedan,
		Color:        "White",
		Location:     "Tokyo",
		Description:  "Clean",
		Features:     []string{"AC", "Navigation", "Sunroof"},
		Image:        placeholder,
	}
	if diff := cmp.Diff(exp, d); diff != "" {
		t.Errorf("unexpected draft (-want +got):\n%s", diff)
	}
}

func TestCarFormRejectsMalformedNumbers(t *testing.T) {
	f := validForm()
	f.Year = "20x0"
	f.Price = "12.5"
	f.Mileage = ""
	f.FuelType = "Steam"
	_, err := f.Parse(placeholder)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, cerr.StatusCode(err))
	var fe adminuc.FieldErrors
	require.True(t, errors.As(err, &fe))
	assert.ErrorIs(t, fe["year"], adminuc.ErrMalformedNumber)
	assert.ErrorIs(t, fe["price"], adminuc.ErrMalformedNumber)
	assert.ErrorIs(t, fe["mileage"], adminuc.ErrRequired)
	assert.ErrorIs(t, fe["fuelType"], model.ErrUnknownEnumValue)
	assert.Len(t, fe, 4)
	assert.ErrorIs(t, err, adminuc.ErrMalformedNumber)
}

func TestCarFormRoundTrip(t *testing.T) {
	car := model.Car{
		ID: "9", Brand: "Honda", Model: "Civic", Year: 2018,
		Price: 12000, Mileage: 50000, FuelType: model.FuelHybrid,
		Transmission: model.TransmissionManual, BodyType: model.BodyHatchback,
		Color: "Red", Location: "Osaka",
		Features: []string{"AC", "Navigation"}, Image: "civic.jpg",
	}
	f := adminuc.CarFormFrom(car)
	assert.Equal(t, "AC, Navigation", f.Features)
	d, err := f.Parse(placeholder)
	require.NoError(t, err)
	if diff := cmp.Diff(car.Draft(), d); diff != "" {
		t.Errorf("edit form changed the car (-want +got):\n%s", diff)
	}
}

func TestEmptyCarForm(t *testing.T) {
	f := adminuc.EmptyCarForm()
	assert.Equal(t, "Petrol", f.FuelType)
	assert.Empty(t, f.Brand)
	_, err := f.Parse(placeholder)
	assert.ErrorIs(t, err, adminuc.ErrRequired)
}

func TestSlideFormParse(t *testing.T) {
	_, err := adminuc.SlideForm{Title: "x"}.Parse()
	assert.ErrorIs(t, err, adminuc.ErrRequired)

	s := model.ImageSlider{ID: "4", URL: "u", Alt: "a", Title: "t"}
	d, err := adminuc.SlideFormFrom(s).Parse()
	require.NoError(t, err)
	assert.Equal(t, s, d.WithID("4"))
}
