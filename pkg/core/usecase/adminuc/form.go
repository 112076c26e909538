// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package adminuc

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/momeni/car-dealer/pkg/core/cerr"
	"github.com/momeni/car-dealer/pkg/core/model"
)

// CarForm is the editable state of the car form. All fields are kept
// as entered text, so a rejected submission can be shown again with
// no loss. The form and binding tags are used by the web adapter.
type CarForm struct {
	Brand        string `form:"brand" json:"brand" binding:"required"`
	Model        string `form:"model" json:"model" binding:"required"`
	Year         string `form:"year" json:"year" binding:"required"`
	Price        string `form:"price" json:"price" binding:"required"`
	Mileage      string `form:"mileage" json:"mileage" binding:"required"`
	FuelType     string `form:"fuelType" json:"fuelType" binding:"required"`
	Transmission string `form:"transmission" json:"transmission" binding:"required"`
	BodyType     string `form:"bodyType" json:"bodyType" binding:"required"`
	Color        string `form:"color" json:"color" binding:"required"`
	Location     string `form:"location" json:"location" binding:"required"`
	Description  string `form:"description" json:"description"`
	Features     string `form:"features" json:"features"`
	Image        string `form:"image" json:"image"`
}

// EmptyCarForm returns the form of the "add car" action.
// Enum fields start on their first legal values.
func EmptyCarForm() CarForm {
	return CarForm{
		FuelType:     string(model.FuelPetrol),
		Transmission: string(model.TransmissionAutomatic),
		BodyType:     string(model.BodySedan),
	}
}

// CarFormFrom returns the form of the "edit car" action, filled with
// the car fields. Features are joined with a comma and a space.
func CarFormFrom(car model.Car) CarForm {
	return CarForm{
		Brand:        car.Brand,
		Model:        car.Model,
		Year:         strconv.Itoa(car.Year),
		Price:        strconv.FormatInt(car.Price, 10),
		Mileage:      strconv.Itoa(car.Mileage),
		FuelType:     string(car.FuelType),
		Transmission: string(car.Transmission),
		BodyType:     string(car.BodyType),
		Color:        car.Color,
		Location:     car.Location,
		Description:  car.Description,
		Features:     strings.Join(car.Features, ", "),
		Image:        car.Image,
	}
}

// ErrMalformedNumber indicates that a numeric field is not an integer.
var ErrMalformedNumber = errors.New("must be a whole number")

// ErrRequired indicates that a required field is empty.
var ErrRequired = errors.New("is required")

// FieldErrors maps form field names to their validation errors.
type FieldErrors map[string]error

// Error implements the error interface, listing fields in their
// lexicographical order.
func (fe FieldErrors) Error() string {
	names := make([]string, 0, len(fe))
	for name := range fe {
		names = append(names, name)
	}
	sort.Strings(names)
	msgs := make([]string, 0, len(names))
	for _, name := range names {
		msgs = append(msgs, name+": "+fe[name].Error())
	}
	return "invalid form: " + strings.Join(msgs, "; ")
}

// Unwrap returns the field errors, so errors.Is can detect them.
func (fe FieldErrors) Unwrap() []error {
	errs := make([]error, 0, len(fe))
	for _, err := range fe {
		errs = append(errs, err)
	}
	return errs
}

func (fe FieldErrors) orNil() error {
	if len(fe) == 0 {
		return nil
	}
	return cerr.BadRequest(fe)
}

func parseInt(fe FieldErrors, name, v string) int64 {
	v = strings.TrimSpace(v)
	if v == "" {
		fe[name] = ErrRequired
		return 0
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		fe[name] = ErrMalformedNumber
		return 0
	}
	return n
}

func required(fe FieldErrors, name, v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		fe[name] = ErrRequired
	}
	return v
}

// SplitFeatures splits a comma separated features text, trimming the
// items and dropping the empty ones.
func SplitFeatures(s string) []string {
	out := []string{}
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// Parse converts the form into a car draft. Malformed numbers, unknown
// enum values, and empty required fields are all rejected together by
// a FieldErrors (wrapped in a cerr.Error with a 400 status code).
// An empty image is replaced by the placeholder image.
func (f CarForm) Parse(placeholder string) (model.CarDraft, error) {
	fe := FieldErrors{}
	d := model.CarDraft{
		Brand:       required(fe, "brand", f.Brand),
		Model:       required(fe, "model", f.Model),
		Color:       required(fe, "color", f.Color),
		Location:    required(fe, "location", f.Location),
		Description: strings.TrimSpace(f.Description),
		Features:    SplitFeatures(f.Features),
		Image:       strings.TrimSpace(f.Image),
	}
	d.Year = int(parseInt(fe, "year", f.Year))
	d.Price = parseInt(fe, "price", f.Price)
	d.Mileage = int(parseInt(fe, "mileage", f.Mileage))
	var err error
	if d.FuelType, err = model.ParseFuelType(f.FuelType); err != nil {
		fe["fuelType"] = err
	}
	if d.Transmission, err = model.ParseTransmission(f.Transmission); err != nil {
		fe["transmission"] = err
	}
	if d.BodyType, err = model.ParseBodyType(f.BodyType); err != nil {
		fe["bodyType"] = err
	}
	if d.Image == "" {
		d.Image = placeholder
	}
	if err := fe.orNil(); err != nil {
		return model.CarDraft{}, err
	}
	return d, nil
}

// SlideForm is the editable state of the image slider form.
type SlideForm struct {
	URL         string `form:"url" json:"url" binding:"required"`
	Alt         string `form:"alt" json:"alt"`
	Title       string `form:"title" json:"title"`
	Description string `form:"description" json:"description"`
}

// SlideFormFrom returns the form of the "edit slide" action.
func SlideFormFrom(s model.ImageSlider) SlideForm {
	return SlideForm{
		URL:         s.URL,
		Alt:         s.Alt,
		Title:       s.Title,
		Description: s.Description,
	}
}

// Parse converts the form into a slide draft. The URL is required.
func (f SlideForm) Parse() (model.SlideDraft, error) {
	fe := FieldErrors{}
	d := model.SlideDraft{
		URL:         required(fe, "url", f.URL),
		Alt:         strings.TrimSpace(f.Alt),
		Title:       strings.TrimSpace(f.Title),
		Description: strings.TrimSpace(f.Description),
	}
	if err := fe.orNil(); err != nil {
		return model.SlideDraft{}, err
	}
	return d, nil
}

// String returns a short description of f for logging.
func (f SlideForm) String() string {
	return fmt.Sprintf("slide %q", f.Title)
}
