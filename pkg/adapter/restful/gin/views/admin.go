// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package views

import (
	"errors"
	"strings"

	"github.com/momeni/car-dealer/pkg/core/model"
	"github.com/momeni/car-dealer/pkg/core/usecase/adminuc"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// LoginPage renders the admin login form. The entered email is kept,
// while the password is never echoed back.
func LoginPage(s Site, email string, err error) g.Node {
	return page(s, "Admin Login",
		Form(Class("panel"), Method("post"), Action("/admin/login"),
			H1(g.Text("Admin Login")),
			ErrorAlert(err),
			Div(
				Label(For("email"), g.Text("Email")),
				Input(ID("email"), Name("email"), Type("email"),
					Value(email), Required(), AutoComplete("username")),
			),
			Div(
				Label(For("password"), g.Text("Password")),
				Input(ID("password"), Name("password"), Type("password"),
					Required(), AutoComplete("current-password")),
			),
			P(Button(Type("submit"), Class("btn"), g.Text("Sign In"))),
		),
	)
}

// DashboardPage renders the car and image slider tables of the admin
// panel together with the image upload area. A non-nil err is shown
// as an alert above the tables.
func DashboardPage(
	s Site, cars []model.Car, slides []model.ImageSlider, err error,
) g.Node {
	return page(s, "Admin Dashboard",
		Div(Class("panel"),
			H1(g.Text("Admin Dashboard")),
			Form(Method("post"), Action("/admin/logout"),
				Button(Type("submit"), Class("btn outline"), g.Text("Logout")),
			),
		),
		ErrorAlert(err),
		Section(Class("panel"), ID("cars"),
			H2(g.Textf("Cars (%d)", len(cars))),
			P(A(Href("/admin/cars/new"), Class("btn"), g.Text("Add New Car"))),
			Table(
				THead(Tr(Th(g.Text("Car")), Th(g.Text("Price")),
					Th(g.Text("Location")), Th())),
				TBody(g.Map(cars, func(car model.Car) g.Node {
					return Tr(
						Td(g.Textf("%d %s %s", car.Year, car.Brand, car.Model)),
						Td(g.Text(s.Currency.Format(car.Price))),
						Td(g.Text(car.Location)),
						Td(
							A(Href(adminPath("cars", car.ID, "/edit")),
								Class("btn outline"), g.Text("Edit")),
							deleteButton(adminPath("cars", car.ID, "/delete"),
								"Are you sure you want to delete this car?"),
						),
					)
				})),
			),
		),
		Section(Class("panel"), ID("slides"),
			H2(g.Textf("Image Slider (%d)", len(slides))),
			P(A(Href("/admin/slides/new"), Class("btn"), g.Text("Add Slide"))),
			Table(
				THead(Tr(Th(g.Text("Image")), Th(g.Text("Title")), Th())),
				TBody(g.Map(slides, func(sl model.ImageSlider) g.Node {
					return Tr(
						Td(Img(Src(sl.URL), Alt(sl.Alt), Width("120"))),
						Td(g.Text(sl.Title)),
						Td(
							A(Href(adminPath("slides", sl.ID, "/edit")),
								Class("btn outline"), g.Text("Edit")),
							deleteButton(adminPath("slides", sl.ID, "/delete"),
								"Are you sure you want to delete this slide?"),
						),
					)
				})),
			),
		),
		Section(Class("panel"), ID("images"),
			H2(g.Text("Images")),
			uploader(""),
		),
		uploadScript(),
	)
}

// deleteButton posts a confirmed delete request to action. The browser
// asks for a confirmation (through htmx) before the form is sent.
func deleteButton(action, question string) g.Node {
	return Form(Method("post"), Action(action), Style("display:inline"),
		hx.Boost("true"), hx.Confirm(question),
		Input(Type("hidden"), Name("confirm"), Value("yes")),
		Button(Type("submit"), Class("btn danger"), g.Text("Delete")),
	)
}

// CarFormPage renders the car form. A zero editing ID means that a new
// car is being added. Field errors of err are shown next to their
// fields, and other errors are shown as an alert.
func CarFormPage(
	s Site, editing model.ID, f adminuc.CarForm, err error,
) g.Node {
	title, action := "Add New Car", "/admin/cars"
	if !editing.IsZero() {
		title, action = "Edit Car", adminPath("cars", editing, "")
	}
	fe := fieldErrors(err)
	return page(s, title,
		Form(Class("panel"), Method("post"), Action(action),
			H1(g.Text(title)),
			g.If(fe == nil, ErrorAlert(err)),
			Div(Class("fields"),
				textField(fe, "brand", "Brand", f.Brand, true),
				textField(fe, "model", "Model", f.Model, true),
				numberField(fe, "year", "Year", f.Year),
				numberField(fe, "price", "Price ("+s.Currency.Symbol()+")", f.Price),
				numberField(fe, "mileage", "Mileage", f.Mileage),
				enumField(fe, "fuelType", "Fuel Type", f.FuelType, names(model.AllFuelTypes())),
				enumField(fe, "transmission", "Transmission", f.Transmission, names(model.AllTransmissions())),
				enumField(fe, "bodyType", "Body Type", f.BodyType, names(model.AllBodyTypes())),
				textField(fe, "color", "Color", f.Color, true),
				textField(fe, "location", "Location", f.Location, true),
			),
			Div(
				Label(For("description"), g.Text("Description")),
				Textarea(ID("description"), Name("description"), Rows("4"),
					g.Text(f.Description)),
			),
			textField(fe, "features", "Features (comma separated)", f.Features, false),
			textField(fe, "image", "Image URL", f.Image, false),
			uploader("#image"),
			P(
				Button(Type("submit"), Class("btn"), g.Text("Save")),
				g.Text(" "),
				A(Href("/admin"), Class("btn outline"), g.Text("Cancel")),
			),
		),
		uploadScript(),
	)
}

// SlideFormPage renders the image slider form like CarFormPage.
func SlideFormPage(
	s Site, editing model.ID, f adminuc.SlideForm, err error,
) g.Node {
	title, action := "Add Slide", "/admin/slides"
	if !editing.IsZero() {
		title, action = "Edit Slide", adminPath("slides", editing, "")
	}
	fe := fieldErrors(err)
	return page(s, title,
		Form(Class("panel"), Method("post"), Action(action),
			H1(g.Text(title)),
			g.If(fe == nil, ErrorAlert(err)),
			textField(fe, "url", "Image URL", f.URL, true),
			uploader("#url"),
			textField(fe, "alt", "Alternative Text", f.Alt, false),
			textField(fe, "title", "Title", f.Title, false),
			textField(fe, "description", "Description", f.Description, false),
			P(
				Button(Type("submit"), Class("btn"), g.Text("Save")),
				g.Text(" "),
				A(Href("/admin"), Class("btn outline"), g.Text("Cancel")),
			),
		),
		uploadScript(),
	)
}

func fieldErrors(err error) adminuc.FieldErrors {
	var fe adminuc.FieldErrors
	if errors.As(err, &fe) {
		return fe
	}
	return nil
}

func fieldError(fe adminuc.FieldErrors, name string) g.Node {
	err, ok := fe[name]
	if !ok {
		return nil
	}
	return Span(Class("field-error"), g.Text(label(name)+" "+err.Error()))
}

func label(name string) string {
	switch name {
	case "fuelType":
		return "Fuel type"
	case "bodyType":
		return "Body type"
	case "url":
		return "URL"
	default:
		return strings.ToUpper(name[:1]) + name[1:]
	}
}

func textField(fe adminuc.FieldErrors, name, text, value string, required bool) g.Node {
	return Div(
		Label(For(name), g.Text(text)),
		Input(ID(name), Name(name), Type("text"), Value(value),
			g.If(required, Required())),
		fieldError(fe, name),
	)
}

func numberField(fe adminuc.FieldErrors, name, text, value string) g.Node {
	return Div(
		Label(For(name), g.Text(text)),
		Input(ID(name), Name(name), Type("number"), Value(value), Required()),
		fieldError(fe, name),
	)
}

func enumField(fe adminuc.FieldErrors, name, text, value string, values []string) g.Node {
	return Div(
		Label(For(name), g.Text(text)),
		Select(ID(name), Name(name),
			g.Map(values, func(v string) g.Node {
				return Option(Value(v), g.Text(v), g.If(v == value, Selected()))
			}),
		),
		fieldError(fe, name),
	)
}

func names[T ~string](vs []T) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = string(v)
	}
	return out
}
