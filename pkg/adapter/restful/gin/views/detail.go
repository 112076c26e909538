// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package views

import (
	"fmt"

	"github.com/momeni/car-dealer/pkg/core/model"
	"github.com/momeni/car-dealer/pkg/core/usecase/cataloguc"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// DetailPage renders the detail page of v.Car, or the not found page
// if v.Found is false.
func DetailPage(s Site, v *cataloguc.DetailView) g.Node {
	if v.Err != nil {
		return page(s, "Car details",
			backLink(),
			ErrorAlert(v.Err),
		)
	}
	if !v.Found {
		return NotFoundPage(s)
	}
	car := v.Car
	return page(s, fmt.Sprintf("%s %s", car.Brand, car.Model),
		backLink(),
		neighbors(v),
		CarouselFragment(v.ID, &v.Carousel),
		Div(Class("panel"),
			H1(g.Textf("%s %s", car.Brand, car.Model)),
			P(Class("muted"), g.Textf("%d · %s ", car.Year, car.Color),
				Span(Class("badge"), g.Text(car.BodyType.String()))),
			P(Class("price"), ID("price"), g.Text(s.Currency.Format(car.Price))),
			Div(Class("fields"),
				fact("Mileage", model.FormatMileage(car.Mileage)+" miles"),
				fact("Fuel Type", car.FuelType.String()),
				fact("Transmission", car.Transmission.String()),
			),
			P(Class("muted"), g.Text("Location: "+car.Location)),
		),
		Div(Class("panel"),
			H3(g.Text("Description")),
			P(g.Text(car.Description)),
		),
		Div(Class("panel"),
			H3(g.Text("Features")),
			Ul(g.Map(car.Features, func(f string) g.Node {
				return Li(g.Text(f))
			})),
		),
		Aside(Class("panel"),
			H3(g.Text("Interested in this car?")),
			P(Class("muted"), g.Text("Contact us for more details.")),
			contactButtons(carPath(car.ID, "/contact/")),
		),
	)
}

func backLink() g.Node {
	return P(A(Href("/"), Class("btn outline"), g.Text("Back to Listings")))
}

func fact(name, value string) g.Node {
	return Div(
		P(Class("muted"), g.Text(name)),
		P(g.Text(value)),
	)
}

func neighbors(v *cataloguc.DetailView) g.Node {
	return Nav(Class("dots"), Aria("label", "Neighbors"),
		navLink(v.HasPrev, v.Prev, "Previous car", "prev"),
		navLink(v.HasNext, v.Next, "Next car", "next"),
	)
}

func navLink(ok bool, id model.ID, text, rel string) g.Node {
	if !ok {
		return Span(Class("btn outline"), Disabled(), g.Text(text))
	}
	return A(Href(carPath(id, "")), Rel(rel), Class("btn outline"),
		g.Text(text))
}

// CarouselFragment renders the image carousel of the id car. The
// arrows and the dot indicators replace this fragment using htmx,
// and fall back to reloading the detail page without JavaScript.
func CarouselFragment(id model.ID, c *cataloguc.Carousel) g.Node {
	img, ok := c.Slide()
	if !ok {
		return Div(ID("carousel"), Class("carousel"))
	}
	alt := fmt.Sprintf("Image %d of %d", c.Current, c.Count())
	return Div(ID("carousel"), Class("carousel"),
		Img(Src(img.URL), Alt(alt)),
		g.If(c.Count() > 1, Div(Class("dots"),
			carouselLink(id, c.Current-1, c.CanPrev(), g.Text("‹"),
				Aria("label", "Previous image")),
			g.Group(dots(id, c)),
			carouselLink(id, c.Current+1, c.CanNext(), g.Text("›"),
				Aria("label", "Next image")),
		)),
	)
}

func dots(id model.ID, c *cataloguc.Carousel) []g.Node {
	nodes := make([]g.Node, 0, c.Count())
	for i := 1; i <= c.Count(); i++ {
		class := "dot"
		if i == c.Current {
			class += " active"
		}
		nodes = append(nodes, carouselLink(id, i, true,
			Class(class), Aria("label", fmt.Sprintf("Go to slide %d", i))))
	}
	return nodes
}

func carouselLink(id model.ID, i int, enabled bool, children ...g.Node) g.Node {
	if !enabled {
		return Span(Class("btn outline"), Disabled(), g.Group(children))
	}
	return A(
		Href(fmt.Sprintf("%s?i=%d", carPath(id, ""), i)),
		hx.Get(fmt.Sprintf("%s?i=%d", carPath(id, "/carousel"), i)),
		hx.Target("#carousel"),
		hx.Swap("outerHTML"),
		g.Group(children),
	)
}

// NotFoundPage renders the page of a car which does not exist.
func NotFoundPage(s Site) g.Node {
	return page(s, "Car not found",
		Div(Class("panel"),
			P(g.Text("Car not found")),
			A(Href("/"), Class("btn"), g.Text("Back to Listings")),
		),
	)
}
