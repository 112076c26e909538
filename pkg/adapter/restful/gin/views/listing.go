// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package views

import (
	"fmt"

	"github.com/momeni/car-dealer/pkg/core/filter"
	"github.com/momeni/car-dealer/pkg/core/model"
	"github.com/momeni/car-dealer/pkg/core/usecase/cataloguc"
	"github.com/momeni/car-dealer/pkg/core/usecase/contactuc"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"
)

// ListingPage renders the public listing: the image slider, the
// filter controls, the results summary, the car grid, and the contact
// section. A failed fetch is shown inline in place of the grid.
func ListingPage(s Site, v *cataloguc.ListingView) g.Node {
	return page(s, "Find Your Perfect Car",
		slider(v.Slides),
		Section(ID("inventory"),
			Div(Class("panel"),
				H1(g.Text("Find Your Perfect Car")),
				P(Class("muted"), g.Text(
					"Browse through our extensive collection of quality "+
						"used cars. Filter by brand, price, and features "+
						"to find exactly what you're looking for.",
				)),
			),
			filterBar(s, v.Filter, v.Options),
			results(s, v),
		),
		contactSection(),
	)
}

func results(s Site, v *cataloguc.ListingView) g.Node {
	if v.Err != nil {
		return Div(Class("panel"),
			P(Class("field-error"), g.Text("Error: "+message(v.Err))),
			P(Class("muted"), g.Text("Please try again later.")),
		)
	}
	return g.Group{
		P(Class("muted"), ID("summary"), g.Text(v.Summary())),
		g.If(v.Shown() == 0, Div(Class("panel"),
			P(Class("muted"), g.Text("No cars match your current filters.")),
			P(Class("muted"), g.Text("Try adjusting your search criteria.")),
		)),
		g.If(v.Shown() > 0, Div(Class("grid"),
			g.Map(v.Cars, func(car model.Car) g.Node {
				return carCard(s, car)
			}),
		)),
	}
}

func slider(slides []model.ImageSlider) g.Node {
	if len(slides) == 0 {
		return nil
	}
	return Div(Class("slider"), Aria("label", "Featured"),
		g.Map(slides, func(sl model.ImageSlider) g.Node {
			return Figure(Class("slide"),
				Img(Src(sl.URL), Alt(sl.Alt)),
				Div(Class("caption"),
					H2(g.Text(sl.Title)),
					P(g.Text(sl.Description)),
					A(Href("#inventory"), Class("btn"), g.Text("View Inventory")),
					g.Text(" "),
					A(Href("#contact"), Class("btn outline"), g.Text("Contact Us")),
				),
			)
		}),
	)
}

func filterBar(s Site, f filter.State, opts filter.OptionSet) g.Node {
	sym := s.Currency.Symbol()
	return Form(Class("panel"), Method("get"), Action("/"),
		hx.Boost("true"),
		H3(g.Text("Filter Cars")),
		Div(Class("fields"),
			choice(filter.KeyBrand, "Brand", "All Brands", f.Brand, opts.Brands),
			choice(filter.KeyBodyType, "Body Type", "All Types", f.BodyType, opts.BodyTypes),
			choice(filter.KeyFuelType, "Fuel Type", "All Fuel Types", f.FuelType, opts.FuelTypes),
			choice(filter.KeyTransmission, "Transmission", "All Transmissions", f.Transmission, opts.Transmissions),
			number(filter.KeyMinPrice, fmt.Sprintf("Min Price (%s)", sym), "0", f.MinPrice),
			number(filter.KeyMaxPrice, fmt.Sprintf("Max Price (%s)", sym), "No limit", f.MaxPrice),
			number(filter.KeyMinYear, "Min Year", "2000", f.MinYear),
			number(filter.KeyMaxYear, "Max Year", "2024", f.MaxYear),
		),
		P(
			Button(Type("submit"), Class("btn"), g.Text("Apply Filters")),
			g.Text(" "),
			A(Href("/"), Class("btn outline"), g.Text("Clear all filters")),
		),
	)
}

func choice(name, label, all, current string, values []string) g.Node {
	return Div(
		Label(For(name), g.Text(label)),
		Select(ID(name), Name(name),
			Option(Value(filter.All), g.Text(all),
				g.If(current == filter.All, Selected())),
			g.Map(values, func(v string) g.Node {
				return Option(Value(v), g.Text(v), g.If(v == current, Selected()))
			}),
		),
	)
}

func number(name, label, placeholder, current string) g.Node {
	return Div(
		Label(For(name), g.Text(label)),
		Input(ID(name), Name(name), Type("number"),
			Placeholder(placeholder), Value(current)),
	)
}

func carCard(s Site, car model.Car) g.Node {
	const shownFeatures = 3
	features := car.Features
	if len(features) > shownFeatures {
		features = features[:shownFeatures]
	}
	return Article(Class("card"),
		Img(Src(s.image(car)), Alt(car.Brand+" "+car.Model)),
		Div(Class("body"),
			H3(g.Textf("%s %s", car.Brand, car.Model)),
			P(Class("muted"), g.Textf("%d · %s", car.Year, car.Color)),
			P(Span(Class("price"), g.Text(s.Currency.Format(car.Price))),
				g.Text(" "), Span(Class("badge"), g.Text(car.BodyType.String()))),
			P(Class("muted"), g.Textf("%s miles · %s",
				model.FormatMileage(car.Mileage), car.FuelType)),
			P(Class("muted"), g.Text(car.Location)),
			P(g.Text(car.Description)),
			P(
				g.Map(features, func(f string) g.Node {
					return Span(Class("badge"), g.Text(f))
				}),
				g.If(len(car.Features) > shownFeatures, Span(Class("badge"),
					g.Textf("+%d more", len(car.Features)-shownFeatures))),
			),
			A(Href(carPath(car.ID, "")), Class("btn"), g.Text("View Details")),
		),
	)
}

type step struct {
	title, description string
}

var steps = []step{
	{"Contact Us", "Reach out to us using any of the contact methods below to express your interest in our cars"},
	{"Get Information", "We'll send you detailed information about available cars and answer all your questions"},
	{"Pay 40% Upfront", "Secure your purchase with just 40% payment upfront - no need to pay the full amount immediately"},
	{"We Deliver", "We'll safely deliver your chosen car directly to your location at your convenience"},
}

func contactSection() g.Node {
	return Section(ID("contact"), Class("panel"),
		H2(g.Text("Interested in Any Car?")),
		P(Class("muted"), g.Text("Follow our simple 4-step process to get "+
			"your dream car with convenient payment options and delivery service")),
		Ol(Class("steps"),
			g.Map(steps, func(st step) g.Node {
				return Li(Class("card"), Div(Class("body"),
					H3(g.Text(st.title)),
					P(Class("muted"), g.Text(st.description)),
				))
			}),
		),
		H3(g.Text("Ready to Find Your Perfect Car?")),
		P(Class("muted"), g.Text("Contact us now for instant response and "+
			"personalized service. Our team is ready to help you!")),
		contactButtons("/contact/"),
	)
}

// contactButtons renders one button per contact channel. Each button
// leads to prefix+channel, which redirects to the deep link.
func contactButtons(prefix string) g.Node {
	return P(
		g.Map(contactuc.Channels(), func(ch contactuc.Channel) g.Node {
			return g.Group{
				A(Href(prefix+string(ch)), Class("btn"), Target("_blank"),
					Rel("noopener"), g.Text(channelLabel(ch))),
				g.Text(" "),
			}
		}),
	)
}

func channelLabel(ch contactuc.Channel) string {
	switch ch {
	case contactuc.WhatsApp:
		return "WhatsApp"
	case contactuc.Viber:
		return "Viber"
	default:
		return "Email"
	}
}
