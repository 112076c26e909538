// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package views renders the HTML pages and fragments of the dealer
// web surface as gomponents nodes. Views are pure functions of the use
// case view models; they never call a use case themselves. The
// carousel and the delete confirmations are enhanced by htmx, while
// every link and form also works as a plain HTML request.
package views

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/momeni/car-dealer/pkg/core/cerr"
	"github.com/momeni/car-dealer/pkg/core/model"
	"github.com/momeni/car-dealer/pkg/core/usecase/contactuc"
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"
)

const htmxSrc = "https://unpkg.com/htmx.org@2.0.4"

// Site holds the settings which all pages share.
type Site struct {
	Business    contactuc.Business
	Currency    model.Currency
	Placeholder string // image of a car having no image
}

func (s Site) name() string {
	if s.Business.Name == "" {
		return "Car Dealer"
	}
	return s.Business.Name
}

func (s Site) image(car model.Car) string {
	if car.Image == "" {
		return s.Placeholder
	}
	return car.Image
}

func page(s Site, title string, body ...g.Node) g.Node {
	return components.HTML5(components.HTML5Props{
		Title:    title + " | " + s.name(),
		Language: "en",
		Head: []g.Node{
			Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
			Script(Src(htmxSrc), Defer()),
			StyleEl(g.Raw(stylesheet)),
		},
		Body: []g.Node{
			Header(Class("topbar"),
				A(Href("/"), Class("brand"), g.Text(s.name())),
				Nav(A(Href("/admin"), g.Text("Admin"))),
			),
			Main(Class("container"), g.Group(body)),
			Footer(Class("muted"),
				g.Textf("%s · %s · %s",
					s.name(), s.Business.Phone, s.Business.Email),
			),
		},
	})
}

// ErrorAlert renders err as a blocking alert banner. It renders
// nothing for a nil err.
func ErrorAlert(err error) g.Node {
	if err == nil {
		return nil
	}
	return Div(Role("alert"), Class("alert"), g.Text(message(err)))
}

// message returns the text which is shown to the user for err.
// Wrapping prefixes are dropped for the remote API failures.
func message(err error) string {
	var re *cerr.RemoteError
	var ce *cerr.Error
	switch {
	case errors.Is(err, cerr.ErrSessionExpired):
		return "Your session has expired. Please sign in again."
	case errors.As(err, &re):
		return re.Error()
	case errors.As(err, &ce):
		return ce.Err.Error()
	default:
		return err.Error()
	}
}

func carPath(id model.ID, suffix string) string {
	return "/cars/" + url.PathEscape(id.String()) + suffix
}

func adminPath(kind string, id model.ID, suffix string) string {
	return fmt.Sprintf("/admin/%s/%s%s",
		kind, url.PathEscape(id.String()), suffix)
}

const stylesheet = `
body{margin:0;font-family:system-ui,sans-serif;color:#1f2937;background:#f9fafb}
.topbar{display:flex;justify-content:space-between;align-items:center;padding:1rem 1.5rem;background:#3b82f6;color:#fff}
.topbar a{color:#fff;text-decoration:none}.brand{font-size:1.5rem;font-weight:700}
.container{max-width:72rem;margin:0 auto;padding:1.5rem}
.muted{color:#6b7280}footer{text-align:center;padding:2rem}
.alert{background:#fee2e2;border:1px solid #ef4444;color:#991b1b;padding:.75rem 1rem;border-radius:.5rem;margin:1rem 0}
.grid{display:grid;grid-template-columns:repeat(auto-fill,minmax(18rem,1fr));gap:1.5rem}
.card{background:#fff;border-radius:.5rem;box-shadow:0 1px 3px #0002;overflow:hidden}
.card img{width:100%;aspect-ratio:16/9;object-fit:cover}.card .body{padding:1rem}
.badge{display:inline-block;border:1px solid #d1d5db;border-radius:9999px;padding:0 .5rem;font-size:.75rem;margin:0 .25rem .25rem 0}
.price{color:#2563eb;font-weight:600}
.panel{background:#fff;padding:1.5rem;border-radius:.5rem;box-shadow:0 1px 3px #0002;margin-bottom:1.5rem}
.fields{display:grid;grid-template-columns:repeat(auto-fill,minmax(14rem,1fr));gap:1rem}
label{display:block;margin-bottom:.25rem}input,select,textarea{width:100%;box-sizing:border-box;padding:.4rem}
.field-error{color:#b91c1c;font-size:.875rem}
.btn{display:inline-block;padding:.5rem 1rem;border-radius:.375rem;border:1px solid #2563eb;background:#2563eb;color:#fff;text-decoration:none;cursor:pointer}
.btn.outline{background:#fff;color:#2563eb}.btn.danger{background:#dc2626;border-color:#dc2626}
.btn[disabled]{opacity:.4;pointer-events:none}
.slider{display:flex;overflow-x:auto;scroll-snap-type:x mandatory;gap:0;margin-bottom:2rem}
.slide{position:relative;min-width:100%;scroll-snap-align:start}.slide img{width:100%;height:24rem;object-fit:cover}
.slide .caption{position:absolute;left:2rem;bottom:2rem;color:#fff;text-shadow:0 1px 4px #000}
.carousel img{width:100%;aspect-ratio:16/9;object-fit:cover;border-radius:.5rem}
.dots{display:flex;gap:.5rem;justify-content:center;margin:.5rem 0}
.dot{width:.75rem;height:.75rem;border-radius:9999px;background:#d1d5db;display:inline-block}.dot.active{background:#2563eb}
.steps{display:grid;grid-template-columns:repeat(auto-fill,minmax(14rem,1fr));gap:1.5rem;list-style:none;padding:0}
.dropzone{border:2px dashed #93c5fd;border-radius:.5rem;padding:1rem;text-align:center}
table{width:100%;border-collapse:collapse}th,td{text-align:left;padding:.5rem;border-bottom:1px solid #e5e7eb}
`
