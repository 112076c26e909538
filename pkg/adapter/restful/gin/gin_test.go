// Copyright (c) 2023-2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package gin_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"net/url"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/momeni/car-dealer/internal/test/fakeapi"
	"github.com/momeni/car-dealer/pkg/adapter/config"
	"github.com/momeni/car-dealer/pkg/adapter/restful/gin"
	"github.com/momeni/car-dealer/pkg/adapter/restful/gin/catalogrs"
	"github.com/momeni/car-dealer/pkg/adapter/restful/gin/routes"
	"github.com/momeni/car-dealer/pkg/core/model"
	"github.com/momeni/car-dealer/pkg/core/repo"
	"github.com/stretchr/testify/suite"
)

type IntegrationGinTestSuite struct {
	suite.Suite

	Ctx context.Context
	API *fakeapi.Server
	Gin *gin.Engine
}

func TestIntegrationGinTestSuite(t *testing.T) {
	suite.Run(t, &IntegrationGinTestSuite{Ctx: context.Background()})
}

const configTemplate = `
api:
  base-url: %s
business:
  name: Premier Auto Sales
  phone: "+1234567890"
  email: info@premierautosales.com
`

func (igts *IntegrationGinTestSuite) SetupTest() {
	igts.T().Setenv(config.BaseURLEnv, "")
	igts.API = fakeapi.New(igts.T())
	igts.API.SeedCars(
		model.Car{Brand: "Toyota", Model: "Camry", Year: 2020, Price: 25000,
			BodyType: model.BodySedan, FuelType: model.FuelPetrol,
			Transmission: model.TransmissionAutomatic,
			Images: []model.Image{
				{ID: "i1", URL: "https://img.example/a.jpg"},
				{ID: "i2", URL: "https://img.example/b.jpg"},
				{ID: "i3", URL: "https://img.example/c.jpg"},
			}},
		model.Car{Brand: "Honda", Model: "Civic", Year: 2018, Price: 15000,
			BodyType: model.BodyHatchback, FuelType: model.FuelHybrid,
			Transmission: model.TransmissionManual},
		model.Car{Brand: "Toyota", Model: "RAV4", Year: 2022, Price: 32000,
			BodyType: model.BodySUV, FuelType: model.FuelHybrid,
			Transmission: model.TransmissionAutomatic},
	)
	c, err := config.Parse([]byte(fmt.Sprintf(configTemplate, igts.API.URL())))
	igts.Require().NoError(err, "failed to parse config")

	igts.Gin = gin.New(append(gin.Logger(), gin.Recovery())...)
	igts.Require().NotNil(igts.Gin, "cannot instantiate Gin engine")
	err = routes.Register(igts.Ctx, igts.Gin, c)
	igts.Require().NoError(err, "failed to register Gin routes")
}

type request struct {
	method, path string
	body         io.Reader
	contentType  string
	json         bool
	cookies      []*http.Cookie
}

func (igts *IntegrationGinTestSuite) do(r request) *httptest.ResponseRecorder {
	if r.method == "" {
		r.method = http.MethodGet
	}
	req := httptest.NewRequest(r.method, r.path, r.body)
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}
	if r.json {
		req.Header.Set("Accept", "application/json")
	}
	for _, c := range r.cookies {
		req.AddCookie(c)
	}
	w := httptest.NewRecorder()
	igts.Gin.ServeHTTP(w, req)
	return w
}

func urlEncoded(m map[string]string) io.Reader {
	u := url.Values{}
	for k, v := range m {
		u.Set(k, v)
	}
	return strings.NewReader(u.Encode())
}

func post(path string, form map[string]string, cookies []*http.Cookie) request {
	return request{
		method:      http.MethodPost,
		path:        path,
		body:        urlEncoded(form),
		contentType: "application/x-www-form-urlencoded",
		cookies:     cookies,
	}
}

func (igts *IntegrationGinTestSuite) decode(w *httptest.ResponseRecorder, v any) {
	igts.Require().NoError(json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func (igts *IntegrationGinTestSuite) login() []*http.Cookie {
	w := igts.do(post("/admin/login", map[string]string{
		"email": fakeapi.Email, "password": fakeapi.Password,
	}, nil))
	igts.Require().Equal(http.StatusSeeOther, w.Code, w.Body.String())
	igts.Require().Equal("/admin", w.Header().Get("Location"))
	cookies := w.Result().Cookies()
	igts.Require().Len(cookies, 2)
	return cookies
}

func carForm(year string) map[string]string {
	return map[string]string{
		"brand": "Mazda", "model": "CX-5", "year": year, "price": "27000",
		"mileage": "12000", "fuelType": "Petrol", "transmission": "Automatic",
		"bodyType": "SUV", "color": "Red", "location": "Tokyo",
		"features": "AC, Navigation",
	}
}

func (igts *IntegrationGinTestSuite) TestHealthz() {
	w := igts.do(request{path: "/healthz"})
	igts.Equal(http.StatusOK, w.Code)
	igts.JSONEq(`{"status":"ok"}`, w.Body.String())
	igts.NotEmpty(w.Header().Get(gin.RequestIDHeader))

	r := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	r.Header.Set(gin.RequestIDHeader, "req-42")
	w = httptest.NewRecorder()
	igts.Gin.ServeHTTP(w, r)
	igts.Equal("req-42", w.Header().Get(gin.RequestIDHeader))
}

func (igts *IntegrationGinTestSuite) TestListing() {
	w := igts.do(request{path: "/?brand=Toyota&maxPrice=30000", json: true})
	igts.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp catalogrs.ListingResp
	igts.decode(w, &resp)
	igts.Equal("Showing 1 of 3 cars", resp.Summary)
	igts.Equal([]string{"Honda", "Toyota"}, resp.Options.Brands)
	igts.Require().Len(resp.Cars, 1)
	igts.Equal("Camry", resp.Cars[0].Model)
	igts.Len(resp.Slides, 4, "default slides for an empty slider")

	w = igts.do(request{path: "/?minYear=abc"})
	igts.Equal(http.StatusOK, w.Code)
	body := w.Body.String()
	igts.Contains(body, "Showing 3 of 3 cars", "malformed bounds are ignored")
	igts.Contains(body, "Clear all filters")
	igts.Contains(body, "Interested in Any Car?")
	igts.Contains(body, "$25,000")
	igts.Equal(2, igts.API.Calls(http.MethodGet, "/api/cars/"),
		"every listing fetches the collection")
}

func (igts *IntegrationGinTestSuite) TestListingFailureIsInline() {
	igts.API.Fail(http.MethodGet, "/api/cars/", http.StatusInternalServerError)
	w := igts.do(request{path: "/"})
	igts.Equal(http.StatusBadGateway, w.Code)
	igts.Contains(w.Body.String(),
		"Error: failed to fetch cars: 500 Internal Server Error")
	igts.Contains(w.Body.String(), "Premium Collection")
}

func (igts *IntegrationGinTestSuite) TestDetail() {
	w := igts.do(request{path: "/cars/2", json: true})
	igts.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp catalogrs.DetailResp
	igts.decode(w, &resp)
	igts.Equal("Civic", resp.Car.Model)
	igts.Require().NotNil(resp.Prev)
	igts.Require().NotNil(resp.Next)
	igts.Equal(model.ID("1"), *resp.Prev)
	igts.Equal(model.ID("3"), *resp.Next)
	igts.True(resp.Carousel.Placeholder)

	w = igts.do(request{path: "/cars/42"})
	igts.Equal(http.StatusNotFound, w.Code)
	igts.Contains(w.Body.String(), "Car not found")
	igts.Contains(w.Body.String(), "Back to Listings")
	igts.Equal(1, igts.API.Calls(http.MethodGet, "/api/cars/"),
		"detail pages load the collection once")
}

func (igts *IntegrationGinTestSuite) TestCarousel() {
	w := igts.do(request{path: "/cars/1/carousel?i=2"})
	igts.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	body := w.Body.String()
	igts.True(strings.HasPrefix(body, `<div id="carousel"`), body)
	igts.Contains(body, "https://img.example/b.jpg")
	igts.Contains(body, `hx-get="/cars/1/carousel?i=3"`)

	w = igts.do(request{path: "/cars/1/carousel?i=9", json: true})
	var resp catalogrs.CarouselResp
	igts.decode(w, &resp)
	igts.Equal(3, resp.Current, "index is clamped")

	w = igts.do(request{path: "/cars/1/carousel?i=abc"})
	igts.Equal(http.StatusBadRequest, w.Code)
}

func (igts *IntegrationGinTestSuite) TestContactRedirects() {
	w := igts.do(request{path: "/cars/1/contact/whatsapp"})
	igts.Equal(http.StatusFound, w.Code)
	igts.True(strings.HasPrefix(w.Header().Get("Location"),
		"https://wa.me/1234567890?text=Hi%21%20I%27m%20interested%20in%20the%202020%20Toyota%20Camry"))

	w = igts.do(request{path: "/contact/viber", json: true})
	igts.Equal(http.StatusOK, w.Code)
	igts.JSONEq(`{"url":"viber://chat?number=%2B1234567890"}`, w.Body.String())

	w = igts.do(request{path: "/contact/fax"})
	igts.Equal(http.StatusNotFound, w.Code)
	w = igts.do(request{path: "/cars/42/contact/email"})
	igts.Equal(http.StatusNotFound, w.Code)
}

func (igts *IntegrationGinTestSuite) TestAdminNeedsSession() {
	w := igts.do(request{path: "/admin"})
	igts.Equal(http.StatusSeeOther, w.Code)
	igts.Equal("/admin/login", w.Header().Get("Location"))

	w = igts.do(request{path: "/admin/cars/new", json: true})
	igts.Equal(http.StatusUnauthorized, w.Code)

	w = igts.do(request{path: "/admin/login"})
	igts.Equal(http.StatusOK, w.Code)
	igts.Contains(w.Body.String(), "Admin Login")
}

func (igts *IntegrationGinTestSuite) TestLoginFailure() {
	w := igts.do(post("/admin/login", map[string]string{
		"email": fakeapi.Email, "password": "wrong",
	}, nil))
	igts.Equal(http.StatusUnauthorized, w.Code)
	igts.Contains(w.Body.String(), "failed to log in")
	igts.Contains(w.Body.String(), `value="admin@example.com"`)
	igts.Empty(w.Result().Cookies())
	logins := igts.API.Calls(http.MethodPost, "/api/token/")
	igts.Equal(1, logins)

	w = igts.do(post("/admin/login", map[string]string{"email": "x"}, nil))
	igts.Equal(http.StatusBadRequest, w.Code)
	igts.Equal(logins, igts.API.Calls(http.MethodPost, "/api/token/"),
		"a malformed login is not sent")
}

func (igts *IntegrationGinTestSuite) TestCreateAndUpdateCar() {
	cookies := igts.login()
	igts.Equal(repo.AccessTokenKey, cookies[0].Name)
	igts.Equal(fakeapi.Access, cookies[0].Value)

	w := igts.do(post("/admin/cars", carForm("2021"), cookies))
	igts.Require().Equal(http.StatusSeeOther, w.Code, w.Body.String())
	cars := igts.API.Cars()
	igts.Require().Len(cars, 4)
	created := cars[3]
	igts.Equal("Mazda", created.Brand)
	igts.Equal([]string{"AC", "Navigation"}, created.Features)
	igts.NotEmpty(created.Image, "placeholder image is used")

	form := carForm("2021")
	form["price"] = "26000"
	w = igts.do(post("/admin/cars/"+created.ID.String(), form, cookies))
	igts.Require().Equal(http.StatusSeeOther, w.Code, w.Body.String())

	r := request{path: "/admin", json: true, cookies: cookies}
	w = igts.do(r)
	igts.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var dash struct {
		Cars []model.Car `json:"cars"`
	}
	igts.decode(w, &dash)
	igts.Require().Len(dash.Cars, 4)
	igts.Equal(int64(26000), dash.Cars[3].Price)
}

func (igts *IntegrationGinTestSuite) TestMalformedFormKeepsState() {
	cookies := igts.login()
	creates := igts.API.Calls(http.MethodPost, "/api/cars/")
	w := igts.do(post("/admin/cars", carForm("twenty"), cookies))
	igts.Equal(http.StatusBadRequest, w.Code)
	body := w.Body.String()
	igts.Contains(body, "Year must be a whole number")
	igts.Contains(body, `value="Mazda"`)
	igts.Equal(creates, igts.API.Calls(http.MethodPost, "/api/cars/"))

	form := carForm("2021")
	delete(form, "brand")
	r := post("/admin/cars", form, cookies)
	r.json = true
	w = igts.do(r)
	igts.Equal(http.StatusBadRequest, w.Code)
	var resp struct {
		Fields map[string][]string `json:"fields"`
	}
	igts.decode(w, &resp)
	igts.Contains(resp.Fields, "brand")
}

func (igts *IntegrationGinTestSuite) TestDeleteNeedsConfirmation() {
	cookies := igts.login()
	deletes := igts.API.Calls(http.MethodDelete, "/api/cars/")
	w := igts.do(post("/admin/cars/1/delete", nil, cookies))
	igts.Equal(http.StatusBadRequest, w.Code)
	igts.Contains(w.Body.String(), "deletion is not confirmed")
	igts.Equal(deletes, igts.API.Calls(http.MethodDelete, "/api/cars/"))

	w = igts.do(post("/admin/cars/1/delete",
		map[string]string{"confirm": "yes"}, cookies))
	igts.Equal(http.StatusSeeOther, w.Code)
	igts.Len(igts.API.Cars(), 2)
}

func (igts *IntegrationGinTestSuite) TestRejectedTokenExpiresSession() {
	cookies := igts.login()
	igts.API.Fail(http.MethodPost, "/api/cars/", http.StatusUnauthorized)
	w := igts.do(post("/admin/cars", carForm("2021"), cookies))
	igts.Equal(http.StatusSeeOther, w.Code)
	igts.Equal("/admin/login", w.Header().Get("Location"))
	for _, c := range w.Result().Cookies() {
		igts.Negative(c.MaxAge, "%s cookie is cleared", c.Name)
	}
}

func (igts *IntegrationGinTestSuite) TestSlides() {
	cookies := igts.login()
	w := igts.do(post("/admin/slides", map[string]string{
		"url": "https://img.example/s.jpg", "title": "Summer Sale",
	}, cookies))
	igts.Require().Equal(http.StatusSeeOther, w.Code, w.Body.String())
	slides := igts.API.Slides()
	igts.Require().Len(slides, 1)

	w = igts.do(request{path: "/", json: true})
	var resp catalogrs.ListingResp
	igts.decode(w, &resp)
	igts.Require().Len(resp.Slides, 1, "remote slides replace the defaults")
	igts.Equal("Summer Sale", resp.Slides[0].Title)

	w = igts.do(post("/admin/slides/"+slides[0].ID.String()+"/delete",
		map[string]string{"confirm": "yes"}, cookies))
	igts.Equal(http.StatusSeeOther, w.Code)
	igts.Empty(igts.API.Slides())
}

func multipartImage(contentType, source string) (io.Reader, string) {
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", `form-data; name="image"; filename="image.png"`)
	h.Set("Content-Type", contentType)
	part, _ := mw.CreatePart(h)
	_, _ = part.Write([]byte("\x89PNG fake"))
	_ = mw.WriteField("source", source)
	_ = mw.Close()
	return body, mw.FormDataContentType()
}

func (igts *IntegrationGinTestSuite) TestUploadImage() {
	cookies := igts.login()
	body, ct := multipartImage("image/png", "paste")
	w := igts.do(request{method: http.MethodPost, path: "/admin/images",
		body: body, contentType: ct, json: true, cookies: cookies})
	igts.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var img model.Image
	igts.decode(w, &img)
	igts.True(strings.HasSuffix(img.URL, ".png"), img.URL)
	igts.NotContains(img.URL, "image.png", "pasted images are renamed")
	igts.Len(igts.API.Uploads, 1)

	body, ct = multipartImage("text/plain", "picker")
	w = igts.do(request{method: http.MethodPost, path: "/admin/images",
		body: body, contentType: ct, json: true, cookies: cookies})
	igts.Equal(http.StatusBadRequest, w.Code)
	igts.Equal(1, igts.API.Calls(http.MethodPost, "/api/cars/image/"))

	r := post("/admin/images/"+img.ID.String()+"/delete", nil, cookies)
	r.json = true
	w = igts.do(r)
	igts.Equal(http.StatusOK, w.Code, w.Body.String())
}

func (igts *IntegrationGinTestSuite) TestLogout() {
	cookies := igts.login()
	w := igts.do(post("/admin/logout", nil, cookies))
	igts.Equal(http.StatusSeeOther, w.Code)
	for _, c := range w.Result().Cookies() {
		igts.Negative(c.MaxAge)
	}
}
