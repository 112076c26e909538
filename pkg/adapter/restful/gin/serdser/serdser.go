// Copyright (c) 2023-2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package serdser contains the serialization and deserialization
// helpers which are shared by the resource packages. Requests are
// bound with the gin binding engine (and its validator), while
// responses are negotiated between an HTML page (a gomponents node)
// and a JSON document, based on the Accept header of the request.
package serdser

import (
	"errors"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/momeni/car-dealer/pkg/core/cerr"
	"github.com/momeni/car-dealer/pkg/core/usecase/adminuc"
	g "maragu.dev/gomponents"
)

var registerOnce sync.Once

// registerTagNames makes the validator report fields by their form
// (or json) tag names, so errors are keyed like the submitted fields.
func registerTagNames() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			for _, tag := range []string{"form", "json", "uri"} {
				name, _, _ := strings.Cut(f.Tag.Get(tag), ",")
				if name != "" && name != "-" {
					return name
				}
			}
			return f.Name
		})
	})
}

// BindErrs binds the c request into req using the b binding. Failed
// validation rules are returned as a field name to messages map, while
// other binding errors (e.g., a malformed body) are returned as err.
func BindErrs(
	c *gin.Context, req any, b binding.Binding,
) (map[string][]string, error) {
	registerTagNames()
	switch err := c.ShouldBindWith(req, b).(type) {
	case nil:
		return nil, nil
	case validator.ValidationErrors:
		var errs map[string][]string
		for _, ferr := range err {
			AddErr(&errs, ferr.Field(), ferr.Error())
		}
		return errs, nil
	default:
		return nil, err
	}
}

// Bind binds the c request into req like BindErrs, but it also writes
// a JSON error response and returns false if binding fails.
func Bind(c *gin.Context, req any, b binding.Binding) bool {
	errs, err := BindErrs(c, req, b)
	var ive *validator.InvalidValidationError
	switch {
	case errors.As(err, &ive):
		c.JSON(http.StatusInternalServerError, gin.H{
			"detail": err.Error(),
		})
	case err != nil:
		c.JSON(http.StatusBadRequest, gin.H{
			"detail": err.Error(),
		})
	case errs != nil:
		c.JSON(http.StatusBadRequest, errs)
	default:
		return true
	}
	return false
}

func AddErr(errs *map[string][]string, name string, msgs ...string) {
	if (*errs) == nil {
		*errs = make(map[string][]string)
	}
	(*errs)[name] = append((*errs)[name], msgs...)
}

// FieldErrs converts the form validation errors of err (if any) into
// the field name to messages map which Bind reports.
func FieldErrs(err error) map[string][]string {
	var fe adminuc.FieldErrors
	if !errors.As(err, &fe) {
		return nil
	}
	var errs map[string][]string
	for name, ferr := range fe {
		AddErr(&errs, name, ferr.Error())
	}
	return errs
}

// SerErr writes err as a JSON document. The status code is chosen by
// cerr.StatusCode and the form field errors are listed by their names.
func SerErr(c *gin.Context, err error) {
	code := cerr.StatusCode(err)
	if errs := FieldErrs(err); errs != nil {
		c.JSON(code, gin.H{"detail": err.Error(), "fields": errs})
		return
	}
	c.JSON(code, gin.H{"detail": err.Error()})
}

// WantsJSON reports whether the client prefers a JSON document over
// an HTML page. Clients which send no Accept header get HTML.
func WantsJSON(c *gin.Context) bool {
	return c.NegotiateFormat(binding.MIMEHTML, binding.MIMEJSON) ==
		binding.MIMEJSON
}

// Respond writes data as JSON if the client prefers it, otherwise the
// page node is rendered as an HTML document.
func Respond(c *gin.Context, code int, data any, page g.Node) {
	if WantsJSON(c) {
		c.JSON(code, data)
		return
	}
	HTML(c, code, page)
}

// HTML renders the n node with the given status code.
func HTML(c *gin.Context, code int, n g.Node) {
	c.Render(code, Page{Node: n})
}

// Page adapts a gomponents node to the gin render.Render interface.
type Page struct {
	Node g.Node
}

var htmlContentType = []string{"text/html; charset=utf-8"}

// Render writes the HTML form of p.
func (p Page) Render(w http.ResponseWriter) error {
	p.WriteContentType(w)
	return p.Node.Render(w)
}

// WriteContentType sets the text/html content type header.
func (p Page) WriteContentType(w http.ResponseWriter) {
	h := w.Header()
	if val := h["Content-Type"]; len(val) == 0 {
		h["Content-Type"] = htmlContentType
	}
}
