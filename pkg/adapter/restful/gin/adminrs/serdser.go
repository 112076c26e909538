// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package adminrs

import (
	"errors"
	"io"
	"mime"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
	"github.com/momeni/car-dealer/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/car-dealer/pkg/core/cerr"
	"github.com/momeni/car-dealer/pkg/core/model"
	"github.com/momeni/car-dealer/pkg/core/usecase/adminuc"
)

// ErrInvalidLogin indicates a login form with no valid email or no
// password.
var ErrInvalidLogin = errors.New("a valid email and a password are required")

type loginReq struct {
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required"`
}

// bindForm binds a urlencoded or multipart form, or a JSON body,
// based on the request content type. Failed validation rules (only
// required fields are validated) are reported as adminuc.FieldErrors.
func bindForm(c *gin.Context, req any) error {
	b := binding.Default(c.Request.Method, c.ContentType())
	errs, err := serdser.BindErrs(c, req, b)
	switch {
	case err != nil:
		return cerr.BadRequest(err)
	case errs != nil:
		fe := adminuc.FieldErrors{}
		for name := range errs {
			fe[name] = adminuc.ErrRequired
		}
		return cerr.BadRequest(fe)
	default:
		return nil
	}
}

func (rs *resource) DserLoginReq(c *gin.Context) (loginReq, error) {
	req := loginReq{}
	if err := bindForm(c, &req); err != nil {
		return req, cerr.BadRequest(ErrInvalidLogin)
	}
	return req, nil
}

func (rs *resource) DserCarForm(c *gin.Context) (adminuc.CarForm, error) {
	f := adminuc.CarForm{}
	err := bindForm(c, &f)
	return f, err
}

func (rs *resource) DserSlideForm(c *gin.Context) (adminuc.SlideForm, error) {
	f := adminuc.SlideForm{}
	err := bindForm(c, &f)
	return f, err
}

type confirmReq struct {
	Confirm string `form:"confirm" json:"confirm"`
}

// DserConfirmed reports whether the delete request carries confirm=yes.
// The confirmation may be sent as a form field or a query parameter.
func (rs *resource) DserConfirmed(c *gin.Context) bool {
	req := confirmReq{}
	if err := c.ShouldBind(&req); err != nil || req.Confirm == "" {
		req.Confirm = c.Query("confirm")
	}
	return req.Confirm == "yes"
}

// pastedSource marks uploads of the clipboard contents, which carry no
// meaningful file name.
const pastedSource = "paste"

func (rs *resource) DserImageFile(c *gin.Context) (model.ImageFile, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		return model.ImageFile{}, cerr.BadRequest(err)
	}
	ct := fh.Header.Get("Content-Type")
	name := filepath.Base(fh.Filename)
	if c.PostForm("source") == pastedSource || name == "." || name == "/" {
		name = uuid.NewString() + extension(ct)
	}
	return model.ImageFile{
		Name:        name,
		ContentType: ct,
		Size:        fh.Size,
		Open: func() (io.ReadCloser, error) {
			f, err := fh.Open()
			if err != nil {
				return nil, err
			}
			return f, nil
		},
	}, nil
}

// extension derives a file name extension from an image MIME type,
// e.g., ".png" for image/png and ".svg" for image/svg+xml.
func extension(contentType string) string {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return ""
	}
	_, sub, ok := strings.Cut(mt, "/")
	if !ok || sub == "" {
		return ""
	}
	sub, _, _ = strings.Cut(sub, "+")
	return "." + sub
}

// DashboardResp is the JSON form of the admin dashboard.
type DashboardResp struct {
	Cars   []model.Car         `json:"cars"`
	Slides []model.ImageSlider `json:"slides"`
}
