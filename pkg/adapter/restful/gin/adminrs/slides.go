// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package adminrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/momeni/car-dealer/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/car-dealer/pkg/adapter/restful/gin/views"
	"github.com/momeni/car-dealer/pkg/core/model"
	"github.com/momeni/car-dealer/pkg/core/usecase/adminuc"
	g "maragu.dev/gomponents"
)

func (rs *resource) NewSlide(c *gin.Context) {
	f := adminuc.SlideForm{}
	serdser.Respond(c, http.StatusOK, f,
		views.SlideFormPage(rs.site, "", f, nil))
}

func (rs *resource) EditSlide(c *gin.Context) {
	id := model.ID(c.Param("id"))
	s, err := rs.admin.Slide(c, id)
	if err != nil {
		rs.fail(c, err, func() g.Node {
			return views.SlideFormPage(rs.site, id, adminuc.SlideForm{}, err)
		})
		return
	}
	f := adminuc.SlideFormFrom(s)
	serdser.Respond(c, http.StatusOK, f,
		views.SlideFormPage(rs.site, id, f, nil))
}

func (rs *resource) SubmitSlide(c *gin.Context) {
	id := model.ID(c.Param("id"))
	f, err := rs.DserSlideForm(c)
	if err == nil {
		var s model.ImageSlider
		s, err = rs.admin.SubmitSlide(c, session(c), id, f)
		if err == nil {
			code := http.StatusOK
			if id.IsZero() {
				code = http.StatusCreated
			}
			rs.done(c, code, s)
			return
		}
	}
	rs.fail(c, err, func() g.Node {
		return views.SlideFormPage(rs.site, id, f, err)
	})
}

func (rs *resource) DeleteSlide(c *gin.Context) {
	id := model.ID(c.Param("id"))
	err := rs.admin.DeleteSlide(c, session(c), id, rs.DserConfirmed(c))
	rs.deleted(c, id, err)
}
