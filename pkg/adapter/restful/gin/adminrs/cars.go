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

func (rs *resource) NewCar(c *gin.Context) {
	f := adminuc.EmptyCarForm()
	serdser.Respond(c, http.StatusOK, f,
		views.CarFormPage(rs.site, "", f, nil))
}

func (rs *resource) EditCar(c *gin.Context) {
	id := model.ID(c.Param("id"))
	car, err := rs.admin.Car(c, id)
	if err != nil {
		rs.fail(c, err, func() g.Node {
			return views.CarFormPage(rs.site, id, adminuc.EmptyCarForm(), err)
		})
		return
	}
	f := adminuc.CarFormFrom(car)
	serdser.Respond(c, http.StatusOK, f,
		views.CarFormPage(rs.site, id, f, nil))
}

// SubmitCar creates a car (POST /admin/cars) or updates the id car
// (POST /admin/cars/:id) based on the submitted form.
func (rs *resource) SubmitCar(c *gin.Context) {
	id := model.ID(c.Param("id"))
	f, err := rs.DserCarForm(c)
	if err == nil {
		var car model.Car
		car, err = rs.admin.SubmitCar(c, session(c), id, f)
		if err == nil {
			code := http.StatusOK
			if id.IsZero() {
				code = http.StatusCreated
			}
			rs.done(c, code, car)
			return
		}
	}
	rs.fail(c, err, func() g.Node {
		return views.CarFormPage(rs.site, id, f, err)
	})
}

func (rs *resource) DeleteCar(c *gin.Context) {
	id := model.ID(c.Param("id"))
	err := rs.admin.DeleteCar(c, session(c), id, rs.DserConfirmed(c))
	rs.deleted(c, id, err)
}

// deleted finishes a delete action. A failure re-renders the dashboard
// with an alert.
func (rs *resource) deleted(c *gin.Context, id model.ID, err error) {
	if err != nil {
		rs.fail(c, err, func() g.Node {
			cars, slides, _ := rs.admin.Dashboard(c)
			return views.DashboardPage(rs.site, cars, slides, err)
		})
		return
	}
	rs.done(c, http.StatusOK, gin.H{"deleted": id})
}
