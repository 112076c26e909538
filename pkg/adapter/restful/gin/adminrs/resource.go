// Copyright (c) 2023-2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package adminrs realizes the admin panel resource. It keeps the
// admin session in cookies, guards the panel by a session middleware,
// and delegates the car, image slider, and image mutations to the
// admin use case. Pages are re-rendered with an alert (and the entered
// form state) when a mutation fails, and an expired session sends the
// browser back to the login page.
package adminrs

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/momeni/car-dealer/pkg/adapter/restful/gin/cookiejar"
	"github.com/momeni/car-dealer/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/car-dealer/pkg/adapter/restful/gin/views"
	"github.com/momeni/car-dealer/pkg/core/cerr"
	"github.com/momeni/car-dealer/pkg/core/log"
	"github.com/momeni/car-dealer/pkg/core/model"
	"github.com/momeni/car-dealer/pkg/core/repo"
	"github.com/momeni/car-dealer/pkg/core/usecase/adminuc"
	"github.com/momeni/car-dealer/pkg/core/usecase/sessionuc"
	g "maragu.dev/gomponents"
)

const (
	loginPath     = "/admin/login"
	dashboardPath = "/admin"
	sessionKey    = "adminrs.session"
)

type resource struct {
	admin   *adminuc.UseCase
	auth    repo.Authenticator
	site    views.Site
	cookies cookiejar.Settings
}

// Register instantiates a resource adapting the admin use case with
// the admin panel requests including:
//  1. GET and POST requests to /admin/login, POST to /admin/logout,
//  2. GET request to /admin for the dashboard,
//  3. GET requests to /admin/cars/new and /admin/cars/:id/edit for the
//     car form, POST to /admin/cars (create), /admin/cars/:id (update),
//     and /admin/cars/:id/delete (delete with confirm=yes),
//  4. the same requests under /admin/slides for the image slider,
//  5. POST requests to /admin/images (multipart upload) and
//     /admin/images/:id/delete.
//
// All requests except the login and logout ones need a session.
func Register(
	r gin.IRouter,
	admin *adminuc.UseCase,
	auth repo.Authenticator,
	site views.Site,
	cookies cookiejar.Settings,
) {
	rs := &resource{admin: admin, auth: auth, site: site, cookies: cookies}
	r.GET(loginPath, rs.LoginForm)
	r.POST(loginPath, rs.Login)
	r.POST("/admin/logout", rs.Logout)

	p := r.Group(dashboardPath, rs.Session)
	p.GET("", rs.Dashboard)
	p.GET("/cars/new", rs.NewCar)
	p.GET("/cars/:id/edit", rs.EditCar)
	p.POST("/cars", rs.SubmitCar)
	p.POST("/cars/:id", rs.SubmitCar)
	p.POST("/cars/:id/delete", rs.DeleteCar)
	p.GET("/slides/new", rs.NewSlide)
	p.GET("/slides/:id/edit", rs.EditSlide)
	p.POST("/slides", rs.SubmitSlide)
	p.POST("/slides/:id", rs.SubmitSlide)
	p.POST("/slides/:id/delete", rs.DeleteSlide)
	p.POST("/images", rs.UploadImage)
	p.POST("/images/:id/delete", rs.DeleteImage)
}

func (rs *resource) store(c *gin.Context) (*sessionuc.Store, error) {
	return sessionuc.New(c, cookiejar.New(c, rs.cookies))
}

// Session is a middleware which rehydrates the session store from the
// request cookies and rejects the requests having no usable token.
func (rs *resource) Session(c *gin.Context) {
	sess, err := rs.store(c)
	if err != nil {
		serdser.SerErr(c, err)
		c.Abort()
		return
	}
	if _, err := sess.AccessToken(c); err != nil {
		rs.toLogin(c)
		c.Abort()
		return
	}
	c.Set(sessionKey, sess)
	c.Next()
}

func session(c *gin.Context) *sessionuc.Store {
	return c.MustGet(sessionKey).(*sessionuc.Store)
}

// toLogin sends browsers to the login page and reports 401 to the
// JSON clients.
func (rs *resource) toLogin(c *gin.Context) {
	if serdser.WantsJSON(c) {
		serdser.SerErr(c, cerr.ErrSessionExpired)
		return
	}
	c.Redirect(http.StatusSeeOther, loginPath)
}

// fail reports err. An expired session is sent to the login page,
// while other errors re-render the page of the failed action (built by
// render) with an alert, keeping its entered state.
func (rs *resource) fail(c *gin.Context, err error, render func() g.Node) {
	_ = c.Error(err)
	if errors.Is(err, cerr.ErrSessionExpired) {
		rs.toLogin(c)
		return
	}
	if serdser.WantsJSON(c) {
		serdser.SerErr(c, err)
		return
	}
	serdser.HTML(c, cerr.StatusCode(err), render())
}

// done finishes a successful mutation, sending browsers back to the
// dashboard and the data to the JSON clients.
func (rs *resource) done(c *gin.Context, code int, data any) {
	if serdser.WantsJSON(c) {
		c.JSON(code, data)
		return
	}
	c.Redirect(http.StatusSeeOther, dashboardPath)
}

func (rs *resource) LoginForm(c *gin.Context) {
	if sess, err := rs.store(c); err == nil && sess.IsAuthenticated() {
		c.Redirect(http.StatusSeeOther, dashboardPath)
		return
	}
	serdser.HTML(c, http.StatusOK, views.LoginPage(rs.site, "", nil))
}

func (rs *resource) Login(c *gin.Context) {
	req, err := rs.DserLoginReq(c)
	render := func() g.Node {
		return views.LoginPage(rs.site, req.Email, err)
	}
	if err != nil {
		rs.fail(c, err, render)
		return
	}
	sess, err := rs.store(c)
	if err == nil {
		err = sess.SignIn(c, rs.auth, model.Credentials{
			Email: req.Email, Password: req.Password,
		})
	}
	if err != nil {
		var re *cerr.RemoteError
		if errors.As(err, &re) && re.StatusCode >= 400 && re.StatusCode < 500 {
			err = cerr.Authentication(err)
		}
		log.Info(c, "admin login failed", log.Err("err", err))
		rs.fail(c, err, render)
		return
	}
	rs.done(c, http.StatusOK, gin.H{"state": sess.State().String()})
}

func (rs *resource) Logout(c *gin.Context) {
	sess, err := rs.store(c)
	if err == nil {
		err = sess.Logout(c)
	}
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	if serdser.WantsJSON(c) {
		c.JSON(http.StatusOK, gin.H{"state": sess.State().String()})
		return
	}
	c.Redirect(http.StatusSeeOther, loginPath)
}

func (rs *resource) Dashboard(c *gin.Context) {
	rs.dashboard(c, http.StatusOK, nil)
}

// dashboard renders the dashboard with the alert of a failed action.
func (rs *resource) dashboard(c *gin.Context, code int, alert error) {
	cars, slides, err := rs.admin.Dashboard(c)
	if err != nil {
		alert = errors.Join(alert, err)
		if code < http.StatusBadRequest {
			code = cerr.StatusCode(err)
		}
	}
	if alert != nil && serdser.WantsJSON(c) {
		serdser.SerErr(c, alert)
		return
	}
	serdser.Respond(c, code, DashboardResp{Cars: cars, Slides: slides},
		views.DashboardPage(rs.site, cars, slides, alert))
}
