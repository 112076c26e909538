// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package catalogrs

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/momeni/car-dealer/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/car-dealer/pkg/core/cerr"
	"github.com/momeni/car-dealer/pkg/core/filter"
	"github.com/momeni/car-dealer/pkg/core/model"
	"github.com/momeni/car-dealer/pkg/core/usecase/cataloguc"
	"github.com/momeni/car-dealer/pkg/core/usecase/contactuc"
)

func (rs *resource) DserFilter(c *gin.Context) (filter.State, bool) {
	s := filter.State{}
	if ok := serdser.Bind(c, &s, binding.Query); !ok {
		return s, false
	}
	return s.Normalize(), true
}

type rawDetailReq struct {
	ID    string `uri:"id" binding:"required"`
	Index int    `form:"i" binding:"omitempty,min=0"`
}

type detailReq struct {
	ID    model.ID
	Index int
}

func (rs *resource) DserDetailReq(c *gin.Context) (*detailReq, bool) {
	req := &rawDetailReq{}
	if err := c.ShouldBindUri(req); err != nil {
		serdser.SerErr(c, cerr.BadRequest(err))
		return nil, false
	}
	if ok := serdser.Bind(c, req, binding.Query); !ok {
		return nil, false
	}
	return &detailReq{ID: model.ID(req.ID), Index: req.Index}, true
}

func (rs *resource) DserChannel(c *gin.Context) (contactuc.Channel, bool) {
	ch, err := contactuc.ParseChannel(c.Param("channel"))
	if err != nil {
		serdser.SerErr(c, cerr.NotFound(err))
		return "", false
	}
	return ch, true
}

// ListingResp is the JSON form of a listing view.
type ListingResp struct {
	Filter  filter.State        `json:"filter"`
	Options OptionsResp         `json:"options"`
	Summary string              `json:"summary"`
	Shown   int                 `json:"shown"`
	Total   int                 `json:"total"`
	Cars    []model.Car         `json:"cars"`
	Slides  []model.ImageSlider `json:"slides"`
	Error   string              `json:"error,omitempty"`
}

// OptionsResp lists the values of the filter controls.
type OptionsResp struct {
	Brands        []string `json:"brands"`
	BodyTypes     []string `json:"bodyTypes"`
	FuelTypes     []string `json:"fuelTypes"`
	Transmissions []string `json:"transmissions"`
}

func SerListing(v *cataloguc.ListingView) *ListingResp {
	resp := &ListingResp{
		Filter: v.Filter,
		Options: OptionsResp{
			Brands:        v.Options.Brands,
			BodyTypes:     v.Options.BodyTypes,
			FuelTypes:     v.Options.FuelTypes,
			Transmissions: v.Options.Transmissions,
		},
		Summary: v.Summary(),
		Shown:   v.Shown(),
		Total:   v.Total,
		Cars:    v.Cars,
		Slides:  v.Slides,
	}
	if v.Err != nil {
		resp.Error = v.Err.Error()
	}
	return resp
}

// DetailResp is the JSON form of a detail view.
type DetailResp struct {
	Car      model.Car     `json:"car"`
	Prev     *model.ID     `json:"prev"`
	Next     *model.ID     `json:"next"`
	Carousel *CarouselResp `json:"carousel"`
}

// CarouselResp is the JSON form of a carousel state.
type CarouselResp struct {
	Current     int           `json:"current"`
	Slides      []model.Image `json:"slides"`
	Placeholder bool          `json:"placeholder"`
}

func SerDetail(v *cataloguc.DetailView) *DetailResp {
	resp := &DetailResp{Car: v.Car, Carousel: SerCarousel(&v.Carousel)}
	if v.HasPrev {
		resp.Prev = &v.Prev
	}
	if v.HasNext {
		resp.Next = &v.Next
	}
	return resp
}

func SerCarousel(c *cataloguc.Carousel) *CarouselResp {
	return &CarouselResp{
		Current:     c.Current,
		Slides:      c.Slides,
		Placeholder: c.Placeholder,
	}
}

func errBody(err error) gin.H {
	return gin.H{"detail": err.Error()}
}
