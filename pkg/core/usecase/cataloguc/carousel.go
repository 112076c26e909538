// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package cataloguc

import "github.com/momeni/car-dealer/pkg/core/model"

// Carousel is the image carousel state of a detail page.
// Current is 1-based and zero means that the carousel is not
// initialized yet. The dot indicators and the displayed image are
// both derived from Current, so they can not diverge.
type Carousel struct {
	Slides      []model.Image
	Current     int
	Placeholder bool // Slides holds one placeholder image
}

// NewCarousel prepares the carousel of car. Its attached images are
// used if any; otherwise its main image is used, and as the last
// resort, one placeholder slide is shown.
func NewCarousel(car model.Car, placeholder string) Carousel {
	c := Carousel{}
	switch {
	case len(car.Images) > 0:
		c.Slides = car.Images
	case car.Image != "":
		c.Slides = []model.Image{{URL: car.Image}}
	default:
		c.Slides = []model.Image{{URL: placeholder}}
		c.Placeholder = true
	}
	c.Current = 1
	return c
}

// Count returns the number of slides.
func (c *Carousel) Count() int {
	return len(c.Slides)
}

// Select makes the i-th slide current, clamping i into the valid
// range. It is the action of a dot indicator.
func (c *Carousel) Select(i int) {
	switch n := len(c.Slides); {
	case n == 0:
		c.Current = 0
	case i < 1:
		c.Current = 1
	case i > n:
		c.Current = n
	default:
		c.Current = i
	}
}

// CanPrev reports whether the previous arrow is enabled.
func (c *Carousel) CanPrev() bool {
	return c.Current > 1
}

// CanNext reports whether the next arrow is enabled.
func (c *Carousel) CanNext() bool {
	return c.Current > 0 && c.Current < len(c.Slides)
}

// Prev moves to the previous slide, if any.
func (c *Carousel) Prev() {
	if c.CanPrev() {
		c.Current--
	}
}

// Next moves to the next slide, if any.
func (c *Carousel) Next() {
	if c.CanNext() {
		c.Current++
	}
}

// Slide returns the current slide. The ok flag is false for a
// carousel which is not initialized.
func (c *Carousel) Slide() (img model.Image, ok bool) {
	if c.Current < 1 || c.Current > len(c.Slides) {
		return img, false
	}
	return c.Slides[c.Current-1], true
}
