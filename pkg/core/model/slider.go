// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import "io"

// ImageSlider is one entry of the homepage image slider.
type ImageSlider struct {
	ID          ID     `json:"id"`
	URL         string `json:"url"`
	Alt         string `json:"alt"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Identity returns the server-assigned identifier of s.
func (s ImageSlider) Identity() ID {
	return s.ID
}

// Draft returns the client-editable part of s.
func (s ImageSlider) Draft() SlideDraft {
	return SlideDraft{
		URL:         s.URL,
		Alt:         s.Alt,
		Title:       s.Title,
		Description: s.Description,
	}
}

// SlideDraft is a slider entry which is not assigned an ID yet.
type SlideDraft struct {
	URL         string `json:"url"`
	Alt         string `json:"alt"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// WithID turns the d draft into an ImageSlider having the given id.
func (d SlideDraft) WithID(id ID) ImageSlider {
	return ImageSlider{
		ID:          id,
		URL:         d.URL,
		Alt:         d.Alt,
		Title:       d.Title,
		Description: d.Description,
	}
}

// ImageFile is an image which should be uploaded. The same value is
// produced by a file picker, a drag-and-drop action, and a clipboard
// paste, so one upload routine can serve all of them.
type ImageFile struct {
	Name        string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}
