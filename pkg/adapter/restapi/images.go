// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package restapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"

	"github.com/momeni/car-dealer/pkg/core/cerr"
	"github.com/momeni/car-dealer/pkg/core/model"
)

const imageResource = "image"

// UploadImage sends f as the "image" field of a multipart form and
// returns the stored image ID and URL.
func (c *Client) UploadImage(
	ctx context.Context, f model.ImageFile, token string,
) (model.Image, error) {
	cl := call{
		op: cerr.OpUpload, resource: imageResource,
		method: http.MethodPost, path: imagePath, token: token,
	}
	body, contentType, err := imageForm(f)
	if err != nil {
		return model.Image{}, cl.fail(ctx, err)
	}
	cl.body, cl.contentType = body, contentType
	var img model.Image
	if err := c.do(ctx, cl, &img); err != nil {
		return model.Image{}, err
	}
	if img.URL == "" {
		return model.Image{}, cl.incomplete(ctx, "url")
	}
	return img, nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func imageForm(f model.ImageFile) (io.Reader, string, error) {
	if f.Open == nil {
		return nil, "", fmt.Errorf("image %q has no content", f.Name)
	}
	r, err := f.Open()
	if err != nil {
		return nil, "", fmt.Errorf("opening image %q: %w", f.Name, err)
	}
	defer r.Close()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(
		`form-data; name="image"; filename="%s"`,
		quoteEscaper.Replace(f.Name),
	))
	h.Set("Content-Type", f.ContentType)
	part, err := w.CreatePart(h)
	if err != nil {
		return nil, "", fmt.Errorf("creating image part: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, "", fmt.Errorf("reading image %q: %w", f.Name, err)
	}
	if err := w.Close(); err != nil {
		return nil, "", fmt.Errorf("closing form: %w", err)
	}
	return buf, w.FormDataContentType(), nil
}

// DeleteImage deletes the id image.
func (c *Client) DeleteImage(ctx context.Context, id model.ID, token string) error {
	return c.do(ctx, call{
		op: cerr.OpDelete, resource: imageResource,
		method: http.MethodDelete, token: token,
		path: imageDeletePath + url.PathEscape(id.String()) + "/",
	}, nil)
}
