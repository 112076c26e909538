// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package adminrs

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/momeni/car-dealer/pkg/adapter/restful/gin/serdser"
	"github.com/momeni/car-dealer/pkg/core/model"
)

// UploadImage uploads the multipart "image" file. The response is
// always a JSON document, since it is requested by the upload script.
func (rs *resource) UploadImage(c *gin.Context) {
	f, err := rs.DserImageFile(c)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	img, err := rs.admin.UploadImage(c, session(c), f)
	if err != nil {
		serdser.SerErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, img)
}

func (rs *resource) DeleteImage(c *gin.Context) {
	id := model.ID(c.Param("id"))
	err := rs.admin.DeleteImage(c, session(c), id)
	rs.deleted(c, id, err)
}
