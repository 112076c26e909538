// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package restapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/momeni/car-dealer/pkg/core/cerr"
	"github.com/momeni/car-dealer/pkg/core/model"
)

// Login exchanges the admin credentials for an access and refresh
// token pair. A response which misses one of the tokens fails.
func (c *Client) Login(
	ctx context.Context, creds model.Credentials,
) (model.Tokens, error) {
	cl, err := call{
		op: cerr.OpLogin, method: http.MethodPost, path: c.tokenPath,
	}.withJSON(map[string]string{
		c.credentialField: creds.Email,
		"password":        creds.Password,
	})
	if err != nil {
		return model.Tokens{}, cl.fail(ctx, err)
	}
	var t model.Tokens
	if err := c.do(ctx, cl, &t); err != nil {
		return model.Tokens{}, err
	}
	if t.State() != model.Authenticated {
		return model.Tokens{}, cl.fail(ctx, errors.New("token pair is incomplete"))
	}
	return t, nil
}
