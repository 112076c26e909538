// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"fmt"

	"github.com/momeni/car-dealer/pkg/adapter/config"
	"github.com/momeni/car-dealer/pkg/core/usecase/sessionuc"
	"github.com/spf13/cobra"
)

// client holds the use cases and the persistent session of one CLI
// process.
type client struct {
	cfg  *config.Config
	ucs  *config.UseCases
	sess *sessionuc.Store
}

// withClient loads the configuration, opens the session database, and
// runs f with the resulting client. The database is closed afterwards.
func withClient(cmd *cobra.Command, f func(cl *client) error) (err error) {
	ctx := cmd.Context()
	c, err := loadConfig()
	if err != nil {
		return err
	}
	ucs, err := c.NewUseCases()
	if err != nil {
		return err
	}
	tokens, closer, err := c.OpenTokenStorage(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err2 := closer(); err2 != nil && err == nil {
			err = fmt.Errorf("closing session database: %w", err2)
		}
	}()
	sess, err := sessionuc.New(ctx, tokens)
	if err != nil {
		return fmt.Errorf("loading session: %w", err)
	}
	return f(&client{cfg: c, ucs: ucs, sess: sess})
}

// run adapts f to the cobra RunE signature.
func run(f func(cmd *cobra.Command, args []string, cl *client) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		return withClient(cmd, func(cl *client) error {
			return f(cmd, args, cl)
		})
	}
}
