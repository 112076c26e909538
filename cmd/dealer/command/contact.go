// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"fmt"

	"github.com/momeni/car-dealer/pkg/core/cerr"
	"github.com/momeni/car-dealer/pkg/core/model"
	"github.com/momeni/car-dealer/pkg/core/usecase/contactuc"
	"github.com/spf13/cobra"
)

var via string

var contactCmd = &cobra.Command{
	Use:   "contact [id]",
	Short: "Print the contact link about a car, or a general one",
	Long: `Print the WhatsApp, Viber, or email contact link which carries a
prefilled inquiry about the id car. Without an id, the general inquiry
link of the dealership is printed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ch, err := contactuc.ParseChannel(via)
		if err != nil {
			return fmt.Errorf("--via %q: %w", via, err)
		}
		if len(args) == 0 {
			c, err := loadConfig()
			if err != nil {
				return err
			}
			uc, err := c.NewContact()
			if err != nil {
				return err
			}
			link, _ := uc.GeneralLink(ch)
			fmt.Fprintln(cmd.OutOrStdout(), link)
			return nil
		}
		return withClient(cmd, func(cl *client) error {
			v := cl.ucs.Catalog.Detail(cmd.Context(), model.ID(args[0]), 1)
			switch {
			case v.Err != nil:
				return v.Err
			case !v.Found:
				return cerr.NotFound(fmt.Errorf("car %q is not found", args[0]))
			}
			link, _ := cl.ucs.Contact.Link(ch, v.Car)
			fmt.Fprintln(cmd.OutOrStdout(), link)
			return nil
		})
	},
}

func init() {
	contactCmd.Flags().StringVar(&via, "via", string(contactuc.WhatsApp),
		"contact channel: whatsapp, viber, or email")
	rootCmd.AddCommand(contactCmd)
}
