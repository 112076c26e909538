// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"fmt"
	"text/tabwriter"

	"github.com/momeni/car-dealer/pkg/core/model"
	"github.com/momeni/car-dealer/pkg/core/usecase/adminuc"
	"github.com/spf13/cobra"
)

var slideInput adminuc.SlideForm

var slidesCmd = &cobra.Command{
	Use:   "slides",
	Short: "List, add, edit, or delete the homepage image slider entries",
}

var slidesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the image slider entries",
	Args:  cobra.NoArgs,
	RunE: run(func(cmd *cobra.Command, _ []string, cl *client) error {
		_, slides, err := cl.ucs.Admin.Dashboard(cmd.Context())
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tTITLE\tURL")
		for _, s := range slides {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", s.ID, s.Title, s.URL)
		}
		return tw.Flush()
	}),
}

var slidesAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an image slider entry (--url is required)",
	Args:  cobra.NoArgs,
	RunE: run(func(cmd *cobra.Command, _ []string, cl *client) error {
		s, err := cl.ucs.Admin.SubmitSlide(cmd.Context(), cl.sess, "", slideInput)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "added slide", s.ID)
		return nil
	}),
}

var slidesEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit the given fields of an image slider entry",
	Args:  cobra.ExactArgs(1),
	RunE: run(func(cmd *cobra.Command, args []string, cl *client) error {
		id := model.ID(args[0])
		s, err := cl.ucs.Admin.Slide(cmd.Context(), id)
		if err != nil {
			return err
		}
		f := adminuc.SlideFormFrom(s)
		fs := cmd.Flags()
		for name, field := range map[string]*string{
			"url": &f.URL, "alt": &f.Alt,
			"title": &f.Title, "description": &f.Description,
		} {
			if fs.Changed(name) {
				*field, _ = fs.GetString(name)
			}
		}
		if _, err = cl.ucs.Admin.SubmitSlide(cmd.Context(), cl.sess, id, f); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "updated slide", id)
		return nil
	}),
}

var slidesDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an image slider entry (requires --yes)",
	Args:  cobra.ExactArgs(1),
	RunE: run(func(cmd *cobra.Command, args []string, cl *client) error {
		id := model.ID(args[0])
		err := cl.ucs.Admin.DeleteSlide(cmd.Context(), cl.sess, id, confirmed)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "deleted slide", id)
		return nil
	}),
}

func init() {
	for _, c := range []*cobra.Command{slidesAddCmd, slidesEditCmd} {
		fs := c.Flags()
		fs.StringVar(&slideInput.URL, "url", "", "image URL")
		fs.StringVar(&slideInput.Alt, "alt", "", "alternative text")
		fs.StringVar(&slideInput.Title, "title", "", "title")
		fs.StringVar(&slideInput.Description, "description", "", "description")
	}
	slidesDeleteCmd.Flags().BoolVar(&confirmed, "yes", false, "confirm the deletion")

	slidesCmd.AddCommand(slidesListCmd, slidesAddCmd, slidesEditCmd, slidesDeleteCmd)
	rootCmd.AddCommand(slidesCmd)
}
