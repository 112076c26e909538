// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/momeni/car-dealer/pkg/core/model"
	"github.com/spf13/cobra"
)

var imagesCmd = &cobra.Command{
	Use:   "images",
	Short: "Upload or delete images of the remote storage",
}

var imagesUploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload an image file and print its URL",
	Long: `Upload an image file and print its URL, so it can be used as
the --image of a car or the --url of an image slider entry. The MIME
type is detected from the file contents.`,
	Args: cobra.ExactArgs(1),
	RunE: run(func(cmd *cobra.Command, args []string, cl *client) error {
		f, err := imageFile(args[0])
		if err != nil {
			return err
		}
		img, err := cl.ucs.Admin.UploadImage(cmd.Context(), cl.sess, f)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), img.ID, img.URL)
		return nil
	}),
}

var imagesDeleteCmd = &cobra.Command{
	Use:   "delete <imageId>",
	Short: "Delete an uploaded image",
	Args:  cobra.ExactArgs(1),
	RunE: run(func(cmd *cobra.Command, args []string, cl *client) error {
		id := model.ID(args[0])
		if err := cl.ucs.Admin.DeleteImage(cmd.Context(), cl.sess, id); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "deleted image", id)
		return nil
	}),
}

func imageFile(path string) (model.ImageFile, error) {
	st, err := os.Stat(path)
	if err != nil {
		return model.ImageFile{}, err
	}
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return model.ImageFile{}, fmt.Errorf("detecting MIME type: %w", err)
	}
	return model.ImageFile{
		Name:        filepath.Base(path),
		ContentType: mt.String(),
		Size:        st.Size(),
		Open: func() (io.ReadCloser, error) {
			f, err := os.Open(path)
			if err != nil {
				return nil, err
			}
			return f, nil
		},
	}, nil
}

func init() {
	imagesCmd.AddCommand(imagesUploadCmd, imagesDeleteCmd)
	rootCmd.AddCommand(imagesCmd)
}
