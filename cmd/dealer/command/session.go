// Copyright (c) 2026 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package command

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/momeni/car-dealer/pkg/core/model"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var loginEmail string

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in as an admin and remember the session",
	Long: `Log in as an admin by exchanging the email and password for a
token pair. The password is prompted for (without echo) when stdin is
a terminal, and read from the first line of stdin otherwise.`,
	Args: cobra.NoArgs,
	RunE: run(func(cmd *cobra.Command, _ []string, cl *client) error {
		in := bufio.NewReader(cmd.InOrStdin())
		email := loginEmail
		if email == "" {
			var err error
			if email, err = prompt(cmd, in, "Email: "); err != nil {
				return err
			}
		}
		password, err := readPassword(cmd, in)
		if err != nil {
			return err
		}
		err = cl.sess.SignIn(cmd.Context(), cl.ucs.Gateway, model.Credentials{
			Email: email, Password: password,
		})
		if err != nil {
			return fmt.Errorf("logging in: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "logged in as", email)
		return nil
	}),
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the admin session",
	Args:  cobra.NoArgs,
	RunE: run(func(cmd *cobra.Command, _ []string, cl *client) error {
		if err := cl.sess.Logout(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "logged out")
		return nil
	}),
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the admin session state",
	Args:  cobra.NoArgs,
	RunE: run(func(cmd *cobra.Command, _ []string, cl *client) error {
		if cl.sess.IsAuthenticated() {
			if _, err := cl.sess.AccessToken(cmd.Context()); err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), message(err))
				return nil
			}
		}
		fmt.Fprintln(cmd.OutOrStdout(), cl.sess.State())
		return nil
	}),
}

var errEmptyInput = errors.New("no input is given")

func prompt(cmd *cobra.Command, in *bufio.Reader, label string) (string, error) {
	fmt.Fprint(cmd.ErrOrStderr(), label)
	line, err := in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading input: %w", err)
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return "", errEmptyInput
	}
	return line, nil
}

func readPassword(cmd *cobra.Command, in *bufio.Reader) (string, error) {
	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("reading password: %w", err)
		}
		return string(b), nil
	}
	return prompt(cmd, in, "")
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "admin email")
	rootCmd.AddCommand(loginCmd, logoutCmd, statusCmd)
}
