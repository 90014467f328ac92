// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/MKhiriev/go-report-keeper/models"
	"github.com/spf13/cobra"
)

type credentialFlags struct {
	email    string
	password string
	quiet    bool
}

func (f *credentialFlags) bind(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.email, "email", "", "account e-mail (required)")
	flags.StringVar(&f.password, "password", "", "account password (required)")
	flags.BoolVarP(&f.quiet, "quiet", "q", false, "print the token only")

	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
}

func (c *cli) registerCmd() *cobra.Command {
	var flags credentialFlags
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and print its access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			auth, err := c.adapter.Register(cmd.Context(), models.User{Email: flags.email, Password: flags.password})
			if err != nil {
				return err
			}
			printAuth(cmd, auth, flags.quiet)
			return nil
		},
	}
	flags.bind(cmd)
	return cmd
}

func (c *cli) loginCmd() *cobra.Command {
	var flags credentialFlags
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and print an access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			auth, err := c.adapter.Login(cmd.Context(), models.User{Email: flags.email, Password: flags.password})
			if err != nil {
				return err
			}
			printAuth(cmd, auth, flags.quiet)
			return nil
		},
	}
	flags.bind(cmd)
	return cmd
}

func printAuth(cmd *cobra.Command, auth models.AuthResponse, quiet bool) {
	out := cmd.OutOrStdout()
	if quiet {
		fmt.Fprintln(out, auth.Token)
		return
	}

	fmt.Fprintf(out, "User:  #%d %s\n", auth.UserID, auth.Email)
	fmt.Fprintf(out, "Token: %s\n", auth.Token)
	fmt.Fprintf(out, "\nexport %s=%s\n", tokenEnv, auth.Token)
}
