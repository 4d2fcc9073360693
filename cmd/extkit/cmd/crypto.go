// File: crypto.go
// Title: Encryption Commands
// Description: The encrypt and decrypt commands around stringx passphrase
//              encryption. Key derivation cost comes from the settings.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/extkit/core/log"
	"github.com/msto63/extkit/utils/stringx"
)

func newEncryptCmd(opts *options) *cobra.Command {
	var pass string

	cmd := &cobra.Command{
		Use:   "encrypt [text]",
		Short: "Encrypt text with a passphrase",
		Long: `Encrypts text, or stdin when no text is given, and prints a URL-safe
token. The passphrase comes from --passphrase or EXTKIT_PASSPHRASE.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := passphrase(pass)
			if err != nil {
				return err
			}
			plain, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			params := stringx.ScryptParams{
				N: opts.settings.ScryptN,
				R: opts.settings.ScryptR,
				P: opts.settings.ScryptP,
			}
			timer := opts.logger.StartTimer("encrypt")
			token, err := stringx.EncryptStringWithParams(plain, secret, params)
			if err != nil {
				timer.StopWithError(err)
				return err
			}
			timer.StopWithResult(true, log.Fields{"bytes": len(plain)})

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVarP(&pass, "passphrase", "p", "", "passphrase")
	return cmd
}

func newDecryptCmd(opts *options) *cobra.Command {
	var pass string

	cmd := &cobra.Command{
		Use:   "decrypt [token]",
		Short: "Decrypt a token produced by encrypt",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := passphrase(pass)
			if err != nil {
				return err
			}
			token, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			plain, err := stringx.DecryptString(strings.TrimSpace(token), secret)
			if err != nil {
				opts.logger.LogError(err)
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), plain)
			if !strings.HasSuffix(plain, "\n") {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&pass, "passphrase", "p", "", "passphrase")
	return cmd
}
