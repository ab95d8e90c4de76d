package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/TheFrozenFire/rabin-williams-signatures/internal/keyfile"
)

func SignCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a message",
		RunE:  signCmd,
	}
	addSignCmdFlags(cmd)
	return cmd
}

func addSignCmdFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("private-key", "k", "", "path to the private key file")
	cmd.MarkFlagRequired("private-key")

	cmd.Flags().StringP("message", "m", "", "message to sign (reads stdin when omitted)")
	cmd.Flags().StringP("output", "o", "", "output file for the signature (stdout when omitted)")
}

func signCmd(cmd *cobra.Command, args []string) error {
	keyPath, _ := cmd.Flags().GetString("private-key")
	outputPath, _ := cmd.Flags().GetString("output")

	hasher, err := hasherFromFlags(cmd)
	if err != nil {
		return err
	}

	privateKey, err := keyfile.ReadPrivateKey(keyPath, hasher)
	if err != nil {
		return err
	}

	message, err := readMessage(cmd)
	if err != nil {
		return err
	}

	signature, err := privateKey.Sign(message)
	if err != nil {
		return err
	}

	if outputPath != "" {
		if err := keyfile.WriteHex(outputPath, signature); err != nil {
			return err
		}
		fmt.Printf("Signature saved to: %s\n", outputPath)
		return nil
	}

	fmt.Fprintln(os.Stdout, hex.EncodeToString(signature))
	return nil
}
