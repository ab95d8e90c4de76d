package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TheFrozenFire/rabin-williams-signatures/internal/keyfile"
	"github.com/TheFrozenFire/rabin-williams-signatures/pkg/rabinwilliams"
)

func VerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a signature",
		RunE:  verifyCmd,
	}
	addVerifyCmdFlags(cmd)
	return cmd
}

func addVerifyCmdFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("public-key", "k", "", "path to the public key file")
	cmd.MarkFlagRequired("public-key")

	cmd.Flags().StringP("signature", "s", "", "path to the signature file")
	cmd.MarkFlagRequired("signature")

	cmd.Flags().StringP("message", "m", "", "message to verify (reads stdin when omitted)")
}

func verifyCmd(cmd *cobra.Command, args []string) error {
	keyPath, _ := cmd.Flags().GetString("public-key")
	signaturePath, _ := cmd.Flags().GetString("signature")

	hasher, err := hasherFromFlags(cmd)
	if err != nil {
		return err
	}

	publicKey, err := keyfile.ReadPublicKey(keyPath, hasher)
	if err != nil {
		return err
	}

	signature, err := keyfile.ReadHex(signaturePath)
	if err != nil {
		return err
	}

	message, err := readMessage(cmd)
	if err != nil {
		return err
	}

	valid, err := publicKey.Verify(message, signature)
	if err != nil {
		return err
	}

	if !valid {
		fmt.Println("✗ Signature is invalid")
		return rabinwilliams.ErrInvalidSignature
	}

	fmt.Println("✓ Signature is valid")
	return nil
}
