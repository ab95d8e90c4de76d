package main

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"os"

	"github.com/spf13/cobra"

	"github.com/TheFrozenFire/rabin-williams-signatures/internal/keyfile"
)

func UnblindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "unblind",
		Short: "Unblind a signature after blind signing",
		RunE:  unblindCmd,
	}
	addUnblindCmdFlags(cmd)
	return cmd
}

func addUnblindCmdFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("public-key", "k", "", "path to the public key file")
	cmd.MarkFlagRequired("public-key")

	cmd.Flags().StringP("blinded-signature", "s", "", "path to the blinded signature file (hex-encoded)")
	cmd.MarkFlagRequired("blinded-signature")

	cmd.Flags().StringP("blinding-factor", "r", "", "path to the blinding factor file (hex-encoded)")
	cmd.MarkFlagRequired("blinding-factor")

	cmd.Flags().StringP("output", "o", "", "output file for the unblinded signature (stdout when omitted)")
}

func unblindCmd(cmd *cobra.Command, args []string) error {
	keyPath, _ := cmd.Flags().GetString("public-key")
	signaturePath, _ := cmd.Flags().GetString("blinded-signature")
	factorPath, _ := cmd.Flags().GetString("blinding-factor")
	outputPath, _ := cmd.Flags().GetString("output")

	hasher, err := hasherFromFlags(cmd)
	if err != nil {
		return err
	}

	publicKey, err := keyfile.ReadPublicKey(keyPath, hasher)
	if err != nil {
		return err
	}

	blindSignature, err := keyfile.ReadHex(signaturePath)
	if err != nil {
		return err
	}

	factorBytes, err := keyfile.ReadHex(factorPath)
	if err != nil {
		return err
	}

	signature, err := publicKey.UnblindSignature(blindSignature, new(big.Int).SetBytes(factorBytes))
	if err != nil {
		return err
	}

	if outputPath != "" {
		if err := keyfile.WriteHex(outputPath, signature); err != nil {
			return err
		}
		fmt.Printf("Unblinded signature saved to: %s\n", outputPath)
		return nil
	}

	fmt.Fprintln(os.Stdout, hex.EncodeToString(signature))
	return nil
}
