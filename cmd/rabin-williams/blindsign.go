package main

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"os"

	"github.com/spf13/cobra"

	"github.com/TheFrozenFire/rabin-williams-signatures/internal/keyfile"
)

func BlindSignCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blind-sign",
		Short: "Sign a blinded message",
		RunE:  blindSignCmd,
	}
	addBlindSignCmdFlags(cmd)
	return cmd
}

func addBlindSignCmdFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("private-key", "k", "", "path to the private key file")
	cmd.MarkFlagRequired("private-key")

	cmd.Flags().StringP("blinded-message", "m", "", "path to the blinded message file (hex-encoded)")
	cmd.MarkFlagRequired("blinded-message")

	cmd.Flags().StringP("output", "o", "", "output file for the blinded signature (stdout when omitted)")
}

func blindSignCmd(cmd *cobra.Command, args []string) error {
	keyPath, _ := cmd.Flags().GetString("private-key")
	blindedPath, _ := cmd.Flags().GetString("blinded-message")
	outputPath, _ := cmd.Flags().GetString("output")

	hasher, err := hasherFromFlags(cmd)
	if err != nil {
		return err
	}

	privateKey, err := keyfile.ReadPrivateKey(keyPath, hasher)
	if err != nil {
		return err
	}

	blindedBytes, err := keyfile.ReadHex(blindedPath)
	if err != nil {
		return err
	}

	signature, err := privateKey.RawSign(new(big.Int).SetBytes(blindedBytes))
	if err != nil {
		return err
	}

	if outputPath != "" {
		if err := keyfile.WriteHex(outputPath, signature); err != nil {
			return err
		}
		fmt.Printf("Blinded signature saved to: %s\n", outputPath)
		return nil
	}

	fmt.Fprintln(os.Stdout, hex.EncodeToString(signature))
	return nil
}
