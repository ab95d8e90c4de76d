package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TheFrozenFire/rabin-williams-signatures/internal/keyfile"
)

func BlindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "blind",
		Short: "Blind a message for blind signing",
		RunE:  blindCmd,
	}
	addBlindCmdFlags(cmd)
	return cmd
}

func addBlindCmdFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("public-key", "k", "", "path to the public key file")
	cmd.MarkFlagRequired("public-key")

	cmd.Flags().StringP("message", "m", "", "message to blind (reads stdin when omitted)")
	cmd.Flags().StringP("blinded-message", "b", "blinded_message.hex", "output file for the blinded message (hex-encoded)")
	cmd.Flags().StringP("blinding-factor", "r", "blinding_factor.hex", "output file for the blinding factor r (hex-encoded)")
}

func blindCmd(cmd *cobra.Command, args []string) error {
	keyPath, _ := cmd.Flags().GetString("public-key")
	blindedPath, _ := cmd.Flags().GetString("blinded-message")
	factorPath, _ := cmd.Flags().GetString("blinding-factor")

	hasher, err := hasherFromFlags(cmd)
	if err != nil {
		return err
	}

	publicKey, err := keyfile.ReadPublicKey(keyPath, hasher)
	if err != nil {
		return err
	}

	message, err := readMessage(cmd)
	if err != nil {
		return err
	}

	blinded, r, err := publicKey.BlindMessage(message)
	if err != nil {
		return err
	}

	if err := keyfile.WriteHex(blindedPath, blinded.Bytes()); err != nil {
		return err
	}
	fmt.Printf("Blinded message saved to: %s\n", blindedPath)

	if err := keyfile.WriteHex(factorPath, r.Bytes()); err != nil {
		return err
	}
	fmt.Printf("Blinding factor saved to: %s\n", factorPath)

	return nil
}
