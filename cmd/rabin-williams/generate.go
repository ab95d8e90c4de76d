package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TheFrozenFire/rabin-williams-signatures/internal/keyfile"
	"github.com/TheFrozenFire/rabin-williams-signatures/pkg/rabinwilliams"
)

func GenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a new key pair",
		RunE:  generateCmd,
	}
	addGenerateCmdFlags(cmd)
	return cmd
}

func addGenerateCmdFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("bits", "b", 1024, "bit size for the key (minimum 1024)")
	cmd.Flags().String("public-key", "public_key.hex", "output file for the public key (hex-encoded modulus n)")
	cmd.Flags().String("private-key", "private_key.hex", "output file for the private key (hex-encoded p and q, one per line)")
}

func generateCmd(cmd *cobra.Command, args []string) error {
	bits, _ := cmd.Flags().GetInt("bits")
	publicPath, _ := cmd.Flags().GetString("public-key")
	privatePath, _ := cmd.Flags().GetString("private-key")

	hasher, err := hasherFromFlags(cmd)
	if err != nil {
		return err
	}

	fmt.Printf("Generating %d-bit key pair...\n", bits)
	keyPair, err := rabinwilliams.GenerateKeyPairWithHasher(bits, hasher)
	if err != nil {
		return err
	}

	if err := keyfile.WritePublicKey(publicPath, keyPair.Public); err != nil {
		return err
	}
	fmt.Printf("Public key saved to: %s\n", publicPath)

	if err := keyfile.WritePrivateKey(privatePath, keyPair.Private); err != nil {
		return err
	}
	fmt.Printf("Private key saved to: %s\n", privatePath)

	return nil
}
