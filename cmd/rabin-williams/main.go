// Command rabin-williams generates Rabin-Williams key pairs, signs and
// verifies messages, and runs the requester and signer sides of the blind
// signature protocol.
//
// Keys are stored as hex text: the private key file holds p and q on two
// lines, the public key file holds the modulus n. Signatures, blinded
// messages, and blinding factors are exchanged as hex as well.
package main

import (
	"fmt"
	"io"
	"os"

	logging "github.com/op/go-logging"
	"github.com/spf13/cobra"

	"github.com/TheFrozenFire/rabin-williams-signatures/pkg/rabinwilliams"
)

func main() {
	root := &cobra.Command{
		Use:           "rabin-williams",
		Short:         "Rabin-Williams digital signature CLI",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			verbose, _ := cmd.Flags().GetBool("verbose")
			setupLogging(verbose)
		},
	}
	root.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	root.PersistentFlags().String("hash", "sha256", "hash function (sha256, sha512, sha3-256, blake2b-256)")

	root.AddCommand(
		GenerateCmd(),
		SignCmd(),
		VerifyCmd(),
		BlindCmd(),
		BlindSignCmd(),
		UnblindCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setupLogging(verbose bool) {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	formatted := logging.NewBackendFormatter(backend,
		logging.MustStringFormatter(`%{level:.4s} %{module}: %{message}`))
	leveled := logging.AddModuleLevel(formatted)
	if verbose {
		leveled.SetLevel(logging.DEBUG, "")
	} else {
		leveled.SetLevel(logging.WARNING, "")
	}
	logging.SetBackend(leveled)
}

// hasherFromFlags resolves the persistent --hash flag.
func hasherFromFlags(cmd *cobra.Command) (rabinwilliams.Hasher, error) {
	name, _ := cmd.Flags().GetString("hash")
	return rabinwilliams.HasherByName(name)
}

// readMessage returns the --message flag when set, otherwise the whole of
// stdin.
func readMessage(cmd *cobra.Command) ([]byte, error) {
	message, _ := cmd.Flags().GetString("message")
	if message != "" {
		return []byte(message), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("reading message from stdin: %w", err)
	}
	return data, nil
}
