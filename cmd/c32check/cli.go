package main

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/nicolocarcagni/c32check"
	"github.com/spf13/cobra"
)

// Flags variables
type cliFlags struct {
	family         string
	checkVersion   int
	addrVersion    int
	convertVersion int
	minLength      int
	minBytes       int
	listen         string
	port           int
	rate           float64
	burst          int
}

func Execute() {
	rootCmd := newRootCmd()

	// Default to Help if no args provided
	if len(os.Args) < 2 {
		rootCmd.Help()
		os.Exit(0)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		PrintError("%v", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &cliFlags{}

	rootCmd := &cobra.Command{
		Use:           "c32check",
		Short:         "c32check address encoding tool",
		Long:          `Encode, decode and convert c32check, z32check and base58check strings and addresses.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&flags.family, "family", c32check.C32.Name(), "Alphabet family: c32, z32 or b58")

	// --- RAW CODEC ---
	var encodeCmd = &cobra.Command{
		Use:   "encode <hex>",
		Short: "Encode hex in the family alphabet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := c32check.FamilyByName(flags.family)
			if err != nil {
				return err
			}
			s, err := f.Encode(args[0], flags.minLength)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
	encodeCmd.Flags().IntVar(&flags.minLength, "min-length", 0, "Left-pad the output to this many symbols")
	rootCmd.AddCommand(encodeCmd)

	var decodeCmd = &cobra.Command{
		Use:   "decode <string>",
		Short: "Decode a family-encoded string to hex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := c32check.FamilyByName(flags.family)
			if err != nil {
				return err
			}
			h, err := f.Decode(args[0], flags.minBytes)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), h)
			return nil
		},
	}
	decodeCmd.Flags().IntVar(&flags.minBytes, "min-bytes", 0, "Left-pad the output to this many bytes")
	rootCmd.AddCommand(decodeCmd)

	// --- CHECK CODEC ---
	var checkCmd = &cobra.Command{
		Use:   "check",
		Short: "Version + checksum encoding",
	}
	rootCmd.AddCommand(checkCmd)

	var checkEncodeCmd = &cobra.Command{
		Use:   "encode <hex>",
		Short: "Encode hex with a version and checksum",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := c32check.FamilyByName(flags.family)
			if err != nil {
				return err
			}
			s, err := f.CheckEncode(flags.checkVersion, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
	checkEncodeCmd.Flags().IntVar(&flags.checkVersion, "version", 0, "Version number")
	checkEncodeCmd.MarkFlagRequired("version")
	checkCmd.AddCommand(checkEncodeCmd)

	var checkDecodeCmd = &cobra.Command{
		Use:   "decode <string>",
		Short: "Decode a checksummed string and verify it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := c32check.FamilyByName(flags.family)
			if err != nil {
				return err
			}
			version, h, err := f.CheckDecode(args[0])
			if err != nil {
				return err
			}
			printDecoded(cmd.OutOrStdout(), version, "Data", h)
			return nil
		},
	}
	checkCmd.AddCommand(checkDecodeCmd)

	// --- ADDRESS ---
	var addressCmd = &cobra.Command{
		Use:   "address",
		Short: "Hash160 addresses",
	}
	rootCmd.AddCommand(addressCmd)

	var addressEncodeCmd = &cobra.Command{
		Use:   "encode <hash160>",
		Short: "Make an address from a version and a hash160",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := c32check.FamilyByName(flags.family)
			if err != nil {
				return err
			}
			addr, err := f.Address(flags.addrVersion, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), addr)
			return nil
		},
	}
	addressEncodeCmd.Flags().IntVar(&flags.addrVersion, "version", c32check.Versions.Mainnet.P2PKH, "Address version")
	addressCmd.AddCommand(addressEncodeCmd)

	var addressDecodeCmd = &cobra.Command{
		Use:   "decode <address>",
		Short: "Decode an address into its version and hash160",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := c32check.FamilyByName(flags.family)
			if err != nil {
				return err
			}
			version, h, err := f.AddressDecode(args[0])
			if err != nil {
				return err
			}
			printDecoded(cmd.OutOrStdout(), version, "Hash160", h)
			return nil
		},
	}
	addressCmd.AddCommand(addressDecodeCmd)

	var addressPubKeyCmd = &cobra.Command{
		Use:   "pubkey <pubkey-hex>",
		Short: "Make an address from a serialized public key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := c32check.FamilyByName(flags.family)
			if err != nil {
				return err
			}
			pubKey, err := hex.DecodeString(args[0])
			if err != nil {
				return fmt.Errorf("invalid public key hex: %w", err)
			}
			addr, err := f.PublicKeyAddress(flags.addrVersion, pubKey)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), addr)
			return nil
		},
	}
	addressPubKeyCmd.Flags().IntVar(&flags.addrVersion, "version", c32check.Versions.Mainnet.P2PKH, "Address version")
	addressCmd.AddCommand(addressPubKeyCmd)

	// --- CONVERT ---
	var convertCmd = &cobra.Command{
		Use:   "convert",
		Short: "Convert addresses between c32 and base58check",
	}
	rootCmd.AddCommand(convertCmd)

	var toB58Cmd = &cobra.Command{
		Use:   "to-b58 <c32-address>",
		Short: "Convert a c32 address to base58check",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, c32check.C32ToB58Bridge, args[0], flags.convertVersion)
		},
	}
	toB58Cmd.Flags().IntVar(&flags.convertVersion, "version", 0, "Target version (default: equivalent of the source version)")
	convertCmd.AddCommand(toB58Cmd)

	var toC32Cmd = &cobra.Command{
		Use:   "to-c32 <b58-address>",
		Short: "Convert a base58check address to c32",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, c32check.B58ToC32Bridge, args[0], flags.convertVersion)
		},
	}
	toC32Cmd.Flags().IntVar(&flags.convertVersion, "version", 0, "Target version (default: equivalent of the source version)")
	convertCmd.AddCommand(toC32Cmd)

	// --- VERSIONS ---
	var versionsCmd = &cobra.Command{
		Use:   "versions",
		Short: "Print the address version tables",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printVersions(cmd.OutOrStdout())
		},
	}
	rootCmd.AddCommand(versionsCmd)

	// --- SERVER ---
	var serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), serverConfig{
				Listen: flags.listen,
				Port:   flags.port,
				Rate:   flags.rate,
				Burst:  flags.burst,
			})
		},
	}
	serveCmd.Flags().StringVar(&flags.listen, "listen", "0.0.0.0", "Local Listen IP for API")
	serveCmd.Flags().IntVar(&flags.port, "port", 8080, "API Server Port")
	serveCmd.Flags().Float64Var(&flags.rate, "rate", 20, "Requests per second allowed per client IP")
	serveCmd.Flags().IntVar(&flags.burst, "burst", 30, "Request burst allowed per client IP")
	rootCmd.AddCommand(serveCmd)

	return rootCmd
}

func runConvert(cmd *cobra.Command, b *c32check.Bridge, addr string, version int) error {
	var (
		out string
		err error
	)
	if cmd.Flags().Changed("version") {
		out, err = b.ReencodeVersion(addr, version)
	} else {
		out, err = b.Reencode(addr)
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func printDecoded(out io.Writer, version int, label, h string) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Version:\t%d\n", version)
	fmt.Fprintf(w, "%s:\t%s\n", label, h)
	w.Flush()
}

func printVersions(out io.Writer) {
	w := tabwriter.NewWriter(out, 0, 0, 4, ' ', 0)
	fmt.Fprintln(w, "NETWORK\tKIND\tC32\tBASE58")
	rows := []struct {
		network, kind string
		c32, b58      int
	}{
		{"mainnet", "p2pkh", c32check.Versions.Mainnet.P2PKH, c32check.BitcoinVersions.Mainnet.P2PKH},
		{"mainnet", "p2sh", c32check.Versions.Mainnet.P2SH, c32check.BitcoinVersions.Mainnet.P2SH},
		{"testnet", "p2pkh", c32check.Versions.Testnet.P2PKH, c32check.BitcoinVersions.Testnet.P2PKH},
		{"testnet", "p2sh", c32check.Versions.Testnet.P2SH, c32check.BitcoinVersions.Testnet.P2SH},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\n", r.network, r.kind, r.c32, r.b58)
	}
	w.Flush()
}
