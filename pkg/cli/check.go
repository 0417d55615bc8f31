package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/getmockd/vatcheck/pkg/logging"
	"github.com/getmockd/vatcheck/pkg/vies"
)

var checkTimeout time.Duration

var checkCmd = &cobra.Command{
	Use:   "check <countryCode> <vatNumber>",
	Short: "Validate a VAT number",
	Long: `Validate a VAT number against the VIES checkVatService.

The country code is the 2-letter ISO code of the member state. Note that
Greece uses EL, not GR.`,
	Example: `  vatcheck check IT 00950501007
  vatcheck check DE 129273398 --json`,
	Args: cobra.ExactArgs(2),
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	logger := logging.New(os.Stderr, logging.ParseLevel(logLevel), logging.FormatText)

	ctx, cancel := context.WithTimeout(cmd.Context(), checkTimeout)
	defer cancel()

	client := vies.New(vies.WithLogger(logger))
	resp, err := client.Check(ctx, args[0], args[1])
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "valid:   %t\n", resp.Valid)
	if resp.Name != "" {
		fmt.Fprintf(out, "name:    %s\n", resp.Name)
	}
	if resp.Address != "" {
		fmt.Fprintf(out, "address: %s\n", resp.Address)
	}
	return nil
}

func init() {
	checkCmd.Flags().DurationVar(&checkTimeout, "timeout", 30*time.Second, "Overall timeout for the check")
	rootCmd.AddCommand(checkCmd)
}
