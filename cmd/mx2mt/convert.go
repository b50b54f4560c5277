// Package mx2mt implements the command converting ISO 20022 MX to SWIFT MT.
package mx2mt

import (
	"fjacquet/swift-mx/cmd/common"
	"fjacquet/swift-mx/cmd/root"
	"fjacquet/swift-mx/pkg/converter"

	"github.com/spf13/cobra"
)

// Cmd represents the mx2mt command
var Cmd = &cobra.Command{
	Use:   "mx2mt [input]",
	Short: "Convert an ISO 20022 MX message to SWIFT MT",
	Long: `Convert an ISO 20022 MX XML message to SWIFT MT (FIN).

The MX type is resolved from the Document namespace, then from the AppHdr
MsgDefIdr. Use --type to override it.

Example:
  swift-mx mx2mt -i payment.xml -o payment.fin
  swift-mx mx2mt --type camt.053.001.08 statement.xml`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	c, err := root.RequireContainer()
	if err != nil {
		return err
	}
	return common.ProcessFile(c.GetConverter(), converter.DirectionMxToMt,
		root.InputPath(args), root.SharedFlags.Output, root.SharedFlags.Type,
		cmd.InOrStdin(), cmd.OutOrStdout(), c.GetLogger())
}
