// Package mt2mx implements the command converting SWIFT MT to ISO 20022 MX.
package mt2mx

import (
	"fjacquet/swift-mx/cmd/common"
	"fjacquet/swift-mx/cmd/root"
	"fjacquet/swift-mx/pkg/converter"

	"github.com/spf13/cobra"
)

// Cmd represents the mt2mx command
var Cmd = &cobra.Command{
	Use:   "mt2mx [input]",
	Short: "Convert a SWIFT MT message to ISO 20022 MX",
	Long: `Convert a SWIFT MT (FIN) message to ISO 20022 MX XML.

The MT type is read from block 2. Use --type to override it, for example when
block 2 is missing or to treat an MT202 as MT202COV.

Example:
  swift-mx mt2mx -i payment.fin -o payment.xml
  swift-mx mt2mx --type 202COV < cover.fin`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	c, err := root.RequireContainer()
	if err != nil {
		return err
	}
	return common.ProcessFile(c.GetConverter(), converter.DirectionMtToMx,
		root.InputPath(args), root.SharedFlags.Output, c.DefaultMtType(root.SharedFlags.Type),
		cmd.InOrStdin(), cmd.OutOrStdout(), c.GetLogger())
}
