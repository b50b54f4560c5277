// Package inspect implements the command printing a parsed message as YAML.
package inspect

import (
	"bytes"

	"fjacquet/swift-mx/cmd/common"
	"fjacquet/swift-mx/cmd/root"

	"github.com/spf13/cobra"
)

var convert bool

// Cmd represents the inspect command
var Cmd = &cobra.Command{
	Use:   "inspect [input]",
	Short: "Print the parsed structure and advisories of an MT or MX message",
	Long: `Parse an MT or MX message and print what the converter sees as YAML:
the detected format, the tags or fields, and the CBPR+ advisories.

Example:
  swift-mx inspect -i payment.fin
  swift-mx inspect --convert statement.xml`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().BoolVar(&convert, "convert", false, "Also convert the message and include the result")
}

func run(cmd *cobra.Command, args []string) error {
	c, err := root.RequireContainer()
	if err != nil {
		return err
	}

	content, err := common.ReadInput(root.InputPath(args), cmd.InOrStdin())
	if err != nil {
		return err
	}
	report, err := common.Inspect(c.GetConverter(), content, convert)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := common.RenderYAML(report, &buf); err != nil {
		return err
	}
	return common.WriteOutput(root.SharedFlags.Output, buf.String(), cmd.OutOrStdout())
}
