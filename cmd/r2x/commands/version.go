package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcllerena/R2X/display"
	"github.com/mcllerena/R2X/version"
)

// VersionCmd represents the version command
var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show build information",
	RunE: func(cmd *cobra.Command, args []string) error {
		info := version.Get()
		if display.ShouldOutputJSON(cmd) {
			return display.OutputJSON(info)
		}
		fmt.Println(info.String())
		return nil
	},
}
