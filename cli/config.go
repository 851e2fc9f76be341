package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/chrono/config"
)

var CMDConfig = &cobra.Command{
	Use:   "config",
	Short: "Configuration helpers",
}

var CMDConfigInit = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a default config file (format chosen by extension)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "./chrono.yaml"
		if len(args) == 1 {
			path = args[0]
		}
		if err := config.Default().SaveToFile(path); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", path)
		return nil
	},
}

func init() {
	CMDConfig.AddCommand(CMDConfigInit)
}
