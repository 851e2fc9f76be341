package cli

import (
	"github.com/spf13/cobra"
)

var CMDRoot = &cobra.Command{
	Use:   "chrono",
	Short: "Deterministic portfolio backtesting engine",
	Long: `chrono simulates a daily trading signal against a price history under
T+1 settlement and fixed proportional fees, producing a daily equity curve.

Inputs are two aligned CSV matrices (one row per day, one column per
instrument): close prices and trade signals in [-1, 1].`,
}

func init() {
	CMDRoot.AddCommand(CMDRun)
	CMDRoot.AddCommand(CMDJournal)
	CMDRoot.AddCommand(CMDConfig)
}
