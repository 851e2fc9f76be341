package main

import (
	"os"

	"github.com/rustyeddy/chrono/cli"
)

func main() {
	if err := cli.CMDRoot.Execute(); err != nil {
		os.Exit(1)
	}
}
