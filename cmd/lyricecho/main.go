package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:          "lyricecho",
		Short:        "Voice skill that finds songs by their lyrics",
		SilenceUsage: true,
	}

	root.AddCommand(serveCMD(), topCMD())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
