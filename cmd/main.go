package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version is set by build flags
	Version = "dev"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "tableview",
		Short:        "Convert uploaded CSV, Excel, XML and JSON files into tabular JSON",
		Version:      Version,
		SilenceUsage: true,
		RunE:         runServe,
	}
	addServeFlags(root.Flags())

	root.AddCommand(newServeCmd())
	root.AddCommand(newConvertCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
