package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"tableview/backend/internal/service"
)

func newConvertCmd() *cobra.Command {
	var pretty bool

	cmd := &cobra.Command{
		Use:   "convert <file>",
		Short: "Parse a local file and print the tabular JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			dataset, err := service.Parse(filepath.Base(args[0]), content)
			if err != nil {
				return fmt.Errorf("error processing file: %w", err)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			if pretty {
				enc.SetIndent("", "  ")
			}
			return enc.Encode(dataset)
		},
	}
	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent the output")
	return cmd
}
