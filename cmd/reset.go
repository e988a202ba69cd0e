package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the review database",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveDBPath(cmd)
		if err != nil {
			return err
		}
		if err := os.Remove(path); err != nil {
			if os.IsNotExist(err) {
				fmt.Println("No database at", path)
				return nil
			}
			return fmt.Errorf("remove %s: %w", path, err)
		}
		fmt.Println("Removed", path)
		return nil
	},
}
