package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmruiz/frdojo/internal/catalog"
)

var tracksCmd = &cobra.Command{
	Use:   "tracks",
	Short: "List the available study tracks",
	Run: func(cmd *cobra.Command, args []string) {
		for _, t := range catalog.Tracks() {
			fmt.Printf("%-12s %-24s %3d cards  [%s]\n", t.ID, t.Title, len(t.Deck), t.Mode)
		}
	},
}
