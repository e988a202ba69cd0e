package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmruiz/frdojo/internal/app"
	"github.com/dmruiz/frdojo/internal/catalog"
	"github.com/dmruiz/frdojo/internal/speech"
	"github.com/dmruiz/frdojo/internal/store"
)

// runApp validates the catalog, opens the store, probes the speech
// engine, and launches the TUI.
func runApp(cmd *cobra.Command, trackID string) error {
	if err := catalog.Validate(); err != nil {
		return fmt.Errorf("card catalog is corrupt: %w", err)
	}

	var st *store.Store
	dbPath, err := resolveDBPath(cmd)
	if err == nil {
		st, err = store.Open(dbPath)
	}
	if err != nil {
		// The study modes never touch the store; degrade, don't die.
		fmt.Fprintln(os.Stderr, "review store unavailable:", err)
	} else {
		defer st.Close()
	}

	return app.Run(speech.New(), st, trackID)
}
