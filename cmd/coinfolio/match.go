package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/benckx/coinfolio/pkg/data"
	"github.com/benckx/coinfolio/pkg/services"
	"github.com/benckx/coinfolio/pkg/sources"
)

var matchCmd = &cobra.Command{
	Use:   "match [coins.db]",
	Short: "Look up Numista candidates for stored coins",
	Long: "Query the Numista catalogue for every coin in the collection database " +
		"that does not have enough candidate matches yet, and store what it finds",
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dbPath := DefaultDBFile
		if len(args) > 0 {
			dbPath = args[0]
		}

		db, err := data.InitDuckDB(dbPath)
		if err != nil {
			cobra.CheckErr(err)
		}
		defer db.Close()

		fmt.Println("🔍 Numista lookup")
		controller := services.NewController(data.NewRepository(db), sources.NewNumista())
		stats, err := controller.FetchMatches(services.MinMatches)
		if err != nil {
			cobra.CheckErr(err)
		}

		if stats.Looked == 0 && !stats.Stopped {
			fmt.Println("✅ All coins already have enough matches.")
		}
		if stats.Stopped {
			fmt.Println("⚠️  Lookup stopped early – re-run to continue where it left off.")
		}
		fmt.Printf("✅ Total matches in DB: %d\n", stats.TotalMatches)
	},
}
