package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/benckx/coinfolio/pkg/data"
	"github.com/benckx/coinfolio/pkg/services"
)

// DefaultDBFile is the collection database used when none is given.
const DefaultDBFile = "coins.db"

var importCmd = &cobra.Command{
	Use:   "import [input.csv] [coins.db]",
	Short: "Import an export into the collection database",
	Long: "Read a CoinSnap CSV export and merge it into the collection database, " +
		"deduplicating coins and tracking how often each one occurs",
	Args: cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		input, err := inputPath(args)
		if err != nil {
			cobra.CheckErr(err)
		}
		dbPath := DefaultDBFile
		if len(args) > 1 {
			dbPath = args[1]
		}

		fmt.Println("🔄 Importing CSV into the collection database")
		fmt.Printf("📥 Input:    %s\n", input)
		fmt.Printf("🗄️  Database: %s\n", dbPath)

		db, err := data.InitDuckDB(dbPath)
		if err != nil {
			cobra.CheckErr(err)
		}
		defer db.Close()

		controller := services.NewController(data.NewRepository(db), nil)
		stats, err := controller.ImportExport(input)
		if err != nil {
			cobra.CheckErr(err)
		}

		for _, row := range stats.Skipped {
			fmt.Fprintf(os.Stderr, "⚠️  Skipping malformed %v\n", row)
		}
		fmt.Printf("✅ inserted=%d updated=%d total unique coins=%d\n",
			stats.Inserted, stats.Updated, stats.Total)
	},
}
