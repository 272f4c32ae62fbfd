package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/benckx/coinfolio/pkg/render"
	"github.com/benckx/coinfolio/pkg/services"
	"github.com/benckx/coinfolio/pkg/sources"
)

var epubCmd = &cobra.Command{
	Use:   "epub [input.csv] [output.epub]",
	Short: "Generate an offline EPUB catalogue",
	Long: "Read a CoinSnap CSV export and compile an EPUB catalogue of the " +
		"collection with the coin photos downloaded and embedded",
	Args: cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		input, err := inputPath(args)
		if err != nil {
			cobra.CheckErr(err)
		}
		output := render.DefaultCatalogueFile
		if len(args) > 1 {
			output = args[1]
		}

		coins, _, err := sources.ReadExport(input)
		if err != nil {
			cobra.CheckErr(err)
		}

		fmt.Printf("📖 Compiling %d coins into %s (photos are rate limited, this can take a while)\n",
			len(coins), output)

		controller := services.NewController(nil, nil)
		if err := controller.BuildCatalogue(coins, output); err != nil {
			cobra.CheckErr(err)
		}

		fmt.Printf("🎉 Done! %s is self-contained and readable offline.\n", output)
	},
}
