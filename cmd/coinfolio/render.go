package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/benckx/coinfolio/pkg/render"
	"github.com/benckx/coinfolio/pkg/sources"
)

var renderCmd = &cobra.Command{
	Use:   "render [input.csv] [output.html]",
	Short: "Generate the interactive collection page",
	Long: "Read a CoinSnap CSV export and write one self-contained HTML page " +
		"with a sortable, filterable list view and grid view",
	Args: cobra.MaximumNArgs(2),
	Run:  runRender,
}

// inputPath resolves the export to read: explicit argument first, then
// the --latest download, then the default filename.
func inputPath(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if latestExport {
		return sources.FindLatestExport(sources.DefaultDownloadDir())
	}
	return sources.DefaultExportFile, nil
}

func runRender(cmd *cobra.Command, args []string) {
	input, err := inputPath(args)
	if err != nil {
		cobra.CheckErr(err)
	}
	output := render.DefaultPageFile
	if len(args) > 1 {
		output = args[1]
	}

	fmt.Println("🔄 Converting CSV to HTML...")
	fmt.Printf("📥 Input:  %s\n", input)
	fmt.Printf("📤 Output: %s\n", output)

	coins, skipped, err := sources.ReadExport(input)
	if err != nil {
		cobra.CheckErr(err)
	}
	for _, row := range skipped {
		fmt.Fprintf(os.Stderr, "⚠️  Skipping malformed %v\n", row)
	}
	if len(coins) == 0 {
		fmt.Println("⚠️  Export has no data rows; writing an empty page.")
	}

	if err := render.WritePage(coins, output); err != nil {
		cobra.CheckErr(err)
	}

	fmt.Printf("✅ Processed %d coins\n", len(coins))
	fmt.Printf("🎉 Done! Open %s in your browser to view the collection.\n", output)
}
