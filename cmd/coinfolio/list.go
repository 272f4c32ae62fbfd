package cmd

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/benckx/coinfolio/pkg/sources"
)

var listCmd = &cobra.Command{
	Use:   "list [input.csv]",
	Short: "Print the collection as a table",
	Long:  "Display the coins of a CoinSnap export in a formatted terminal table",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		input, err := inputPath(args)
		if err != nil {
			cobra.CheckErr(err)
		}

		coins, _, err := sources.ReadExport(input)
		if err != nil {
			cobra.CheckErr(err)
		}
		if len(coins) == 0 {
			fmt.Println("🪙 No coins in the export.")
			return
		}

		columns := []table.Column{
			{Title: "Country", Width: 16},
			{Title: "Issuer", Width: 22},
			{Title: "Year", Width: 6},
			{Title: "Denomination", Width: 24},
			{Title: "Grade", Width: 6},
			{Title: "Composition", Width: 16},
			{Title: "Value", Width: 10},
		}

		rows := []table.Row{}
		for _, coin := range coins {
			rows = append(rows, table.Row{
				truncateString(coin.Country, 14),
				truncateString(coin.Issuer, 20),
				coin.Year,
				truncateString(coin.Denomination, 22),
				coin.Grade,
				truncateString(coin.Composition, 14),
				coin.Value,
			})
		}

		t := table.New(
			table.WithColumns(columns),
			table.WithRows(rows),
			table.WithFocused(false),
			table.WithHeight(len(rows)),
		)

		s := table.DefaultStyles()
		s.Header = s.Header.
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true)
		s.Selected = s.Selected.
			Foreground(lipgloss.Color("229")).
			Bold(false)
		t.SetStyles(s)

		fmt.Printf("\n🪙 Collection (%d coins)\n\n", len(coins))
		fmt.Println(t.View())
	},
}

func truncateString(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}
