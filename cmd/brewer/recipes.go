package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/aretw0/brewer/pkg/config"
	"github.com/aretw0/brewer/pkg/domain"
	"github.com/spf13/cobra"
)

var recipesCmd = &cobra.Command{
	Use:   "recipes",
	Short: "Show the recipe table and the derived thresholds",
	Run: func(cmd *cobra.Command, args []string) {
		path, _ := cmd.Flags().GetString("profile")
		cfg, err := config.Load(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		printRecipes(cfg.Profile)
	},
}

func init() {
	rootCmd.AddCommand(recipesCmd)
}

func printRecipes(p domain.Profile) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RECIPE\tCOFFEE\tWATER\tWASTE")
	for _, a := range domain.ActionsFor(domain.StateReady) {
		r, _ := p.Recipe(a)
		fmt.Fprintf(w, "%s\t%d\t%d\t%d\n", a.Label(), r.Coffee, r.Water, r.Waste())
	}
	w.Flush()

	maxCoffee := p.MaxRequiredCoffee()
	fmt.Println()
	fmt.Printf("Capacities: coffee %d, water %d, waste %d\n",
		p.Capacities.Coffee, p.Capacities.Water, p.Capacities.Waste)
	fmt.Printf("Coffee EMPTY below %d, water EMPTY below %d, waste FULL from %d\n",
		maxCoffee, p.MaxRequiredWater(), int(p.Capacities.Waste)-int(maxCoffee))
}
