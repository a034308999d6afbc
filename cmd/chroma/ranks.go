package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-chroma/internal/games/chroma"
)

var ranksCmd = &cobra.Command{
	Use:   "ranks",
	Short: "Show the rank ladder",
	Long:  `Shows the rank awarded for each final score range.`,
	Args:  cobra.NoArgs,
	Run:   runRanks,
}

func runRanks(_ *cobra.Command, _ []string) {
	ranks := chroma.AllRanks()

	fmt.Println("Ranks:")
	fmt.Println()
	fmt.Printf("  %-11s  %s\n", "Rank", "Score")
	fmt.Printf("  %-11s  %s\n", "----", "-----")

	for i, r := range ranks {
		low := chroma.RankMinScore(r)
		span := fmt.Sprintf("%d+", low)
		if i+1 < len(ranks) {
			span = fmt.Sprintf("%d-%d", low, chroma.RankMinScore(ranks[i+1])-1)
		}
		fmt.Printf("  %-11s  %s\n", r, span)
	}
}
