package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/wordguess/internal/registry"
	"github.com/vovakirdan/wordguess/internal/words"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all word packs",
	Long:  `Shows every registered word pack, including packs from packs_dir.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	a := mustApp(cmd.Context())
	defer a.Close()

	packs := registry.List()
	if len(packs) == 0 {
		fmt.Println("No word packs available.")
		return
	}

	fmt.Println("Available word packs:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, p := range packs {
		maxIDLen = max(maxIDLen, len(p.ID))
	}

	fmt.Printf("  %-*s  %-7s  %-10s  %s\n", maxIDLen, "ID", "Answers", "Dictionary", "Title")
	fmt.Printf("  %-*s  %-7s  %-10s  %s\n", maxIDLen, "--", "-------", "----------", "-----")

	for _, p := range packs {
		bank, _, err := words.Open(p.ID)
		if err != nil {
			fmt.Printf("  %-*s  %-7s  %-10s  %s (%v)\n", maxIDLen, p.ID, "-", "-", p.Title, err)
			continue
		}
		marker := ""
		if p.ID == a.cfg.Pack {
			marker = " *"
		}
		fmt.Printf("  %-*s  %-7d  %-10d  %s%s\n", maxIDLen, p.ID, bank.Len(), bank.DictionarySize(), p.Title, marker)
	}

	fmt.Println()
	fmt.Println("Run 'wordguess play <id>' to play a pack. * marks the configured default.")
}
