package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage the document history",
	Long:  `List generated documents and manage the numbering history.`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List generated documents",
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := appInstance.DocumentService.History()
		if err != nil {
			return fmt.Errorf("failed to load history: %w", err)
		}

		if len(entries) == 0 {
			fmt.Println("No documents generated yet")
			fmt.Printf("Next number: %d\n", appInstance.Ledger.NextNumber())
			return nil
		}

		// Print table header
		fmt.Printf("%-10s %-12s %-30s %-16s %12s\n", "Numurs", "Datums", "Klients", "Veids", "Summa")
		fmt.Println("----------------------------------------------------------------------------------")

		for _, e := range entries {
			fmt.Printf("%-10s %-12s %-30s %-16s %12s\n",
				e.DocumentID,
				e.IssueDate,
				truncate(e.ClientName, 30),
				e.Kind.Label(),
				"€ "+e.Total,
			)
		}

		fmt.Printf("\nTotal: %d document(s), next number: %d\n", len(entries), appInstance.Ledger.NextNumber())
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all history entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !confirmPrompt("This will delete ALL document history and reset numbering. Continue?") {
			fmt.Println("Cancelled.")
			return nil
		}

		if err := appInstance.DocumentService.ClearHistory(); err != nil {
			return fmt.Errorf("failed to clear history: %w", err)
		}

		fmt.Println("History cleared.")
		return nil
	},
}

func init() {
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyClearCmd)
}

// confirmPrompt asks a yes/no question and returns true for yes
func confirmPrompt(question string) bool {
	fmt.Printf("%s [y/N]: ", question)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

// truncate shortens a string to maxLen runes with ellipsis. Rune-based:
// client names are Latvian and a byte cut could split a character.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
