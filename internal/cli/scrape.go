package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape [url]",
	Short: "Fetch client requisites from a Lursoft page",
	Long: `Fetch the company name, registration number, VAT number and address
from a Lursoft company page. Fields the page doesn't yield print as empty
and can be filled in by hand.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := appInstance.Scraper.Fetch(context.Background(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Nosaukums: %s\n", client.Name)
		fmt.Printf("Reģ. Nr.:  %s\n", client.RegNo)
		fmt.Printf("PVN Nr.:   %s\n", client.VATNo)
		fmt.Printf("Adrese:    %s\n", client.Address)
		return nil
	},
}
