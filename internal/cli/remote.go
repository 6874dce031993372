package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var remoteCmd = &cobra.Command{
	Use:   "remote",
	Short: "Manage the Google Drive mirror",
	Long: `Configure and inspect the optional Google Drive mirror for
generated documents. A service account with access to the target folder
is required; its JSON key is stored in the system keyring.`,
}

var remoteSetupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Store service account credentials",
	RunE: func(cmd *cobra.Command, args []string) error {
		var creds []byte
		var err error

		if file, _ := cmd.Flags().GetString("credentials-file"); file != "" {
			creds, err = os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("failed to read credentials file: %w", err)
			}
		} else {
			fmt.Println("Paste the service account JSON key (single line, input hidden):")
			fmt.Print("> ")
			creds, err = term.ReadPassword(int(syscall.Stdin))
			fmt.Println()
			if err != nil {
				return fmt.Errorf("failed to read credentials: %w", err)
			}
		}

		if !json.Valid(creds) {
			return fmt.Errorf("credentials are not valid JSON")
		}

		if err := appInstance.Keyring.SetCredentials(string(creds)); err != nil {
			return err
		}

		fmt.Println("Credentials stored.")
		if appInstance.Config.Remote.FolderID == "" {
			fmt.Println("Set remote.folder_id in the config file to enable uploads.")
		}
		return nil
	},
}

var remoteStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the remote mirror configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		folderID := appInstance.Config.Remote.FolderID
		if folderID == "" {
			fmt.Println("Remote mirror: disabled (no remote.folder_id configured)")
		} else {
			fmt.Printf("Remote mirror: folder %s\n", folderID)
		}

		if appInstance.Keyring.IsAvailable() {
			if _, err := appInstance.Keyring.GetCredentials(); err == nil {
				fmt.Println("Credentials: stored in keyring")
			} else {
				fmt.Println("Credentials: not stored")
			}
		} else {
			fmt.Println("Credentials: keyring unavailable on this platform")
		}

		if appInstance.Uploader.Enabled() {
			fmt.Println("Uploads: enabled")
		} else {
			fmt.Println("Uploads: disabled")
		}
		return nil
	},
}

var remoteForgetCmd = &cobra.Command{
	Use:   "forget",
	Short: "Delete stored credentials",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := appInstance.Keyring.DeleteCredentials(); err != nil {
			return err
		}
		fmt.Println("Credentials deleted.")
		return nil
	},
}

func init() {
	remoteSetupCmd.Flags().String("credentials-file", "", "read the JSON key from a file instead of stdin")

	remoteCmd.AddCommand(remoteSetupCmd)
	remoteCmd.AddCommand(remoteStatusCmd)
	remoteCmd.AddCommand(remoteForgetCmd)
}
