package cmd

import (
	"fmt"
	"time"

	"github.com/Sruthika-k/Bragboard/internal/api"
	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in user",
	RunE:  runWhoami,
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

func runWhoami(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if !a.store.Authenticated() {
		fmt.Println("Not signed in")
		return nil
	}
	if a.store.Expired(time.Now()) {
		fmt.Println("Session expired, sign in again")
		return nil
	}

	me, err := a.client.Me(cmd.Context())
	if err != nil {
		if api.IsAuthError(err) {
			fmt.Println("Session rejected by server, sign in again")
			return nil
		}
		return fmt.Errorf("failed to fetch profile: %w", err)
	}

	fmt.Printf("%s <%s>\n", me.Name, me.Email)
	if me.Department != "" {
		fmt.Printf("Department: %s\n", me.Department)
	}
	fmt.Printf("Role: %s\n", me.Role)
	return nil
}
