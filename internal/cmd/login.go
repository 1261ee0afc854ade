package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/Sruthika-k/Bragboard/internal/api"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var loginCmd = &cobra.Command{
	Use:   "login [email]",
	Short: "Sign in and store the session token",
	Long: `Sign in to the BragBoard server. The access token is written to the
state directory and picked up by every other command.

The password is read from the terminal. Pass --password only in scripts
where prompting is not possible.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLogin,
}

var loginPassword string

func init() {
	rootCmd.AddCommand(loginCmd)

	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Password (prompted when omitted)")
}

func runLogin(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	email := ""
	if len(args) > 0 {
		email = args[0]
	} else {
		email, err = promptLine("Email: ")
		if err != nil {
			return err
		}
	}

	password := loginPassword
	if password == "" {
		password, err = promptPassword("Password: ")
		if err != nil {
			return err
		}
	}

	resp, err := a.client.Login(cmd.Context(), email, password)
	if err != nil {
		return fmt.Errorf("login failed: %s", api.ErrorDetail(err, err.Error()))
	}
	if err := a.store.Save(resp.AccessToken, resp.TokenType); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}

	fmt.Printf("Signed in as %s\n", email)
	return nil
}

func promptLine(prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func promptPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(raw), nil
}
