package cmd

import (
	"fmt"

	"github.com/Sruthika-k/Bragboard/internal/api"
	"github.com/spf13/cobra"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a BragBoard account",
	RunE:  runRegister,
}

var (
	registerName       string
	registerEmail      string
	registerDepartment string
	registerPassword   string
)

func init() {
	rootCmd.AddCommand(registerCmd)

	registerCmd.Flags().StringVar(&registerName, "name", "", "Display name")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "Email address")
	registerCmd.Flags().StringVar(&registerDepartment, "department", "", "Department")
	registerCmd.Flags().StringVar(&registerPassword, "password", "", "Password (prompted when omitted)")
	_ = registerCmd.MarkFlagRequired("name")
	_ = registerCmd.MarkFlagRequired("email")
}

func runRegister(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	password := registerPassword
	if password == "" {
		password, err = promptPassword("Password: ")
		if err != nil {
			return err
		}
	}

	resp, err := a.client.Register(cmd.Context(), api.RegisterRequest{
		Name:       registerName,
		Email:      registerEmail,
		Password:   password,
		Department: registerDepartment,
		Role:       api.RoleEmployee,
	})
	if err != nil {
		return fmt.Errorf("registration failed: %s", api.ErrorDetail(err, err.Error()))
	}

	fmt.Printf("%s (user #%d)\n", resp.Message, resp.UserID)
	return nil
}
