package options

import (
	"github.com/spf13/cobra"
)

// LoginOptions carries the login form fields.
type LoginOptions struct {
	Email    string
	Password string
}

func AddLoginArgs(cmd *cobra.Command, o *LoginOptions) {
	cmd.Flags().StringVar(&o.Email, "email", "",
		"Email or username.")
	cmd.Flags().StringVar(&o.Password, "password", "",
		"Account password.")
}

// RegisterOptions carries the registration form fields.
type RegisterOptions struct {
	Email       string
	DateOfBirth string
	Gender      string
	Address     string
	Username    string
	Password    string
}

func AddRegisterArgs(cmd *cobra.Command, o *RegisterOptions) {
	cmd.Flags().StringVar(&o.Email, "email", "",
		"Email address.")
	cmd.Flags().StringVar(&o.DateOfBirth, "birthdate", "",
		`Date of birth, example: --birthdate="2006-01-02". Must be at least 14 years ago.`)
	cmd.Flags().StringVar(&o.Gender, "gender", "",
		"One of M, F, Other.")
	cmd.Flags().StringVar(&o.Address, "address", "",
		"Postal address (at most 255 characters).")
	cmd.Flags().StringVar(&o.Username, "username", "",
		"Unique username, at most 20 characters.")
	cmd.Flags().StringVar(&o.Password, "password", "",
		"Password, 8 to 64 characters.")
}
