package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nybarber/barberia/internal/apiclient"
	"github.com/nybarber/barberia/internal/localstore"
)

var loginToken string

var loginCmd = &cobra.Command{
	Use:   "login <server-url>",
	Short: "Authenticate with a barberia server",
	Long: `Sets the server URL and authenticates with the management API.

Examples:
  barberia login https://vianney-server.onrender.com
  barberia login https://vianney-server.onrender.com --token <api-token>`,
	Args: cobra.ExactArgs(1),
	RunE: runLogin,
}

func init() {
	loginCmd.Flags().StringVar(&loginToken, "token", "", "API token (skip interactive login)")
}

func runLogin(cmd *cobra.Command, args []string) error {
	serverURL := strings.TrimRight(args[0], "/")

	if !strings.HasPrefix(serverURL, "http://") && !strings.HasPrefix(serverURL, "https://") {
		return fmt.Errorf("server URL must start with http:// or https://")
	}

	var token string
	var usuario string

	if loginToken != "" {
		token = loginToken
		usuario = "(token)"
	} else {
		fmt.Print("Usuario: ")
		var user string
		if _, err := fmt.Scanln(&user); err != nil {
			return fmt.Errorf("reading username: %w", err)
		}

		fmt.Print("Contraseña: ")
		passBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return fmt.Errorf("reading password: %w", err)
		}

		client := apiclient.NewWithoutAuth(serverURL)
		resp, err := client.Login(context.Background(), user, string(passBytes))
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		token = resp.Token
		usuario = user
	}

	cfg, err := localstore.LoadConfig()
	if err != nil {
		return err
	}
	cfg.DefaultServer = serverURL
	if err := localstore.SaveConfig(cfg); err != nil {
		return err
	}

	if err := localstore.SaveCredential(serverURL, &localstore.ServerCredential{
		Token:   token,
		Usuario: usuario,
	}); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Logged in to %s as %s\n", serverURL, usuario)
	return nil
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the stored credential",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := getSession("")
		if err != nil {
			return err
		}
		if err := sess.Logout(); err != nil {
			return fmt.Errorf("logging out: %w", err)
		}
		fmt.Fprintf(os.Stderr, "Logged out of %s\n", sess.ServerURL)
		return nil
	},
}
