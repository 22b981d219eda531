// Package main is the entry point for the krypteia CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/krypteia/krypteia-go/pkg/classical"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "krypteia",
		Short: "Classical cipher toolkit",
		Long:  "krypteia encrypts and decrypts text with classical ciphers: substitution, polyalphabetic, Playfair, and transposition families.",
	}

	rootCmd.AddCommand(encryptCmd())
	rootCmd.AddCommand(decryptCmd())
	rootCmd.AddCommand(menuCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("krypteia version %s\n", classical.Version)
		},
	}
}
