package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// transformCmd builds the one-shot encrypt and decrypt subcommands, which
// differ only in the direction passed to runTransform.
func transformCmd(mode, short string) *cobra.Command {
	var opts transformOpts
	var cipher string

	cmd := &cobra.Command{
		Use:   mode,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.hasShift = cmd.Flags().Changed("shift")
			opts.hasA = cmd.Flags().Changed("a")
			opts.hasB = cmd.Flags().Changed("b")
			opts.hasDepth = cmd.Flags().Changed("depth")

			result, err := runTransform(cipher, mode, opts)
			if err != nil {
				return err
			}
			fmt.Println(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&cipher, "cipher", "", "Cipher name (required)")
	cmd.Flags().StringVar(&opts.text, "text", "", "Text to transform (required)")
	cmd.Flags().StringVar(&opts.key, "key", "", "Keyword (monoalphabetic, autokey, vigenere, playfair, columnar, combination, double)")
	cmd.Flags().StringVar(&opts.key2, "key2", "", "Second keyword (double)")
	cmd.Flags().IntVar(&opts.shift, "shift", 0, "Shift or multiplier key (additive, multiplicative)")
	cmd.Flags().IntVar(&opts.a, "a", 0, "Affine multiplier")
	cmd.Flags().IntVar(&opts.b, "b", 0, "Affine shift")
	cmd.Flags().IntVar(&opts.depth, "depth", 3, "Rail depth (railfence)")
	cmd.MarkFlagRequired("cipher")
	cmd.MarkFlagRequired("text")
	return cmd
}

func encryptCmd() *cobra.Command {
	return transformCmd("encrypt", "Encrypt text with the named cipher")
}

func decryptCmd() *cobra.Command {
	return transformCmd("decrypt", "Decrypt text with the named cipher")
}
