package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

// menuEntry describes one selectable cipher and the inputs it prompts for.
type menuEntry struct {
	name      string
	label     string
	wantsKey  bool
	wantsKey2 bool
	wantsInt  []string // prompts mapped onto shift/a/b/depth in order
}

var menuEntries = []menuEntry{
	{name: "additive", label: "Additive (Caesar)", wantsInt: []string{"shift"}},
	{name: "multiplicative", label: "Multiplicative", wantsInt: []string{"key"}},
	{name: "affine", label: "Affine", wantsInt: []string{"a", "b"}},
	{name: "monoalphabetic", label: "Monoalphabetic", wantsKey: true},
	{name: "autokey", label: "Autokey", wantsKey: true},
	{name: "vigenere", label: "Vigenere", wantsKey: true},
	{name: "playfair", label: "Playfair", wantsKey: true},
	{name: "railfence", label: "Rail fence", wantsInt: []string{"depth"}},
	{name: "columnar", label: "Columnar", wantsKey: true},
	{name: "combination", label: "Combination (columnar + rail fence)", wantsKey: true},
	{name: "double", label: "Double columnar", wantsKey: true, wantsKey2: true},
}

func menuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Run the interactive cipher menu",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMenu(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

// runMenu loops over the numbered menu until the user picks 0. Transform
// errors are reported and the loop continues.
func runMenu(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	for {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "krypteia ciphers")
		for i, e := range menuEntries {
			fmt.Fprintf(out, "  %2d. %s\n", i+1, e.label)
		}
		fmt.Fprintln(out, "   0. Exit")

		choiceStr, ok := prompt(scanner, out, "Choice: ")
		if !ok {
			return nil
		}
		choice, err := strconv.Atoi(strings.TrimSpace(choiceStr))
		if err != nil || choice < 0 || choice > len(menuEntries) {
			fmt.Fprintln(out, "Invalid choice.")
			continue
		}
		if choice == 0 {
			return nil
		}
		entry := menuEntries[choice-1]

		mode, ok := promptMode(scanner, out)
		if !ok {
			return nil
		}

		opts, ok := promptOpts(scanner, out, entry)
		if !ok {
			return nil
		}

		result, err := runTransform(entry.name, mode, opts)
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			continue
		}
		fmt.Fprintf(out, "Result: %s\n", result)
	}
}

func promptMode(scanner *bufio.Scanner, out io.Writer) (string, bool) {
	for {
		mode, ok := prompt(scanner, out, "Mode (e = encrypt, d = decrypt): ")
		if !ok {
			return "", false
		}
		switch strings.ToLower(strings.TrimSpace(mode)) {
		case "e", "encrypt":
			return "encrypt", true
		case "d", "decrypt":
			return "decrypt", true
		}
		fmt.Fprintln(out, "Invalid mode.")
	}
}

func promptOpts(scanner *bufio.Scanner, out io.Writer, entry menuEntry) (transformOpts, bool) {
	var opts transformOpts
	var ok bool

	opts.text, ok = prompt(scanner, out, "Text: ")
	if !ok {
		return opts, false
	}
	if entry.wantsKey {
		opts.key, ok = prompt(scanner, out, "Keyword: ")
		if !ok {
			return opts, false
		}
	}
	if entry.wantsKey2 {
		opts.key2, ok = prompt(scanner, out, "Second keyword: ")
		if !ok {
			return opts, false
		}
	}
	for _, name := range entry.wantsInt {
		n, done := promptInt(scanner, out, name)
		if done {
			return opts, false
		}
		switch name {
		case "shift", "key":
			opts.shift, opts.hasShift = n, true
		case "a":
			opts.a, opts.hasA = n, true
		case "b":
			opts.b, opts.hasB = n, true
		case "depth":
			opts.depth, opts.hasDepth = n, true
		}
	}
	return opts, true
}

func promptInt(scanner *bufio.Scanner, out io.Writer, name string) (int, bool) {
	for {
		raw, ok := prompt(scanner, out, "Enter "+name+": ")
		if !ok {
			return 0, true
		}
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		if err == nil {
			return n, false
		}
		fmt.Fprintln(out, "Not a number.")
	}
}

func prompt(scanner *bufio.Scanner, out io.Writer, label string) (string, bool) {
	fmt.Fprint(out, label)
	if !scanner.Scan() {
		return "", false
	}
	return scanner.Text(), true
}
