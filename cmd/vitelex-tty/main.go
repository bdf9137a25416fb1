package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"vitelex/internal/telex"
	"vitelex/internal/types"
	"vitelex/pkg/ime"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "vitelex-tty: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, in io.Reader, out io.Writer) error {
	flags := flag.NewFlagSet("vitelex-tty", flag.ContinueOnError)
	strip := flags.Bool("strip", false, "remove all diacritics instead of composing Telex")
	modeName := flags.String("mode", "vietnamese", "input mode (vietnamese, latin)")
	if err := flags.Parse(args); err != nil {
		return err
	}
	mode, err := types.ParseMode(*modeName)
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 4096), 1024*1024)
	writer := bufio.NewWriter(out)
	defer writer.Flush()

	for scanner.Scan() {
		line := scanner.Text()
		var converted string
		switch {
		case *strip:
			converted = telex.Plain(line)
		case mode == types.ModeLatin:
			converted = line
		default:
			converted = ime.Translate(line)
		}
		if _, err := writer.WriteString(converted); err != nil {
			return err
		}
		if err := writer.WriteByte('\n'); err != nil {
			return err
		}
	}
	return scanner.Err()
}
