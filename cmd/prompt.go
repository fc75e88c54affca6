package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// errNoTarget is returned when input ends before a valid target is read.
var errNoTarget = errors.New("no production target given")

// PromptTarget asks on out for a production target until in yields a positive
// whole number.
func PromptTarget(in io.Reader, out io.Writer, unit string) (int64, error) {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintf(out, "Enter the total number of %s to produce (e.g., 5000): ", unit)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			if err := scanner.Err(); err != nil {
				return 0, fmt.Errorf("read target: %w", err)
			}
			return 0, errNoTarget
		}
		n, err := strconv.ParseInt(strings.TrimSpace(scanner.Text()), 10, 64)
		switch {
		case err != nil:
			fmt.Fprintln(out, "Invalid input. Please enter a whole number.")
		case n <= 0:
			fmt.Fprintf(out, "Please enter a positive number of %s.\n", unit)
		default:
			return n, nil
		}
	}
}
