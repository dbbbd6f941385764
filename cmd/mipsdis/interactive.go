package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

var errCancelled = errors.New("cancelled")

// candidateInputs lists .txt files in the working directory whose name
// suggests binary content.
func candidateInputs() (names []string, err error) {
	entries, err := os.ReadDir(".")
	if err != nil {
		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if filepath.Ext(name) == ".txt" && strings.Contains(strings.ToLower(name), "bin") {
			names = append(names, name)
		}
	}

	return
}

// interactive prompts for an input file among the candidates in the
// working directory, and for an output file name.
func interactive(in io.Reader, prompt io.Writer) (input, output string, err error) {
	reader := bufio.NewReader(in)

	readLine := func() (text string, err error) {
		text, err = reader.ReadString('\n')
		if err != nil && len(text) == 0 {
			return
		}
		return strings.TrimSpace(text), nil
	}

	candidates, err := candidateInputs()
	if err != nil {
		return
	}

	if len(candidates) == 0 {
		fmt.Fprint(prompt, "Input file path: ")
		input, err = readLine()
		if err != nil {
			return
		}
	} else {
		fmt.Fprintln(prompt, "Available binary files:")
		for n, name := range candidates {
			fmt.Fprintf(prompt, "  %d. %v\n", n+1, name)
		}

		for len(input) == 0 {
			fmt.Fprint(prompt, "Select input file (number): ")
			var text string
			text, err = readLine()
			if err != nil {
				return
			}
			choice, bad := strconv.Atoi(text)
			if bad != nil || choice < 1 || choice > len(candidates) {
				fmt.Fprintln(prompt, "Invalid selection. Try again.")
				continue
			}
			input = candidates[choice-1]
		}
	}

	fallback := fmt.Sprintf("output_%v.txt", time.Now().Format("150405"))
	fmt.Fprintf(prompt, "Output file name [default: %v]: ", fallback)
	output, err = readLine()
	if err != nil {
		return
	}
	if len(output) == 0 {
		output = fallback
	}

	fmt.Fprintf(prompt, "Disassemble %v -> %v? (y/n): ", input, output)
	confirm, err := readLine()
	if err != nil {
		return
	}
	switch strings.ToLower(confirm) {
	case "", "y", "yes":
	default:
		err = errCancelled
	}

	return
}
