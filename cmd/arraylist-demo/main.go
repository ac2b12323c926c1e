package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/manukyankhach/arraylist/internal/script"
)

func main() {
	var scriptPath = flag.String("script", "", "Path to a YAML script of list operations")
	var format = flag.String("format", "tree", "Output format (tree, text)")
	var verbose = flag.Bool("v", false, "Log reallocations and step failures")

	flag.Parse()

	if *scriptPath == "" {
		fmt.Fprintln(os.Stderr, "usage: arraylist-demo -script FILE [-format tree|text] [-v]")
		os.Exit(2)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	s, err := script.Load(*scriptPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading script: %v\n", err)
		os.Exit(1)
	}

	trace, err := script.Run(context.Background(), s, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running script: %v\n", err)
		os.Exit(1)
	}

	switch strings.ToLower(*format) {
	case "text":
		err = script.RenderText(os.Stdout, trace)
	default:
		err = script.RenderTree(os.Stdout, trace)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}
}
