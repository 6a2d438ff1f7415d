// Copyright 2025 The WordHint Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the wordhint CLI and IPC server.

wordhint suggests the next guess for five-letter word games. It ranks every
word in the system word list by how common its distinct letters are, then
keeps only the words that agree with the feedback of the guesses so far.

# Usage

With no arguments the best starting words are printed:

	wordhint

Each argument is one guess followed by its feedback:

	wordhint crane/.xX.. salty/.X...

Feedback characters line up with the letters of the guess:

	.  letter is not in the word
	X  letter is in the word at this position
	x  letter is in the word at another position

Up to 10 matching words are printed on one line, best first. A malformed
argument aborts the run with an error and prints nothing else.

# Configuration

Defaults are read from a TOML file in the user config dir and created on
first run:

	[dict]
	path = "/usr/share/dict/words"
	word_length = 5

	[constraint]
	strict = false

	[cli]
	limit = 10
	top = 10

	[server]
	max_limit = 64
	max_guesses = 12

Flags override the file for a single run.

# Server Mode

With -s wordhint ranks the dictionary once and then answers msgpack requests
on stdin. See package server for the message format.

# Command Line Flags

	-dict string
	    Word list to rank (default from config)
	-len int
	    Word and guess length (default from config)
	-limit int
	    Number of candidates to print
	-top int
	    Number of starting words to print
	-rank string
	    Print the rank of a word
	-strict
	    Reject contradicting feedback
	-config string
	    Config file to use
	-s  Run the msgpack IPC server
	-d  Enable debug mode with detailed logging
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/wordhint/internal/cli"
	"github.com/bastiangx/wordhint/internal/utils"
	"github.com/bastiangx/wordhint/pkg/config"
	"github.com/bastiangx/wordhint/pkg/constraint"
	"github.com/bastiangx/wordhint/pkg/dictionary"
	"github.com/bastiangx/wordhint/pkg/server"
	"github.com/bastiangx/wordhint/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0-beta"
	AppName = "wordhint"
	gh      = "https://github.com/bastiangx/wordhint"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires config, dictionary and hinter together and dispatches to the
// one-shot CLI or the IPC server.
func main() {
	sigHandler()
	defaults := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	serverMode := flag.Bool("s", false, "Run the msgpack IPC server on stdin/stdout")
	configPath := flag.String("config", "", "Path to a config file")
	flag.String("dict", defaults.Dict.Path, "Word list to rank")
	flag.Int("len", defaults.Dict.WordLength, "Word and guess length")
	flag.Int("limit", defaults.CLI.Limit, "Number of candidates to print")
	flag.Int("top", defaults.CLI.Top, "Number of starting words to print")
	flag.Bool("strict", defaults.Constraint.Strict, "Reject contradicting feedback")
	rankOf := flag.String("rank", "", "Print the rank of a word")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [GUESS/FEEDBACK ...]\n\n", AppName)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Warnf("Failed to initialize path resolver: %v", err)
	}

	defaultConfigPath := ""
	if pathResolver != nil {
		defaultConfigPath = pathResolver.GetConfigPath(config.FileName)
	}
	cfg, usedPath := config.LoadConfigWithPriority(*configPath, defaultConfigPath)
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(usedPath))

	if err := applyFlags(cfg, flag.CommandLine); err != nil {
		log.Fatalf("%v", err)
	}

	wordList := cfg.Dict.Path
	if pathResolver != nil {
		wordList = pathResolver.GetDictPath(cfg.Dict.Path)
	}
	log.Debugf("Init dictionary: path=[%s], length=[%d]", wordList, cfg.Dict.WordLength)

	dict, err := dictionary.Build(wordList, cfg.Dict.WordLength)
	if err != nil {
		log.Fatalf("Failed to load dictionary: %v", err)
	}
	if dict.Len() == 0 {
		log.Warnf("No %d letter words found in %s", cfg.Dict.WordLength, wordList)
	}

	compiler := constraint.NewCompiler(cfg.Dict.WordLength, cfg.Constraint.Strict)
	hinter := suggest.NewHinter(dict, compiler)

	if *serverMode {
		log.Debug("spawning IPC")
		srv := server.NewServer(hinter, cfg)
		if err := srv.Start(); err != nil {
			log.Fatalf("Server error: %v", err)
		}
		return
	}

	// guesses are validated before anything is printed
	guesses := flag.Args()
	var candidates []suggest.Suggestion
	if len(guesses) > 0 {
		candidates, err = hinter.Suggest(guesses, cfg.CLI.Limit)
		if err != nil {
			log.Fatalf("%v", err)
		}
	}

	printer := cli.NewPrinter(os.Stdout)
	if *rankOf != "" {
		rank, found := dict.Position(*rankOf)
		printer.PrintPosition(utils.NormalizeWord(*rankOf), rank, dict.Len(), found)
	}

	switch {
	case len(guesses) > 0:
		if len(candidates) == 0 {
			log.Warn("No words match the feedback so far")
		}
		printer.PrintCandidates(candidates)
	case *rankOf == "":
		printer.PrintStarters(dict.Len(), cfg.Dict.WordLength, hinter.Starters(cfg.CLI.Top))
	}
}

// applyFlags copies the flags set on the command line over cfg and
// resets out of range values.
func applyFlags(cfg *config.Config, set *flag.FlagSet) error {
	var err error
	set.Visit(func(f *flag.Flag) {
		getter, ok := f.Value.(flag.Getter)
		if !ok {
			return
		}
		switch f.Name {
		case "dict":
			cfg.Dict.Path = getter.Get().(string)
		case "len":
			cfg.Dict.WordLength = getter.Get().(int)
		case "limit":
			cfg.CLI.Limit = getter.Get().(int)
		case "top":
			cfg.CLI.Top = getter.Get().(int)
		case "strict":
			cfg.Constraint.Strict = getter.Get().(bool)
		}
	})
	if cfg.Dict.WordLength < 1 {
		err = fmt.Errorf("invalid word length: %d", cfg.Dict.WordLength)
	}
	cfg.Sanitize()
	return err
}

// printVersion shows the version banner.
func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ wordhint ] picks your next five-letter guess")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}
