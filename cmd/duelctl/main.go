// Command duelctl is duelcore's command-line entry point: host and join
// a TCP duel, or benchmark the planner against itself.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	switch cmd {
	case "host":
		runHost(os.Args[2:])
	case "join":
		runJoin(os.Args[2:])
	case "bench":
		runBench(os.Args[2:])
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  duelctl host [--deck N] [--port P] [--decks FILE]")
	fmt.Println("  duelctl join [--deck N] [--addr ADDR]")
	fmt.Println("  duelctl bench [--iters N] [--decks FILE] [--deck0 N] [--deck1 N] [--seed S]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  host    Start a duel server and play as player 0")
	fmt.Println("  join    Connect to a duel server and play as player 1")
	fmt.Println("  bench   Run the MCTS planner against itself and print a JSON record per move")
}

func exitOnError(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runHost(args []string) {
	fs := flag.NewFlagSet("host", flag.ExitOnError)
	deck := fs.Int("deck", 1, "deck number to use (from decks.yaml)")
	port := fs.String("port", "9000", "TCP port to listen on")
	decksFile := fs.String("decks", "decks.yaml", "path to decks file")
	fs.Parse(args)

	exitOnError(hostDuel(context.Background(), *decksFile, *port, *deck))
}

func runJoin(args []string) {
	fs := flag.NewFlagSet("join", flag.ExitOnError)
	deck := fs.Int("deck", 2, "deck number to use (from decks.yaml)")
	addr := fs.String("addr", "localhost:9000", "server address to connect to")
	fs.Parse(args)

	exitOnError(joinDuel(context.Background(), *addr, *deck))
}

func runBench(args []string) {
	fs := flag.NewFlagSet("bench", flag.ExitOnError)
	iters := fs.Int("iters", 200, "MCTS iterations to run per move")
	decksFile := fs.String("decks", "decks.yaml", "path to decks file")
	deck0 := fs.Int("deck0", 1, "deck number for player 0")
	deck1 := fs.Int("deck1", 2, "deck number for player 1")
	seed := fs.Int64("seed", 1, "random seed")
	fs.Parse(args)

	exitOnError(runBenchmark(*decksFile, *deck0, *deck1, *iters, *seed))
}
