// Command mazebeaver is the front end for the repeated-maze busy-beaver
// search: solve a maze, normalize one, or search the maze space for the
// longest shortest path.
//
// Usage:
//
//	mazebeaver solve  [--bfs] [--nterm N] [-v] [maze-string]
//	mazebeaver norm   [--nterm N] [maze-string]
//	mazebeaver search [--bfs] [--topdown | --random] [--nterm N]
//	                  [--min-aport K] [--max-aport K] [--max-len L]
//	                  [--seed S] [-v]
//	mazebeaver --version
//
// The maze string is taken from the positional argument, or from stdin
// when absent. Exit code 0 on success, 1 on invalid arguments.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/katalvlaran/mazebeaver/bfs"
	"github.com/katalvlaran/mazebeaver/canon"
	"github.com/katalvlaran/mazebeaver/iddfs"
	"github.com/katalvlaran/mazebeaver/maze"
	"github.com/katalvlaran/mazebeaver/mazefmt"
	"github.com/katalvlaran/mazebeaver/normalize"
	"github.com/katalvlaran/mazebeaver/quiz"
)

const version = "mazebeaver 1.0.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		usage()
		return 1
	}

	switch args[0] {
	case "--version", "-version":
		fmt.Println(version)
		return 0
	case "solve":
		return cmdSolve(args[1:])
	case "norm":
		return cmdNorm(args[1:])
	case "search":
		return cmdSearch(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "mazebeaver: unknown subcommand %q\n", args[0])
		usage()
		return 1
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: mazebeaver {solve|norm|search|--version} [flags] [maze-string]")
}

// readMaze parses the maze from fs's positional arguments, or from stdin
// when none are given. nterm 0 means autodetect.
func readMaze(fs *flag.FlagSet, nterm int) (*maze.Maze, error) {
	text := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if text == "" {
		in, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		text = strings.TrimSpace(string(in))
	}
	if nterm > 0 {
		return mazefmt.Parse(text, nterm)
	}
	return mazefmt.ParseAuto(text)
}

func cmdSolve(args []string) int {
	fs := flag.NewFlagSet("solve", flag.ContinueOnError)
	useBFS := fs.Bool("bfs", false, "use the BFS solver instead of IDDFS")
	nterm := fs.Int("nterm", 0, "terminal count per direction (0 = autodetect)")
	verbose := fs.Bool("v", false, "annotate each path step with its block and port")
	if fs.Parse(args) != nil {
		return 1
	}

	m, err := readMaze(fs, *nterm)
	if err != nil {
		fmt.Fprintln(os.Stderr, "mazebeaver:", err)
		return 1
	}

	var length int
	var path []canon.State
	if *useBFS {
		res, err := bfs.Solve(m)
		if err != nil {
			fmt.Fprintln(os.Stderr, "mazebeaver:", err)
			return 1
		}
		length, path = res.Length, res.Path
	} else {
		res, err := iddfs.Solve(m)
		if err != nil {
			fmt.Fprintln(os.Stderr, "mazebeaver:", err)
			return 1
		}
		length, path = res.Length, res.Path
	}

	if length < 0 {
		fmt.Println("no path")
		return 0
	}
	fmt.Printf("length: %d\n", length)
	fmt.Println(mazefmt.PrintPath(path))
	if *verbose {
		fmt.Print(mazefmt.RenderVerbosePath(m, path))
		fmt.Print(mazefmt.RenderMatrix(m))
	}
	return 0
}

func cmdNorm(args []string) int {
	fs := flag.NewFlagSet("norm", flag.ContinueOnError)
	nterm := fs.Int("nterm", 0, "terminal count per direction (0 = autodetect)")
	if fs.Parse(args) != nil {
		return 1
	}

	m, err := readMaze(fs, *nterm)
	if err != nil {
		fmt.Fprintln(os.Stderr, "mazebeaver:", err)
		return 1
	}

	fmt.Println(mazefmt.Print(normalize.Normalize(m)))
	return 0
}

func cmdSearch(args []string) int {
	fs := flag.NewFlagSet("search", flag.ContinueOnError)
	useBFS := fs.Bool("bfs", false, "use the BFS solver instead of IDDFS")
	topdown := fs.Bool("topdown", false, "top-down port-deletion search")
	random := fs.Bool("random", false, "random sampling search")
	nterm := fs.Int("nterm", 2, "terminal count per direction")
	minAport := fs.Int("min-aport", 0, "minimum active ports per candidate")
	maxAport := fs.Int("max-aport", -1, "maximum active ports per candidate (-1 = all)")
	maxLen := fs.Int("max-len", 0, "stop once a path of this length is found (0 = no cap)")
	seed := fs.Int64("seed", 0, "RNG seed for --random (0 = stable default)")
	verbose := fs.Bool("v", false, "print the best maze's port matrix and verbose path")
	if fs.Parse(args) != nil {
		return 1
	}
	if *topdown && *random {
		fmt.Fprintln(os.Stderr, "mazebeaver: --topdown and --random are mutually exclusive")
		return 1
	}

	opts := []quiz.Option{
		quiz.WithNterm(*nterm),
		quiz.WithPortBudget(*minAport, *maxAport),
		quiz.WithLengthCap(*maxLen),
		quiz.WithSeed(*seed),
	}
	if *useBFS {
		opts = append(opts, quiz.WithBFS())
	}

	// Interrupt cancels the search at its next loop boundary; the best
	// found so far is still reported.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var best *quiz.Best
	var err error
	switch {
	case *topdown:
		best, err = quiz.TopDown(ctx, opts...)
	case *random:
		best, err = quiz.Random(ctx, opts...)
	default:
		best, err = quiz.Exhaustive(ctx, opts...)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "mazebeaver:", err)
		return 1
	}
	if ctx.Err() != nil {
		fmt.Fprintln(os.Stderr, "mazebeaver: interrupted, reporting best so far")
	}

	if best == nil {
		fmt.Println("no maze with a valid path found")
		return 0
	}
	fmt.Printf("best length: %d\n", best.Length)
	fmt.Println(mazefmt.Print(best.Maze))
	fmt.Println(mazefmt.PrintPath(best.Path))
	if *verbose {
		fmt.Print(mazefmt.RenderVerbosePath(best.Maze, best.Path))
		fmt.Print(mazefmt.RenderMatrix(best.Maze))
	}
	return 0
}
