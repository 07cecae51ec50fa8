/*
Command bstdemo exercises a binary search tree: it builds a tree from random
values, unbalances it by a run of ascending insertions, and rebalances it
again. After each step it prints the traversals and the structure of the tree.

Every flag may also be set from the environment or from a .env file in the
current directory.
*/
package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/carlmjohnson/versioninfo"
	_ "github.com/joho/godotenv/autoload"
	"github.com/npillmayer/bst"
	"github.com/npillmayer/bst/htmltree"
	"github.com/npillmayer/bst/journal"
	"github.com/npillmayer/bst/pretty"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/urfave/cli/v2"
)

func tracer() tracing.Trace {
	return tracing.Select("bst")
}

func main() {
	app := cli.App{
		Name:    "bstdemo",
		Usage:   "build, unbalance and rebalance a binary search tree",
		Version: versioninfo.Short(),
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "size",
				Aliases: []string{"n"},
				Usage:   "number of random values to build the tree from",
				Value:   15,
				EnvVars: []string{"BST_SIZE"},
			},
			&cli.IntFlag{
				Name:    "max",
				Usage:   "random values are drawn from [0…max)",
				Value:   100,
				EnvVars: []string{"BST_MAX"},
			},
			&cli.Int64Flag{
				Name:    "seed",
				Usage:   "seed for random values, 0 for a time based seed",
				EnvVars: []string{"BST_SEED"},
			},
			&cli.IntFlag{
				Name:    "inserts",
				Usage:   "number of ascending values > max to insert",
				Value:   6,
				EnvVars: []string{"BST_INSERTS"},
			},
			&cli.StringFlag{
				Name:    "layout",
				Usage:   "tree layout: sideways, grid or outline",
				Value:   "sideways",
				EnvVars: []string{"BST_LAYOUT"},
			},
			&cli.BoolFlag{
				Name:    "color",
				Usage:   "colorize output (default: if stdout is a terminal)",
				EnvVars: []string{"BST_COLOR"},
			},
			&cli.StringFlag{
				Name:    "trace",
				Usage:   "trace level: Error, Info or Debug",
				Value:   "Error",
				EnvVars: []string{"BST_TRACE"},
			},
			&cli.StringFlag{
				Name:  "dot",
				Usage: "write final tree in GraphViz DOT format to `FILE`",
			},
			&cli.StringFlag{
				Name:  "html",
				Usage: "write final tree as a nested HTML list to `FILE`",
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}

func run(cctx *cli.Context) error {
	tracing.SetTraceSelector(tracing.SelectorForAdapter(gologadapter.GetAdapter()))
	tracer().SetTraceLevel(tracing.TraceLevelFromString(cctx.String("trace")))
	//
	size, limit, inserts := cctx.Int("size"), cctx.Int("max"), cctx.Int("inserts")
	if size < 0 || limit <= 0 || inserts < 0 {
		return fmt.Errorf("%w: size=%d, max=%d, inserts=%d", bst.ErrIllegalArguments, size, limit, inserts)
	}
	config := pretty.ConfigFromTerminal()
	if cctx.IsSet("color") {
		config.Colors = cctx.Bool("color")
	}
	p := pretty.NewPrinter[int](config)
	layout, err := layoutFor(cctx.String("layout"), p)
	if err != nil {
		return err
	}
	//
	// 1) create a tree from an array of random numbers < limit
	values := randomValues(cctx.Int64("seed"), size, limit)
	fmt.Println("Random array:", join(values))
	j := journal.New(bst.New(values...))
	done := logEvents(cctx.Context, j)
	tree := j.Tree()
	// 2) confirm the tree is balanced
	fmt.Println("Is balanced (initial)?", tree.IsBalanced())
	// 3) print out all elements in level, pre, post, and in order
	if err := printTree(os.Stdout, p, layout, tree); err != nil {
		return err
	}
	// 4) unbalance the tree by adding several numbers > limit
	large := make([]int, inserts)
	for i := range large {
		large[i] = limit + 1 + i
		j.Insert(large[i])
	}
	fmt.Println("Inserted values to unbalance:", join(large))
	// 5) confirm that the tree is unbalanced
	fmt.Println("Is balanced (after inserts)?", tree.IsBalanced())
	if err := printTree(os.Stdout, p, layout, tree); err != nil {
		return err
	}
	// 6) balance the tree by calling rebalance
	j.Rebalance()
	// 7) confirm that the tree is balanced
	fmt.Println("Is balanced (after rebalance)?", tree.IsBalanced())
	// 8) print out all elements in level, pre, post, and in order
	if err := printTree(os.Stdout, p, layout, tree); err != nil {
		return err
	}
	j.Close()
	<-done
	if err := tree.Check(); err != nil {
		return err
	}
	if path := cctx.String("dot"); path != "" {
		if err := writeFile(path, tree.ToDot); err != nil {
			return err
		}
	}
	if path := cctx.String("html"); path != "" {
		if err := writeHTML(path, tree); err != nil {
			return err
		}
	}
	return nil
}

func randomValues(seed int64, n, limit int) []int {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	tracer().Infof("random seed is %d", seed)
	faker := gofakeit.New(seed)
	values := make([]int, n)
	for i := range values {
		values[i] = faker.Number(0, limit-1)
	}
	return values
}

// logEvents traces the mutations of a journal. The returned channel is closed
// as soon as the journal has been closed and all events are logged.
func logEvents(ctx context.Context, j *journal.Journal[int]) <-chan struct{} {
	done := make(chan struct{})
	events, err := j.Subscribe(ctx, 16)
	if err != nil {
		tracer().Errorf("cannot log tree mutations: %v", err)
		close(done)
		return done
	}
	go func() {
		defer close(done)
		for ev := range events {
			tracer().Infof("tree mutation: %v", ev)
		}
	}()
	return done
}

type layoutFunc func(io.Writer, *bst.Tree[int]) error

func layoutFor(name string, p *pretty.Printer[int]) (layoutFunc, error) {
	switch strings.ToLower(name) {
	case "sideways":
		return p.Sideways, nil
	case "grid":
		return p.Grid, nil
	case "outline":
		return func(w io.Writer, tree *bst.Tree[int]) error {
			_, err := io.WriteString(w, pretty.Treeprint(tree))
			return err
		}, nil
	}
	return nil, fmt.Errorf("%w: unknown layout %q", bst.ErrIllegalArguments, name)
}

func printTree(w io.Writer, p *pretty.Printer[int], layout layoutFunc, tree *bst.Tree[int]) error {
	if err := p.Traversals(w, tree); err != nil {
		return err
	}
	if err := layout(w, tree); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w)
	return err
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// writeHTML writes the tree as HTML and verifies the labels by parsing the
// output again.
func writeHTML(path string, tree *bst.Tree[int]) error {
	var buf bytes.Buffer
	if err := htmltree.Render(&buf, tree); err != nil {
		return err
	}
	labels, err := htmltree.Labels(bytes.NewReader(buf.Bytes()))
	if err != nil {
		return err
	}
	if len(labels) != tree.Len() {
		return fmt.Errorf("HTML output has %d labels, tree has %d values", len(labels), tree.Len())
	}
	return writeFile(path, func(w io.Writer) error {
		_, err := buf.WriteTo(w)
		return err
	})
}

func join(values []int) string {
	s := make([]string, len(values))
	for i, v := range values {
		s[i] = fmt.Sprint(v)
	}
	return strings.Join(s, ", ")
}
