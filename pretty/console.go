package pretty

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/bst"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config holds the settings of a Printer.
type Config struct {
	Colors  bool           // colorize connectors and values
	Indent  int            // width of a level of indentation, in ‘en’s
	Context *uax11.Context // for measuring the display width of values
}

// DefaultIndent is the indentation width of the original sideways layout.
const DefaultIndent = 4

// ConfigFromTerminal is a simple helper for creating a printer Config.
// It checks whether stdout is a terminal and, if so, switches on colors and
// narrows the indentation for small terminals.
func ConfigFromTerminal() *Config {
	config := &Config{
		Indent:  DefaultIndent,
		Context: uax11.ContextFromEnvironment(),
	}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		config.Colors = !color.NoColor
		if w, _, err := term.GetSize(fd); err == nil && w < 40 {
			config.Indent = 2
		}
	}
	tracer().P("format", "console").Infof("colors=%v, indent=%d en", config.Colors, config.Indent)
	return config
}

// Printer outputs trees holding values of type T.
type Printer[T cmp.Ordered] struct {
	config  Config
	palette palette
}

type palette struct {
	edge, leaf, inner *color.Color
}

func makeDefaultPalette(enabled bool) palette {
	p := palette{
		edge:  color.New(color.FgBlue),
		leaf:  color.New(color.FgGreen),
		inner: color.New(color.FgRed, color.Bold),
	}
	for _, c := range []*color.Color{p.edge, p.leaf, p.inner} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// NewPrinter creates a printer for trees. If config is nil, a configuration
// without colors and with default indentation will be used.
func NewPrinter[T cmp.Ordered](config *Config) *Printer[T] {
	p := &Printer[T]{}
	if config != nil {
		p.config = *config
	}
	if p.config.Indent < 2 {
		p.config.Indent = DefaultIndent
	}
	if p.config.Context == nil {
		p.config.Context = uax11.LatinContext
	}
	p.palette = makeDefaultPalette(p.config.Colors)
	grapheme.SetupGraphemeClasses()
	return p
}

func (p *Printer[T]) edge(w io.Writer, s string) error {
	_, err := p.palette.edge.Fprint(w, s)
	return err
}

func (p *Printer[T]) value(w io.Writer, n bst.Node[T]) error {
	c := p.palette.inner
	if n.IsLeaf() {
		c = p.palette.leaf
	}
	_, err := c.Fprint(w, label(n.Value()))
	return err
}

// label is the textual representation of a value.
func label[T cmp.Ordered](v T) string {
	return fmt.Sprint(v)
}

// width returns the number of fixed-width positions occupied by s on a
// terminal.
func (p *Printer[T]) width(s string) int {
	return displayWidth(s, p.config.Context)
}

// displayWidth counts ASCII characters as one position each. Only runs of
// non-ASCII text are measured by uax11, which reports narrow digits as
// two positions in the Latin context.
func displayWidth(s string, context *uax11.Context) int {
	w, start := 0, 0
	for start < len(s) {
		end := start
		if s[start] < utf8.RuneSelf {
			for end < len(s) && s[end] < utf8.RuneSelf {
				end++
			}
			w += end - start
		} else {
			for end < len(s) && s[end] >= utf8.RuneSelf {
				end++
			}
			w += uax11.StringWidth(grapheme.StringFromString(s[start:end]), context)
		}
		start = end
	}
	return w
}

func pad(s string, n int) string {
	if n <= 0 {
		return s
	}
	return s + strings.Repeat(" ", n)
}
