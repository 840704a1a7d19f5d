package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/shibukawa/retree"
	"github.com/shibukawa/retree/parser"
	"github.com/shibukawa/retree/tree"
)

// ParseCmd represents the parse command
type ParseCmd struct {
	Expr   string `arg:"" help:"Regular expression to parse ('#' is the empty production)"`
	Output string `short:"o" help:"Write the dump to a file instead of stdout" type:"path"`
	Format string `short:"f" help:"Dump format: text, xml or yaml (default: from config)"`
}

// Run executes the parse command
func (cmd *ParseCmd) Run(ctx *Context) error {
	config, err := retree.LoadConfig(ctx.Config)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	format := cmd.Format
	if format == "" {
		format = config.Output.Format
	}

	output := cmd.Output
	if output == "" {
		output = config.Output.File
	}

	if ctx.Verbose {
		color.Blue("Parsing %q", cmd.Expr)
	}

	root, err := parser.Parse(cmd.Expr)
	if errors.Is(err, retree.ErrNoAlternative) || errors.Is(err, retree.ErrTrailingInput) {
		// A rejected expression is a normal outcome, not a command failure.
		if ctx.Verbose {
			color.Red("%v", err)
		}

		if !ctx.Quiet {
			fmt.Println("Syntax error")
		}

		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to parse expression: %w", err)
	}

	defer root.Free()

	// The synthetic Root node is not part of the dump; on success it has
	// exactly one child, the top-level RE node.
	top := root.Children()[0]

	w := io.Writer(os.Stdout)

	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()

		w = f
	}

	opts := tree.RenderOptions{
		Marker: config.Output.Marker,
		Indent: config.Output.Indent,
	}

	switch format {
	case "text":
		err = top.Render(w, opts)
	case "xml":
		err = top.WriteXML(w)
	case "yaml":
		err = top.EncodeYAML(w)
	default:
		return fmt.Errorf("%w: invalid format '%s': must be one of text, xml, yaml", retree.ErrConfigValidation, format)
	}

	if err != nil {
		return fmt.Errorf("failed to dump tree: %w", err)
	}

	if ctx.Verbose && output != "" {
		color.Green("Wrote %s dump to %s", format, output)
	}

	return nil
}
