// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/lvlin/binding"
	"github.com/katalvlaran/lvlin/internal/logger"
	"github.com/katalvlaran/lvlin/shape"
)

type shapeRow struct {
	Name string     `json:"name" yaml:"name"`
	Rows int        `json:"rows" yaml:"rows"`
	Cols int        `json:"cols" yaml:"cols"`
	Kind shape.Kind `json:"kind" yaml:"kind"`
	Size int        `json:"size" yaml:"size"`
}

func shapesCmd() *cli.Command {
	return &cli.Command{
		Name:  "shapes",
		Usage: "List the registered shapes in registry order",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			rows := lo.Map(shape.All(), func(s shape.Shape, _ int) shapeRow {
				return shapeRow{Name: s.Name(), Rows: s.Rows, Cols: s.Cols, Kind: s.Kind(), Size: s.Size()}
			})
			return render(cmd.Root().Writer, settingsFrom(ctx).format, rows, func(tw *tabwriter.Writer) error {
				_, _ = fmt.Fprintln(tw, "NAME\tROWS\tCOLS\tKIND")
				for _, r := range rows {
					_, _ = fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n", r.Name, r.Rows, r.Cols, r.Kind)
				}
				return nil
			})
		},
	}
}

type opRow struct {
	Op          binding.Op          `json:"op" yaml:"op"`
	Arity       int                 `json:"arity" yaml:"arity"`
	Forms       []binding.Form      `json:"forms" yaml:"forms"`
	Yields      binding.Result      `json:"yields" yaml:"yields"`
	Restriction binding.Restriction `json:"restriction" yaml:"restriction"`
	Bindings    int                 `json:"bindings" yaml:"bindings"`
}

func opsCmd() *cli.Command {
	return &cli.Command{
		Name:  "ops",
		Usage: "List the operator table with per-operation binding counts",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cat := binding.Default()
			rows := lo.Map(binding.Table(), func(d binding.Descriptor, _ int) opRow {
				return opRow{
					Op:          d.Op,
					Arity:       d.Arity,
					Forms:       d.Forms,
					Yields:      d.Yields,
					Restriction: d.Restriction,
					Bindings:    cat.Count(d.Op),
				}
			})
			return render(cmd.Root().Writer, settingsFrom(ctx).format, rows, func(tw *tabwriter.Writer) error {
				_, _ = fmt.Fprintln(tw, "OP\tARITY\tFORMS\tYIELDS\tRESTRICTION\tBINDINGS")
				for _, r := range rows {
					forms := strings.Join(lo.Map(r.Forms, func(f binding.Form, _ int) string { return f.String() }), ",")
					_, _ = fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%d\n", r.Op, r.Arity, forms, r.Yields, r.Restriction, r.Bindings)
				}
				return nil
			})
		},
	}
}

func bindingsCmd() *cli.Command {
	return &cli.Command{
		Name:  "bindings",
		Usage: "Generate and list the binding catalog",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  flagOp,
				Usage: "restrict to these operations (repeatable; default: all, or the config's ops)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s := settingsFrom(ctx)
			names := s.ops
			if cmd.IsSet(flagOp) {
				names = cmd.StringSlice(flagOp)
			}
			ops, err := parseOps(names)
			if err != nil {
				return err
			}

			cat, err := binding.Generate(shape.All(),
				binding.WithLogger(logger.FromContext(ctx)),
				binding.WithOps(ops...))
			if err != nil {
				return err
			}
			bs := cat.Bindings()
			return render(cmd.Root().Writer, s.format, bs, func(tw *tabwriter.Writer) error {
				for _, b := range bs {
					_, _ = fmt.Fprintln(tw, b.String())
				}
				return nil
			})
		},
	}
}

// parseOps accepts operation names, also comma-separated in one value.
func parseOps(names []string) ([]binding.Op, error) {
	var ops []binding.Op
	for _, raw := range names {
		for _, name := range strings.Split(raw, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			op, err := binding.ParseOp(name)
			if err != nil {
				return nil, err
			}
			ops = append(ops, op)
		}
	}

	return lo.Uniq(ops), nil
}

func resolveCmd() *cli.Command {
	return &cli.Command{
		Name:      "resolve",
		Usage:     "Resolve the product LEFT x RIGHT of two type names",
		ArgsUsage: "LEFT RIGHT",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			l, err := shapeArg(cmd, 0, "LEFT")
			if err != nil {
				return err
			}
			r, err := shapeArg(cmd, 1, "RIGHT")
			if err != nil {
				return err
			}
			p, err := binding.ResolveMul(l, r)
			if err != nil {
				return err
			}
			return render(cmd.Root().Writer, settingsFrom(ctx).format, p, func(tw *tabwriter.Writer) error {
				_, _ = fmt.Fprintf(tw, "%s x %s -> %s (%s)\n", p.Left, p.Right, p.Result, p.Case)
				return nil
			})
		},
	}
}

func shapeArg(cmd *cli.Command, n int, name string) (shape.Shape, error) {
	arg, err := argN(cmd, n, name)
	if err != nil {
		return shape.Shape{}, err
	}
	s, err := shape.Lookup(arg)
	if err != nil {
		return shape.Shape{}, errors.Wrapf(err, "%s", name)
	}

	return s, nil
}
