// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	"github.com/katalvlaran/lvlin/binding"
	"github.com/katalvlaran/lvlin/internal/logger"
	"github.com/katalvlaran/lvlin/lin"
)

// applyResult is the encoded outcome of one operation; exactly one of
// Data, Value and Bool is set.
type applyResult struct {
	Op    binding.Op  `json:"op" yaml:"op"`
	Type  string      `json:"type,omitempty" yaml:"type,omitempty"`
	Data  [][]float64 `json:"data,omitempty" yaml:"data,omitempty"`
	Value *float64    `json:"value,omitempty" yaml:"value,omitempty"`
	Bool  *bool       `json:"bool,omitempty" yaml:"bool,omitempty"`

	tensor *lin.Tensor
}

func applyCmd() *cli.Command {
	return &cli.Command{
		Name:      "apply",
		Usage:     "Evaluate one operation; operands are JSON tensors or numbers",
		ArgsUsage: "OP OPERAND [OPERAND]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			name, err := argN(cmd, 0, "OP")
			if err != nil {
				return err
			}
			op, err := binding.ParseOp(name)
			if err != nil {
				return err
			}
			args := cmd.Args().Slice()[1:]
			operands := make([]lin.Operand, len(args))
			for k, a := range args {
				if operands[k], err = parseOperand(a); err != nil {
					return errors.Wrapf(err, "operand %d", k+1)
				}
			}

			res, err := evaluate(op, operands)
			if err != nil {
				return err
			}
			logger.FromContext(ctx).Debug("applied", "op", op.String(), "operands", len(operands))

			return render(cmd.Root().Writer, settingsFrom(ctx).format, res, func(tw *tabwriter.Writer) error {
				switch {
				case res.tensor != nil:
					_, _ = fmt.Fprintln(tw, res.tensor.String())
				case res.Value != nil:
					_, _ = fmt.Fprintln(tw, strconv.FormatFloat(*res.Value, 'g', -1, 64))
				default:
					_, _ = fmt.Fprintln(tw, *res.Bool)
				}
				return nil
			})
		},
	}
}

// parseOperand reads a number as a Scalar and anything else as a JSON tensor.
func parseOperand(s string) (lin.Operand, error) {
	s = strings.TrimSpace(s)
	if x, err := strconv.ParseFloat(s, 64); err == nil {
		return lin.Scalar(x), nil
	}
	t := new(lin.Tensor)
	if err := json.Unmarshal([]byte(s), t); err != nil {
		return nil, err
	}

	return t, nil
}

// evaluate checks the operand count against the operator table and runs op.
func evaluate(op binding.Op, args []lin.Operand) (applyResult, error) {
	d, err := binding.Describe(op)
	if err != nil {
		return applyResult{}, err
	}
	if len(args) != d.Arity {
		return applyResult{}, errors.Wrapf(errUsage, "%s takes %d operand(s), got %d", op, d.Arity, len(args))
	}
	res := applyResult{Op: op}

	switch op {
	case binding.OpAdd:
		return res.tensorOf(lin.Add(args[0], args[1]))
	case binding.OpSubtract:
		return res.tensorOf(lin.Subtract(args[0], args[1]))
	case binding.OpMultiply:
		return res.tensorOf(lin.Multiply(args[0], args[1]))
	case binding.OpDivide:
		return res.tensorOf(lin.Divide(args[0], args[1]))
	}

	ts := make([]*lin.Tensor, len(args))
	for k, a := range args {
		t, ok := a.(*lin.Tensor)
		if !ok {
			return applyResult{}, errors.Wrapf(binding.ErrNoBinding, "%s: operand %d is a scalar", op, k+1)
		}
		ts[k] = t
	}

	switch op {
	case binding.OpNegate:
		return res.tensorOf(lin.Negate(ts[0]), nil)
	case binding.OpSign:
		return res.tensorOf(lin.Sign(ts[0]), nil)
	case binding.OpSquare:
		return res.tensorOf(lin.Square(ts[0]), nil)
	case binding.OpTranspose:
		return res.tensorOf(lin.Transpose(ts[0]), nil)
	case binding.OpIsFinite:
		ok := lin.IsFinite(ts[0])
		res.Bool = &ok
		return res, nil
	case binding.OpSum:
		return res.valueOf(lin.Sum(ts[0]), nil)
	case binding.OpFro:
		return res.valueOf(lin.Fro(ts[0]), nil)
	case binding.OpDot:
		return res.valueOf(lin.Dot(ts[0], ts[1]))
	case binding.OpNorm:
		return res.valueOf(lin.Norm(ts[0]))
	case binding.OpTrace:
		return res.valueOf(lin.Trace(ts[0]))
	case binding.OpCross:
		return res.tensorOf(lin.Cross(ts[0], ts[1]))
	default:
		return res.tensorOf(lin.Mul(ts[0], ts[1]))
	}
}

func (r applyResult) tensorOf(t *lin.Tensor, err error) (applyResult, error) {
	if err != nil {
		return applyResult{}, err
	}
	r.tensor = t
	r.Type = t.Type().Name()
	flat := t.Serialize()
	r.Data = make([][]float64, t.Rows())
	for i := range r.Data {
		r.Data[i] = flat[i*t.Cols() : (i+1)*t.Cols()]
	}

	return r, nil
}

func (r applyResult) valueOf(x float64, err error) (applyResult, error) {
	if err != nil {
		return applyResult{}, err
	}
	r.Value = &x

	return r, nil
}
