// Command fixedla-demo walks through the fixedla containers: construction,
// assignment, row access, elementwise arithmetic and the matrix transforms,
// printing each result with the debug dump.
//
// Usage:
//
//	fixedla-demo [-verb %v] [-sep " "]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/fixedla/dim"
	"github.com/katalvlaran/fixedla/matrix"
	"github.com/katalvlaran/fixedla/vector"
)

func main() {
	verb := flag.String("verb", matrix.DefaultVerb, "fmt verb used for every value")
	sep := flag.String("sep", matrix.DefaultSeparator, "separator between values of a row")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	if !strings.HasPrefix(*verb, "%") || strings.ContainsAny(*sep, "\r\n") {
		log.Fatal().Str("verb", *verb).Str("sep", *sep).Msg("invalid format flags")
	}
	d := demo{
		out:  os.Stdout,
		opts: []matrix.FormatOption{matrix.WithVerb(*verb), matrix.WithSeparator(*sep)},
		vopt: []vector.FormatOption{vector.WithVerb(*verb), vector.WithSeparator(*sep)},
	}
	if err := d.run(log); err != nil {
		os.Exit(1)
	}
	log.Info().Msg("all demo steps completed")
}

// run executes every step in order, stopping at the first failure.
func (d demo) run(log zerolog.Logger) error {
	for _, step := range []struct {
		name string
		run  func() error
	}{
		{"create", d.create},
		{"assignment", d.assignment},
		{"access", d.access},
		{"arithmetic", d.arithmetic},
		{"transform", d.transform},
		{"vector", d.vectors},
	} {
		if err := step.run(); err != nil {
			log.Error().Err(err).Str("step", step.name).Msg("demo step failed")
			return err
		}
		log.Debug().Str("step", step.name).Msg("done")
	}

	return nil
}

type demo struct {
	out  io.Writer
	opts []matrix.FormatOption
	vopt []vector.FormatOption
}

// dumper is satisfied by every matrix instantiation.
type dumper interface {
	Format(w io.Writer, opts ...matrix.FormatOption) error
}

func (d demo) show(title string, m dumper) error {
	if _, err := fmt.Fprintln(d.out, title); err != nil {
		return err
	}
	if err := m.Format(d.out, d.opts...); err != nil {
		return err
	}
	_, err := fmt.Fprintln(d.out)

	return err
}

func (d demo) create() error {
	var empty matrix.Matrix[int, dim.D3, dim.D4]
	if err := d.show("matrix_empty", &empty); err != nil {
		return err
	}
	if err := d.show("matrix_zeros", matrix.Zeros[int, dim.D3, dim.D2]()); err != nil {
		return err
	}
	if err := d.show("matrix_identity", matrix.Identity[int, dim.D3]()); err != nil {
		return err
	}
	fromLiteral := matrix.FromValues[float32, dim.D3, dim.D3](1, 2, 3, 4, 5, 6, 7, 8, 9)
	if err := d.show("matrix_from_literal", fromLiteral); err != nil {
		return err
	}

	return d.show("matrix_from_matrix", fromLiteral.Clone())
}

func (d demo) assignment() error {
	m1 := matrix.FromValues[float32, dim.D3, dim.D3](1, 2, 3, 4, 5, 6, 7, 8, 9)
	var m2 matrix.Matrix3f

	m2.Assign(m1)
	if err := d.show("assignment from matrix", &m2); err != nil {
		return err
	}
	m2.Assign(matrix.Identity[float32, dim.D3]())

	return d.show("assignment from identity", &m2)
}

func (d demo) access() error {
	m := matrix.FromValues[float32, dim.D2, dim.D2](1, 2, 3, 4)
	row, err := m.Row(1)
	if err != nil {
		return err
	}
	if _, err = fmt.Fprintf(d.out, "matrix[1][1] is %v\n", row[1]); err != nil {
		return err
	}
	if err = row.Set(1, 5); err != nil {
		return err
	}

	return d.show("after row[1].Set(1, 5)", m)
}

func (d demo) arithmetic() error {
	a := matrix.FromValues[float32, dim.D2, dim.D2](1, 2, 3, 4)
	b := matrix.FromValues[float32, dim.D2, dim.D2](4, 3, 2, 1)

	quot, err := a.DivElem(b)
	if err != nil {
		return err
	}
	for _, s := range []struct {
		title string
		m     *matrix.Matrix2f
	}{
		{"Neg", a.Neg()},
		{"Add", a.Add(b)},
		{"Sub", a.Sub(b)},
		{"MulElem", a.MulElem(b)},
		{"DivElem", quot},
	} {
		if err = d.show(s.title, s.m); err != nil {
			return err
		}
	}

	return nil
}

func (d demo) transform() error {
	a := matrix.FromValues[float32, dim.D2, dim.D2](1, 2, 3, 4)
	b := matrix.FromValues[float32, dim.D2, dim.D2](4, 3, 2, 1)

	if err := d.show("multiply", matrix.Mul(a, b)); err != nil {
		return err
	}
	inv, err := matrix.Inverse(a)
	if err != nil && !errors.Is(err, matrix.ErrSingular) {
		return err
	}
	if err != nil {
		_, _ = fmt.Fprintln(d.out, "warning: matrix is singular, partial result follows")
	}
	if err = d.show("inverse", inv); err != nil {
		return err
	}

	return d.show("transpose", a.Transpose())
}

func (d demo) vectors() error {
	a := vector.FromValues[float64, dim.D3](1, 2, 3)
	b := vector.FromValues[float64, dim.D3](4, 5, 6)

	unit, err := a.Normalized()
	if err != nil {
		return err
	}
	if _, err = fmt.Fprintf(d.out, "dot %v norm %v\n", a.Dot(b), a.Norm()); err != nil {
		return err
	}
	for _, s := range []struct {
		title string
		v     interface {
			Format(io.Writer, ...vector.FormatOption) error
		}
	}{
		{"cross", vector.Cross(a, b)},
		{"normalized", unit},
		{"head2", vector.Head[dim.D2](a)},
	} {
		if _, err = fmt.Fprintf(d.out, "%s: ", s.title); err != nil {
			return err
		}
		if err = s.v.Format(d.out, d.vopt...); err != nil {
			return err
		}
		if _, err = fmt.Fprintln(d.out); err != nil {
			return err
		}
	}

	return nil
}
