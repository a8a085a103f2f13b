// SPDX-License-Identifier: MIT

// Package gridfile reads and writes array2d grids as TOML documents:
//
//	title = "heat map"
//	rows  = 2
//	cols  = 3
//	data  = [[1.0, 2.0, 3.0], [4.0, 5.0, 6.0]]
//
// rows and cols are optional when data is present; when given they must match
// it. An absent or empty data key with non-zero rows/cols yields a
// zero-valued rows×cols grid.
package gridfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/dense2d/array2d"
)

// ErrSyntax is returned when the input is not a well-formed grid document.
var ErrSyntax = errors.New("gridfile: malformed document")

// Header carries the document metadata next to the decoded grid.
type Header struct {
	Title string
	Rows  int
	Cols  int
}

type document[T any] struct {
	Title string `toml:"title,omitempty"`
	Rows  int    `toml:"rows"`
	Cols  int    `toml:"cols"`
	Data  [][]T  `toml:"data"`
}

// Decode reads one grid document from r. opts are passed to the array constructor.
//
// Errors:
//   - ErrSyntax (TOML syntax, type mismatch or unknown keys).
//   - array2d.ErrInvalidArgument (negative dims, ragged data, header/data mismatch).
//   - array2d.ErrOverflow, array2d.ErrAllocation from construction.
func Decode[T any](r io.Reader, opts ...array2d.Option) (*array2d.Array[T], Header, error) {
	var doc document[T]
	md, err := toml.NewDecoder(r).Decode(&doc)
	if err != nil {
		return nil, Header{}, fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	if und := md.Undecoded(); len(und) > 0 {
		keys := make([]string, len(und))
		for i, k := range und {
			keys[i] = k.String()
		}
		return nil, Header{}, fmt.Errorf("%w: unknown keys %s", ErrSyntax, strings.Join(keys, ", "))
	}

	h := Header{Title: doc.Title, Rows: doc.Rows, Cols: doc.Cols}
	if len(doc.Data) == 0 {
		a, err := array2d.New[T](doc.Rows, doc.Cols, opts...)
		if err != nil {
			return nil, h, fmt.Errorf("gridfile: %w", err)
		}
		return a, h, nil
	}

	a, err := array2d.FromRows(doc.Data, opts...)
	if err != nil {
		return nil, h, fmt.Errorf("gridfile: %w", err)
	}
	if md.IsDefined("rows") && doc.Rows != a.Rows() {
		return nil, h, fmt.Errorf("gridfile: rows = %d but data has %d rows: %w",
			doc.Rows, a.Rows(), array2d.ErrInvalidArgument)
	}
	if md.IsDefined("cols") && doc.Cols != a.Cols() {
		return nil, h, fmt.Errorf("gridfile: cols = %d but data has %d columns: %w",
			doc.Cols, a.Cols(), array2d.ErrInvalidArgument)
	}
	h.Rows, h.Cols = a.Shape()

	return a, h, nil
}

// Encode writes a as a grid document. An empty title is omitted.
func Encode[T any](w io.Writer, a *array2d.Array[T], title string) error {
	doc := document[T]{Title: title, Rows: a.Rows(), Cols: a.Cols(), Data: make([][]T, 0, a.Rows())}
	for _, row := range a.RowSlices() {
		doc.Data = append(doc.Data, row)
	}
	if err := toml.NewEncoder(w).Encode(doc); err != nil {
		return fmt.Errorf("gridfile: encode: %w", err)
	}

	return nil
}

// Load decodes the grid document stored at path.
func Load[T any](path string, opts ...array2d.Option) (*array2d.Array[T], Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Header{}, err
	}
	defer f.Close()

	return Decode[T](f, opts...)
}

// Save writes a to path, replacing any existing file.
func Save[T any](path string, a *array2d.Array[T], title string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, a, title); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
