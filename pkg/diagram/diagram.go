package diagram

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/fxamacker/cbor/v2"
)

const (
	Rows  = 7
	Cols  = 7
	Cells = Rows * Cols
)

var (
	ErrEmptyDiagram = errors.New("diagram has no filled cells")
	ErrTooManyCells = errors.New("too many values for diagram")
	ErrOutOfBounds  = errors.New("cell position out of bounds")
)

// encMode produces the same bytes for the same logical diagram, which the seed derivation depends on.
var encMode cbor.EncMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("diagram: CBOR encoder initialization failed: " + err.Error())
	}
}

// Kind distinguishes simple from complex diagrams.
type Kind uint8

const (
	KindSimple Kind = iota + 1
	KindComplex
)

func (k Kind) String() string {
	switch k {
	case KindSimple:
		return "simple"
	case KindComplex:
		return "complex"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// Diagram is a grid of optional values.
type Diagram struct {
	kind  Kind
	cells [Cells]string
}

// Simple creates a Diagram holding the first character of each value.
func Simple(values []string) (Diagram, error) {
	return newDiagram(KindSimple, values, func(v string) string {
		_, size := utf8.DecodeRuneInString(v)
		return v[:size]
	})
}

// Complex creates a Diagram holding each value unchanged.
func Complex(values []string) (Diagram, error) {
	return newDiagram(KindComplex, values, func(v string) string {
		return v
	})
}

func newDiagram(kind Kind, values []string, cell func(string) string) (Diagram, error) {
	d := Diagram{kind: kind}
	if len(values) > Cells {
		return d, fmt.Errorf("%w: got %d, a %dx%d diagram holds %d", ErrTooManyCells, len(values), Rows, Cols, Cells)
	}
	for i, v := range values {
		d.cells[i] = cell(v)
	}
	if d.Filled() == 0 {
		return d, ErrEmptyDiagram
	}
	return d, nil
}

func (d Diagram) Kind() Kind {
	return d.kind
}

// Cell returns the value at the given position, which is empty for an empty cell.
func (d Diagram) Cell(row, col int) (string, error) {
	if row < 0 || row >= Rows || col < 0 || col >= Cols {
		return "", fmt.Errorf("%w: (%d, %d)", ErrOutOfBounds, row, col)
	}
	return d.cells[row*Cols+col], nil
}

// Filled returns the number of cells with a value.
func (d Diagram) Filled() int {
	var n int
	for _, c := range d.cells {
		if len(c) > 0 {
			n++
		}
	}
	return n
}

type canonicalCell struct {
	_     struct{} `cbor:",toarray"`
	Index uint8
	Value []byte
}

type canonicalDiagram struct {
	_     struct{} `cbor:",toarray"`
	Kind  string
	Rows  uint8
	Cols  uint8
	Cells []canonicalCell
}

// MarshalBinary returns the canonical encoding of the diagram.
func (d Diagram) MarshalBinary() ([]byte, error) {
	if d.Filled() == 0 {
		return nil, ErrEmptyDiagram
	}
	c := canonicalDiagram{
		Kind: d.kind.String(),
		Rows: Rows,
		Cols: Cols,
	}
	for i, v := range d.cells {
		if len(v) == 0 {
			continue
		}
		c.Cells = append(c.Cells, canonicalCell{Index: uint8(i), Value: []byte(v)})
	}
	return encMode.Marshal(c)
}
