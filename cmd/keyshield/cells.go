package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/saylorsolutions/keyshield/pkg/diagram"
)

// readDiagram reads diagram cells from a file, or stdin if path is "-".
// Each non-comment line is a row of comma separated cells, and blank entries are empty cells.
func readDiagram(path string) ([]string, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer func() {
			_ = f.Close()
		}()
		r = f
	}
	return parseDiagram(r)
}

func parseDiagram(r io.Reader) ([]string, error) {
	cells := make([]string, 0, diagram.Cells)
	scanner := bufio.NewScanner(r)
	row := 0
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		if row >= diagram.Rows {
			if strings.TrimSpace(line) == "" {
				continue
			}
			return nil, fmt.Errorf("%w: more than %d rows", diagram.ErrTooManyCells, diagram.Rows)
		}
		values := strings.Split(line, ",")
		if len(values) > diagram.Cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, at most %d are allowed", diagram.ErrTooManyCells, row+1, len(values), diagram.Cols)
		}
		for col := 0; col < diagram.Cols; col++ {
			var v string
			if col < len(values) {
				v = strings.TrimSpace(values[col])
			}
			cells = append(cells, v)
		}
		row++
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return cells, nil
}
