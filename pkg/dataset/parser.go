package dataset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/goplot3d/pkg/geometry"
)

// Parse reads a plain-text point file and returns its samples.
//
// The format is one point per line: three coordinates separated by
// whitespace or commas, optionally followed by a label. Blank lines
// and lines starting with '#' are skipped.
func Parse(filename string) ([]Sample, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return parse(file)
}

func parse(reader io.Reader) ([]Sample, error) {
	scanner := bufio.NewScanner(reader)
	samples := make([]Sample, 0)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(strings.ReplaceAll(line, ",", " "))
		if len(fields) < 3 {
			return nil, fmt.Errorf("line %d: expected 3 coordinates, got %d fields", lineNo, len(fields))
		}

		var coords [3]float64
		for i := 0; i < 3; i++ {
			v, err := strconv.ParseFloat(fields[i], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid coordinate %q", lineNo, fields[i])
			}
			coords[i] = v
		}

		samples = append(samples, Sample{
			Point: geometry.NewPoint(coords[0], coords[1], coords[2]),
			Label: strings.Join(fields[3:], " "),
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	return samples, nil
}
