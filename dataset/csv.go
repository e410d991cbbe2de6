package dataset

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// DecodeCSV reads delimited records: every token but the last is a float64
// feature and the last is a class name. Class names are mapped to labels
// in first-seen order. Empty lines are skipped. The delimiter may be longer
// than one character.
func DecodeCSV(r io.Reader, delimiter string) (*Dataset, error) {
	if delimiter == "" {
		return nil, ErrEmptyDelimiter
	}

	ds := &Dataset{}
	classes := make(map[string]int)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)

	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSuffix(sc.Text(), "\r")
		if text == "" {
			continue
		}

		tokens := strings.Split(text, delimiter)
		name := strings.TrimSpace(tokens[len(tokens)-1])

		features := make([]float64, 0, len(tokens)-1)
		for _, tok := range tokens[:len(tokens)-1] {
			v, err := strconv.ParseFloat(strings.TrimSpace(tok), 64)
			if err != nil {
				return nil, &ErrParse{Line: line, Err: err}
			}
			features = append(features, v)
		}

		label, ok := classes[name]
		if !ok {
			label = len(classes)
			classes[name] = label
			ds.classNames = append(ds.classNames, name)
		}

		ds.records = append(ds.records, Record{Features: features, Label: label})
	}
	if err := sc.Err(); err != nil {
		return nil, &ErrParse{Line: line + 1, Err: err}
	}

	ds.classes = len(classes)
	return ds, nil
}
