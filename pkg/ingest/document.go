package ingest

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/gucio321/desmosify/pkg/path"
)

// PathData returns the "d" attribute of every <path> element in document order.
func PathData(data []byte) ([]string, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))

	var result []string

	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("cant read svg document: %w", err)
		}

		element, ok := token.(xml.StartElement)
		if !ok || element.Name.Local != "path" {
			continue
		}

		for _, attr := range element.Attr {
			if attr.Name.Local == "d" && attr.Name.Space == "" {
				result = append(result, attr.Value)
			}
		}
	}

	if len(result) == 0 {
		return nil, ErrNoPaths
	}

	return result, nil
}

// FromDocument extracts all paths with PathData and parses them with ParsePathData,
// concatenating the commands in document order. Transforms are not applied.
func FromDocument(data []byte) ([]path.Command, error) {
	paths, err := PathData(data)
	if err != nil {
		return nil, err
	}

	var result []path.Command

	for i, d := range paths {
		cmds, err := ParsePathData(d)
		if err != nil {
			return nil, fmt.Errorf("cant parse path %d: %w", i, err)
		}

		result = append(result, cmds...)
	}

	return result, nil
}
