package ingest

import (
	"fmt"
	"os"

	inkscape "github.com/galihrivanto/go-inkscape"
	"github.com/kpango/glg"
)

// InkscapeSuffix is appended to the input file name to name the pre-processed copy.
const InkscapeSuffix = ".desmosify.svg"

// Inkscape converts every object of the SVG at input into a simplified path with a running
// inkscape and returns the name of the converted copy.
func Inkscape(input string, verbose bool) (string, error) {
	proxy := inkscape.NewProxy(inkscape.Verbose(verbose))
	if err := proxy.Run(); err != nil {
		return "", fmt.Errorf("cannot run inkscape: %w", err)
	}

	defer proxy.Close()

	glg.Infof("running inkscape pre-processing")

	converted := input + InkscapeSuffix
	output, err := proxy.RawCommands(
		fmt.Sprintf("file-open:%s", input),
		fmt.Sprintf("export-filename:%s", converted),
		"export-type:svg",
		"select-all",
		"object-to-path",
		"path-simplify",
		"export-do",
	)
	if err != nil {
		return "", fmt.Errorf("inkscape pre-processing failed: %w", err)
	}

	glg.Debugf("inkscape: %s", output)

	if _, err := os.Stat(converted); err != nil {
		return "", fmt.Errorf("inkscape did not export %s: %w", converted, err)
	}

	glg.Info("inkscape done.")

	return converted, nil
}
