package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kpango/glg"

	"github.com/gucio321/desmosify/pkg/ingest"
	"github.com/gucio321/desmosify/pkg/path"
	"github.com/gucio321/desmosify/pkg/viewer"
)

// justview previews the paths of an SVG document without converting them.
func main() {
	inputFile := flag.String("i", "", "Input SVG file")
	pathData := flag.String("d", "", "Path data string (instead of -i)")
	flag.Parse()

	var (
		cmds []path.Command
		err  error
	)

	switch {
	case *pathData != "":
		cmds, err = ingest.ParsePathData(*pathData)
	case *inputFile != "":
		var data []byte
		if data, err = os.ReadFile(*inputFile); err != nil {
			glg.Fatal(err)
		}

		cmds, err = ingest.FromDocument(data)
	default:
		flag.Usage()
		glg.Fatal("Input file or path data is required")
	}

	if err != nil {
		glg.Fatal(err)
	}

	segments, diagnostics := path.NewNormalizer().Normalize(cmds)
	glg.Infof("%d segments, %d commands skipped", len(segments), len(diagnostics))

	ebiten.SetWindowSize(800, 600)
	if err := ebiten.RunGame(viewer.NewViewer(segments)); err != nil {
		glg.Fatal(err)
	}
}
