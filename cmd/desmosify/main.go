package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kpango/glg"
	"gopkg.in/yaml.v3"

	pkg "github.com/gucio321/desmosify/pkg"
	"github.com/gucio321/desmosify/pkg/desmos"
	"github.com/gucio321/desmosify/pkg/ingest"
	"github.com/gucio321/desmosify/pkg/profile"
	"github.com/gucio321/desmosify/pkg/viewer"
)

const stdout = "-"

type Flags struct {
	InputFilePath  string  `json:"input" yaml:"input"`
	OutputFilePath string  `json:"output" yaml:"output"`
	PathData       string  `json:"path_data,omitempty" yaml:"path_data,omitempty"`
	Profile        string  `json:"profile" yaml:"profile"`
	Scale          float64 `json:"scale" yaml:"scale"`
	FlipY          bool    `json:"flip_y" yaml:"flip_y"`
	Tolerance      float64 `json:"tolerance" yaml:"tolerance"`
	Epsilon        float64 `json:"epsilon" yaml:"epsilon"`
	Precision      int     `json:"precision" yaml:"precision"`
	Compact        bool    `json:"compact" yaml:"compact"`
	Format         string  `json:"format" yaml:"format"`
	Workers        int     `json:"workers" yaml:"workers"`
	Strict         bool    `json:"strict" yaml:"strict"`
	Native         bool    `json:"native" yaml:"native"`
	Inkscape       bool    `json:"inkscape" yaml:"inkscape"`
	View           bool    `json:"view" yaml:"view"`
	Quiet          bool    `json:"quiet" yaml:"quiet"`
	preset         string
	makePreset     bool
	yamlPreset     bool
	showEquations  bool
}

func main() {
	var f Flags
	flag.StringVar(&f.InputFilePath, "i", "", "input SVG file path")
	flag.StringVar(&f.OutputFilePath, "o", "equations.txt", "output file path (- for stdout)")
	flag.StringVar(&f.PathData, "d", "", "convert this path data string instead of a file")
	flag.StringVar(&f.Profile, "profile", profile.DefaultName,
		fmt.Sprintf("conversion profile (%s); explicit flags take precedence", strings.Join(profile.Names(), ", ")))
	flag.Float64Var(&f.Scale, "s", 1, "scale factor")
	flag.BoolVar(&f.FlipY, "flip", false, "flip the y axis")
	flag.Float64Var(&f.Tolerance, "t", 0.3, "cubic flattening tolerance")
	flag.Float64Var(&f.Epsilon, "eps", 1e-9, "degenerate quadratic threshold")
	flag.IntVar(&f.Precision, "p", -1, "decimal places in the output (-1 for shortest exact)")
	flag.BoolVar(&f.Compact, "compact", false, "omit zero terms and unit coefficients")
	flag.StringVar(&f.Format, "format", desmos.OutputLaTeX, "output format (latex or json)")
	flag.IntVar(&f.Workers, "j", 1, "number of workers")
	flag.BoolVar(&f.Strict, "strict", false, "fail on the first invalid segment instead of skipping it")
	flag.BoolVar(&f.Native, "native", false, "read path data directly (keeps quadratic, smooth and relative commands; ignores transforms)")
	flag.BoolVar(&f.Inkscape, "inkscape", false, "pre-process the input with inkscape (objects to paths)")
	flag.BoolVar(&f.View, "v", false, "view")
	flag.BoolVar(&f.Quiet, "q", false, "log nothing but errors")
	flag.StringVar(&f.preset, "preset", "", "JSON or YAML preset file path. This will override all other flags")
	flag.BoolVar(&f.makePreset, "make-preset", false, "auto-generate preset")
	flag.BoolVar(&f.yamlPreset, "yaml", false, "generate the preset as YAML (use with -make-preset)")
	flag.BoolVar(&f.showEquations, "show", false, "print resulting equations even if -o is set")
	flag.Parse()

	if err := applyProfile(&f); err != nil {
		glg.Fatalf("Unable to apply profile: %v", err)
	}

	if f.makePreset {
		out, err := marshalPreset(&f)
		if err != nil {
			glg.Fatalf("Unable to generate preset: %v", err)
		}

		fmt.Println(string(out))
		glg.Infof("Presets generated")

		return
	}

	if f.preset != "" {
		if err := loadPreset(f.preset, &f); err != nil {
			glg.Fatalf("Unable to load preset from %s: %v (use valid file or empty to not use presets)", f.preset, err)
		}
	}

	if f.Quiet {
		glg.Get().
			SetLevelMode(glg.INFO, glg.NONE).
			SetLevelMode(glg.WARN, glg.NONE)
	}

	start := time.Now()

	converter, err := parseInput(&f)
	if err != nil {
		glg.Fatalf("Cannot parse input: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	result, err := converter.
		Scale(f.Scale).
		FlipY(f.FlipY).
		Tolerance(f.Tolerance).
		Epsilon(f.Epsilon).
		Workers(f.Workers).
		Strict(f.Strict).
		Convert(ctx)
	if err != nil {
		glg.Fatalf("Cannot convert paths: %v", err)
	}

	builder := desmos.NewBuilder().
		SetPrecision(f.Precision).
		Compact(f.Compact).
		Push(result.Equations...)

	if f.OutputFilePath == stdout || f.showEquations {
		if err := builder.Encode(os.Stdout, f.Format); err != nil {
			glg.Fatalf("Cannot print equations: %v", err)
		}
	}

	if f.OutputFilePath != stdout && f.OutputFilePath != "" {
		if err := writeOutput(f.OutputFilePath, f.Format, builder); err != nil {
			glg.Fatalf("Cannot write file %s: %v", f.OutputFilePath, err)
		}

		glg.Infof("Equations written to %s", f.OutputFilePath)
	}

	glg.Infof("Generated %d equations from %d commands (%d skipped).",
		builder.Len(), len(converter.Commands()), len(result.Diagnostics))
	glg.Infof("Took %v.", time.Since(start))

	if f.View {
		ebiten.SetWindowSize(800, 600)
		ebiten.SetWindowTitle("desmosify")
		if err := ebiten.RunGame(viewer.NewViewer(result.Segments)); err != nil {
			glg.Fatalf("Cannot run viewer: %v", err)
		}
	}
}

// applyProfile copies profile values into every setting not given explicitly on the command line.
func applyProfile(f *Flags) error {
	p, err := profile.Get(f.Profile)
	if err != nil {
		return err
	}

	set := make(map[string]bool)
	flag.Visit(func(fl *flag.Flag) {
		set[fl.Name] = true
	})

	if !set["s"] {
		f.Scale = p.Scale
	}

	if !set["flip"] {
		f.FlipY = p.FlipY
	}

	if !set["t"] {
		f.Tolerance = p.Tolerance
	}

	if !set["p"] {
		f.Precision = p.Precision
	}

	return nil
}

func isYAML(filePath string) bool {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return true
	}

	return false
}

func marshalPreset(f *Flags) ([]byte, error) {
	if f.yamlPreset {
		return yaml.Marshal(f)
	}

	return json.MarshalIndent(f, "", "\t")
}

func loadPreset(filePath string, f *Flags) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}

	if isYAML(filePath) {
		return yaml.Unmarshal(data, f)
	}

	return json.Unmarshal(data, f)
}

func parseInput(f *Flags) (*pkg.Converter, error) {
	if f.PathData != "" {
		return pkg.ParsePathData(f.PathData)
	}

	if _, err := os.Stat(f.InputFilePath); err != nil {
		flag.Usage()
		os.Exit(1)
	}

	inputFile := f.InputFilePath
	if f.Inkscape {
		converted, err := ingest.Inkscape(inputFile, !f.Quiet)
		if err != nil {
			return nil, err
		}

		inputFile = converted
	}

	data, err := os.ReadFile(inputFile)
	if err != nil {
		return nil, fmt.Errorf("cannot read file %s: %w", inputFile, err)
	}

	if f.Native {
		return pkg.ParseDocument(data)
	}

	return pkg.Parse(data)
}

func writeOutput(filePath, format string, b *desmos.Builder) error {
	out, err := os.Create(filePath)
	if err != nil {
		return err
	}

	if err := b.Encode(out, format); err != nil {
		out.Close()
		return err
	}

	return out.Close()
}
