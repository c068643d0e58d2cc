package ingest

import (
	"fmt"

	"github.com/kpango/glg"
	"github.com/rustyoz/svg"

	"github.com/gucio321/desmosify/pkg/path"
)

// FromSVG reads every path of an SVG document through rustyoz/svg.
// The resulting commands are absolute and already carry the document's transforms.
// Only moveto, lineto, cubic curveto and closepath survive this route; use FromDocument
// for quadratic and smooth curves.
func FromSVG(data []byte) ([]path.Command, error) {
	// 2nd arg is the document name and 3rd its scale; scaling happens later in the Converter
	doc, err := svg.ParseSvg(string(data), "", 1)
	if err != nil {
		return nil, fmt.Errorf("cant parse svg: %w", err)
	}

	instructions, errs := doc.ParseDrawingInstructions()
	if instructions == nil || errs == nil {
		return nil, ErrNoInstructions
	}

	var result []path.Command

	for {
		select {
		case ins, ok := <-instructions:
			if !ok || ins == nil {
				return result, nil
			}

			if cmd, ok := fromInstruction(ins); ok {
				result = append(result, cmd)
			}
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}

			if err != nil {
				return nil, fmt.Errorf("cant read drawing instructions: %w", err)
			}
		}
	}
}

func fromInstruction(ins *svg.DrawingInstruction) (path.Command, bool) {
	switch ins.Kind {
	case svg.MoveInstruction:
		return path.Abs(path.Move, ins.M[0], ins.M[1]), true
	case svg.LineInstruction:
		return path.Abs(path.Line, ins.M[0], ins.M[1]), true
	case svg.CurveInstruction:
		return path.Abs(path.CubicCurve,
			ins.CurvePoints.C1[0], ins.CurvePoints.C1[1],
			ins.CurvePoints.C2[0], ins.CurvePoints.C2[1],
			ins.CurvePoints.T[0], ins.CurvePoints.T[1],
		), true
	case svg.CloseInstruction:
		return path.Abs(path.Close), true
	case svg.CircleInstruction:
		glg.Warn("Circle not implemented (run with inkscape pre-processing to convert objects to paths)")
	case svg.PaintInstruction:
		// style only
	}

	return path.Command{}, false
}
