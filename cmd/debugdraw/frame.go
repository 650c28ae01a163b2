package main

import (
	"fmt"
	"strings"

	"github.com/milk9111/debugdraw/render"
)

// frameText formats segments one per line as "x0 y0 x1 y1 #rrggbb".
func frameText(segments []render.Segment) string {
	var sb strings.Builder
	for _, s := range segments {
		fmt.Fprintf(&sb, "%g %g %g %g #%02x%02x%02x\n", s.X0, s.Y0, s.X1, s.Y1, s.Color.R, s.Color.G, s.Color.B)
	}
	return sb.String()
}
