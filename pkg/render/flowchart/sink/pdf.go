package sink

import (
	"context"

	"github.com/matzehuels/paraflow/pkg/render"
	"github.com/matzehuels/paraflow/pkg/render/flowchart/layout"
)

// RenderPDF draws the layout as SVG and converts it with [render.ToPDF], so
// the PDF is vector output with the same shapes and text as [RenderSVG].
// opts are passed to the SVG renderer.
func RenderPDF(ctx context.Context, l layout.Layout, opts ...SVGOption) ([]byte, error) {
	return render.ToPDF(ctx, RenderSVG(l, opts...))
}
