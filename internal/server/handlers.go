package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/matzehuels/paraflow/pkg/buildinfo"
	"github.com/matzehuels/paraflow/pkg/errors"
	"github.com/matzehuels/paraflow/pkg/flow"
	"github.com/matzehuels/paraflow/pkg/pipeline"
	"github.com/matzehuels/paraflow/pkg/render"
)

type healthResponse struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

type textRequest struct {
	Text string `json:"text"`
}

type stepsResponse struct {
	Steps []flow.Step `json:"steps"`
}

type flowchartRequest struct {
	Text       string  `json:"text"`
	Format     string  `json:"format,omitempty"`
	VizType    string  `json:"viz_type,omitempty"`
	FontSize   float64 `json:"font_size,omitempty"`
	Scale      float64 `json:"scale,omitempty"`
	Background string  `json:"background,omitempty"`
	Refresh    bool    `json:"refresh,omitempty"`
}

type dataURLResponse struct {
	DataURL string      `json:"data_url"`
	Width   float64     `json:"width"`
	Height  float64     `json:"height"`
	Steps   []flow.Step `json:"steps"`
}

type describeRequest struct {
	Topic   string `json:"topic"`
	Refresh bool   `json:"refresh,omitempty"`
}

type describeResponse struct {
	Text  string      `json:"text"`
	Steps []flow.Step `json:"steps"`
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Build: buildinfo.Get()})
}

func (s *Server) steps(w http.ResponseWriter, r *http.Request) {
	var req textRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := errors.ValidateText(req.Text); err != nil {
		writeError(w, r, err)
		return
	}
	steps := pipeline.Segment(r.Context(), req.Text)
	if steps == nil {
		steps = []flow.Step{}
	}
	writeJSON(w, http.StatusOK, stepsResponse{Steps: steps})
}

func (s *Server) flowchart(w http.ResponseWriter, r *http.Request) {
	var req flowchartRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if req.Format == "" {
		req.Format = pipeline.FormatPNG
	}
	res, err := s.execute(r, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h := w.Header()
	h.Set("Content-Type", pipeline.ContentTypes[req.Format])
	h.Set("X-Flowchart-Width", strconv.FormatFloat(res.Stats.Width, 'f', -1, 64))
	h.Set("X-Flowchart-Height", strconv.FormatFloat(res.Stats.Height, 'f', -1, 64))
	h.Set("X-Cache", cacheStatus(res.CacheInfo))
	if req.Format == pipeline.FormatPNG {
		h.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", render.DefaultFilename))
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Artifacts[req.Format])
}

func (s *Server) dataURL(w http.ResponseWriter, r *http.Request) {
	var req flowchartRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	req.Format = pipeline.FormatPNG
	res, err := s.execute(r, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	steps := res.Steps
	if steps == nil {
		steps = []flow.Step{}
	}
	writeJSON(w, http.StatusOK, dataURLResponse{
		DataURL: render.DataURL(res.Artifacts[pipeline.FormatPNG]),
		Width:   res.Stats.Width,
		Height:  res.Stats.Height,
		Steps:   steps,
	})
}

func (s *Server) describe(w http.ResponseWriter, r *http.Request) {
	if s.opts.Describer == nil {
		writeError(w, r, errNoDescriber)
		return
	}
	var req describeRequest
	if err := decode(r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	text, err := s.opts.Describer.Describe(r.Context(), req.Topic, req.Refresh)
	if err != nil {
		writeError(w, r, err)
		return
	}
	steps := pipeline.Segment(r.Context(), text)
	if steps == nil {
		steps = []flow.Step{}
	}
	writeJSON(w, http.StatusOK, describeResponse{Text: text, Steps: steps})
}

// execute runs the pipeline for a single requested format, layering the
// request over the server defaults.
func (s *Server) execute(r *http.Request, req flowchartRequest) (*pipeline.Result, error) {
	if err := errors.ValidateText(req.Text); err != nil {
		return nil, err
	}
	if err := errors.ValidateFormat(req.Format, pipeline.ValidFormats); err != nil {
		return nil, err
	}

	opts := s.opts.Defaults
	opts.Text = req.Text
	opts.Formats = []string{req.Format}
	opts.Refresh = req.Refresh
	opts.Logger = s.logger
	if req.VizType != "" {
		opts.VizType = req.VizType
	}
	if req.FontSize != 0 {
		opts.FontSize = req.FontSize
	}
	if req.Scale != 0 {
		opts.Scale = req.Scale
	}
	if req.Background != "" {
		opts.Background = req.Background
	}
	return s.opts.Runner.Execute(r.Context(), opts)
}

func cacheStatus(ci pipeline.CacheInfo) string {
	switch {
	case ci.LayoutHit && ci.RenderHit:
		return "hit"
	case ci.LayoutHit || ci.RenderHit:
		return "partial"
	}
	return "miss"
}
