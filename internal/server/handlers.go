package server

import (
	"net/http"

	"github.com/matzehuels/splitpane/pkg/buildinfo"
	"github.com/matzehuels/splitpane/pkg/errors"
	"github.com/matzehuels/splitpane/pkg/layout"
)

type clampRequest struct {
	Constraints layout.Constraints `json:"constraints"`
	Size        float64            `json:"size"`
}

type sizeResponse struct {
	Size float64 `json:"size"`
}

type constraintsRequest struct {
	Constraints []layout.Constraints `json:"constraints"`
}

type layoutRequest struct {
	Layout      layout.Layout        `json:"layout"`
	Constraints []layout.Constraints `json:"constraints"`
}

type layoutResponse struct {
	Layout layout.Layout `json:"layout"`
}

// adjustRequest carries the pivot as a [before, after] pair.
type adjustRequest struct {
	Delta       float64              `json:"delta"`
	Layout      layout.Layout        `json:"layout"`
	Constraints []layout.Constraints `json:"constraints"`
	Pivot       [2]int               `json:"pivot"`
	Trigger     layout.Trigger       `json:"trigger"`
}

type adjustResponse struct {
	Layout  layout.Layout `json:"layout"`
	Changed bool          `json:"changed"`
}

type rangesResponse struct {
	Ranges []layout.Range `json:"ranges"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, buildinfo.Get())
}

func (s *Server) handleClamp(w http.ResponseWriter, r *http.Request) {
	var req clampRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := req.Constraints.Validate(); err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := errors.ValidateFinite("size", req.Size); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, sizeResponse{Size: layout.ClampSize(req.Constraints, req.Size)})
}

func (s *Server) handleDefault(w http.ResponseWriter, r *http.Request) {
	var req constraintsRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := validatePanes(req.Constraints); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, layoutResponse{Layout: layout.DefaultLayout(req.Constraints)})
}

func (s *Server) handleNormalize(w http.ResponseWriter, r *http.Request) {
	var req layoutRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := validatePanes(req.Constraints); err != nil {
		s.writeError(w, r, err)
		return
	}
	next, err := layout.NormalizeLayout(req.Layout, req.Constraints)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, layoutResponse{Layout: next})
}

func (s *Server) handleAdjust(w http.ResponseWriter, r *http.Request) {
	var req adjustRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := validatePanes(req.Constraints); err != nil {
		s.writeError(w, r, err)
		return
	}
	next, err := layout.AdjustLayoutByDelta(layout.Request{
		Delta:       req.Delta,
		Layout:      req.Layout,
		Constraints: req.Constraints,
		Pivot:       layout.Pivot{Before: req.Pivot[0], After: req.Pivot[1]},
		Trigger:     req.Trigger,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.writeJSON(w, http.StatusOK, adjustResponse{
		Layout:  next,
		Changed: !layout.ArraysEqual(next, req.Layout),
	})
}

func (s *Server) handleRanges(w http.ResponseWriter, r *http.Request) {
	var req layoutRequest
	if !s.decode(w, r, &req) {
		return
	}
	if err := validatePanes(req.Constraints); err != nil {
		s.writeError(w, r, err)
		return
	}
	ranges, err := layout.DividerRanges(req.Layout, req.Constraints)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if ranges == nil {
		ranges = []layout.Range{}
	}
	s.writeJSON(w, http.StatusOK, rangesResponse{Ranges: ranges})
}

func validatePanes(cs []layout.Constraints) error {
	if len(cs) == 0 {
		return errors.New(errors.ErrCodeInvalidConstraints, "at least one pane is required")
	}
	return layout.ValidateConstraints(cs)
}
