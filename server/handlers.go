package server

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"

	"github.com/katalvlaran/pathfinder/maze"
	"github.com/katalvlaran/pathfinder/search"
)

const maxBodyBytes = 1 << 20

// SearchRequest is the body of POST /api/search and POST /api/compare.
type SearchRequest struct {
	Maze          string `json:"maze" validate:"required"`
	Format        string `json:"format" validate:"omitempty,oneof=text yaml"`
	Strategy      string `json:"strategy" validate:"omitempty,oneof=bfs dfs ucs astar a*"`
	MaxExpansions int    `json:"max_expansions" validate:"gte=0"`
}

func (s *SearchRequest) Bind(_ *http.Request) error {
	s.Format = strings.ToLower(strings.TrimSpace(s.Format))
	s.Strategy = strings.ToLower(strings.TrimSpace(s.Strategy))
	return nil
}

// StepResponse is one cell of a returned path.
type StepResponse struct {
	Row    int    `json:"row"`
	Col    int    `json:"col"`
	Action string `json:"action,omitempty"`
}

// SearchResponse describes the outcome of one strategy on one maze.
type SearchResponse struct {
	Name       string         `json:"name,omitempty"`
	Strategy   string         `json:"strategy"`
	Found      bool           `json:"found"`
	Truncated  bool           `json:"truncated,omitempty"`
	Cost       float64        `json:"cost"`
	Moves      int            `json:"moves"`
	Path       []StepResponse `json:"path,omitempty"`
	Explored   int            `json:"explored"`
	Expansions int            `json:"expansions"`
	Generated  int            `json:"generated"`
	StaleSkips int            `json:"stale_skips"`
	Rendered   string         `json:"rendered"`
}

// CompareResponse holds one SearchResponse per strategy.
type CompareResponse struct {
	Name    string            `json:"name,omitempty"`
	Results []*SearchResponse `json:"results"`
}

// StrategiesResponse lists the available strategies.
type StrategiesResponse struct {
	Strategies []string `json:"strategies"`
	Default    string   `json:"default"`
}

type searchHandler struct {
	opts     Options
	metrics  *Metrics
	validate *validator.Validate
	trans    ut.Translator
}

func newSearchHandler(opts Options, m *Metrics) *searchHandler {
	validate := validator.New()
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")
	_ = enTranslations.RegisterDefaultTranslations(validate, trans)
	return &searchHandler{opts: opts, metrics: m, validate: validate, trans: trans}
}

func (h *searchHandler) routes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/search", h.search)
		r.Post("/compare", h.compare)
		r.Get("/strategies", h.strategies)
	})
}

// decode binds and validates the request body and parses its maze. It
// renders the error response itself and returns nil on failure.
func (h *searchHandler) decode(w http.ResponseWriter, r *http.Request) (*SearchRequest, *maze.Maze) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	data := &SearchRequest{}
	if err := render.Bind(r, data); err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return nil, nil
	}
	if err := h.validate.Struct(*data); err != nil {
		render.Render(w, r, ErrValidation(err, translateError(err, h.trans)))
		return nil, nil
	}

	var (
		m   *maze.Maze
		err error
	)
	if data.Format == "yaml" {
		m, err = maze.ParseYAML([]byte(data.Maze))
	} else {
		m, err = maze.ParseString(data.Maze)
	}
	if err != nil {
		render.Render(w, r, ErrInvalidRequest(err))
		return nil, nil
	}
	return data, m
}

func (h *searchHandler) search(w http.ResponseWriter, r *http.Request) {
	data, m := h.decode(w, r)
	if m == nil {
		return
	}
	strategy := h.opts.DefaultStrategy
	if data.Strategy != "" {
		s, err := search.ParseStrategy(data.Strategy)
		if err != nil {
			render.Render(w, r, ErrInvalidRequest(err))
			return
		}
		strategy = s
	}

	resp, err := h.run(r, m, strategy, data.MaxExpansions)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, resp)
}

func (h *searchHandler) compare(w http.ResponseWriter, r *http.Request) {
	data, m := h.decode(w, r)
	if m == nil {
		return
	}
	out := &CompareResponse{Name: m.Name}
	for _, s := range search.Strategies() {
		resp, err := h.run(r, m, s, data.MaxExpansions)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		out.Results = append(out.Results, resp)
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, out)
}

func (h *searchHandler) strategies(w http.ResponseWriter, r *http.Request) {
	out := &StrategiesResponse{Default: h.opts.DefaultStrategy.String()}
	for _, s := range search.Strategies() {
		out.Strategies = append(out.Strategies, s.String())
	}
	render.JSON(w, r, out)
}

// run solves m with strategy under the request context.
func (h *searchHandler) run(r *http.Request, m *maze.Maze, strategy search.Strategy, maxExp int) (*SearchResponse, error) {
	res, err := search.Search(m.Grid, strategy,
		search.WithContext(r.Context()),
		search.WithMaxExpansions(h.expansionCap(maxExp)),
		search.WithLogger(h.opts.Logger),
	)
	if err != nil {
		return nil, err
	}
	st := res.Stats()
	h.metrics.observeSearch(strategy.String(), res.Found(), st.Expansions)

	resp := &SearchResponse{
		Name:       m.Name,
		Strategy:   strategy.String(),
		Found:      res.Found(),
		Explored:   len(res.Explored()),
		Expansions: st.Expansions,
		Generated:  st.Generated,
		StaleSkips: st.StaleSkips,
		Rendered:   maze.Render(m, res),
	}
	switch v := res.(type) {
	case *search.Solution:
		resp.Cost = v.Cost()
		resp.Moves = v.Len()
		for _, step := range v.Path() {
			resp.Path = append(resp.Path, StepResponse{Row: step.State.Row, Col: step.State.Col, Action: string(step.Action)})
		}
	case *search.NoSolution:
		resp.Truncated = v.Truncated()
	}
	return resp, nil
}

// expansionCap combines the requested cap with the server-wide one; the
// smaller positive value wins.
func (h *searchHandler) expansionCap(requested int) int {
	limit := h.opts.MaxExpansions
	if requested > 0 && (limit == 0 || requested < limit) {
		return requested
	}
	return limit
}

func (h *searchHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, search.ErrMalformedGrid):
		render.Render(w, r, ErrUnprocessable(err))
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		render.Render(w, r, ErrUnavailable(err))
	default:
		h.opts.Logger.Error("search failed", "path", r.URL.Path, "error", err)
		render.Render(w, r, ErrInternal(err))
	}
}
