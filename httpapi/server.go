// Package httpapi serves the conversions as a JSON API.
package httpapi

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vsariola/timecalc"
)

type (
	// Server answers conversion requests. Requests may override any field of
	// the default context with the bpm, ppqn, samplehz and timesig query
	// parameters.
	Server struct {
		ctx timecalc.Context
	}

	Conversion struct {
		Measure timecalc.Measure `json:"measure"`
		Bars    float64          `json:"bars"`
		Beats   float64          `json:"beats"`
		Ticks   timecalc.Ticks   `json:"ticks"`
		Ms      timecalc.Ms      `json:"ms"`
		Samples timecalc.Samples `json:"samples"`
	}

	BatchRequest struct {
		Context  *timecalc.Context  `json:"context"`
		Measures []timecalc.Measure `json:"measures" binding:"required"`
	}

	BatchResponse struct {
		Context     timecalc.Context `json:"context"`
		Conversions []Conversion     `json:"conversions"`
	}

	DivisionInfo struct {
		Division timecalc.Division `json:"division"`
		Step     int               `json:"step"`
		Beats    float64           `json:"beats"`
		Ticks    timecalc.Ticks    `json:"ticks"`
	}
)

func NewServer(ctx timecalc.Context) *Server {
	return &Server{ctx: ctx}
}

// Router returns the routes of the server:
//
//	GET  /api/context                          the default context
//	GET  /api/convert?num=3&div=Quaver&divtype=TwoThirds
//	POST /api/convert                          {"context": {...}, "measures": [[3, "Quaver", "Whole"]]}
//	GET  /api/divisions                        the division ladder
//	GET  /api/zoom?div=Beat&steps=2            zoom in; negative steps zoom out
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.GET("/api/context", s.getContext)
	r.GET("/api/convert", s.getConvert)
	r.POST("/api/convert", s.postConvert)
	r.GET("/api/divisions", s.getDivisions)
	r.GET("/api/zoom", s.getZoom)
	return r
}

// Convert returns the measure on all the duration axes. It fails if any of
// them is not finite or the tick and sample counts overflow, which valid but
// extreme contexts (e.g. a subnormal BPM) can cause.
func Convert(ctx timecalc.Context, m timecalc.Measure) (Conversion, error) {
	ret := Conversion{
		Measure: m,
		Bars:    m.Bars(ctx.TimeSig),
		Beats:   m.Beats(ctx.TimeSig),
		Ticks:   ctx.Ticks(m),
		Ms:      ctx.Ms(m),
		Samples: ctx.Samples(m),
	}
	for _, v := range []float64{ret.Bars, ret.Beats, ret.Ms.Value()} {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return Conversion{}, fmt.Errorf("%v is out of range under %+v", m, ctx)
		}
	}
	ticks := ret.Beats * float64(ctx.PPQN)
	samples := ret.Ms.Value() * ctx.SampleHz / timecalc.SecondInMs
	if math.Abs(ticks) >= math.MaxInt64 || math.Abs(samples) >= math.MaxInt64 {
		return Conversion{}, fmt.Errorf("%v overflows the tick or sample count under %+v", m, ctx)
	}
	return ret, nil
}

func (s *Server) getContext(c *gin.Context) {
	c.JSON(http.StatusOK, s.ctx)
}

func (s *Server) getConvert(c *gin.Context) {
	ctx, err := s.contextFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	m, err := measureFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	conv, err := Convert(ctx, m)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, conv)
}

func (s *Server) postConvert(c *gin.Context) {
	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid request: %v", err)})
		return
	}
	ctx := s.ctx
	if req.Context != nil {
		ctx = *req.Context
	}
	if err := ctx.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	resp := BatchResponse{Context: ctx, Conversions: make([]Conversion, 0, len(req.Measures))}
	for _, m := range req.Measures {
		conv, err := Convert(ctx, m)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		resp.Conversions = append(resp.Conversions, conv)
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) getDivisions(c *gin.Context) {
	ctx, err := s.contextFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var ret []DivisionInfo
	for _, d := range timecalc.Divisions() {
		ret = append(ret, DivisionInfo{
			Division: d,
			Step:     d.Step(),
			Beats:    d.Beats(ctx.TimeSig),
			Ticks:    ctx.Ticks(timecalc.Measure{Num: 1, Div: d, DivType: timecalc.Whole}),
		})
	}
	c.JSON(http.StatusOK, gin.H{"divisions": ret})
}

func (s *Server) getZoom(c *gin.Context) {
	div, err := timecalc.ParseDivision(c.Query("div"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	steps, err := strconv.Atoi(c.DefaultQuery("steps", "1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid steps: %v", err)})
		return
	}
	zoomed, ok := div.ZoomIn(steps)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("no division %d steps from %v", steps, div)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"division": zoomed})
}

func (s *Server) contextFromQuery(c *gin.Context) (timecalc.Context, error) {
	ctx := s.ctx
	if v, ok := c.GetQuery("bpm"); ok {
		bpm, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return ctx, fmt.Errorf("invalid bpm: %v", err)
		}
		ctx.BPM = bpm
	}
	if v, ok := c.GetQuery("ppqn"); ok {
		ppqn, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return ctx, fmt.Errorf("invalid ppqn: %v", err)
		}
		ctx.PPQN = timecalc.Ppqn(ppqn)
	}
	if v, ok := c.GetQuery("samplehz"); ok {
		hz, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return ctx, fmt.Errorf("invalid samplehz: %v", err)
		}
		ctx.SampleHz = hz
	}
	if v, ok := c.GetQuery("timesig"); ok {
		ts, err := timecalc.ParseTimeSig(v)
		if err != nil {
			return ctx, err
		}
		ctx.TimeSig = ts
	}
	return ctx, ctx.Validate()
}

func measureFromQuery(c *gin.Context) (timecalc.Measure, error) {
	var m timecalc.Measure
	num, err := strconv.ParseInt(c.DefaultQuery("num", "1"), 10, 64)
	if err != nil {
		return m, fmt.Errorf("invalid num: %v", err)
	}
	m.Num = num
	if m.Div, err = timecalc.ParseDivision(c.DefaultQuery("div", "Bar")); err != nil {
		return m, err
	}
	if m.DivType, err = timecalc.ParseDivType(c.DefaultQuery("divtype", "Whole")); err != nil {
		return m, err
	}
	return m, nil
}
