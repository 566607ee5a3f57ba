// Package report prints tables of measures converted to all the duration
// axes.
package report

import (
	_ "embed"
	"fmt"
	"io"
	"text/template"

	"github.com/Masterminds/sprig"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/vsariola/timecalc"
)

//go:embed table.tmpl
var tableTemplate string

type (
	row struct {
		Num     int64
		Div     string
		DivType string
		Bars    float64
		Beats   float64
		Ticks   int64
		Ms      float64
		Samples int64
	}

	table struct {
		TimeSig  string
		BPM      float64
		PPQN     uint32
		SampleHz int64
		Rows     []row
	}
)

// Table writes one row per measure: its length in bars, beats, ticks,
// milliseconds and samples under ctx. Counts are grouped in thousands.
func Table(w io.Writer, ctx timecalc.Context, measures []timecalc.Measure) error {
	tmpl, err := newTemplate()
	if err != nil {
		return err
	}
	data := table{
		TimeSig:  ctx.TimeSig.String(),
		BPM:      ctx.BPM,
		PPQN:     ctx.PPQN,
		SampleHz: int64(ctx.SampleHz),
		Rows:     make([]row, 0, len(measures)),
	}
	for _, m := range measures {
		data.Rows = append(data.Rows, row{
			Num:     m.Num,
			Div:     m.Div.String(),
			DivType: m.DivType.String(),
			Bars:    m.Bars(ctx.TimeSig),
			Beats:   m.Beats(ctx.TimeSig),
			Ticks:   ctx.Ticks(m).Value(),
			Ms:      ctx.Ms(m).Value(),
			Samples: ctx.Samples(m).Value(),
		})
	}
	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("could not execute report template: %v", err)
	}
	return nil
}

func newTemplate() (*template.Template, error) {
	p := message.NewPrinter(language.English)
	funcs := sprig.TxtFuncMap()
	funcs["num"] = func(v interface{}) string { return p.Sprint(v) }
	tmpl, err := template.New("table").Funcs(funcs).Parse(tableTemplate)
	if err != nil {
		return nil, fmt.Errorf("could not parse report template: %v", err)
	}
	return tmpl, nil
}
