// Command chartplot renders a chart from a CSV or XLSX file.
//
//	chartplot --in data.csv --mark point --x weight --y height --color species --out chart.svg
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	charton "github.com/wangjiawen2013/charton-sub001"
	"github.com/wangjiawen2013/charton-sub001/data"
	"github.com/wangjiawen2013/charton-sub001/mark"
)

type options struct {
	in    string
	sheet string
	kind  string
	x, y  string
	color string
	title string
	out   string

	width, height float64
	swap          bool
	logX, logY    bool
}

func main() {
	var opt options

	cmd := &cobra.Command{
		Use:           "chartplot",
		Short:         "Render a chart from tabular data",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(&opt)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opt.in, "in", "", "input file (.csv or .xlsx)")
	f.StringVar(&opt.sheet, "sheet", "", "workbook sheet, defaults to the first")
	f.StringVar(&opt.kind, "mark", "point", "mark kind: point, line, bar, area, box, arc")
	f.StringVar(&opt.x, "x", "", "x column")
	f.StringVar(&opt.y, "y", "", "y column")
	f.StringVar(&opt.color, "color", "", "color column")
	f.StringVar(&opt.title, "title", "", "chart title")
	f.StringVar(&opt.out, "out", "chart.svg", "output file (.svg or .png)")
	f.Float64Var(&opt.width, "width", 500, "canvas width in points")
	f.Float64Var(&opt.height, "height", 400, "canvas height in points")
	f.BoolVar(&opt.swap, "swap", false, "swap the x and y orientation")
	f.BoolVar(&opt.logX, "log-x", false, "logarithmic x scale")
	f.BoolVar(&opt.logY, "log-y", false, "logarithmic y scale")
	cmd.MarkFlagRequired("in")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "chartplot:", err)
		os.Exit(1)
	}
}

func run(opt *options) error {
	tab, err := load(opt.in, opt.sheet)
	if err != nil {
		return err
	}
	layer, err := buildLayer(opt, tab)
	if err != nil {
		return err
	}

	chart := charton.New().
		Title(opt.title).
		Size(vg.Length(opt.width), vg.Length(opt.height)).
		AddLayer(layer)
	if opt.swap {
		chart.SwapAxes()
	}
	return chart.Save(opt.out)
}

func load(path, sheet string) (data.Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return data.ReadCSV(path)
	case ".xlsx":
		return data.ReadXLSX(path, sheet)
	default:
		return nil, fmt.Errorf("unsupported input format %q", filepath.Ext(path))
	}
}

func buildLayer(opt *options, tab data.Table) (charton.Layer, error) {
	switch opt.kind {
	case "point":
		m := mark.NewPoint(tab, opt.x, opt.y)
		m.Color = opt.color
		m.LogX, m.LogY = opt.logX, opt.logY
		return m, nil
	case "line":
		m := mark.NewLine(tab, opt.x, opt.y)
		m.Color = opt.color
		m.LogX, m.LogY = opt.logX, opt.logY
		return m, nil
	case "bar":
		m := mark.NewBar(tab, opt.x, opt.y)
		m.Color = opt.color
		m.LogY = opt.logY
		return m, nil
	case "area":
		m := mark.NewArea(tab, opt.x, opt.y)
		m.Color = opt.color
		return m, nil
	case "box":
		return mark.NewBox(tab, opt.x, opt.y), nil
	case "arc":
		return mark.NewArc(tab, opt.y, opt.x), nil
	default:
		return nil, fmt.Errorf("unknown mark kind %q", opt.kind)
	}
}
