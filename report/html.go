package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/hupe1980/clusterkit"
)

var palette = []string{
	"#5470c6", "#91cc75", "#fac858", "#ee6666", "#73c0de",
	"#3ba272", "#fc8452", "#9a60b4", "#ea7ccc", "#48b8d0",
}

func writeHTML(w io.Writer, res *clusterkit.Result, o options) error {
	page := components.NewPage()
	page.PageTitle = o.title
	page.AddCharts(
		scatterChart(res, o.title),
		sizeChart(res),
		displacementChart(res),
	)
	return page.Render(w)
}

func scatterChart(res *clusterkit.Result, title string) *charts.Scatter {
	es := charts.NewScatter()
	es.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: fmt.Sprintf("%s after %d iterations", res.State, res.Iterations)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "5%"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: "x"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: "y"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Formatter: "{a}: {c}"}),
		charts.WithToolboxOpts(opts.Toolbox{
			Show: opts.Bool(true),
			Feature: &opts.ToolBoxFeature{
				SaveAsImage: &opts.ToolBoxFeatureSaveAsImage{
					Show:  opts.Bool(true),
					Type:  "png",
					Title: "k-means_scatter",
				},
			},
		}),
		charts.WithDataZoomOpts(
			opts.DataZoom{Type: "inside", XAxisIndex: 0},
			opts.DataZoom{Type: "inside", YAxisIndex: 0},
		),
	)

	for i, members := range res.Clusters {
		data := make([]opts.ScatterData, 0, len(members))
		for _, p := range members {
			data = append(data, opts.ScatterData{Value: []float64{p.X, p.Y}})
		}
		es.AddSeries(fmt.Sprintf("Cluster %d", i), data,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: palette[i%len(palette)]}))
	}

	centroids := make([]opts.ScatterData, 0, len(res.Centroids))
	for i, c := range res.Centroids {
		centroids = append(centroids, opts.ScatterData{
			Name:       strconv.Itoa(i),
			Value:      []float64{c.X, c.Y},
			Symbol:     "diamond",
			SymbolSize: 16,
		})
	}
	es.AddSeries("Centroids", centroids, charts.WithItemStyleOpts(opts.ItemStyle{Color: "black"}))

	return es
}

func sizeChart(res *clusterkit.Result) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{Title: "Cluster sizes"}))

	xAxis := make([]string, len(res.Clusters))
	items := make([]opts.BarData, len(res.Clusters))
	for i, members := range res.Clusters {
		xAxis[i] = strconv.Itoa(i)
		items[i] = opts.BarData{Name: xAxis[i], Value: len(members)}
	}

	bar.SetXAxis(xAxis).AddSeries("size", items).SetSeriesOptions(
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}),
	)
	return bar
}

func displacementChart(res *clusterkit.Result) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Mean squared centroid displacement"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value"}),
	)

	xAxis := make([]int, len(res.Displacements))
	items := make([]opts.LineData, len(res.Displacements))
	for i, d := range res.Displacements {
		xAxis[i] = i + 1
		items[i] = opts.LineData{Value: d}
	}

	line.SetXAxis(xAxis).AddSeries("displacement", items)
	return line
}
