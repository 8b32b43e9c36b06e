// Command benchsweep times Prove/Verify across a family of binary-doubling
// circuits of increasing depth and renders an interactive HTML line chart
// of the results.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/obah/gkr"
)

type sweepRow struct {
	depth     int
	width     int
	proveMS   float64
	verifyMS  float64
	proofKB   float64
}

// binaryDoublingCircuit builds a depth-layer circuit where layer 0 is a
// single output gate and each deeper layer doubles in width, alternating
// Add and Mul gates. The bottom layer reads 2^depth raw inputs.
func binaryDoublingCircuit(depth int) *gkr.Circuit {
	layers := make([]gkr.Layer, depth)
	width := 1
	for i := 0; i < depth; i++ {
		op := gkr.OpAdd
		if i%2 == 1 {
			op = gkr.OpMul
		}
		gates := make([]gkr.Operation, width)
		for g := range gates {
			gates[g] = op
		}
		layers[i] = gkr.Layer{Gates: gates}
		width *= 2
	}
	return &gkr.Circuit{Layers: layers}
}

func randomInputs(n int) []gkr.Fr {
	out := make([]gkr.Fr, n)
	for i := range out {
		out[i] = gkr.MustRandFr()
	}
	return out
}

func proofSizeBytes(p *gkr.Proof) int {
	size := len(p.OutputPoly.Evals) * 32
	for _, rounds := range p.ProofPolynomials {
		for _, poly := range rounds {
			size += len(poly.Coeffs) * 32
		}
	}
	size += len(p.ClaimedEvaluations) * 2 * 32
	return size
}

func runSweep(maxDepth int) []sweepRow {
	rows := make([]sweepRow, 0, maxDepth)
	for depth := 1; depth <= maxDepth; depth++ {
		bottomWidth := 1 << (depth - 1)
		inputs := randomInputs(2 * bottomWidth)
		circuit := binaryDoublingCircuit(depth)

		start := time.Now()
		proof, err := gkr.Prove(circuit, inputs)
		proveElapsed := time.Since(start)
		if err != nil {
			fmt.Fprintf(os.Stderr, "prove failed at depth %d: %v\n", depth, err)
			continue
		}

		start = time.Now()
		ok := gkr.Verify(proof, circuit, inputs)
		verifyElapsed := time.Since(start)
		if !ok {
			fmt.Fprintf(os.Stderr, "verify rejected an honest proof at depth %d\n", depth)
			continue
		}

		rows = append(rows, sweepRow{
			depth:    depth,
			width:    bottomWidth,
			proveMS:  float64(proveElapsed.Microseconds()) / 1000,
			verifyMS: float64(verifyElapsed.Microseconds()) / 1000,
			proofKB:  float64(proofSizeBytes(proof)) / 1024,
		})
	}
	return rows
}

func main() {
	maxDepth := flag.Int("max-depth", 8, "deepest circuit to sweep (bottom layer width = 2^(max-depth-1), inputs = 2^max-depth)")
	outPath := flag.String("out", "benchsweep.html", "output HTML file")
	flag.Parse()

	rows := runSweep(*maxDepth)

	depths := make([]string, len(rows))
	proveSeries := make([]opts.LineData, len(rows))
	verifySeries := make([]opts.LineData, len(rows))
	proofSizeSeries := make([]opts.LineData, len(rows))
	for i, r := range rows {
		depths[i] = fmt.Sprintf("depth %d (width %d)", r.depth, r.width)
		proveSeries[i] = opts.LineData{Value: r.proveMS}
		verifySeries[i] = opts.LineData{Value: r.verifyMS}
		proofSizeSeries[i] = opts.LineData{Value: r.proofKB}
	}

	page := components.NewPage().SetPageTitle("GKR Prove/Verify Sweep")

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Prove/Verify time by circuit depth"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "circuit shape"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "milliseconds"}),
	)
	line.SetXAxis(depths).
		AddSeries("Prove (ms)", proveSeries).
		AddSeries("Verify (ms)", verifySeries)
	page.AddCharts(line)

	proofLine := charts.NewLine()
	proofLine.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Proof size by circuit depth"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "kilobytes"}),
	)
	proofLine.SetXAxis(depths).AddSeries("Proof size (KB)", proofSizeSeries)
	page.AddCharts(proofLine)

	f, err := os.Create(*outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create error: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		fmt.Fprintf(os.Stderr, "render error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %s | rows: %d\n", *outPath, len(rows))
}
