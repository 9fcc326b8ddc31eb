package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/gospike/nest"
	"github.com/gospike/nest/recording"
	"github.com/gospike/nest/simulator"
)

var (
	runTime     float64
	runTimestep float64
	runMinDelay float64
	runSeed     int64
	runThreads  int
	runOnGrid   bool
	runCells    int
	runPeriod   float64
	runWeight   float64
	runDelay    float64
	runOutput   string
	runPlot     bool
)

// runCmd represents the run command.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a demo session against the engine.",
	Long: `Builds a small demo network - one spike generator driving a population
of integrate and fire cells - runs it for the requested time and reports the
session state. The declared stimulus events can be plotted as a terminal
histogram and written through a recording output handler, i.e.:

nestctl run --time 200 --cells 20 --plot
nestctl run --period 5 --output stimulus.csv`,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Float64Var(&runTime, "time", 100.0, "simulated duration in ms")
	runCmd.Flags().Float64Var(&runTimestep, "dt", 0.1, "simulation timestep in ms")
	runCmd.Flags().Float64Var(&runMinDelay, "min-delay", 0.1, "lower connection delay bound in ms")
	runCmd.Flags().Int64Var(&runSeed, "seed", 42, "global rng seed")
	runCmd.Flags().IntVar(&runThreads, "threads", 1, "engine worker threads")
	runCmd.Flags().BoolVar(&runOnGrid, "on-grid", false, "constrain spike events to the timestep grid")
	runCmd.Flags().IntVar(&runCells, "cells", 10, "number of integrate and fire cells")
	runCmd.Flags().Float64Var(&runPeriod, "period", 10.0, "stimulus event interval in ms")
	runCmd.Flags().Float64Var(&runWeight, "weight", 2.5, "synaptic weight")
	runCmd.Flags().Float64Var(&runDelay, "delay", 1.0, "synaptic delay in ms")
	runCmd.Flags().StringVarP(&runOutput, "output", "o", "", "stimulus data destination (.csv or .json)")
	runCmd.Flags().BoolVar(&runPlot, "plot", false, "plot the stimulus event histogram")
}

// stimulusPopulation adapts the declared stimulus spike train to the
// session recording interface.
type stimulusPopulation struct {
	label  string
	source simulator.NodeID
	times  simulator.Sequence
}

func (p *stimulusPopulation) Label() string {
	return p.label
}

func (p *stimulusPopulation) Record(variables []string) error {
	return nil
}

func (p *stimulusPopulation) WriteData(out recording.Output, variables []string) error {
	return out.Write(&recording.Block{
		Label: p.label,
		Segments: []*recording.Segment{{
			SpikeTrains: []*recording.SpikeTrain{{
				Source: uint64(p.source),
				Times:  p.times,
			}},
		}},
	})
}

func runDemo(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}

	options := []nest.SetupOption{
		nest.WithRNGSeed(runSeed),
		nest.WithThreads(runThreads),
	}
	if runOnGrid {
		options = append(options, nest.WithSpikePrecision(simulator.PrecisionOnGrid))
	}
	rank, err := s.Setup(runTimestep, runMinDelay, options...)
	if err != nil {
		return err
	}

	cells, err := s.Create("iaf_psc_alpha", runCells, nil)
	if err != nil {
		return err
	}

	times := simulator.Sequence{}
	for t := runPeriod; t < runTime; t += runPeriod {
		times = append(times, t)
	}
	source, err := s.Create("spike_generator", 1, simulator.Params{"spike_times": times})
	if err != nil {
		return err
	}
	err = s.Connect(source, cells, &simulator.ConnSpec{Rule: "all_to_all"},
		simulator.Params{"weight": runWeight, "delay": runDelay})
	if err != nil {
		return err
	}

	generator, err := s.Describe("spike_generator")
	if err != nil {
		return err
	}
	pop := &stimulusPopulation{label: generator.Collection, source: source[0], times: times}
	if runOutput != "" {
		if err = s.Record([]string{"spikes"}, pop, runOutput); err != nil {
			return err
		}
	}

	if err = s.Run(runTime); err != nil {
		return err
	}

	conns, err := s.GetConnections(source, cells, "")
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "rank:\t%d of %d\n", rank, s.NumProcesses())
	fmt.Fprintf(w, "simulated:\t%v ms\n", s.CurrentTime())
	fmt.Fprintf(w, "cells:\t%d\n", len(cells))
	fmt.Fprintf(w, "stimulus events:\t%d\n", len(times))
	fmt.Fprintf(w, "connections:\t%d\n", len(conns))
	if err = w.Flush(); err != nil {
		return err
	}

	if runPlot && len(times) > 0 {
		bins := binCounts(times, runTime, 50)
		width := runTime / float64(len(bins))
		graph := asciigraph.Plot(bins,
			asciigraph.Height(10),
			asciigraph.Width(70),
			asciigraph.Caption(fmt.Sprintf("stimulus events per %.1f ms bin", width)),
		)
		fmt.Println()
		fmt.Println(graph)
	}

	if err = s.End(); err != nil {
		return err
	}
	if runOutput != "" {
		fmt.Printf("\nstimulus data written to: %s\n", runOutput)
	}
	return nil
}

// binCounts counts the events of 'times' into 'bins' windows of equal width
// spanning [0, duration).
func binCounts(times []float64, duration float64, bins int) []float64 {
	counts := make([]float64, bins)
	width := duration / float64(bins)
	for _, t := range times {
		i := int(t / width)
		if i >= bins {
			i = bins - 1
		}
		counts[i]++
	}
	return counts
}
