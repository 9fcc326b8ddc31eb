package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gospike/nest/simulator"
)

var describeJSON bool

// describeCmd represents the describe command.
var describeCmd = &cobra.Command{
	Use:   "describe [model]",
	Short: "Describe a model in the simulator neutral vocabulary.",
	Long: `Reflects the model from the engine registry and prints its descriptor:
default parameters, initial state values, recordable quantities with their
units, ordered receptor types and the capability flags, i.e.:

nestctl describe iaf_psc_alpha
nestctl describe ht_neuron --json`,
	Args: cobra.ExactArgs(1),
	RunE: describeModel,
}

func init() {
	rootCmd.AddCommand(describeCmd)

	describeCmd.Flags().BoolVar(&describeJSON, "json", false, "print the descriptor as json")
}

func describeModel(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}
	cellType, err := s.CellType(args[0])
	if err != nil {
		return err
	}
	d := cellType.Descriptor()

	if describeJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "model:\t%s\n", d.Name)
	fmt.Fprintf(w, "collection:\t%s\n", d.Collection)
	fmt.Fprintf(w, "element:\t%s\n", d.ElementType)
	fmt.Fprintf(w, "injectable:\t%v\n", d.Injectable)
	fmt.Fprintf(w, "conductance based:\t%v\n", d.ConductanceBased)
	fmt.Fprintf(w, "standard receptors:\t%v\n", d.StandardReceptors)
	fmt.Fprintf(w, "always local:\t%v\n", d.AlwaysLocal)
	fmt.Fprintf(w, "uses relay:\t%v\n", d.UsesRelay)

	fmt.Fprintln(w, "\nPARAMETER\tDEFAULT")
	printParams(w, d.Parameters)

	if len(d.InitialValues) > 0 {
		fmt.Fprintln(w, "\nSTATE\tINITIAL")
		printParams(w, d.InitialValues)
	}

	fmt.Fprintln(w, "\nRECORDABLE\tUNIT")
	for _, name := range d.Recordables {
		fmt.Fprintf(w, "%s\t%s\n", name, d.Units[name])
	}

	fmt.Fprintln(w, "\nRECEPTOR\tPORT")
	for _, name := range d.ReceptorTypes {
		// the standard receptor pair carries no engine port
		if port, err := cellType.ReceptorPort(name); err == nil {
			fmt.Fprintf(w, "%s\t%d\n", name, port)
		} else {
			fmt.Fprintf(w, "%s\t-\n", name)
		}
	}
	return w.Flush()
}

func printParams(w *tabwriter.Writer, params simulator.Params) {
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "%s\t%v\n", name, params[name])
	}
}
