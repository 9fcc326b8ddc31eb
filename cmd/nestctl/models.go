package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// modelsCmd represents the models command.
var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the models known to the engine.",
	Long: `Lists every model registered in the engine together with its element
classification, its recordable quantities and its receptor type names, i.e.:

nestctl models
nestctl models --model-tables ./models.yaml`,
	RunE: listModels,
}

func init() {
	rootCmd.AddCommand(modelsCmd)
}

func listModels(cmd *cobra.Command, args []string) error {
	s, err := newSession()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MODEL\tELEMENT\tRECORDABLES\tRECEPTORS")
	for _, name := range s.Models() {
		d, err := s.Describe(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			d.Name, d.ElementType,
			strings.Join(d.Recordables, ","),
			strings.Join(d.ReceptorTypes, ","),
		)
	}
	return w.Flush()
}
