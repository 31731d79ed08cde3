package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pbanos/fuzzytree/dataset/csv"
	"github.com/pbanos/fuzzytree/partition"
)

type classifyCmdConfig struct {
	*rootCmdConfig
	treeInput     string
	dataInput     string
	table         string
	metadataInput string
	output        string
}

func classifyCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &classifyCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify a set of data with a tree",
		Long: `Classify every observation of a set of data with a tree, writing a CSV with
the membership of each observation to every class term`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Validate(); err != nil {
				return err
			}
			return config.run()
		},
	}
	cmd.Flags().StringVarP(&(config.dataInput), "input", "i", "", inputFlagUsage)
	cmd.Flags().StringVar(&(config.table), "table", "data", tableFlagUsage)
	cmd.Flags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with the fitted metadata written by grow (required)")
	cmd.Flags().StringVarP(&(config.treeInput), "tree", "t", "", treeFlagUsage+" (required)")
	cmd.Flags().StringVarP(&(config.output), "output", "o", "", "path to a CSV file to write the classification to (defaults to STDOUT)")
	return cmd
}

func (ccc *classifyCmdConfig) Validate() error {
	if ccc.treeInput == "" {
		return fmt.Errorf("required tree flag was not set")
	}
	if ccc.metadataInput == "" {
		return fmt.Errorf("required metadata flag was not set")
	}
	return nil
}

func (ccc *classifyCmdConfig) run() error {
	ctx := ccc.Context()
	t, err := ccc.loadTree(ctx, ccc.treeInput)
	if err != nil {
		return err
	}
	specs, fzs, err := fittedFuzzifiers(ccc.metadataInput, t.LHS...)
	if err != nil {
		return err
	}
	table, err := ccc.readTable(ctx, ccc.dataInput, ccc.table, partition.Fields(specs))
	if err != nil {
		return fmt.Errorf("reading data: %v", err)
	}
	s, err := fzs.Apply(table)
	if err != nil {
		return fmt.Errorf("fuzzifying data: %v", err)
	}
	ccc.logger.Info("classifying", zap.Int("observations", s.Len()))
	fv, err := t.Classify(s)
	if err != nil {
		return fmt.Errorf("classifying: %v", err)
	}
	return withOutput(ccc.output, func(w io.Writer) error {
		return csv.WriteVariable(w, fv)
	})
}
