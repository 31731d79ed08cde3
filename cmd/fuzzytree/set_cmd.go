package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pbanos/fuzzytree/partition"
	"github.com/pbanos/fuzzytree/partition/yaml"
)

type setCmdConfig struct {
	*rootCmdConfig
	setInput      string
	inputTable    string
	metadataInput string
	setOutput     string
	outputTable   string
}

func setCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &setCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Manage sets of data",
		Long: `Copy a set of data between CSV files, SQLite3 and PostgreSQL databases and
MongoDB collections, keeping the attributes described on the metadata`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Validate(); err != nil {
				return err
			}
			return config.run()
		},
	}
	cmd.Flags().StringVarP(&(config.setInput), "input", "i", "", inputFlagUsage)
	cmd.Flags().StringVar(&(config.inputTable), "input-table", "data", tableFlagUsage+" to read")
	cmd.Flags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with metadata describing the attributes to copy (required)")
	cmd.Flags().StringVarP(&(config.setOutput), "output", "o", "", "path to an output CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL (postgresql://) or MongoDB (mongodb://) connection URL to write the data to (defaults to STDOUT, as CSV)")
	cmd.Flags().StringVar(&(config.outputTable), "output-table", "data", tableFlagUsage+" to write")
	return cmd
}

func (scc *setCmdConfig) Validate() error {
	if scc.metadataInput == "" {
		return fmt.Errorf("required metadata flag was not set")
	}
	if scc.setInput != "" && scc.setInput == scc.setOutput && scc.inputTable == scc.outputTable {
		return fmt.Errorf("input and output are the same")
	}
	return nil
}

func (scc *setCmdConfig) run() error {
	ctx := scc.Context()
	specs, err := yaml.ReadSpecsFromFile(scc.metadataInput)
	if err != nil {
		return err
	}
	t, err := scc.readTable(ctx, scc.setInput, scc.inputTable, partition.Fields(specs))
	if err != nil {
		return fmt.Errorf("reading set: %v", err)
	}
	if err = scc.writeTable(ctx, scc.setOutput, scc.outputTable, t); err != nil {
		return fmt.Errorf("writing set: %v", err)
	}
	return nil
}
