package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pbanos/fuzzytree/partition"
)

type testCmdConfig struct {
	*rootCmdConfig
	treeInput     string
	dataInput     string
	table         string
	metadataInput string
}

func testCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &testCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "test",
		Short: "Test the performance of a tree",
		Long: `Test the performance of a tree against a test data set, showing the
confusion matrix of its classifications and their accuracy`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Validate(); err != nil {
				return err
			}
			return config.run(cmd)
		},
	}
	cmd.Flags().StringVarP(&(config.dataInput), "input", "i", "", inputFlagUsage)
	cmd.Flags().StringVar(&(config.table), "table", "data", tableFlagUsage)
	cmd.Flags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with the fitted metadata written by grow (required)")
	cmd.Flags().StringVarP(&(config.treeInput), "tree", "t", "", treeFlagUsage+" (required)")
	return cmd
}

func (tcc *testCmdConfig) Validate() error {
	if tcc.treeInput == "" {
		return fmt.Errorf("required tree flag was not set")
	}
	if tcc.metadataInput == "" {
		return fmt.Errorf("required metadata flag was not set")
	}
	return nil
}

func (tcc *testCmdConfig) run(cmd *cobra.Command) error {
	ctx := tcc.Context()
	t, err := tcc.loadTree(ctx, tcc.treeInput)
	if err != nil {
		return err
	}
	specs, fzs, err := fittedFuzzifiers(tcc.metadataInput, append(append([]string(nil), t.LHS...), t.RHS)...)
	if err != nil {
		return err
	}
	table, err := tcc.readTable(ctx, tcc.dataInput, tcc.table, partition.Fields(specs))
	if err != nil {
		return fmt.Errorf("reading testing set: %v", err)
	}
	s, err := fzs.Apply(table)
	if err != nil {
		return fmt.Errorf("fuzzifying testing set: %v", err)
	}
	tcc.logger.Info("testing tree", zap.Int("observations", s.Len()))
	c, err := t.Confusion(s)
	if err != nil {
		return fmt.Errorf("testing tree: %v", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), c)
	fmt.Fprintf(cmd.OutOrStdout(), "%f accuracy over %d observations\n", c.Accuracy(), c.Total())
	return nil
}
