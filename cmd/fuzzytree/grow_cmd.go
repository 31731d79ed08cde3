package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pbanos/fuzzytree"
	"github.com/pbanos/fuzzytree/partition"
	"github.com/pbanos/fuzzytree/partition/yaml"
)

type growCmdConfig struct {
	*rootCmdConfig
	dataInput     string
	table         string
	metadataInput string
	output        string
	fittedOutput  string
}

func growCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &growCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "grow",
		Short: "Grow a tree from a set of data",
		Long: `Grow a fuzzy decision tree from a set of data to classify a certain attribute.

Attributes are fuzzified as described in the metadata file. The fuzzifiers
fitted to the data can be written as metadata for the test, classify and
predict commands with the --fitted flag.`,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return bindFlags(config.v, cmd, "class", "lhs", "alpha", "beta", "workers", "max-evaluations", "queue")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Validate(); err != nil {
				return err
			}
			return config.run()
		},
	}
	cmd.Flags().StringVarP(&(config.dataInput), "input", "i", "", inputFlagUsage)
	cmd.Flags().StringVar(&(config.table), "table", "data", tableFlagUsage)
	cmd.Flags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with metadata describing how to fuzzify the attributes on the input (required)")
	cmd.Flags().StringVarP(&(config.output), "output", "o", "", treeFlagUsage+" to write the grown tree to (defaults to STDOUT in JSON)")
	cmd.Flags().StringVar(&(config.fittedOutput), "fitted", "", "path to a YML file to write the metadata of the fitted fuzzifiers to")
	cmd.Flags().StringP("class", "c", "", "name of the attribute the tree should classify (required)")
	cmd.Flags().StringSlice("lhs", nil, "attributes the tree may test, in tie-break order (defaults to every attribute but the class, in metadata order)")
	cmd.Flags().Float64("alpha", 0.1, "minimum membership of a branch for it to be developed")
	cmd.Flags().Float64("beta", 0.7, "truth level above which a branch becomes a leaf")
	cmd.Flags().Int("workers", 1, "number of goroutines scoring candidate attributes")
	cmd.Flags().Int("max-evaluations", partition.DefaultMaxEvaluations, "limit of objective evaluations when optimizing partitions")
	cmd.Flags().String("queue", "", "redis://HOST:PORT/ID URL of a redis list to keep pending nodes on (defaults to memory)")
	return cmd
}

func (gcc *growCmdConfig) Validate() error {
	if gcc.metadataInput == "" {
		return fmt.Errorf("required metadata flag was not set")
	}
	if gcc.v.GetString("class") == "" {
		return fmt.Errorf("required class flag was not set")
	}
	return nil
}

func (gcc *growCmdConfig) run() error {
	ctx := gcc.Context()
	class := gcc.v.GetString("class")
	specs, err := yaml.ReadSpecsFromFile(gcc.metadataInput)
	if err != nil {
		return err
	}
	table, err := gcc.readTable(ctx, gcc.dataInput, gcc.table, partition.Fields(specs))
	if err != nil {
		return fmt.Errorf("reading training set: %v", err)
	}
	set, fzs, err := partition.Build(table, specs, class,
		partition.WithLogger(gcc.logger),
		partition.WithMaxEvaluations(gcc.v.GetInt("max-evaluations")))
	if err != nil {
		return fmt.Errorf("fuzzifying training set: %v", err)
	}

	params := fuzzytree.Params{
		Alpha: gcc.v.GetFloat64("alpha"),
		Beta:  gcc.v.GetFloat64("beta"),
		LHS:   gcc.v.GetStringSlice("lhs"),
		RHS:   class,
	}
	if len(params.LHS) == 0 {
		for _, s := range specs {
			if s.Name != class {
				params.LHS = append(params.LHS, s.Name)
			}
		}
	}
	q, closeQueue, err := growthQueue(gcc.v.GetString("queue"))
	if err != nil {
		return err
	}
	defer closeQueue()

	gcc.logger.Info("growing tree",
		zap.Int("observations", set.Len()),
		zap.Strings("lhs", params.LHS),
		zap.String("rhs", params.RHS))
	t, err := fuzzytree.Grow(ctx, set, params,
		fuzzytree.WithLogger(gcc.logger),
		fuzzytree.WithWorkers(gcc.v.GetInt("workers")),
		fuzzytree.WithQueue(q))
	if err != nil {
		return fmt.Errorf("growing the tree: %v", err)
	}
	if gcc.verbose {
		fmt.Fprint(os.Stderr, t)
	}
	if err = gcc.saveTree(ctx, gcc.output, t); err != nil {
		return fmt.Errorf("writing the tree: %v", err)
	}
	if gcc.fittedOutput != "" {
		fitted, err := fzs.Specs()
		if err != nil {
			return err
		}
		if err = yaml.WriteSpecsToFile(gcc.fittedOutput, fitted); err != nil {
			return fmt.Errorf("writing fitted metadata: %v", err)
		}
	}
	return nil
}
