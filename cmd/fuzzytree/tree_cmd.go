package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/pbanos/fuzzytree/tree/dot"
)

type treeCmdConfig struct {
	*rootCmdConfig
	treeInput string
	output    string
	format    string
}

func treeCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &treeCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Show a tree",
		Long: `Show a grown tree as text, as the list of rules of its leaves or as a
graphviz DOT document`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Validate(); err != nil {
				return err
			}
			return config.run()
		},
	}
	cmd.Flags().StringVarP(&(config.treeInput), "tree", "t", "", treeFlagUsage+" (defaults to STDIN in JSON)")
	cmd.Flags().StringVarP(&(config.output), "output", "o", "", "path to a file to write the tree to (defaults to STDOUT)")
	cmd.Flags().StringVarP(&(config.format), "format", "f", "text", "format to show the tree in: text, rules or dot")
	return cmd
}

func (tcc *treeCmdConfig) Validate() error {
	switch tcc.format {
	case "text", "rules", "dot":
		return nil
	}
	return fmt.Errorf("unknown format %q", tcc.format)
}

func (tcc *treeCmdConfig) run() error {
	ctx := tcc.Context()
	t, err := tcc.loadTree(ctx, tcc.treeInput)
	if err != nil {
		return err
	}
	return withOutput(tcc.output, func(w io.Writer) error {
		switch tcc.format {
		case "rules":
			_, err := fmt.Fprint(w, t.Rules())
			return err
		case "dot":
			return dot.Write(ctx, w, t)
		}
		_, err := fmt.Fprint(w, t)
		return err
	})
}
