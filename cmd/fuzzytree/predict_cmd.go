package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/pbanos/fuzzytree/dataset"
	"github.com/pbanos/fuzzytree/dataset/inputsample"
	"github.com/pbanos/fuzzytree/fuzzy"
	"github.com/pbanos/fuzzytree/tree"
)

type predictCmdConfig struct {
	*rootCmdConfig
	treeInput      string
	metadataInput  string
	undefinedValue string
}

type stdoutValueRequester struct {
	w              io.Writer
	undefinedValue string
}

func predictCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &predictCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict the class of an observation answering questions",
		Long: `Use a tree to predict the class of an observation, answering questions
about the attributes the tree tests`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Validate(); err != nil {
				return err
			}
			return config.run(cmd)
		},
	}
	cmd.Flags().StringVarP(&(config.metadataInput), "metadata", "m", "", "path to a YML file with the fitted metadata written by grow (required)")
	cmd.Flags().StringVarP(&(config.treeInput), "tree", "t", "", treeFlagUsage+" (required)")
	cmd.Flags().StringVarP(&(config.undefinedValue), "undefined-value", "u", "?", "value to input to define an observation's value for an attribute as undefined")
	return cmd
}

func (pcc *predictCmdConfig) Validate() error {
	if pcc.metadataInput == "" {
		return fmt.Errorf("required metadata flag was not set")
	}
	if pcc.treeInput == "" {
		return fmt.Errorf("required tree flag was not set")
	}
	return nil
}

func (pcc *predictCmdConfig) run(cmd *cobra.Command) error {
	ctx := pcc.Context()
	t, err := pcc.loadTree(ctx, pcc.treeInput)
	if err != nil {
		return err
	}
	attributes, err := testedAttributes(ctx, t)
	if err != nil {
		return err
	}
	specs, fzs, err := fittedFuzzifiers(pcc.metadataInput, attributes...)
	if err != nil {
		return err
	}
	requester := &stdoutValueRequester{w: cmd.OutOrStdout(), undefinedValue: pcc.undefinedValue}
	s := inputsample.New(os.Stdin, requester, pcc.undefinedValue)
	sample := make(map[string]*fuzzy.Value, len(specs))
	for i, spec := range specs {
		var categories []string
		if spec.Field().Categorical {
			categories = spec.Terms
		}
		raw, err := s.ValueFor(ctx, spec.Field(), categories)
		if err != nil {
			return err
		}
		if sample[spec.Name], err = fzs[i].FuzzifyValue(raw); err != nil {
			return err
		}
	}
	p, err := t.Predict(sample)
	if err != nil {
		return err
	}
	class, degree := p.PredictedValue()
	fmt.Fprintf(cmd.OutOrStdout(), "Predicted %s is %s (%f); memberships to every class are %v\n", t.RHS, class, degree, p)
	return nil
}

// testedAttributes returns the attributes decision nodes of the tree
// test, in preorder.
func testedAttributes(ctx context.Context, t *tree.Tree) ([]string, error) {
	var result []string
	seen := make(map[string]bool)
	err := t.Traverse(ctx, false, func(_ context.Context, n *tree.Node) error {
		if !n.Leaf && !seen[n.Attribute] {
			seen[n.Attribute] = true
			result = append(result, n.Attribute)
		}
		return nil
	})
	return result, err
}

func (svr *stdoutValueRequester) RequestValueFor(f dataset.Field, categories []string) error {
	if f.Categorical {
		_, err := fmt.Fprintf(svr.w, "Please provide the observation's %s:\n(valid values are %v or %s if undefined)\n", f.Name, categories, svr.undefinedValue)
		return err
	}
	_, err := fmt.Fprintf(svr.w, "Please provide the observation's %s:\n(valid values are real numbers or %s if undefined)\n", f.Name, svr.undefinedValue)
	return err
}

func (svr *stdoutValueRequester) RejectValueFor(f dataset.Field, categories []string, value string) error {
	if f.Categorical {
		_, err := fmt.Fprintf(svr.w, "%s is not a valid value for the observation's %s. Please provide one of %v or %s if undefined.\n", value, f.Name, categories, svr.undefinedValue)
		return err
	}
	_, err := fmt.Fprintf(svr.w, "%s is not a valid value for the observation's %s. Please provide a real number or %s if undefined.\n", value, f.Name, svr.undefinedValue)
	return err
}
