package main

import (
	"strconv"
	"strings"

	"github.com/g-m-twostay/go-bst/Trees"
	"github.com/g-m-twostay/go-bst/internal/harness"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// parseValues turns positional arguments into integers.
func parseValues(args []string) ([]int, error) {
	vs := make([]int, 0, len(args))
	for _, s := range args {
		v, err := strconv.Atoi(s)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid value %q", s)
		}
		vs = append(vs, v)
	}
	return vs, nil
}

// intSlice reads an integer list from viper. Values from the environment
// arrive as a single comma separated string, which cast can't convert.
func (a *app) intSlice(key string) ([]int, error) {
	if s, ok := a.v.Get(key).(string); ok {
		if s = strings.TrimSpace(s); s == "" {
			return nil, nil
		}
		fields := strings.Split(s, ",")
		for i := range fields {
			fields[i] = strings.TrimSpace(fields[i])
		}
		vs, err := parseValues(fields)
		return vs, errors.Wrapf(err, "--%s", key)
	}
	return a.v.GetIntSlice(key), nil
}

func (a *app) report(cmd *cobra.Command, s harness.Scenario) {
	r, _ := harness.Run(s, a.logger)
	harness.Render(cmd.OutOrStdout(), r, !a.v.GetBool("no-color"))
}

func (a *app) demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "insert 50 30 70 20 40 60 80 10, report, then skew the tree with 5",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.report(cmd, harness.Demo())
			return nil
		},
	}
}

func (a *app) runCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "run [values...]",
		Short: "insert the values in order and report on the tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			vs, err := parseValues(args)
			if err != nil {
				return err
			}
			s := harness.Scenario{Name: a.v.GetString("name")}
			if s.Values, err = a.intSlice("values"); err != nil {
				return err
			}
			s.Values = append(s.Values, vs...)
			if s.Heights, err = a.intSlice("heights"); err != nil {
				return err
			}
			if s.Then, err = a.intSlice("then"); err != nil {
				return err
			}
			a.report(cmd, s)
			return nil
		},
	}
	c.Flags().String("name", "run", "title of the report")
	c.Flags().IntSlice("values", nil, "values to insert before the positional ones")
	c.Flags().IntSlice("heights", nil, "report the cached height of these nodes")
	c.Flags().IntSlice("then", nil, "insert these one by one after the report, checking AVL after each")
	return c
}

func (a *app) scenarioCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "scenario",
		Short: "report on every scenario of a YAML file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ss, err := harness.LoadScenarios(a.v.GetString("file"))
			if err != nil {
				return err
			}
			for _, s := range ss {
				a.report(cmd, s)
			}
			return nil
		},
	}
	c.Flags().String("file", "", "scenario file")
	c.MarkFlagRequired("file")
	return c
}

func (a *app) printCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "print values...",
		Short: "draw the tree built from the values",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vs, err := parseValues(args)
			if err != nil {
				return err
			}
			tree := Trees.Build[int, uint](vs...)
			tree.Print(cmd.OutOrStdout(), a.v.GetBool("show-height"))
			a.logger.WithField("height", tree.Height()).Debugf("printed %d nodes", tree.Size())
			return nil
		},
	}
	c.Flags().Bool("show-height", false, "show cached height and balance of every node")
	return c
}
