package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/staylorx/id-registry/pkg/identifier"
	"github.com/staylorx/id-registry/pkg/registry"
)

// parseSet parses type:code arguments into an identifier set, preserving
// argument order.
func parseSet(args []string) (*identifier.Set, error) {
	set := identifier.NewSet()
	for _, arg := range args {
		pair, err := identifier.ParsePair(arg)
		if err != nil {
			return nil, err
		}
		set.Add(pair)
	}
	return set, nil
}

func newRegisterCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "register <type:code>...",
		Short: "Register a set of identifiers",
		Long: `Register one or more identifiers as a single set. The set is applied in
argument order and rejected on the first duplicate or validation failure;
identifiers earlier in the set stay registered.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(flags)
			if err != nil {
				return err
			}
			set, err := parseSet(args)
			if err != nil {
				return err
			}
			if err := a.reg.Register(set); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Registered %d identifier(s)\n", set.Len())
			return nil
		},
	}
}

func newUnregisterCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "unregister <type:code>...",
		Short: "Unregister a set of identifiers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(flags)
			if err != nil {
				return err
			}
			set, err := parseSet(args)
			if err != nil {
				return err
			}
			if err := a.reg.Unregister(set); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Unregistered %d identifier(s)\n", set.Len())
			return nil
		},
	}
}

func newCheckCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check <type:code>",
		Short: "Check whether an identifier is registered",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(flags)
			if err != nil {
				return err
			}
			pair, err := identifier.ParsePair(args[0])
			if err != nil {
				return err
			}
			registered, err := a.reg.IsRegistered(pair.Type, pair.Code)
			if err != nil {
				return err
			}
			if registered {
				fmt.Fprintf(cmd.OutOrStdout(), "%s is registered\n", pair)
			} else {
				fmt.Fprintf(cmd.OutOrStdout(), "%s is not registered\n", pair)
			}
			return nil
		},
	}
}

func newListCmd(flags *rootFlags) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list [type]",
		Short: "List registered types, or the codes of one type",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(flags)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if len(args) == 1 {
				codes, err := a.reg.RegisteredCodes(args[0])
				if err != nil {
					return err
				}
				if jsonOutput {
					return json.NewEncoder(out).Encode(codes)
				}
				for _, code := range codes {
					fmt.Fprintln(out, code)
				}
				return nil
			}

			types, err := a.reg.RegisteredTypes()
			if err != nil {
				return err
			}
			if jsonOutput {
				byType := make(map[string][]string, len(types))
				for _, idType := range types {
					codes, err := a.reg.RegisteredCodes(idType)
					if err != nil {
						return err
					}
					byType[idType] = codes
				}
				return json.NewEncoder(out).Encode(byType)
			}
			for _, idType := range types {
				codes, err := a.reg.RegisteredCodes(idType)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%s (%d)\n", idType, len(codes))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	return cmd
}

func newGenerateCmd(flags *rootFlags) *cobra.Command {
	var (
		kind  string
		count int
	)

	cmd := &cobra.Command{
		Use:   "generate <type>",
		Short: "Generate and register unique identifiers for a type",
		Long: `Generate unique identifiers for a type and register them in one step.
Generated identifiers satisfy a following check immediately.

Kinds:
  auto-increment  counter-backed "1", "2", "3", ...
  uuid            random UUIDv4`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(flags)
			if err != nil {
				return err
			}
			if err := a.reg.RegisterGenerator(args[0], registry.GeneratorKind(kind)); err != nil {
				return err
			}
			for i := 0; i < count; i++ {
				code, err := a.reg.GenerateID(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), code)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", string(registry.KindUUID),
		"generator kind: auto-increment, uuid")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of identifiers to generate")
	return cmd
}

func newClearCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Wipe all registered identifiers and counters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(flags)
			if err != nil {
				return err
			}
			if err := a.reg.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Store cleared")
			return nil
		},
	}
}
