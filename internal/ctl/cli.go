package ctl

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/spf13/cobra"

	"propd/pkg/types"
)

type Config struct {
	Addr string
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// BuildRootCmd is a convenience for help-only fallbacks.
func BuildRootCmd() *cobra.Command {
	return buildRootCmdWith(&Config{Addr: envStr("PROPD_ADDR", "http://127.0.0.1:8080")})
}

// buildRootCmdWith constructs a Cobra command tree wired to the HTTP client.
func buildRootCmdWith(cfg *Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "propctl",
		Short:         "Inspect and mutate a running propd",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Persistent flags -> Config
	root.PersistentFlags().String("addr", cfg.Addr, "propd base URL (defaults PROPD_ADDR or http://127.0.0.1:8080)")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		if f := cmd.InheritedFlags().Lookup("addr"); f != nil {
			if v := f.Value.String(); v != "" {
				cfg.Addr = v
			}
		}
	}

	get := &cobra.Command{Use: "get <key>", Short: "Print a property value", Args: cobra.ExactArgs(1), Example: "  propctl get mode", RunE: func(cmd *cobra.Command, args []string) error {
		v, err := NewClient(cfg.Addr).Get(args[0])
		if err != nil {
			return err
		}
		return printJSON(cmd, v)
	}}

	set := &cobra.Command{Use: "set <key> <value>", Short: "Write a property value (value parsed as JSON, else raw string)", Args: cobra.ExactArgs(2), Example: "  propctl set retries 3\n  propctl set mode '\"busy\"'", RunE: func(cmd *cobra.Command, args []string) error {
		v, err := NewClient(cfg.Addr).Set(args[0], parseValue(args[1]))
		if err != nil {
			return err
		}
		return printJSON(cmd, v)
	}}

	state := &cobra.Command{Use: "state", Short: "Print the full state snapshot", Args: cobra.NoArgs, RunE: func(cmd *cobra.Command, args []string) error {
		st, err := NewClient(cfg.Addr).State()
		if err != nil {
			return err
		}
		return printJSON(cmd, st)
	}}

	keys := &cobra.Command{Use: "keys", Short: "List property keys", Args: cobra.NoArgs, RunE: func(cmd *cobra.Command, args []string) error {
		st, err := NewClient(cfg.Addr).State()
		if err != nil {
			return err
		}
		out := make([]string, 0, len(st.State))
		for k := range st.State {
			out = append(out, k)
		}
		sort.Strings(out)
		return printJSON(cmd, out)
	}}

	status := &cobra.Command{Use: "status", Short: "Print daemon status", Args: cobra.NoArgs, RunE: func(cmd *cobra.Command, args []string) error {
		st, err := NewClient(cfg.Addr).Status()
		if err != nil {
			return err
		}
		return printJSON(cmd, st)
	}}

	watch := &cobra.Command{Use: "watch [key]", Short: "Stream changes until interrupted", Args: cobra.MaximumNArgs(1), Example: "  propctl watch\n  propctl watch mode", RunE: func(cmd *cobra.Command, args []string) error {
		key := ""
		if len(args) == 1 {
			key = args[0]
		}
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()
		return NewClient(cfg.Addr).Watch(ctx, key, func(ev types.ChangeEvent) {
			_ = printJSON(cmd, ev)
		})
	}}

	root.AddCommand(get, set, state, keys, status, watch)
	return root
}

// parseValue interprets raw as JSON when possible, falling back to a plain
// string so `propctl set mode busy` works without quoting gymnastics.
func parseValue(raw string) any {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err == nil {
		return v
	}
	return raw
}

func printJSON(cmd *cobra.Command, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(b))
	return nil
}
