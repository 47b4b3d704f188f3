package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/hbjs97/envy/internal/envfile"
	"github.com/hbjs97/envy/internal/resolver"
)

func (a *App) newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "현재 디렉토리에 적용되는 설정을 표시한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runShow(cmd)
		},
	}
}

func (a *App) runShow(cmd *cobra.Command) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("cli.show: %w", err)
	}

	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	rule := resolver.ResolveRule(cwd, cfg.Paths)
	if rule == nil {
		fmt.Fprintln(out, "매칭되는 규칙 없음")
	} else {
		fmt.Fprintf(out, "규칙: %s\n", rule.Pattern.String())
		for _, kv := range rule.Env {
			fmt.Fprintf(out, "  %s\n", kv)
		}
	}

	files := cfg.EnvFilesIn(cwd)
	if len(files) == 0 {
		return nil
	}
	fmt.Fprintln(out, "허용된 .env 파일:")
	for _, f := range files {
		fmt.Fprintf(out, "  %s\n", f)
	}

	merged := envfile.Merge(files)
	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(out, "  %s=%s\n", k, merged[k])
	}
	return nil
}
