package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hbjs97/envy/internal/config"
)

func (a *App) newAllowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "allow [env-file]",
		Short: ".env 파일의 자동 로딩을 허용한다",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runAllow(cmd, envFileArg(args))
		},
	}
}

func (a *App) newDenyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deny [env-file]",
		Short: ".env 파일의 자동 로딩 허용을 취소한다",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDeny(cmd, envFileArg(args))
		},
	}
}

func envFileArg(args []string) string {
	if len(args) == 1 {
		return args[0]
	}
	return ".env"
}

// runAllow는 파일의 절대 경로를 허용 목록에 추가하고 설정을 저장한다.
// 설정 파일이 아직 없으면 새로 만든다.
func (a *App) runAllow(cmd *cobra.Command, file string) error {
	abs, err := filepath.Abs(file)
	if err != nil {
		return fmt.Errorf("cli.allow: %w", err)
	}
	if _, err := os.Stat(abs); err != nil {
		return fmt.Errorf("cli.allow: 파일이 존재하지 않습니다: %s", abs)
	}

	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	if !cfg.AllowEnv(abs) {
		fmt.Fprintf(cmd.OutOrStdout(), "이미 허용된 파일: %s\n", abs)
		return nil
	}
	if err := config.Save(a.CfgPath, cfg); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "허용됨: %s\n", abs)
	return nil
}

// runDeny는 파일을 허용 목록에서 제거하고 설정을 저장한다.
func (a *App) runDeny(cmd *cobra.Command, file string) error {
	abs, err := filepath.Abs(file)
	if err != nil {
		return fmt.Errorf("cli.deny: %w", err)
	}

	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	if !cfg.DenyEnv(abs) {
		fmt.Fprintf(cmd.OutOrStdout(), "허용 목록에 없는 파일: %s\n", abs)
		return nil
	}
	if err := config.Save(a.CfgPath, cfg); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "허용 취소됨: %s\n", abs)
	return nil
}
