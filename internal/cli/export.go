package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/hbjs97/envy/internal/config"
	"github.com/hbjs97/envy/internal/envfile"
	"github.com/hbjs97/envy/internal/resolver"
	"github.com/hbjs97/envy/internal/shell"
)

func (a *App) newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export <shell>",
		Short: "현재 디렉토리에 맞는 환경변수를 출력한다",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runExport(cmd, args[0])
		},
	}
}

func (a *App) runExport(cmd *cobra.Command, shellType string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("cli.export: %w", err)
	}

	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	env := resolveEnvironment(cwd, cfg)
	log.Debug("환경변수 해석 완료", "dir", cwd, "vars", len(env))

	out, err := shell.ExportStatements(shellType, env)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

// loadConfig는 설정 파일을 읽는다. 파일이 아직 없으면 빈 설정을 반환한다.
// hook이 매 프롬프트마다 실행되므로 설정이 없는 새 셸에서 에러를 내지 않는다.
func (a *App) loadConfig() (*config.Config, error) {
	if _, err := os.Stat(a.CfgPath); errors.Is(err, fs.ErrNotExist) {
		return &config.Config{}, nil
	}
	return config.Load(a.CfgPath)
}

// resolveEnvironment는 현재 디렉토리에 대한 최종 환경변수 맵을 만든다.
// 규칙 매칭으로 얻은 변수를 먼저 넣고, 허용된 .env 파일들을 등록
// 순서대로 병합한다. 키가 겹치면 .env 파일 쪽이 이긴다.
func resolveEnvironment(cwd string, cfg *config.Config) map[string]string {
	env := make(map[string]string)

	for _, kv := range resolver.Resolve(cwd, cfg.Paths) {
		key, value, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		env[key] = value
	}

	files := cfg.EnvFilesIn(cwd)
	if len(files) > 0 {
		log.Debug(".env 파일 병합", "files", len(files))
	}
	for k, v := range envfile.Merge(files) {
		env[k] = v
	}
	return env
}
