package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func (a *App) newEditCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "edit",
		Short: "설정 파일을 에디터로 연다",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runEdit(cmd)
		},
	}
}

func (a *App) runEdit(cmd *cobra.Command) error {
	if err := os.MkdirAll(filepath.Dir(a.CfgPath), 0700); err != nil {
		return fmt.Errorf("cli.edit: %w", err)
	}
	return a.Commander.RunInteractive(cmd.Context(), editor(), a.CfgPath)
}

// editor는 사용할 에디터 명령을 결정한다. VISUAL, EDITOR 순으로 찾고
// 둘 다 없으면 vi를 쓴다.
func editor() string {
	if e := os.Getenv("VISUAL"); e != "" {
		return e
	}
	if e := os.Getenv("EDITOR"); e != "" {
		return e
	}
	return "vi"
}
