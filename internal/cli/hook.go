package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hbjs97/envy/internal/shell"
)

func (a *App) newHookCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hook <shell>",
		Short: "셸 활성화를 위한 hook 스니펫을 출력한다",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snippet, err := shell.HookSnippet(args[0], selfPath())
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), snippet)
			return nil
		},
	}
}

// selfPath는 hook 스니펫에 삽입할 envy 실행 파일 경로를 반환한다.
func selfPath() string {
	exe, err := os.Executable()
	if err != nil {
		return "envy"
	}
	return exe
}
