package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hbjs97/envy/internal/envfile"
	"github.com/hbjs97/envy/internal/shell"
)

func (a *App) newLoadCmd() *cobra.Command {
	var shellType string

	cmd := &cobra.Command{
		Use:   "load [env-file]",
		Short: "지정한 .env 파일의 변수를 현재 세션용으로 출력한다",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file := ".env"
			if len(args) == 1 {
				file = args[0]
			}
			return a.runLoad(cmd, file, shellType)
		},
	}
	cmd.Flags().StringVar(&shellType, "shell", "bash", "출력 형식 (bash, zsh, fish, json)")
	return cmd
}

// runLoad는 허용 목록과 무관하게 파일 하나를 즉석에서 파싱한다.
// export와 달리 없는 파일은 에러다. 사용자가 경로를 직접 지정했기 때문이다.
func (a *App) runLoad(cmd *cobra.Command, file, shellType string) error {
	if _, err := os.Stat(file); err != nil {
		return fmt.Errorf("cli.load: 파일이 존재하지 않습니다: %s", file)
	}

	vars, err := envfile.Parse(file)
	if err != nil {
		return fmt.Errorf("cli.load: %w", err)
	}

	out, err := shell.ExportStatements(shellType, vars)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
