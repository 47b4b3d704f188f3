package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func (a *App) newFindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find <VARIABLE>",
		Short: "환경변수 하나를 찾아 값을 출력한다",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runFind(cmd, args[0])
		},
	}
}

// runFind는 해석된 환경에서 변수를 찾고, 없으면 프로세스 환경에서 찾는다.
// 둘 다 없으면 메시지를 출력할 뿐 에러는 아니다.
func (a *App) runFind(cmd *cobra.Command, name string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("cli.find: %w", err)
	}

	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	if value, ok := resolveEnvironment(cwd, cfg)[name]; ok {
		fmt.Fprintln(out, value)
		return nil
	}
	if value, ok := os.LookupEnv(name); ok {
		fmt.Fprintln(out, value)
		return nil
	}
	fmt.Fprintf(out, "%s: not found\n", name)
	return nil
}
