package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) newPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "설정 파일 경로를 출력한다",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), a.CfgPath)
			return nil
		},
	}
}
