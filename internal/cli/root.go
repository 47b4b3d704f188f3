package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/hbjs97/envy/internal/cmdexec"
)

// App은 CLI 명령들이 공유하는 의존성 묶음이다.
type App struct {
	CfgPath   string
	Commander cmdexec.Commander
}

// NewApp은 기본 의존성으로 App을 생성한다.
func NewApp() *App {
	return &App{
		CfgPath:   DefaultConfigPath(),
		Commander: &cmdexec.RealCommander{},
	}
}

// NewRootCmd는 envy CLI의 루트 명령을 생성한다.
func (a *App) NewRootCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:          "envy",
		Short:        "디렉토리 기반 환경변수 매니저",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.SetLevel(log.DebugLevel)
			}
		},
	}

	if a.CfgPath == "" {
		a.CfgPath = DefaultConfigPath()
	}
	if a.Commander == nil {
		a.Commander = &cmdexec.RealCommander{}
	}

	cmd.PersistentFlags().StringVar(&a.CfgPath, "config", a.CfgPath, "설정 파일 경로")
	cmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "상세 출력")

	cmd.AddCommand(
		a.newExportCmd(),
		a.newHookCmd(),
		a.newEditCmd(),
		a.newShowCmd(),
		a.newFindCmd(),
		a.newLoadCmd(),
		a.newPathCmd(),
		a.newAllowCmd(),
		a.newDenyCmd(),
	)
	return cmd
}

// DefaultConfigPath는 기본 설정 파일 경로를 반환한다.
func DefaultConfigPath() string {
	return filepath.Join(homeDir(), ".config", "envy", "config.toml")
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "경고: 홈 디렉토리 확인 실패: %v\n", err)
		return "."
	}
	return home
}
