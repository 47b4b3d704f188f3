package cli

import (
	"github.com/hbjs97/envy/internal/config"
	"github.com/hbjs97/envy/internal/shell"
)

// 각 도메인 패키지의 sentinel error를 CLI 레이어에서 편의상 re-export한다.
var (
	// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
	ErrConfig = config.ErrConfig
	// ErrUnsupportedShell는 지원하지 않는 셸이 지정되었을 때의 sentinel error다.
	ErrUnsupportedShell = shell.ErrUnsupportedShell
)
