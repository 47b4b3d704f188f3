package shell

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrUnsupportedShell는 지원하지 않는 셸이 지정되었을 때의 sentinel error다.
var ErrUnsupportedShell = errors.New("지원하지 않는 셸")

// ExportStatements는 환경변수 맵을 shellType에 맞는 eval 가능한
// 문자열로 변환한다. 출력은 키 기준 정렬로 결정적이다. shellType이
// "json"이면 한 줄짜리 JSON 객체를 반환하며, 빈 맵은 "{}"가 된다.
func ExportStatements(shellType string, env map[string]string) (string, error) {
	if shellType == "json" {
		if len(env) == 0 {
			return "{}\n", nil
		}
		data, err := json.Marshal(env)
		if err != nil {
			return "", fmt.Errorf("shell.ExportStatements: %w", err)
		}
		return string(data) + "\n", nil
	}

	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	switch shellType {
	case "bash", "zsh", "sh":
		for _, k := range keys {
			fmt.Fprintf(&b, "export %s=%q\n", k, env[k])
		}
	case "fish":
		for _, k := range keys {
			fmt.Fprintf(&b, "set -gx %s %q\n", k, env[k])
		}
	default:
		return "", fmt.Errorf("shell.ExportStatements: %w: %s", ErrUnsupportedShell, shellType)
	}
	return b.String(), nil
}

// hook 스니펫 원형은 direnv에서 가져왔다.
// https://github.com/direnv/direnv/blob/e54386bdcccf9c7eea5976f787c4c31ddb5157d5/shell_bash.go
const bashHook = `_envy_hook() {
  local previous_exit_status=$?;
  eval "$(%q export bash)";
  return $previous_exit_status;
};
if ! [[ "$PROMPT_COMMAND" =~ _envy_hook ]]; then
  PROMPT_COMMAND="_envy_hook;$PROMPT_COMMAND"
fi
`

const zshHook = `_envy_hook() {
  eval "$(%q export zsh)";
}
typeset -ag precmd_functions;
if [[ -z ${precmd_functions[(r)_envy_hook]} ]]; then
  precmd_functions+=_envy_hook;
fi
`

const fishHook = `function _envy_hook --on-event fish_prompt;
  eval (%q export fish);
end
`

// HookSnippet는 매 프롬프트마다 envy export를 평가하는 셸 훅 스니펫을
// 반환한다. selfPath는 스니펫에 삽입될 envy 실행 파일 경로다.
func HookSnippet(shellType, selfPath string) (string, error) {
	switch shellType {
	case "bash":
		return fmt.Sprintf(bashHook, selfPath), nil
	case "zsh":
		return fmt.Sprintf(zshHook, selfPath), nil
	case "fish":
		return fmt.Sprintf(fishHook, selfPath), nil
	default:
		return "", fmt.Errorf("shell.HookSnippet: %w: %s", ErrUnsupportedShell, shellType)
	}
}
