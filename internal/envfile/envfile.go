// Package envfile parses .env-style files and merges them in order.
package envfile

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Parse는 .env 파일 하나를 읽어 KEY=VALUE 맵으로 반환한다.
//
// 빈 줄과 #으로 시작하는 주석 줄은 무시한다. "export KEY=VALUE" 형태도
// 허용되며 export 접두사는 제거된다. =가 없는 줄은 건너뛴다. 값은 첫
// 번째 = 뒤의 문자열 그대로이며 따옴표를 벗기지 않는다. 파일 내에서
// 같은 키가 반복되면 나중 줄이 이긴다.
func Parse(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("envfile.Parse: %w", err)
	}
	defer f.Close()

	vars := make(map[string]string)
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		vars[key] = value
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("envfile.Parse: %w", err)
	}
	return vars, nil
}

// Merge는 허용된 .env 파일들을 순서대로 병합한다.
//
// 키가 충돌하면 목록에서 나중에 오는 파일의 값이 이긴다. 없거나 읽을 수
// 없는 파일은 조용히 건너뛴다. 허용 후 삭제된 파일은 복구 가능한 상태이지
// 오류가 아니다.
func Merge(paths []string) map[string]string {
	merged := make(map[string]string)
	for _, p := range paths {
		vars, err := Parse(p)
		if err != nil {
			continue
		}
		for k, v := range vars {
			merged[k] = v
		}
	}
	return merged
}
