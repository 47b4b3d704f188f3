package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/BurntSushi/toml"
)

// ErrConfig는 설정 파일 오류를 나타내는 sentinel error다.
var ErrConfig = errors.New("설정 파일 오류")

// Pattern은 TOML 문자열로부터 디코딩되는 정규식이다.
// 잘못된 정규식은 디코딩 시점에 실패하므로 런타임에는 항상 컴파일된 상태다.
type Pattern struct {
	*regexp.Regexp
}

// CompilePattern은 정규식 문자열을 컴파일하여 Pattern을 반환한다.
func CompilePattern(expr string) (Pattern, error) {
	re, err := regexp.Compile(expr)
	if err != nil {
		return Pattern{}, fmt.Errorf("config.CompilePattern: %w: %v", ErrConfig, err)
	}
	return Pattern{re}, nil
}

// UnmarshalText는 encoding.TextUnmarshaler 구현이다.
func (p *Pattern) UnmarshalText(text []byte) error {
	re, err := regexp.Compile(string(text))
	if err != nil {
		return fmt.Errorf("잘못된 패턴 %q: %v", string(text), err)
	}
	p.Regexp = re
	return nil
}

// MarshalText는 encoding.TextMarshaler 구현이다. Save 라운드트립에 사용된다.
func (p Pattern) MarshalText() ([]byte, error) {
	if p.Regexp == nil {
		return nil, nil
	}
	return []byte(p.String()), nil
}

// Rule은 디렉토리 패턴 하나와 그에 대응하는 환경변수 목록이다.
type Rule struct {
	Pattern Pattern  `toml:"pattern"`
	Env     []string `toml:"env"`
}

// Config는 envy 설정 파일의 최상위 구조체다.
// Paths의 선언 순서는 first-match-wins 판정에 쓰이므로 그대로 보존된다.
// Envs는 자동 로딩이 허용된 .env 파일의 절대 경로 목록이다.
// Envs가 Paths보다 앞에 있어야 TOML 인코딩 시 [[paths]] 테이블 뒤에
// 최상위 키가 오는 잘못된 문서가 생기지 않는다.
type Config struct {
	Envs  []string `toml:"envs"`
	Paths []Rule   `toml:"paths"`
}

// Load는 config.toml을 파싱하여 Config를 반환한다.
// 패턴 컴파일 실패를 포함한 모든 오류는 ErrConfig로 판별 가능하다.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config.Load: %w: %v", ErrConfig, err)
	}
	return &cfg, nil
}

// Save는 Config를 TOML로 직렬화하여 0600 권한으로 저장한다.
// 설정 디렉토리가 없으면 생성한다.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("config.Save: %w", err)
	}
	return nil
}

// AllowEnv는 .env 파일 경로를 허용 목록에 추가한다.
// 이미 존재하면 false를 반환하고 목록은 변경하지 않는다.
func (c *Config) AllowEnv(path string) bool {
	for _, e := range c.Envs {
		if e == path {
			return false
		}
	}
	c.Envs = append(c.Envs, path)
	return true
}

// DenyEnv는 .env 파일 경로를 허용 목록에서 제거한다.
// 목록에 없었으면 false를 반환한다.
func (c *Config) DenyEnv(path string) bool {
	for i, e := range c.Envs {
		if e == path {
			c.Envs = append(c.Envs[:i], c.Envs[i+1:]...)
			return true
		}
	}
	return false
}

// EnvFilesIn은 허용 목록 중 dir 바로 아래에 있는 파일들을 등록 순서대로 반환한다.
// 하위 디렉토리의 파일은 포함하지 않는다.
func (c *Config) EnvFilesIn(dir string) []string {
	var files []string
	for _, e := range c.Envs {
		if filepath.Dir(e) == dir {
			files = append(files, e)
		}
	}
	return files
}
