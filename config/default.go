package config

import _ "embed"

// DefaultConfigYAML 바이너리에 내장되는 기본 설정
//
//go:embed default.yaml
var DefaultConfigYAML []byte
