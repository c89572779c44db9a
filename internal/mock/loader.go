package mock

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// LoadFile YAMLファイルからシードデータを読み込む
func LoadFile(path string) (Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("シードファイルの読み込みに失敗しました: %w", err)
	}
	return Parse(data)
}

// Parse YAMLをシードデータとして解析
func Parse(data []byte) (Dataset, error) {
	var ds Dataset
	if err := yaml.UnmarshalWithOptions(data, &ds, yaml.Strict()); err != nil {
		return Dataset{}, fmt.Errorf("シードファイルの解析に失敗しました: %w", err)
	}
	return ds, nil
}
