package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// Patch リクエストボディのキーと生のJSON値
type Patch map[string]json.RawMessage

// FieldError 作成・更新リクエストのフィールドエラー
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	if e.Message == "unknown field" {
		return fmt.Sprintf("unknown field %q", e.Field)
	}
	return fmt.Sprintf("field %q %s", e.Field, e.Message)
}

type setter[T any] func(dst *T, raw json.RawMessage) error

// FieldSet エンティティごとの書き込み可能なフィールド一覧
type FieldSet[T any] struct {
	setters  map[string]setter[T]
	required []string
}

// Apply パッチに含まれるキーだけを dst に反映
//
// 含まれないフィールドは変更しない。未知のキーと型の不一致はエラー。
func (fs FieldSet[T]) Apply(dst *T, patch Patch) error {
	keys := make([]string, 0, len(patch))
	for key := range patch {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	// 途中で失敗した場合に dst を中途半端に書き換えない
	staged := *dst
	for _, key := range keys {
		set, ok := fs.setters[key]
		if !ok {
			return &FieldError{Field: key, Message: "unknown field"}
		}
		if err := set(&staged, patch[key]); err != nil {
			return err
		}
	}
	*dst = staged
	return nil
}

// New 必須フィールドを確認してから新しいエンティティを作成
func (fs FieldSet[T]) New(patch Patch) (*T, error) {
	for _, name := range fs.required {
		if _, ok := patch[name]; !ok {
			return nil, &FieldError{Field: name, Message: "is required"}
		}
	}

	var dst T
	if err := fs.Apply(&dst, patch); err != nil {
		return nil, err
	}
	return &dst, nil
}

func isNull(raw json.RawMessage) bool {
	return len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func requiredString[T any](name string, field func(*T) *string) setter[T] {
	return func(dst *T, raw json.RawMessage) error {
		if isNull(raw) {
			return &FieldError{Field: name, Message: "cannot be null"}
		}
		var v string
		if err := json.Unmarshal(raw, &v); err != nil {
			return &FieldError{Field: name, Message: "must be a string"}
		}
		*field(dst) = v
		return nil
	}
}

func optionalString[T any](name string, field func(*T) **string) setter[T] {
	return func(dst *T, raw json.RawMessage) error {
		if isNull(raw) {
			*field(dst) = nil
			return nil
		}
		var v string
		if err := json.Unmarshal(raw, &v); err != nil {
			return &FieldError{Field: name, Message: "must be a string or null"}
		}
		*field(dst) = &v
		return nil
	}
}

func optionalInt[T any](name string, field func(*T) **int) setter[T] {
	return func(dst *T, raw json.RawMessage) error {
		if isNull(raw) {
			*field(dst) = nil
			return nil
		}
		var v int
		if err := json.Unmarshal(raw, &v); err != nil {
			return &FieldError{Field: name, Message: "must be an integer or null"}
		}
		*field(dst) = &v
		return nil
	}
}

// PlanetFields 惑星の書き込み可能フィールド
var PlanetFields = FieldSet[Planet]{
	setters: map[string]setter[Planet]{
		"name":       requiredString("name", func(p *Planet) *string { return &p.Name }),
		"climate":    optionalString("climate", func(p *Planet) **string { return &p.Climate }),
		"population": optionalInt("population", func(p *Planet) **int { return &p.Population }),
		"terrain":    optionalString("terrain", func(p *Planet) **string { return &p.Terrain }),
		"diameter":   optionalString("diameter", func(p *Planet) **string { return &p.Diameter }),
	},
	required: []string{"name"},
}

// CharacterFields 登場人物の書き込み可能フィールド
var CharacterFields = FieldSet[Character]{
	setters: map[string]setter[Character]{
		"name":       requiredString("name", func(c *Character) *string { return &c.Name }),
		"gender":     optionalString("gender", func(c *Character) **string { return &c.Gender }),
		"height":     optionalInt("height", func(c *Character) **int { return &c.Height }),
		"mass":       optionalInt("mass", func(c *Character) **int { return &c.Mass }),
		"hair_color": optionalString("hair_color", func(c *Character) **string { return &c.HairColor }),
		"eye_color":  optionalString("eye_color", func(c *Character) **string { return &c.EyeColor }),
		"birth_year": optionalString("birth_year", func(c *Character) **string { return &c.BirthYear }),
	},
	required: []string{"name"},
}
