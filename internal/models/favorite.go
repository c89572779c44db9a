package models

import (
	"fmt"

	"gorm.io/gorm"
)

// ResourceType お気に入りの対象種別
type ResourceType string

const (
	ResourceTypePlanet    ResourceType = "planet"
	ResourceTypeCharacter ResourceType = "character"
)

// Valid 既知の種別かどうか
func (t ResourceType) Valid() bool {
	return t == ResourceTypePlanet || t == ResourceTypeCharacter
}

// Resource お気に入りの対象（惑星または登場人物）
//
// DB上は resource_type と resource_id の2カラムで保持する。
// 対象行の存在は確認しない。
type Resource struct {
	kind ResourceType
	id   uint
}

// PlanetResource 惑星を対象とするResource
func PlanetResource(id uint) Resource {
	return Resource{kind: ResourceTypePlanet, id: id}
}

// CharacterResource 登場人物を対象とするResource
func CharacterResource(id uint) Resource {
	return Resource{kind: ResourceTypeCharacter, id: id}
}

// Type 種別
func (r Resource) Type() ResourceType {
	return r.kind
}

// ID 対象のID
func (r Resource) ID() uint {
	return r.id
}

func (r Resource) String() string {
	return fmt.Sprintf("%s(%d)", r.kind, r.id)
}

// Favorite お気に入りモデル
type Favorite struct {
	ID           uint         `json:"id" gorm:"primaryKey"`
	UserID       uint         `json:"user_id" gorm:"not null;index"`
	ResourceType ResourceType `json:"resource_type" gorm:"size:50;not null"`
	ResourceID   uint         `json:"resource_id" gorm:"not null"`
}

// TableName テーブル名指定
func (Favorite) TableName() string {
	return "favorite"
}

// NewFavorite ユーザーとResourceからお気に入りを作成
func NewFavorite(userID uint, r Resource) *Favorite {
	return &Favorite{
		UserID:       userID,
		ResourceType: r.Type(),
		ResourceID:   r.ID(),
	}
}

// BeforeSave 不正な種別を保存しない
func (f *Favorite) BeforeSave(tx *gorm.DB) error {
	if !f.ResourceType.Valid() {
		return fmt.Errorf("invalid favorite resource type %q", f.ResourceType)
	}
	return nil
}
