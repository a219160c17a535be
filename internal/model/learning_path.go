// internal/model/learning_path.go
package model

import (
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SkillLevel は学習者のレベルを表します
type SkillLevel string

const (
	SkillLevelBeginner     SkillLevel = "Beginner"
	SkillLevelIntermediate SkillLevel = "Intermediate"
	SkillLevelAdvanced     SkillLevel = "Advanced"
)

func (l SkillLevel) IsValid() bool {
	switch l {
	case SkillLevelBeginner, SkillLevelIntermediate, SkillLevelAdvanced:
		return true
	}
	return false
}

// Video はモジュールに紐づく学習動画のキャッシュレコードです
type Video struct {
	Title        string `json:"title"`
	Channel      string `json:"channel"`
	ThumbnailURL string `json:"thumbnail_url"`
	URL          string `json:"url"`
	PublishedAt  string `json:"published_at"`
}

// Repo はモジュールに紐づくGitHubリポジトリのキャッシュレコードです
type Repo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Stars       int    `json:"stars"`
	Language    string `json:"language"`
	Owner       string `json:"owner"`
}

// Module は学習パスの1ステップを表します。
// Videos/Repos は遅延取得されるリソースキャッシュで、一度埋まったら再取得しません。
type Module struct {
	ModuleID    uuid.UUID                  `gorm:"type:uuid;primaryKey" json:"module_id"`
	PathID      uuid.UUID                  `gorm:"type:uuid;not null;index" json:"-"`
	Position    int                        `gorm:"not null" json:"position"` // 学習順序 (0始まり)
	Title       string                     `gorm:"not null" json:"title"`
	Content     string                     `gorm:"not null" json:"content"`
	Duration    string                     `json:"duration"` // 例: "1 week", "3 days"
	IsCompleted bool                       `gorm:"not null;default:false" json:"is_completed"`
	Videos      datatypes.JSONSlice[Video] `json:"videos"`
	Repos       datatypes.JSONSlice[Repo]  `json:"repos"`
	CreatedAt   time.Time                  `json:"created_at"`
	UpdatedAt   time.Time                  `json:"updated_at"`
}

func (Module) TableName() string {
	return "modules"
}

// LearningPath はひとつの学習目標に対する学習パス全体を表します
type LearningPath struct {
	PathID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"path_id"`
	UserID           uuid.UUID  `gorm:"type:uuid;not null;index" json:"-"`
	Goal             string     `gorm:"not null" json:"goal"`
	SkillLevel       SkillLevel `gorm:"type:varchar(20);not null;default:'Beginner'" json:"skill_level"`
	Duration         string     `gorm:"not null" json:"duration"`         // 例: "3 months"
	DailyCommitment  string     `gorm:"not null" json:"daily_commitment"` // 1日あたりの学習時間
	TotalModules     int        `gorm:"not null;default:0" json:"total_modules"`
	CompletedModules int        `gorm:"not null;default:0" json:"completed_modules"`
	// 順序が意味を持つ (Position順 = 学習順)
	Modules   []Module  `gorm:"foreignKey:PathID;references:PathID" json:"modules,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (LearningPath) TableName() string {
	return "learning_paths"
}

// Progress は完了モジュール数から進捗率(0-100)を計算します
func (p *LearningPath) Progress() int {
	return CalcProgress(p.CompletedModules, p.TotalModules)
}

// CalcProgress は進捗率を四捨五入した整数で返します。total=0 のときは0。
func CalcProgress(completed, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(completed) / float64(total)))
}

// GeneratePathRequest は学習パス生成APIのリクエストDTO
type GeneratePathRequest struct {
	Goal            string `json:"goal" validate:"required,min=2,max=200"`
	SkillLevel      string `json:"skill_level" validate:"required,oneof=Beginner Intermediate Advanced"`
	Duration        string `json:"duration" validate:"required,max=50"`
	DailyCommitment string `json:"daily_commitment" validate:"required,max=50"`
}

// DraftModule は生成AIが返すモジュール草案です
type DraftModule struct {
	Title       string `json:"title"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

// ToggleModuleResponse はモジュール完了トグルAPIのレスポンスDTO
type ToggleModuleResponse struct {
	ModuleID         uuid.UUID `json:"module_id"`
	IsCompleted      bool      `json:"is_completed"`
	CompletedModules int       `json:"completed_modules"`
	TotalModules     int       `json:"total_modules"`
	Progress         int       `json:"progress"` // 0-100
}

// ResourceKind はモジュールに取得するリソースの種類です
type ResourceKind string

const (
	ResourceKindVideo ResourceKind = "video"
	ResourceKindRepo  ResourceKind = "repo"
)
