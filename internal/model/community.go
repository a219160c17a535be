// internal/model/community.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// PublicationKind はコミュニティレコードの種別（オリジナル公開かフォークか）です。
// DB上は SourceLearningPathID / ParentPathID のどちらが入っているかで判別しますが、
// アプリケーション層ではこのタグ付きの型で明示的に扱います。
type PublicationKind string

const (
	PublicationOriginal PublicationKind = "original"
	PublicationFork     PublicationKind = "fork"
)

// CommunityPath は学習パスのコミュニティへの公開/フォークを表します。
// goal や level などの説明フィールドは公開時点のスナップショットで、
// 元の学習パスが後から編集・削除されても追従しません。
type CommunityPath struct {
	CommunityPathID uuid.UUID  `gorm:"type:uuid;primaryKey" json:"community_path_id"`
	Goal            string     `gorm:"not null" json:"goal"`
	Level           SkillLevel `gorm:"type:varchar(20);not null" json:"level"`
	Duration        string     `gorm:"not null" json:"duration"`
	ModulesCount    int        `gorm:"not null" json:"modules_count"`
	CreatorID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"creator_id"`

	// オリジナル公開のときだけ設定される。非NULL値に対するユニーク制約で
	// 同一学習パスの二重公開を防ぐ（チェックはINSERT自体が兼ねる）。
	SourceLearningPathID *uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"source_learning_path_id,omitempty"`
	// フォークのときだけ設定される。コピー元の学習パスを指す。
	ParentPathID *uuid.UUID `gorm:"type:uuid;index" json:"parent_path_id,omitempty"`
	// フォークツリーの最上位祖先の学習パスID。公開/フォーク時に確定させ、
	// 深さに関わらずO(1)でルートを引けるようにする（親を再帰的に辿らない）。
	RootPathID uuid.UUID `gorm:"type:uuid;not null;index" json:"root_path_id"`

	UpvotesCount  int `gorm:"not null;default:0" json:"upvotes_count"`
	CommentsCount int `gorm:"not null;default:0" json:"comments_count"`
	ForksCount    int `gorm:"not null;default:0" json:"forks_count"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (CommunityPath) TableName() string {
	return "community_paths"
}

// Kind はレコードの種別を返します
func (c *CommunityPath) Kind() PublicationKind {
	if c.ParentPathID != nil {
		return PublicationFork
	}
	return PublicationOriginal
}

// IsConsistent は source/parent がちょうど片方だけ設定されているかを検証します
func (c *CommunityPath) IsConsistent() bool {
	return (c.SourceLearningPathID != nil) != (c.ParentPathID != nil)
}

// Upvote はユーザーのアップボートを表します。
// (UserID, CommunityPathID) の複合主キーで1ユーザー1票を保証し、
// この行の存在がアップボート状態の唯一の真実です。
type Upvote struct {
	UserID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	CommunityPathID uuid.UUID `gorm:"type:uuid;primaryKey;index" json:"community_path_id"`
	CreatedAt       time.Time `json:"created_at"`
}

func (Upvote) TableName() string {
	return "upvotes"
}

// Comment はコミュニティ学習パスへのコメントです (追記のみ)
type Comment struct {
	CommentID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"comment_id"`
	CommunityPathID uuid.UUID `gorm:"type:uuid;not null;index" json:"community_path_id"`
	UserID          uuid.UUID `gorm:"type:uuid;not null" json:"user_id"`
	Text            string    `gorm:"not null" json:"text"`
	CreatedAt       time.Time `json:"created_at"`
}

func (Comment) TableName() string {
	return "comments"
}

// AddCommentRequest はコメント投稿APIのリクエストDTO
type AddCommentRequest struct {
	Text string `json:"text" validate:"required,min=1,max=2000"`
}

// ToggleUpvoteResponse はアップボートトグルAPIのレスポンスDTO
type ToggleUpvoteResponse struct {
	Upvoted      bool `json:"upvoted"`
	UpvotesCount int  `json:"upvotes_count"`
}

// ForkResponse はフォークAPIのレスポンスDTO
type ForkResponse struct {
	ForkedPath    *LearningPath  `json:"forked_path"`
	CommunityPath *CommunityPath `json:"community_path"`
}

// CommunityPathDetails は詳細取得APIのレスポンスDTO。
// コミュニティレコードの説明フィールドはスナップショットのため、
// ルート祖先の学習パス本体も合わせて返し、フォークの閲覧者にも
// オリジナルの最新コンテンツを見せられるようにします。
type CommunityPathDetails struct {
	CommunityPath *CommunityPath `json:"community_path"`
	OriginalPath  *LearningPath  `json:"original_path,omitempty"`
}

// CommunityPathList はページネーション付き一覧のレスポンスDTO
type CommunityPathList struct {
	Items      []*CommunityPath `json:"items"`
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
}
