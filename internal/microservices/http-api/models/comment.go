package models

import (
	"regexp"
	"strconv"
	"time"
)

type Comment struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	MemberID  int64     `json:"member_id" gorm:"not null;index"`
	WebtoonID int64     `json:"webtoon_id" gorm:"not null;index"`
	EpisodeID int64     `json:"episode_id" gorm:"not null;index"`
	ParentID  *int64    `json:"parent_id,omitempty" gorm:"index"`
	Content   string    `json:"content" gorm:"not null;type:text"`
	Likes     int64     `json:"likes" gorm:"not null;default:0"`
	AdminID   int64     `json:"admin_id" gorm:"not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	// Associations
	Member  *Member  `json:"member,omitempty" gorm:"foreignKey:MemberID;constraint:OnDelete:CASCADE;"`
	Webtoon *Webtoon `json:"-" gorm:"foreignKey:WebtoonID;constraint:OnDelete:CASCADE;"`
	Episode *Episode `json:"-" gorm:"foreignKey:EpisodeID;constraint:OnDelete:CASCADE;"`
	Parent  *Comment `json:"-" gorm:"foreignKey:ParentID;constraint:OnDelete:CASCADE;"`
}

func (Comment) TableName() string {
	return "comments"
}

// legacy reply marker: "::p[<parentId>] <text>"
var parentMarker = regexp.MustCompile(`^::p\[(\d+)\]\s?`)

// LegacyParent extracts a parent id encoded inline in content by older
// clients and returns the display text without the marker.
func LegacyParent(content string) (parentID int64, text string, ok bool) {
	m := parentMarker.FindStringSubmatchIndex(content)
	if m == nil {
		return 0, content, false
	}
	id, err := strconv.ParseInt(content[m[2]:m[3]], 10, 64)
	if err != nil || id <= 0 {
		return 0, content, false
	}
	return id, content[m[1]:], true
}

// ResolvedParent returns the comment's parent id, preferring the column over the inline marker.
func (c *Comment) ResolvedParent() (int64, bool) {
	if c.ParentID != nil {
		return *c.ParentID, true
	}
	id, _, ok := LegacyParent(c.Content)
	return id, ok
}

// DisplayText is the content with any legacy marker removed.
func (c *Comment) DisplayText() string {
	_, text, _ := LegacyParent(c.Content)
	return text
}

type CommentReport struct {
	ID        int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	CommentID int64     `json:"comment_id" gorm:"not null;uniqueIndex:idx_report_comment_member"`
	MemberID  int64     `json:"member_id" gorm:"not null;uniqueIndex:idx_report_comment_member"`
	Reason    string    `json:"reason" gorm:"not null;size:100"`
	Detail    *string   `json:"detail,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`

	Comment *Comment `json:"-" gorm:"foreignKey:CommentID;constraint:OnDelete:CASCADE;"`
}

func (CommentReport) TableName() string {
	return "comment_reports"
}
