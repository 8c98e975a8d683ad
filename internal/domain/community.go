package domain

// PostCategory classifies a community post.
type PostCategory string

const (
	PostService      PostCategory = "SERVICE"
	PostIssue        PostCategory = "ISSUE"
	PostQuestion     PostCategory = "QUESTION"
	PostAnnouncement PostCategory = "ANNOUNCEMENT"
)

// CommunityPost is a neighborhood discussion post.
type CommunityPost struct {
	ID             string        `json:"id"`
	Title          string        `json:"title"`
	Content        string        `json:"content"`
	Category       PostCategory  `json:"category"`
	Images         []string      `json:"images,omitempty"`
	Author         *User         `json:"author,omitempty"`
	NeighborhoodID string        `json:"neighborhoodId,omitempty"`
	Neighborhood   *Neighborhood `json:"neighborhood,omitempty"`
	IsPinned       bool          `json:"isPinned,omitempty"`
	IsLocked       bool          `json:"isLocked,omitempty"`
	ViewCount      int           `json:"viewCount,omitempty"`
	CommentCount   int           `json:"commentCount,omitempty"`
	LikeCount      int           `json:"likeCount,omitempty"`
	IsLiked        bool          `json:"isLiked,omitempty"`
	Tags           []string      `json:"tags,omitempty"`
	CreatedAt      string        `json:"createdAt,omitempty"`
}

// NewCommunityPost carries the fields for creating a post.
type NewCommunityPost struct {
	Title          string       `json:"title" validate:"required,min=3,max=200"`
	Content        string       `json:"content" validate:"required"`
	Category       PostCategory `json:"category" validate:"required,oneof=SERVICE ISSUE QUESTION ANNOUNCEMENT"`
	Images         []string     `json:"images,omitempty"`
	Tags           []string     `json:"tags,omitempty"`
	NeighborhoodID string       `json:"neighborhoodId,omitempty"`
}

// CommunityComment is a threaded comment on a community post.
type CommunityComment struct {
	ID        string             `json:"id"`
	PostID    string             `json:"postId"`
	UserID    string             `json:"userId"`
	User      *User              `json:"user,omitempty"`
	Content   string             `json:"content"`
	ParentID  string             `json:"parentId,omitempty"`
	Replies   []CommunityComment `json:"replies,omitempty"`
	LikeCount int                `json:"likeCount,omitempty"`
	CreatedAt string             `json:"createdAt,omitempty"`
}
