package domain

// Category groups forum threads.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Slug        string `json:"slug"`
	ThreadCount int    `json:"threadCount,omitempty"`
	PostCount   int    `json:"postCount,omitempty"`
}

// Thread is a forum discussion thread.
type Thread struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Slug       string `json:"slug,omitempty"`
	Content    string `json:"content"`
	CategoryID string `json:"categoryId"`
	Author     *User  `json:"author,omitempty"`
	ViewCount  int    `json:"viewCount,omitempty"`
	PostCount  int    `json:"postCount,omitempty"`
	IsPinned   bool   `json:"isPinned,omitempty"`
	IsLocked   bool   `json:"isLocked,omitempty"`
	HasAnswer  bool   `json:"hasAnswer,omitempty"`
	CreatedAt  string `json:"createdAt,omitempty"`
	LastPostAt string `json:"lastPostAt,omitempty"`
}

// Post is a reply within a thread.
type Post struct {
	ID       string `json:"id"`
	Content  string `json:"content"`
	ThreadID string `json:"threadId"`
	Author   *User  `json:"author,omitempty"`
	ParentID string `json:"parentId,omitempty"`
	IsAnswer bool   `json:"isAnswer,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// Conversation is a direct-message thread between two users.
type Conversation struct {
	ID          string `json:"id"`
	Participant *User  `json:"participant,omitempty"`
	LastMessage string `json:"lastMessage,omitempty"`
	UnreadCount int    `json:"unreadCount,omitempty"`
	UpdatedAt   string `json:"updatedAt,omitempty"`
}

// Message is a single direct message.
type Message struct {
	ID             string `json:"id"`
	ConversationID string `json:"conversationId,omitempty"`
	SenderID       string `json:"senderId"`
	Content        string `json:"content"`
	CreatedAt      string `json:"createdAt,omitempty"`
}

// Notification is a user-facing alert from the platform.
type Notification struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Read      bool   `json:"read"`
	ActionURL string `json:"actionUrl,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// SearchResult is a single hit from the cross-resource search endpoint.
type SearchResult struct {
	Type      string `json:"type"`
	ID        string `json:"id"`
	Title     string `json:"title,omitempty"`
	Content   string `json:"content"`
	Author    *User  `json:"author,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}
