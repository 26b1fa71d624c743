package dto

// AIMessage AI 助手消息
type AIMessage struct {
	ID             int    `json:"id"`
	ConversationID int    `json:"conversation_id,omitempty"`
	Role           string `json:"role"` // user | assistant
	Content        string `json:"content"`
	Timestamp      string `json:"timestamp,omitempty"`
}

// AIConversation AI 助手会话
type AIConversation struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// AIChatRequest 发送消息请求
type AIChatRequest struct {
	ConversationID int    `json:"conversation_id,omitempty"`
	Message        string `json:"message"`
}
