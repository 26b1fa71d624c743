package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Albiehao/kanban/internal/dto"
)

// SendAIMessage 发送一条消息给 AI 助手并返回回复
func (c *Client) SendAIMessage(ctx context.Context, req dto.AIChatRequest) (dto.AIMessage, error) {
	raw, err := c.do(ctx, http.MethodPost, "/ai/chat", req, requestOptions{})
	if err != nil {
		return dto.AIMessage{}, err
	}
	return dto.DecodeEnvelope[dto.AIMessage](raw)
}

// AIConversations 获取会话列表
func (c *Client) AIConversations(ctx context.Context) ([]dto.AIConversation, error) {
	raw, err := c.get(ctx, "/ai/conversations", requestOptions{})
	if err != nil {
		return nil, err
	}
	return dto.DecodeEnvelope[[]dto.AIConversation](raw)
}

// AIMessages 获取指定会话的消息记录
func (c *Client) AIMessages(ctx context.Context, conversationID int) ([]dto.AIMessage, error) {
	raw, err := c.get(ctx, fmt.Sprintf("/ai/conversations/%d/messages", conversationID), requestOptions{})
	if err != nil {
		return nil, err
	}
	return dto.DecodeEnvelope[[]dto.AIMessage](raw)
}

// CreateAIConversation 新建会话
func (c *Client) CreateAIConversation(ctx context.Context, title string) (dto.AIConversation, error) {
	body := map[string]string{"title": title}
	raw, err := c.do(ctx, http.MethodPost, "/ai/conversations", body, requestOptions{})
	if err != nil {
		return dto.AIConversation{}, err
	}
	return dto.DecodeEnvelope[dto.AIConversation](raw)
}

// DeleteAIConversation 删除会话
func (c *Client) DeleteAIConversation(ctx context.Context, conversationID int) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/ai/conversations/%d", conversationID), nil, requestOptions{})
	return err
}

// ClearAIConversation 清空会话消息
func (c *Client) ClearAIConversation(ctx context.Context, conversationID int) error {
	_, err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/ai/conversations/%d/clear", conversationID), nil, requestOptions{})
	return err
}
