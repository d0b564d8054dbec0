package feishu

import (
	"context"
	"encoding/json"
	"fmt"

	lark "github.com/larksuite/oapi-sdk-go/v3"
	larkcore "github.com/larksuite/oapi-sdk-go/v3/core"
	larkim "github.com/larksuite/oapi-sdk-go/v3/service/im/v1"
)

// Client 周报推送客户端，把生成的周报作为文本消息发给配置的接收方
type Client struct {
	AppID         string
	AppSecret     string
	ReceiveID     string
	ReceiveIDType string // open_id / user_id / chat_id / email
	feishuClient  *lark.Client
}

// NewClient 创建飞书推送客户端，receiveIDType 留空默认 open_id
func NewClient(appID, appSecret, receiveID, receiveIDType string) *Client {
	if receiveIDType == "" {
		receiveIDType = "open_id"
	}
	return &Client{
		AppID:         appID,
		AppSecret:     appSecret,
		ReceiveID:     receiveID,
		ReceiveIDType: receiveIDType,
		feishuClient:  lark.NewClient(appID, appSecret),
	}
}

// SendReport 推送周报全文
// 文本消息的 content 要求是 {"text": "..."} 形式的 JSON 串
func (c *Client) SendReport(ctx context.Context, report string) error {
	content, err := json.Marshal(map[string]string{"text": report})
	if err != nil {
		return fmt.Errorf("marshal content error: %w", err)
	}

	req := larkim.NewCreateMessageReqBuilder().
		ReceiveIdType(c.ReceiveIDType).
		Body(larkim.NewCreateMessageReqBodyBuilder().
			ReceiveId(c.ReceiveID).
			MsgType("text").
			Content(string(content)).
			Build()).
		Build()

	resp, err := c.feishuClient.Im.V1.Message.Create(ctx, req)
	if err != nil {
		return fmt.Errorf("send message error: %w", err)
	}

	if !resp.Success() {
		return fmt.Errorf("send message failed: logId=%s, error=%s",
			resp.RequestId(), larkcore.Prettify(resp.CodeError))
	}

	return nil
}
