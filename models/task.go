package models

import (
	"encoding/json"

	"github.com/uptrace/bun"
)

// AdTask is one promotional-post placement. The table and its column names
// predate this service (the panel's bot writes to the same table), so the
// model maps the legacy columns to the JSON names the admin panel uses.
type AdTask struct {
	bun.BaseModel `bun:"table:ads_tasks_v2"`

	ID                int64  `bun:"id,pk,autoincrement" json:"id"`
	ChannelName       string `bun:"channel_name,nullzero" json:"channel_name"`
	ChannelLink       string `bun:"channel_url,nullzero" json:"channel_link"`
	AdminName         string `bun:"admin_username,nullzero" json:"admin_name"`
	AdvertiserName    string `bun:"advertiser_name,nullzero" json:"advertiser_name"`
	AdvertiserUser    string `bun:"advertiser_username,nullzero" json:"advertiser_user"`
	ChatID            *int64 `bun:"chat_id" json:"chat_id"`
	AdvertiserBotUser string `bun:"advertiser_bot_username,nullzero" json:"advertiser_bot_user"`
	PostLink          string `bun:"post_url,nullzero" json:"post_link"`
	ScreenshotLink    string `bun:"screenshot_url,nullzero" json:"screenshot_link"`
	Sent              bool   `bun:"sent" json:"sent"`
}

// TaskColumns maps updatable JSON field names to their storage columns.
// Anything outside this map is dropped from update requests.
var TaskColumns = map[string]string{
	"channel_name":        "channel_name",
	"channel_link":        "channel_url",
	"admin_name":          "admin_username",
	"advertiser_name":     "advertiser_name",
	"advertiser_user":     "advertiser_username",
	"chat_id":             "chat_id",
	"advertiser_bot_user": "advertiser_bot_username",
	"post_link":           "post_url",
	"screenshot_link":     "screenshot_url",
	"sent":                "sent",
}

// CreateTaskRequest is the POST /api/tasks body. chat_id and sent stay raw
// because the panel sends them as strings as often as their native types.
type CreateTaskRequest struct {
	ChannelName       string          `json:"channel_name"`
	ChannelLink       string          `json:"channel_link"`
	AdminName         string          `json:"admin_name"`
	AdvertiserName    string          `json:"advertiser_name"`
	AdvertiserUser    string          `json:"advertiser_user"`
	ChatID            json.RawMessage `json:"chat_id"`
	AdvertiserBotUser string          `json:"advertiser_bot_user"`
	PostLink          string          `json:"post_link"`
	ScreenshotLink    string          `json:"screenshot_link"`
	Sent              json.RawMessage `json:"sent"`
}

// Task applies the coercion rules and returns the row to upsert.
func (r *CreateTaskRequest) Task() *AdTask {
	return &AdTask{
		ChannelName:       r.ChannelName,
		ChannelLink:       r.ChannelLink,
		AdminName:         r.AdminName,
		AdvertiserName:    r.AdvertiserName,
		AdvertiserUser:    r.AdvertiserUser,
		ChatID:            ParseChatID(r.ChatID),
		AdvertiserBotUser: r.AdvertiserBotUser,
		PostLink:          r.PostLink,
		ScreenshotLink:    r.ScreenshotLink,
		Sent:              ParseSent(r.Sent),
	}
}
