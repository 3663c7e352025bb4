package event

import "time"

type ContentEventType string

const (
	EventCreated       ContentEventType = "created"
	EventUpdated       ContentEventType = "updated"
	EventDeleted       ContentEventType = "deleted"
	EventPhotoUploaded ContentEventType = "photo.uploaded"
)

const (
	EntityProfile     = "profile"
	EntitySkill       = "skill"
	EntityEducation   = "education"
	EntityCertificate = "certificate"
	EntityTool        = "tool"
	EntitySocialMedia = "social_media"
	EntityProject     = "project"
)

type ContentEventPayload struct {
	EventType  ContentEventType `json:"event_type"`
	Entity     string           `json:"entity"`
	EntityID   int64            `json:"entity_id,omitempty"`
	PhotoKey   string           `json:"photo_key,omitempty"`
	PhotoURL   string           `json:"photo_url,omitempty"`
	OccurredAt time.Time        `json:"occurred_at"`
}
