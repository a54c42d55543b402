package model

type SenderRole string

const (
	SenderRolePatient     SenderRole = "patient"
	SenderRoleHospital    SenderRole = "hospital"
	SenderRoleFacilitator SenderRole = "facilitator"
	SenderRoleAdmin       SenderRole = "admin"
)

type MessageType string

const (
	MessageTypeText MessageType = "text"
	MessageTypeFile MessageType = "file"
)

type ChatMessage struct {
	Base
	RoomID     string      `json:"room_id"`
	SenderID   string      `json:"sender_id"`
	SenderRole SenderRole  `json:"sender_role"`
	Content    string      `json:"content"`
	Type       MessageType `json:"type"`
}

func (*ChatMessage) Collection() string { return "chatmessage" }

type SendMessageRequest struct {
	RoomID     string `json:"room_id" binding:"required"`
	SenderID   string `json:"sender_id" binding:"required"`
	SenderRole string `json:"sender_role" binding:"omitempty,oneof=patient hospital facilitator admin"`
	Content    string `json:"content" binding:"required"`
	Type       string `json:"type" binding:"omitempty,oneof=text file"`
}

func (r *SendMessageRequest) ChatMessage() *ChatMessage {
	m := &ChatMessage{
		RoomID:     r.RoomID,
		SenderID:   r.SenderID,
		SenderRole: SenderRole(r.SenderRole),
		Content:    r.Content,
		Type:       MessageType(r.Type),
	}
	if m.SenderRole == "" {
		m.SenderRole = SenderRolePatient
	}
	if m.Type == "" {
		m.Type = MessageTypeText
	}
	return m
}
