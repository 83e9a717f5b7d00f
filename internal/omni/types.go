package omni

// SendTextRequest is the body of POST /api/v1/instance/{name}/send-text.
// Empty recipient fields are left out of the JSON entirely.
type SendTextRequest struct {
	PhoneNumber string `json:"phone_number,omitempty"`
	UserID      string `json:"user_id,omitempty"`
	Text        string `json:"text"`
}

// SendTextResponse is what the gateway returns for a 2xx send.
type SendTextResponse struct {
	Success   bool    `json:"success"`
	MessageID *string `json:"message_id"`
	Status    string  `json:"status"`
	Error     *string `json:"error"`
}

// GetMessageID returns the message id or "" when the gateway sent none.
func (r *SendTextResponse) GetMessageID() string {
	if r == nil || r.MessageID == nil {
		return ""
	}
	return *r.MessageID
}

// GetError returns the gateway error text or "".
func (r *SendTextResponse) GetError() string {
	if r == nil || r.Error == nil {
		return ""
	}
	return *r.Error
}

// InstanceInfo describes one channel instance configured on the gateway.
type InstanceInfo struct {
	InstanceName string `json:"instance_name"`
	ChannelType  string `json:"channel_type"`
	DisplayName  string `json:"display_name"`
	Status       string `json:"status"`
	IsHealthy    bool   `json:"is_healthy"`
}

// instancesEnvelope is the wire shape of GET /api/v1/instances/.
type instancesEnvelope struct {
	Channels []InstanceInfo `json:"channels"`
}

// unwrap returns the channels in the order the gateway sent them.
func (e instancesEnvelope) unwrap() []InstanceInfo {
	if e.Channels == nil {
		return []InstanceInfo{}
	}
	return e.Channels
}
