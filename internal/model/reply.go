package model

// ReplyRequest is the POST body of the reply endpoint
type ReplyRequest struct {
	PostText string   `json:"postText"`
	PostURL  string   `json:"postUrl,omitempty"`
	Preset   string   `json:"preset,omitempty"`
	Seed     *float64 `json:"seed,omitempty"`
}

// ReplyResult is a generated reply and the preset actually used
type ReplyResult struct {
	Reply  string `json:"reply"`
	Preset string `json:"preset"`
}
