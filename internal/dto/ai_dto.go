package dto

type TrendsRequest struct {
	Prompt string `json:"prompt"`
}

type Trend struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Growth      string `json:"growth"`
	Opportunity string `json:"opportunity"`
}

type TrendsResponse struct {
	Success bool    `json:"success"`
	Data    []Trend `json:"data"`
	Source  string  `json:"source"`
}

type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatRequest struct {
	IdeaID  string     `json:"ideaId" validate:"required,uuid"`
	Message string     `json:"message" validate:"required,max=2000"`
	History []ChatTurn `json:"history" validate:"omitempty,max=50"`
}

type ChatReply struct {
	Reply string `json:"reply"`
}

// ChatResponse carries either Data or Error; the client chooses its own fallback text.
type ChatResponse struct {
	Success bool       `json:"success"`
	Data    *ChatReply `json:"data,omitempty"`
	Error   string     `json:"error,omitempty"`
}

type UploadResponse struct {
	URL        string `json:"url"`
	ObjectName string `json:"objectName"`
}
