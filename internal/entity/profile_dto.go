package entity

// FirstProfileRequest starts a conversation from questionnaire answers.
type FirstProfileRequest struct {
	UserID    string   `json:"userId" validate:"required,notblank,max=128"`
	EventDesc string   `json:"eventDesc" validate:"required,notblank,max=4000"`
	Answer    []string `json:"answer" validate:"required,min=1,max=50,dive,max=500"`
}

// MapUpdateRequest extends the decision path with newly taken actions.
type MapUpdateRequest struct {
	UserID       string   `json:"userId" validate:"required,notblank,max=128"`
	NewDesc      string   `json:"newDesc" validate:"max=4000"`
	ActionsTaken []string `json:"actionsTaken" validate:"required,min=1,max=50,dive,required,notblank,max=200"`
}

// APIResponse is the envelope of every /api response.
type APIResponse struct {
	Code    int    `json:"code"`
	Data    any    `json:"data"`
	Message string `json:"message"`
}

// QuestionnaireDTO lists the questionnaire served to clients.
type QuestionnaireDTO struct {
	Questions []QuestionnaireItem `json:"questions"`
}

// ConversationDTO exposes a conversation record for diagnostics.
type ConversationDTO struct {
	UserID        string `json:"userId"`
	QuestionDesc  string `json:"questionDesc"`
	MentalProfile string `json:"mentalProfile"`
	ActionsTaken  string `json:"actionsTaken"`
}

const (
	CodeSuccess = 0
	CodeFailure = 1
)
