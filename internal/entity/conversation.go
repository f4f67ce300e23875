package entity

import "time"

// ConversationRecord is the per-user state carried between turns.
type ConversationRecord struct {
	UserID                string    `json:"user_id"`
	QuestionDescription   string    `json:"question_description,omitempty"`
	MentalProfile         string    `json:"mental_profile,omitempty"`
	ActionsTaken          string    `json:"actions_taken,omitempty"`
	MentalAnswerNarrative string    `json:"mental_answer_narrative,omitempty"`
	CreatedAt             time.Time `json:"created_at"`
	UpdatedAt             time.Time `json:"updated_at"`
}

// Initialized reports whether an initial profiling turn has populated the record.
func (r *ConversationRecord) Initialized() bool {
	return r != nil && r.QuestionDescription != ""
}

// Clone returns a detached copy of the record.
func (r *ConversationRecord) Clone() *ConversationRecord {
	if r == nil {
		return nil
	}
	clone := *r
	return &clone
}
