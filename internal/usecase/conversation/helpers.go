package conversation

import (
	"fmt"
	"strings"

	"github.com/theoyjy/IntelliMap/internal/entity"
)

// mergeTurn applies the user's input for a turn to the record.
// The initial turn replaces the question description; follow-ups only append to it.
func (uc *ConversationUsecase) mergeTurn(record *entity.ConversationRecord, turn Turn) {
	switch t := turn.(type) {
	case InitialProfileTurn:
		uc.mergeInitial(record, t)
	case *InitialProfileTurn:
		uc.mergeInitial(record, *t)
	case FollowUpTurn:
		mergeFollowUp(record, t)
	case *FollowUpTurn:
		mergeFollowUp(record, *t)
	}
}

func (uc *ConversationUsecase) mergeInitial(record *entity.ConversationRecord, t InitialProfileTurn) {
	record.QuestionDescription = "User asks this question: " + t.EventDescription + "\r\n"
	record.MentalAnswerNarrative = uc.narrateAnswers(t.Answers)
}

func mergeFollowUp(record *entity.ConversationRecord, t FollowUpTurn) {
	record.ActionsTaken = narrateActions(t.ActionsTaken)
	if strings.TrimSpace(t.NewDescription) != "" {
		record.QuestionDescription += "User added more information to the initial question: " + t.NewDescription + "\r\n"
	}
}

// narrateAnswers restates the questionnaire answers, pairing each with its question when known.
func (uc *ConversationUsecase) narrateAnswers(answers []string) string {
	var sb strings.Builder
	sb.WriteString("User answered the profiling questions as follows:\r\n")
	for i, answer := range answers {
		if i < len(uc.questionnaire) {
			sb.WriteString(fmt.Sprintf("Q%d: %s A: %s\r\n", i+1, uc.questionnaire[i].Text, answer))
			continue
		}
		sb.WriteString(fmt.Sprintf("A%d: %s\r\n", i+1, answer))
	}
	return sb.String()
}

// narrateActions lists the actions the user has selected on the decision path.
func narrateActions(actions []string) string {
	var sb strings.Builder
	sb.WriteString("User has selected the following actions:\r\n")
	for _, action := range actions {
		sb.WriteString(action)
		sb.WriteString("\r\n")
	}
	return sb.String()
}
