package profile

import "github.com/theoyjy/IntelliMap/internal/entity"

// toConversationDTO converts ConversationRecord entity to ConversationDTO
func toConversationDTO(record *entity.ConversationRecord) *entity.ConversationDTO {
	return &entity.ConversationDTO{
		UserID:        record.UserID,
		QuestionDesc:  record.QuestionDescription,
		MentalProfile: record.MentalProfile,
		ActionsTaken:  record.ActionsTaken,
	}
}

func toQuestionnaireDTO(questions []entity.QuestionnaireItem) *entity.QuestionnaireDTO {
	if questions == nil {
		questions = []entity.QuestionnaireItem{}
	}
	return &entity.QuestionnaireDTO{Questions: questions}
}

// toResultData keeps actions and preRes as arrays even when the model returned none.
func toResultData(result *entity.RecommendationResult) *entity.RecommendationResult {
	out := *result
	if out.Actions == nil {
		out.Actions = []string{}
	}
	if out.Outcomes == nil {
		out.Outcomes = []entity.Outcome{}
	}
	return &out
}
