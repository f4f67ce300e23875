package conversation

import (
	"strings"

	"github.com/theoyjy/IntelliMap/internal/entity"
)

// Keys of the JSON object the model is asked to produce. The interpreter reads the same keys.
const (
	keyData          = "data"
	keyActions       = "actions"
	keyPredictions   = "preRes"
	keyDescription   = "des"
	keyProbability   = "prob"
	keyMentalProfile = "mentalProfile"
)

// Turn is one kind of conversational turn. Implementations are InitialProfileTurn and FollowUpTurn.
type Turn interface {
	Kind() string
	isTurn()
}

// InitialProfileTurn opens a conversation from the questionnaire answers.
type InitialProfileTurn struct {
	EventDescription string
	Answers          []string
}

func (InitialProfileTurn) Kind() string { return "initial_profile" }
func (InitialProfileTurn) isTurn()      {}

// FollowUpTurn reports the actions the user picked on the decision path.
type FollowUpTurn struct {
	NewDescription string
	ActionsTaken   []string
}

func (FollowUpTurn) Kind() string { return "follow_up" }
func (FollowUpTurn) isTurn()      {}

func isFollowUp(turn Turn) bool {
	switch turn.(type) {
	case FollowUpTurn, *FollowUpTurn:
		return true
	}
	return false
}

const responseFormat = "A JSON object named \"" + keyData + "\" contains two lists and one attribute. " +
	"The list named \"" + keyActions + "\" contains the 3 most recommended actions as strings; the more recommended an action is, the lower its index. " +
	"The list named \"" + keyPredictions + "\" contains the 3 most likely predicted outcomes; the more likely an outcome is, the lower its index. " +
	"Each predicted outcome is an object with two attributes: \"" + keyDescription + "\" describing the outcome (at most 30 words) " +
	"and \"" + keyProbability + "\", the probability of the outcome as a number between 0 and 100. " +
	"The last attribute of \"" + keyData + "\" is \"" + keyMentalProfile + "\", a string describing the core mental features of the user.\r\n" +
	"Example: {\"" + keyData + "\":{\"" + keyActions + "\":[\"...\",\"...\",\"...\"],\"" + keyPredictions + "\":[{\"" + keyDescription + "\":\"...\",\"" + keyProbability + "\":50}],\"" + keyMentalProfile + "\":\"...\"}}\r\n"

const initialProfileInstruction = "You are an intelligent decision-making assistant. Your task is to:\r\n" +
	"1. Analyze the user's profile based on the provided answers to the profiling questions.\r\n" +
	"2. Understand and analyze the user's current problem, using the user's description and profile.\r\n" +
	"3. Generate 3 recommended actions that the user can take to address the issue, each action limited to 3 words.\r\n" +
	"4. Assume that the user has taken the most optimal action and predict the 3 most likely outcomes.\r\n" +
	"5. Provide a probability for each predicted outcome (totaling 100).\r\n" +
	"6. Reply only with JSON in the following format so it can be parsed:\r\n" +
	responseFormat

const followUpInstruction = "You are an intelligent decision-making assistant. Your task is to:\r\n" +
	"1. Update the user's mental profile based on the profile passed to you, the questions the user asked and the actions the user has taken.\r\n" +
	"2. Understand and analyze the user's current problem, using the user's description and profile.\r\n" +
	"3. Generate 3 recommended actions that the user can take to address the issue, each action limited to 3 words.\r\n" +
	"4. Assume that the user has taken the most optimal action and predict the 3 most likely outcomes.\r\n" +
	"5. Provide a probability for each predicted outcome (totaling 100).\r\n" +
	"6. Reply only with JSON in the following format, without a ```json fence, so it can be parsed:\r\n" +
	responseFormat

// ComposePrompt builds the model instruction for a turn from the conversation record.
func ComposePrompt(record *entity.ConversationRecord, turn Turn) string {
	var sb strings.Builder

	switch turn.(type) {
	case InitialProfileTurn, *InitialProfileTurn:
		sb.WriteString(initialProfileInstruction)
		sb.WriteString(record.QuestionDescription)
		sb.WriteString(record.MentalAnswerNarrative)
	case FollowUpTurn, *FollowUpTurn:
		sb.WriteString(followUpInstruction)
		sb.WriteString(record.QuestionDescription)
		if record.MentalProfile != "" {
			sb.WriteString("Current mental profile of the user: ")
			sb.WriteString(record.MentalProfile)
			sb.WriteString("\r\n")
		}
		sb.WriteString(record.ActionsTaken)
	}

	return sb.String()
}
