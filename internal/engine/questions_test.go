package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liliang-cn/datagenie/internal/domain"
)

func TestFollowUpQuestionLengths(t *testing.T) {
	assert.Len(t, FollowUpQuestions(domain.IntentRetail), 4)
	assert.Len(t, FollowUpQuestions(domain.IntentProperty), 4)
	assert.Len(t, FollowUpQuestions(domain.IntentSchool), 5)
	assert.Len(t, FollowUpQuestions(domain.IntentGeneric), 4)
}

func TestFollowUpQuestionsUnknownIntent(t *testing.T) {
	assert.Empty(t, FollowUpQuestions(domain.Intent("bogus")))
}

func TestRetailQuestionOrderAndRequired(t *testing.T) {
	questions := FollowUpQuestions(domain.IntentRetail)
	require.Len(t, questions, 4)

	keys := []domain.AnswerKey{
		questions[0].AnswerKey, questions[1].AnswerKey,
		questions[2].AnswerKey, questions[3].AnswerKey,
	}
	assert.Equal(t, []domain.AnswerKey{
		domain.KeyGeography, domain.KeyCatchment, domain.KeyFocus, domain.KeyAnchor,
	}, keys)

	assert.True(t, questions[0].Required)
	assert.True(t, questions[1].Required)
	assert.True(t, questions[2].Required)
	assert.False(t, questions[3].Required)
}

func TestAnchorQuestionHasNoneChip(t *testing.T) {
	questions := FollowUpQuestions(domain.IntentRetail)
	anchor := questions[3]
	require.Equal(t, domain.QuestionChips, anchor.Type)
	require.Len(t, anchor.Chips, 4)
	assert.Nil(t, anchor.Chips[3].Value)
	assert.Equal(t, "None", anchor.Chips[3].Label)
}

func TestSchoolQuestionTypes(t *testing.T) {
	questions := FollowUpQuestions(domain.IntentSchool)
	require.Len(t, questions, 5)
	assert.Equal(t, domain.QuestionText, questions[0].Type)
	assert.Equal(t, domain.QuestionChips, questions[1].Type)
	assert.Equal(t, domain.QuestionNumber, questions[2].Type)
}
