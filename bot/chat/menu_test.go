package chat

import (
	"testing"

	"github.com/stretchr/testify/require"

	"Bricklix/entity"
)

func labels(actions []entity.ActionRef) []string {
	out := make([]string, 0, len(actions))
	for _, a := range actions {
		out = append(out, a.Label)
	}
	return out
}

func TestAvailableActionsMainMenu(t *testing.T) {
	s := NewSession("s1")

	got := labels(AvailableActions(s))
	require.Equal(t, []string{"Our Services", "Knowledge Base (FAQ)", "Contact Sales"}, got)

	s.CurrentStep = StepChatMode
	require.Equal(t, got, labels(AvailableActions(s)))
}

func TestAvailableActionsServicesList(t *testing.T) {
	s := NewSession("s1")
	s.UpdateStep(StepServices)

	actions := AvailableActions(s)
	require.Len(t, actions, 1+len(entity.ServicesData))
	require.Equal(t, "Back", actions[0].Label)
	require.Equal(t, ActionServiceDetail, actions[1].Action)
	require.Equal(t, entity.ServicesData[0].ID, actions[1].DetailID)
}

func TestAvailableActionsServiceDetail(t *testing.T) {
	s := NewSession("s1")
	s.UpdateStep(StepServices)
	s.DetailID = "seo-optimization"

	got := labels(AvailableActions(s))
	require.Equal(t, []string{"Get Project Ideas", "Back to Services List", "Contact Sales"}, got)

	actions := AvailableActions(s)
	require.Equal(t, "SEO & Web Optimization", actions[0].ServiceName)
}

func TestAvailableActionsFAQDetail(t *testing.T) {
	s := NewSession("s1")
	s.UpdateStep(StepFAQDetail)
	s.DetailID = "faq-1"

	actions := AvailableActions(s)
	require.GreaterOrEqual(t, len(actions), 2)
	last := actions[len(actions)-1]
	require.Equal(t, "Main Menu", last.Label)
	require.Equal(t, "Back to All FAQs", actions[len(actions)-2].Label)
	for _, a := range actions[:len(actions)-2] {
		require.Equal(t, ActionFAQDetail, a.Action)
	}
}

func TestAvailableActionsHiddenWhileCollectingOrBusy(t *testing.T) {
	s := NewSession("s1")
	s.UpdateStep(StepCollectEmail)
	require.Nil(t, AvailableActions(s))

	s = NewSession("s1")
	s.Busy = true
	require.Nil(t, AvailableActions(s))

	s = NewSession("s1")
	s.CurrentStep = StepLeadSent
	require.Nil(t, AvailableActions(s))
}
