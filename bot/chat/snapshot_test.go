package chat

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"Bricklix/entity"
)

func TestSnapshotRoundTrip(t *testing.T) {
	s := NewSession("s1")
	s.IsOpen = true
	s.UpdateStep(StepMain)
	s.UpdateStep(StepServices)
	s.DetailID = "ai-integration"
	s.Lead = entity.Lead{Name: "Al", Email: "al@x.com"}
	s.AddBotText("Hello there", StepMain)
	s.AddUserMessage("Our Services")

	raw, err := EncodeSnapshot(s)
	require.NoError(t, err)

	restored := DecodeSnapshot("s1", raw)
	require.NotNil(t, restored)
	require.True(t, restored.IsOpen)
	require.Equal(t, StepServices, restored.CurrentStep)
	require.Equal(t, "ai-integration", restored.DetailID)
	require.Equal(t, s.Lead, restored.Lead)
	require.Equal(t, []Step{StepMain, StepServices}, restored.History)
	require.Len(t, restored.Messages, 2)
	require.Equal(t, "Hello there", restored.Messages[0].Content.Text)
	require.Equal(t, entity.SenderUser, restored.Messages[1].Sender)
}

func TestSnapshotDropsCardsAndPlaceholders(t *testing.T) {
	s := NewSession("s1")
	s.AddBotText("plain", StepMain)
	s.AddBotCard(entity.Card{Title: "A card", Body: "body"}, nil, StepServices)
	s.AddPlaceholder(StepChatMode)

	raw, err := EncodeSnapshot(s)
	require.NoError(t, err)

	restored := DecodeSnapshot("s1", raw)
	require.NotNil(t, restored)
	require.Len(t, restored.Messages, 1)
	require.Equal(t, "plain", restored.Messages[0].Content.Text)
}

func TestSnapshotMessageIDsStayMonotonic(t *testing.T) {
	s := NewSession("s1")
	first := s.AddBotText("one", StepMain)
	second := s.AddUserMessage("two")
	require.Greater(t, second.ID, first.ID)

	raw, err := EncodeSnapshot(s)
	require.NoError(t, err)

	restored := DecodeSnapshot("s1", raw)
	require.NotNil(t, restored)
	third := restored.AddBotText("three", StepMain)
	require.Greater(t, third.ID, second.ID)
}

func TestDecodeSnapshotRejectsMalformed(t *testing.T) {
	cases := map[string][]byte{
		"empty":           nil,
		"not json":        []byte("{nope"),
		"no messages":     []byte(`{"isOpen":true,"currentStep":"main"}`),
		"unknown step":    []byte(`{"messages":[],"currentStep":"wormhole"}`),
		"bad history":     []byte(`{"messages":[],"currentStep":"main","history":["collect_name"]}`),
		"unknown history": []byte(`{"messages":[],"currentStep":"main","history":["nowhere"]}`),
		"bad sender":      []byte(`{"messages":[{"id":1,"sender":"ghost","text":"hi"}],"currentStep":"main"}`),
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			require.Nil(t, DecodeSnapshot("s1", raw))
		})
	}
}

func TestDecodeSnapshotAcceptsMinimal(t *testing.T) {
	restored := DecodeSnapshot("s1", []byte(`{"messages":[]}`))
	require.NotNil(t, restored)
	require.Equal(t, StepMain, restored.CurrentStep)
	require.Empty(t, restored.Messages)
}

func TestSnapshotWireFormat(t *testing.T) {
	s := NewSession("s1")
	s.IsOpen = true
	s.UpdateStep(StepMain)
	s.AddBotText("hi", StepMain)

	raw, err := EncodeSnapshot(s)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &decoded))
	for _, key := range []string{"isOpen", "messages", "currentStep", "contactInfo", "isInputLocked", "history"} {
		require.Contains(t, decoded, key)
	}
}
