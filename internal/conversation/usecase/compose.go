package usecase

import (
	"context"
	"errors"
	"fmt"

	"maatricare/internal/model"
	"maatricare/pkg/llmprovider"
)

// render calls the renderer with the per-turn timeout. It returns the
// composed text, or fallback when the call fails; timedOut reports whether
// the failure was the deadline. The provider manager handles its own single
// retry, so no retry happens here.
func (uc *implUseCase) render(ctx context.Context, state *model.ConversationState, prompt, fallback string) (text string, timedOut bool) {
	rctx, cancel := context.WithTimeout(ctx, uc.cfg.RendererTimeout)
	defer cancel()

	req := &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role: "system",
			Text: fmt.Sprintf(promptSystem, stageLabel(state.Stage)),
		},
		Messages: append(historyMessages(state), llmprovider.Message{Role: "user", Text: prompt}),
	}

	resp, err := uc.renderer.GenerateContent(rctx, req)
	if err != nil {
		timedOut = errors.Is(err, context.DeadlineExceeded) || rctx.Err() != nil
		if timedOut {
			uc.l.Warnf(ctx, "conversation: renderer timed out after %s, using fallback", uc.cfg.RendererTimeout)
		} else {
			uc.l.Warnf(ctx, "conversation: renderer failed, using fallback: %v", err)
		}
		return fallback, timedOut
	}
	if resp.Content.Text == "" {
		uc.l.Warnf(ctx, "conversation: renderer returned empty text, using fallback")
		return fallback, false
	}
	return resp.Content.Text, false
}

// historyMessages converts recent turns into renderer context, oldest first.
func historyMessages(state *model.ConversationState) []llmprovider.Message {
	const contextTurns = 5

	turns := state.Turns
	if len(turns) > contextTurns {
		turns = turns[len(turns)-contextTurns:]
	}

	msgs := make([]llmprovider.Message, 0, len(turns)*2)
	for _, t := range turns {
		msgs = append(msgs,
			llmprovider.Message{Role: "user", Text: t.UserText},
			llmprovider.Message{Role: "assistant", Text: t.ReplyText},
		)
	}
	return msgs
}

func stageLabel(st model.Stage) string {
	switch st {
	case model.StageFirstTrimester:
		return "first trimester"
	case model.StageSecondTrimester:
		return "second trimester"
	case model.StageThirdTrimester:
		return "third trimester"
	case model.StagePostpartumEarly:
		return "early postpartum (first six weeks)"
	case model.StagePostpartumLate:
		return "postpartum"
	case model.StagePreconception:
		return "preconception"
	default:
		return "unknown pregnancy"
	}
}
