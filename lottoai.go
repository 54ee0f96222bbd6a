package main

import (
	"context"
	"fmt"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/core"
	"github.com/firebase/genkit/go/genkit"
	"github.com/firebase/genkit/go/plugins/googlegenai"
	"github.com/goccy/go-yaml"

	"github.com/suapapa/lotto645/internal/lotto"
)

type Lucky struct {
	Picks [][]int `json:"picks" yaml:"picks"`
}

// LottoAI asks a Gemini model for number sets, grounded on recent draws.
type LottoAI struct {
	PickLuckyNumsFlow *core.Flow[int, Lucky, struct{}]
}

func NewLottoAI(ctx context.Context, model string, prompt *Prompt, history WinningHistory) (*LottoAI, error) {
	if prompt == nil {
		return nil, fmt.Errorf("missing prompt")
	}

	g, err := genkit.Init(ctx,
		genkit.WithPlugins(
			&googlegenai.GoogleAI{},
		),
		genkit.WithDefaultModel(model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Genkit: %w", err)
	}

	docs, err := historyDocs(prompt.Retrieve, history)
	if err != nil {
		return nil, err
	}

	pickNumFlow := genkit.DefineFlow(
		g, "pickLuckyNumsFlow",
		func(ctx context.Context, cnt int) (Lucky, error) {
			s, _, err := genkit.GenerateData[Lucky](
				ctx, g,
				ai.WithDocs(docs...),
				ai.WithSystem(prompt.System),
				ai.WithPrompt(fmt.Sprintf(prompt.User, cnt)),
			)
			if err != nil {
				return Lucky{}, fmt.Errorf("failed to generate lucky numbers: %w", err)
			}
			if s == nil {
				return Lucky{}, fmt.Errorf("empty model output")
			}
			return *s, nil
		},
	)

	return &LottoAI{PickLuckyNumsFlow: pickNumFlow}, nil
}

// historyDocs turns draws into YAML documents for the model, led by an
// optional preamble.
func historyDocs(preamble string, history WinningHistory) ([]*ai.Document, error) {
	docs := make([]*ai.Document, 0, len(history)+1)
	if preamble != "" {
		docs = append(docs, ai.DocumentFromText(preamble, nil))
	}
	for _, w := range history {
		b, err := yaml.Marshal(w)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal winning: %w", err)
		}
		docs = append(docs, ai.DocumentFromText(string(b), map[string]any{"issue_no": w.IssueNo}))
	}
	return docs, nil
}

func (l *LottoAI) PickLucky(ctx context.Context, cnt int) (lotto.Batch, error) {
	lucky, err := l.PickLuckyNumsFlow.Run(ctx, cnt)
	if err != nil {
		return nil, err
	}
	return luckyToBatch(lucky, cnt)
}

// luckyToBatch rejects model output that is not cnt valid sets.
func luckyToBatch(lucky Lucky, cnt int) (lotto.Batch, error) {
	if len(lucky.Picks) != cnt {
		return nil, fmt.Errorf("invalid winning numbers: want %d picks, got %d", cnt, len(lucky.Picks))
	}
	batch := make(lotto.Batch, cnt)
	for i, pick := range lucky.Picks {
		ns, err := lotto.NewNumberSet(pick)
		if err != nil {
			return nil, fmt.Errorf("pick %d: %w", i+1, err)
		}
		batch[i] = ns
	}
	return batch, nil
}
