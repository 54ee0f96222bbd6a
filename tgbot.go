package main

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/mymmrac/telego"
	"github.com/mymmrac/telego/telegoutil"
	"go.uber.org/zap"

	"github.com/suapapa/lotto645/internal/logger"
	"github.com/suapapa/lotto645/internal/lotto"
	"github.com/suapapa/lotto645/internal/metrics"
	"github.com/suapapa/lotto645/internal/parabola"
)

const (
	usageText = "Usage:\n" +
		"/rand [count] - 랜덤 로또 번호 생성 (1~10)\n" +
		"/ai [count] - AI 로또 번호 생성\n" +
		"/compare 1, 10, 20, 30, 40, 45 - 당첨 번호와 비교\n" +
		"/check [회차] - 지난 회차 당첨 번호와 비교\n" +
		"/parabola [a] - y = ax² 그래프 (-5.0 ~ 5.0)\n" +
		"/stat - 통계 확인"

	linesPerMessage = 5

	chartCols = 41
	chartRows = 21
)

// luckyPicker suggests a batch of count sets.
type luckyPicker interface {
	PickLucky(ctx context.Context, count int) (lotto.Batch, error)
}

type reply struct {
	text string
	pre  bool // send as a preformatted HTML block
}

func textReply(format string, args ...any) reply {
	return reply{text: fmt.Sprintf(format, args...)}
}

// commandHandler turns one chat message into replies. The only state it
// keeps between messages is each chat's latest batch.
type commandHandler struct {
	gen     *lotto.Generator
	ai      luckyPicker // nil when AI is disabled
	history WinningHistory
	metrics *metrics.Metrics
	opts    []lotto.CompareOption
	batches *batches
}

func newCommandHandler(gen *lotto.Generator, ai luckyPicker, history WinningHistory, m *metrics.Metrics, opts []lotto.CompareOption) *commandHandler {
	return &commandHandler{
		gen:     gen,
		ai:      ai,
		history: history,
		metrics: m,
		opts:    opts,
		batches: newBatches(),
	}
}

// splitCommand separates "/rand@bot 5" into "/rand" and ["5"].
func splitCommand(text string) (string, []string) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return "", nil
	}
	cmd := fields[0]
	if strings.HasPrefix(cmd, "/") {
		cmd, _, _ = strings.Cut(cmd, "@")
	}
	return cmd, fields[1:]
}

func (h *commandHandler) handle(ctx context.Context, chatID int64, text string) []reply {
	cmd, args := splitCommand(text)
	switch cmd {
	case "/start":
		return []reply{{text: "pong"}}
	case "/rand", "/lotto":
		return h.handleRand(ctx, chatID, args)
	case "/ai", "/ailotto":
		return h.handleAI(ctx, chatID, args)
	case "/compare", "/cmp":
		return h.handleCompare(ctx, chatID, strings.Join(args, " "))
	case "/check":
		return h.handleCheck(ctx, chatID, args)
	case "/parabola":
		return h.handleParabola(ctx, args)
	case "/stat":
		return []reply{textReply("AI 생성 횟수: %d\n랜덤 생성 횟수: %d",
			h.metrics.Generated(metrics.SourceAI), h.metrics.Generated(metrics.SourceRand))}
	default:
		return []reply{{text: usageText}}
	}
}

// parseCount reads the optional count argument and clamps it to
// [lotto.MinSets, lotto.MaxSets]. notice is set when clamping happened.
func parseCount(args []string) (cnt int, notice string, err error) {
	if len(args) == 0 {
		return 1, "", nil
	}
	cnt, err = strconv.Atoi(args[0])
	if err != nil {
		return 0, "", err
	}
	switch {
	case cnt > lotto.MaxSets:
		return lotto.MaxSets, fmt.Sprintf("한 번에 최대 %d개까지 생성할 수 있습니다.", lotto.MaxSets), nil
	case cnt < lotto.MinSets:
		return lotto.MinSets, fmt.Sprintf("최소 %d개를 생성합니다.", lotto.MinSets), nil
	}
	return cnt, "", nil
}

func (h *commandHandler) handleRand(ctx context.Context, chatID int64, args []string) []reply {
	cnt, notice, err := parseCount(args)
	if err != nil {
		logger.Debug(ctx, "bad count argument", zap.Strings("args", args))
		return []reply{{text: "로또 번호를 생성할 개수를 입력하세요."}}
	}

	var out []reply
	if notice != "" {
		out = append(out, reply{text: notice})
	}
	batch, err := h.gen.Generate(cnt)
	if err != nil {
		logger.Error(ctx, "could not generate numbers", zap.Error(err))
		return append(out, textReply("로또 번호 생성 실패: %v", err))
	}
	h.batches.put(chatID, batch)
	h.metrics.AddGenerated(metrics.SourceRand, cnt)
	logger.Info(ctx, "generated random numbers", zap.Int("count", cnt))

	out = append(out, textReply("로또 번호 %d 개를 생성합니다...", cnt))
	return append(out, batchReplies(batch)...)
}

func (h *commandHandler) handleAI(ctx context.Context, chatID int64, args []string) []reply {
	if h.ai == nil {
		return []reply{{text: "AI 번호 생성이 비활성화되어 있습니다. /rand 를 사용하세요."}}
	}
	cnt, notice, err := parseCount(args)
	if err != nil {
		return []reply{{text: "로또 번호를 생성할 개수를 입력하세요."}}
	}

	var out []reply
	if notice != "" {
		out = append(out, reply{text: notice})
	}
	out = append(out, textReply("초지능의 힘으로 로또 번호 %d 개를 생성합니다...", cnt))
	batch, err := h.ai.PickLucky(ctx, cnt)
	if err != nil {
		logger.Error(ctx, "could not pick lucky numbers", zap.Error(err))
		return append(out, textReply("로또 번호 생성 실패: %v", err))
	}
	h.batches.put(chatID, batch)
	h.metrics.AddGenerated(metrics.SourceAI, cnt)
	logger.Info(ctx, "generated ai numbers", zap.Int("count", cnt))

	return append(out, batchReplies(batch)...)
}

func batchReplies(batch lotto.Batch) []reply {
	var out []reply
	for _, chunk := range chunkLines(batchLines(batch), linesPerMessage) {
		out = append(out, reply{text: chunk})
	}
	return append(out, reply{text: "생성완료"})
}

func (h *commandHandler) handleCompare(ctx context.Context, chatID int64, input string) []reply {
	batch, ok := h.batches.get(chatID)
	if !ok {
		return []reply{{text: "먼저 /rand 로 번호를 생성하세요."}}
	}
	if strings.TrimSpace(input) == "" {
		return []reply{{text: "당첨 번호를 입력해주세요. (예: /compare 1, 10, 20, 30, 40, 45)"}}
	}

	results, err := lotto.Compare(batch, input, h.opts...)
	if err != nil {
		h.metrics.ValidationFailures.Inc()
		logger.Debug(ctx, "rejected winning numbers", zap.String("input", input), zap.Error(err))
		return []reply{{text: validationText(err)}}
	}
	h.metrics.Comparisons.Inc()

	lines := make([]string, 0, len(results)+1)
	lines = append(lines, "📌 비교 결과")
	for _, r := range results {
		lines = append(lines, fmt.Sprintf("%s: %s → %d개 일치", setLabel(r.Position), r.Numbers, r.Matches))
	}
	out := make([]reply, 0, 3)
	for _, chunk := range chunkLines(lines, linesPerMessage+1) {
		out = append(out, reply{text: chunk})
	}
	return append(out, reply{text: tierComment(lotto.MaxMatches(results))})
}

func validationText(err error) string {
	msg := "❌ 당첨 번호는 1부터 45 사이의 6개 숫자를 쉼표(,)로 구분하여 입력해야 합니다."
	var verr *lotto.ValidationError
	if errors.As(err, &verr) && verr.Position > 0 {
		msg += fmt.Sprintf("\n%d번째 값 %q 을(를) 확인하세요.", verr.Position, verr.Token)
	}
	return msg
}

// tierComment is the closing remark for a comparison.
func tierComment(maxMatches int) string {
	switch lotto.TierFor(maxMatches) {
	case lotto.TierTop:
		return "🎉 축하합니다! 6개 모두 일치하는 번호가 있습니다! (이론상 1등!)"
	case lotto.TierHigh:
		return fmt.Sprintf("👍 %d개 일치하는 번호가 있어 당첨 가능성이 높습니다!", maxMatches)
	case lotto.TierSome:
		return fmt.Sprintf("✨ %d개까지 일치하는 번호가 있습니다.", maxMatches)
	default:
		return "🥲 아쉽게도 일치하는 번호가 없습니다. 다음 기회에!"
	}
}

func rankText(r lotto.Rank) string {
	if r == lotto.RankNone {
		return "낙첨"
	}
	return fmt.Sprintf("%d등", int(r))
}

func (h *commandHandler) handleCheck(ctx context.Context, chatID int64, args []string) []reply {
	if len(h.history) == 0 {
		return []reply{{text: "당첨 이력이 없습니다."}}
	}
	batch, ok := h.batches.get(chatID)
	if !ok {
		return []reply{{text: "먼저 /rand 로 번호를 생성하세요."}}
	}

	draw := h.history.Latest()
	if len(args) > 0 {
		issueNo, err := strconv.Atoi(args[0])
		if err != nil {
			return []reply{{text: "회차 번호를 입력하세요."}}
		}
		if draw = h.history.Find(issueNo); draw == nil {
			return []reply{textReply("%d회 당첨 번호를 찾을 수 없습니다.", issueNo)}
		}
	}

	results := draw.Check(batch)
	h.metrics.DrawChecks.Inc()
	logger.Debug(ctx, "checked draw", zap.Int("issue_no", draw.IssueNo))

	lines := []string{fmt.Sprintf("%d회 당첨 번호: %s + 보너스 %d", draw.IssueNo, draw.Numbers, draw.Bonus)}
	for _, r := range results {
		lines = append(lines, fmt.Sprintf("%s: %s → %d개 일치 (%s)", setLabel(r.Position), r.Numbers, r.Matches, rankText(r.Rank)))
	}
	out := make([]reply, 0, 3)
	for _, chunk := range chunkLines(lines, linesPerMessage+1) {
		out = append(out, reply{text: chunk})
	}
	return append(out, reply{text: "최고 순위: " + rankText(lotto.BestRank(results))})
}

func (h *commandHandler) handleParabola(ctx context.Context, args []string) []reply {
	a := 1.0
	if len(args) > 0 {
		var err error
		if a, err = strconv.ParseFloat(args[0], 64); err != nil {
			return []reply{{text: "a 값을 숫자로 입력하세요. (예: /parabola -0.5)"}}
		}
	}
	c, err := parabola.New(a)
	if err != nil {
		return []reply{textReply("a 값은 %.1f ~ %.1f 사이여야 합니다.", parabola.MinA, parabola.MaxA)}
	}
	h.metrics.ParabolaRenders.Inc()
	logger.Debug(ctx, "rendered parabola", zap.Float64("a", c.A))

	var out []reply
	if c.Adjusted {
		out = append(out, textReply("경고: |a| 값이 0에 가까우면 y=0 으로, 이차함수가 아닌 직선에 가깝습니다. a = %.1f 로 대체합니다.", c.A))
	}
	chart := c.Label() + "\n" + parabola.Render(c, chartCols, chartRows)
	return append(out, reply{text: chart, pre: true}, reply{text: parabolaAnalysis(c)})
}

func parabolaAnalysis(c parabola.Curve) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "a = %.1f\n", c.A)
	if c.Shape() == parabola.OpensDown {
		sb.WriteString("• 모양: 위로 볼록 (산 모양)\n")
	} else {
		sb.WriteString("• 모양: 아래로 볼록 (컵 모양)\n")
	}
	switch c.Width() {
	case parabola.Narrow:
		sb.WriteString("• 폭: |a| > 1 이므로 y = x² 보다 좁습니다 (y축에 가까워집니다)")
	case parabola.Wide:
		sb.WriteString("• 폭: |a| < 1 이므로 y = x² 보다 넓습니다 (x축에 가까워집니다)")
	default:
		sb.WriteString("• 폭: y = x² 와 같습니다")
	}
	return sb.String()
}

type TelegramBot struct {
	*commandHandler

	b        *telego.Bot
	UpdateCh <-chan telego.Update
	cancelF  context.CancelFunc
	allowed  map[int64]struct{}
}

func NewTelegramBot(ctx context.Context, h *commandHandler, apiToken string, chatIDs ...int64) (*TelegramBot, error) {
	b, err := telego.NewBot(apiToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Telegram bot: %w", err)
	}

	ctx, cancelF := context.WithCancel(ctx)
	tuCh, err := b.UpdatesViaLongPolling(ctx, nil) // 폴링방식으로
	if err != nil {
		cancelF()
		return nil, fmt.Errorf("failed to get updates: %w", err)
	}

	allowed := make(map[int64]struct{}, len(chatIDs))
	for _, id := range chatIDs {
		allowed[id] = struct{}{}
	}

	return &TelegramBot{
		commandHandler: h,
		b:              b,
		UpdateCh:       tuCh,
		cancelF:        cancelF,
		allowed:        allowed,
	}, nil
}

// Close stops long polling; Listen returns once the update channel drains.
func (tb *TelegramBot) Close() {
	tb.cancelF()
}

func (tb *TelegramBot) serves(chatID int64) bool {
	if len(tb.allowed) == 0 {
		return true
	}
	_, ok := tb.allowed[chatID]
	return ok
}

func (tb *TelegramBot) Listen(ctx context.Context) {
	for update := range tb.UpdateCh {
		if update.Message == nil {
			continue
		}

		id := update.Message.Chat.ID
		mctx := logger.WithFields(ctx,
			zap.Int64("chat_id", id),
			zap.String("username", update.Message.Chat.Username),
		)
		if !tb.serves(id) {
			logger.Warn(mctx, "ignoring message from unknown chat")
			continue
		}

		for _, r := range tb.handle(mctx, id, update.Message.Text) {
			tb.sendMessage(mctx, id, r)
		}
	}
}

func (tb *TelegramBot) sendMessage(ctx context.Context, id int64, r reply) {
	cid := telego.ChatID{ID: id}
	msg := telegoutil.Message(cid, r.text)
	if r.pre {
		msg = telegoutil.Message(cid, "<pre>"+html.EscapeString(r.text)+"</pre>").
			WithParseMode(telego.ModeHTML)
	}
	if _, err := tb.b.SendMessage(ctx, msg); err != nil {
		logger.Error(ctx, "failed to send message", zap.Error(err))
	}
}
