package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/suapapa/lotto645/internal/lotto"
)

// Winning is one official weekly draw.
type Winning struct {
	IssueNo     int             `json:"issue_no" yaml:"issue_no"`
	Numbers     lotto.NumberSet `json:"numbers" yaml:"numbers"`
	Bonus       int             `json:"bonus" yaml:"bonus"`
	FirstPrize  int             `json:"first_prize" yaml:"first_prize"`
	FirstCount  int             `json:"first_count" yaml:"first_count"`
	SecondPrize int             `json:"second_prize" yaml:"second_prize"`
	SecondCount int             `json:"second_count" yaml:"second_count"`
}

// Check scores batch against this draw, bonus number included.
func (w *Winning) Check(batch lotto.Batch) []lotto.DrawResult {
	return lotto.CheckDraw(batch, lotto.WinningFromSet(w.Numbers), w.Bonus)
}

// WinningHistory is sorted by issue number.
type WinningHistory []*Winning

func (wh WinningHistory) Len() int {
	return len(wh)
}
func (wh WinningHistory) Less(i, j int) bool {
	return wh[i].IssueNo < wh[j].IssueNo
}
func (wh WinningHistory) Swap(i, j int) {
	wh[i], wh[j] = wh[j], wh[i]
}

// Latest returns the most recent draw, or nil.
func (wh WinningHistory) Latest() *Winning {
	if len(wh) == 0 {
		return nil
	}
	return wh[len(wh)-1]
}

// Find returns the draw with the given issue number, or nil.
func (wh WinningHistory) Find(issueNo int) *Winning {
	i := sort.Search(len(wh), func(i int) bool { return wh[i].IssueNo >= issueNo })
	if i < len(wh) && wh[i].IssueNo == issueNo {
		return wh[i]
	}
	return nil
}

// Recent returns up to n of the latest draws, oldest first.
func (wh WinningHistory) Recent(n int) WinningHistory {
	if n >= len(wh) {
		return wh
	}
	return wh[len(wh)-n:]
}

func loadWinningHistory(filePath string) (WinningHistory, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	return readWinningHistory(f)
}

// 회차,번호1,번호2,번호3,번호4,번호5,번호6,보너스,1등 당첨금,1등 당첨수,2등 당첨금,2등 당첨수
const historyColumns = 12

func readWinningHistory(r io.Reader) (WinningHistory, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("empty CSV")
	}

	winningHistory := make(WinningHistory, 0, len(records)-1)
	// skip the header
	for line, record := range records[1:] {
		if len(record) < historyColumns {
			continue
		}
		w, err := parseWinningRecord(record)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line+2, err)
		}
		winningHistory = append(winningHistory, w)
	}

	sort.Sort(winningHistory)

	return winningHistory, nil
}

func parseWinningRecord(record []string) (*Winning, error) {
	var (
		winning Winning
		err     error
	)
	if winning.IssueNo, err = atoi(record[0]); err != nil {
		return nil, fmt.Errorf("failed to parse issue number: %w", err)
	}

	nums := make([]int, lotto.PickSize)
	for i := range nums {
		if nums[i], err = atoi(record[i+1]); err != nil {
			return nil, fmt.Errorf("failed to parse number: %w", err)
		}
	}
	if winning.Numbers, err = lotto.NewNumberSet(nums); err != nil {
		return nil, fmt.Errorf("invalid numbers: %w", err)
	}

	if winning.Bonus, err = atoi(record[7]); err != nil {
		return nil, fmt.Errorf("failed to parse bonus: %w", err)
	}
	if winning.Bonus < lotto.MinNumber || winning.Bonus > lotto.MaxNumber || winning.Numbers.Contains(winning.Bonus) {
		return nil, fmt.Errorf("invalid bonus number %d", winning.Bonus)
	}
	if winning.FirstPrize, err = atoi(record[8]); err != nil {
		return nil, fmt.Errorf("failed to parse first prize: %w", err)
	}
	if winning.FirstCount, err = atoi(record[9]); err != nil {
		return nil, fmt.Errorf("failed to parse first count: %w", err)
	}
	if winning.SecondPrize, err = atoi(record[10]); err != nil {
		return nil, fmt.Errorf("failed to parse second prize: %w", err)
	}
	if winning.SecondCount, err = atoi(record[11]); err != nil {
		return nil, fmt.Errorf("failed to parse second count: %w", err)
	}

	return &winning, nil
}

// atoi accepts thousands separators, as used by the prize columns.
func atoi(s string) (int, error) {
	return strconv.Atoi(strings.ReplaceAll(strings.TrimSpace(s), ",", ""))
}
