package memory

import (
	"fmt"
	"math/rand"
)

// Card 记忆翻牌游戏中的一张卡片
type Card struct {
	Position int    `json:"position"`
	Symbol   string `json:"symbol"`
	Revealed bool   `json:"revealed"`
	Matched  bool   `json:"matched"`
}

// State 记忆翻牌游戏的完整状态
type State struct {
	Cards    []Card   `json:"cards"`
	Messages []string `json:"messages"`
	Moves    int      `json:"moves"`
}

// NewGame 发牌：每个符号两张，洗牌后按槽位编号1..n
func NewGame(symbols []string, rng *rand.Rand) *State {
	cards := make([]Card, 0, len(symbols)*2)
	for _, s := range symbols {
		cards = append(cards, Card{Symbol: s}, Card{Symbol: s})
	}

	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})

	for i := range cards {
		cards[i].Position = i + 1
	}

	return &State{
		Cards:    cards,
		Messages: []string{},
	}
}

// Pick 翻开两张卡片。无效选择只追加提示，不计步数
func (s *State) Pick(first, second int) {
	if first == second || first < 1 || second < 1 ||
		first > len(s.Cards) || second > len(s.Cards) {
		s.Messages = append(s.Messages, "请在有效范围内选择两个不同的位置。")
		return
	}

	a := &s.Cards[first-1]
	b := &s.Cards[second-1]

	a.Revealed = true
	b.Revealed = true
	s.Moves++

	if a.Symbol == b.Symbol {
		a.Matched = true
		b.Matched = true
		s.Messages = append(s.Messages, fmt.Sprintf("找到一对 %s！", a.Symbol))
	} else {
		s.Messages = append(s.Messages, "不匹配，再试一次。")
		a.Revealed = false
		b.Revealed = false
	}
}

// IsComplete 所有卡片都配对成功时游戏结束
func (s *State) IsComplete() bool {
	for _, c := range s.Cards {
		if !c.Matched {
			return false
		}
	}
	return len(s.Cards) > 0
}
