package stopwatch

import "time"

// 秒表动作类型
const (
	ActionStart = "start"
	ActionPause = "pause"
	ActionReset = "reset"
	ActionLap   = "lap"
)

// State 秒表状态。Elapsed只累计已暂停的区间，运行中的区间由当前时间推导
type State struct {
	Running   bool            `json:"running"`
	StartTime time.Time       `json:"start_time"`
	Elapsed   time.Duration   `json:"elapsed"`
	Laps      []time.Duration `json:"laps"`
}

// NewState 创建归零的秒表
func NewState() *State {
	return &State{
		Laps: []time.Duration{},
	}
}

// Start 启动秒表，已在运行时不做任何事
func (s *State) Start(now time.Time) {
	if s.Running {
		return
	}
	s.Running = true
	s.StartTime = now
}

// Pause 暂停秒表并累计已走过的区间，未运行时不做任何事
func (s *State) Pause(now time.Time) {
	if !s.Running {
		return
	}
	s.Elapsed += now.Sub(s.StartTime)
	s.Running = false
}

// Lap 记录当前累计用时，暂停状态下也可记圈
func (s *State) Lap(now time.Time) {
	s.Laps = append(s.Laps, s.ElapsedAt(now))
}

// Reset 归零
func (s *State) Reset() {
	*s = *NewState()
}

// ElapsedAt 推导指定时刻的累计用时
func (s *State) ElapsedAt(now time.Time) time.Duration {
	if s.Running {
		return s.Elapsed + now.Sub(s.StartTime)
	}
	return s.Elapsed
}

// Apply 按动作名驱动秒表，未知动作不改变状态
func (s *State) Apply(action string, now time.Time) bool {
	switch action {
	case ActionStart:
		s.Start(now)
	case ActionPause:
		s.Pause(now)
	case ActionLap:
		s.Lap(now)
	case ActionReset:
		s.Reset()
	default:
		return false
	}
	return true
}
