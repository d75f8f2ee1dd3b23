package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wfunc/exercise-hub/internal/config"
	"github.com/wfunc/exercise-hub/internal/models"
	"github.com/wfunc/exercise-hub/internal/repository"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testClient 带会话Cookie和防伪令牌的测试客户端
type testClient struct {
	t      *testing.T
	router *Router
	cookie *http.Cookie
	token  string
}

func newTestRouter(t *testing.T) *Router {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.TaskItem{},
		&models.Expense{},
		&models.Booking{},
		&models.Note{},
		&models.CalendarEvent{},
		&models.Recipe{},
		&models.SurveyOption{},
		&models.SessionState{},
	))

	cfg := &config.Config{
		Session: config.SessionConfig{
			CookieName:   "exercise_session",
			CookieMaxAge: 24 * time.Hour,
			CSRFSecret:   "integration-test-secret",
			CSRFTTL:      time.Hour,
		},
		Game: config.GameConfig{
			Memory: config.MemoryConfig{Symbols: []string{"A", "B", "C", "D"}},
		},
		Survey: config.SurveyConfig{
			Question: "你最喜欢的编程语言是什么？",
			Options:  []string{"Go", "Java", "Python", "JavaScript"},
		},
	}

	surveyRepo := repository.NewSurveyRepository(db)
	require.NoError(t, surveyRepo.Seed(context.Background(), cfg.Survey.Options))

	return NewRouter(db, cfg, zap.NewNop())
}

func newTestClient(t *testing.T) *testClient {
	c := &testClient{t: t, router: newTestRouter(t)}

	// 首次请求拿会话Cookie，再签发防伪令牌
	w := c.do(http.MethodGet, "/api/v1/csrf", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Token)
	c.token = resp.Data.Token
	return c
}

// do 发送请求并维持会话Cookie
func (c *testClient) do(method, path, body string) *httptest.ResponseRecorder {
	c.t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if c.cookie != nil {
		req.AddCookie(c.cookie)
	}
	if c.token != "" {
		req.Header.Set("X-CSRF-Token", c.token)
	}

	w := httptest.NewRecorder()
	c.router.GetEngine().ServeHTTP(w, req)

	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "exercise_session" {
			c.cookie = cookie
		}
	}
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	var resp struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Success)
	if out != nil {
		require.NoError(t, json.Unmarshal(resp.Data, out))
	}
}

func TestHealthCheck(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.GetEngine().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestMutationRequiresCSRFToken(t *testing.T) {
	c := newTestClient(t)

	// 不带令牌的变更请求被拒绝
	c.token = ""
	w := c.do(http.MethodPost, "/api/v1/tasks", `{"title":"没有令牌"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestTaskLifecycle(t *testing.T) {
	c := newTestClient(t)

	// 新增
	w := c.do(http.MethodPost, "/api/v1/tasks", `{"title":"写文档","category":"工作"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var task models.TaskItem
	decodeData(t, w, &task)
	require.NotEmpty(t, task.ID)

	// 空白标题被拒绝
	w = c.do(http.MethodPost, "/api/v1/tasks", `{"title":"   "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 切换完成状态
	w = c.do(http.MethodPost, "/api/v1/tasks/"+task.ID+"/toggle", "")
	require.Equal(t, http.StatusOK, w.Code)

	var tasks []models.TaskItem
	w = c.do(http.MethodGet, "/api/v1/tasks", "")
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, w, &tasks)
	require.Len(t, tasks, 1)
	assert.True(t, tasks[0].Done)

	// 删除后列表为空
	w = c.do(http.MethodDelete, "/api/v1/tasks/"+task.ID, "")
	require.Equal(t, http.StatusOK, w.Code)
	w = c.do(http.MethodGet, "/api/v1/tasks", "")
	decodeData(t, w, &tasks)
	assert.Empty(t, tasks)
}

func TestSurveyVote(t *testing.T) {
	c := newTestClient(t)

	var survey SurveyResponse
	w := c.do(http.MethodGet, "/api/v1/survey", "")
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, w, &survey)
	assert.Equal(t, "你最喜欢的编程语言是什么？", survey.Question)

	options, ok := survey.Options.([]interface{})
	require.True(t, ok)
	require.Len(t, options, 4)
	first, ok := options[0].(map[string]interface{})
	require.True(t, ok)
	optionID, _ := first["id"].(string)
	require.NotEmpty(t, optionID)

	// 投一票
	w = c.do(http.MethodPost, "/api/v1/survey/vote", `{"option_id":"`+optionID+`"}`)
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, w, &survey)
	options = survey.Options.([]interface{})
	first = options[0].(map[string]interface{})
	assert.Equal(t, float64(1), first["votes"])

	// 未知ID不改变任何计票
	w = c.do(http.MethodPost, "/api/v1/survey/vote", `{"option_id":"no-such-id"}`)
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, w, &survey)
	options = survey.Options.([]interface{})
	first = options[0].(map[string]interface{})
	assert.Equal(t, float64(1), first["votes"])
}

func TestMemoryGameFlow(t *testing.T) {
	c := newTestClient(t)

	// 首次访问自动发牌
	var game MemoryGameResponse
	w := c.do(http.MethodGet, "/api/v1/memory", "")
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, w, &game)
	require.Len(t, game.Cards, 8)
	assert.Zero(t, game.Moves)
	assert.False(t, game.IsComplete)

	// 无效选择只追加提示不计步数
	w = c.do(http.MethodPost, "/api/v1/memory/pick", `{"first":2,"second":2}`)
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, w, &game)
	assert.Zero(t, game.Moves)
	require.Len(t, game.Messages, 1)

	// 找到同一符号的两张卡片翻开
	positions := map[string][]int{}
	for _, card := range game.Cards {
		positions[card.Symbol] = append(positions[card.Symbol], card.Position)
	}
	pair := positions["A"]
	require.Len(t, pair, 2)

	w = c.do(http.MethodPost, "/api/v1/memory/pick",
		`{"first":`+strconv.Itoa(pair[0])+`,"second":`+strconv.Itoa(pair[1])+`}`)
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, w, &game)
	assert.Equal(t, 1, game.Moves)
	assert.True(t, game.Cards[pair[0]-1].Matched)
	assert.True(t, game.Cards[pair[1]-1].Matched)

	// 重新开局后牌面复位
	w = c.do(http.MethodPost, "/api/v1/memory/reset", "")
	require.Equal(t, http.StatusOK, w.Code)
	w = c.do(http.MethodGet, "/api/v1/memory", "")
	decodeData(t, w, &game)
	assert.Zero(t, game.Moves)
	for _, card := range game.Cards {
		assert.False(t, card.Matched)
	}
}

func TestStopwatchFlow(t *testing.T) {
	c := newTestClient(t)

	var sw StopwatchResponse
	w := c.do(http.MethodGet, "/api/v1/stopwatch", "")
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, w, &sw)
	assert.False(t, sw.Running)
	assert.Zero(t, sw.ElapsedMs)

	// 启动
	w = c.do(http.MethodPost, "/api/v1/stopwatch/action", `{"action":"start"}`)
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, w, &sw)
	assert.True(t, sw.Running)

	// 记圈、暂停
	w = c.do(http.MethodPost, "/api/v1/stopwatch/action", `{"action":"lap"}`)
	require.Equal(t, http.StatusOK, w.Code)
	w = c.do(http.MethodPost, "/api/v1/stopwatch/action", `{"action":"pause"}`)
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, w, &sw)
	assert.False(t, sw.Running)
	assert.Len(t, sw.LapsMs, 1)

	// 未知动作返回400
	w = c.do(http.MethodPost, "/api/v1/stopwatch/action", `{"action":"rewind"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 归零
	w = c.do(http.MethodPost, "/api/v1/stopwatch/action", `{"action":"reset"}`)
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, w, &sw)
	assert.Zero(t, sw.ElapsedMs)
	assert.Empty(t, sw.LapsMs)
}

func TestToolsEndpoints(t *testing.T) {
	c := newTestClient(t)

	// 小费计算
	var tip struct {
		TotalTip     float64 `json:"total_tip"`
		TotalWithTip float64 `json:"total_with_tip"`
		PerPerson    float64 `json:"per_person"`
	}
	w := c.do(http.MethodPost, "/api/v1/tools/tip", `{"amount":100,"tip_percentage":10,"people":2}`)
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, w, &tip)
	assert.Equal(t, 10.00, tip.TotalTip)
	assert.Equal(t, 110.00, tip.TotalWithTip)
	assert.Equal(t, 55.00, tip.PerPerson)

	// 密码生成
	var pw PasswordResponse
	w = c.do(http.MethodPost, "/api/v1/tools/password", `{"length":16}`)
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, w, &pw)
	assert.Len(t, pw.Password, 16)

	// 超出范围的长度被拒绝
	w = c.do(http.MethodPost, "/api/v1/tools/password", `{"length":3}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSessionsIsolateGameState(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := newTestRouter(t)

	// 两个客户端共用一个服务端，各自的秒表互不影响
	a := &testClient{t: t, router: router}
	b := &testClient{t: t, router: router}
	for _, c := range []*testClient{a, b} {
		w := c.do(http.MethodGet, "/api/v1/csrf", "")
		require.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Data struct {
				Token string `json:"token"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		c.token = resp.Data.Token
	}

	w := a.do(http.MethodPost, "/api/v1/stopwatch/action", `{"action":"start"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var sw StopwatchResponse
	w = b.do(http.MethodGet, "/api/v1/stopwatch", "")
	require.Equal(t, http.StatusOK, w.Code)
	decodeData(t, w, &sw)
	assert.False(t, sw.Running)

	// A的令牌不能被B的会话使用
	b.token = a.token
	w = b.do(http.MethodPost, "/api/v1/stopwatch/action", `{"action":"start"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
