package api

import (
	"github.com/gin-gonic/gin"
	"github.com/wfunc/exercise-hub/internal/config"
	apperrors "github.com/wfunc/exercise-hub/internal/errors"
	"github.com/wfunc/exercise-hub/internal/middleware"
	"github.com/wfunc/exercise-hub/internal/repository"
	"github.com/wfunc/exercise-hub/internal/session"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Router API路由器
type Router struct {
	engine            *gin.Engine
	db                *gorm.DB
	sessionMiddleware *middleware.SessionMiddleware
	csrfMiddleware    *middleware.CSRFMiddleware
	taskHandler       *TaskHandler
	expenseHandler    *ExpenseHandler
	bookingHandler    *BookingHandler
	noteHandler       *NoteHandler
	eventHandler      *EventHandler
	recipeHandler     *RecipeHandler
	surveyHandler     *SurveyHandler
	toolsHandler      *ToolsHandler
	memoryHandler     *MemoryHandler
	stopwatchHandler  *StopwatchHandler
	stopwatchWS       *StopwatchWSHandler
	log               *zap.Logger
}

// NewRouter 创建路由器
func NewRouter(db *gorm.DB, cfg *config.Config, log *zap.Logger) *Router {
	// 创建Gin引擎
	engine := gin.New()

	// 全局中间件
	engine.Use(gin.Recovery())
	engine.Use(gin.Logger())

	// 会话状态管理器
	sessions := session.NewManager(session.NewDatabaseStatePersister(db))

	// 创建中间件
	sessionMiddleware := middleware.NewSessionMiddleware(
		cfg.Session.CookieName,
		int(cfg.Session.CookieMaxAge.Seconds()),
	)
	csrfMiddleware := middleware.NewCSRFMiddleware(cfg.Session.CSRFSecret, cfg.Session.CSRFTTL)

	// 创建处理器
	stopwatchHandler := NewStopwatchHandler(sessions, log)

	router := &Router{
		engine:            engine,
		db:                db,
		sessionMiddleware: sessionMiddleware,
		csrfMiddleware:    csrfMiddleware,
		taskHandler:       NewTaskHandler(repository.NewTaskRepository(db), log),
		expenseHandler:    NewExpenseHandler(repository.NewExpenseRepository(db), log),
		bookingHandler:    NewBookingHandler(repository.NewBookingRepository(db), log),
		noteHandler:       NewNoteHandler(repository.NewNoteRepository(db), log),
		eventHandler:      NewEventHandler(repository.NewEventRepository(db), log),
		recipeHandler:     NewRecipeHandler(repository.NewRecipeRepository(db), log),
		surveyHandler:     NewSurveyHandler(repository.NewSurveyRepository(db), cfg.Survey.Question, log),
		toolsHandler:      NewToolsHandler(log),
		memoryHandler:     NewMemoryHandler(sessions, cfg.Game.Memory.Symbols, log),
		stopwatchHandler:  stopwatchHandler,
		stopwatchWS:       NewStopwatchWSHandler(stopwatchHandler, log),
		log:               log,
	}

	// 设置路由
	router.setupRoutes()

	return router
}

// setupRoutes 设置路由
func (r *Router) setupRoutes() {
	// 健康检查
	r.engine.GET("/health", r.healthCheck)

	// 所有业务路由都在会话中间件之内
	r.engine.Use(r.sessionMiddleware.EnsureSession())

	// API v1路由组
	v1 := r.engine.Group("/api/v1")
	{
		// 防伪令牌签发
		v1.GET("/csrf", r.issueCSRFToken)

		// 变更操作都要求防伪令牌
		csrf := r.csrfMiddleware.RequireToken()

		// 任务清单
		tasks := v1.Group("/tasks")
		{
			tasks.GET("", r.taskHandler.List)
			tasks.POST("", csrf, r.taskHandler.Create)
			tasks.POST("/:id/toggle", csrf, r.taskHandler.Toggle)
			tasks.DELETE("/:id", csrf, r.taskHandler.Delete)
		}

		// 记账本
		expenses := v1.Group("/expenses")
		{
			expenses.GET("", r.expenseHandler.List)
			expenses.POST("", csrf, r.expenseHandler.Create)
			expenses.DELETE("/:id", csrf, r.expenseHandler.Delete)
		}

		// 预约系统
		bookings := v1.Group("/bookings")
		{
			bookings.GET("", r.bookingHandler.List)
			bookings.POST("", csrf, r.bookingHandler.Create)
			bookings.DELETE("/:id", csrf, r.bookingHandler.Cancel)
		}

		// 笔记管理
		notes := v1.Group("/notes")
		{
			notes.GET("", r.noteHandler.List)
			notes.POST("", csrf, r.noteHandler.Create)
			notes.DELETE("/:id", csrf, r.noteHandler.Delete)
		}

		// 活动日历
		events := v1.Group("/events")
		{
			events.GET("", r.eventHandler.List)
			events.POST("", csrf, r.eventHandler.Create)
			events.DELETE("/:id", csrf, r.eventHandler.Delete)
		}

		// 菜谱平台
		recipes := v1.Group("/recipes")
		{
			recipes.GET("", r.recipeHandler.List)
			recipes.POST("", csrf, r.recipeHandler.Create)
			recipes.DELETE("/:id", csrf, r.recipeHandler.Delete)
		}

		// 投票平台
		survey := v1.Group("/survey")
		{
			survey.GET("", r.surveyHandler.Show)
			survey.POST("/vote", csrf, r.surveyHandler.Vote)
		}

		// 小工具（纯计算，不改变服务端状态）
		toolsGroup := v1.Group("/tools")
		{
			toolsGroup.POST("/tip", r.toolsHandler.CalculateTip)
			toolsGroup.POST("/password", r.toolsHandler.GeneratePassword)
		}

		// 记忆翻牌
		memoryGroup := v1.Group("/memory")
		{
			memoryGroup.GET("", r.memoryHandler.Show)
			memoryGroup.POST("/pick", csrf, r.memoryHandler.Pick)
			memoryGroup.POST("/reset", csrf, r.memoryHandler.Reset)
		}

		// 秒表
		stopwatchGroup := v1.Group("/stopwatch")
		{
			stopwatchGroup.GET("", r.stopwatchHandler.Show)
			stopwatchGroup.POST("/action", csrf, r.stopwatchHandler.Apply)
		}
	}

	// WebSocket路由
	ws := r.engine.Group("/ws")
	{
		ws.GET("/stopwatch", r.stopwatchWS.Stream)
	}

	// API文档
	registerOpenAPIRoutes(r.engine)
	registerSwaggerRoutes(r.engine)

	// 404处理
	r.engine.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"code":    "NOT_FOUND",
			"message": "接口不存在",
		})
	})
}

// issueCSRFToken 为当前会话签发防伪令牌
func (r *Router) issueCSRFToken(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if !ok {
		respondError(c, apperrors.New(apperrors.ErrSessionMissing))
		return
	}

	token, err := r.csrfMiddleware.GenerateToken(sessionID)
	if err != nil {
		r.log.Error("签发防伪令牌失败", zap.Error(err))
		respondError(c, apperrors.Wrap(err, apperrors.ErrUnknown))
		return
	}

	respondOK(c, gin.H{"token": token})
}

// healthCheck 健康检查
func (r *Router) healthCheck(c *gin.Context) {
	// 检查数据库连接
	sqlDB, err := r.db.DB()
	if err != nil {
		c.JSON(500, gin.H{
			"status":  "unhealthy",
			"message": "数据库连接失败",
		})
		return
	}

	if err := sqlDB.Ping(); err != nil {
		c.JSON(500, gin.H{
			"status":  "unhealthy",
			"message": "数据库ping失败",
		})
		return
	}

	c.JSON(200, gin.H{
		"status":  "healthy",
		"message": "服务运行正常",
	})
}

// Run 运行服务器
func (r *Router) Run(addr string) error {
	r.log.Info("Starting API server", zap.String("address", addr))
	return r.engine.Run(addr)
}

// GetEngine 获取Gin引擎（用于测试）
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
