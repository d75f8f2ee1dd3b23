package models

import (
	"time"
)

// TaskItem 任务清单条目
type TaskItem struct {
	BaseModel
	Title    string `gorm:"size:200;not null" json:"title"`
	Category string `gorm:"size:100" json:"category"`
	Done     bool   `gorm:"default:false" json:"done"`
}

// TableName 指定TaskItem表名
func (TaskItem) TableName() string {
	return "task_items"
}

// Expense 支出记录
type Expense struct {
	BaseModel
	Description string    `gorm:"size:200;not null" json:"description"`
	Category    string    `gorm:"size:100;not null" json:"category"`
	Amount      float64   `gorm:"not null" json:"amount"`
	Date        time.Time `gorm:"index" json:"date"`
}

// TableName 指定Expense表名
func (Expense) TableName() string {
	return "expenses"
}

// Booking 预约记录
type Booking struct {
	BaseModel
	Client  string    `gorm:"size:100;not null" json:"client"`
	Service string    `gorm:"size:200;not null" json:"service"`
	Date    time.Time `gorm:"index" json:"date"`
	Notes   string    `gorm:"size:500" json:"notes"`
}

// TableName 指定Booking表名
func (Booking) TableName() string {
	return "bookings"
}

// Note 笔记
type Note struct {
	BaseModel
	Title    string `gorm:"size:200;not null" json:"title"`
	Category string `gorm:"size:100" json:"category"`
	Content  string `gorm:"type:text" json:"content"`
}

// TableName 指定Note表名
func (Note) TableName() string {
	return "notes"
}

// CalendarEvent 日历事件
type CalendarEvent struct {
	BaseModel
	Title    string    `gorm:"size:200;not null" json:"title"`
	Date     time.Time `gorm:"index" json:"date"`
	Location string    `gorm:"size:200" json:"location"`
}

// TableName 指定CalendarEvent表名
func (CalendarEvent) TableName() string {
	return "calendar_events"
}

// Recipe 菜谱
type Recipe struct {
	BaseModel
	Title        string `gorm:"size:200;not null" json:"title"`
	Category     string `gorm:"size:100" json:"category"`
	Ingredients  string `gorm:"type:text" json:"ingredients"`
	Instructions string `gorm:"type:text" json:"instructions"`
}

// TableName 指定Recipe表名
func (Recipe) TableName() string {
	return "recipes"
}

// SurveyOption 投票选项（固定集合，启动时播种，计数只增不减）
type SurveyOption struct {
	BaseModel
	Text      string `gorm:"size:200;not null;uniqueIndex" json:"text"`
	Votes     int64  `gorm:"default:0" json:"votes"`
	SortOrder int    `gorm:"default:0" json:"sort_order"`
}

// TableName 指定SurveyOption表名
func (SurveyOption) TableName() string {
	return "survey_options"
}
