package models

// DateLayout is the storage format of TaskItem.StartDate and TaskItem.EndDate
const DateLayout = "2006-01-02"

// TaskItem is a progress entry recorded against a task
type TaskItem struct {
	ID           uint   `json:"id" gorm:"column:Id;primaryKey;autoIncrement"`
	TaskID       uint   `json:"taskId" gorm:"column:TaskId"`
	Content      string `json:"content" gorm:"column:Content"`
	StartDate    string `json:"startDate" gorm:"column:StartDate"`
	EndDate      string `json:"endDate" gorm:"column:EndDate"`
	CompleteDate string `json:"completeDate" gorm:"column:CompleteDate"`
	IsReportItem bool   `json:"isReportItem" gorm:"column:IsReportItem"`
}

// TableName specifies the table name for TaskItem Model
func (TaskItem) TableName() string {
	return "TaskItems"
}
