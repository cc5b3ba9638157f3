package report

import "strings"

// Labels holds the fixed wording of a report
type Labels struct {
	DevelopmentHeader string
	IssueHeader       string
	IndexSeparator    string // between the task number and name
	StatusPrefix      string
	IssueHandled      string // appended to an issue item's date
	DateSeparator     string // between an item's date and content
}

var EnglishLabels = Labels{
	DevelopmentHeader: "Development:",
	IssueHeader:       "Issues:",
	IndexSeparator:    ". ",
	StatusPrefix:      "Status: ",
	IssueHandled:      " handled",
	DateSeparator:     ": ",
}

// ChineseLabels reproduces the wording of reports written by the desktop versions of the tracker
var ChineseLabels = Labels{
	DevelopmentHeader: "开发任务：",
	IssueHeader:       "问题处理：",
	IndexSeparator:    "、",
	StatusPrefix:      "状态：",
	IssueHandled:      "处理",
	DateSeparator:     "：",
}

// LabelsFor returns the labels for a locale such as "en" or "zh-CN"; unknown locales get English
func LabelsFor(locale string) Labels {
	l := strings.ToLower(strings.TrimSpace(locale))
	if l == "zh" || strings.HasPrefix(l, "zh-") || strings.HasPrefix(l, "zh_") {
		return ChineseLabels
	}
	return EnglishLabels
}
