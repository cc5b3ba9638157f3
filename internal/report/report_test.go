package report

import (
	"context"
	"errors"
	"strings"
	"testing"

	"dayjob-record/internal/models"

	"github.com/stretchr/testify/require"
)

type fakeItems map[uint][]models.TaskItem

func (f fakeItems) ListItems(_ context.Context, taskID uint) ([]models.TaskItem, error) {
	return f[taskID], nil
}

type failingItems struct{}

func (failingItems) ListItems(context.Context, uint) ([]models.TaskItem, error) {
	return nil, errors.New("disk on fire")
}

func TestGenerate_GroupsAndOrders(t *testing.T) {
	tasks := []models.Task{
		{ID: 1, Name: "Login page", Type: models.TypeDevelopment, Status: "In Progress", Priority: 0},
		{ID: 2, Name: "Crash on save", Type: models.TypeIssue, Status: "Done", Priority: 1},
		{ID: 3, Name: "Billing API", Type: models.TypeDevelopment, Status: "Paused", Priority: 3},
	}
	items := fakeItems{
		1: {
			{ID: 11, TaskID: 1, Content: "form layout", StartDate: "2025-03-10", EndDate: "2025-03-12", IsReportItem: true},
			{ID: 10, TaskID: 1, Content: "internal note", IsReportItem: false},
		},
		2: {
			{ID: 20, TaskID: 2, Content: "patched null check", CompleteDate: "03-14", IsReportItem: true},
			{ID: 21, TaskID: 2, Content: "talked to QA", IsReportItem: true},
		},
	}

	got, err := Generate(context.Background(), tasks, items, EnglishLabels)
	require.NoError(t, err)

	want := "\n" +
		"Development:\n" +
		"1. Billing API\n" +
		"\tStatus: Paused\n" +
		"2. Login page\n" +
		"\tStatus: In Progress\n" +
		"\t03-10~03-12: form layout\n" +
		"Issues:\n" +
		"1. Crash on save\n" +
		"\tStatus: Done\n" +
		"\t03-14 handled: patched null check\n" +
		"\ttalked to QA\n"
	require.Equal(t, want, got)
}

func TestGenerate_ChineseLabels(t *testing.T) {
	tasks := []models.Task{{ID: 1, Name: "问题A", Type: models.TypeIssue, Status: "已完成"}}
	items := fakeItems{1: {{ID: 1, TaskID: 1, Content: "修复", CompleteDate: "2025-03-14", IsReportItem: true}}}

	got, err := Generate(context.Background(), tasks, items, ChineseLabels)
	require.NoError(t, err)
	require.Equal(t, "\n问题处理：\n1、问题A\n\t状态：已完成\n\t2025-03-14处理：修复\n", got)
}

func TestGenerate_SkipsEmptySection(t *testing.T) {
	tasks := []models.Task{{ID: 1, Name: "only dev", Type: models.TypeDevelopment}}
	got, err := Generate(context.Background(), tasks, fakeItems{}, EnglishLabels)
	require.NoError(t, err)
	require.NotContains(t, got, "Issues:")
	require.Equal(t, 1, strings.Count(got, "1. "))
}

func TestGenerate_Errors(t *testing.T) {
	_, err := Generate(context.Background(), nil, fakeItems{}, EnglishLabels)
	require.ErrorIs(t, err, ErrNoTasksSelected)

	tasks := []models.Task{{ID: 1, Name: "x"}}
	_, err = Generate(context.Background(), tasks, failingItems{}, EnglishLabels)
	require.Error(t, err)
}

func TestGenerate_DoesNotReorderInput(t *testing.T) {
	tasks := []models.Task{{ID: 1, Name: "a", Priority: 0}, {ID: 2, Name: "b", Priority: 5}}
	_, err := Generate(context.Background(), tasks, fakeItems{}, EnglishLabels)
	require.NoError(t, err)
	require.Equal(t, "a", tasks[0].Name)
}

func TestDatePrefix(t *testing.T) {
	cases := []struct {
		name string
		item models.TaskItem
		want string
	}{
		{"complete date wins", models.TaskItem{CompleteDate: "yesterday", StartDate: "2025-01-01"}, "yesterday"},
		{"range", models.TaskItem{StartDate: "2025-01-01", EndDate: "2025-01-05"}, "01-01~01-05"},
		{"same day", models.TaskItem{StartDate: "2025-01-01", EndDate: "2025-01-01"}, "01-01"},
		{"start only", models.TaskItem{StartDate: "2025-02-03"}, "02-03"},
		{"end only", models.TaskItem{EndDate: "2025-02-04"}, "02-04"},
		{"none", models.TaskItem{}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, DatePrefix(tc.item))
		})
	}
}

func TestLabelsFor(t *testing.T) {
	require.Equal(t, ChineseLabels, LabelsFor("zh"))
	require.Equal(t, ChineseLabels, LabelsFor("zh-CN"))
	require.Equal(t, EnglishLabels, LabelsFor("en"))
	require.Equal(t, EnglishLabels, LabelsFor(""))
}
