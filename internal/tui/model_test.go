package tui

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"foldergram/internal/app"
	"foldergram/internal/chatapi"
	"foldergram/internal/tui/actions"
	"foldergram/internal/tui/theme"
)

type fakeTUIService struct {
	folders []chatapi.Folder
	detail  app.FolderDetail
	chats   []chatapi.Chat
	link    chatapi.InviteLink
	chat    chatapi.Chat

	err       error
	exportErr error
	shareErr  error

	exportCalls   int
	editCalls     int
	deleteCalls   int
	lastExportIDs []int64
	lastEditIDs   []int64
	lastTitle     string
}

func (f *fakeTUIService) Refresh(context.Context) ([]chatapi.Folder, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.folders, nil
}

func (f *fakeTUIService) FolderDetail(context.Context, int64) (app.FolderDetail, error) {
	if f.err != nil {
		return app.FolderDetail{}, f.err
	}
	return f.detail, nil
}

func (f *fakeTUIService) RefreshLinks(context.Context, int64) (app.FolderDetail, error) {
	if f.err != nil {
		return app.FolderDetail{}, f.err
	}
	return f.detail, nil
}

func (f *fakeTUIService) ListCachedChats(context.Context) ([]chatapi.Chat, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.chats, nil
}

func (f *fakeTUIService) ExportLink(_ context.Context, _ int64, chatIDs []int64) (chatapi.InviteLink, error) {
	f.exportCalls++
	f.lastExportIDs = chatIDs
	if f.exportErr != nil {
		return chatapi.InviteLink{}, f.exportErr
	}
	if f.err != nil {
		return chatapi.InviteLink{}, f.err
	}
	return f.link, nil
}

func (f *fakeTUIService) EditLinkChats(_ context.Context, _ int64, _ string, chatIDs []int64) (chatapi.InviteLink, error) {
	f.editCalls++
	f.lastEditIDs = chatIDs
	if f.err != nil {
		return chatapi.InviteLink{}, f.err
	}
	return f.link, nil
}

func (f *fakeTUIService) RenameLink(_ context.Context, _ int64, _ string, title string) (chatapi.InviteLink, error) {
	f.lastTitle = title
	if f.err != nil {
		return chatapi.InviteLink{}, f.err
	}
	return f.link, nil
}

func (f *fakeTUIService) DeleteLink(context.Context, int64, string) error {
	f.deleteCalls++
	return f.err
}

func (f *fakeTUIService) ShareLink(context.Context, int64, string) error {
	if f.shareErr != nil {
		return f.shareErr
	}
	return f.err
}

func (f *fakeTUIService) ImportContact(context.Context, string, string, string) (chatapi.Chat, error) {
	if f.err != nil {
		return chatapi.Chat{}, f.err
	}
	return f.chat, nil
}

func (f *fakeTUIService) CreateGroup(context.Context, string, string, string) (chatapi.Chat, error) {
	if f.err != nil {
		return chatapi.Chat{}, f.err
	}
	return f.chat, nil
}

var modelANSIStrip = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func plainView(m Model) string {
	return modelANSIStrip.ReplaceAllString(m.View(), "")
}

func newTestModel(svc actions.Service, folders []chatapi.Folder) Model {
	return NewModel(svc, folders, theme.NewNotifier(theme.ByName("dark")), "dark")
}

func testFolders() []chatapi.Folder {
	return []chatapi.Folder{
		{ID: 7, Title: "Work", AlwaysChatIDs: []int64{100, 101, 102}},
		{ID: 9, Title: "Reading", AlwaysChatIDs: []int64{200}},
	}
}

func testDetail() app.FolderDetail {
	return app.FolderDetail{
		Folder: chatapi.Folder{ID: 7, Title: "Work", AlwaysChatIDs: []int64{100, 101, 102}},
		Chats: map[int64]chatapi.Chat{
			100: {ID: 100, Title: "Crew", Kind: chatapi.ChatKindGroup, CanInvite: true},
			101: {ID: 101, Title: "News", Kind: chatapi.ChatKindChannel, CanInvite: true},
			102: {ID: 102, Title: "HelperBot", Kind: chatapi.ChatKindBot},
		},
		Links: []chatapi.InviteLink{
			{FolderID: 7, URL: "https://t.me/addlist/AbCdEf", Title: "Friends", ChatIDs: []int64{100}},
		},
	}
}

func pressRune(t *testing.T, m Model, r rune) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	return updated.(Model), cmd
}

func press(t *testing.T, m Model, key tea.KeyType) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(tea.KeyMsg{Type: key})
	return updated.(Model), cmd
}

func openLinksScreen(t *testing.T, m Model) Model {
	t.Helper()
	model, cmd := press(t, m, tea.KeyEnter)
	if cmd == nil {
		t.Fatal("expected folder detail command")
	}
	updated, _ := model.Update(cmd())
	model = updated.(Model)
	if model.screen != screenLinks || model.links == nil {
		t.Fatal("expected links screen after opening a folder")
	}
	return model
}

func TestModelView_ShowsFolders(t *testing.T) {
	m := newTestModel(nil, testFolders())

	view := plainView(m)
	if !strings.Contains(view, "Work") {
		t.Fatalf("expected folder title in view, got: %s", view)
	}
	if !strings.Contains(view, "3 chats") {
		t.Fatalf("expected chat count in view, got: %s", view)
	}
	if !strings.Contains(view, "> ") {
		t.Fatalf("expected cursor marker in view, got: %s", view)
	}
	if !strings.Contains(view, "screen folders") {
		t.Fatalf("expected folders footer in view, got: %s", view)
	}
}

func TestModelUpdate_RefreshError(t *testing.T) {
	svc := &fakeTUIService{err: errors.New("network down")}
	m := newTestModel(svc, nil)

	model, cmd := pressRune(t, m, 'r')
	if cmd == nil {
		t.Fatal("expected refresh command")
	}
	if !model.loading {
		t.Fatal("expected loading while the refresh is in flight")
	}

	updated, _ := model.Update(cmd())
	model = updated.(Model)
	if model.err == nil {
		t.Fatal("expected refresh error")
	}
	if model.loading {
		t.Fatal("expected loading cleared after the refresh settled")
	}
}

func TestModelUpdate_NavigateFolders(t *testing.T) {
	m := newTestModel(nil, testFolders())

	model, _ := pressRune(t, m, 'j')
	if model.folders.cursor != 1 {
		t.Fatalf("expected cursor at 1, got %d", model.folders.cursor)
	}
	model, _ = pressRune(t, model, 'j')
	if model.folders.cursor != 1 {
		t.Fatalf("expected cursor clamped at 1, got %d", model.folders.cursor)
	}
	model, _ = pressRune(t, model, 'k')
	if model.folders.cursor != 0 {
		t.Fatalf("expected cursor at 0, got %d", model.folders.cursor)
	}
}

func TestModelUpdate_OpenFolderEntersLinksScreen(t *testing.T) {
	svc := &fakeTUIService{detail: testDetail()}
	m := newTestModel(svc, testFolders())

	model := openLinksScreen(t, m)
	if model.links.folderID() != 7 {
		t.Fatalf("expected links screen on folder 7, got %d", model.links.folderID())
	}

	view := plainView(model)
	if !strings.Contains(view, "Friends") {
		t.Fatalf("expected link name in view, got: %s", view)
	}
	if !strings.Contains(view, "in Work") {
		t.Fatalf("expected folder scope in footer, got: %s", view)
	}
}

func TestModelUpdate_EscLeavesLinksScreen(t *testing.T) {
	svc := &fakeTUIService{detail: testDetail()}
	m := openLinksScreen(t, newTestModel(svc, testFolders()))

	model, _ := press(t, m, tea.KeyEsc)
	if model.screen != screenFolders {
		t.Fatal("expected folders screen after esc")
	}
	if model.links != nil {
		t.Fatal("expected links screen torn down after esc")
	}
}

func TestModelStatus_ClearsOnlyForCurrentToast(t *testing.T) {
	m := newTestModel(nil, testFolders())

	updated, cmd := m.Update(actions.LinkActionSuccessMsg{Status: "Link copied to clipboard"})
	model := updated.(Model)
	if cmd == nil {
		t.Fatal("expected a clear-status command")
	}
	if model.status != "Link copied to clipboard" {
		t.Fatalf("expected toast status, got %q", model.status)
	}

	updated, _ = model.Update(clearStatusMsg{id: model.statusID - 1})
	model = updated.(Model)
	if model.status == "" {
		t.Fatal("expected stale clear to leave the status alone")
	}

	updated, _ = model.Update(clearStatusMsg{id: model.statusID})
	model = updated.(Model)
	if model.status != "" {
		t.Fatalf("expected status cleared, got %q", model.status)
	}
}

func TestModelUpdate_ThemeToggle(t *testing.T) {
	m := newTestModel(nil, testFolders())

	model, _ := pressRune(t, m, 'T')
	if model.themeName != "light" {
		t.Fatalf("expected light theme, got %q", model.themeName)
	}
	if model.status != "Theme: light" {
		t.Fatalf("expected theme toast, got %q", model.status)
	}

	model, _ = pressRune(t, model, 'T')
	if model.themeName != "dark" {
		t.Fatalf("expected dark theme after second toggle, got %q", model.themeName)
	}
}

func TestModelView_HelpOverlay(t *testing.T) {
	m := newTestModel(nil, testFolders())

	model, _ := pressRune(t, m, '?')
	if !model.showHelp {
		t.Fatal("expected help overlay open")
	}
	if !strings.Contains(plainView(model), "Keys") {
		t.Fatal("expected help contents in view")
	}

	model, _ = press(t, model, tea.KeyEsc)
	if model.showHelp {
		t.Fatal("expected help overlay closed after esc")
	}
}
