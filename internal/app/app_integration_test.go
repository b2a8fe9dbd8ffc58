package app

import (
	"context"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"foldergram/internal/chatapi"
	"foldergram/internal/storage"
)

// These tests run the service against a real sqlite store so position
// handling and the folder delta survive an actual round trip.

func newIntegrationService(t *testing.T, client *fakeClient) (*Service, context.Context) {
	t.Helper()
	repo, err := storage.NewRepository(filepath.Join(t.TempDir(), "foldergram-integration.db"))
	if err != nil {
		t.Fatalf("NewRepository returned error: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)

	if err := repo.Init(ctx); err != nil {
		t.Fatalf("Init returned error: %v", err)
	}
	return NewService(client, repo), ctx
}

func TestIntegration_LinkLifecycleThroughStore(t *testing.T) {
	client := &fakeClient{
		folders: []chatapi.Folder{
			{ID: 7, Title: "Work", Flags: chatapi.FlagShareable, AlwaysChatIDs: []int64{100, 101}},
		},
		chats: []chatapi.Chat{
			{ID: 100, Title: "Crew", Kind: chatapi.ChatKindGroup, CanInvite: true},
			{ID: 101, Title: "News", Kind: chatapi.ChatKindChannel, CanInvite: true},
		},
	}
	svc, ctx := newIntegrationService(t, client)

	folders, err := svc.Refresh(ctx)
	if err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}
	if len(folders) != 1 || folders[0].ID != 7 {
		t.Fatalf("expected folder 7 cached, got %+v", folders)
	}
	if !reflect.DeepEqual(folders[0].AlwaysChatIDs, []int64{100, 101}) {
		t.Fatalf("expected folder chats in order, got %v", folders[0].AlwaysChatIDs)
	}

	client.exported = chatapi.ExportedInvite{
		Invite: chatapi.InviteLink{FolderID: 7, URL: "https://t.me/addlist/First", ChatIDs: []int64{100, 101}},
		Folder: chatapi.Folder{ID: 7, Title: "Work", Flags: chatapi.FlagShareable, AlwaysChatIDs: []int64{100, 101, 102}},
	}
	link, err := svc.ExportLink(ctx, 7, []int64{100, 101})
	if err != nil {
		t.Fatalf("ExportLink returned error: %v", err)
	}
	if link.URL != "https://t.me/addlist/First" {
		t.Fatalf("expected exported url, got %q", link.URL)
	}

	detail, err := svc.FolderDetail(ctx, 7)
	if err != nil {
		t.Fatalf("FolderDetail returned error: %v", err)
	}
	if !reflect.DeepEqual(detail.Folder.AlwaysChatIDs, []int64{100, 101, 102}) {
		t.Fatalf("expected folder delta applied, got %v", detail.Folder.AlwaysChatIDs)
	}
	if len(detail.Links) != 1 || !reflect.DeepEqual(detail.Links[0].ChatIDs, []int64{100, 101}) {
		t.Fatalf("expected the exported link registered, got %+v", detail.Links)
	}

	client.link = chatapi.InviteLink{FolderID: 7, URL: "https://t.me/addlist/First", ChatIDs: []int64{100}}
	if _, err := svc.EditLinkChats(ctx, 7, "https://t.me/addlist/First", []int64{100}); err != nil {
		t.Fatalf("EditLinkChats returned error: %v", err)
	}

	client.link = chatapi.InviteLink{FolderID: 7, URL: "https://t.me/addlist/First", Title: "Colleagues", ChatIDs: []int64{100}}
	if _, err := svc.RenameLink(ctx, 7, "https://t.me/addlist/First", "Colleagues"); err != nil {
		t.Fatalf("RenameLink returned error: %v", err)
	}

	client.exported = chatapi.ExportedInvite{
		Invite: chatapi.InviteLink{FolderID: 7, URL: "https://t.me/addlist/Second", ChatIDs: []int64{101}},
		Folder: chatapi.Folder{ID: 7, Title: "Work", Flags: chatapi.FlagShareable, AlwaysChatIDs: []int64{100, 101, 102}},
	}
	if _, err := svc.ExportLink(ctx, 7, []int64{101}); err != nil {
		t.Fatalf("second ExportLink returned error: %v", err)
	}

	detail, err = svc.FolderDetail(ctx, 7)
	if err != nil {
		t.Fatalf("FolderDetail returned error: %v", err)
	}
	if len(detail.Links) != 2 {
		t.Fatalf("expected two links, got %d", len(detail.Links))
	}
	if detail.Links[0].URL != "https://t.me/addlist/First" || detail.Links[1].URL != "https://t.me/addlist/Second" {
		t.Fatalf("expected stable link order, got %+v", detail.Links)
	}
	if detail.Links[0].Title != "Colleagues" {
		t.Fatalf("expected rename persisted, got %q", detail.Links[0].Title)
	}
	if !reflect.DeepEqual(detail.Links[0].ChatIDs, []int64{100}) {
		t.Fatalf("expected edited chats persisted, got %v", detail.Links[0].ChatIDs)
	}

	if err := svc.DeleteLink(ctx, 7, "https://t.me/addlist/First"); err != nil {
		t.Fatalf("DeleteLink returned error: %v", err)
	}
	detail, err = svc.FolderDetail(ctx, 7)
	if err != nil {
		t.Fatalf("FolderDetail returned error: %v", err)
	}
	if len(detail.Links) != 1 || detail.Links[0].URL != "https://t.me/addlist/Second" {
		t.Fatalf("expected only the second link left, got %+v", detail.Links)
	}
}

func TestIntegration_RefreshLinksReplacesStoreInServerOrder(t *testing.T) {
	client := &fakeClient{
		folders: []chatapi.Folder{
			{ID: 7, Title: "Work", Flags: chatapi.FlagShareable, AlwaysChatIDs: []int64{100}},
		},
		chats: []chatapi.Chat{
			{ID: 100, Title: "Crew", Kind: chatapi.ChatKindGroup, CanInvite: true},
		},
	}
	svc, ctx := newIntegrationService(t, client)

	if _, err := svc.Refresh(ctx); err != nil {
		t.Fatalf("Refresh returned error: %v", err)
	}

	client.links = []chatapi.InviteLink{
		{FolderID: 7, URL: "https://t.me/addlist/B", Title: "Second"},
		{FolderID: 7, URL: "https://t.me/addlist/A", Title: "First", ChatIDs: []int64{100}},
	}
	detail, err := svc.RefreshLinks(ctx, 7)
	if err != nil {
		t.Fatalf("RefreshLinks returned error: %v", err)
	}
	if len(detail.Links) != 2 {
		t.Fatalf("expected two links, got %d", len(detail.Links))
	}
	if detail.Links[0].URL != "https://t.me/addlist/B" || detail.Links[1].URL != "https://t.me/addlist/A" {
		t.Fatalf("expected server order kept, got %+v", detail.Links)
	}

	client.links = []chatapi.InviteLink{
		{FolderID: 7, URL: "https://t.me/addlist/A", Title: "First", ChatIDs: []int64{100}},
	}
	detail, err = svc.RefreshLinks(ctx, 7)
	if err != nil {
		t.Fatalf("second RefreshLinks returned error: %v", err)
	}
	if len(detail.Links) != 1 || detail.Links[0].URL != "https://t.me/addlist/A" {
		t.Fatalf("expected the dropped link gone, got %+v", detail.Links)
	}
	if !reflect.DeepEqual(detail.Links[0].ChatIDs, []int64{100}) {
		t.Fatalf("expected link chats kept, got %v", detail.Links[0].ChatIDs)
	}
}
