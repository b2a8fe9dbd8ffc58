package actions

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"foldergram/internal/app"
	"foldergram/internal/chatapi"
)

// Service is the slice of the application service the TUI commands call.
type Service interface {
	Refresh(ctx context.Context) ([]chatapi.Folder, error)
	FolderDetail(ctx context.Context, folderID int64) (app.FolderDetail, error)
	RefreshLinks(ctx context.Context, folderID int64) (app.FolderDetail, error)
	ListCachedChats(ctx context.Context) ([]chatapi.Chat, error)
	ExportLink(ctx context.Context, folderID int64, chatIDs []int64) (chatapi.InviteLink, error)
	EditLinkChats(ctx context.Context, folderID int64, url string, chatIDs []int64) (chatapi.InviteLink, error)
	RenameLink(ctx context.Context, folderID int64, url, title string) (chatapi.InviteLink, error)
	DeleteLink(ctx context.Context, folderID int64, url string) error
	ShareLink(ctx context.Context, chatID int64, url string) error
	ImportContact(ctx context.Context, firstName, lastName, phone string) (chatapi.Chat, error)
	CreateGroup(ctx context.Context, title, about, kind string) (chatapi.Chat, error)
}

// Every command derives its per-call timeout from the context of the screen
// or box that issued it, so closing the owner cancels the request in flight.

type FoldersRefreshSuccessMsg struct {
	Folders  []chatapi.Folder
	Duration time.Duration
	Source   string
}

type FoldersRefreshErrorMsg struct {
	Err      error
	Duration time.Duration
	Source   string
}

type FolderDetailSuccessMsg struct {
	Detail app.FolderDetail
	Source string
}

type FolderDetailErrorMsg struct {
	Err    error
	Source string
}

// ExportLinkDoneMsg is produced for success and failure alike: a failed
// export hands back a placeholder link carrying only the folder id.
type ExportLinkDoneMsg struct {
	FolderID int64
	Link     chatapi.InviteLink
	Gen      int
}

type LinkChatsEditedMsg struct {
	FolderID int64
	Link     chatapi.InviteLink
	Gen      int
}

type RenameLinkSuccessMsg struct {
	FolderID int64
	Link     chatapi.InviteLink
	Status   string
}

type RenameLinkErrorMsg struct {
	Err error
}

type DeleteLinkSuccessMsg struct {
	FolderID int64
	URL      string
	Status   string
}

type DeleteLinkErrorMsg struct {
	Err error
}

type ChatsLoadSuccessMsg struct {
	Chats []chatapi.Chat
}

type ChatsLoadErrorMsg struct {
	Err error
}

type ShareLinkSuccessMsg struct {
	Status string
	Gen    int
}

type ShareLinkErrorMsg struct {
	Err error
	Gen int
}

type ImportContactSuccessMsg struct {
	Chat   chatapi.Chat
	Status string
	Gen    int
}

type ImportContactErrorMsg struct {
	Err error
	Gen int
}

type CreateGroupSuccessMsg struct {
	Chat   chatapi.Chat
	Status string
	Gen    int
}

type CreateGroupErrorMsg struct {
	Err error
	Gen int
}

type LinkActionSuccessMsg struct {
	Status string
}

type LinkActionErrorMsg struct {
	Err error
}

func RefreshFoldersCmd(parent context.Context, service Service, source string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, 12*time.Second)
		defer cancel()
		start := time.Now()

		folders, err := service.Refresh(ctx)
		if err != nil {
			return FoldersRefreshErrorMsg{Err: err, Duration: time.Since(start), Source: source}
		}
		return FoldersRefreshSuccessMsg{Folders: folders, Duration: time.Since(start), Source: source}
	}
}

func LoadFolderDetailCmd(parent context.Context, service Service, folderID int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, 10*time.Second)
		defer cancel()

		detail, err := service.FolderDetail(ctx, folderID)
		if err != nil {
			return FolderDetailErrorMsg{Err: err, Source: "cache"}
		}
		return FolderDetailSuccessMsg{Detail: detail, Source: "cache"}
	}
}

func RefreshLinksCmd(parent context.Context, service Service, folderID int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, 12*time.Second)
		defer cancel()

		detail, err := service.RefreshLinks(ctx, folderID)
		if err != nil {
			return FolderDetailErrorMsg{Err: err, Source: "server"}
		}
		return FolderDetailSuccessMsg{Detail: detail, Source: "server"}
	}
}

func ExportLinkCmd(parent context.Context, service Service, folderID int64, chatIDs []int64, gen int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, 10*time.Second)
		defer cancel()

		link, err := service.ExportLink(ctx, folderID, chatIDs)
		if err != nil {
			return ExportLinkDoneMsg{FolderID: folderID, Link: chatapi.InviteLink{FolderID: folderID}, Gen: gen}
		}
		return ExportLinkDoneMsg{FolderID: folderID, Link: link, Gen: gen}
	}
}

func EditLinkChatsCmd(parent context.Context, service Service, folderID int64, url string, chatIDs []int64, gen int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, 10*time.Second)
		defer cancel()

		link, err := service.EditLinkChats(ctx, folderID, url, chatIDs)
		if err != nil {
			// Failures are dropped; the editor keeps its current selection.
			return nil
		}
		return LinkChatsEditedMsg{FolderID: folderID, Link: link, Gen: gen}
	}
}

func RenameLinkCmd(parent context.Context, service Service, folderID int64, url, title string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, 10*time.Second)
		defer cancel()

		link, err := service.RenameLink(ctx, folderID, url, title)
		if err != nil {
			return RenameLinkErrorMsg{Err: err}
		}
		return RenameLinkSuccessMsg{FolderID: folderID, Link: link, Status: "Link name saved"}
	}
}

func DeleteLinkCmd(parent context.Context, service Service, folderID int64, url string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, 10*time.Second)
		defer cancel()

		if err := service.DeleteLink(ctx, folderID, url); err != nil {
			return DeleteLinkErrorMsg{Err: err}
		}
		return DeleteLinkSuccessMsg{FolderID: folderID, URL: url, Status: "Link deleted"}
	}
}

func LoadChatsCmd(parent context.Context, service Service) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, 10*time.Second)
		defer cancel()

		chats, err := service.ListCachedChats(ctx)
		if err != nil {
			return ChatsLoadErrorMsg{Err: err}
		}
		return ChatsLoadSuccessMsg{Chats: chats}
	}
}

func ShareLinkCmd(parent context.Context, service Service, chatID int64, chatTitle, url string, gen int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, 10*time.Second)
		defer cancel()

		if err := service.ShareLink(ctx, chatID, url); err != nil {
			if errors.Is(err, chatapi.ErrPeerFlood) {
				return ShareLinkErrorMsg{Err: errors.New(chatapi.PeerFloodErrorText(true)), Gen: gen}
			}
			return ShareLinkErrorMsg{Err: err, Gen: gen}
		}
		return ShareLinkSuccessMsg{Status: "Link sent to " + chatTitle, Gen: gen}
	}
}

func ImportContactCmd(parent context.Context, service Service, firstName, lastName, phone string, gen int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, 10*time.Second)
		defer cancel()

		chat, err := service.ImportContact(ctx, firstName, lastName, phone)
		if err != nil {
			if errors.Is(err, chatapi.ErrPeerFlood) {
				return ImportContactErrorMsg{Err: errors.New(chatapi.PeerFloodErrorText(false)), Gen: gen}
			}
			return ImportContactErrorMsg{Err: err, Gen: gen}
		}
		return ImportContactSuccessMsg{Chat: chat, Status: "Contact added: " + chat.Title, Gen: gen}
	}
}

func CreateGroupCmd(parent context.Context, service Service, title, about, kind string, gen int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, 10*time.Second)
		defer cancel()

		chat, err := service.CreateGroup(ctx, title, about, kind)
		if err != nil {
			return CreateGroupErrorMsg{Err: err, Gen: gen}
		}
		return CreateGroupSuccessMsg{Chat: chat, Status: "Created " + kind + " " + chat.Title, Gen: gen}
	}
}

func OpenLinkCmd(url string, openFn, copyFn func(string) error) tea.Cmd {
	return func() tea.Msg {
		if openFn != nil {
			if err := openFn(url); err == nil {
				return LinkActionSuccessMsg{Status: "Opened link in browser"}
			}
		}
		if copyFn != nil {
			if err := copyFn(url); err == nil {
				return LinkActionSuccessMsg{Status: "Could not open browser, link copied to clipboard"}
			}
		}
		return LinkActionErrorMsg{Err: fmt.Errorf("could not open link or copy to clipboard")}
	}
}

func CopyLinkCmd(url string, copyFn func(string) error) tea.Cmd {
	return func() tea.Msg {
		if copyFn != nil {
			if err := copyFn(url); err == nil {
				return LinkActionSuccessMsg{Status: "Link copied to clipboard"}
			}
		}
		return LinkActionErrorMsg{Err: fmt.Errorf("could not copy link to clipboard")}
	}
}
