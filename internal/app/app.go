package app

import (
	"context"
	"fmt"

	"foldergram/internal/chatapi"
)

type ChatClient interface {
	ListFolders(ctx context.Context) ([]chatapi.Folder, error)
	ListChats(ctx context.Context) ([]chatapi.Chat, error)
	ListFolderLinks(ctx context.Context, folderID int64) ([]chatapi.InviteLink, error)
	ExportFolderLink(ctx context.Context, folderID int64, title string, chatIDs []int64) (chatapi.ExportedInvite, error)
	EditFolderLinkChats(ctx context.Context, folderID int64, linkURL string, chatIDs []int64) (chatapi.InviteLink, error)
	RenameFolderLink(ctx context.Context, folderID int64, linkURL, title string) (chatapi.InviteLink, error)
	DeleteFolderLink(ctx context.Context, folderID int64, linkURL string) error
	ImportContact(ctx context.Context, firstName, lastName, phone string) (chatapi.Chat, error)
	CreateGroup(ctx context.Context, title, about, kind string) (chatapi.Chat, error)
	SendMessage(ctx context.Context, chatID int64, text string) error
}

type Repository interface {
	SaveFolders(ctx context.Context, folders []chatapi.Folder) error
	ApplyFolder(ctx context.Context, folder chatapi.Folder) error
	ListFolders(ctx context.Context) ([]chatapi.Folder, error)
	GetFolder(ctx context.Context, folderID int64) (chatapi.Folder, error)
	SaveChats(ctx context.Context, chats []chatapi.Chat) error
	ListChats(ctx context.Context) ([]chatapi.Chat, error)
	SaveLinks(ctx context.Context, folderID int64, links []chatapi.InviteLink) error
	UpsertLink(ctx context.Context, link chatapi.InviteLink) error
	RenameLink(ctx context.Context, folderID int64, url, title string) error
	DeleteLink(ctx context.Context, folderID int64, url string) error
	ListFolderLinks(ctx context.Context, folderID int64) ([]chatapi.InviteLink, error)
}

// FolderDetail is one folder's store snapshot: the definition, a chat
// lookup, and the ordered link list the links screen reconciles against.
type FolderDetail struct {
	Folder chatapi.Folder
	Chats  map[int64]chatapi.Chat
	Links  []chatapi.InviteLink
}

type Service struct {
	client ChatClient
	repo   Repository
}

func NewService(client ChatClient, repo Repository) *Service {
	return &Service{client: client, repo: repo}
}

// Refresh pulls folders and chats from the server into the cache and
// returns the cached folder list.
func (s *Service) Refresh(ctx context.Context) ([]chatapi.Folder, error) {
	folders, err := s.client.ListFolders(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch folders from server: %w", err)
	}

	chats, err := s.client.ListChats(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch chats from server: %w", err)
	}
	if err := s.repo.SaveChats(ctx, chats); err != nil {
		return nil, fmt.Errorf("save chats to cache: %w", err)
	}

	if err := s.repo.SaveFolders(ctx, folders); err != nil {
		return nil, fmt.Errorf("save folders to cache: %w", err)
	}

	cached, err := s.repo.ListFolders(ctx)
	if err != nil {
		return nil, fmt.Errorf("load folders from cache: %w", err)
	}
	return cached, nil
}

func (s *Service) ListCachedFolders(ctx context.Context) ([]chatapi.Folder, error) {
	folders, err := s.repo.ListFolders(ctx)
	if err != nil {
		return nil, fmt.Errorf("load folders from cache: %w", err)
	}
	return folders, nil
}

func (s *Service) ListCachedChats(ctx context.Context) ([]chatapi.Chat, error) {
	chats, err := s.repo.ListChats(ctx)
	if err != nil {
		return nil, fmt.Errorf("load chats from cache: %w", err)
	}
	return chats, nil
}

// FolderDetail assembles the folder's current store snapshot.
func (s *Service) FolderDetail(ctx context.Context, folderID int64) (FolderDetail, error) {
	folder, err := s.repo.GetFolder(ctx, folderID)
	if err != nil {
		return FolderDetail{}, fmt.Errorf("load folder from cache: %w", err)
	}

	links, err := s.repo.ListFolderLinks(ctx, folderID)
	if err != nil {
		return FolderDetail{}, fmt.Errorf("load folder links from cache: %w", err)
	}

	chats, err := s.repo.ListChats(ctx)
	if err != nil {
		return FolderDetail{}, fmt.Errorf("load chats from cache: %w", err)
	}
	lookup := make(map[int64]chatapi.Chat, len(chats))
	for _, chat := range chats {
		lookup[chat.ID] = chat
	}

	return FolderDetail{Folder: folder, Chats: lookup, Links: links}, nil
}

// RefreshLinks pulls one folder's links from the server into the cache,
// replacing the cached list in server order, and returns the refreshed
// snapshot.
func (s *Service) RefreshLinks(ctx context.Context, folderID int64) (FolderDetail, error) {
	links, err := s.client.ListFolderLinks(ctx, folderID)
	if err != nil {
		return FolderDetail{}, fmt.Errorf("fetch folder links from server: %w", err)
	}
	if err := s.repo.SaveLinks(ctx, folderID, links); err != nil {
		return FolderDetail{}, fmt.Errorf("save folder links to cache: %w", err)
	}
	return s.FolderDetail(ctx, folderID)
}

// ExportLink creates an invite link carrying the given chats. The new
// link has no title. On success the returned folder delta is applied to
// the store before the link itself is registered. The caller guarantees
// the chat set is not empty.
func (s *Service) ExportLink(ctx context.Context, folderID int64, chatIDs []int64) (chatapi.InviteLink, error) {
	if len(chatIDs) == 0 {
		panic("export link needs at least one chat")
	}

	exported, err := s.client.ExportFolderLink(ctx, folderID, "", chatIDs)
	if err != nil {
		return chatapi.InviteLink{}, fmt.Errorf("export folder link: %w", err)
	}
	if err := s.repo.ApplyFolder(ctx, exported.Folder); err != nil {
		return chatapi.InviteLink{}, fmt.Errorf("apply folder delta to cache: %w", err)
	}
	if err := s.repo.UpsertLink(ctx, exported.Invite); err != nil {
		return chatapi.InviteLink{}, fmt.Errorf("save link to cache: %w", err)
	}
	return exported.Invite, nil
}

// EditLinkChats restricts an existing link to the given chats and
// registers the server's result in the store. The caller guarantees a
// real link (non-zero folder, non-empty url) and a non-empty chat set.
func (s *Service) EditLinkChats(ctx context.Context, folderID int64, url string, chatIDs []int64) (chatapi.InviteLink, error) {
	if folderID == 0 {
		panic("edit link chats without a folder")
	}
	if url == "" {
		panic("edit link chats without a url")
	}
	if len(chatIDs) == 0 {
		panic("edit link chats without chats")
	}

	link, err := s.client.EditFolderLinkChats(ctx, folderID, url, chatIDs)
	if err != nil {
		return chatapi.InviteLink{}, fmt.Errorf("edit link chats: %w", err)
	}
	if err := s.repo.UpsertLink(ctx, link); err != nil {
		return chatapi.InviteLink{}, fmt.Errorf("save link to cache: %w", err)
	}
	return link, nil
}

func (s *Service) RenameLink(ctx context.Context, folderID int64, url, title string) (chatapi.InviteLink, error) {
	link, err := s.client.RenameFolderLink(ctx, folderID, url, title)
	if err != nil {
		return chatapi.InviteLink{}, fmt.Errorf("rename link: %w", err)
	}
	if err := s.repo.RenameLink(ctx, folderID, url, link.Title); err != nil {
		return chatapi.InviteLink{}, fmt.Errorf("rename link in cache: %w", err)
	}
	return link, nil
}

func (s *Service) DeleteLink(ctx context.Context, folderID int64, url string) error {
	if err := s.client.DeleteFolderLink(ctx, folderID, url); err != nil {
		return fmt.Errorf("delete link: %w", err)
	}
	if err := s.repo.DeleteLink(ctx, folderID, url); err != nil {
		return fmt.Errorf("delete link from cache: %w", err)
	}
	return nil
}

// ShareLink sends the link url as a message to the chat.
func (s *Service) ShareLink(ctx context.Context, chatID int64, url string) error {
	if err := s.client.SendMessage(ctx, chatID, url); err != nil {
		return fmt.Errorf("share link: %w", err)
	}
	return nil
}

func (s *Service) ImportContact(ctx context.Context, firstName, lastName, phone string) (chatapi.Chat, error) {
	chat, err := s.client.ImportContact(ctx, firstName, lastName, phone)
	if err != nil {
		return chatapi.Chat{}, fmt.Errorf("import contact: %w", err)
	}
	if err := s.repo.SaveChats(ctx, []chatapi.Chat{chat}); err != nil {
		return chatapi.Chat{}, fmt.Errorf("save contact to cache: %w", err)
	}
	return chat, nil
}

func (s *Service) CreateGroup(ctx context.Context, title, about, kind string) (chatapi.Chat, error) {
	chat, err := s.client.CreateGroup(ctx, title, about, kind)
	if err != nil {
		return chatapi.Chat{}, fmt.Errorf("create group: %w", err)
	}
	if err := s.repo.SaveChats(ctx, []chatapi.Chat{chat}); err != nil {
		return chatapi.Chat{}, fmt.Errorf("save group to cache: %w", err)
	}
	return chat, nil
}
