package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"foldergram/internal/chatapi"
)

const (
	membershipAlways = "always"
	membershipNever  = "never"
)

// Repository is the local cache of folders, chats and invite links. It is
// the store behind every link mutation: remote results are registered here
// and screens render from its snapshots.
type Repository struct {
	db *sql.DB
}

func NewRepository(path string) (*Repository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	return &Repository{db: db}, nil
}

func (r *Repository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

func (r *Repository) Init(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS folders (
  id INTEGER PRIMARY KEY,
  title TEXT NOT NULL,
  flags INTEGER NOT NULL,
  synced_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS folder_chats (
  folder_id INTEGER NOT NULL,
  chat_id INTEGER NOT NULL,
  membership TEXT NOT NULL,
  position INTEGER NOT NULL,
  PRIMARY KEY (folder_id, membership, chat_id)
);
CREATE TABLE IF NOT EXISTS chats (
  id INTEGER PRIMARY KEY,
  title TEXT NOT NULL,
  kind TEXT NOT NULL,
  megagroup INTEGER NOT NULL,
  can_invite INTEGER NOT NULL,
  synced_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS links (
  folder_id INTEGER NOT NULL,
  url TEXT NOT NULL,
  title TEXT NOT NULL,
  position INTEGER NOT NULL,
  synced_at TEXT NOT NULL,
  PRIMARY KEY (folder_id, url)
);
CREATE TABLE IF NOT EXISTS link_chats (
  folder_id INTEGER NOT NULL,
  url TEXT NOT NULL,
  chat_id INTEGER NOT NULL,
  position INTEGER NOT NULL,
  PRIMARY KEY (folder_id, url, chat_id)
);
CREATE TABLE IF NOT EXISTS write_probe (
  id INTEGER PRIMARY KEY,
  touched_at TEXT NOT NULL
);
`
	_, err := r.db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

func (r *Repository) CheckWritable(ctx context.Context) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err := r.db.ExecContext(ctx, `
INSERT INTO write_probe (id, touched_at) VALUES (1, ?)
ON CONFLICT(id) DO UPDATE SET touched_at=excluded.touched_at
`, now)
	if err != nil {
		return fmt.Errorf("database not writable: %w", err)
	}
	return nil
}

func (r *Repository) SaveFolders(ctx context.Context, folders []chatapi.Folder) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	for _, folder := range folders {
		if err := upsertFolder(ctx, tx, folder, now); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// ApplyFolder registers a single folder delta, as returned by a link
// export.
func (r *Repository) ApplyFolder(ctx context.Context, folder chatapi.Folder) error {
	return r.SaveFolders(ctx, []chatapi.Folder{folder})
}

func upsertFolder(ctx context.Context, tx *sql.Tx, folder chatapi.Folder, now string) error {
	_, err := tx.ExecContext(ctx, `
INSERT INTO folders (id, title, flags, synced_at) VALUES (?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  title=excluded.title,
  flags=excluded.flags,
  synced_at=excluded.synced_at
`, folder.ID, folder.Title, int64(folder.Flags), now)
	if err != nil {
		return fmt.Errorf("save folder %d: %w", folder.ID, err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM folder_chats WHERE folder_id = ?`, folder.ID); err != nil {
		return fmt.Errorf("clear folder %d chats: %w", folder.ID, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO folder_chats (folder_id, chat_id, membership, position) VALUES (?, ?, ?, ?)
`)
	if err != nil {
		return fmt.Errorf("prepare folder chats statement: %w", err)
	}
	defer stmt.Close()

	for pos, chatID := range folder.AlwaysChatIDs {
		if _, err := stmt.ExecContext(ctx, folder.ID, chatID, membershipAlways, pos); err != nil {
			return fmt.Errorf("save folder %d chat %d: %w", folder.ID, chatID, err)
		}
	}
	for pos, chatID := range folder.NeverChatIDs {
		if _, err := stmt.ExecContext(ctx, folder.ID, chatID, membershipNever, pos); err != nil {
			return fmt.Errorf("save folder %d excluded chat %d: %w", folder.ID, chatID, err)
		}
	}
	return nil
}

func (r *Repository) ListFolders(ctx context.Context) ([]chatapi.Folder, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, title, flags FROM folders ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query folders: %w", err)
	}
	defer rows.Close()

	folders := make([]chatapi.Folder, 0, 8)
	index := make(map[int64]int)
	for rows.Next() {
		var folder chatapi.Folder
		var flags int64
		if err := rows.Scan(&folder.ID, &folder.Title, &flags); err != nil {
			return nil, fmt.Errorf("scan folder: %w", err)
		}
		folder.Flags = chatapi.FolderFlags(flags)
		index[folder.ID] = len(folders)
		folders = append(folders, folder)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}

	members, err := r.db.QueryContext(ctx, `
SELECT folder_id, chat_id, membership
FROM folder_chats
ORDER BY folder_id, membership, position
`)
	if err != nil {
		return nil, fmt.Errorf("query folder chats: %w", err)
	}
	defer members.Close()

	for members.Next() {
		var folderID, chatID int64
		var membership string
		if err := members.Scan(&folderID, &chatID, &membership); err != nil {
			return nil, fmt.Errorf("scan folder chat: %w", err)
		}
		i, ok := index[folderID]
		if !ok {
			continue
		}
		if membership == membershipNever {
			folders[i].NeverChatIDs = append(folders[i].NeverChatIDs, chatID)
			continue
		}
		folders[i].AlwaysChatIDs = append(folders[i].AlwaysChatIDs, chatID)
	}
	if err := members.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}

	return folders, nil
}

func (r *Repository) GetFolder(ctx context.Context, folderID int64) (chatapi.Folder, error) {
	var folder chatapi.Folder
	var flags int64
	err := r.db.QueryRowContext(ctx, `SELECT id, title, flags FROM folders WHERE id = ?`, folderID).
		Scan(&folder.ID, &folder.Title, &flags)
	if errors.Is(err, sql.ErrNoRows) {
		return chatapi.Folder{}, fmt.Errorf("folder %d not found", folderID)
	}
	if err != nil {
		return chatapi.Folder{}, fmt.Errorf("query folder %d: %w", folderID, err)
	}
	folder.Flags = chatapi.FolderFlags(flags)

	rows, err := r.db.QueryContext(ctx, `
SELECT chat_id, membership
FROM folder_chats
WHERE folder_id = ?
ORDER BY membership, position
`, folderID)
	if err != nil {
		return chatapi.Folder{}, fmt.Errorf("query folder %d chats: %w", folderID, err)
	}
	defer rows.Close()

	for rows.Next() {
		var chatID int64
		var membership string
		if err := rows.Scan(&chatID, &membership); err != nil {
			return chatapi.Folder{}, fmt.Errorf("scan folder chat: %w", err)
		}
		if membership == membershipNever {
			folder.NeverChatIDs = append(folder.NeverChatIDs, chatID)
			continue
		}
		folder.AlwaysChatIDs = append(folder.AlwaysChatIDs, chatID)
	}
	if err := rows.Err(); err != nil {
		return chatapi.Folder{}, fmt.Errorf("rows iteration: %w", err)
	}

	return folder, nil
}

func (r *Repository) SaveChats(ctx context.Context, chats []chatapi.Chat) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
INSERT INTO chats (id, title, kind, megagroup, can_invite, synced_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  title=excluded.title,
  kind=excluded.kind,
  megagroup=excluded.megagroup,
  can_invite=excluded.can_invite,
  synced_at=excluded.synced_at
`)
	if err != nil {
		return fmt.Errorf("prepare save statement: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	for _, chat := range chats {
		_, err := stmt.ExecContext(ctx, chat.ID, chat.Title, chat.Kind, chat.Megagroup, chat.CanInvite, now)
		if err != nil {
			return fmt.Errorf("save chat %d: %w", chat.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func (r *Repository) ListChats(ctx context.Context) ([]chatapi.Chat, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id, title, kind, megagroup, can_invite
FROM chats
ORDER BY title COLLATE NOCASE, id
`)
	if err != nil {
		return nil, fmt.Errorf("query chats: %w", err)
	}
	defer rows.Close()

	chats := make([]chatapi.Chat, 0, 32)
	for rows.Next() {
		var chat chatapi.Chat
		if err := rows.Scan(&chat.ID, &chat.Title, &chat.Kind, &chat.Megagroup, &chat.CanInvite); err != nil {
			return nil, fmt.Errorf("scan chat: %w", err)
		}
		chats = append(chats, chat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}

	return chats, nil
}

// SaveLinks replaces a folder's whole link list, keeping the given order.
func (r *Repository) SaveLinks(ctx context.Context, folderID int64, links []chatapi.InviteLink) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM links WHERE folder_id = ?`, folderID); err != nil {
		return fmt.Errorf("clear folder %d links: %w", folderID, err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM link_chats WHERE folder_id = ?`, folderID); err != nil {
		return fmt.Errorf("clear folder %d link chats: %w", folderID, err)
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	for pos, link := range links {
		if err := insertLink(ctx, tx, folderID, link, int64(pos), now); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// UpsertLink registers one link: new links append at the tail, known links
// update title and chats in place keeping their position.
func (r *Repository) UpsertLink(ctx context.Context, link chatapi.InviteLink) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var position int64
	err = tx.QueryRowContext(ctx, `SELECT position FROM links WHERE folder_id = ? AND url = ?`, link.FolderID, link.URL).
		Scan(&position)
	if errors.Is(err, sql.ErrNoRows) {
		err = tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(position)+1, 0) FROM links WHERE folder_id = ?`, link.FolderID).
			Scan(&position)
	}
	if err != nil {
		return fmt.Errorf("resolve link position: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM links WHERE folder_id = ? AND url = ?`, link.FolderID, link.URL); err != nil {
		return fmt.Errorf("clear link %q: %w", link.URL, err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM link_chats WHERE folder_id = ? AND url = ?`, link.FolderID, link.URL); err != nil {
		return fmt.Errorf("clear link %q chats: %w", link.URL, err)
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)
	if err := insertLink(ctx, tx, link.FolderID, link, position, now); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func insertLink(ctx context.Context, tx *sql.Tx, folderID int64, link chatapi.InviteLink, position int64, now string) error {
	_, err := tx.ExecContext(ctx, `
INSERT INTO links (folder_id, url, title, position, synced_at) VALUES (?, ?, ?, ?, ?)
`, folderID, link.URL, link.Title, position, now)
	if err != nil {
		return fmt.Errorf("save link %q: %w", link.URL, err)
	}

	for pos, chatID := range link.ChatIDs {
		_, err := tx.ExecContext(ctx, `
INSERT INTO link_chats (folder_id, url, chat_id, position) VALUES (?, ?, ?, ?)
`, folderID, link.URL, chatID, pos)
		if err != nil {
			return fmt.Errorf("save link %q chat %d: %w", link.URL, chatID, err)
		}
	}
	return nil
}

// RenameLink is the store half of the title edit: links are addressed by
// (folder id, url).
func (r *Repository) RenameLink(ctx context.Context, folderID int64, url, title string) error {
	_, err := r.db.ExecContext(ctx, `
UPDATE links SET title = ? WHERE folder_id = ? AND url = ?
`, title, folderID, url)
	if err != nil {
		return fmt.Errorf("rename link %q: %w", url, err)
	}
	return nil
}

func (r *Repository) DeleteLink(ctx context.Context, folderID int64, url string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM links WHERE folder_id = ? AND url = ?`, folderID, url); err != nil {
		return fmt.Errorf("delete link %q: %w", url, err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM link_chats WHERE folder_id = ? AND url = ?`, folderID, url); err != nil {
		return fmt.Errorf("delete link %q chats: %w", url, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func (r *Repository) ListFolderLinks(ctx context.Context, folderID int64) ([]chatapi.InviteLink, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT url, title
FROM links
WHERE folder_id = ?
ORDER BY position
`, folderID)
	if err != nil {
		return nil, fmt.Errorf("query folder %d links: %w", folderID, err)
	}
	defer rows.Close()

	links := make([]chatapi.InviteLink, 0, 8)
	index := make(map[string]int)
	for rows.Next() {
		link := chatapi.InviteLink{FolderID: folderID}
		if err := rows.Scan(&link.URL, &link.Title); err != nil {
			return nil, fmt.Errorf("scan link: %w", err)
		}
		index[link.URL] = len(links)
		links = append(links, link)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}

	chats, err := r.db.QueryContext(ctx, `
SELECT url, chat_id
FROM link_chats
WHERE folder_id = ?
ORDER BY url, position
`, folderID)
	if err != nil {
		return nil, fmt.Errorf("query folder %d link chats: %w", folderID, err)
	}
	defer chats.Close()

	for chats.Next() {
		var url string
		var chatID int64
		if err := chats.Scan(&url, &chatID); err != nil {
			return nil, fmt.Errorf("scan link chat: %w", err)
		}
		i, ok := index[url]
		if !ok {
			continue
		}
		links[i].ChatIDs = append(links[i].ChatIDs, chatID)
	}
	if err := chats.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}

	return links, nil
}
