package chatapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/net/proxy"
)

// Chat kinds as the server reports them.
const (
	ChatKindUser    = "user"
	ChatKindBot     = "bot"
	ChatKindGroup   = "group"
	ChatKindChannel = "channel"
)

// FolderFlags is the folder definition bitmask. A folder is shareable only
// when no flag besides FlagShareable is set.
type FolderFlags uint32

const (
	FlagContacts FolderFlags = 1 << iota
	FlagNonContacts
	FlagGroups
	FlagChannels
	FlagBots
	FlagExcludeMuted
	FlagExcludeRead
	FlagExcludeArchived
	FlagShareable
)

// ErrPeerFlood reports that the server throttled contact or invite
// operations for this account.
var ErrPeerFlood = errors.New("peer flood limit reached")

// PeerFloodErrorText is the user-facing message for ErrPeerFlood. The
// invite variant is shown when the flood was hit adding someone to a group.
func PeerFloodErrorText(invite bool) string {
	if invite {
		return "Sorry, you can only add your contacts to groups at the moment."
	}
	return "Sorry, you can only message mutual contacts at the moment."
}

// Chat is the subset of peer fields the presentation layer consumes.
type Chat struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Kind      string `json:"kind"`
	Megagroup bool   `json:"megagroup"`
	CanInvite bool   `json:"can_invite"`
}

// Folder is a chat folder definition plus its ordered membership lists.
type Folder struct {
	ID            int64       `json:"id"`
	Title         string      `json:"title"`
	Flags         FolderFlags `json:"flags"`
	AlwaysChatIDs []int64     `json:"always_chat_ids"`
	NeverChatIDs  []int64     `json:"never_chat_ids"`
}

// InviteLink is a shareable folder invite plus the chats it grants. A link
// is addressed by (FolderID, URL) everywhere; URL may be empty for a
// placeholder that has not been exported yet.
type InviteLink struct {
	FolderID int64   `json:"folder_id"`
	URL      string  `json:"url"`
	Title    string  `json:"title"`
	ChatIDs  []int64 `json:"chat_ids"`
}

// ExportedInvite carries a freshly created link together with the folder
// delta the server applied while registering it.
type ExportedInvite struct {
	Invite InviteLink `json:"invite"`
	Folder Folder     `json:"folder"`
}

type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// NewHTTPClient returns the http.Client used by NewClient callers: a plain
// client when proxyAddr is empty, otherwise one dialing through the given
// SOCKS5 proxy address.
func NewHTTPClient(proxyAddr string) (*http.Client, error) {
	if proxyAddr == "" {
		return &http.Client{Timeout: 15 * time.Second}, nil
	}
	dialer, err := proxy.SOCKS5("tcp", proxyAddr, nil, proxy.Direct)
	if err != nil {
		return nil, fmt.Errorf("socks proxy %s: %w", proxyAddr, err)
	}
	transport := &http.Transport{}
	if cd, ok := dialer.(proxy.ContextDialer); ok {
		transport.DialContext = cd.DialContext
	} else {
		transport.Dial = dialer.Dial
	}
	return &http.Client{Timeout: 15 * time.Second, Transport: transport}, nil
}

func NewClient(baseURL, token string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    httpClient,
	}
}

func (c *Client) Authenticate(ctx context.Context) error {
	req, err := c.newRequest(ctx, http.MethodGet, "/session.json", nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("authenticate request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		return nil
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return fmt.Errorf("authentication failed: invalid token")
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return fmt.Errorf("authenticate failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
}

func (c *Client) ListFolders(ctx context.Context) ([]Folder, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/folders.json", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list folders request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("list folders failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var folders []Folder
	if err := json.NewDecoder(resp.Body).Decode(&folders); err != nil {
		return nil, fmt.Errorf("decode folders response: %w", err)
	}
	return folders, nil
}

func (c *Client) ListChats(ctx context.Context) ([]Chat, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/chats.json", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list chats request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("list chats failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var chats []Chat
	if err := json.NewDecoder(resp.Body).Decode(&chats); err != nil {
		return nil, fmt.Errorf("decode chats response: %w", err)
	}
	return chats, nil
}

func (c *Client) ListFolderLinks(ctx context.Context, folderID int64) ([]InviteLink, error) {
	req, err := c.newRequest(ctx, http.MethodGet, c.linksPath(folderID, ""), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list folder links request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("list folder links failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var links []InviteLink
	if err := json.NewDecoder(resp.Body).Decode(&links); err != nil {
		return nil, fmt.Errorf("decode folder links response: %w", err)
	}
	return links, nil
}

// ExportFolderLink creates a new invite link granting the given chats. The
// response carries both the link and the folder delta the server applied.
func (c *Client) ExportFolderLink(ctx context.Context, folderID int64, title string, chatIDs []int64) (ExportedInvite, error) {
	payload := struct {
		Title   string  `json:"title"`
		ChatIDs []int64 `json:"chat_ids"`
	}{Title: title, ChatIDs: chatIDs}

	req, err := c.newJSONRequest(ctx, http.MethodPost, c.linksPath(folderID, ""), payload)
	if err != nil {
		return ExportedInvite{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return ExportedInvite{}, fmt.Errorf("export folder link request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return ExportedInvite{}, fmt.Errorf("export folder link failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var exported ExportedInvite
	if err := json.NewDecoder(resp.Body).Decode(&exported); err != nil {
		return ExportedInvite{}, fmt.Errorf("decode exported link response: %w", err)
	}
	return exported, nil
}

func (c *Client) EditFolderLinkChats(ctx context.Context, folderID int64, linkURL string, chatIDs []int64) (InviteLink, error) {
	payload := struct {
		ChatIDs []int64 `json:"chat_ids"`
	}{ChatIDs: chatIDs}
	return c.patchFolderLink(ctx, folderID, linkURL, payload, "link chats")
}

func (c *Client) RenameFolderLink(ctx context.Context, folderID int64, linkURL, title string) (InviteLink, error) {
	payload := struct {
		Title string `json:"title"`
	}{Title: title}
	return c.patchFolderLink(ctx, folderID, linkURL, payload, "link title")
}

func (c *Client) patchFolderLink(ctx context.Context, folderID int64, linkURL string, payload any, resource string) (InviteLink, error) {
	req, err := c.newJSONRequest(ctx, http.MethodPatch, c.linksPath(folderID, linkURL), payload)
	if err != nil {
		return InviteLink{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return InviteLink{}, fmt.Errorf("edit %s request failed: %w", resource, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return InviteLink{}, fmt.Errorf("edit %s failed with status %d: %s", resource, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var link InviteLink
	if err := json.NewDecoder(resp.Body).Decode(&link); err != nil {
		return InviteLink{}, fmt.Errorf("decode %s response: %w", resource, err)
	}
	return link, nil
}

func (c *Client) DeleteFolderLink(ctx context.Context, folderID int64, linkURL string) error {
	req, err := c.newRequest(ctx, http.MethodDelete, c.linksPath(folderID, linkURL), nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("delete folder link request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("delete folder link failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}

// ImportContact registers a phone contact and returns the resulting chat.
// A peer_flood rejection maps to ErrPeerFlood.
func (c *Client) ImportContact(ctx context.Context, firstName, lastName, phone string) (Chat, error) {
	payload := struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Phone     string `json:"phone"`
	}{FirstName: firstName, LastName: lastName, Phone: phone}

	req, err := c.newJSONRequest(ctx, http.MethodPost, "/contacts.json", payload)
	if err != nil {
		return Chat{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Chat{}, fmt.Errorf("import contact request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if apiErrorCode(body) == "peer_flood" {
			return Chat{}, fmt.Errorf("import contact: %w", ErrPeerFlood)
		}
		return Chat{}, fmt.Errorf("import contact failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var chat Chat
	if err := json.NewDecoder(resp.Body).Decode(&chat); err != nil {
		return Chat{}, fmt.Errorf("decode contact response: %w", err)
	}
	return chat, nil
}

// CreateGroup creates a group, channel or megagroup chat owned by the
// current account.
func (c *Client) CreateGroup(ctx context.Context, title, about, kind string) (Chat, error) {
	payload := struct {
		Title string `json:"title"`
		About string `json:"about"`
		Kind  string `json:"kind"`
	}{Title: title, About: about, Kind: kind}

	req, err := c.newJSONRequest(ctx, http.MethodPost, "/chats.json", payload)
	if err != nil {
		return Chat{}, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Chat{}, fmt.Errorf("create group request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return Chat{}, fmt.Errorf("create group failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var chat Chat
	if err := json.NewDecoder(resp.Body).Decode(&chat); err != nil {
		return Chat{}, fmt.Errorf("decode group response: %w", err)
	}
	return chat, nil
}

func (c *Client) SendMessage(ctx context.Context, chatID int64, text string) error {
	payload := struct {
		ChatID int64  `json:"chat_id"`
		Text   string `json:"text"`
	}{ChatID: chatID, Text: text}

	req, err := c.newJSONRequest(ctx, http.MethodPost, "/messages.json", payload)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("send message request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		if apiErrorCode(body) == "peer_flood" {
			return fmt.Errorf("send message: %w", ErrPeerFlood)
		}
		return fmt.Errorf("send message failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}

// linksPath builds the folder links path; a non-empty linkURL selects one
// link via the url query parameter, matching the store's (id, url) keying.
func (c *Client) linksPath(folderID int64, linkURL string) string {
	path := "/folders/" + strconv.FormatInt(folderID, 10) + "/links.json"
	if linkURL == "" {
		return path
	}
	q := make(url.Values)
	q.Set("url", linkURL)
	return path + "?" + q.Encode()
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	fullURL := c.baseURL + path
	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")
	return req, nil
}

func (c *Client) newJSONRequest(ctx context.Context, method, path string, payload any) (*http.Request, error) {
	buf, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode request payload: %w", err)
	}
	req, err := c.newRequest(ctx, method, path, bytes.NewReader(buf))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func apiErrorCode(body []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Error
}
