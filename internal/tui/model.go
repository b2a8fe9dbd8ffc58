package tui

import (
	"context"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"foldergram/internal/chatapi"
	"foldergram/internal/sharing"
	"foldergram/internal/tui/actions"
	"foldergram/internal/tui/platform"
	"foldergram/internal/tui/rows"
	"foldergram/internal/tui/state"
	"foldergram/internal/tui/theme"
	"foldergram/internal/tui/view"
)

type screenKind int

const (
	screenFolders screenKind = iota
	screenLinks
)

type clearStatusMsg struct {
	id int
}

type Model struct {
	service actions.Service
	themes  *theme.Notifier

	rootCtx    context.Context
	rootCancel context.CancelFunc
	nextGen    int

	screen  screenKind
	folders *foldersScreen
	links   *linksScreen

	menu       *menuBox
	renameBox  *renameBox
	deleteBox  *deleteBox
	qrBox      *qrBox
	shareBox   *shareBox
	chatsBox   *chatsBox
	linkBox    *linkBox
	contactBox *contactBox
	groupBox   *groupBox

	openURLFn func(string) error
	copyFn    func(string) error

	themeName string
	width     int
	height    int
	loading   bool
	status    string
	statusID  int
	err       error
	showHelp  bool
}

func NewModel(service actions.Service, folders []chatapi.Folder, themes *theme.Notifier, themeName string) Model {
	ctx, cancel := context.WithCancel(context.Background())
	return Model{
		service:    service,
		themes:     themes,
		themeName:  themeName,
		rootCtx:    ctx,
		rootCancel: cancel,
		folders:    newFoldersScreen(folders),
		openURLFn:  platform.OpenURLInBrowser,
		copyFn:     platform.CopyToClipboard,
	}
}

func (m Model) Init() tea.Cmd {
	if m.service == nil {
		return nil
	}
	return actions.RefreshFoldersCmd(m.rootCtx, m.service, "startup")
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.links != nil {
			m.links.dropRenderCaches()
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case clearStatusMsg:
		if msg.id == m.statusID {
			m.status = ""
		}
		return m, nil
	}
	return m.handleActionMsg(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.rootCancel()
		return m, tea.Quit
	}
	if m.showHelp {
		switch msg.String() {
		case "esc", "?", "q":
			m.showHelp = false
		}
		return m, nil
	}
	if m.hasBox() {
		return m.updateBox(msg)
	}
	switch msg.String() {
	case "?":
		m.showHelp = true
		return m, nil
	case "T":
		return m.toggleTheme()
	}
	if m.screen == screenLinks && m.links != nil {
		return m.updateLinks(msg)
	}
	return m.updateFolders(msg)
}

func (m Model) toggleTheme() (tea.Model, tea.Cmd) {
	if m.themeName == "light" {
		m.themeName = "dark"
	} else {
		m.themeName = "light"
	}
	m.themes.Apply(theme.ByName(m.themeName))
	return m, m.toast("Theme: " + m.themeName)
}

func (m *Model) takeGen() int {
	m.nextGen++
	return m.nextGen
}

func (m *Model) toast(status string) tea.Cmd {
	m.err = nil
	m.status = status
	m.statusID++
	return clearStatusCmd(m.statusID, 3*time.Second)
}

func clearStatusCmd(id int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}

func (m Model) hasBox() bool {
	return m.menu != nil || m.renameBox != nil || m.deleteBox != nil || m.qrBox != nil ||
		m.shareBox != nil || m.chatsBox != nil || m.linkBox != nil || m.contactBox != nil ||
		m.groupBox != nil
}

// updateBox routes a key to the topmost open box.
func (m Model) updateBox(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case m.menu != nil:
		return m.updateMenu(msg)
	case m.renameBox != nil:
		return m.updateRenameBox(msg)
	case m.deleteBox != nil:
		return m.updateDeleteBox(msg)
	case m.qrBox != nil:
		return m.updateQRBox(msg)
	case m.shareBox != nil:
		return m.updateShareBox(msg)
	case m.chatsBox != nil:
		return m.updateChatsBox(msg)
	case m.linkBox != nil:
		return m.updateLinkBox(msg)
	case m.contactBox != nil:
		return m.updateContactBox(msg)
	case m.groupBox != nil:
		return m.updateGroupBox(msg)
	}
	return m, nil
}

func (m Model) updateFolders(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.rootCancel()
		return m, tea.Quit
	case "up", "k":
		m.folders.moveBy(-1)
	case "down", "j":
		m.folders.moveBy(1)
	case "pgup", "ctrl+b":
		m.folders.moveBy(-state.PageStep(m.height, m.status != ""))
	case "pgdown", "ctrl+f":
		m.folders.moveBy(state.PageStep(m.height, m.status != ""))
	case "g", "home":
		m.folders.cursor = 0
	case "end":
		m.folders.cursor = state.ClampCursor(len(m.folders.folders)-1, len(m.folders.folders))
	case "enter":
		folder, ok := m.folders.currentFolder()
		if !ok {
			return m, nil
		}
		m.loading = true
		m.err = nil
		return m, actions.LoadFolderDetailCmd(m.rootCtx, m.service, folder.ID)
	case "r":
		m.loading = true
		m.status = ""
		m.err = nil
		return m, actions.RefreshFoldersCmd(m.rootCtx, m.service, "manual")
	case "A":
		m.contactBox = newContactBox(m.rootCtx, m.takeGen())
	case "G":
		m.groupBox = newGroupBox(m.rootCtx, m.takeGen())
	}
	return m, nil
}

func (m Model) updateLinks(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.links
	switch msg.String() {
	case "q":
		m.rootCancel()
		return m, tea.Quit
	case "esc", "backspace":
		m.closeLinksScreen()
	case "up", "k":
		s.moveBy(-1)
	case "down", "j":
		s.moveBy(1)
	case "pgup", "ctrl+b":
		s.moveBy(-state.PageStep(m.height, m.status != ""))
	case "pgdown", "ctrl+f":
		s.moveBy(state.PageStep(m.height, m.status != ""))
	case "g", "home":
		s.cursor = 0
	case "G", "end":
		s.cursor = state.ClampCursor(s.list.Len()-1, s.list.Len())
	case "r":
		m.loading = true
		m.err = nil
		return m, actions.RefreshLinksCmd(s.ctx, m.service, s.folderID())
	case "a":
		return m.startCreateLink()
	case "enter":
		if row := s.currentRow(); row != nil {
			m.openLinkBox(row.Data())
		}
	case "m":
		if row := s.currentRow(); row != nil {
			m.openMenu(row)
		}
	case "c":
		if row := s.currentRow(); row != nil {
			return m.copyLink(row.Data())
		}
	case "o":
		if row := s.currentRow(); row != nil {
			return m.openLink(row.Data())
		}
	case "s":
		if row := s.currentRow(); row != nil {
			return m.openShareBox(row.Data())
		}
	case "Q":
		if row := s.currentRow(); row != nil {
			return m.openQRBox(row.Data())
		}
	case "n":
		if row := s.currentRow(); row != nil {
			m.renameBox = newRenameBox(row.Data())
		}
	case "d":
		if row := s.currentRow(); row != nil {
			m.deleteBox = newDeleteBox(row.Data(), row.Name())
		}
	case "v":
		if row := s.currentRow(); row != nil {
			m.chatsBox = newChatsBox(row.Data(), row.Name(), s.detail.Chats)
		}
	}
	return m, nil
}

// openMenu replaces any open menu with one for the given row.
func (m *Model) openMenu(row *rows.Row) {
	m.menu = newMenuBox(row)
}

func (m *Model) openLinkBox(link chatapi.InviteLink) {
	s := m.links
	m.linkBox = newLinkBox(s.ctx, m.takeGen(), link, s.detail.Folder, s.detail.Chats)
}

func (m *Model) closeLinkBox() {
	if m.linkBox == nil {
		return
	}
	m.linkBox.close()
	m.linkBox = nil
}

func (m *Model) closeLinksScreen() {
	if m.links == nil {
		return
	}
	m.links.teardown()
	m.links = nil
	m.screen = screenFolders
	m.err = nil
	m.status = ""
}

func (m Model) linksCtx() context.Context {
	if m.links != nil {
		return m.links.ctx
	}
	return m.rootCtx
}

func (m Model) copyLink(link chatapi.InviteLink) (tea.Model, tea.Cmd) {
	url, err := platform.ValidateLinkURL(link.URL)
	if err != nil {
		return m, m.toast(err.Error())
	}
	return m, actions.CopyLinkCmd(url, m.copyFn)
}

func (m Model) openLink(link chatapi.InviteLink) (tea.Model, tea.Cmd) {
	url, err := platform.ValidateLinkURL(link.URL)
	if err != nil {
		return m, m.toast(err.Error())
	}
	return m, actions.OpenLinkCmd(url, m.openURLFn, m.copyFn)
}

func (m Model) openShareBox(link chatapi.InviteLink) (tea.Model, tea.Cmd) {
	url, err := platform.ValidateLinkURL(link.URL)
	if err != nil {
		return m, m.toast(err.Error())
	}
	box := newShareBox(m.linksCtx(), m.takeGen(), url)
	m.shareBox = box
	return m, actions.LoadChatsCmd(box.ctx, m.service)
}

func (m Model) openQRBox(link chatapi.InviteLink) (tea.Model, tea.Cmd) {
	url, err := platform.ValidateLinkURL(link.URL)
	if err != nil {
		return m, m.toast(err.Error())
	}
	m.qrBox = newQRBox(url, 0, m.themeName == "light")
	return m, nil
}

func (m Model) startCreateLink() (tea.Model, tea.Cmd) {
	s := m.links
	folder := s.detail.Folder
	if denial := sharing.ExportDenialFor(folder); denial != nil {
		return m, m.toast(denial.Toast)
	}
	collected := sharing.CollectLinkChats(folder, s.detail.Chats)
	if len(collected) == 0 {
		// Nothing is eligible yet: open the editor on an url-less link
		// without asking the server for anything.
		m.openLinkBox(chatapi.InviteLink{FolderID: folder.ID})
		return m, nil
	}
	ids := make([]int64, 0, len(collected))
	for _, chat := range collected {
		ids = append(ids, chat.ID)
	}
	m.loading = true
	return m, actions.ExportLinkCmd(s.ctx, m.service, folder.ID, ids, s.gen)
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	box := m.menu
	switch msg.String() {
	case "esc", "q":
		m.menu = nil
	case "m":
		// Opening the menu again replaces the current one.
		if m.links != nil {
			if row := m.links.currentRow(); row != nil {
				m.openMenu(row)
			}
		}
	case "up", "k":
		box.moveBy(-1)
	case "down", "j":
		box.moveBy(1)
	case "enter":
		link := box.link
		name := box.name
		m.menu = nil
		switch box.cursor {
		case menuCopyLink:
			return m.copyLink(link)
		case menuShareLink:
			return m.openShareBox(link)
		case menuQRCode:
			return m.openQRBox(link)
		case menuNameLink:
			m.renameBox = newRenameBox(link)
		case menuDeleteLink:
			m.deleteBox = newDeleteBox(link, name)
		}
	}
	return m, nil
}

func (m Model) updateRenameBox(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	box := m.renameBox
	switch msg.String() {
	case "esc":
		m.renameBox = nil
		return m, nil
	case "enter":
		// Fire and forget: the box never waits for the server. The
		// request is parented to the app so navigating away cannot
		// cancel it.
		m.renameBox = nil
		return m, actions.RenameLinkCmd(m.rootCtx, m.service, box.folderID, box.url, box.title())
	}
	return m, box.update(msg)
}

func (m Model) updateDeleteBox(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	box := m.deleteBox
	switch msg.String() {
	case "esc", "n":
		m.deleteBox = nil
		return m, nil
	case "enter", "y":
		m.deleteBox = nil
		return m, actions.DeleteLinkCmd(m.rootCtx, m.service, box.folderID, box.url)
	}
	return m, nil
}

func (m Model) updateQRBox(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	box := m.qrBox
	switch msg.String() {
	case "esc", "q", "Q":
		m.qrBox = nil
	case "c":
		return m, actions.CopyLinkCmd(box.url, m.copyFn)
	case "o":
		return m, actions.OpenLinkCmd(box.url, m.openURLFn, m.copyFn)
	}
	return m, nil
}

func (m Model) updateShareBox(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	box := m.shareBox
	switch msg.String() {
	case "esc":
		box.close()
		m.shareBox = nil
	case "up", "k":
		box.moveBy(-1)
	case "down", "j":
		box.moveBy(1)
	case "enter":
		chat, ok := box.currentChat()
		if !ok {
			return m, nil
		}
		return m, actions.ShareLinkCmd(box.ctx, m.service, chat.ID, chat.Title, box.url, box.gen)
	}
	return m, nil
}

func (m Model) updateChatsBox(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	box := m.chatsBox
	switch msg.String() {
	case "esc", "q", "v":
		m.chatsBox = nil
	case "up", "k":
		box.moveBy(-1)
	case "down", "j":
		box.moveBy(1)
	case "enter":
		// Rows here are informational; activation does nothing.
	}
	return m, nil
}

func (m Model) updateLinkBox(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	box := m.linkBox
	switch msg.String() {
	case "esc":
		m.closeLinkBox()
	case "up", "k":
		box.moveBy(-1)
	case "down", "j":
		box.moveBy(1)
	case " ":
		if reason := box.toggle(); reason != "" {
			return m, m.toast(reason)
		}
	case "enter":
		return m.saveLinkBox()
	case "c":
		if box.link.URL != "" {
			return m, actions.CopyLinkCmd(box.link.URL, m.copyFn)
		}
	case "s":
		if box.link.URL != "" {
			return m.openShareBox(box.link)
		}
	}
	return m, nil
}

func (m Model) saveLinkBox() (tea.Model, tea.Cmd) {
	box := m.linkBox
	if !box.hasChanges() {
		m.closeLinkBox()
		return m, nil
	}
	ids := box.selectedIDs()
	if len(ids) == 0 {
		return m, m.toast(emptySelectionToast)
	}
	// The box stays open; only the user closes it.
	return m, actions.EditLinkChatsCmd(box.ctx, m.service, box.folder.ID, box.link.URL, ids, box.gen)
}

func (m Model) updateContactBox(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	box := m.contactBox
	switch msg.String() {
	case "esc":
		box.close()
		m.contactBox = nil
		return m, nil
	case "tab", "down":
		box.cycleFocus(1)
		return m, nil
	case "shift+tab", "up":
		box.cycleFocus(-1)
		return m, nil
	case "enter":
		if box.phone() == "" {
			return m, m.toast("Phone number is required.")
		}
		return m, actions.ImportContactCmd(box.ctx, m.service, box.firstName(), box.lastName(), box.phone(), box.gen)
	}
	return m, box.update(msg)
}

func (m Model) updateGroupBox(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	box := m.groupBox
	switch msg.String() {
	case "esc":
		box.close()
		m.groupBox = nil
		return m, nil
	case "tab":
		box.cycleFocus(1)
		return m, nil
	case "shift+tab":
		box.cycleFocus(-1)
		return m, nil
	case "enter":
		if box.title() == "" {
			return m, m.toast("Title is required.")
		}
		return m, actions.CreateGroupCmd(box.ctx, m.service, box.title(), box.about(), box.kindName(), box.gen)
	}
	if box.onKindField() {
		switch msg.String() {
		case " ", "right", "l":
			box.cycleKind(1)
		case "left", "h":
			box.cycleKind(-1)
		}
		return m, nil
	}
	return m, box.update(msg)
}

func (m Model) handleActionMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case actions.FoldersRefreshSuccessMsg:
		m.loading = false
		m.err = nil
		m.folders.replace(msg.Folders)
		if msg.Source == "manual" {
			return m, m.toast("Folders refreshed")
		}
		return m, nil
	case actions.FoldersRefreshErrorMsg:
		m.loading = false
		m.status = ""
		m.err = msg.Err
		return m, nil
	case actions.FolderDetailSuccessMsg:
		m.loading = false
		m.err = nil
		if m.links != nil && m.links.folderID() == msg.Detail.Folder.ID {
			m.links.applyDetail(msg.Detail)
			return m, nil
		}
		m.links = newLinksScreen(m.rootCtx, m.takeGen(), msg.Detail, m.themes)
		m.screen = screenLinks
		return m, nil
	case actions.FolderDetailErrorMsg:
		m.loading = false
		m.status = ""
		m.err = msg.Err
		return m, nil
	case actions.ExportLinkDoneMsg:
		m.loading = false
		if m.links == nil || m.links.gen != msg.Gen || m.links.folderID() != msg.FolderID {
			return m, nil
		}
		// The editor opens on whatever came back; a placeholder when the
		// export failed, with nothing else surfaced.
		m.openLinkBox(msg.Link)
		if msg.Link.URL != "" {
			return m, actions.LoadFolderDetailCmd(m.links.ctx, m.service, msg.FolderID)
		}
		return m, nil
	case actions.LinkChatsEditedMsg:
		// The store has the new chat list; the editor box receives no
		// completion and stays open.
		if m.links != nil && m.links.folderID() == msg.FolderID {
			return m, actions.LoadFolderDetailCmd(m.links.ctx, m.service, msg.FolderID)
		}
		return m, nil
	case actions.RenameLinkSuccessMsg:
		cmd := m.toast(msg.Status)
		if m.links != nil && m.links.folderID() == msg.FolderID {
			return m, tea.Batch(cmd, actions.LoadFolderDetailCmd(m.links.ctx, m.service, msg.FolderID))
		}
		return m, cmd
	case actions.RenameLinkErrorMsg:
		m.loading = false
		m.status = ""
		m.err = msg.Err
		return m, nil
	case actions.DeleteLinkSuccessMsg:
		cmd := m.toast(msg.Status)
		if m.links != nil && m.links.folderID() == msg.FolderID {
			m.links.list.Remove(msg.URL)
			return m, tea.Batch(cmd, actions.LoadFolderDetailCmd(m.links.ctx, m.service, msg.FolderID))
		}
		return m, cmd
	case actions.DeleteLinkErrorMsg:
		m.loading = false
		m.status = ""
		m.err = msg.Err
		return m, nil
	case actions.ChatsLoadSuccessMsg:
		if m.shareBox != nil {
			m.shareBox.setChats(msg.Chats)
		}
		return m, nil
	case actions.ChatsLoadErrorMsg:
		if m.shareBox != nil {
			m.shareBox.close()
			m.shareBox = nil
		}
		m.err = msg.Err
		return m, nil
	case actions.ShareLinkSuccessMsg:
		if m.shareBox == nil || m.shareBox.gen != msg.Gen {
			return m, nil
		}
		m.shareBox.close()
		m.shareBox = nil
		return m, m.toast(msg.Status)
	case actions.ShareLinkErrorMsg:
		if m.shareBox == nil || m.shareBox.gen != msg.Gen {
			return m, nil
		}
		return m, m.toast(msg.Err.Error())
	case actions.ImportContactSuccessMsg:
		if m.contactBox == nil || m.contactBox.gen != msg.Gen {
			return m, nil
		}
		m.contactBox.close()
		m.contactBox = nil
		return m, m.toast(msg.Status)
	case actions.ImportContactErrorMsg:
		if m.contactBox == nil || m.contactBox.gen != msg.Gen {
			return m, nil
		}
		return m, m.toast(msg.Err.Error())
	case actions.CreateGroupSuccessMsg:
		if m.groupBox == nil || m.groupBox.gen != msg.Gen {
			return m, nil
		}
		m.groupBox.close()
		m.groupBox = nil
		return m, m.toast(msg.Status)
	case actions.CreateGroupErrorMsg:
		if m.groupBox == nil || m.groupBox.gen != msg.Gen {
			return m, nil
		}
		return m, m.toast(msg.Err.Error())
	case actions.LinkActionSuccessMsg:
		return m, m.toast(msg.Status)
	case actions.LinkActionErrorMsg:
		return m, m.toast(msg.Err.Error())
	}
	return m, nil
}

func (m Model) View() string {
	th := m.themes.Current()
	var b strings.Builder
	b.WriteString(th.Title.Render("foldergram"))
	b.WriteString(" " + th.ModePill.Render(m.themeName))
	b.WriteString("\n")
	b.WriteString(view.Toolbar(m.screen == screenLinks, m.hasBox()))
	b.WriteString("\n\n")
	if m.showHelp {
		b.WriteString(m.helpView())
		b.WriteString("\n")
	} else {
		for _, line := range m.bodyLines(th) {
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(m.messagePanel(th))
	b.WriteString("\n")
	b.WriteString(m.footer(th))
	b.WriteString("\n")
	return b.String()
}

func (m Model) bodyLines(th theme.Theme) []string {
	width := m.contentWidth()
	height := m.bodyHeight()
	if boxLines, title := m.boxLines(th, width); boxLines != nil {
		framed := view.BoxFrame(title, boxLines, th)
		return strings.Split(view.CenterBox(width, height, framed), "\n")
	}
	if m.screen == screenLinks && m.links != nil {
		return m.links.viewLines(th, width, height)
	}
	return m.folders.viewLines(th, width, height)
}

func (m Model) boxLines(th theme.Theme, width int) ([]string, string) {
	boxWidth := width - 8
	if boxWidth > 72 {
		boxWidth = 72
	}
	if boxWidth < 24 {
		boxWidth = 24
	}
	switch {
	case m.menu != nil:
		return m.menu.viewLines(th, boxWidth), "Link"
	case m.renameBox != nil:
		return m.renameBox.viewLines(th, boxWidth), "Name Link"
	case m.deleteBox != nil:
		return m.deleteBox.viewLines(th, boxWidth), "Delete Link"
	case m.qrBox != nil:
		return m.qrBox.viewLines(th, boxWidth), "QR Code"
	case m.shareBox != nil:
		return m.shareBox.viewLines(th, boxWidth), "Share Link"
	case m.chatsBox != nil:
		return m.chatsBox.viewLines(th, boxWidth), m.chatsBox.name
	case m.linkBox != nil:
		return m.linkBox.viewLines(th, boxWidth), "Invite Link"
	case m.contactBox != nil:
		return m.contactBox.viewLines(th, boxWidth), "Add Contact"
	case m.groupBox != nil:
		return m.groupBox.viewLines(th, boxWidth), "New Group"
	}
	return nil, ""
}

func (m Model) contentWidth() int {
	if m.width <= 0 {
		return 80
	}
	return m.width
}

func (m Model) bodyHeight() int {
	if m.height <= 0 {
		return 20
	}
	h := m.height - 6
	if h < 3 {
		h = 3
	}
	return h
}

func (m Model) messagePanel(th theme.Theme) string {
	errText := ""
	if m.err != nil {
		errText = m.err.Error()
	}
	return view.Message(m.loading, m.err != nil, m.status, errText, th)
}

func (m Model) footer(th theme.Theme) string {
	if m.screen == screenLinks && m.links != nil {
		return view.Footer("links", m.links.detail.Folder.Title, m.links.list.Len(), th)
	}
	return view.Footer("folders", "all folders", len(m.folders.folders), th)
}

func (m Model) helpView() string {
	return strings.Join([]string{
		"Keys",
		"",
		"  folders   j/k move   enter open   r refresh   A add contact   G new group   T theme",
		"  links     enter edit   m menu   c copy   o open   s share   Q qr   n name   d delete",
		"            v chats   a new link   r reload   esc back",
		"  boxes     space toggle   tab next field   enter confirm   esc close",
		"",
		"  ? closes this help",
	}, "\n")
}
