// Package sharing holds the eligibility rules for carrying chats in
// folder invite links. Ineligibility is data, not an error: each rule
// yields a short status for the chat row plus a toast for when the row
// is activated anyway.
package sharing

import (
	"fmt"

	"foldergram/internal/chatapi"
)

// Denial explains why a chat or folder cannot be shared.
type Denial struct {
	Status string
	Toast  string
}

// DenialFor returns nil when the chat can be carried by a folder invite
// link. Encountering an unknown chat kind is a programming error.
func DenialFor(chat chatapi.Chat) *Denial {
	switch chat.Kind {
	case chatapi.ChatKindBot:
		return &Denial{
			Status: "you can't share chats with bots",
			Toast:  "You can't share chats with bots.",
		}
	case chatapi.ChatKindUser:
		return &Denial{
			Status: "you can't share private chats",
			Toast:  "You can't share private chats.",
		}
	case chatapi.ChatKindGroup:
		if chat.CanInvite {
			return nil
		}
		return &Denial{
			Status: "you can't invite others here",
			Toast:  "You don't have rights to share invite links in this group.",
		}
	case chatapi.ChatKindChannel:
		if chat.CanInvite {
			return nil
		}
		if chat.Megagroup {
			return &Denial{
				Status: "you can't invite others here",
				Toast:  "You don't have rights to share invite links in this group.",
			}
		}
		return &Denial{
			Status: "you can't invite others here",
			Toast:  "You don't have rights to share invite links in this channel.",
		}
	}
	panic(fmt.Sprintf("unexpected chat kind %q", chat.Kind))
}

// ExportDenialFor returns nil when new invite links may be exported for
// the folder. Folders with excluded chats, or with definition flags
// beyond the shareable marker, cannot be shared. Callers check this
// before issuing any remote export.
func ExportDenialFor(folder chatapi.Folder) *Denial {
	if len(folder.NeverChatIDs) > 0 || folder.Flags&^chatapi.FlagShareable != 0 {
		return &Denial{
			Toast: "You can only share folders that have no excluded chats and no chat-type filters.",
		}
	}
	return nil
}

// CollectLinkChats returns the folder's always-included chats that are
// eligible for an invite link, in folder order. Chats missing from the
// lookup are skipped.
func CollectLinkChats(folder chatapi.Folder, chats map[int64]chatapi.Chat) []chatapi.Chat {
	out := make([]chatapi.Chat, 0, len(folder.AlwaysChatIDs))
	for _, id := range folder.AlwaysChatIDs {
		chat, ok := chats[id]
		if !ok {
			continue
		}
		if DenialFor(chat) != nil {
			continue
		}
		out = append(out, chat)
	}
	return out
}
