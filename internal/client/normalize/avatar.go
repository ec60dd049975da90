package normalize

import "strings"

// Avatar is one of the built-in profile pictures a user can pick instead
// of uploading one. The profilePicture field then holds the avatar id.
type Avatar struct {
	ID    string
	Emoji string
	Name  string
}

var avatars = []Avatar{
	{"cat", "🐱", "Cat"}, {"dog", "🐶", "Dog"}, {"fox", "🦊", "Fox"},
	{"panda", "🐼", "Panda"}, {"koala", "🐨", "Koala"}, {"lion", "🦁", "Lion"},
	{"tiger", "🐯", "Tiger"}, {"monkey", "🐵", "Monkey"}, {"penguin", "🐧", "Penguin"},
	{"owl", "🦉", "Owl"},
	{"cool", "😎", "Cool"}, {"nerd", "🤓", "Nerd"}, {"happy", "😊", "Happy"},
	{"wink", "😉", "Wink"}, {"thinking", "🤔", "Thinking"}, {"star_eyes", "🤩", "Star Eyes"},
	{"ninja", "🥷", "Ninja"}, {"cowboy", "🤠", "Cowboy"},
	{"robot", "🤖", "Robot"}, {"alien", "👽", "Alien"}, {"unicorn", "🦄", "Unicorn"},
	{"dragon", "🐉", "Dragon"}, {"wizard", "🧙", "Wizard"}, {"ghost", "👻", "Ghost"},
	{"rocket", "🚀", "Rocket"}, {"crown", "👑", "Crown"}, {"gem", "💎", "Diamond"},
	{"fire", "🔥", "Fire"}, {"lightning", "⚡", "Lightning"}, {"star", "⭐", "Star"},
}

// Avatars lists the built-in avatars.
func Avatars() []Avatar { return append([]Avatar(nil), avatars...) }

func AvatarByID(id string) (Avatar, bool) {
	for _, a := range avatars {
		if a.ID == id {
			return a, true
		}
	}
	return Avatar{}, false
}

// ProfilePicture resolves a profilePicture value for display: avatar ids
// become their emoji, data and absolute URLs are kept, uploads paths and
// bare filenames are resolved against the base URL. Empty means "no
// picture".
func (n *Normalizer) ProfilePicture(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if a, ok := AvatarByID(s); ok {
		return a.Emoji
	}
	lower := strings.ToLower(s)
	switch {
	case strings.HasPrefix(lower, "data:image/"):
		return s
	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		return s
	case strings.HasPrefix(s, "/api/uploads/"):
		return n.baseURL + s
	default:
		return n.baseURL + "/api/uploads/" + s
	}
}
