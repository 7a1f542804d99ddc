package icon

// Icon identifies a symbol in the registry.
type Icon int

const (
	Fail Icon = iota + 1
	Success
	Progress
	Search
	Mark
	Link
	Video
	Download
	Share
	Play
	Page
	Cache
)

var icons = map[Icon]*iconDef{
	Fail: {
		emoji:   "💀",
		nerd:    "",
		plain:   "X",
		kaomoji: "(╥﹏╥)",
		squares: "🟥",
	},
	Success: {
		emoji:   "🎉",
		nerd:    "",
		plain:   "OK",
		kaomoji: "(ᵔ◡ᵔ)",
		squares: "🟩",
	},
	Progress: {
		emoji:   "👾",
		nerd:    "",
		plain:   "...",
		kaomoji: "(・_・ヾ",
		squares: "🟪",
	},
	Search: {
		emoji:   "🔍",
		nerd:    "",
		plain:   "?",
		kaomoji: "⌐■-■",
		squares: "🟦",
	},
	Mark: {
		emoji:   "✅",
		nerd:    "",
		plain:   "*",
		kaomoji: "(＾▽＾)",
		squares: "🟨",
	},
	Link: {
		emoji:   "🔗",
		nerd:    "",
		plain:   "->",
		kaomoji: "(⊃｡•́‿•̀｡)⊃",
		squares: "🟫",
	},
	Video: {
		emoji:   "🎬",
		nerd:    "",
		plain:   ">",
		kaomoji: "(▀̿Ĺ̯▀̿ ̿)",
		squares: "⬛",
	},
	Download: {
		emoji:   "📥",
		nerd:    "",
		plain:   "v",
		kaomoji: "(っ˘ڡ˘ς)",
		squares: "🟧",
	},
	Share: {
		emoji:   "📤",
		nerd:    "",
		plain:   "^",
		kaomoji: "(づ｡◕‿‿◕｡)づ",
		squares: "🟦",
	},
	Play: {
		emoji:   "▶️",
		nerd:    "",
		plain:   "|>",
		kaomoji: "ヽ(⌐■_■)ノ♪",
		squares: "🟩",
	},
	Page: {
		emoji:   "📄",
		nerd:    "",
		plain:   "#",
		kaomoji: "(ㆆ_ㆆ)",
		squares: "⬜",
	},
	Cache: {
		emoji:   "💾",
		nerd:    "",
		plain:   "~",
		kaomoji: "(￣ー￣)",
		squares: "🟫",
	},
}
