package core

// ItemKind identifies what a clickable field item is.
type ItemKind int

const (
	ItemCarrot ItemKind = iota
	ItemBug
)

// String returns a human-readable name for the kind.
func (k ItemKind) String() string {
	switch k {
	case ItemCarrot:
		return "carrot"
	case ItemBug:
		return "bug"
	default:
		return "unknown"
	}
}

// Sound identifies a sound cue requested by the game.
type Sound int

const (
	SoundBackground Sound = iota // looping while a round runs
	SoundCarrotPull
	SoundBugPull
	SoundWin
	SoundAlert
)

// String returns a human-readable name for the sound.
func (s Sound) String() string {
	switch s {
	case SoundBackground:
		return "background"
	case SoundCarrotPull:
		return "carrot_pull"
	case SoundBugPull:
		return "bug_pull"
	case SoundWin:
		return "win"
	case SoundAlert:
		return "alert"
	default:
		return "unknown"
	}
}
