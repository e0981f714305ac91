package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconFolder     = "" // folder
	IconFolderOpen = "" // open folder
	IconGlobe      = "" // web page
	IconCheck      = "" // check
	IconX          = "" // x
	IconWarning    = "" // warning
	IconInfo       = "" // info
	IconTrash      = "" // trash
	IconDatabase   = "" // database
	IconConfig     = "" // config
	IconStar       = "" // star
)
