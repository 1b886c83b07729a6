package domain

// MaxCategoryNameLength is enforced client-side before any request is made.
// The backend enforces name uniqueness; that failure surfaces as a generic
// validation error because the contract does not distinguish the cause.
const MaxCategoryNameLength = 50

// Category is a user-defined label with a color and a symbolic icon.
type Category struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  Icon   `json:"icon"`
}

// Icon is a symbolic name from a closed set. Unrecognized input renders as
// IconTag rather than failing.
type Icon string

const (
	IconTag       Icon = "tag"
	IconFolder    Icon = "folder"
	IconBriefcase Icon = "briefcase"
	IconHome      Icon = "home"
	IconFile      Icon = "file"
	IconBook      Icon = "book"
	IconHeart     Icon = "heart"
	IconStar      Icon = "star"
	IconEnvelope  Icon = "envelope"
	IconShopping  Icon = "shopping"
	IconSettings  Icon = "settings"
	IconUser      Icon = "user"
	IconUsers     Icon = "users"
	IconCalendar  Icon = "calendar"
	IconClock     Icon = "clock"
	IconCamera    Icon = "camera"
	IconMusic     Icon = "music"
	IconGame      Icon = "game"
	IconEducation Icon = "education"
	IconMedical   Icon = "medical"
	IconTravel    Icon = "travel"
	IconCar       Icon = "car"
	IconFood      Icon = "food"
	IconSecurity  Icon = "security"
	IconMoney     Icon = "money"
)

var iconLabels = map[Icon]string{
	IconTag:       "Tag",
	IconFolder:    "Folder",
	IconBriefcase: "Work",
	IconHome:      "Home",
	IconFile:      "Document",
	IconBook:      "Book",
	IconHeart:     "Favorite",
	IconStar:      "Important",
	IconEnvelope:  "Mail",
	IconShopping:  "Shopping",
	IconSettings:  "Settings",
	IconUser:      "Personal",
	IconUsers:     "Team",
	IconCalendar:  "Events",
	IconClock:     "Time",
	IconCamera:    "Photos",
	IconMusic:     "Music",
	IconGame:      "Gaming",
	IconEducation: "Education",
	IconMedical:   "Medical",
	IconTravel:    "Travel",
	IconCar:       "Vehicle",
	IconFood:      "Food",
	IconSecurity:  "Security",
	IconMoney:     "Finance",
}

// Icons lists the selectable icons in a stable order.
func Icons() []Icon {
	return []Icon{
		IconTag, IconFolder, IconBriefcase, IconHome, IconFile,
		IconBook, IconHeart, IconStar, IconEnvelope, IconShopping,
		IconSettings, IconUser, IconUsers, IconCalendar, IconClock,
		IconCamera, IconMusic, IconGame, IconEducation, IconMedical,
		IconTravel, IconCar, IconFood, IconSecurity, IconMoney,
	}
}

// Known reports whether the icon name is part of the closed set.
func (i Icon) Known() bool {
	_, ok := iconLabels[i]
	return ok
}

// Label returns the human-readable label for the icon.
func (i Icon) Label() string {
	if label, ok := iconLabels[i]; ok {
		return label
	}
	return iconLabels[IconTag]
}

// Resolve maps arbitrary input to a known icon, falling back to IconTag.
func ResolveIcon(name string) Icon {
	icon := Icon(name)
	if icon.Known() {
		return icon
	}
	return IconTag
}
