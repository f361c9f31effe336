package model

// Visibility selects a partition of a user's notes.
type Visibility string

const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
	VisibilityAll     Visibility = "all"
)

func ParseVisibility(s string) (Visibility, bool) {
	switch Visibility(s) {
	case VisibilityPublic, VisibilityPrivate, VisibilityAll:
		return Visibility(s), true
	case "":
		return VisibilityPublic, true
	}
	return "", false
}
