package domain

import "errors"

var ErrNotAuthenticated = errors.New("not authenticated")
var ErrEmailTaken = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid credentials")

// DefaultAvatar is assigned to every newly registered user.
const DefaultAvatar = "🐼"

// AvatarOptions is the fixed set of avatars a user may pick from.
var AvatarOptions = []string{"🐼", "🦊", "🐶", "🍓", "🍕", "🐱", "🦁", "🍰", "🥑"}

// User models a registered account together with its loyalty metrics.
/// The password is stored and compared as a plain value: preserved demo
// behavior, this system has no backend trust boundary.
type User struct {
	Name          string  `json:"name" bson:"name"`
	Email         string  `json:"email" bson:"email"`
	Pass          string  `json:"pass" bson:"pass"`
	Avatar        string  `json:"avatar" bson:"avatar"`
	Points        int     `json:"points" bson:"points"`
	Saved         float64 `json:"saved" bson:"saved"`
	Meals         int     `json:"meals" bson:"meals"`
	VisitedStores int     `json:"visitedStores" bson:"visited_stores"`
}

// ValidAvatar reports whether s is one of the selectable avatars.
func ValidAvatar(s string) bool {
	for _, a := range AvatarOptions {
		if a == s {
			return true
		}
	}
	return false
}

// Session is the single optional pointer identifying the active user.
// A nil *Session means nobody is signed in.
type Session struct {
	Email string `json:"email" bson:"email"`
}
