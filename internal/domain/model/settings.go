package model

// Settings is the per-role preferences record. A full default value is
// used whenever no stored value exists.
type Settings struct {
	Email         string          `json:"email" yaml:"email"`
	Phone         string          `json:"phone" yaml:"phone"`
	Notifications map[string]bool `json:"notifications" yaml:"notifications"`
	Privacy       map[string]bool `json:"privacy" yaml:"privacy"`
	Theme         string          `json:"theme" yaml:"theme"`
	Accent        string          `json:"accent" yaml:"accent"`
}

// DefaultSettings returns the computed default settings for a role.
func DefaultSettings(role string) Settings {
	s := Settings{
		Notifications: map[string]bool{
			"workout_reminders": true,
			"weekly_summary":    true,
			"product_updates":   false,
		},
		Privacy: map[string]bool{
			"profile_visible": true,
			"show_school":     true,
			"share_contact":   false,
		},
		Theme:  "dark",
		Accent: "crimson",
	}

	switch role {
	case RoleTrainer:
		s.Notifications["new_submissions"] = true
	case RoleRecruiter:
		s.Notifications["watchlist_activity"] = true
		s.Privacy["share_contact"] = true
	case RoleParent:
		s.Notifications["verification_updates"] = true
		s.Privacy["profile_visible"] = false
	}

	return s
}
