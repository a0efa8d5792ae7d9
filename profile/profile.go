// Package profile manages named, persisted bundles of control-layout
// settings.
//
// Profiles live in two stores: a read-only builtin store shipped with the
// application and a writable user store. Both are plain ini files with one
// section per profile. The Manager provides listing and CRUD over the two
// stores; where the stores disagree, the user store wins.
//
// Each profile domain (touchscreen, and in future other input methods)
// supplies its own store locations, default-profile persistence and editor
// navigation through the Domain interface.
package profile

// Profile is a named bundle of control-layout settings. Identity is the
// name string.
type Profile struct {
	Name   string
	Values map[string]string
}

// Get returns the value for a key, or the empty string if the key is not
// present.
func (p Profile) Get(key string) string {
	return p.Values[key]
}

// Domain describes a profile domain. Implementations supply the
// domain-specific parameters consumed by the Manager.
type Domain interface {
	// ConfigFilePath returns the path of the builtin or user profile store
	// for this domain.
	ConfigFilePath(builtin bool) (string, error)

	// NoDefaultSentinel returns the name value meaning "no default profile
	// selected" for this domain.
	NoDefaultSentinel() string

	// DefaultProfile returns the persisted default-profile name.
	DefaultProfile() string

	// SetDefaultProfile persists a new default-profile name.
	SetDefaultProfile(name string) error

	// EditProfile navigates to a profile editor for the named profile.
	EditProfile(p Profile) error
}
