package profile

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/ini.v1"
)

// Manager lists and edits the profiles of a single domain.
type Manager struct {
	domain Domain

	builtin  *ini.File
	user     *ini.File
	userPath string
}

// NewManager returns a manager over the domain's profile stores. A missing
// store file is treated as an empty store.
func NewManager(domain Domain) (*Manager, error) {
	m := &Manager{
		domain: domain,
	}

	pth, err := domain.ConfigFilePath(true)
	if err != nil {
		return nil, fmt.Errorf("profile: %w", err)
	}
	m.builtin, err = loadStore(pth)
	if err != nil {
		return nil, fmt.Errorf("profile: %w", err)
	}

	m.userPath, err = domain.ConfigFilePath(false)
	if err != nil {
		return nil, fmt.Errorf("profile: %w", err)
	}
	m.user, err = loadStore(m.userPath)
	if err != nil {
		return nil, fmt.Errorf("profile: %w", err)
	}

	return m, nil
}

func loadStore(path string) (*ini.File, error) {
	f, err := ini.Load(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ini.Empty(), nil
		}
		return nil, err
	}
	return f, nil
}

func toProfile(sec *ini.Section) Profile {
	return Profile{
		Name:   sec.Name(),
		Values: sec.KeysHash(),
	}
}

// List returns every profile, sorted by name. A user profile shadows a
// builtin profile of the same name.
func (m *Manager) List() []Profile {
	byName := make(map[string]Profile)
	for _, f := range []*ini.File{m.builtin, m.user} {
		for _, sec := range f.Sections() {
			if sec.Name() == ini.DefaultSection {
				continue
			}
			byName[sec.Name()] = toProfile(sec)
		}
	}

	list := make([]Profile, 0, len(byName))
	for _, p := range byName {
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Name < list[j].Name
	})

	return list
}

// Get returns the named profile. The user store is consulted first.
func (m *Manager) Get(name string) (Profile, bool) {
	if m.user.HasSection(name) {
		sec, _ := m.user.GetSection(name)
		return toProfile(sec), true
	}
	if m.builtin.HasSection(name) {
		sec, _ := m.builtin.GetSection(name)
		return toProfile(sec), true
	}
	return Profile{}, false
}

// IsBuiltin returns true if the named profile comes from the builtin store
// and is not shadowed by a user profile.
func (m *Manager) IsBuiltin(name string) bool {
	return m.builtin.HasSection(name) && !m.user.HasSection(name)
}

// Put writes a profile to the user store, replacing any previous profile of
// the same name. Builtin profiles cannot be overwritten.
func (m *Manager) Put(p Profile) error {
	if p.Name == m.domain.NoDefaultSentinel() {
		return fmt.Errorf("profile: invalid profile name")
	}
	if m.IsBuiltin(p.Name) {
		return fmt.Errorf("profile: '%s' is builtin and cannot be changed", p.Name)
	}

	// delete first so that stale keys do not survive the update
	m.user.DeleteSection(p.Name)
	sec, err := m.user.NewSection(p.Name)
	if err != nil {
		return fmt.Errorf("profile: %w", err)
	}
	for k, v := range p.Values {
		sec.Key(k).SetValue(v)
	}

	return m.save()
}

// Delete removes a profile from the user store. Deleting the default
// profile resets the default to the domain's sentinel.
func (m *Manager) Delete(name string) error {
	if m.IsBuiltin(name) {
		return fmt.Errorf("profile: '%s' is builtin and cannot be deleted", name)
	}
	if !m.user.HasSection(name) {
		return fmt.Errorf("profile: no profile named '%s'", name)
	}

	m.user.DeleteSection(name)

	if m.domain.DefaultProfile() == name {
		if err := m.domain.SetDefaultProfile(m.domain.NoDefaultSentinel()); err != nil {
			return fmt.Errorf("profile: %w", err)
		}
	}

	return m.save()
}

// Copy duplicates a profile under a new name in the user store.
func (m *Manager) Copy(name string, newName string) error {
	p, ok := m.Get(name)
	if !ok {
		return fmt.Errorf("profile: no profile named '%s'", name)
	}
	if _, ok := m.Get(newName); ok {
		return fmt.Errorf("profile: a profile named '%s' already exists", newName)
	}

	p.Name = newName
	return m.Put(p)
}

// Rename changes a user profile's name. The default-profile selection
// follows the rename.
func (m *Manager) Rename(name string, newName string) error {
	if m.IsBuiltin(name) {
		return fmt.Errorf("profile: '%s' is builtin and cannot be renamed", name)
	}
	if _, ok := m.Get(newName); ok {
		return fmt.Errorf("profile: a profile named '%s' already exists", newName)
	}

	p, ok := m.Get(name)
	if !ok {
		return fmt.Errorf("profile: no profile named '%s'", name)
	}

	m.user.DeleteSection(name)
	p.Name = newName
	if err := m.Put(p); err != nil {
		return err
	}

	if m.domain.DefaultProfile() == name {
		if err := m.domain.SetDefaultProfile(newName); err != nil {
			return fmt.Errorf("profile: %w", err)
		}
	}

	return nil
}

// Default returns the current default-profile name, or the domain sentinel
// if none is selected.
func (m *Manager) Default() string {
	return m.domain.DefaultProfile()
}

// SetDefault selects a new default profile. The domain sentinel clears the
// selection.
func (m *Manager) SetDefault(name string) error {
	if name != m.domain.NoDefaultSentinel() {
		if _, ok := m.Get(name); !ok {
			return fmt.Errorf("profile: no profile named '%s'", name)
		}
	}
	return m.domain.SetDefaultProfile(name)
}

// Edit navigates to the domain's editor for the named profile.
func (m *Manager) Edit(name string) error {
	p, ok := m.Get(name)
	if !ok {
		return fmt.Errorf("profile: no profile named '%s'", name)
	}
	return m.domain.EditProfile(p)
}

func (m *Manager) save() error {
	if err := m.user.SaveTo(m.userPath); err != nil {
		return fmt.Errorf("profile: %w", err)
	}
	return nil
}
