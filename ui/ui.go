// Package ui implements the terminal interface for managing touchscreen
// control profiles while the overlay window is running.
package ui

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"

	"github.com/touch64/touch64/profile"
	"github.com/touch64/touch64/settings"
)

type input struct {
	s   string
	err error
}

type manager struct {
	guiQuit chan bool

	profiles *profile.Manager
	styles   styles

	sig   chan os.Signal
	input chan input
}

// Launch runs the profile management loop until the guiQuit channel is
// signalled or the user quits.
func Launch(guiQuit chan bool, set *settings.Manager) error {
	m := &manager{
		guiQuit: guiQuit,
		styles:  newStyles(),
		sig:     make(chan os.Signal, 1),
		input:   make(chan input, 1),
	}

	dom := profile.NewTouchscreen(set, m.editProfile)

	var err error
	m.profiles, err = profile.NewManager(dom)
	if err != nil {
		return err
	}

	signal.Notify(m.sig, syscall.SIGINT)

	go func() {
		r := bufio.NewReader(os.Stdin)
		b := make([]byte, 256)
		for {
			n, err := r.Read(b)
			select {
			case m.input <- input{
				s:   strings.TrimSpace(string(b[:n])),
				err: err,
			}:
			default:
			}
		}
	}()

	m.list()
	m.loop()

	return nil
}

// read blocks until a line of input arrives. the second return value is
// false when the loop should end.
func (m *manager) read(prompt string) ([]string, bool) {
	fmt.Printf("%s> ", prompt)

	select {
	case inp := <-m.input:
		if inp.err != nil {
			fmt.Println(m.styles.err.Render(inp.err.Error()))
			return nil, false
		}
		return strings.Fields(inp.s), true
	case <-m.sig:
		fmt.Print("\r")
		return nil, false
	case <-m.guiQuit:
		fmt.Print("\n")
		return nil, false
	}
}

func (m *manager) loop() {
	for {
		cmd, ok := m.read("profiles")
		if !ok {
			return
		}
		if len(cmd) == 0 {
			continue
		}

		switch strings.ToUpper(cmd[0]) {
		case "LS", "LIST":
			m.list()

		case "EDIT":
			if len(cmd) != 2 {
				fmt.Println(m.styles.err.Render("EDIT requires a profile name"))
				break // switch
			}
			if err := m.profiles.Edit(cmd[1]); err != nil {
				fmt.Println(m.styles.err.Render(err.Error()))
			}

		case "COPY":
			if len(cmd) != 3 {
				fmt.Println(m.styles.err.Render("COPY requires a profile name and a new name"))
				break // switch
			}
			if err := m.profiles.Copy(cmd[1], cmd[2]); err != nil {
				fmt.Println(m.styles.err.Render(err.Error()))
			}

		case "RENAME":
			if len(cmd) != 3 {
				fmt.Println(m.styles.err.Render("RENAME requires a profile name and a new name"))
				break // switch
			}
			if err := m.profiles.Rename(cmd[1], cmd[2]); err != nil {
				fmt.Println(m.styles.err.Render(err.Error()))
			}

		case "DEL", "DELETE":
			if len(cmd) != 2 {
				fmt.Println(m.styles.err.Render("DELETE requires a profile name"))
				break // switch
			}
			if err := m.profiles.Delete(cmd[1]); err != nil {
				fmt.Println(m.styles.err.Render(err.Error()))
			}

		case "DEFAULT":
			// with no argument the default selection is cleared
			name := ""
			if len(cmd) == 2 {
				name = cmd[1]
			}
			if err := m.profiles.SetDefault(name); err != nil {
				fmt.Println(m.styles.err.Render(err.Error()))
			}

		case "HELP":
			fmt.Println(m.styles.info.Render(
				"LIST; EDIT name; COPY name new; RENAME name new; DELETE name; DEFAULT [name]; QUIT"))

		case "Q", "QUIT":
			return

		default:
			fmt.Println(m.styles.err.Render(fmt.Sprintf("unrecognised command '%s'", cmd[0])))
		}
	}
}

func (m *manager) list() {
	fmt.Println(m.styles.heading.Render("touchscreen profiles"))

	def := m.profiles.Default()
	for _, p := range m.profiles.List() {
		s := m.styles.name.Render(p.Name)
		if m.profiles.IsBuiltin(p.Name) {
			s = fmt.Sprintf("%s %s", s, m.styles.builtin.Render("(builtin)"))
		}
		if p.Name == def {
			s = fmt.Sprintf("%s %s", s, m.styles.def.Render("*default*"))
		}
		fmt.Println(s)
	}
}

// editProfile is the editor screen for a single profile. it is handed to the
// touchscreen domain as its navigation target.
func (m *manager) editProfile(name string) error {
	p, ok := m.profiles.Get(name)
	if !ok {
		return fmt.Errorf("ui: no profile named '%s'", name)
	}

	// edit a copy. nothing is written back until DONE
	values := make(map[string]string, len(p.Values))
	for k, v := range p.Values {
		values[k] = v
	}

	m.show(name, values)

	for {
		cmd, ok := m.read(fmt.Sprintf("edit [%s]", name))
		if !ok {
			return nil
		}
		if len(cmd) == 0 {
			continue
		}

		switch strings.ToUpper(cmd[0]) {
		case "SHOW":
			m.show(name, values)

		case "SET":
			if len(cmd) < 3 {
				fmt.Println(m.styles.err.Render("SET requires a key and a value"))
				break // switch
			}
			values[cmd[1]] = strings.Join(cmd[2:], " ")

		case "UNSET":
			if len(cmd) != 2 {
				fmt.Println(m.styles.err.Render("UNSET requires a key"))
				break // switch
			}
			delete(values, cmd[1])

		case "DONE":
			err := m.profiles.Put(profile.Profile{Name: name, Values: values})
			if err != nil {
				fmt.Println(m.styles.err.Render(err.Error()))
				break // switch
			}
			return nil

		case "DISCARD":
			return nil

		case "HELP":
			fmt.Println(m.styles.info.Render("SHOW; SET key value; UNSET key; DONE; DISCARD"))

		default:
			fmt.Println(m.styles.err.Render(fmt.Sprintf("unrecognised command '%s'", cmd[0])))
		}
	}
}

func (m *manager) show(name string, values map[string]string) {
	fmt.Println(m.styles.heading.Render(name))

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Printf("%s = %s\n", m.styles.name.Render(k), m.styles.value.Render(values[k]))
	}
}
