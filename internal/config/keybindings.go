package config

import "strings"

// Keybinding is a single key/description pair for help rendering.
type Keybinding struct {
	Key         string
	Description string
}

// KeybindingSection groups related keybindings in the help overlay.
type KeybindingSection struct {
	Title    string
	Bindings []Keybinding
}

// KeybindRegistry resolves keys to actions and back, built once from the
// loaded config.
type KeybindRegistry struct {
	actionToKeys map[string][]string
	keyToAction  map[string]string
	normalizer   *KeyNormalizer
}

// NewKeybindRegistry indexes the config's keybindings. Later maps win on
// key conflicts, matching file order.
func NewKeybindRegistry(cfg *Config) *KeybindRegistry {
	r := &KeybindRegistry{
		actionToKeys: make(map[string][]string),
		keyToAction:  make(map[string]string),
		normalizer:   NewKeyNormalizer(),
	}
	for _, group := range []map[string][]string{
		cfg.Keybindings.WindowManagement,
		cfg.Keybindings.Snapping,
		cfg.Keybindings.Panels,
	} {
		for action, keys := range group {
			for _, key := range keys {
				for _, norm := range r.normalizer.NormalizeKey(key) {
					r.actionToKeys[action] = append(r.actionToKeys[action], norm)
					r.keyToAction[norm] = action
				}
			}
		}
	}
	return r
}

// GetKeys returns all keys bound to an action.
func (r *KeybindRegistry) GetKeys(action string) []string {
	return r.actionToKeys[action]
}

// GetAction returns the action bound to a key, or "".
func (r *KeybindRegistry) GetAction(key string) string {
	for _, norm := range r.normalizer.NormalizeKey(key) {
		if action, ok := r.keyToAction[norm]; ok {
			return action
		}
	}
	return ""
}

// GetKeysForDisplay returns a comma-joined key list for the help overlay,
// or "" when the action is unbound.
func (r *KeybindRegistry) GetKeysForDisplay(action string) string {
	keys := r.actionToKeys[action]
	if len(keys) == 0 {
		return ""
	}
	seen := make(map[string]bool, len(keys))
	uniq := make([]string, 0, len(keys))
	for _, k := range keys {
		if !seen[k] {
			seen[k] = true
			uniq = append(uniq, k)
		}
	}
	return strings.Join(uniq, ", ")
}

// KeyNormalizer canonicalizes key descriptions so "Ctrl+A" and "ctrl+a"
// match, and expands aliases like enter/return.
type KeyNormalizer struct {
	aliases map[string][]string
}

// NewKeyNormalizer builds the standard normalizer.
func NewKeyNormalizer() *KeyNormalizer {
	return &KeyNormalizer{
		aliases: map[string][]string{
			"enter":  {"enter", "return"},
			"return": {"return", "enter"},
			"esc":    {"esc", "escape"},
			"escape": {"escape", "esc"},
			"space":  {"space", " "},
		},
	}
}

// NormalizeKey lowercases a key description and returns it along with any
// aliases that terminal input may report instead.
func (n *KeyNormalizer) NormalizeKey(key string) []string {
	k := strings.ToLower(strings.TrimSpace(key))
	if k == "" {
		return nil
	}
	if alts, ok := n.aliases[k]; ok {
		return alts
	}
	return []string{k}
}

// ValidateKey reports whether a key description is usable, with a reason
// when it is not.
func (n *KeyNormalizer) ValidateKey(key string) (bool, string) {
	if strings.TrimSpace(key) == "" {
		return false, "empty key"
	}
	parts := strings.Split(strings.ToLower(key), "+")
	for _, p := range parts[:len(parts)-1] {
		switch p {
		case "ctrl", "alt", "shift", "super":
		default:
			return false, "unknown modifier: " + p
		}
	}
	if parts[len(parts)-1] == "" {
		return false, "missing key after modifier"
	}
	return true, ""
}

// HelpSections builds the help overlay content from the registry.
func HelpSections(registry *KeybindRegistry) []KeybindingSection {
	sections := []KeybindingSection{}

	windows := KeybindingSection{Title: "WINDOWS"}
	for _, action := range []string{
		"close_window", "rename_window", "minimize_window", "restore_all",
		"next_window", "prev_window", "toggle_fullscreen",
	} {
		appendBinding(&windows, registry, action)
	}
	if len(windows.Bindings) > 0 {
		sections = append(sections, windows)
	}

	snapping := KeybindingSection{Title: "SNAPPING"}
	for _, action := range []string{
		"snap_left", "snap_right", "snap_top", "snap_bottom",
		"snap_top_left", "snap_top_right", "snap_bottom_left", "snap_bottom_right",
		"unsnap", "toggle_snapping",
	} {
		appendBinding(&snapping, registry, action)
	}
	if len(snapping.Bindings) > 0 {
		sections = append(sections, snapping)
	}

	panels := KeybindingSection{Title: "PANELS"}
	for _, action := range []string{
		"open_document", "open_storyboard", "open_database",
		"open_map", "open_settings", "open_project_files",
	} {
		appendBinding(&panels, registry, action)
	}
	if len(panels.Bindings) > 0 {
		sections = append(sections, panels)
	}

	sections = append(sections, KeybindingSection{
		Title: "MOUSE",
		Bindings: []Keybinding{
			{"Drag header", "Move window (snap near edges)"},
			{"Drag border", "Resize window"},
			{"Double-press header", "Release snap"},
			{"Click", "Focus window"},
		},
	})

	return sections
}

func appendBinding(section *KeybindingSection, registry *KeybindRegistry, action string) {
	keys := registry.GetKeysForDisplay(action)
	if keys == "" {
		return
	}
	section.Bindings = append(section.Bindings, Keybinding{
		Key:         keys,
		Description: ActionDescriptions[action],
	})
}
