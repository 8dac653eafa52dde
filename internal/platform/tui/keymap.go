package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tarot-arcade/internal/core"
)

// gameKeys binds key names, as reported by tea.KeyMsg.String, to game actions.
var gameKeys = map[string]core.Action{
	"a":         core.ActionLeft,
	"left":      core.ActionLeft,
	"d":         core.ActionRight,
	"right":     core.ActionRight,
	"s":         core.ActionDown,
	"down":      core.ActionDown,
	"w":         core.ActionRotate,
	"up":        core.ActionRotate,
	"x":         core.ActionRotate,
	"z":         core.ActionRotateCCW,
	" ":         core.ActionHardDrop,
	"c":         core.ActionHold,
	"shift+tab": core.ActionHold,
	"1":         core.ActionSlot1,
	"2":         core.ActionSlot2,
	"3":         core.ActionSlot3,
	"enter":     core.ActionConfirm,
	"b":         core.ActionBack,
	"esc":       core.ActionBack,
	"p":         core.ActionPause,
	"r":         core.ActionRestart,
	"q":         core.ActionQuit,
	"ctrl+c":    core.ActionQuit,
}

// KeyMapper translates Bubble Tea key messages to game and menu actions.
type KeyMapper struct {
	game map[string]core.Action
	menu map[string]MenuAction
}

// NewKeyMapper returns a mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{game: gameKeys, menu: menuKeys}
}

// MapKey returns the action bound to msg, ActionNone when unbound, and
// whether the key asks to leave the program.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (core.Action, bool) {
	action, ok := km.game[msg.String()]
	if !ok {
		return core.ActionNone, false
	}
	return action, action == core.ActionQuit
}

// MapKeyToFrame appends the bound action to frame. Quit is reported through
// the return value and never enters the frame.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, quit := km.MapKey(msg)
	if !quit && action != core.ActionNone {
		frame.Set(action)
	}
	return quit
}

// MenuAction is what a key means on the picker and history screens.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// menuKeys accepts arrows, WASD and vim movement.
var menuKeys = map[string]MenuAction{
	"up":     MenuActionUp,
	"w":      MenuActionUp,
	"k":      MenuActionUp,
	"down":   MenuActionDown,
	"s":      MenuActionDown,
	"j":      MenuActionDown,
	"enter":  MenuActionSelect,
	" ":      MenuActionSelect,
	"esc":    MenuActionBack,
	"b":      MenuActionBack,
	"tab":    MenuActionScoreboard,
	"q":      MenuActionQuit,
	"ctrl+c": MenuActionQuit,
}

// MapKeyToMenuAction returns the menu action bound to msg.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	return km.menu[msg.String()]
}
