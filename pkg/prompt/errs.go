package prompt

import "errors"

// ErrQuit indicates the user typed a quit token ("q", "quit", "exit")
// at a prompt. Menus treat it as an unwind to the enclosing level.
var ErrQuit = errors.New("prompt: quit")
