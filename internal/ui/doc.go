// Package ui contains the Bubble Tea program that draws the chatroom screen:
// a selectable list on the left, the message log and input box on the right.
//
// Message flow:
//   - Bubble Tea reads the terminal in raw mode and hands key presses to
//     Model.Update. Update does not apply them; it forwards each key to the
//     source.Source so keys and ticks share one ordered queue.
//   - waitForEvent blocks on Source.Next and returns the event as an
//     eventMsg. Update applies it to the state.App and re-arms waitForEvent,
//     so the program redraws after every event (ticks included).
//   - A closed queue arrives as sourceDoneMsg. Unless the user already quit,
//     the model records source.ErrChannelClosed and stops the program.
//
// State ownership:
//   - internal/ui/state.App holds the list, selection, input buffer and
//     history. Only the handlers in keys.go mutate it.
//   - View is a pure function of the App and the terminal size.
package ui
