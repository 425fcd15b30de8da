// Package ui adapts the frame-synchronous host runtime to a Bubble Tea program.
// The terminal plays the part of the window: one cell is one logical pixel.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function.
//   - Key and mouse messages are never interpreted here. They are translated
//     into input events and appended to the runtime's queue. Terminals only
//     report presses, so every key yields a KeyDown immediately followed by a
//     KeyUp.
//   - Window size messages update the shared screen-size state; the canvas
//     follows on the next frame.
//   - A fixed-rate frameMsg drives host.Runtime.Frame, which drains the queue,
//     routes the batch to a single consumer and redraws.
//
// Rendering:
//   - View serialises the runtime's canvas and, when enabled, appends a status
//     bar that shows the routing target, the popup depth and any popup that
//     extends past the screen edges together with the force-close key.
//
// ctrl+c always quits without passing through the queue, so a runaway script
// or an unreachable popup can never trap the terminal.
package ui
