// Package ui owns the concrete terminal controls and nothing else: it
// translates native Bubble Tea events into the streams the view model
// expects, and renders the view model's current-value stream back into the
// controls. No validation or formatting happens here.
package ui
