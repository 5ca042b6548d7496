package components

import "github.com/yohamta/donburi"

// EditorData tracks the obstacle under the cursor, 0 for none.
type EditorData struct {
	Hovered uint16
}

var Editor = donburi.NewComponentType[EditorData]()
