package tags

import "github.com/yohamta/donburi"

var (
	MainCamera = donburi.NewTag().SetName("MainCamera")
	Shape      = donburi.NewTag().SetName("Shape")
)
