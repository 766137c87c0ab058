package preset

import "github.com/blackwell-systems/gradientctl/internal/gradient"

// builtin is the curated preset list shipped with gradientctl.
var builtin = []gradient.Preset{
	{
		Name:  "Sunrise",
		Angle: 45,
		Stops: []gradient.ColorStop{
			{ID: 1, Color: "#ff6b6b", Position: 0},
			{ID: 2, Color: "#ffd93d", Position: 100},
		},
	},
	{
		Name:  "Ocean",
		Angle: 180,
		Stops: []gradient.ColorStop{
			{ID: 1, Color: "#00b4d8", Position: 0},
			{ID: 2, Color: "#0077b6", Position: 100},
		},
	},
	{
		Name:  "Mint",
		Angle: 120,
		Stops: []gradient.ColorStop{
			{ID: 1, Color: "#c0fdfb", Position: 0},
			{ID: 2, Color: "#7efbd3", Position: 100},
		},
	},
	{
		Name:  "Dusk",
		Angle: 135,
		Stops: []gradient.ColorStop{
			{ID: 1, Color: "#2c3e50", Position: 0},
			{ID: 2, Color: "#fd746c", Position: 100},
		},
	},
	{
		Name:  "Peach",
		Angle: 90,
		Stops: []gradient.ColorStop{
			{ID: 1, Color: "#ffecd2", Position: 0},
			{ID: 2, Color: "#fcb69f", Position: 100},
		},
	},
	{
		Name:  "Aurora",
		Angle: 60,
		Stops: []gradient.ColorStop{
			{ID: 1, Color: "#00c9a7", Position: 0},
			{ID: 2, Color: "#845ec2", Position: 55},
			{ID: 3, Color: "#ff6f91", Position: 100},
		},
	},
}
