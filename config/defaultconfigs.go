package config

var DefaultConfig Config
var DefaultTheme Theme

func init() {
	DefaultTheme = Theme{
		DrawStoneBackground:      false,
		DrawCursorBackground:     true,
		DrawLastPlayedBackground: true,
		FullWidthLetters:         false,
		UseGridLines:             true,
		Colors: ConfigColors{
			BoardColor:        223,
			BoardColorAlt:     223,
			BlackColor:        232,
			BlackColorAlt:     232,
			WhiteColor:        255,
			WhiteColorAlt:     255,
			LineColor:         94,
			CursorColorFG:     2,
			CursorColorBG:     4,
			LastPlayedColorBG: 222,
		},
		Symbols: ConfigSymbols{
			BlackStone:  '●',
			WhiteStone:  '●',
			BoardSquare: '┼',
			Cursor:      '┼',
			LastPlayed:  '┼',
		},
	}

	DefaultConfig = Config{
		Theme: DefaultTheme,
		Log: LogConfig{
			Level: "info",
		},
	}
}
