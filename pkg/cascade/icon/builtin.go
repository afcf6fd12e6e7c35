package icon

import (
	"slices"

	"github.com/BrandonKowalski/cascade/pkg/cascade/constants"
)

func svg24(body string) string {
	return `<svg xmlns="http://www.w3.org/2000/svg" width="24" height="24" viewBox="0 0 24 24">` + body + `</svg>`
}

func path24(d string) string {
	return svg24(`<path fill="#000000" d="` + d + `"/>`)
}

var builtin = map[string]string{
	constants.ArrowLeft:  path24("M14 7L9 12L14 17Z"),
	constants.ArrowRight: path24("M10 17L15 12L10 7Z"),

	constants.Language: svg24(`<circle cx="12" cy="12" r="9" fill="none" stroke="#000000" stroke-width="2"/>` +
		`<path fill="#000000" d="M3 11H21V13H3Z M11 3H13V21H11Z"/>`),
	constants.FileCopy:    path24("M4 1H16V3H6V15H4Z M8 5H21V23H8Z"),
	constants.Share:       path24("M17 3H21V7H17Z M3 10H7V14H3Z M17 17H21V21H17Z M6 11L18 4L19 5.5L7 12.5Z M7 11.5L19 18.5L18 20L6 13Z"),
	constants.DeleteSweep: path24("M3 8H13V20H3Z M2 5H14V7H2Z M15 8H22V10H15Z M15 12H21V14H15Z M15 16H19V18H15Z"),
	constants.Done:        path24("M9 16.2L4.8 12L3.4 13.4L9 19L21 7L19.6 5.6Z"),
	constants.Close:       path24("M19 6.41L17.59 5L12 10.59L6.41 5L5 6.41L10.59 12L5 17.59L6.41 19L12 13.41L17.59 19L19 17.59L13.41 12Z"),
}

// Builtin returns the sorted names of the icons shipped in Default.
func Builtin() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
