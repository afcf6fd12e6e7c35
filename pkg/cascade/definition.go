package cascade

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
)

// definitionItem is the on-disk shape of one entry:
//
//	[[item]]
//	id = "share"
//	title = "Share"
//	icon = "share"
//
//	  [[item.item]]
//	  id = "pdf"
//	  title = "PDF"
type definitionItem struct {
	ID    string           `toml:"id"`
	Title string           `toml:"title"`
	Icon  string           `toml:"icon"`
	Items []definitionItem `toml:"item"`
}

type definitionFile struct {
	Items []definitionItem `toml:"item"`
}

// DecodeMenu reads a TOML menu definition. Unlike Build, this parses
// external input and reports unknown keys, missing ids and missing titles
// as a *DefinitionError.
func DecodeMenu(r io.Reader) (*Tree[string], error) {
	var def definitionFile
	md, err := toml.NewDecoder(r).Decode(&def)
	if err != nil {
		return nil, fmt.Errorf("decode menu definition: %w", err)
	}
	if keys := unknownKeys(md); len(keys) > 0 {
		return nil, &DefinitionError{Msg: "unknown keys: " + strings.Join(keys, ", ")}
	}

	specs, err := convertDefinition(def.Items, "item")
	if err != nil {
		return nil, err
	}
	return Build(specs...), nil
}

// unknownKeys lists keys present in the document that no field took.
func unknownKeys(md toml.MetaData) []string {
	var keys []string
	for _, k := range md.Undecoded() {
		keys = append(keys, k.String())
	}
	return keys
}

// LoadMenu reads a TOML menu definition from path.
func LoadMenu(path string) (*Tree[string], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open menu definition: %w", err)
	}
	defer f.Close()
	return DecodeMenu(f)
}

func convertDefinition(items []definitionItem, prefix string) ([]Spec[string], error) {
	if len(items) == 0 {
		return nil, nil
	}
	specs := make([]Spec[string], len(items))
	for i, it := range items {
		path := fmt.Sprintf("%s[%d]", prefix, i)
		if strings.TrimSpace(it.ID) == "" {
			return nil, &DefinitionError{Path: path, Msg: "missing id"}
		}
		if strings.TrimSpace(it.Title) == "" {
			return nil, &DefinitionError{Path: path, Msg: "missing title"}
		}
		children, err := convertDefinition(it.Items, path+".item")
		if err != nil {
			return nil, err
		}
		specs[i] = Spec[string]{
			ID:    it.ID,
			Title: it.Title,
			Icon:  IconRef(it.Icon),
			Items: children,
		}
	}
	return specs, nil
}
