package proposal

import (
	"fmt"
	"regexp"
	"strings"
)

// BlockType tags a Block.
type BlockType int

const (
	TextBlock BlockType = iota
	InputBlock
	BreakBlock
)

var blockTypeNames = [...]string{
	TextBlock:  "text",
	InputBlock: "input",
	BreakBlock: "break",
}

func (t BlockType) String() string {
	if int(t) < len(blockTypeNames) {
		return blockTypeNames[t]
	}
	return fmt.Sprintf("BlockType(%d)", int(t))
}

func (t BlockType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *BlockType) UnmarshalText(text []byte) error {
	for i, name := range blockTypeNames {
		if name == string(text) {
			*t = BlockType(i)
			return nil
		}
	}
	return fmt.Errorf("unknown block type %q", text)
}

// Block is one display element of a placeholder-style template.
type Block struct {
	Type        BlockType `json:"type"`
	Text        string    `json:"text,omitempty"`
	Name        string    `json:"name,omitempty"`
	Placeholder string    `json:"placeholder,omitempty"`
}

func Text(content string) Block {
	return Block{Type: TextBlock, Text: content}
}

func Input(name, placeholder string) Block {
	return Block{Type: InputBlock, Name: name, Placeholder: placeholder}
}

func Break() Block {
	return Block{Type: BreakBlock}
}

var (
	lineSeparator = regexp.MustCompile(`\r\n|\r|\n`)
	// Group 1 is the opener, group 2 the closer. Whitespace inside the braces
	// belongs to the token; whitespace outside stays with the surrounding text.
	placeholderToken = regexp.MustCompile(`(\$\{)\s*|\s*(\})`)
)

// ParsePlaceholders splits a template such as "Name: ${name#your name}" into
// text, input and line-break blocks. An input written "${name#hint}" gets the
// field name "name" and the placeholder "hint".
func ParsePlaceholders(template string) []Block {
	blocks := []Block{}
	if template == "" {
		return blocks
	}

	lines := lineSeparator.Split(template, -1)
	for i, line := range lines {
		blocks = appendLineBlocks(blocks, line)
		if i < len(lines)-1 {
			blocks = append(blocks, Break())
		}
	}
	return blocks
}

func appendLineBlocks(blocks []Block, line string) []Block {
	afterOpener := false
	pos := 0
	for _, m := range placeholderToken.FindAllStringSubmatchIndex(line, -1) {
		blocks = appendFragment(blocks, line[pos:m[0]], afterOpener)
		afterOpener = m[2] >= 0
		pos = m[1]
	}
	return appendFragment(blocks, line[pos:], afterOpener)
}

func appendFragment(blocks []Block, fragment string, afterOpener bool) []Block {
	if fragment == "" {
		return blocks
	}
	if !afterOpener {
		return append(blocks, Text(fragment))
	}
	name, placeholder, _ := strings.Cut(fragment, "#")
	return append(blocks, Input(name, placeholder))
}

// InputNames returns the field names declared by the blocks, once each, in
// order of first appearance.
func InputNames(blocks []Block) []string {
	names := []string{}
	seen := make(map[string]bool)
	for _, b := range blocks {
		if b.Type != InputBlock || seen[b.Name] {
			continue
		}
		seen[b.Name] = true
		names = append(names, b.Name)
	}
	return names
}

// DeclaredFields parses a placeholder template and returns its field names.
func DeclaredFields(template string) []string {
	return InputNames(ParsePlaceholders(template))
}
