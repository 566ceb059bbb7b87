package builder

import "strings"

const textRule = "==============================\n"

// TextBuilder renders the document as plain text.
type TextBuilder struct {
	docState
	sb strings.Builder
}

// NewTextBuilder returns an empty TextBuilder.
func NewTextBuilder() *TextBuilder {
	return &TextBuilder{}
}

// MakeTitle writes the rule and "[title]".
func (b *TextBuilder) MakeTitle(title string) error {
	if err := b.setTitle("TextBuilder.MakeTitle", title); err != nil {
		return err
	}
	b.sb.WriteString(textRule)
	b.sb.WriteString("[" + title + "]\n\n")
	return nil
}

// MakeString writes "■str".
func (b *TextBuilder) MakeString(str string) error {
	if err := b.titled("TextBuilder.MakeString"); err != nil {
		return err
	}
	b.sb.WriteString("■" + str + "\n\n")
	return nil
}

// MakeItems writes one bullet per item.
func (b *TextBuilder) MakeItems(items []string) error {
	if err := b.titled("TextBuilder.MakeItems"); err != nil {
		return err
	}
	for _, it := range items {
		b.sb.WriteString("  ・" + it + "\n")
	}
	b.sb.WriteString("\n")
	return nil
}

// Close writes the closing rule.
func (b *TextBuilder) Close() error {
	if err := b.titled("TextBuilder.Close"); err != nil {
		return err
	}
	b.sb.WriteString(textRule)
	b.closed = true
	return nil
}

// Result returns the text built so far.
func (b *TextBuilder) Result() string {
	return b.sb.String()
}

var _ Builder = (*TextBuilder)(nil)
