// Command inspect dumps an encoded schemapack buffer as a value tree.
//
// The buffer is walked generically by peeking wire tags, so no schema
// is needed; composites appear as maps, variants as whichever shape
// the active alternative took. With -i the tree opens in an
// interactive browser.
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/schemapack/wire"
)

func main() {
	var (
		inFile      = flag.String("in", "", "Path to a file holding an encoded buffer")
		hexStr      = flag.String("hex", "", "Inline hex-encoded buffer instead of -in")
		interactive = flag.Bool("i", false, "Interactive browser with TUI")
		verbose     = flag.Bool("v", false, "Verbose decode diagnostics")
	)
	flag.Parse()

	if *inFile == "" && *hexStr == "" {
		fmt.Fprintln(os.Stderr, "Usage: inspect -in <file> [-v]")
		fmt.Fprintln(os.Stderr, "       inspect -hex <bytes> [-v]")
		fmt.Fprintln(os.Stderr, "       inspect -in <file> -i  (interactive mode)")
		os.Exit(1)
	}

	buf, label, err := readBuffer(*inFile, *hexStr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *interactive {
		if err := runInteractive(label, buf); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := dump(label, buf, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func readBuffer(inFile, hexStr string) ([]byte, string, error) {
	if hexStr != "" {
		cleaned := strings.Map(func(r rune) rune {
			if r == ' ' || r == '\n' || r == '\t' {
				return -1
			}
			return r
		}, hexStr)
		buf, err := hex.DecodeString(cleaned)
		if err != nil {
			return nil, "", fmt.Errorf("decode hex: %w", err)
		}
		return buf, "(inline)", nil
	}

	buf, err := os.ReadFile(inFile)
	if err != nil {
		return nil, "", fmt.Errorf("read file: %w", err)
	}
	return buf, inFile, nil
}

func dump(label string, buf []byte, verbose bool) error {
	logger := zap.NewNop()
	if verbose {
		dev, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("logger: %w", err)
		}
		defer dev.Sync()
		logger = dev
	}

	logger.Debug("inspecting buffer",
		zap.String("source", label),
		zap.Int("bytes", len(buf)))

	root, err := parseBuffer(buf, logger)
	if err != nil {
		return err
	}

	color := term.IsTerminal(int(os.Stdout.Fd()))
	fmt.Printf("Buffer: %s (%d bytes)\n\n", label, len(buf))
	printTree(root, 0, color)
	return nil
}

// node is one decoded wire value in the dump tree.
type node struct {
	label    string
	value    string
	tag      wire.Tag
	children []*node
}

// parseBuffer decodes every top-level value in buf. A buffer holds
// exactly one value in normal use, but trailing values are shown
// rather than ignored.
func parseBuffer(buf []byte, logger *zap.Logger) (*node, error) {
	r := wire.NewReader(buf)
	root := &node{label: "root", tag: wire.TagInvalid}

	for consumed := 0; ; consumed++ {
		if _, err := r.PeekTag(); err != nil {
			if consumed == 0 {
				return nil, err
			}
			break
		}
		child, err := parseValue(r, logger)
		if err != nil {
			return nil, err
		}
		root.children = append(root.children, child)
	}

	if len(root.children) == 1 {
		return root.children[0], nil
	}
	return root, nil
}

func parseValue(r *wire.Reader, logger *zap.Logger) (*node, error) {
	tag, err := r.PeekTag()
	if err != nil {
		return nil, err
	}
	n := &node{tag: tag}

	switch tag {
	case wire.TagNil:
		if err := r.ReadNil(); err != nil {
			return nil, err
		}
		n.value = "nil"

	case wire.TagBool:
		v, err := r.ReadBool()
		if err != nil {
			return nil, err
		}
		n.value = fmt.Sprintf("%v", v)

	case wire.TagInt:
		v, err := r.ReadInt()
		if err != nil {
			return nil, err
		}
		n.value = fmt.Sprintf("%d", v)

	case wire.TagUint:
		v, err := r.ReadUint()
		if err != nil {
			return nil, err
		}
		n.value = fmt.Sprintf("%d", v)

	case wire.TagFloat32:
		v, err := r.ReadFloat32()
		if err != nil {
			return nil, err
		}
		n.value = fmt.Sprintf("%g", v)

	case wire.TagFloat64:
		v, err := r.ReadFloat64()
		if err != nil {
			return nil, err
		}
		n.value = fmt.Sprintf("%g", v)

	case wire.TagString:
		v, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		n.value = fmt.Sprintf("%q", v)

	case wire.TagBinary:
		v, err := r.ReadBinary()
		if err != nil {
			return nil, err
		}
		n.value = hex.EncodeToString(v)

	case wire.TagExtension:
		typ, size, err := r.ReadExtensionHeader()
		if err != nil {
			return nil, err
		}
		payload := make([]byte, size)
		if err := r.ReadRaw(payload); err != nil {
			return nil, err
		}
		n.value = fmt.Sprintf("type=%d %s", typ, hex.EncodeToString(payload))

	case wire.TagArray:
		count, err := r.ReadArrayHeader()
		if err != nil {
			return nil, err
		}
		n.value = fmt.Sprintf("%d elements", count)
		for i := 0; i < count; i++ {
			child, err := parseValue(r, logger)
			if err != nil {
				return nil, err
			}
			child.label = fmt.Sprintf("[%d]", i)
			n.children = append(n.children, child)
		}

	case wire.TagMap:
		count, err := r.ReadMapHeader()
		if err != nil {
			return nil, err
		}
		n.value = fmt.Sprintf("%d pairs", count)
		for i := 0; i < count; i++ {
			key, err := parseValue(r, logger)
			if err != nil {
				return nil, err
			}
			child, err := parseValue(r, logger)
			if err != nil {
				return nil, err
			}
			child.label = key.value
			n.children = append(n.children, child)
		}

	default:
		return nil, fmt.Errorf("unclassifiable format code")
	}

	logger.Debug("decoded value",
		zap.String("tag", tag.String()),
		zap.String("value", n.value),
		zap.Int("children", len(n.children)))

	return n, nil
}

var (
	dumpTagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	dumpKeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	dumpValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))
)

func printTree(n *node, depth int, color bool) {
	fmt.Println(renderNode(n, depth, color))
	for _, child := range n.children {
		printTree(child, depth+1, color)
	}
}

func renderNode(n *node, depth int, color bool) string {
	var b strings.Builder
	b.WriteString(strings.Repeat("  ", depth))

	label := n.label
	tag := n.tag.String()
	value := n.value
	if color {
		label = dumpKeyStyle.Render(label)
		tag = dumpTagStyle.Render(tag)
		value = dumpValueStyle.Render(value)
	}

	if n.label != "" {
		b.WriteString(label)
		b.WriteString(": ")
	}
	b.WriteString(tag)
	if n.value != "" {
		b.WriteString(" ")
		b.WriteString(value)
	}
	return b.String()
}
