package disasm

import (
	"fmt"
	"strings"

	"github.com/retroenv/retrochip8/internal/opcode"
)

const dataBytesPerLine = 16

// writeOffsets writes all labels, code lines and bundled data lines.
func (dis *Disasm) writeOffsets() error {
	var previousLineWasCode bool

	for i := 0; i < len(dis.offsets); {
		offsetInfo := &dis.offsets[i]

		if err := dis.writeLabel(i, offsetInfo); err != nil {
			return err
		}

		isCode := offsetInfo.IsType(CodeOffset)
		// print an empty line in case of data after code and vice versa
		if i > 0 && offsetInfo.Label == "" && isCode != previousLineWasCode {
			if _, err := fmt.Fprintln(dis.writer); err != nil {
				return fmt.Errorf("writing line: %w", err)
			}
		}
		previousLineWasCode = isCode

		if isCode {
			if err := dis.writeCodeLine(offsetInfo); err != nil {
				return err
			}
			i += opcode.Size
			continue
		}

		count, err := dis.writeDataLine(i)
		if err != nil {
			return err
		}
		i += count
	}
	return nil
}

func (dis *Disasm) writeLabel(index int, offsetInfo *Offset) error {
	if offsetInfo.Label == "" {
		return nil
	}

	if index > 0 {
		if _, err := fmt.Fprintln(dis.writer); err != nil {
			return fmt.Errorf("writing line: %w", err)
		}
	}
	if _, err := fmt.Fprintf(dis.writer, "%s:\n", offsetInfo.Label); err != nil {
		return fmt.Errorf("writing label: %w", err)
	}
	return nil
}

func (dis *Disasm) writeCodeLine(offsetInfo *Offset) error {
	code := formatCode(offsetInfo)
	comment := fmt.Sprintf("$%04X  %02X %02X", offsetInfo.Address, offsetInfo.Data[0], offsetInfo.Data[1])
	if _, err := fmt.Fprintf(dis.writer, "  %-30s ; %s\n", code, comment); err != nil {
		return fmt.Errorf("writing code line: %w", err)
	}
	return nil
}

// formatCode returns the instruction text, using the label name for
// referenced addresses that have one.
func formatCode(offsetInfo *Offset) string {
	if offsetInfo.BranchingTo == "" {
		return offsetInfo.Instruction.String()
	}
	if _, ok := offsetInfo.Instruction.(opcode.LoadIndex); ok {
		return fmt.Sprintf("%s I, %s", offsetInfo.Instruction.Name(), offsetInfo.BranchingTo)
	}
	return fmt.Sprintf("%s %s", offsetInfo.Instruction.Name(), offsetInfo.BranchingTo)
}

// writeDataLine writes up to dataBytesPerLine data bytes starting at the
// given index. A line ends before code or a label. It returns the number of
// written bytes.
func (dis *Disasm) writeDataLine(start int) (int, error) {
	end := start
	for end < len(dis.offsets) && end-start < dataBytesPerLine {
		if end > start && dis.offsets[end].Label != "" {
			break
		}
		if dis.offsets[end].IsType(CodeOffset) {
			break
		}
		end++
	}

	buf := &strings.Builder{}
	buf.WriteString(".byte ")
	for i, b := range dis.program[start:end] {
		if i > 0 {
			buf.WriteString(", ")
		}
		fmt.Fprintf(buf, "$%02x", b)
	}

	if _, err := fmt.Fprintf(dis.writer, "  %-30s ; $%04X\n", buf.String(), dis.offsets[start].Address); err != nil {
		return 0, fmt.Errorf("writing data line: %w", err)
	}
	return end - start, nil
}
