package cli

import (
	"fmt"
	"io"
	"strings"
)

// promptLine prints a label and reads one trimmed line. An error means the
// input ended; callers treat it as a request to leave.
func promptLine(in io.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)
	text, err := readPromptLine(in)
	if err != nil && text == "" {
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// promptYesNoIO asks a yes/no question in Portuguese. Empty input takes the
// default; anything starting from "s"/"sim"/"y" counts as yes.
func promptYesNoIO(in io.Reader, out io.Writer, message string, defaultYes bool) bool {
	fmt.Fprint(out, message)

	text, err := readPromptLine(in)
	if err != nil && text == "" {
		return false
	}

	text = strings.TrimSpace(strings.ToLower(text))
	if text == "" {
		return defaultYes
	}
	return text == "s" || text == "sim" || text == "y" || text == "yes"
}

// readPromptLine reads until either LF or CR so Enter works in normal and raw terminal modes.
func readPromptLine(in io.Reader) (string, error) {
	if in == nil {
		return "", io.EOF
	}

	var buf []byte
	var one [1]byte

	for {
		n, err := in.Read(one[:])
		if n > 0 {
			switch one[0] {
			case '\n', '\r':
				return string(buf), nil
			default:
				buf = append(buf, one[0])
			}
		}

		if err != nil {
			if err == io.EOF && len(buf) > 0 {
				return string(buf), nil
			}
			return string(buf), err
		}
	}
}
