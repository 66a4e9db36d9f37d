package runner

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"
)

// JSONHandler implements the IOHandler interface for JSON-Lines communication.
// Every frame and notice is one line; every input line is either a JSON string
// or a raw label.
type JSONHandler struct {
	Reader  *bufio.Reader
	Encoder *json.Encoder
}

type jsonMessage struct {
	Type    string `json:"type"`
	Message string `json:"message,omitempty"`
	*Frame
}

// NewJSONHandler creates a handler for JSON IO.
func NewJSONHandler(r io.Reader, w io.Writer) *JSONHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &JSONHandler{
		Reader:  bufio.NewReader(r),
		Encoder: json.NewEncoder(w),
	}
}

func (h *JSONHandler) Output(ctx context.Context, frame Frame) error {
	return h.Encoder.Encode(jsonMessage{Type: "frame", Frame: &frame})
}

func (h *JSONHandler) Notice(ctx context.Context, msg string) error {
	return h.Encoder.Encode(jsonMessage{Type: "notice", Message: msg})
}

func (h *JSONHandler) Input(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	text, err := h.Reader.ReadString('\n')
	if err != nil && (err != io.EOF || text == "") {
		return "", err
	}
	text = strings.TrimSpace(text)

	var val string
	if err := json.Unmarshal([]byte(text), &val); err == nil {
		text = val
	}
	return SanitizeInput(text)
}
