package runner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/aretw0/brewer/pkg/domain"
)

// TextHandler implements the standard text-based interface.
type TextHandler struct {
	Reader   *bufio.Reader
	Writer   io.Writer
	Renderer ContentRenderer
	Styler   func(string) string
	headless bool

	inputChan chan inputResult
	startOnce sync.Once
	done      chan struct{}
	closeOnce sync.Once
}

type inputResult struct {
	text string
	err  error
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithTextHandlerRenderer configures the markdown renderer used for notices.
func WithTextHandlerRenderer(renderer ContentRenderer) TextHandlerOption {
	return func(h *TextHandler) {
		h.Renderer = renderer
	}
}

// WithTextHandlerStyler configures a decorator for the status block.
func WithTextHandlerStyler(styler func(string) string) TextHandlerOption {
	return func(h *TextHandler) {
		h.Styler = styler
	}
}

// WithTextHandlerHeadless drops the prompt and the menu descriptions.
func WithTextHandlerHeadless(headless bool) TextHandlerOption {
	return func(h *TextHandler) {
		h.headless = headless
	}
}

// NewTextHandler creates a handler for standard text IO.
func NewTextHandler(r io.Reader, w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{
		Reader: bufio.NewReader(r),
		Writer: w,
		done:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *TextHandler) initPump() {
	h.startOnce.Do(func() {
		h.inputChan = make(chan inputResult)
		go h.pump()
	})
}

// Close stops the background reader once its pending read returns.
// Input reports io.EOF afterwards.
func (h *TextHandler) Close() error {
	h.closeOnce.Do(func() {
		close(h.done)
	})
	return nil
}

// pump reads lines in the background so Input can honour cancellation.
func (h *TextHandler) pump() {
	defer close(h.inputChan)
	for {
		text, err := h.Reader.ReadString('\n')
		if text != "" && !h.send(inputResult{text: text}) {
			return
		}
		if err != nil {
			if err != io.EOF {
				h.send(inputResult{err: err})
			}
			return
		}
	}
}

func (h *TextHandler) send(res inputResult) bool {
	select {
	case h.inputChan <- res:
		return true
	case <-h.done:
		return false
	}
}

func (h *TextHandler) Output(ctx context.Context, frame Frame) error {
	status := frame.Status
	if h.Styler != nil {
		status = h.Styler(status)
	}
	fmt.Fprintln(h.Writer, status)

	if h.headless {
		fmt.Fprintf(h.Writer, "Actions: %s\n", strings.Join(domain.Labels(frame.Actions), ", "))
		return nil
	}

	fmt.Fprintln(h.Writer)
	fmt.Fprintln(h.Writer, "Available actions:")
	for i, a := range frame.Actions {
		fmt.Fprintf(h.Writer, "  %d) %-10s %s\n", i+1, a.Label(), a.Description())
	}
	return nil
}

func (h *TextHandler) Input(ctx context.Context) (string, error) {
	select {
	case <-h.done:
		return "", io.EOF
	default:
	}
	h.initPump()

	for {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-h.done:
			return "", io.EOF
		default:
			if !h.headless {
				fmt.Fprint(h.Writer, "> ")
			}
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-h.done:
			return "", io.EOF
		case res, ok := <-h.inputChan:
			if !ok {
				return "", io.EOF
			}
			if res.err != nil {
				return "", res.err
			}

			clean, err := SanitizeInput(strings.TrimSpace(res.text))
			if err != nil {
				fmt.Fprintf(h.Writer, "Error: %v. Please try again.\n", err)
				continue
			}
			return clean, nil
		}
	}
}

func (h *TextHandler) Notice(ctx context.Context, msg string) error {
	output := msg
	if h.Renderer != nil {
		if rendered, err := h.Renderer(msg); err == nil {
			output = rendered
		}
	}
	_, err := fmt.Fprintf(h.Writer, "%s\n", strings.TrimSpace(output))
	return err
}
