package chat

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/travver/travver/pkg/consultant"
)

type Chat struct {
	Message string
	TripID  string
	Stream  bool

	Client *consultant.Client

	// In and Out default to stdin and stdout; tests swap them.
	In  io.Reader
	Out io.Writer
}

func (n *Chat) Do(ctx context.Context) error {
	if n.Client == nil {
		return errors.New("can not chat, no consultant client")
	}
	if n.In == nil {
		n.In = os.Stdin
	}
	if n.Out == nil {
		n.Out = os.Stdout
	}

	// One-shot when a message was given, interactive otherwise.
	if n.Message != "" {
		var conv consultant.Conversation
		return n.turn(ctx, &conv, n.Message)
	}

	prompt := color.New(color.Bold)
	scanner := bufio.NewScanner(n.In)
	var conv consultant.Conversation
	for {
		_, _ = prompt.Fprint(n.Out, "you> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			return nil
		}
		if err := n.turn(ctx, &conv, line); err != nil {
			return err
		}
	}
}

func (n *Chat) turn(ctx context.Context, conv *consultant.Conversation, message string) error {
	req := consultant.Request{
		Message: message,
		History: conv.Messages,
	}
	if n.TripID != "" {
		req.TripID = &n.TripID
	}

	if n.Stream {
		var reply strings.Builder
		err := n.Client.Stream(ctx, req, func(chunk string) error {
			reply.WriteString(chunk)
			_, err := fmt.Fprintln(n.Out, chunk)
			return err
		})
		if err != nil {
			return err
		}
		conv.Append("user", message)
		conv.Append("assistant", reply.String())
		return nil
	}

	reply, err := n.Client.Consult(ctx, req)
	if err != nil {
		return err
	}
	conv.Append("user", message)
	conv.Append("assistant", reply)
	_, err = fmt.Fprintln(n.Out, reply)
	return err
}
