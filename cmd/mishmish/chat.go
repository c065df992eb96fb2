package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/comigor/mishmish-go/internal/keys"
	"github.com/comigor/mishmish-go/internal/logger"
	"github.com/comigor/mishmish-go/internal/widget"
)

const botName = "Mish Mish"

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with Mish Mish in the terminal",
	Long: `Start an interactive chat session.

Commands:
  /key <value>   verify and store a Firecrawl API key
  /clear-key     remove the stored API key
  /quit          leave the chat`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// keep logs off the conversation
		logger.SetOutput(os.Stderr, "text")

		a, err := newApp(cfg)
		if err != nil {
			return err
		}
		defer a.Close()

		return runChat(cmd.Context(), a.widget, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func runChat(ctx context.Context, w *widget.Widget, in io.Reader, out io.Writer) error {
	sess := w.NewSession()
	defer func() { _ = w.EndSession(sess.ID) }()

	for _, m := range sess.Messages() {
		fmt.Fprintf(out, "%s: %s\n", botName, m.Text)
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "":
			continue
		case line == "/quit":
			return nil
		case line == "/clear-key":
			if err := w.ClearKey(ctx); err != nil {
				fmt.Fprintf(out, "error: %v\n", err)
				continue
			}
			fmt.Fprintln(out, "API key removed.")
			continue
		case line == "/key" || strings.HasPrefix(line, "/key "):
			_, err := w.SubmitKey(ctx, sess.ID, strings.TrimPrefix(line, "/key"))
			switch {
			case errors.Is(err, keys.ErrEmptyKey):
				fmt.Fprintln(out, "usage: /key <value>")
			case errors.Is(err, keys.ErrReservedKey):
				fmt.Fprintf(out, "error: %v\n", err)
			}
			printToasts(out, sess)
			continue
		}

		fmt.Fprintf(out, "%s is typing...\n", botName)
		reply, err := w.Send(ctx, sess.ID, line)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		fmt.Fprintf(out, "%s: %s\n", botName, reply.Text)
		printToasts(out, sess)
		if sess.KeyPromptOpen() {
			fmt.Fprintln(out, "Enter your key with /key <value>.")
		}
	}
}

func printToasts(out io.Writer, sess *widget.Session) {
	for _, t := range sess.Toasts() {
		fmt.Fprintln(out, formatToast(t))
	}
}

func formatToast(t widget.Toast) string {
	if t.Variant == widget.VariantDestructive {
		return fmt.Sprintf("[!] %s: %s", t.Title, t.Description)
	}
	return fmt.Sprintf("[i] %s: %s", t.Title, t.Description)
}
