package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/MuhamadAgungGumelar/productai-support-be/internal/core/agent"
	"github.com/MuhamadAgungGumelar/productai-support-be/internal/modules/support"
	"github.com/MuhamadAgungGumelar/productai-support-be/internal/modules/support/services"
	"github.com/MuhamadAgungGumelar/productai-support-be/internal/shared/config"
	"github.com/MuhamadAgungGumelar/productai-support-be/internal/shared/utils"
)

const welcome = `Welcome to ProductAI! 🤖
I can help you with:
  /specs    📱 Product Specifications
  /order    📦 Order Tracking
  /return   🔄 Return Policy
  /payment  💳 Payment Methods
Type /home to start over and /quit to leave.
How can I assist you today?
`

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		thinkingTime time.Duration
		catalogFile  string
		debug        bool
	)

	cmd := &cobra.Command{
		Use:   "productai-chat",
		Short: "Chat with the ProductAI support assistant in the terminal",
		Long: `productai-chat answers product questions from the local catalog first
and falls back to the configured AI assistant when the catalog has no answer.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfig()
			env := cfg.Env
			if !debug {
				env = "production"
			}
			utils.InitLogger(env)

			if cmd.Flags().Changed("thinking-time") {
				cfg.ThinkingTime = thinkingTime
			}
			if catalogFile != "" {
				cfg.CatalogFile = catalogFile
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			rt, err := support.NewRuntime(ctx, cfg)
			if err != nil {
				return err
			}
			defer rt.Close()

			svc := services.NewChatService(rt.Engine, cfg.ThinkingTime)
			return runChat(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), svc)
		},
	}

	cmd.Flags().DurationVar(&thinkingTime, "thinking-time", 600*time.Millisecond, "pause before an answer is shown (overrides THINKING_TIME)")
	cmd.Flags().StringVar(&catalogFile, "catalog", "", "YAML catalog file (overrides CATALOG_FILE)")
	cmd.Flags().BoolVar(&debug, "debug", false, "show debug logs")

	return cmd
}

// runChat reads one line per turn until EOF, /quit, or ctx is cancelled.
func runChat(ctx context.Context, in io.Reader, out io.Writer, svc *services.ChatService) error {
	conv := svc.StartConversation()
	fmt.Fprint(out, welcome)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "\nYou: ")
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		if ctx.Err() != nil {
			return nil
		}

		line := strings.TrimSpace(scanner.Text())

		var (
			ch  <-chan services.Delivery
			err error
		)
		switch {
		case line == "":
			continue
		case line == "/quit" || line == "/exit":
			fmt.Fprintln(out, "Bye! 👋")
			return nil
		case line == "/home":
			if err := svc.ResetConversation(conv.ID); err != nil {
				return err
			}
			fmt.Fprint(out, "\n"+welcome)
			continue
		case strings.HasPrefix(line, "/"):
			action, parseErr := agent.ParseAction(strings.TrimPrefix(line, "/"))
			if parseErr != nil {
				fmt.Fprintf(out, "Unknown command %s\n", line)
				continue
			}
			fmt.Fprintf(out, "You: %s\n", action.Question())
			ch, err = svc.InvokeShortcut(ctx, conv.ID, action)
		default:
			ch, err = svc.SubmitUtterance(ctx, conv.ID, line)
		}

		if err != nil {
			if errors.Is(err, services.ErrConversationBusy) {
				fmt.Fprintln(out, "Please wait for the current answer.")
				continue
			}
			return err
		}
		if ch == nil {
			continue
		}

		fmt.Fprintln(out, "ProductAI is thinking...")
		d, ok := <-ch
		if !ok {
			log.Warn().Msg("⚠️ answer was discarded")
			continue
		}
		fmt.Fprintf(out, "ProductAI: %s\n", d.Answer.Content)
	}
}
