package cmd

import (
	"context"
	"flag"
	"io"
	"os"
	"strings"

	"github.com/etnz/recetario/agent"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

type assistCmd struct{}

func (*assistCmd) Name() string     { return "assist" }
func (*assistCmd) Synopsis() string { return "start an interactive session with the meal assistant" }
func (*assistCmd) Usage() string {
	return `assist [prompt]

  Starts an interactive session with the meal assistant. It needs a Gemini
  API key in GEMINI_API_KEY or GOOGLE_API_KEY.

  See 'rcp topic assist'.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := strings.Join(f.Args(), " ")

	k, err := OpenKitchen()
	if err != nil {
		return failure("Error loading kitchen: %v", err)
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return failure("Error initializing Gemini's client: %v", err)
	}

	chef := agent.NewChef(k, OpenStore())
	chef.Logger = Logger()
	nutritionist := agent.NewNutritionist()
	nutritionist.Logger = Logger()

	a := agent.New(os.Stdout, os.Stdin, chef, nutritionist)
	a.Facilitator.Logger = Logger()
	a.Print = func(_ io.Writer, answer string) { printMarkdown(answer) }

	if err := a.Run(ctx, client, initialPrompt); err != nil {
		return failure("Agent failed: %v", err)
	}
	return subcommands.ExitSuccess
}
