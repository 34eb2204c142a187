package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"

	"github.com/nmchat/nmbot/pkg/chatbot"
	"github.com/nmchat/nmbot/pkg/models"
)

func joinArgs(args []string) string {
	return strings.Join(args, " ")
}

func newTable(w io.Writer, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	return table
}

// renderClassification prints the normalized message, the reply and the top n rows.
func renderClassification(w io.Writer, bot *chatbot.Bot, message string, n int, colored bool) error {
	reply := bot.Reply(message)
	if reply.Prompted {
		_, err := fmt.Fprintln(w, reply.Response)
		return err
	}
	normalized, matches := bot.Rank(message, n)

	verdict := "no match, default response"
	if reply.Matched {
		verdict = "matched " + reply.Intent
	}
	if colored {
		if reply.Matched {
			verdict = color.Green.Sprint(verdict)
		} else {
			verdict = color.Yellow.Sprint(verdict)
		}
	}
	if _, err := fmt.Fprintf(w, "normalized: %q\nthreshold:  %.2f\nresult:     %s\nresponse:   %s\n\n",
		normalized, bot.Threshold(), verdict, reply.Response); err != nil {
		return err
	}

	table := newTable(w, []string{"Rank", "Intent", "Phrase", "Score"})
	for i, m := range matches {
		intent := m.Intent
		if colored && m.Matched {
			intent = color.New(color.FgGreen, color.OpBold).Render(intent)
		}
		table.Append([]string{
			fmt.Sprintf("%d", i+1),
			intent,
			m.Phrase,
			fmt.Sprintf("%.4f", m.Score),
		})
	}
	table.Render()
	return nil
}

// renderIntents prints one row per intent and the fallback responses.
func renderIntents(w io.Writer, bot *chatbot.Bot) {
	table := newTable(w, []string{"Intent", "Patterns", "Responses"})
	for _, in := range bot.Corpus().Intents() {
		table.Append([]string{
			in.ID,
			strings.Join(in.Patterns, ", "),
			fmt.Sprintf("%d", len(in.Responses)),
		})
	}
	table.SetFooter([]string{"default", "", fmt.Sprintf("%d", len(bot.DefaultResponses()))})
	table.Render()
}

// renderInteractions prints logged interactions with relative timestamps.
func renderInteractions(w io.Writer, interactions []models.Interaction) {
	table := newTable(w, []string{"When", "Message", "Intent", "Score", "Language"})
	for _, in := range interactions {
		intent := in.Intent
		if !in.Matched {
			intent = "-"
		}
		table.Append([]string{
			humanize.Time(in.CreatedAt),
			in.Message,
			intent,
			fmt.Sprintf("%.4f", in.Score),
			in.Language,
		})
	}
	table.Render()
}
